package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lhgiang/eduquest/internal/catalog"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/service"
	"github.com/rs/zerolog/log"
)

type ContentController struct {
	catalog       *catalog.Catalog
	geminiService service.GeminiService
}

func NewContentController(cat *catalog.Catalog, geminiService service.GeminiService) *ContentController {
	return &ContentController{catalog: cat, geminiService: geminiService}
}

// GetContent godoc
// @Summary Get the content catalogue structure
// @Description Returns class -> subject -> topic names without video URLs.
// @Tags Content
// @Produce json
// @Success 200 {object} map[string]map[string][]string
// @Router /content [get]
func (c *ContentController) GetContent(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalog.Structure())
}

// GetTopicDetails godoc
// @Summary Get AI notes and the catalogue video for a topic
// @Description Generates study notes via Gemini and attaches the configured video URL. An uncatalogued combination yields an empty video_url, not an error.
// @Tags Content
// @Accept json
// @Produce json
// @Param topic body dto.TopicDetailsRequest true "Class, subject and topic"
// @Success 200 {object} dto.TopicDetailsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing class, subject, or topic"
// @Failure 500 {object} dto.ErrorResponse "Notes generation failed"
// @Router /get-topic-details [post]
func (c *ContentController) GetTopicDetails(ctx *gin.Context) {
	var req dto.TopicDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing class, subject, or topic"})
		return
	}

	notes, err := c.geminiService.GetNotes(req.Topic)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("GetTopicDetails: notes generation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate notes"})
		return
	}

	videoURL, ok := c.catalog.VideoURL(req.Class, req.Subject, req.Topic)
	if !ok {
		videoURL = ""
	}

	ctx.JSON(http.StatusOK, dto.TopicDetailsResponse{Notes: notes, VideoURL: videoURL})
}
