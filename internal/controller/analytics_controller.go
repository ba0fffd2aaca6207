package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/service"
	"github.com/rs/zerolog/log"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetAnalytics godoc
// @Summary List a user's recorded test results
// @Description Returns every stored attempt for the user ordered by date. A user with no attempts yields 404, matching the original API shape.
// @Tags Analytics
// @Produce json
// @Param username query string true "Username to query"
// @Success 200 {array} dto.TestResultRow
// @Failure 400 {object} dto.ErrorResponse "Missing username"
// @Failure 404 {object} dto.ErrorResponse "No data found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	username := ctx.Query("username")
	if username == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing username"})
		return
	}

	rows, err := c.analyticsService.ResultsForUser(username)
	if err != nil {
		if errors.Is(err, service.ErrNoResults) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No data found"})
			return
		}
		log.Error().Err(err).Str("username", username).Msg("GetAnalytics: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load analytics"})
		return
	}

	ctx.JSON(http.StatusOK, rows)
}
