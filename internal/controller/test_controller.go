package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lhgiang/eduquest/internal/dto"
	"github.com/lhgiang/eduquest/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	geminiService     service.GeminiService
	assessmentService service.AssessmentService
}

func NewTestController(geminiService service.GeminiService, assessmentService service.AssessmentService) *TestController {
	return &TestController{
		geminiService:     geminiService,
		assessmentService: assessmentService,
	}
}

// GenerateTest godoc
// @Summary Generate a quiz for a topic
// @Tags Tests
// @Accept json
// @Produce json
// @Param topic body dto.GenerateTestRequest true "Quiz topic"
// @Success 200 {array} dto.QuizQuestion
// @Failure 400 {object} dto.ErrorResponse "Missing topic"
// @Failure 500 {object} dto.ErrorResponse "Quiz generation failed"
// @Router /generate-test [post]
func (c *TestController) GenerateTest(ctx *gin.Context) {
	var req dto.GenerateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing topic"})
		return
	}

	questions, err := c.geminiService.GenerateQuiz(req.Topic)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("GenerateTest: quiz generation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate test"})
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// SubmitTest godoc
// @Summary Submit quiz answers for analysis
// @Description Analyzes wrong answers, attaches a tutorial video per weak concept and records the attempt. The response is only successful once the result row is persisted.
// @Tags Tests
// @Accept json
// @Produce json
// @Param submission body dto.SubmitTestRequest true "Quiz as served plus the user's answers keyed by question text"
// @Success 200 {array} dto.AnalysisItem
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Analysis or persistence failed"
// @Router /submit-test [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields"})
		return
	}

	items, err := c.assessmentService.SubmitTest(req)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Str("topic", req.Topic).Msg("SubmitTest: pipeline failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to analyze results"})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// GenerateDynamicTest godoc
// @Summary Generate a remedial quiz from weak concepts
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.DynamicTestRequest true "Topic and previously identified weak concepts"
// @Success 200 {array} dto.QuizQuestion
// @Failure 400 {object} dto.ErrorResponse "Missing topic or weak_concepts"
// @Failure 500 {object} dto.ErrorResponse "Quiz generation failed"
// @Router /generate-dynamic-test [post]
func (c *TestController) GenerateDynamicTest(ctx *gin.Context) {
	var req dto.DynamicTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing topic or weak_concepts"})
		return
	}

	questions, err := c.geminiService.GenerateDynamicQuiz(req.Topic, req.WeakConcepts)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("GenerateDynamicTest: quiz generation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate dynamic test"})
		return
	}

	ctx.JSON(http.StatusOK, questions)
}
