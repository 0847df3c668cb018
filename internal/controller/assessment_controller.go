package controller

import (
	"errors"
	"pathfinder_backend/internal/scoring"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// List godoc
// @Summary List active assessments
// @Tags assessments
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	assessments, err := c.AssessmentService.ListActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// ListFeatured godoc
// @Summary List featured assessments
// @Tags assessments
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /api/assessments/featured [get]
func (c *AssessmentController) ListFeatured(ctx *gin.Context) {
	assessments, err := c.AssessmentService.ListFeatured()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// ListByCategory godoc
// @Summary List assessments in a category
// @Tags assessments
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /api/assessments/category/{category} [get]
func (c *AssessmentController) ListByCategory(ctx *gin.Context) {
	assessments, err := c.AssessmentService.ListByCategory(ctx.Param("category"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// Get godoc
// @Summary Get one assessment with its sections
// @Description Sections come back ordered with slider questions normalized to likert and scale options synthesized
// @Tags assessments
// @Produce json
// @Param id path string true "Assessment slug"
// @Success 200 {object} util.Response{data=service.AssessmentDetail}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	detail, err := c.AssessmentService.GetDetail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// swagger:model CalculateRequest
type CalculateRequest struct {
	Answers []scoring.Answer `json:"answers" binding:"required"`
}

// Calculate godoc
// @Summary Score an answer list against an assessment
// @Description Stateless computation; nothing is persisted
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path string true "Assessment slug"
// @Param body body CalculateRequest true "Submitted answers"
// @Success 200 {object} util.Response{data=scoring.Result}
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/assessments/{id}/calculate [post]
func (c *AssessmentController) Calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.Calculate(ctx.Request.Context(), ctx.Param("id"), req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
