package controller

import (
	"encoding/json"
	"errors"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/scoring"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminAssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAdminAssessmentController(assessmentService *service.AssessmentService) *AdminAssessmentController {
	return &AdminAssessmentController{AssessmentService: assessmentService}
}

// swagger:model AssessmentRequest
type AssessmentRequest struct {
	Slug           string          `json:"id" binding:"required"`
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Duration       string          `json:"duration"`
	Difficulty     string          `json:"difficulty"`
	Icon           string          `json:"icon"`
	Gradient       string          `json:"gradient"`
	Featured       bool            `json:"featured"`
	IsActive       *bool           `json:"isActive"`
	Metadata       json.RawMessage `json:"metadata"`
	WhatYouLearn   json.RawMessage `json:"whatYouLearn"`
	IdealFor       json.RawMessage `json:"idealFor"`
	CareerOutcomes json.RawMessage `json:"careerOutcomes"`
}

func (r *AssessmentRequest) apply(a *model.Assessment) {
	a.Slug = r.Slug
	a.Title = r.Title
	a.Description = r.Description
	a.Category = r.Category
	a.Duration = r.Duration
	a.Difficulty = r.Difficulty
	a.Icon = r.Icon
	a.Gradient = r.Gradient
	a.Featured = r.Featured
	a.IsActive = r.IsActive == nil || *r.IsActive
	a.Metadata = r.Metadata
	a.WhatYouLearn = r.WhatYouLearn
	a.IdealFor = r.IdealFor
	a.CareerOutcomes = r.CareerOutcomes
}

// List godoc
// @Summary List all assessments including inactive
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/assessments [get]
func (c *AdminAssessmentController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)
	assessments, total, err := c.AssessmentService.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: assessments, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Create an assessment
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AssessmentRequest true "Assessment"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/admin/assessments [post]
func (c *AdminAssessmentController) Create(ctx *gin.Context) {
	var req AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var a model.Assessment
	req.apply(&a)

	if err := c.AssessmentService.Create(ctx.Request.Context(), &a); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// Update godoc
// @Summary Update an assessment
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment database id"
// @Param body body AssessmentRequest true "Assessment"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/assessments/{id} [put]
func (c *AdminAssessmentController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	a, err := c.AssessmentService.FindByID(id)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	var req AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.apply(a)

	if err := c.AssessmentService.Update(ctx.Request.Context(), a); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// Delete godoc
// @Summary Delete an assessment and its sections
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment database id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/assessments/{id} [delete]
func (c *AdminAssessmentController) Delete(ctx *gin.Context) {
	err := c.AssessmentService.Delete(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// swagger:model SectionRequest
type SectionRequest struct {
	SectionID     string          `json:"id" binding:"required"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          string          `json:"type" binding:"required"`
	OrderIndex    int             `json:"orderIndex"`
	Questions     json.RawMessage `json:"questions"`
	ScoringConfig json.RawMessage `json:"scoringConfig"`
}

// UpsertSection godoc
// @Summary Create or replace a section
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment database id"
// @Param body body SectionRequest true "Section"
// @Success 200 {object} util.Response{data=model.AssessmentSection}
// @Failure 404 {object} util.Response "Assessment not found"
// @Router /api/admin/assessments/{id}/sections [put]
func (c *AdminAssessmentController) UpsertSection(ctx *gin.Context) {
	var req SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Reject question payloads the engine cannot decode.
	if len(req.Questions) > 0 {
		var questions []scoring.Question
		if err := json.Unmarshal(req.Questions, &questions); err != nil {
			util.BadRequest(ctx, "invalid questions payload: "+err.Error())
			return
		}
	}

	section := &model.AssessmentSection{
		SectionID:     req.SectionID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		OrderIndex:    req.OrderIndex,
		Questions:     req.Questions,
		ScoringConfig: req.ScoringConfig,
	}

	err := c.AssessmentService.UpsertSection(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), section)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, section)
}

// DeleteSection godoc
// @Summary Delete a section
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment database id"
// @Param sectionId path string true "Section id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Assessment not found"
// @Router /api/admin/assessments/{id}/sections/{sectionId} [delete]
func (c *AdminAssessmentController) DeleteSection(ctx *gin.Context) {
	err := c.AssessmentService.DeleteSection(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), ctx.Param("sectionId"))
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// TestScoring godoc
// @Summary Dry-run the scoring engine against an assessment
// @Description Same computation as the public calculate endpoint, guarded by the admin token
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment database id"
// @Param body body CalculateRequest true "Sample answers"
// @Success 200 {object} util.Response{data=scoring.Result}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/assessments/{id}/test-scoring [post]
func (c *AdminAssessmentController) TestScoring(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssessmentService.FindByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.AssessmentService.Calculate(ctx.Request.Context(), a.Slug, req.Answers)
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

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
