package controller

import (
	"errors"
	"net/http"
	"pathfinder_backend/internal/scoring"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// Start godoc
// @Summary Start an assessment session
// @Tags sessions
// @Produce json
// @Param id path string true "Assessment slug"
// @Success 201 {object} util.Response{data=model.AssessmentSession}
// @Failure 404 {object} util.Response "Assessment not found"
// @Router /api/assessments/{id}/sessions [post]
func (c *SessionController) Start(ctx *gin.Context) {
	meta := service.SessionMeta{
		UserAgent: ctx.Request.UserAgent(),
		IPAddress: ctx.ClientIP(),
		Referrer:  ctx.Request.Referer(),
	}

	session, err := c.SessionService.Start(ctx.Request.Context(), ctx.Param("id"), meta)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// swagger:model SaveAnswersRequest
type SaveAnswersRequest struct {
	Answers        []scoring.Answer `json:"answers" binding:"required"`
	CurrentSection string           `json:"currentSection"`
	Progress       int              `json:"progress" binding:"min=0,max=100"`
}

// SaveAnswers godoc
// @Summary Record session answers and progress
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param body body SaveAnswersRequest true "Answers and progress"
// @Success 200 {object} util.Response{data=model.AssessmentSession}
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Session not found"
// @Failure 409 {object} util.Response "Session already completed"
// @Router /api/sessions/{sessionId}/answers [post]
func (c *SessionController) SaveAnswers(ctx *gin.Context) {
	var req SaveAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.SaveAnswers(ctx.Request.Context(), ctx.Param("sessionId"), req.Answers, req.CurrentSection, req.Progress)
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Submit godoc
// @Summary Submit a session for scoring
// @Description Scores the stored answers and persists the result; resubmitting recomputes deterministically
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/sessions/{sessionId}/submit [post]
func (c *SessionController) Submit(ctx *gin.Context) {
	session, result, err := c.SessionService.Submit(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"session": session,
		"results": result,
	})
}

// Get godoc
// @Summary Get a session with its results
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} util.Response{data=model.AssessmentSession}
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/sessions/{sessionId} [get]
func (c *SessionController) Get(ctx *gin.Context) {
	session, err := c.SessionService.Get(ctx.Param("sessionId"))
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// Abandon godoc
// @Summary Abandon a session
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} util.Response{data=model.AssessmentSession}
// @Failure 404 {object} util.Response "Session not found"
// @Router /api/sessions/{sessionId}/abandon [post]
func (c *SessionController) Abandon(ctx *gin.Context) {
	session, err := c.SessionService.Abandon(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

func (c *SessionController) handleSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrAssessmentNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrSessionCompleted):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
