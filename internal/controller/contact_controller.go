package controller

import (
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactService *service.ContactService
}

func NewContactController(contactService *service.ContactService) *ContactController {
	return &ContactController{ContactService: contactService}
}

// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Submit godoc
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Message"
// @Success 201 {object} util.Response{data=model.ContactMessage}
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := c.ContactService.Submit(msg); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, msg)
}

// List godoc
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/contact [get]
func (c *ContactController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)
	messages, total, err := c.ContactService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: messages, Total: total, Page: page, Limit: limit})
}

// MarkRead godoc
// @Summary Mark a contact message read
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Message id"
// @Success 200 {object} util.Response
// @Router /api/admin/contact/{id}/read [post]
func (c *ContactController) MarkRead(ctx *gin.Context) {
	if err := c.ContactService.MarkRead(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"read": true})
}
