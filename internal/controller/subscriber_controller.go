package controller

import (
	"errors"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubscriberController struct {
	SubscriberService *service.SubscriberService
}

func NewSubscriberController(subscriberService *service.SubscriberService) *SubscriberController {
	return &SubscriberController{SubscriberService: subscriberService}
}

// swagger:model SubscribeRequest
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Email"
// @Success 201 {object} util.Response{data=model.Subscriber}
// @Failure 400 {object} util.Response "Already subscribed"
// @Router /api/subscribers [post]
func (c *SubscriberController) Subscribe(ctx *gin.Context) {
	var req SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subscriber, err := c.SubscriberService.Subscribe(req.Email)
	if err != nil {
		if errors.Is(err, util.ErrAlreadySubscribed) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, subscriber)
}

// Unsubscribe godoc
// @Summary Unsubscribe from the newsletter
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Email"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Subscriber not found"
// @Router /api/subscribers/unsubscribe [post]
func (c *SubscriberController) Unsubscribe(ctx *gin.Context) {
	var req SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SubscriberService.Unsubscribe(req.Email); err != nil {
		if errors.Is(err, util.ErrSubscriberNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unsubscribed": true})
}

// List godoc
// @Summary List subscribers
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Subscriber}
// @Router /api/admin/subscribers [get]
func (c *SubscriberController) List(ctx *gin.Context) {
	subscribers, err := c.SubscriberService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subscribers)
}
