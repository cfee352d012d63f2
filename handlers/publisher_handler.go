package handlers

import (
	"strconv"

	"newshub-cms/helper"
	"newshub-cms/models"
	"newshub-cms/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService    services.PublisherService
	subscriptionService services.SubscriptionService
	authService         services.AuthService
	Helper              *helper.HTTPHelper
}

func NewPublisherHandler(publisherService services.PublisherService, subscriptionService services.SubscriptionService, authService services.AuthService) *PublisherHandler {
	return &PublisherHandler{
		publisherService:    publisherService,
		subscriptionService: subscriptionService,
		authService:         authService,
		Helper:              &helper.HTTPHelper{},
	}
}

func (h *PublisherHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return nil, false
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendUnauthorizedError(c, "Unknown user", h.Helper.EmptyJsonMap())
		return nil, false
	}

	return user, true
}

func (h *PublisherHandler) BecomePublisher(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.BecomePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	publisher, err := h.publisherService.BecomePublisher(actor, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publisher created", publisher)
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.publisherService.GetPublishers()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", publishers)
}

func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	publisher, err := h.publisherService.GetPublisher(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", publisher)
}

func (h *PublisherHandler) AddEditor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.publisherService.AddEditor(uint(id), req.UserID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Editor added", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) AddJournalist(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.publisherService.AddJournalist(uint(id), req.UserID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Journalist added", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.publisherService.DeletePublisher(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publisher deleted", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) SubscribeToPublisher(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.subscriptionService.SubscribeToPublisher(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) SubscribeToJournalist(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid journalist ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.subscriptionService.SubscribeToJournalist(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", h.Helper.EmptyJsonMap())
}
