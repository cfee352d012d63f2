package handlers

import (
	"strconv"

	"newshub-cms/helper"
	"newshub-cms/models"
	"newshub-cms/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
	authService       services.AuthService
	Helper            *helper.HTTPHelper
}

func NewNewsletterHandler(newsletterService services.NewsletterService, authService services.AuthService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		authService:       authService,
		Helper:            &helper.HTTPHelper{},
	}
}

func (h *NewsletterHandler) currentUser(c *gin.Context) (*models.User, bool) {
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

func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	newsletter, err := h.newsletterService.CreateNewsletter(actor, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter created", newsletter)
}

func (h *NewsletterHandler) GetNewsletters(c *gin.Context) {
	newsletters, err := h.newsletterService.GetNewsletters()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", newsletters)
}

func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.GetNewsletter(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", newsletter)
}

func (h *NewsletterHandler) UpdateNewsletter(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	newsletter, err := h.newsletterService.UpdateNewsletter(actor, uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter updated", newsletter)
}

func (h *NewsletterHandler) DeleteNewsletter(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsletterService.DeleteNewsletter(actor, uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter deleted", h.Helper.EmptyJsonMap())
}
