package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"newshub-cms/models"
	"newshub-cms/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	authService    services.AuthService
}

func NewArticleHandler(articleService services.ArticleService, authService services.AuthService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, authService: authService}
}

func (h *ArticleHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return nil, false
	}

	return user, true
}

func (h *ArticleHandler) sendError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case models.ErrorValidation:
		status = http.StatusBadRequest
	case models.ErrorPermission:
		status = http.StatusForbidden
	case models.ErrorNotFound:
		status = http.StatusNotFound
	case models.ErrorExternalService:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(actor, req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetArticles(params, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	})
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetArticles(params, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetPublicArticle serves a single article on the public surface; drafts are
// invisible there.
func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil || !article.Approved {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetPendingArticles(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	articles, err := h.articleService.GetPendingArticles(actor)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.UpdateArticle(actor, uint(id), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	if err := h.articleService.DeleteArticle(actor, uint(id)); err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

func (h *ArticleHandler) ApproveArticle(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.ApproveArticle(actor, uint(id))
	if err != nil {
		var extErr models.ErrorExternalService
		if errors.As(err, &extErr) && article != nil {
			// The approval is committed; only the fan-out failed.
			c.JSON(http.StatusOK, gin.H{
				"article": article,
				"warning": extErr.Error(),
			})
			return
		}
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) SubmitReview(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.articleService.SubmitReview(actor, uint(id), req.Comments)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ArticleHandler) GetReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	reviews, err := h.articleService.GetReviews(uint(id))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ListArticlesAPI serves the legacy flat-list surface: GET /api/articles.
func (h *ArticleHandler) ListArticlesAPI(c *gin.Context) {
	articles, err := h.articleService.GetAllArticles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, articles[i].ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// CreateArticleAPI serves the legacy creation surface: POST /api/articles/create.
func (h *ArticleHandler) CreateArticleAPI(c *gin.Context) {
	actor, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(actor, req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article.ToResponse())
}
