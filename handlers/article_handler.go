package handlers

import (
	"errors"
	"strconv"

	"gamepress-cms/helper"
	"gamepress-cms/middleware"
	"gamepress-cms/models"
	"gamepress-cms/services"
	"gamepress-cms/workflow"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: &helper.HTTPHelper{}}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.CreateArticle(req, actor)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Article created", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	articles, total, err := h.articleService.GetArticles(params, false)
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(uint(id), false)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Article not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.UpdateArticle(uint(id), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArticleNotFound):
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		case errors.Is(err, services.ErrNotAuthor):
			h.Helper.SendForbiddenError(c, err.Error(), h.Helper.EmptyJsonMap())
		case errors.Is(err, services.ErrNotEditable):
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

// UpdateArticleStatus is the workflow endpoint: every editorial transition
// goes through here (or the trash/restore shortcuts below).
func (h *ArticleHandler) UpdateArticleStatus(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.UpdateStatus(actor, uint(id), req)
	if err != nil {
		h.sendWorkflowError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Status updated", article)
}

func (h *ArticleHandler) TrashArticle(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var previousStatus *models.ArticleStatus
	if raw := c.Query("previous_status"); raw != "" {
		status := models.ArticleStatus(raw)
		previousStatus = &status
	}

	article, err := h.articleService.TrashArticle(actor, uint(id), previousStatus)
	if err != nil {
		h.sendWorkflowError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article moved to trash", article)
}

func (h *ArticleHandler) RestoreArticle(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.RestoreArticle(actor, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNothingToRestore) {
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.sendWorkflowError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article restored", article)
}

func (h *ArticleHandler) GetArticleHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	entries, err := h.articleService.GetHistory(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "History loaded", entries)
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	articles, total, err := h.articleService.GetArticles(params, true)
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Page, total),
	})
}

// GetPublicArticle returns a published article with its markdown body
// rendered to sanitized HTML.
func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(uint(id), true)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Article not found", h.Helper.EmptyJsonMap())
		return
	}

	rendered, err := services.RenderContent(article.Content)
	if err != nil {
		h.Helper.SendInternalError(c, "Failed to render article", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", gin.H{
		"article":       article,
		"rendered_html": rendered,
	})
}

func (h *ArticleHandler) sendWorkflowError(c *gin.Context, err error) {
	var forbidden *workflow.ForbiddenError
	var invalid *workflow.InvalidRequestError
	var storage *workflow.StorageError

	switch {
	case errors.Is(err, workflow.ErrArticleNotFound):
		h.Helper.SendNotFoundError(c, "Article not found", h.Helper.EmptyJsonMap())
	case errors.Is(err, workflow.ErrNoActor):
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
	case errors.As(err, &forbidden):
		h.Helper.SendForbiddenError(c, forbidden.Error(), h.Helper.EmptyJsonMap())
	case errors.As(err, &invalid):
		h.Helper.SendBadRequest(c, invalid.Error(), h.Helper.EmptyJsonMap())
	case errors.As(err, &storage):
		h.Helper.SendInternalError(c, "Internal error", h.Helper.EmptyJsonMap())
	default:
		h.Helper.SendInternalError(c, "Internal error", h.Helper.EmptyJsonMap())
	}
}
