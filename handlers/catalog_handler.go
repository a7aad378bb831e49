package handlers

import (
	"errors"
	"strconv"

	"gamepress-cms/helper"
	"gamepress-cms/models"
	"gamepress-cms/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	Helper         *helper.HTTPHelper
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, Helper: &helper.HTTPHelper{}}
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.catalogService.CreateCategory(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Category created", category)
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Categories loaded", categories)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.catalogService.UpdateCategory(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Category not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Category updated", category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.catalogService.DeleteCategory(uint(id)); err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Category deleted", h.Helper.EmptyJsonMap())
}

func (h *CatalogHandler) CreatePlatform(c *gin.Context) {
	var req models.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	platform, err := h.catalogService.CreatePlatform(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Platform created", platform)
}

func (h *CatalogHandler) GetPlatforms(c *gin.Context) {
	platforms, err := h.catalogService.GetPlatforms()
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Platforms loaded", platforms)
}

func (h *CatalogHandler) DeletePlatform(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid platform ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.catalogService.DeletePlatform(uint(id)); err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Platform deleted", h.Helper.EmptyJsonMap())
}

func (h *CatalogHandler) CreateCompany(c *gin.Context) {
	var req models.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	company, err := h.catalogService.CreateCompany(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Company created", company)
}

func (h *CatalogHandler) GetCompanies(c *gin.Context) {
	companies, err := h.catalogService.GetCompanies()
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Companies loaded", companies)
}

func (h *CatalogHandler) DeleteCompany(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid company ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.catalogService.DeleteCompany(uint(id)); err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Company deleted", h.Helper.EmptyJsonMap())
}

func (h *CatalogHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	game, err := h.catalogService.CreateGame(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Game created", game)
}

func (h *CatalogHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid game ID", h.Helper.EmptyJsonMap())
		return
	}

	game, err := h.catalogService.GetGame(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Game not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Game loaded", game)
}

func (h *CatalogHandler) GetGames(c *gin.Context) {
	games, err := h.catalogService.GetGames()
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Games loaded", games)
}

func (h *CatalogHandler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid game ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	game, err := h.catalogService.UpdateGame(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Game not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Game updated", game)
}

func (h *CatalogHandler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid game ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.catalogService.DeleteGame(uint(id)); err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Game deleted", h.Helper.EmptyJsonMap())
}
