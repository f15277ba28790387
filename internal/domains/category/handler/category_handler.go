package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

// RegisterRoutes mounts the category endpoints on rg.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.GET("/:id", h.GetByID)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/categories
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, category.ToResponseList(categories))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cat.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/categories
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req category.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}
