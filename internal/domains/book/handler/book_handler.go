package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// RegisterRoutes mounts the book endpoints on rg.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.List)
		books.POST("", h.Create)
		books.GET("/:id", h.GetByID)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponseList(books))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
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
// UPDATE: PUT /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req book.BookRequest
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
// DELETE: DELETE /v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
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
