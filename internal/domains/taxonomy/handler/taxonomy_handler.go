package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/taxonomy"
	"titledb-backend/internal/shared/response"
)

// TermHandler serves one catalog dimension; the router mounts one
// instance for categories and one for genres.
type TermHandler struct {
	service  taxonomy.Service
	kind     taxonomy.Kind
	pageSize int
}

func NewTermHandler(service taxonomy.Service, kind taxonomy.Kind, pageSize int) *TermHandler {
	return &TermHandler{
		service:  service,
		kind:     kind,
		pageSize: pageSize,
	}
}

// List uses the numbered-page contract with a fixed page size.
// GET /v1/categories/ and /v1/genres/
func (h *TermHandler) List(c *gin.Context) {
	page := response.PageFromQuery(c, h.pageSize)

	terms, count, err := h.service.List(c.Request.Context(), c.Query("search"), page.Limit(), page.Offset())
	if err != nil {
		response.InternalServerError(c, fmt.Sprintf("failed to list %s", h.kind.Table))
		return
	}

	response.PagePaginated(c, count, terms, page)
}

// Create is admin-only (enforced by route middleware).
// POST /v1/categories/ and /v1/genres/
func (h *TermHandler) Create(c *gin.Context) {
	var req taxonomy.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	term, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, taxonomy.ErrSlugExists) {
			response.FieldError(c, "slug", fmt.Sprintf("%s with this slug already exists", h.kind.Singular))
			return
		}
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.InternalServerError(c, fmt.Sprintf("failed to create %s", h.kind.Singular))
		return
	}

	response.JSON(c, http.StatusCreated, term)
}

// Delete removes a term by slug; referencing titles keep existing but
// lose the link (SET NULL cascade).
// DELETE /v1/categories/:slug/ and /v1/genres/:slug/
func (h *TermHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, taxonomy.ErrTermNotFound) {
			response.NotFound(c, fmt.Sprintf("%s not found", h.kind.Singular))
			return
		}
		response.InternalServerError(c, fmt.Sprintf("failed to delete %s", h.kind.Singular))
		return
	}

	response.NoContent(c)
}
