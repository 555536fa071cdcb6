package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/response"
)

type TitleHandler struct {
	service      title.Service
	defaultLimit int
}

func NewTitleHandler(service title.Service, defaultLimit int) *TitleHandler {
	return &TitleHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

// List supports structured filtering and the offset/limit contract.
// GET /v1/titles/
func (h *TitleHandler) List(c *gin.Context) {
	filter := title.ListTitlesFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Genre:    c.Query("genre"),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.FieldError(c, "year", "year must be an integer")
			return
		}
		filter.Year = &year
	}

	lo := response.LimitOffsetFromQuery(c, h.defaultLimit)

	titles, count, err := h.service.List(c.Request.Context(), filter, lo.Limit, lo.Offset)
	if err != nil {
		response.InternalServerError(c, "failed to list titles")
		return
	}

	response.Paginated(c, count, titles, lo)
}

// Get returns the read representation including the derived rating.
// GET /v1/titles/:title_id/
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := titleID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, t)
}

// Create is admin-only.
// POST /v1/titles/
func (h *TitleHandler) Create(c *gin.Context) {
	var req title.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, t)
}

// Update applies a partial update. Admin-only.
// PATCH /v1/titles/:title_id/
func (h *TitleHandler) Update(c *gin.Context) {
	id, ok := titleID(c)
	if !ok {
		return
	}

	var req title.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, t)
}

// Delete removes a title and, through cascade, its reviews and their
// comments. Admin-only.
// DELETE /v1/titles/:title_id/
func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := titleID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *TitleHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, title.ErrTitleNotFound):
		response.NotFound(c, "title not found")
	case errors.Is(err, title.ErrUnknownCategory):
		response.FieldError(c, "category", err.Error())
	case errors.Is(err, title.ErrUnknownGenre):
		response.FieldError(c, "genre", err.Error())
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.InternalServerError(c, "title operation failed")
	}
}

// titleID parses the :title_id path segment; an unparseable id cannot
// resolve to a row, so it is a 404.
func titleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil {
		response.NotFound(c, "title not found")
		return 0, false
	}
	return id, true
}
