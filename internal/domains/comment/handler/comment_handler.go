package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/comment"
	"titledb-backend/internal/domains/review"
	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/middleware"
	"titledb-backend/internal/shared/response"
)

type CommentHandler struct {
	service      comment.Service
	defaultLimit int
}

func NewCommentHandler(service comment.Service, defaultLimit int) *CommentHandler {
	return &CommentHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

// GET /v1/titles/:title_id/reviews/:review_id/comments/
func (h *CommentHandler) List(c *gin.Context) {
	titleID, reviewID, ok := parentIDs(c)
	if !ok {
		return
	}

	lo := response.LimitOffsetFromQuery(c, h.defaultLimit)

	comments, count, err := h.service.ListByReview(c.Request.Context(), titleID, reviewID, c.Query("search"), lo.Limit, lo.Offset)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	results := make([]comment.CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, comments[i].Response())
	}

	response.Paginated(c, count, results, lo)
}

// GET /v1/titles/:title_id/reviews/:review_id/comments/:id/
func (h *CommentHandler) Get(c *gin.Context) {
	titleID, reviewID, ok := parentIDs(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "comment not found")
	if !ok {
		return
	}

	cm, err := h.service.Get(c.Request.Context(), titleID, reviewID, id)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, cm.Response())
}

// POST /v1/titles/:title_id/reviews/:review_id/comments/
func (h *CommentHandler) Create(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, reviewID, pOK := parentIDs(c)
	if !pOK {
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cm, err := h.service.Create(c.Request.Context(), p, titleID, reviewID, req)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, cm.Response())
}

// PATCH /v1/titles/:title_id/reviews/:review_id/comments/:id/
func (h *CommentHandler) Update(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, reviewID, pOK := parentIDs(c)
	if !pOK {
		return
	}
	id, pOK := pathID(c, "id", "comment not found")
	if !pOK {
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cm, err := h.service.Update(c.Request.Context(), p, titleID, reviewID, id, req)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, cm.Response())
}

// DELETE /v1/titles/:title_id/reviews/:review_id/comments/:id/
func (h *CommentHandler) Delete(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, reviewID, pOK := parentIDs(c)
	if !pOK {
		return
	}
	id, pOK := pathID(c, "id", "comment not found")
	if !pOK {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, titleID, reviewID, id); err != nil {
		respondCommentError(c, err)
		return
	}

	response.NoContent(c)
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, title.ErrTitleNotFound):
		response.NotFound(c, "title not found")
	case errors.Is(err, review.ErrReviewNotFound):
		response.NotFound(c, "review not found")
	case errors.Is(err, comment.ErrCommentNotFound):
		response.NotFound(c, "comment not found")
	case errors.Is(err, comment.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.InternalServerError(c, "comment operation failed")
	}
}

func parentIDs(c *gin.Context) (int64, int64, bool) {
	titleID, ok := pathID(c, "title_id", "title not found")
	if !ok {
		return 0, 0, false
	}
	reviewID, ok := pathID(c, "review_id", "review not found")
	if !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}

func pathID(c *gin.Context, name, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.NotFound(c, notFound)
		return 0, false
	}
	return id, true
}
