package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/review"
	"titledb-backend/internal/domains/title"
	"titledb-backend/internal/shared/middleware"
	"titledb-backend/internal/shared/response"
)

type ReviewHandler struct {
	service      review.Service
	defaultLimit int
}

func NewReviewHandler(service review.Service, defaultLimit int) *ReviewHandler {
	return &ReviewHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

// List uses the offset/limit contract and supports text search.
// GET /v1/titles/:title_id/reviews/
func (h *ReviewHandler) List(c *gin.Context) {
	titleID, ok := pathID(c, "title_id", "title not found")
	if !ok {
		return
	}

	lo := response.LimitOffsetFromQuery(c, h.defaultLimit)

	reviews, count, err := h.service.ListByTitle(c.Request.Context(), titleID, c.Query("search"), lo.Limit, lo.Offset)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	results := make([]review.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		results = append(results, reviews[i].Response())
	}

	response.Paginated(c, count, results, lo)
}

// GET /v1/titles/:title_id/reviews/:review_id/
func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, ok := pathID(c, "title_id", "title not found")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "review_id", "review not found")
	if !ok {
		return
	}

	rev, err := h.service.Get(c.Request.Context(), titleID, reviewID)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rev.Response())
}

// Create posts the requester's single review of the title.
// POST /v1/titles/:title_id/reviews/
func (h *ReviewHandler) Create(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, pOK := pathID(c, "title_id", "title not found")
	if !pOK {
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rev, err := h.service.Create(c.Request.Context(), p, titleID, req)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, rev.Response())
}

// PATCH /v1/titles/:title_id/reviews/:review_id/
func (h *ReviewHandler) Update(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, pOK := pathID(c, "title_id", "title not found")
	if !pOK {
		return
	}
	reviewID, pOK := pathID(c, "review_id", "review not found")
	if !pOK {
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rev, err := h.service.Update(c.Request.Context(), p, titleID, reviewID, req)
	if err != nil {
		respondReviewError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rev.Response())
}

// DELETE /v1/titles/:title_id/reviews/:review_id/
func (h *ReviewHandler) Delete(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	titleID, pOK := pathID(c, "title_id", "title not found")
	if !pOK {
		return
	}
	reviewID, pOK := pathID(c, "review_id", "review not found")
	if !pOK {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, titleID, reviewID); err != nil {
		respondReviewError(c, err)
		return
	}

	response.NoContent(c)
}

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, title.ErrTitleNotFound):
		response.NotFound(c, "title not found")
	case errors.Is(err, review.ErrReviewNotFound):
		response.NotFound(c, "review not found")
	case errors.Is(err, review.ErrAlreadyReviewed):
		response.BadRequest(c, err.Error())
	case errors.Is(err, review.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.InternalServerError(c, "review operation failed")
	}
}

// pathID parses a numeric path segment; an unparseable id cannot
// resolve to a row, so it is a 404.
func pathID(c *gin.Context, name, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.NotFound(c, notFound)
		return 0, false
	}
	return id, true
}
