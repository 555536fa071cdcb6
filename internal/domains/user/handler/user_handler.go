package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/user"
	"titledb-backend/internal/shared/middleware"
	"titledb-backend/internal/shared/response"
)

type UserHandler struct {
	service      user.Service
	defaultLimit int
}

func NewUserHandler(service user.Service, defaultLimit int) *UserHandler {
	return &UserHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

// GET /v1/users/
func (h *UserHandler) List(c *gin.Context) {
	lo := response.LimitOffsetFromQuery(c, h.defaultLimit)

	users, count, err := h.service.List(c.Request.Context(), c.Query("search"), lo.Limit, lo.Offset)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Paginated(c, count, users, lo)
}

// GET /v1/users/:username/
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, u)
}

// POST /v1/users/
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, u)
}

// PATCH /v1/users/:username/
func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, u)
}

// DELETE /v1/users/:username/
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		respondUserError(c, err)
		return
	}

	response.NoContent(c)
}

// GET /v1/users/me/
func (h *UserHandler) GetSelf(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.GetSelf(c.Request.Context(), p)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, u)
}

// PATCH /v1/users/me/
func (h *UserHandler) UpdateSelf(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.UpdateSelf(c.Request.Context(), p, req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, u)
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		response.FieldError(c, "username", err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		response.FieldError(c, "email", err.Error())
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.InternalServerError(c, "user operation failed")
	}
}
