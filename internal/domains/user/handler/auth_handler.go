package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/user"
	"titledb-backend/internal/shared/response"
)

type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup registers or refreshes a pending signup and emails the code.
// Echoes the accepted pair so clients can confirm what was registered.
// POST /v1/auth/signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user.SignupRequest{
		Username: u.Username,
		Email:    u.Email,
	})
}

// POST /v1/auth/token/
func (h *AuthHandler) Token(c *gin.Context) {
	var req user.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user.TokenResponse{Token: token})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		response.FieldError(c, "username", err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		response.FieldError(c, "email", err.Error())
	case errors.Is(err, user.ErrInvalidConfirmationCode):
		response.FieldError(c, "confirmation_code", err.Error())
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.InternalServerError(c, "authentication failed")
	}
}
