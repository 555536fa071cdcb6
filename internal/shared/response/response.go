package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JSON writes payload as-is.
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Detail writes the generic error shape {"detail": "..."}.
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

func BadRequest(c *gin.Context, message string) {
	Detail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Detail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Detail(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Detail(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Detail(c, http.StatusInternalServerError, message)
}

// FieldError writes a 400 keyed by the offending field.
func FieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{field: message})
}

// ValidationError writes a 400. Ozzo errors marshal as a field-keyed
// object; anything else falls back to the generic detail shape.
func ValidationError(c *gin.Context, err error) {
	if fieldErrs, ok := err.(validation.Errors); ok {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}
	BadRequest(c, err.Error())
}
