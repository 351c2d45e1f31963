package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/services"
)

// renderError maps service errors onto HTTP statuses. Anything outside the
// known set is a server fault and is not leaked to the caller.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateISBN):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyBorrowed),
		errors.Is(err, services.ErrNotBorrowed),
		errors.Is(err, services.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
