package helper

import (
	"errors"
	"net/http"

	"faithstories/services"

	"github.com/gin-gonic/gin"
)

// HTTPHelper maps service errors onto HTTP responses and builds paging
// metadata. Responses use the {data}/{error} envelope the frontends
// expect.
type HTTPHelper struct{}

// StatusCode translates a service error into an HTTP status.
func (u *HTTPHelper) StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the error envelope with the translated status.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(u.StatusCode(err), gin.H{"error": err.Error()})
}

// SendData writes a success envelope.
func (u *HTTPHelper) SendData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// SendList writes a success envelope with paging metadata.
func (u *HTTPHelper) SendList(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
