package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

// UpstreamError maps a failed store-API call onto the response: the API's
// own message when it reported one, a generic line otherwise. Either way
// the operation is abandoned, there is no retry.
func UpstreamError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "store api unreachable"})
}
