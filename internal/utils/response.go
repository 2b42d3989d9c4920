package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleOK sends a 200 response with a payload that has its own contract
// (contact and health responses are not wrapped in the envelope)
func HandleOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
