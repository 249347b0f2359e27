// Package handler holds HTTP handlers that belong to the platform layer
// rather than to any single feature.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health serves /healthz for liveness probes.
// Responses carry no-store so a probe always reflects the current process.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
