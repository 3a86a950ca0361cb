package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHomeRoutes registers the root route.
func RegisterHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary API root
// @Description Returns the service name and status.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "hotel-management-app",
		"status":  "ok",
	})
}
