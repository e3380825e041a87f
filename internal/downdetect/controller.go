package downdetect

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DowndetectController struct {
	downdetectService *DowndetectService
}

func (c *DowndetectController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/downdetect", c.CheckAvailability)
}

// CheckAvailability
// @Summary Dependency availability probe
// @Description Verifies the database and cache are reachable
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /downdetect [get]
func (c *DowndetectController) CheckAvailability(ctx *gin.Context) {
	if err := c.downdetectService.IsAvailable(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "available"})
}
