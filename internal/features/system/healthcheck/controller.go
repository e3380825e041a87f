package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/healthcheck", c.GetHealth)
}

// GetHealth
// @Summary Service health report
// @Tags system
// @Produce json
// @Success 200 {object} HealthReport
// @Failure 500
// @Router /system/healthcheck [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	report, err := c.healthcheckService.GetHealth()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect health report"})
		return
	}

	ctx.JSON(http.StatusOK, report)
}
