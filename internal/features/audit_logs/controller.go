package audit_logs

import (
	"net/http"
	"strconv"

	"findteam/internal/apperrors"
	users_models "findteam/internal/features/users/models"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	// All audit log endpoints require authentication (handled in main.go)
	auditRoutes := router.Group("/audit-logs")

	auditRoutes.GET("/users/:uid", c.GetUserAuditLogs)
}

// GetUserAuditLogs
// @Summary Get user audit logs
// @Description Retrieve audit logs for the authenticated user
// @Tags audit-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param uid path int true "User ID"
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Filter logs created before this date (RFC3339 format)" format(date-time)
// @Success 200 {object} GetAuditLogsResponse
// @Failure 403 {object} map[string]string
// @Failure 406 {object} map[string]string
// @Router /audit-logs/users/{uid} [get]
func (c *AuditLogController) GetUserAuditLogs(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	targetUID, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotFound)
		return
	}

	request := &GetAuditLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	response, err := c.auditLogService.GetUserAuditLogs(targetUID, user, request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
