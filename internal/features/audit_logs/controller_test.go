package audit_logs

import (
	"fmt"
	"net/http"
	"testing"

	users_middleware "findteam/internal/features/users/middleware"
	users_services "findteam/internal/features/users/services"
	users_testing "findteam/internal/features/users/testing"
	test_utils "findteam/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_GetUserAuditLogs_ForSelf_ReturnsRegistrationEntry(t *testing.T) {
	router := createRouter()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	var response GetAuditLogsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, auditLogsURL(user.UID), "Bearer "+user.Token, http.StatusOK, &response)

	assert.GreaterOrEqual(t, len(response.AuditLogs), 1)

	found := false
	for _, entry := range response.AuditLogs {
		if entry.UID != nil && *entry.UID == user.UID {
			found = true
		}
	}
	assert.True(t, found, "expected at least one entry for the user")
}

func Test_GetUserAuditLogs_ForAnotherUser_ReturnsForbidden(t *testing.T) {
	router := createRouter()

	viewer, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	other, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	test_utils.MakeGetRequest(
		t, router, auditLogsURL(other.UID), "Bearer "+viewer.Token, http.StatusForbidden)
}

func auditLogsURL(uid int64) string {
	return fmt.Sprintf("/api/v1/audit-logs/users/%d", uid)
}

func createRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupDependencies()

	v1 := router.Group("/api/v1")

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetAuditLogController().RegisterRoutes(protected.(*gin.RouterGroup))

	return router
}
