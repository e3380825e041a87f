package projects_controllers

import (
	"fmt"
	"net/http"
	"testing"

	audit_logs "findteam/internal/features/audit_logs"
	projects_dto "findteam/internal/features/projects/dto"
	projects_enums "findteam/internal/features/projects/enums"
	projects_testing "findteam/internal/features/projects/testing"
	users_middleware "findteam/internal/features/users/middleware"
	users_services "findteam/internal/features/users/services"
	users_testing "findteam/internal/features/users/testing"
	test_utils "findteam/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateProject_AsUser_ReturnsProjectOwnedByCaller(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	request := projects_dto.CreateProjectRequestDTO{
		Title:       "Controller Project " + uuid.New().String(),
		Description: "A project created over HTTP",
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/projects", "Bearer "+owner.Token, request, http.StatusOK, &response)

	assert.Equal(t, owner.UID, response.OwnerUID)
	assert.Equal(t, projects_enums.StatusAwaiting, response.Status)
	assert.Empty(t, response.Members)
}

func Test_GetProject_WhenMissing_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	test_utils.MakeGetRequest(
		t, router, "/api/v1/projects/999999999", "Bearer "+user.Token, http.StatusNotFound)
}

func Test_UpdateProject_WithOwnerInRoster_ReturnsNotAcceptableAndKeepsRoster(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	member, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	addMember(t, router, owner, project, member.UID, projects_enums.MembershipMember)

	// roster naming the owner must be rejected as a whole
	badRequest := projects_dto.UpdateProjectRequestDTO{
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Members: []projects_dto.MemberInputDTO{
			{UID: owner.UID, MembershipType: projects_enums.MembershipAdmin},
		},
	}

	test_utils.MakeRequest(
		t, router, "PUT", projectURL(project.PID), "Bearer "+owner.Token,
		badRequest, http.StatusNotAcceptable)

	var after projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, projectURL(project.PID), "Bearer "+owner.Token, http.StatusOK, &after)

	assert.Len(t, after.Members, 1)
	assert.Equal(t, member.UID, after.Members[0].UID)
}

func Test_UpdateProject_WithDuplicateRosterUID_ReturnsConflict(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	member, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	request := projects_dto.UpdateProjectRequestDTO{
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Members: []projects_dto.MemberInputDTO{
			{UID: member.UID, MembershipType: projects_enums.MembershipMember},
			{UID: member.UID, MembershipType: projects_enums.MembershipAdmin},
		},
	}

	test_utils.MakeRequest(
		t, router, "PUT", projectURL(project.PID), "Bearer "+owner.Token,
		request, http.StatusBadRequest)
}

func Test_UpdateProject_WithUnknownRosterUID_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	request := projects_dto.UpdateProjectRequestDTO{
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Members: []projects_dto.MemberInputDTO{
			{UID: 999999999, MembershipType: projects_enums.MembershipMember},
		},
	}

	test_utils.MakeRequest(
		t, router, "PUT", projectURL(project.PID), "Bearer "+owner.Token,
		request, http.StatusNotFound)
}

func Test_UpdateProject_AsPlainMember_ReturnsForbidden(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	member, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	addMember(t, router, owner, project, member.UID, projects_enums.MembershipMember)

	request := projects_dto.UpdateProjectRequestDTO{
		Title:       project.Title,
		Description: "member tries to edit",
		Status:      project.Status,
		Members: []projects_dto.MemberInputDTO{
			{UID: member.UID, MembershipType: projects_enums.MembershipMember},
		},
	}

	test_utils.MakeRequest(
		t, router, "PUT", projectURL(project.PID), "Bearer "+member.Token,
		request, http.StatusForbidden)
}

func Test_UpdateProject_AsAdminMember_Succeeds(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	admin, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	addMember(t, router, owner, project, admin.UID, projects_enums.MembershipAdmin)

	request := projects_dto.UpdateProjectRequestDTO{
		Title:       project.Title,
		Description: "edited by an admin member",
		Status:      projects_enums.StatusInProgress,
		Members: []projects_dto.MemberInputDTO{
			{UID: admin.UID, MembershipType: projects_enums.MembershipAdmin},
		},
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t, router, projectURL(project.PID), "Bearer "+admin.Token,
		request, http.StatusOK, &response)

	assert.Equal(t, "edited by an admin member", response.Description)
	assert.Equal(t, projects_enums.StatusInProgress, response.Status)
}

func Test_DeleteProject_AsAdminMember_ReturnsForbidden(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	admin, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	addMember(t, router, owner, project, admin.UID, projects_enums.MembershipAdmin)

	test_utils.MakeDeleteRequest(
		t, router, projectURL(project.PID), "Bearer "+admin.Token, http.StatusForbidden)
}

func Test_DeleteProject_AsOwner_RemovesProject(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	test_utils.MakeDeleteRequest(
		t, router, projectURL(project.PID), "Bearer "+owner.Token, http.StatusOK)

	test_utils.MakeGetRequest(
		t, router, projectURL(project.PID), "Bearer "+owner.Token, http.StatusNotFound)
}

func Test_Apply_CreatesPendingMembership(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	applicant, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	test_utils.MakePostRequest(
		t, router, projectURL(project.PID)+"/apply", "Bearer "+applicant.Token,
		nil, http.StatusOK)

	var members []projects_dto.MemberResultDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, projectURL(project.PID)+"/members", "Bearer "+owner.Token,
		http.StatusOK, &members)

	assert.Len(t, members, 1)
	assert.Equal(t, applicant.UID, members[0].UID)
	assert.Equal(t, projects_enums.MembershipPending, members[0].MembershipType)
}

func Test_Apply_WhenAlreadyAssociated_ReturnsConflict(t *testing.T) {
	router := createProjectTestRouter()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	applicant, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	test_utils.MakePostRequest(
		t, router, projectURL(project.PID)+"/apply", "Bearer "+applicant.Token,
		nil, http.StatusOK)

	// a pending row already exists
	test_utils.MakePostRequest(
		t, router, projectURL(project.PID)+"/apply", "Bearer "+applicant.Token,
		nil, http.StatusBadRequest)

	// the owner is implicitly at the top of the lattice
	test_utils.MakePostRequest(
		t, router, projectURL(project.PID)+"/apply", "Bearer "+owner.Token,
		nil, http.StatusBadRequest)
}

func addMember(
	t *testing.T,
	router *gin.Engine,
	owner *users_testing.TestUser,
	project *projects_dto.ProjectResponseDTO,
	uid int64,
	membershipType projects_enums.MembershipType,
) {
	t.Helper()

	request := projects_dto.UpdateProjectRequestDTO{
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		Members: []projects_dto.MemberInputDTO{
			{UID: uid, MembershipType: membershipType},
		},
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t, router, projectURL(project.PID), "Bearer "+owner.Token,
		request, http.StatusOK, &response)
}

func projectURL(pid int64) string {
	return fmt.Sprintf("/api/v1/projects/%d", pid)
}

func createProjectTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	audit_logs.SetupDependencies()

	v1 := router.Group("/api/v1")

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetProjectController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))

	return router
}
