package projects_repositories_test

import (
	"testing"
	"time"

	"findteam/internal/apperrors"
	audit_logs "findteam/internal/features/audit_logs"
	projects_enums "findteam/internal/features/projects/enums"
	projects_models "findteam/internal/features/projects/models"
	projects_repositories "findteam/internal/features/projects/repositories"
	projects_testing "findteam/internal/features/projects/testing"
	users_testing "findteam/internal/features/users/testing"
	"findteam/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateMembership_WhenPairExists_ReturnsConflict(t *testing.T) {
	audit_logs.SetupDependencies()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	applicant, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	project, err := projects_testing.CreateTestProject(owner)
	assert.NoError(t, err)

	repository := &projects_repositories.MembershipRepository{}

	err = repository.CreateMembership(&projects_models.ProjectMembership{
		PID:            project.PID,
		UID:            applicant.UID,
		MembershipType: projects_enums.MembershipPending,
	})
	assert.NoError(t, err)

	// the second insert loses the race on the (pid, uid) key
	err = repository.CreateMembership(&projects_models.ProjectMembership{
		PID:            project.PID,
		UID:            applicant.UID,
		MembershipType: projects_enums.MembershipPending,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func Test_CreateProject_WhenTitleExists_ReturnsConflict(t *testing.T) {
	audit_logs.SetupDependencies()

	owner, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	title := "conflict-" + uuid.New().String()
	repository := &projects_repositories.ProjectRepository{}

	first := &projects_models.Project{
		OwnerUID:  owner.UID,
		Title:     title,
		Status:    projects_enums.StatusAwaiting,
		CreatedAt: time.Now().UTC(),
	}
	assert.NoError(t, repository.CreateProject(storage.GetDb(), first))

	second := &projects_models.Project{
		OwnerUID:  owner.UID,
		Title:     title,
		Status:    projects_enums.StatusAwaiting,
		CreatedAt: time.Now().UTC(),
	}
	err = repository.CreateProject(storage.GetDb(), second)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
