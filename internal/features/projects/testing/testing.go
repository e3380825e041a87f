package projects_testing

import (
	"fmt"

	projects_dto "findteam/internal/features/projects/dto"
	projects_services "findteam/internal/features/projects/services"
	"findteam/internal/features/tags"
	users_repositories "findteam/internal/features/users/repositories"
	users_testing "findteam/internal/features/users/testing"

	"github.com/google/uuid"
)

func CreateTestProject(owner *users_testing.TestUser) (*projects_dto.ProjectResponseDTO, error) {
	return CreateTestProjectWithTags(owner, nil)
}

func CreateTestProjectWithTags(
	owner *users_testing.TestUser,
	projectTags []tags.ProjectTagDTO,
) (*projects_dto.ProjectResponseDTO, error) {
	userRepository := &users_repositories.UserRepository{}

	user, err := userRepository.GetUserByUID(owner.UID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("failed to load test project owner: %w", err)
	}

	return projects_services.GetProjectService().CreateProject(&projects_dto.CreateProjectRequestDTO{
		Title:       fmt.Sprintf("Test Project %s", uuid.New().String()),
		Description: "Created for tests",
		Tags:        projectTags,
	}, user)
}
