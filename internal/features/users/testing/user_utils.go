package users_testing

import (
	"fmt"

	users_dto "findteam/internal/features/users/dto"
	users_services "findteam/internal/features/users/services"

	"github.com/google/uuid"
)

type TestUser struct {
	UID   int64
	Email string
	Token string
}

const TestUserPassword = "test-password-123"

func CreateTestUser() (*TestUser, error) {
	email := fmt.Sprintf("test-%s@example.com", uuid.New().String())

	response, err := users_services.GetUserService().Register(&users_dto.RegisterRequestDTO{
		FirstName: "Test",
		Email:     email,
		Password:  TestUserPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test user: %w", err)
	}

	return &TestUser{
		UID:   response.UID,
		Email: email,
		Token: response.AccessToken,
	}, nil
}
