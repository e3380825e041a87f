package users_controllers

import (
	users_repositories "findteam/internal/features/users/repositories"
	users_services "findteam/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	userService:    users_services.GetUserService(),
	userRepository: &users_repositories.UserRepository{},
	signinLimiter:  rate.NewLimiter(rate.Limit(3), 3), // 3 RPS with burst of 3
}

func GetUserController() *UserController {
	return userController
}
