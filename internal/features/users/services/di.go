package users_services

import (
	"findteam/internal/features/tags"
	users_repositories "findteam/internal/features/users/repositories"
)

var userRepository = &users_repositories.UserRepository{}
var urlRepository = &users_repositories.UserUrlRepository{}

var userService = &UserService{
	userRepository: userRepository,
	urlRepository:  urlRepository,
	tagService:     tags.GetTagService(),
}

func GetUserService() *UserService {
	return userService
}
