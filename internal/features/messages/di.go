package messages

import (
	projects_services "findteam/internal/features/projects/services"
	users_repositories "findteam/internal/features/users/repositories"
	"findteam/internal/util/logger"
	rate_limit "findteam/internal/util/rate_limit"
)

var messageRepository = &MessageRepository{}

var messageService = &MessageService{
	messageRepository: messageRepository,
	userRepository:    &users_repositories.UserRepository{},
	projectService:    projects_services.GetProjectService(),
	rateLimiter:       rate_limit.NewRateLimiter(),
	logger:            logger.GetLogger(),
}

var messageController = &MessageController{
	messageService: messageService,
}

func GetMessageService() *MessageService {
	return messageService
}

func GetMessageController() *MessageController {
	return messageController
}
