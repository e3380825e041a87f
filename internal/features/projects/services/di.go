package projects_services

import (
	"findteam/internal/cache"
	audit_logs "findteam/internal/features/audit_logs"
	projects_models "findteam/internal/features/projects/models"
	projects_repositories "findteam/internal/features/projects/repositories"
	"findteam/internal/features/tags"
	users_repositories "findteam/internal/features/users/repositories"
	cache_utils "findteam/internal/util/cache"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository:    projectRepository,
	membershipRepository: membershipRepository,
	userRepository:       &users_repositories.UserRepository{},
	tagService:           tags.GetTagService(),
	auditLogService:      audit_logs.GetAuditLogService(),
	projectCacheUtil:     cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "projects:"),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	projectService:       projectService,
	auditLogService:      audit_logs.GetAuditLogService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
