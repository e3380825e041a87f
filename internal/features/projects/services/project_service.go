package projects_services

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"findteam/internal/apperrors"
	audit_logs "findteam/internal/features/audit_logs"
	projects_dto "findteam/internal/features/projects/dto"
	projects_enums "findteam/internal/features/projects/enums"
	projects_models "findteam/internal/features/projects/models"
	projects_repositories "findteam/internal/features/projects/repositories"
	"findteam/internal/features/tags"
	users_models "findteam/internal/features/users/models"
	users_repositories "findteam/internal/features/users/repositories"
	"findteam/internal/storage"
	cache_utils "findteam/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	userRepository       *users_repositories.UserRepository
	tagService           *tags.TagService
	auditLogService      *audit_logs.AuditLogService

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	status := request.Status
	if status == "" {
		status = projects_enums.StatusAwaiting
	}

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown project status", apperrors.ErrValidation)
	}

	existing, err := s.projectRepository.GetProjectByTitle(request.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check project title: %w", err)
	}

	if existing != nil {
		return nil, fmt.Errorf("%w: project with this title already exists", apperrors.ErrConflict)
	}

	project := &projects_models.Project{
		OwnerUID:    creator.UID,
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepository.CreateProject(tx, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		if err := s.tagService.ReconcileProjectTags(tx, project.PID, request.Tags); err != nil {
			return fmt.Errorf("failed to reconcile tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(cacheKey(project.PID), project)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Title),
		&creator.UID,
		&project.PID,
	)

	return s.buildProjectResponse(project)
}

func (s *ProjectService) GetProject(pid int64) (*projects_dto.ProjectResponseDTO, error) {
	project, err := s.projectRepository.GetProjectByPID(pid)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, pid)
	}

	return s.buildProjectResponse(project)
}

func (s *ProjectService) ListProjects() (*projects_dto.ProjectListResponseDTO, error) {
	projects, err := s.projectRepository.GetAllProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return buildProjectList(projects), nil
}

func (s *ProjectService) ListUserProjects(uid int64) (*projects_dto.ProjectListResponseDTO, error) {
	projects, err := s.membershipRepository.GetMembershipProjects(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list user projects: %w", err)
	}

	return buildProjectList(projects), nil
}

// UpdateProject is a full replace of title, description, status, roster
// and tags. The caller must hold at least admin level; the roster is
// validated before the transaction so a bad submission leaves the
// stored roster untouched.
func (s *ProjectService) UpdateProject(
	pid int64,
	request *projects_dto.UpdateProjectRequestDTO,
	editor *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project, level, err := s.getProjectWithLevel(pid, editor.UID)
	if err != nil {
		return nil, err
	}

	if !level.CanEditProject() {
		return nil, fmt.Errorf("%w: admin level required", apperrors.ErrForbidden)
	}

	if !request.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown project status", apperrors.ErrValidation)
	}

	if request.Title != project.Title {
		existing, err := s.projectRepository.GetProjectByTitle(request.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to check project title: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: project with this title already exists", apperrors.ErrConflict)
		}
	}

	roster, err := s.validateRoster(project, request.Members)
	if err != nil {
		return nil, err
	}

	project.Title = request.Title
	project.Description = request.Description
	project.Status = request.Status

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepository.UpdateProject(tx, project); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}

		if err := s.membershipRepository.ReplaceProjectMembers(tx, pid, roster); err != nil {
			return fmt.Errorf("failed to replace members: %w", err)
		}

		if err := s.tagService.ReconcileProjectTags(tx, pid, request.Tags); err != nil {
			return fmt.Errorf("failed to reconcile tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.projectCacheUtil.Invalidate(cacheKey(pid))

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Title),
		&editor.UID,
		&project.PID,
	)

	return s.buildProjectResponse(project)
}

func (s *ProjectService) DeleteProject(pid int64, user *users_models.User) error {
	project, level, err := s.getProjectWithLevel(pid, user.UID)
	if err != nil {
		return err
	}

	if !level.CanDeleteProject() {
		return fmt.Errorf("%w: only the owner can delete a project", apperrors.ErrForbidden)
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return s.projectRepository.DeleteProject(tx, pid)
	})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCacheUtil.Invalidate(cacheKey(pid))

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Title),
		&user.UID,
		nil,
	)

	return nil
}

// GetEffectiveLevel folds ownership and the roster into one ordered
// level. The owner never has a roster row, so the owner check comes
// first and wins.
func (s *ProjectService) GetEffectiveLevel(
	project *projects_models.Project,
	uid int64,
) (projects_enums.EffectiveLevel, error) {
	if project.OwnerUID == uid {
		return projects_enums.LevelOwner, nil
	}

	membership, err := s.membershipRepository.GetMembership(project.PID, uid)
	if err != nil {
		return projects_enums.LevelNone, fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return projects_enums.LevelNone, nil
	}

	return projects_enums.LevelFromMembership(membership.MembershipType), nil
}

func (s *ProjectService) AddPicture(pid int64, picture string, user *users_models.User) error {
	_, level, err := s.getProjectWithLevel(pid, user.UID)
	if err != nil {
		return err
	}

	if !level.CanManagePictures() {
		return fmt.Errorf("%w: admin level required", apperrors.ErrForbidden)
	}

	return s.projectRepository.AddPicture(&projects_models.ProjectPicture{PID: pid, Picture: picture})
}

func (s *ProjectService) RemovePicture(pid int64, picture string, user *users_models.User) error {
	_, level, err := s.getProjectWithLevel(pid, user.UID)
	if err != nil {
		return err
	}

	if !level.CanManagePictures() {
		return fmt.Errorf("%w: admin level required", apperrors.ErrForbidden)
	}

	return s.projectRepository.RemovePicture(pid, picture)
}

// GetProjectWithCache is the hot-path lookup for message addressing.
// Valkey first, then the database behind singleflight, with a
// not-exists sentinel so unknown pids do not hammer the database.
func (s *ProjectService) GetProjectWithCache(pid int64) (*projects_models.Project, error) {
	key := cacheKey(pid)

	// Tier 1: check cache
	if cachedProject := s.projectCacheUtil.Get(key); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, pid)
		}

		return cachedProject, nil
	}

	// Tier 2: database lookup with singleflight protection
	result, err, _ := s.singleflight.Do(key, func() (any, error) {
		return s.projectRepository.GetProjectByPID(pid)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	if project == nil {
		// Cache the miss to prevent future DB hits
		s.projectCacheUtil.Set(key, &projects_models.Project{PID: pid, IsNotExists: true})
		return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, pid)
	}

	s.projectCacheUtil.Set(key, project)

	return project, nil
}

func (s *ProjectService) getProjectWithLevel(
	pid int64,
	uid int64,
) (*projects_models.Project, projects_enums.EffectiveLevel, error) {
	project, err := s.projectRepository.GetProjectByPID(pid)
	if err != nil {
		return nil, projects_enums.LevelNone, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, projects_enums.LevelNone, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, pid)
	}

	level, err := s.GetEffectiveLevel(project, uid)
	if err != nil {
		return nil, projects_enums.LevelNone, err
	}

	return project, level, nil
}

// validateRoster checks a submitted roster before any row is touched.
// The owner may not appear in it, uids may not repeat, every uid must
// exist and every membership type must be one of the three stored ones.
func (s *ProjectService) validateRoster(
	project *projects_models.Project,
	members []projects_dto.MemberInputDTO,
) ([]projects_models.ProjectMembership, error) {
	seen := make(map[int64]bool, len(members))
	roster := make([]projects_models.ProjectMembership, 0, len(members))

	for _, member := range members {
		if member.UID == project.OwnerUID {
			return nil, fmt.Errorf("%w: owner cannot appear in the roster", apperrors.ErrValidation)
		}

		if seen[member.UID] {
			return nil, fmt.Errorf("%w: duplicate uid %d in roster", apperrors.ErrConflict, member.UID)
		}
		seen[member.UID] = true

		if !member.MembershipType.IsValid() {
			return nil, fmt.Errorf("%w: unknown membership type", apperrors.ErrValidation)
		}

		user, err := s.userRepository.GetUserByUID(member.UID)
		if err != nil {
			return nil, fmt.Errorf("failed to check roster uid: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, member.UID)
		}

		roster = append(roster, projects_models.ProjectMembership{
			PID:            project.PID,
			UID:            member.UID,
			MembershipType: member.MembershipType,
		})
	}

	return roster, nil
}

func (s *ProjectService) buildProjectResponse(
	project *projects_models.Project,
) (*projects_dto.ProjectResponseDTO, error) {
	members, err := s.membershipRepository.GetProjectMembers(project.PID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	memberDTOs := make([]projects_dto.MemberResultDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = projects_dto.MemberResultDTO{
			UID:            member.UID,
			MembershipType: member.MembershipType,
		}
	}

	pictures, err := s.projectRepository.GetProjectPictures(project.PID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pictures: %w", err)
	}

	projectTags, err := s.tagService.GetProjectTags(project.PID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	return &projects_dto.ProjectResponseDTO{
		PID:         project.PID,
		OwnerUID:    project.OwnerUID,
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		CreatedAt:   project.CreatedAt,
		Members:     memberDTOs,
		Pictures:    pictures,
		Tags:        projectTags,
	}, nil
}

func buildProjectList(projects []projects_models.Project) *projects_dto.ProjectListResponseDTO {
	summaries := make([]projects_dto.ProjectSummaryDTO, len(projects))
	for i, project := range projects {
		summaries[i] = projects_dto.ProjectSummaryDTO{
			PID:      project.PID,
			OwnerUID: project.OwnerUID,
			Title:    project.Title,
			Status:   project.Status,
		}
	}

	return &projects_dto.ProjectListResponseDTO{Projects: summaries}
}

func cacheKey(pid int64) string {
	return strconv.FormatInt(pid, 10)
}
