package projects_services

import (
	"fmt"

	"findteam/internal/apperrors"
	audit_logs "findteam/internal/features/audit_logs"
	projects_dto "findteam/internal/features/projects/dto"
	projects_enums "findteam/internal/features/projects/enums"
	projects_models "findteam/internal/features/projects/models"
	projects_repositories "findteam/internal/features/projects/repositories"
	users_models "findteam/internal/features/users/models"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	projectService       *ProjectService
	auditLogService      *audit_logs.AuditLogService
}

// Apply files a pending application. Anyone already on the lattice,
// owner included, is rejected so a pending row can never shadow a
// stronger level.
func (s *MembershipService) Apply(pid int64, user *users_models.User) error {
	project, level, err := s.projectService.getProjectWithLevel(pid, user.UID)
	if err != nil {
		return err
	}

	if !level.CanApply() {
		return fmt.Errorf("%w: already associated with this project", apperrors.ErrConflict)
	}

	membership := &projects_models.ProjectMembership{
		PID:            pid,
		UID:            user.UID,
		MembershipType: projects_enums.MembershipPending,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Applied to project: %s", project.Title),
		&user.UID,
		&pid,
	)

	return nil
}

func (s *MembershipService) GetMembers(pid int64) ([]projects_dto.MemberResultDTO, error) {
	project, err := s.projectService.projectRepository.GetProjectByPID(pid)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, fmt.Errorf("%w: project %d", apperrors.ErrNotFound, pid)
	}

	members, err := s.membershipRepository.GetProjectMembers(pid)
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

	return memberDTOs, nil
}
