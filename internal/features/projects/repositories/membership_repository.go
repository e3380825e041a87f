package projects_repositories

import (
	"errors"
	"fmt"
	"time"

	"findteam/internal/apperrors"
	projects_models "findteam/internal/features/projects/models"
	"findteam/internal/storage"

	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) GetMembership(pid int64, uid int64) (*projects_models.ProjectMembership, error) {
	var membership projects_models.ProjectMembership

	err := storage.GetDb().
		Where("pid = ? AND uid = ?", pid, uid).
		First(&membership).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetProjectMembers(pid int64) ([]projects_models.ProjectMembership, error) {
	members := make([]projects_models.ProjectMembership, 0)

	err := storage.GetDb().
		Where("pid = ?", pid).
		Order("uid ASC").
		Find(&members).Error

	return members, err
}

func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectMembership) error {
	membership.CreatedAt = time.Now().UTC()

	err := storage.GetDb().Create(membership).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf(
			"%w: user %d already has a membership row for project %d",
			apperrors.ErrConflict, membership.UID, membership.PID)
	}

	return err
}

// ReplaceProjectMembers rewrites the whole roster for a project in the
// caller's transaction. Validation happens in the service; by the time
// this runs the rows are assumed well formed.
func (r *MembershipRepository) ReplaceProjectMembers(
	tx *gorm.DB,
	pid int64,
	members []projects_models.ProjectMembership,
) error {
	err := tx.Where("pid = ?", pid).Delete(&projects_models.ProjectMembership{}).Error
	if err != nil {
		return err
	}

	for i := range members {
		members[i].PID = pid
		if members[i].CreatedAt.IsZero() {
			members[i].CreatedAt = time.Now().UTC()
		}

		if err := tx.Create(&members[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetMembershipProjects returns every project the user owns or has a
// roster row in, pending applications included.
func (r *MembershipRepository) GetMembershipProjects(uid int64) ([]projects_models.Project, error) {
	projects := make([]projects_models.Project, 0)

	err := storage.GetDb().
		Model(&projects_models.Project{}).
		Joins("LEFT JOIN project_memberships ON project_memberships.pid = projects.pid AND project_memberships.uid = ?", uid).
		Where("projects.owner_uid = ? OR project_memberships.uid IS NOT NULL", uid).
		Order("projects.created_at DESC").
		Find(&projects).Error

	return projects, err
}
