package projects_repositories

import (
	"errors"
	"fmt"

	"findteam/internal/apperrors"
	projects_models "findteam/internal/features/projects/models"
	"findteam/internal/storage"

	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(tx *gorm.DB, project *projects_models.Project) error {
	err := tx.Create(project).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: project title %q is taken", apperrors.ErrConflict, project.Title)
	}

	return err
}

func (r *ProjectRepository) GetProjectByPID(pid int64) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("pid = ?", pid).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetProjectByTitle(title string) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("title = ?", title).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetAllProjects() ([]projects_models.Project, error) {
	projects := make([]projects_models.Project, 0)

	err := storage.GetDb().
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) UpdateProject(tx *gorm.DB, project *projects_models.Project) error {
	err := tx.Save(project).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: project title %q is taken", apperrors.ErrConflict, project.Title)
	}

	return err
}

// DeleteProject removes the project and everything hanging off it.
// Raw statements instead of gorm associations so the delete order is
// explicit and never depends on model wiring.
func (r *ProjectRepository) DeleteProject(tx *gorm.DB, pid int64) error {
	if err := tx.Exec("DELETE FROM messages WHERE to_pid = ?", pid).Error; err != nil {
		return err
	}

	if err := tx.Exec("DELETE FROM project_tags WHERE pid = ?", pid).Error; err != nil {
		return err
	}

	if err := tx.Exec("DELETE FROM project_pictures WHERE pid = ?", pid).Error; err != nil {
		return err
	}

	if err := tx.Exec("DELETE FROM project_memberships WHERE pid = ?", pid).Error; err != nil {
		return err
	}

	return tx.Exec("DELETE FROM projects WHERE pid = ?", pid).Error
}

func (r *ProjectRepository) AddPicture(picture *projects_models.ProjectPicture) error {
	return storage.GetDb().Create(picture).Error
}

func (r *ProjectRepository) RemovePicture(pid int64, picture string) error {
	return storage.GetDb().
		Where("pid = ? AND picture = ?", pid, picture).
		Delete(&projects_models.ProjectPicture{}).Error
}

func (r *ProjectRepository) GetProjectPictures(pid int64) ([]string, error) {
	pictures := make([]string, 0)

	err := storage.GetDb().
		Model(&projects_models.ProjectPicture{}).
		Where("pid = ?", pid).
		Order("picture ASC").
		Pluck("picture", &pictures).Error

	return pictures, err
}
