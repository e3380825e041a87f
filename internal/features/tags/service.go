package tags

import (
	"fmt"

	"findteam/internal/storage"

	"gorm.io/gorm"
)

type TagService struct {
	tagRepository *TagRepository
}

// ReconcileUserTags replaces the user's entire tag set with the desired
// one: delete every association, upsert each shared definition, insert
// fresh association rows. A tag omitted from desired is unconditionally
// unlinked. Callers supply the enclosing transaction; concurrent
// reconciliations for the same owner race last-writer-wins.
func (s *TagService) ReconcileUserTags(tx *gorm.DB, uid int64, desired []TagDTO) error {
	if err := s.tagRepository.DeleteUserTags(tx, uid); err != nil {
		return fmt.Errorf("failed to clear user tags: %w", err)
	}

	for _, tag := range desired {
		if err := s.tagRepository.UpsertTag(tx, &Tag{Text: tag.Text, Category: tag.Category}); err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", tag.Text, err)
		}

		if err := s.tagRepository.CreateUserTag(tx, &UserTag{UID: uid, TagText: tag.Text}); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag.Text, err)
		}
	}

	return nil
}

// ReconcileProjectTags is the project-owned variant; associations carry
// the is_user_requirement flag.
func (s *TagService) ReconcileProjectTags(tx *gorm.DB, pid int64, desired []ProjectTagDTO) error {
	if err := s.tagRepository.DeleteProjectTags(tx, pid); err != nil {
		return fmt.Errorf("failed to clear project tags: %w", err)
	}

	for _, tag := range desired {
		if err := s.tagRepository.UpsertTag(tx, &Tag{Text: tag.Text, Category: tag.Category}); err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", tag.Text, err)
		}

		association := &ProjectTag{
			PID:               pid,
			TagText:           tag.Text,
			IsUserRequirement: tag.IsUserRequirement,
		}
		if err := s.tagRepository.CreateProjectTag(tx, association); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag.Text, err)
		}
	}

	return nil
}

func (s *TagService) GetUserTags(uid int64) ([]TagDTO, error) {
	return s.tagRepository.GetUserTags(storage.GetDb(), uid)
}

func (s *TagService) GetProjectTags(pid int64) ([]ProjectTagDTO, error) {
	return s.tagRepository.GetProjectTags(storage.GetDb(), pid)
}
