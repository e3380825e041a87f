package tags

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository struct{}

// UpsertTag inserts the shared tag definition. A duplicate text is the
// expected steady state for shared vocabulary and is treated as
// success, not an error.
func (r *TagRepository) UpsertTag(tx *gorm.DB, tag *Tag) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(tag).Error
}

func (r *TagRepository) DeleteUserTags(tx *gorm.DB, uid int64) error {
	return tx.Where("uid = ?", uid).Delete(&UserTag{}).Error
}

func (r *TagRepository) CreateUserTag(tx *gorm.DB, association *UserTag) error {
	return tx.Create(association).Error
}

func (r *TagRepository) DeleteProjectTags(tx *gorm.DB, pid int64) error {
	return tx.Where("pid = ?", pid).Delete(&ProjectTag{}).Error
}

func (r *TagRepository) CreateProjectTag(tx *gorm.DB, association *ProjectTag) error {
	return tx.Create(association).Error
}

func (r *TagRepository) GetUserTags(db *gorm.DB, uid int64) ([]TagDTO, error) {
	results := make([]TagDTO, 0)

	err := db.
		Table("user_tags ut").
		Select("t.text, t.category").
		Joins("JOIN tags t ON t.text = ut.tag_text").
		Where("ut.uid = ?", uid).
		Order("t.text ASC").
		Scan(&results).Error

	return results, err
}

func (r *TagRepository) GetProjectTags(db *gorm.DB, pid int64) ([]ProjectTagDTO, error) {
	results := make([]ProjectTagDTO, 0)

	err := db.
		Table("project_tags pt").
		Select("t.text, t.category, pt.is_user_requirement").
		Joins("JOIN tags t ON t.text = pt.tag_text").
		Where("pt.pid = ?", pid).
		Order("t.text ASC").
		Scan(&results).Error

	return results, err
}
