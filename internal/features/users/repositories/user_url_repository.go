package users_repositories

import (
	users_models "findteam/internal/features/users/models"
	"findteam/internal/storage"

	"gorm.io/gorm"
)

type UserUrlRepository struct{}

func (r *UserUrlRepository) GetUserUrls(uid int64) ([]users_models.UserUrl, error) {
	urls := make([]users_models.UserUrl, 0)

	err := storage.GetDb().
		Where("uid = ?", uid).
		Order("domain ASC").
		Find(&urls).Error

	return urls, err
}

// ReplaceUserUrls drops the user's whole url set and writes the
// submitted one; it always runs inside the profile-update transaction.
func (r *UserUrlRepository) ReplaceUserUrls(tx *gorm.DB, uid int64, urls []users_models.UserUrl) error {
	if err := tx.Where("uid = ?", uid).Delete(&users_models.UserUrl{}).Error; err != nil {
		return err
	}

	for i := range urls {
		urls[i].UID = uid
		if err := tx.Create(&urls[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
