package users_repositories

import (
	"errors"
	"fmt"

	"findteam/internal/apperrors"
	users_models "findteam/internal/features/users/models"
	"findteam/internal/storage"

	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(tx *gorm.DB, user *users_models.User) error {
	err := tx.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: email %s is taken", apperrors.ErrConflict, user.Email)
	}

	return err
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByUID(uid int64) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("uid = ?", uid).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

// GetUserByAccessToken resolves the decoded session secret by exact
// byte equality. A missing row is reported as (nil, nil); callers fold
// it into the uniform unauthorized outcome.
func (r *UserRepository) GetUserByAccessToken(secret []byte) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("access_token = ?", secret).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUser(tx *gorm.DB, user *users_models.User) error {
	return tx.Save(user).Error
}

func (r *UserRepository) UpdateUserPassword(uid int64, hashedPassword []byte) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("uid = ?", uid).
		Update("password", hashedPassword).Error
}

func (r *UserRepository) UpdateUserPicture(uid int64, picture *string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("uid = ?", uid).
		Update("picture", picture).Error
}
