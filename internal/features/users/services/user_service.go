package users_services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"findteam/internal/apperrors"
	"findteam/internal/features/tags"
	users_dto "findteam/internal/features/users/dto"
	users_interfaces "findteam/internal/features/users/interfaces"
	users_models "findteam/internal/features/users/models"
	users_repositories "findteam/internal/features/users/repositories"
	"findteam/internal/storage"
)

type UserService struct {
	userRepository *users_repositories.UserRepository
	urlRepository  *users_repositories.UserUrlRepository
	tagService     *tags.TagService
	// audit log is never nil, DI always set it
	auditLogWriter users_interfaces.AuditLogWriter
}

func NewUserService(
	userRepository *users_repositories.UserRepository,
	urlRepository *users_repositories.UserUrlRepository,
	tagService *tags.TagService,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		urlRepository:  urlRepository,
		tagService:     tagService,
	}
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) Register(request *users_dto.RegisterRequestDTO) (*users_dto.LoginResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	secret := make([]byte, users_models.AccessTokenLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	user := &users_models.User{
		FirstName:   request.FirstName,
		MiddleName:  request.MiddleName,
		LastName:    request.LastName,
		Email:       request.Email,
		Password:    hashedPassword,
		AccessToken: secret,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(storage.GetDb(), user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User registered with email: %s", user.Email),
		&user.UID,
		nil,
	)

	return s.loginResponse(user), nil
}

// Login verifies the password and returns the same opaque credential
// on every success. Secrets are never rotated here, so concurrent
// sessions share one token that only explicit future rotation could
// invalidate. Every failure is the uniform unauthorized outcome.
func (s *UserService) Login(request *users_dto.LoginRequestDTO) (*users_dto.LoginResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(request.Password)); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User signed in with email: %s", user.Email),
		&user.UID,
		nil,
	)

	return s.loginResponse(user), nil
}

// GetUserFromToken resolves an opaque bearer credential. A malformed
// encoding and an unknown secret produce the identical error so
// callers cannot enumerate tokens.
func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secret, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if len(secret) != users_models.AccessTokenLength {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepository.GetUserByAccessToken(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *UserService) GetUserByUID(uid int64) (*users_models.User, error) {
	return s.userRepository.GetUserByUID(uid)
}

func (s *UserService) GetProfile(uid int64) (*users_dto.UserResultDTO, error) {
	user, err := s.userRepository.GetUserByUID(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, uid)
	}

	return s.buildProfile(user)
}

// UpdateProfile is a full replace of the mutable profile fields plus a
// full-set reconciliation of urls and tags, committed in a single
// transaction. Fields are merged explicitly; nothing is copied
// dynamically from the request.
func (s *UserService) UpdateProfile(
	user *users_models.User,
	request *users_dto.UpdateProfileRequestDTO,
) (*users_dto.UserResultDTO, error) {
	if request.Email != user.Email {
		existing, err := s.userRepository.GetUserByEmail(request.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already in use", apperrors.ErrConflict)
		}
	}

	user.FirstName = request.FirstName
	user.MiddleName = request.MiddleName
	user.LastName = request.LastName
	user.Email = request.Email

	if request.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashedPassword
	}

	urls := make([]users_models.UserUrl, len(request.Urls))
	for i, url := range request.Urls {
		urls[i] = users_models.UserUrl{UID: user.UID, Domain: url.Domain, Path: url.Path}
	}

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.userRepository.UpdateUser(tx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		if err := s.urlRepository.ReplaceUserUrls(tx, user.UID, urls); err != nil {
			return fmt.Errorf("failed to replace urls: %w", err)
		}

		if err := s.tagService.ReconcileUserTags(tx, user.UID, request.Tags); err != nil {
			return fmt.Errorf("failed to reconcile tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditLogWriter.WriteAuditLog("Profile updated", &user.UID, nil)

	return s.buildProfile(user)
}

func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return fmt.Errorf("%w: no user with email %s", apperrors.ErrNotFound, email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(user.UID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.auditLogWriter.WriteAuditLog("Password changed", &user.UID, nil)

	return nil
}

func (s *UserService) buildProfile(user *users_models.User) (*users_dto.UserResultDTO, error) {
	urls, err := s.urlRepository.GetUserUrls(user.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to get urls: %w", err)
	}

	urlDTOs := make([]users_dto.UrlDTO, len(urls))
	for i, url := range urls {
		urlDTOs[i] = users_dto.UrlDTO{Domain: url.Domain, Path: url.Path}
	}

	userTags, err := s.tagService.GetUserTags(user.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	return &users_dto.UserResultDTO{
		UID:        user.UID,
		FirstName:  user.FirstName,
		MiddleName: user.MiddleName,
		LastName:   user.LastName,
		Email:      user.Email,
		Picture:    user.Picture,
		Urls:       urlDTOs,
		Tags:       userTags,
	}, nil
}

func (s *UserService) loginResponse(user *users_models.User) *users_dto.LoginResponseDTO {
	return &users_dto.LoginResponseDTO{
		UID:         user.UID,
		AccessToken: user.B64AccessToken(),
		TokenType:   "Bearer",
	}
}
