package users_dto

import (
	"findteam/internal/features/tags"
)

type RegisterRequestDTO struct {
	FirstName  string  `json:"first_name"  binding:"required,max=32"`
	MiddleName *string `json:"middle_name" binding:"omitempty,max=32"`
	LastName   *string `json:"last_name"   binding:"omitempty,max=32"`
	Email      string  `json:"email"       binding:"required,email,max=254"`
	Password   string  `json:"password"    binding:"required,min=8"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseDTO carries the opaque bearer credential: the base64
// encoding of the stored session secret. Login returns the identical
// token on every success; there is no rotation and no expiry.
type LoginResponseDTO struct {
	UID         int64  `json:"uid"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UrlDTO struct {
	Domain string `json:"domain" binding:"required,max=253"`
	Path   string `json:"path"   binding:"required,max=1747"`
}

// UpdateProfileRequestDTO is a full replace of the mutable profile:
// every field is written, urls and tags are reconciled as whole sets.
type UpdateProfileRequestDTO struct {
	FirstName  string        `json:"first_name"  binding:"required,max=32"`
	MiddleName *string       `json:"middle_name" binding:"omitempty,max=32"`
	LastName   *string       `json:"last_name"   binding:"omitempty,max=32"`
	Email      string        `json:"email"       binding:"required,email,max=254"`
	Password   *string       `json:"password"    binding:"omitempty,min=8"`
	Urls       []UrlDTO      `json:"urls"        binding:"dive"`
	Tags       []tags.TagDTO `json:"tags"        binding:"dive"`
}

type UserResultDTO struct {
	UID        int64         `json:"uid"`
	FirstName  string        `json:"first_name"`
	MiddleName *string       `json:"middle_name"`
	LastName   *string       `json:"last_name"`
	Email      string        `json:"email"`
	Picture    *string       `json:"picture"`
	Urls       []UrlDTO      `json:"urls"`
	Tags       []tags.TagDTO `json:"tags"`
}
