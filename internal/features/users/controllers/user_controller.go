package users_controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"findteam/internal/apperrors"
	"findteam/internal/config"
	users_dto "findteam/internal/features/users/dto"
	users_middleware "findteam/internal/features/users/middleware"
	users_repositories "findteam/internal/features/users/repositories"
	users_services "findteam/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService    *users_services.UserService
	userRepository *users_repositories.UserRepository
	signinLimiter  *rate.Limiter
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/register", c.Register)
	router.POST("/users/login", c.Login)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetCurrentUser)
	router.PUT("/users/me", c.UpdateCurrentUser)
	router.PUT("/users/me/picture", c.UploadPicture)
	router.GET("/users/:uid", c.GetUser)
}

func (c *UserController) SetSignInLimiter(limiter *rate.Limiter) {
	c.signinLimiter = limiter
}

// Register
// @Summary Register a new user
// @Description Create an account and receive an access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "User registration data"
// @Success 200 {object} users_dto.LoginResponseDTO
// @Failure 400
// @Failure 406
// @Router /users/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	response, err := c.userService.Register(&request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Login
// @Summary Authenticate a user
// @Description Exchange email and password for the account's access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "User login data"
// @Success 200 {object} users_dto.LoginResponseDTO
// @Failure 403
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	// We use rate limiter to prevent brute force attacks
	if !c.signinLimiter.Allow() {
		ctx.JSON(
			http.StatusTooManyRequests,
			gin.H{"error": "Rate limit exceeded. Please try again later."},
		)
		return
	}

	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	response, err := c.userService.Login(&request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCurrentUser
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Success 200 {object} users_dto.UserResultDTO
// @Failure 403
// @Security BearerAuth
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	profile, err := c.userService.GetProfile(user.UID)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetUser
// @Summary Get a user's profile by id
// @Tags users
// @Produce json
// @Param uid path int true "User ID"
// @Success 200 {object} users_dto.UserResultDTO
// @Failure 403
// @Failure 404
// @Security BearerAuth
// @Router /users/{uid} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	uid, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotFound)
		return
	}

	profile, err := c.userService.GetProfile(uid)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateCurrentUser
// @Summary Replace current user's profile
// @Description Full replace of profile fields, urls and tags
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.UpdateProfileRequestDTO true "New profile state"
// @Success 200 {object} users_dto.UserResultDTO
// @Failure 400
// @Failure 403
// @Failure 406
// @Security BearerAuth
// @Router /users/me [put]
func (c *UserController) UpdateCurrentUser(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	var request users_dto.UpdateProfileRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	profile, err := c.userService.UpdateProfile(user, &request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UploadPicture
// @Summary Upload current user's profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Picture file"
// @Success 200 {object} map[string]string
// @Failure 403
// @Failure 406
// @Security BearerAuth
// @Router /users/me/picture [put]
func (c *UserController) UploadPicture(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	// undashed uuid keeps the name within the 36 char picture column
	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + filepath.Ext(file.Filename)
	destination := filepath.Join(config.GetEnv().BackendRootPath, "uploads", filename)

	if err := ctx.SaveUploadedFile(file, destination); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	if err := c.userRepository.UpdateUserPicture(user.UID, &filename); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"picture": filename})
}
