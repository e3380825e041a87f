package users_controllers

import (
	"encoding/base64"
	"net/http"
	"testing"

	"findteam/internal/features/tags"
	users_dto "findteam/internal/features/users/dto"
	users_middleware "findteam/internal/features/users/middleware"
	users_models "findteam/internal/features/users/models"
	users_services "findteam/internal/features/users/services"
	users_testing "findteam/internal/features/users/testing"
	test_utils "findteam/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func Test_Register_WithValidData_ReturnsDecodableToken(t *testing.T) {
	router := createTestRouter()

	request := users_dto.RegisterRequestDTO{
		FirstName: "Ada",
		Email:     "register-" + uuid.New().String() + "@example.com",
		Password:  "password12345",
	}

	var response users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/users/register", "", request, http.StatusOK, &response)

	assert.NotZero(t, response.UID)
	assert.Equal(t, "Bearer", response.TokenType)

	secret, err := base64.StdEncoding.DecodeString(response.AccessToken)
	assert.NoError(t, err)
	assert.Len(t, secret, users_models.AccessTokenLength)
}

func Test_Register_WithDuplicateEmail_ReturnsConflict(t *testing.T) {
	router := createTestRouter()

	request := users_dto.RegisterRequestDTO{
		FirstName: "Ada",
		Email:     "dup-" + uuid.New().String() + "@example.com",
		Password:  "password12345",
	}

	var response users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/users/register", "", request, http.StatusOK, &response)

	test_utils.MakePostRequest(
		t, router, "/api/v1/users/register", "", request, http.StatusBadRequest)
}

func Test_Login_AfterRegister_ReturnsSameToken(t *testing.T) {
	router := createTestRouter()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	request := users_dto.LoginRequestDTO{
		Email:    user.Email,
		Password: users_testing.TestUserPassword,
	}

	var first users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/users/login", "", request, http.StatusOK, &first)

	var second users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/users/login", "", request, http.StatusOK, &second)

	assert.Equal(t, user.Token, first.AccessToken)
	assert.Equal(t, first.AccessToken, second.AccessToken)
}

func Test_Login_WithWrongPassword_ReturnsForbidden(t *testing.T) {
	router := createTestRouter()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	request := users_dto.LoginRequestDTO{
		Email:    user.Email,
		Password: "definitely-wrong",
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/users/login", "", request, http.StatusForbidden)
}

func Test_Login_WithUnknownEmail_ReturnsForbidden(t *testing.T) {
	router := createTestRouter()

	request := users_dto.LoginRequestDTO{
		Email:    "nobody-" + uuid.New().String() + "@example.com",
		Password: "password12345",
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/users/login", "", request, http.StatusForbidden)
}

func Test_GetCurrentUser_WithoutToken_ReturnsForbidden(t *testing.T) {
	router := createTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusForbidden)
}

func Test_GetCurrentUser_WithGarbageToken_ReturnsForbidden(t *testing.T) {
	router := createTestRouter()

	test_utils.MakeGetRequest(
		t, router, "/api/v1/users/me", "Bearer not-base64!!", http.StatusForbidden)
}

func Test_GetCurrentUser_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createTestRouter()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	var profile users_dto.UserResultDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/users/me", "Bearer "+user.Token, http.StatusOK, &profile)

	assert.Equal(t, user.UID, profile.UID)
	assert.Equal(t, user.Email, profile.Email)
}

func Test_UpdateProfile_ReplacesUrlsAndTags(t *testing.T) {
	router := createTestRouter()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	request := users_dto.UpdateProfileRequestDTO{
		FirstName: "Grace",
		Email:     user.Email,
		Urls: []users_dto.UrlDTO{
			{Domain: "github.com", Path: "/grace"},
		},
		Tags: []tags.TagDTO{
			{Text: "tag-go-" + uuid.New().String(), Category: "language"},
		},
	}

	var profile users_dto.UserResultDTO
	test_utils.MakePutRequestAndUnmarshal(
		t, router, "/api/v1/users/me", "Bearer "+user.Token, request, http.StatusOK, &profile)

	assert.Equal(t, "Grace", profile.FirstName)
	assert.Len(t, profile.Urls, 1)
	assert.Len(t, profile.Tags, 1)

	// full replace: a second update with an empty set clears both
	request.Urls = nil
	request.Tags = nil

	test_utils.MakePutRequestAndUnmarshal(
		t, router, "/api/v1/users/me", "Bearer "+user.Token, request, http.StatusOK, &profile)

	assert.Empty(t, profile.Urls)
	assert.Empty(t, profile.Tags)
}

func createTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))
	GetUserController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))

	users_services.GetUserService().SetAuditLogWriter(&AuditLogWriterStub{})

	return router
}

type AuditLogWriterStub struct{}

func (a *AuditLogWriterStub) WriteAuditLog(message string, uid *int64, pid *int64) {}
