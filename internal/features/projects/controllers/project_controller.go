package projects_controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"findteam/internal/apperrors"
	"findteam/internal/config"
	projects_dto "findteam/internal/features/projects/dto"
	projects_services "findteam/internal/features/projects/services"
	users_middleware "findteam/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService    *projects_services.ProjectService
	membershipService *projects_services.MembershipService
}

func (c *ProjectController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/projects", c.CreateProject)
	router.GET("/projects", c.ListProjects)
	router.GET("/projects/:pid", c.GetProject)
	router.PUT("/projects/:pid", c.UpdateProject)
	router.DELETE("/projects/:pid", c.DeleteProject)

	router.POST("/projects/:pid/apply", c.Apply)
	router.GET("/projects/:pid/members", c.GetMembers)

	router.POST("/projects/:pid/pictures", c.AddPicture)
	router.DELETE("/projects/:pid/pictures/:picture", c.RemovePicture)

	router.GET("/users/me/projects", c.ListMyProjects)
}

// CreateProject
// @Summary Create a new project
// @Description Create a project owned by the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400
// @Failure 406
// @Security BearerAuth
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	response, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListProjects
// @Summary List all projects
// @Tags projects
// @Produce json
// @Success 200 {object} projects_dto.ProjectListResponseDTO
// @Security BearerAuth
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	response, err := c.projectService.ListProjects()
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyProjects
// @Summary List projects the authenticated user owns or belongs to
// @Tags projects
// @Produce json
// @Success 200 {object} projects_dto.ProjectListResponseDTO
// @Security BearerAuth
// @Router /users/me/projects [get]
func (c *ProjectController) ListMyProjects(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	response, err := c.projectService.ListUserProjects(user.UID)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param pid path int true "Project ID"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 404
// @Security BearerAuth
// @Router /projects/{pid} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	pid, ok := parsePID(ctx)
	if !ok {
		return
	}

	response, err := c.projectService.GetProject(pid)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateProject
// @Summary Replace a project's fields, roster and tags
// @Tags projects
// @Accept json
// @Produce json
// @Param pid path int true "Project ID"
// @Param request body projects_dto.UpdateProjectRequestDTO true "New project state"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400
// @Failure 403
// @Failure 404
// @Failure 406
// @Security BearerAuth
// @Router /projects/{pid} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	pid, ok := parsePID(ctx)
	if !ok {
		return
	}

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	response, err := c.projectService.UpdateProject(pid, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteProject
// @Summary Delete a project (owner only)
// @Tags projects
// @Produce json
// @Param pid path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 403
// @Failure 404
// @Security BearerAuth
// @Router /projects/{pid} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	pid, ok := parsePID(ctx)
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(pid, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// Apply
// @Summary Apply to join a project
// @Description Files a pending application for the authenticated user
// @Tags projects
// @Produce json
// @Param pid path int true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 404
// @Security BearerAuth
// @Router /projects/{pid}/apply [post]
func (c *ProjectController) Apply(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	pid, ok := parsePID(ctx)
	if !ok {
		return
	}

	if err := c.membershipService.Apply(pid, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Application submitted"})
}

// GetMembers
// @Summary Get a project's roster
// @Tags projects
// @Produce json
// @Param pid path int true "Project ID"
// @Success 200 {array} projects_dto.MemberResultDTO
// @Failure 404
// @Security BearerAuth
// @Router /projects/{pid}/members [get]
func (c *ProjectController) GetMembers(ctx *gin.Context) {
	pid, ok := parsePID(ctx)
	if !ok {
		return
	}

	members, err := c.membershipService.GetMembers(pid)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// AddPicture
// @Summary Upload a project picture (admin or owner)
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param pid path int true "Project ID"
// @Param file formData file true "Picture file"
// @Success 200 {object} projects_dto.AddPictureResponseDTO
// @Failure 403
// @Failure 406
// @Security BearerAuth
// @Router /projects/{pid}/pictures [post]
func (c *ProjectController) AddPicture(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	pid, ok := parsePID(ctx)
	if !ok {
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

	if err := c.projectService.AddPicture(pid, filename, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.AddPictureResponseDTO{Picture: filename})
}

// RemovePicture
// @Summary Remove a project picture (admin or owner)
// @Tags projects
// @Produce json
// @Param pid path int true "Project ID"
// @Param picture path string true "Picture filename"
// @Success 200 {object} map[string]string
// @Failure 403
// @Failure 404
// @Security BearerAuth
// @Router /projects/{pid}/pictures/{picture} [delete]
func (c *ProjectController) RemovePicture(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	pid, ok := parsePID(ctx)
	if !ok {
		return
	}

	if err := c.projectService.RemovePicture(pid, ctx.Param("picture"), user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Picture removed"})
}

func parsePID(ctx *gin.Context) (int64, bool) {
	pid, err := strconv.ParseInt(ctx.Param("pid"), 10, 64)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotFound)
		return 0, false
	}

	return pid, true
}
