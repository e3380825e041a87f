package messages

import (
	"errors"
	"net/http"
	"strconv"

	"findteam/internal/apperrors"
	users_middleware "findteam/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	messageService *MessageService
}

func (c *MessageController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	messageRoutes := router.Group("/messages")

	messageRoutes.POST("", c.Send)
	messageRoutes.GET("/conversations", c.GetConversations)
	messageRoutes.GET("/users/:uid", c.GetUserHistory)
	messageRoutes.DELETE("/users/:uid", c.DeleteUserHistory)
	messageRoutes.GET("/projects/:pid", c.GetProjectHistory)
}

// Send
// @Summary Send a message to a user or a project
// @Description Store one message addressed to exactly one of to_uid and to_pid
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequestDTO true "Message data"
// @Success 200 {object} MessageResponseDTO
// @Failure 404
// @Failure 406
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Security BearerAuth
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	var request SendMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ErrValidation)
		return
	}

	response, err := c.messageService.Send(user, &request)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			ctx.JSON(
				http.StatusTooManyRequests,
				gin.H{"error": "Rate limit exceeded. Please try again later."},
			)
			return
		}

		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUserHistory
// @Summary Get the conversation with another user
// @Description Returns the two-way history oldest first and marks received messages as read
// @Tags messages
// @Produce json
// @Param uid path int true "Other user's ID"
// @Success 200 {object} HistoryResponseDTO
// @Failure 404
// @Security BearerAuth
// @Router /messages/users/{uid} [get]
func (c *MessageController) GetUserHistory(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	otherUID, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotFound)
		return
	}

	response, err := c.messageService.GetUserHistory(user, otherUID)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteUserHistory
// @Summary Delete the conversation with another user
// @Description Removes both directions of the pair's history
// @Tags messages
// @Produce json
// @Param uid path int true "Other user's ID"
// @Success 200 {object} map[string]string
// @Failure 404
// @Security BearerAuth
// @Router /messages/users/{uid} [delete]
func (c *MessageController) DeleteUserHistory(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	otherUID, err := strconv.ParseInt(ctx.Param("uid"), 10, 64)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotFound)
		return
	}

	if err := c.messageService.DeleteHistory(user, otherUID); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Conversation deleted"})
}

// GetProjectHistory
// @Summary Get a project's chat
// @Tags messages
// @Produce json
// @Param pid path int true "Project ID"
// @Success 200 {object} HistoryResponseDTO
// @Failure 404
// @Security BearerAuth
// @Router /messages/projects/{pid} [get]
func (c *MessageController) GetProjectHistory(ctx *gin.Context) {
	pid, err := strconv.ParseInt(ctx.Param("pid"), 10, 64)
	if err != nil {
		apperrors.Respond(ctx, apperrors.ErrNotFound)
		return
	}

	response, err := c.messageService.GetProjectHistory(pid)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetConversations
// @Summary List conversation summaries
// @Description One entry per counterparty with the latest message, newest conversation first
// @Tags messages
// @Produce json
// @Success 200 {object} ConversationListResponseDTO
// @Security BearerAuth
// @Router /messages/conversations [get]
func (c *MessageController) GetConversations(ctx *gin.Context) {
	user, exists := users_middleware.GetUserFromContext(ctx)
	if !exists {
		apperrors.Respond(ctx, apperrors.ErrUnauthorized)
		return
	}

	response, err := c.messageService.GetConversationSummaries(user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
