package messages

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"findteam/internal/apperrors"
	projects_services "findteam/internal/features/projects/services"
	users_models "findteam/internal/features/users/models"
	users_repositories "findteam/internal/features/users/repositories"
	rate_limit "findteam/internal/util/rate_limit"
)

var ErrRateLimited = errors.New("rate limit exceeded")

type MessageService struct {
	messageRepository *MessageRepository
	userRepository    *users_repositories.UserRepository
	projectService    *projects_services.ProjectService
	rateLimiter       *rate_limit.RateLimiter
	logger            *slog.Logger
}

// Send stores one message after validating the address. Exactly one of
// to_uid and to_pid must be set and the recipient must exist; nothing
// is persisted otherwise.
func (s *MessageService) Send(
	sender *users_models.User,
	request *SendMessageRequestDTO,
) (*MessageResponseDTO, error) {
	if (request.ToUID == nil) == (request.ToPID == nil) {
		return nil, fmt.Errorf(
			"%w: exactly one of to_uid and to_pid must be set", apperrors.ErrValidation)
	}

	if err := s.checkRateLimit(sender.UID); err != nil {
		return nil, err
	}

	if request.ToUID != nil {
		recipient, err := s.userRepository.GetUserByUID(*request.ToUID)
		if err != nil {
			return nil, fmt.Errorf("failed to check recipient: %w", err)
		}
		if recipient == nil {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, *request.ToUID)
		}
	}

	if request.ToPID != nil {
		if _, err := s.projectService.GetProjectWithCache(*request.ToPID); err != nil {
			return nil, err
		}
	}

	message := &Message{
		FromUID:   sender.UID,
		ToUID:     request.ToUID,
		ToPID:     request.ToPID,
		Text:      request.Text,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messageRepository.Create(message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	response := toResponse(message)

	return &response, nil
}

// GetUserHistory returns the pair's conversation oldest first. Viewing
// it marks everything addressed to the viewer as read; messages the
// viewer sent keep whatever flag the other side's reads gave them.
func (s *MessageService) GetUserHistory(
	viewer *users_models.User,
	otherUID int64,
) (*HistoryResponseDTO, error) {
	other, err := s.userRepository.GetUserByUID(otherUID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if other == nil {
		return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, otherUID)
	}

	if err := s.messageRepository.MarkReceivedAsRead(viewer.UID, otherUID); err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	history, err := s.messageRepository.GetBetweenUsers(viewer.UID, otherUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return toHistoryResponse(history), nil
}

// GetProjectHistory returns a project's chat oldest first. Project
// messages have no single receiver, so the read flag never flips here.
func (s *MessageService) GetProjectHistory(pid int64) (*HistoryResponseDTO, error) {
	if _, err := s.projectService.GetProjectWithCache(pid); err != nil {
		return nil, err
	}

	history, err := s.messageRepository.GetProjectMessages(pid)
	if err != nil {
		return nil, fmt.Errorf("failed to get project history: %w", err)
	}

	return toHistoryResponse(history), nil
}

// GetConversationSummaries folds the user's direct messages into one
// entry per counterparty holding the newest message. Project chat is
// excluded; pids and uids are separate keyspaces and folding them
// together would collide.
func (s *MessageService) GetConversationSummaries(
	user *users_models.User,
) (*ConversationListResponseDTO, error) {
	history, err := s.messageRepository.GetUserConversationMessages(user.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}

	latest := make(map[int64]Message)
	for _, message := range history {
		other := message.FromUID
		if other == user.UID && message.ToUID != nil {
			other = *message.ToUID
		}

		// a self-addressed message has no counterparty; the viewer's
		// own uid is never a summary key
		if other == user.UID {
			continue
		}

		// history is oldest first, so the last write wins
		latest[other] = message
	}

	conversations := make([]ConversationSummaryDTO, 0, len(latest))
	for other, message := range latest {
		conversations = append(conversations, ConversationSummaryDTO{
			UID:         other,
			LastMessage: toResponse(&message),
		})
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.Date.After(conversations[j].LastMessage.Date)
	})

	return &ConversationListResponseDTO{Conversations: conversations}, nil
}

// DeleteHistory wipes both directions of the pair's conversation.
// Either side may do it and project chat is never touched.
func (s *MessageService) DeleteHistory(user *users_models.User, otherUID int64) error {
	other, err := s.userRepository.GetUserByUID(otherUID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if other == nil {
		return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, otherUID)
	}

	if err := s.messageRepository.DeletePairHistory(user.UID, otherUID); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}

	return nil
}

// checkRateLimit fails open: a broken limiter backend must not take
// messaging down with it.
func (s *MessageService) checkRateLimit(senderUID int64) error {
	result, err := s.rateLimiter.CheckRateLimit(senderUID, 0, 0)
	if err != nil {
		s.logger.Error("rate limiter unavailable, allowing message", "error", err)
		return nil
	}

	if !result.Allowed {
		return ErrRateLimited
	}

	return nil
}

func toResponse(message *Message) MessageResponseDTO {
	return MessageResponseDTO{
		ID:      message.ID,
		FromUID: message.FromUID,
		ToUID:   message.ToUID,
		ToPID:   message.ToPID,
		Text:    message.Text,
		IsRead:  message.IsRead,
		Date:    message.CreatedAt,
	}
}

func toHistoryResponse(history []Message) *HistoryResponseDTO {
	responses := make([]MessageResponseDTO, len(history))
	for i := range history {
		responses[i] = toResponse(&history[i])
	}

	return &HistoryResponseDTO{Messages: responses}
}
