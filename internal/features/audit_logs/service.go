package audit_logs

import (
	"fmt"
	"log/slog"
	"time"

	"findteam/internal/apperrors"
	users_models "findteam/internal/features/users/models"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog is best effort. A failed write is logged and swallowed
// so the mutation that produced it still succeeds.
func (s *AuditLogService) WriteAuditLog(
	message string,
	uid *int64,
	pid *int64,
) {
	auditLog := &AuditLog{
		UID:       uid,
		PID:       pid,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.auditLogRepository.Create(auditLog)
	if err != nil {
		s.logger.Error("failed to create audit log", "error", err)
		return
	}
}

func (s *AuditLogService) GetUserAuditLogs(
	targetUID int64,
	user *users_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	// Users can only view their own logs
	if user.UID != targetUID {
		return nil, fmt.Errorf("%w: audit logs are private", apperrors.ErrForbidden)
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByUser(targetUID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	total, err := s.auditLogRepository.CountByUser(targetUID, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
