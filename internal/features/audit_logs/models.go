package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	UID       *int64    `json:"uid"       gorm:"column:uid"`
	PID       *int64    `json:"pid"       gorm:"column:pid"`
	Message   string    `json:"message"   gorm:"column:message"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
