package messages

import "time"

// Message is one chat line. Exactly one of ToUID and ToPID is set;
// the service enforces it before any row is written.
type Message struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FromUID   int64     `json:"from_uid" gorm:"column:from_uid;not null;index"`
	ToUID     *int64    `json:"to_uid" gorm:"column:to_uid;index"`
	ToPID     *int64    `json:"to_pid" gorm:"column:to_pid;index"`
	Text      string    `json:"text" gorm:"column:text;size:128;not null"`
	IsRead    bool      `json:"is_read" gorm:"column:is_read;not null"`
	CreatedAt time.Time `json:"date" gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "messages"
}
