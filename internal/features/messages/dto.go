package messages

import "time"

type SendMessageRequestDTO struct {
	Text  string `json:"text" binding:"required,max=128"`
	ToUID *int64 `json:"to_uid"`
	ToPID *int64 `json:"to_pid"`
}

type MessageResponseDTO struct {
	ID      int64     `json:"id"`
	FromUID int64     `json:"from_uid"`
	ToUID   *int64    `json:"to_uid"`
	ToPID   *int64    `json:"to_pid"`
	Text    string    `json:"text"`
	IsRead  bool      `json:"is_read"`
	Date    time.Time `json:"date"`
}

type HistoryResponseDTO struct {
	Messages []MessageResponseDTO `json:"messages"`
}

type ConversationSummaryDTO struct {
	UID         int64              `json:"uid"`
	LastMessage MessageResponseDTO `json:"last_message"`
}

type ConversationListResponseDTO struct {
	Conversations []ConversationSummaryDTO `json:"conversations"`
}
