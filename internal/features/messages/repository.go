package messages

import (
	"findteam/internal/storage"
)

type MessageRepository struct{}

func (r *MessageRepository) Create(message *Message) error {
	return storage.GetDb().Create(message).Error
}

// GetBetweenUsers returns the full two-way history between a pair of
// users, oldest first. Project-addressed rows never match because
// to_uid is null there.
func (r *MessageRepository) GetBetweenUsers(uid int64, otherUID int64) ([]Message, error) {
	history := make([]Message, 0)

	err := storage.GetDb().
		Where("(from_uid = ? AND to_uid = ?) OR (from_uid = ? AND to_uid = ?)",
			uid, otherUID, otherUID, uid).
		Order("created_at ASC, id ASC").
		Find(&history).Error

	return history, err
}

// MarkReceivedAsRead flips the unread flag on everything the other
// user sent to the viewer. Only the receiving side of the pair is
// touched.
func (r *MessageRepository) MarkReceivedAsRead(viewerUID int64, otherUID int64) error {
	return storage.GetDb().
		Model(&Message{}).
		Where("from_uid = ? AND to_uid = ? AND is_read = ?", otherUID, viewerUID, false).
		Update("is_read", true).Error
}

func (r *MessageRepository) GetProjectMessages(pid int64) ([]Message, error) {
	history := make([]Message, 0)

	err := storage.GetDb().
		Where("to_pid = ?", pid).
		Order("created_at ASC, id ASC").
		Find(&history).Error

	return history, err
}

// GetUserConversationMessages returns every user-addressed message the
// user sent or received, oldest first, for the summary fold.
func (r *MessageRepository) GetUserConversationMessages(uid int64) ([]Message, error) {
	history := make([]Message, 0)

	err := storage.GetDb().
		Where("to_uid IS NOT NULL AND (from_uid = ? OR to_uid = ?)", uid, uid).
		Order("created_at ASC, id ASC").
		Find(&history).Error

	return history, err
}

// DeletePairHistory removes both directions of a user pair's
// conversation. Project chat is out of scope for this statement.
func (r *MessageRepository) DeletePairHistory(uid int64, otherUID int64) error {
	return storage.GetDb().
		Where("(from_uid = ? AND to_uid = ?) OR (from_uid = ? AND to_uid = ?)",
			uid, otherUID, otherUID, uid).
		Delete(&Message{}).Error
}
