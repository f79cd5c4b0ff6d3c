package message

import "time"

// Message is one chat utterance. Immutable once created; a chat owns its
// messages (deleting a chat cascades).
type Message struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	ChatID    int64     `gorm:"index;not null" json:"chat_id"`
	SenderID  int64     `gorm:"not null" json:"sender_id"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendReq struct {
	ChatID  int64  `json:"chat_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}
