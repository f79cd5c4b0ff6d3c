package chat

import "time"

type CreateReq struct {
	Actor        string `json:"actor" validate:"required"`
	TargetUserID int64  `json:"target_user_id" validate:"required"`
}

type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// MessageView is a message annotated with its sender at read time.
type MessageView struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Content   string    `json:"content"`
	SenderID  int64     `json:"sender_id"`
	Sender    UserRef   `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary is one row of the chat list: the other participant plus the most
// recent message, nil when the chat has none yet.
type Summary struct {
	ID          int64        `json:"id"`
	User1ID     int64        `json:"user1_id"`
	User2ID     int64        `json:"user2_id"`
	OtherUser   UserRef      `json:"other_user"`
	LastMessage *MessageView `json:"last_message"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Detail is a chat with its full ordered history.
type Detail struct {
	Chat
	User1    UserRef       `json:"user1"`
	User2    UserRef       `json:"user2"`
	Messages []MessageView `json:"messages"`
}
