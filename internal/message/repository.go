package message

import (
	"errors"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/chat"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Create(m *Message) (*Message, error)
	ViewByID(messageID int64) (*chat.MessageView, error)
	ListByChat(chatID int64) ([]chat.MessageView, error)
	LastByChats(chatIDs []int64) (map[int64]chat.MessageView, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

// row is the flat scan target for the sender join; views are built from it
// by an explicit mapping step.
type row struct {
	Message
	SenderUsername string
}

func (rw row) view() chat.MessageView {
	return chat.MessageView{
		ID:        rw.ID,
		ChatID:    rw.ChatID,
		Content:   rw.Content,
		SenderID:  rw.SenderID,
		Sender:    chat.UserRef{ID: rw.SenderID, Username: rw.SenderUsername},
		CreatedAt: rw.CreatedAt,
	}
}

func (r *repo) withSender() *gorm.DB {
	return r.store.Base.Model(&Message{}).
		Select("messages.*, users.username AS sender_username").
		Joins("JOIN users ON users.id = messages.sender_id")
}

func (r *repo) Create(m *Message) (*Message, error) {
	if err := r.store.Base.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) ViewByID(messageID int64) (*chat.MessageView, error) {
	var rw row
	if err := r.withSender().Where("messages.id = ?", messageID).Take(&rw).Error; err != nil {
		return nil, err
	}
	v := rw.view()
	return &v, nil
}

// ListByChat returns the chat's history oldest first, ties broken by the
// order ids were assigned.
func (r *repo) ListByChat(chatID int64) ([]chat.MessageView, error) {
	var rows []row
	err := r.withSender().
		Where("messages.chat_id = ?", chatID).
		Order("messages.created_at ASC, messages.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]chat.MessageView, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.view())
	}
	return out, nil
}

// LastByChats fetches the most recent message of each chat in one query.
func (r *repo) LastByChats(chatIDs []int64) (map[int64]chat.MessageView, error) {
	out := make(map[int64]chat.MessageView, len(chatIDs))
	if len(chatIDs) == 0 {
		return out, nil
	}
	latest := r.store.Base.Model(&Message{}).
		Select("MAX(id)").
		Where("chat_id IN ?", chatIDs).
		Group("chat_id")
	var rows []row
	if err := r.withSender().Where("messages.id IN (?)", latest).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, rw := range rows {
		out[rw.ChatID] = rw.view()
	}
	return out, nil
}

func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
