package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/chat"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

// ChatDirectory is the slice of the chat service the message store needs:
// chat lookup for the participant check and the last-activity bump on append.
type ChatDirectory interface {
	GetRaw(chatID int64) (*chat.Chat, error)
	TouchActivity(chatID int64, at time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type Service interface {
	Send(senderID, chatID int64, body string) (*chat.MessageView, error)
	ListByChat(chatID int64) ([]chat.MessageView, error)
}

type service struct {
	repo  Repository
	chats ChatDirectory
	pub   Publisher
}

func NewService(r Repository, chats ChatDirectory, pub Publisher) Service {
	return &service{repo: r, chats: chats, pub: pub}
}

// CreatedEvent is published to the message topic after a successful append.
type CreatedEvent struct {
	MessageID int64     `json:"message_id"`
	ChatID    int64     `json:"chat_id"`
	SenderID  int64     `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *service) Send(senderID, chatID int64, body string) (*chat.MessageView, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: message body is empty", httpx.ErrInvalid)
	}

	c, err := s.chats.GetRaw(chatID)
	if err != nil {
		return nil, err
	}
	// Non-participants get the same answer as a missing chat so they cannot
	// probe which chat ids exist.
	if err := chat.AssertParticipant(senderID, c); err != nil {
		return nil, fmt.Errorf("%w: chat not found", httpx.ErrNotFound)
	}

	now := time.Now().UTC()
	m, err := s.repo.Create(&Message{
		ChatID:    chatID,
		SenderID:  senderID,
		Content:   body,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	if err := s.chats.TouchActivity(chatID, now); err != nil {
		log.Printf("touch chat %d activity: %v", chatID, err)
	}
	s.publish(m)

	return s.repo.ViewByID(m.ID)
}

func (s *service) ListByChat(chatID int64) ([]chat.MessageView, error) {
	return s.repo.ListByChat(chatID)
}

func (s *service) publish(m *Message) {
	if s.pub == nil {
		return
	}
	b, _ := json.Marshal(CreatedEvent{
		MessageID: m.ID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		CreatedAt: m.CreatedAt,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.pub.Publish(ctx, strconv.FormatInt(m.ChatID, 10), b); err != nil {
		log.Printf("publish message %d: %v", m.ID, err)
	}
}
