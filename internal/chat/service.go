package chat

import (
	"fmt"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

// MessageLister is the slice of the message store the chat directory needs
// to assemble chat payloads.
type MessageLister interface {
	ListByChat(chatID int64) ([]MessageView, error)
	LastByChats(chatIDs []int64) (map[int64]MessageView, error)
}

type Service interface {
	// GetOrCreate returns the one chat between actor and target, creating it
	// on first contact, together with its full ordered history.
	GetOrCreate(actorID, targetID int64) (*Detail, error)
	GetDetail(actorID, chatID int64) (*Detail, error)
	ListMine(actorID int64) ([]Summary, error)

	// Consumed by the message store.
	GetRaw(chatID int64) (*Chat, error)
	TouchActivity(chatID int64, at time.Time) error
}

type service struct {
	repo     Repository
	messages MessageLister
}

func NewService(r Repository, msgs MessageLister) Service {
	return &service{repo: r, messages: msgs}
}

func (s *service) GetOrCreate(actorID, targetID int64) (*Detail, error) {
	if targetID == 0 {
		return nil, fmt.Errorf("%w: target user is required", httpx.ErrInvalid)
	}
	if targetID == actorID {
		return nil, fmt.Errorf("%w: cannot chat with yourself", httpx.ErrInvalid)
	}

	c, err := s.repo.FindPair(actorID, targetID)
	switch {
	case err == nil:
		return s.detail(c)
	case !IsNotFound(err):
		return nil, err
	}

	a, b := NormalizePair(actorID, targetID)
	created, err := s.repo.Create(&Chat{User1ID: a, User2ID: b})
	if err != nil {
		if IsDuplicate(err) {
			// Lost the creation race; the winning row is the chat.
			c, e := s.repo.FindPair(actorID, targetID)
			if e != nil {
				return nil, fmt.Errorf("reread chat after lost race: %w", e)
			}
			return s.detail(c)
		}
		return nil, err
	}
	return s.detail(created)
}

func (s *service) GetDetail(actorID, chatID int64) (*Detail, error) {
	c, err := s.GetRaw(chatID)
	if err != nil {
		return nil, err
	}
	if err := AssertParticipant(actorID, c); err != nil {
		return nil, err
	}
	return s.detail(c)
}

func (s *service) ListMine(actorID int64) ([]Summary, error) {
	chats, err := s.repo.ListByUser(actorID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]int64, 0, len(chats))
	chatIDs := make([]int64, 0, len(chats))
	for _, c := range chats {
		otherIDs = append(otherIDs, c.Other(actorID))
		chatIDs = append(chatIDs, c.ID)
	}
	names, err := s.repo.UsernamesByID(otherIDs)
	if err != nil {
		return nil, err
	}
	last, err := s.messages.LastByChats(chatIDs)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(chats))
	for _, c := range chats {
		other := c.Other(actorID)
		sum := Summary{
			ID:        c.ID,
			User1ID:   c.User1ID,
			User2ID:   c.User2ID,
			OtherUser: UserRef{ID: other, Username: names[other]},
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if m, ok := last[c.ID]; ok {
			lm := m
			sum.LastMessage = &lm
		}
		out = append(out, sum)
	}
	return out, nil
}

func (s *service) GetRaw(chatID int64) (*Chat, error) {
	c, err := s.repo.GetByID(chatID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: chat not found", httpx.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) TouchActivity(chatID int64, at time.Time) error {
	return s.repo.TouchActivity(chatID, at)
}

func (s *service) detail(c *Chat) (*Detail, error) {
	names, err := s.repo.UsernamesByID([]int64{c.User1ID, c.User2ID})
	if err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListByChat(c.ID)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Chat:     *c,
		User1:    UserRef{ID: c.User1ID, Username: names[c.User1ID]},
		User2:    UserRef{ID: c.User2ID, Username: names[c.User2ID]},
		Messages: msgs,
	}, nil
}
