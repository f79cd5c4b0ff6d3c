package message

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/chat"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	msgs   map[int64]*Message
	names  map[int64]string
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		msgs:  map[int64]*Message{},
		names: map[int64]string{1: "Alice", 2: "Bob"},
	}
}

func (f *fakeRepo) Create(m *Message) (*Message, error) {
	f.nextID++
	m.ID = f.nextID
	f.msgs[m.ID] = m
	return m, nil
}

func (f *fakeRepo) view(m *Message) chat.MessageView {
	return chat.MessageView{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Content:   m.Content,
		SenderID:  m.SenderID,
		Sender:    chat.UserRef{ID: m.SenderID, Username: f.names[m.SenderID]},
		CreatedAt: m.CreatedAt,
	}
}

func (f *fakeRepo) ViewByID(id int64) (*chat.MessageView, error) {
	m, ok := f.msgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	v := f.view(m)
	return &v, nil
}

func (f *fakeRepo) ListByChat(chatID int64) ([]chat.MessageView, error) {
	var out []chat.MessageView
	for _, m := range f.msgs {
		if m.ChatID == chatID {
			out = append(out, f.view(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRepo) LastByChats(chatIDs []int64) (map[int64]chat.MessageView, error) {
	out := map[int64]chat.MessageView{}
	for _, id := range chatIDs {
		msgs, _ := f.ListByChat(id)
		if len(msgs) > 0 {
			out[id] = msgs[len(msgs)-1]
		}
	}
	return out, nil
}

type fakeChats struct {
	chats   map[int64]*chat.Chat
	touched map[int64]time.Time
}

func newFakeChats(cs ...*chat.Chat) *fakeChats {
	f := &fakeChats{chats: map[int64]*chat.Chat{}, touched: map[int64]time.Time{}}
	for _, c := range cs {
		f.chats[c.ID] = c
	}
	return f
}

func (f *fakeChats) GetRaw(chatID int64) (*chat.Chat, error) {
	if c, ok := f.chats[chatID]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: chat not found", httpx.ErrNotFound)
}

func (f *fakeChats) TouchActivity(chatID int64, at time.Time) error {
	f.touched[chatID] = at
	return nil
}

type fakePub struct {
	events []CreatedEvent
}

func (f *fakePub) Publish(_ context.Context, _ string, value []byte) error {
	var ev CreatedEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	f.events = append(f.events, ev)
	return nil
}

func TestSend_TrimsAndPersists(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	chats := newFakeChats(&chat.Chat{ID: 5, User1ID: 1, User2ID: 2})
	pub := &fakePub{}
	svc := NewService(repo, chats, pub)

	m, err := svc.Send(1, 5, "  hi  ")
	req.NoError(err)
	req.Equal("hi", m.Content)
	req.Equal("Alice", m.Sender.Username)

	got, err := svc.ListByChat(5)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(m.ID, got[0].ID)

	// chat activity bumped to the message timestamp
	req.Equal(m.CreatedAt, chats.touched[5])

	// event published for the append
	req.Len(pub.events, 1)
	req.Equal(m.ID, pub.events[0].MessageID)
	req.Equal(int64(5), pub.events[0].ChatID)
}

func TestSend_EmptyBody(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	chats := newFakeChats(&chat.Chat{ID: 5, User1ID: 1, User2ID: 2})
	svc := NewService(repo, chats, nil)

	for _, body := range []string{"", "   ", "\t\n"} {
		_, err := svc.Send(1, 5, body)
		req.ErrorIs(err, httpx.ErrInvalid)
	}
	req.Empty(repo.msgs)
}

func TestSend_NonParticipantConflatedToNotFound(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	chats := newFakeChats(&chat.Chat{ID: 5, User1ID: 1, User2ID: 2})
	svc := NewService(repo, chats, nil)

	_, err := svc.Send(3, 5, "let me in")
	req.ErrorIs(err, httpx.ErrNotFound)
	req.NotErrorIs(err, httpx.ErrForbidden)
	req.Empty(repo.msgs)

	_, err = svc.Send(1, 999, "hello?")
	req.ErrorIs(err, httpx.ErrNotFound)
	req.Empty(repo.msgs)
}

func TestListByChat_AscendingOrder(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	chats := newFakeChats(&chat.Chat{ID: 5, User1ID: 1, User2ID: 2})
	svc := NewService(repo, chats, nil)

	_, err := svc.Send(1, 5, "first")
	req.NoError(err)
	_, err = svc.Send(2, 5, "second")
	req.NoError(err)
	_, err = svc.Send(1, 5, "third")
	req.NoError(err)

	got, err := svc.ListByChat(5)
	req.NoError(err)
	req.Len(got, 3)
	for i := 1; i < len(got); i++ {
		req.False(got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
	req.Equal("first", got[0].Content)
	req.Equal("third", got[2].Content)
}
