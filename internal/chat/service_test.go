package chat

import (
	"errors"
	"testing"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	chats  map[int64]*Chat
	names  map[int64]string
	nextID int64

	// when set, the next Create fails as a duplicate and this chat becomes
	// the row that won the race
	raceWinner *Chat
	raceFired  bool
	// when set, the FindPair re-read after a lost race fails with this error
	rereadErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		chats: map[int64]*Chat{},
		names: map[int64]string{1: "Alice", 2: "Bob", 3: "Carol"},
	}
}

func (f *fakeRepo) Create(c *Chat) (*Chat, error) {
	if f.raceWinner != nil {
		w := f.raceWinner
		f.raceWinner = nil
		f.raceFired = true
		f.chats[w.ID] = w
		return nil, gorm.ErrDuplicatedKey
	}
	f.nextID++
	c.ID = f.nextID
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	f.chats[c.ID] = c
	return c, nil
}

func (f *fakeRepo) FindPair(a, b int64) (*Chat, error) {
	if f.raceFired && f.rereadErr != nil {
		return nil, f.rereadErr
	}
	for _, c := range f.chats {
		if (c.User1ID == a && c.User2ID == b) || (c.User1ID == b && c.User2ID == a) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetByID(id int64) (*Chat, error) {
	if c, ok := f.chats[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListByUser(userID int64) ([]Chat, error) {
	var out []Chat
	for _, c := range f.chats {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	// updated_at desc, like the store query
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].UpdatedAt.After(out[i].UpdatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) TouchActivity(chatID int64, at time.Time) error {
	if c, ok := f.chats[chatID]; ok {
		c.UpdatedAt = at
	}
	return nil
}

func (f *fakeRepo) UsernamesByID(ids []int64) (map[int64]string, error) {
	out := map[int64]string{}
	for _, id := range ids {
		if n, ok := f.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fakeLister struct {
	byChat map[int64][]MessageView
}

func (f *fakeLister) ListByChat(chatID int64) ([]MessageView, error) {
	return f.byChat[chatID], nil
}

func (f *fakeLister) LastByChats(chatIDs []int64) (map[int64]MessageView, error) {
	out := map[int64]MessageView{}
	for _, id := range chatIDs {
		if msgs := f.byChat[id]; len(msgs) > 0 {
			out[id] = msgs[len(msgs)-1]
		}
	}
	return out, nil
}

func newService(repo *fakeRepo) (Service, *fakeLister) {
	lister := &fakeLister{byChat: map[int64][]MessageView{}}
	return NewService(repo, lister), lister
}

func TestGetOrCreate_Symmetric(t *testing.T) {
	req := require.New(t)
	svc, _ := newService(newFakeRepo())

	first, err := svc.GetOrCreate(1, 2)
	req.NoError(err)
	req.Empty(first.Messages)

	// same pair from the other side returns the same chat
	second, err := svc.GetOrCreate(2, 1)
	req.NoError(err)
	req.Equal(first.ID, second.ID)
}

func TestGetOrCreate_CanonicalOrder(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	svc, _ := newService(repo)

	d, err := svc.GetOrCreate(2, 1)
	req.NoError(err)
	req.Equal(int64(1), d.User1ID)
	req.Equal(int64(2), d.User2ID)
	req.Equal("Alice", d.User1.Username)
	req.Equal("Bob", d.User2.Username)
}

func TestGetOrCreate_SelfChat(t *testing.T) {
	req := require.New(t)
	svc, _ := newService(newFakeRepo())

	_, err := svc.GetOrCreate(1, 1)
	req.ErrorIs(err, httpx.ErrInvalid)

	_, err = svc.GetOrCreate(1, 0)
	req.ErrorIs(err, httpx.ErrInvalid)
}

func TestGetOrCreate_LostRaceRereads(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	svc, _ := newService(repo)

	// another process inserted the pair between our lookup and insert
	repo.raceWinner = &Chat{ID: 77, User1ID: 1, User2ID: 2}
	d, err := svc.GetOrCreate(1, 2)
	req.NoError(err)
	req.Equal(int64(77), d.ID)
}

func TestGetOrCreate_LostRaceRereadFails(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	svc, _ := newService(repo)

	repo.raceWinner = &Chat{ID: 77, User1ID: 1, User2ID: 2}
	repo.rereadErr = errors.New("connection reset")
	_, err := svc.GetOrCreate(1, 2)
	req.Error(err)
	// the re-read failure is surfaced, not the swallowed duplicate
	req.ErrorContains(err, "connection reset")
	req.NotErrorIs(err, gorm.ErrDuplicatedKey)
}

func TestGetDetail_Authorization(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	svc, _ := newService(repo)

	d, err := svc.GetOrCreate(1, 2)
	req.NoError(err)

	_, err = svc.GetDetail(3, d.ID)
	req.ErrorIs(err, httpx.ErrForbidden)

	_, err = svc.GetDetail(1, 999)
	req.ErrorIs(err, httpx.ErrNotFound)

	got, err := svc.GetDetail(2, d.ID)
	req.NoError(err)
	req.Equal(d.ID, got.ID)
}

func TestListMine_ScopedAndOrdered(t *testing.T) {
	req := require.New(t)
	repo := newFakeRepo()
	svc, lister := newService(repo)

	ab, err := svc.GetOrCreate(1, 2)
	req.NoError(err)
	ac, err := svc.GetOrCreate(1, 3)
	req.NoError(err)
	req.NoError(svc.TouchActivity(ab.ID, time.Now().Add(time.Hour)))

	lister.byChat[ab.ID] = []MessageView{{
		ID: 1, ChatID: ab.ID, SenderID: 2,
		Sender: UserRef{ID: 2, Username: "Bob"}, Content: "trade?",
	}}

	got, err := svc.ListMine(1)
	req.NoError(err)
	req.Len(got, 2)
	// most recently active first
	req.Equal(ab.ID, got[0].ID)
	req.Equal(ac.ID, got[1].ID)
	// other participant, never self
	req.Equal("Bob", got[0].OtherUser.Username)
	req.Equal("Carol", got[1].OtherUser.Username)
	// last-message preview only where one exists
	req.NotNil(got[0].LastMessage)
	req.Equal("trade?", got[0].LastMessage.Content)
	req.Nil(got[1].LastMessage)

	// a user with no chats sees none of the above
	none, err := svc.ListMine(4)
	req.NoError(err)
	req.Empty(none)
}

func TestNormalizePair(t *testing.T) {
	req := require.New(t)
	a, b := NormalizePair(9, 3)
	req.Equal(int64(3), a)
	req.Equal(int64(9), b)
	a, b = NormalizePair(3, 9)
	req.Equal(int64(3), a)
	req.Equal(int64(9), b)
}

func TestAssertParticipant(t *testing.T) {
	req := require.New(t)
	c := &Chat{ID: 1, User1ID: 10, User2ID: 20}
	req.NoError(AssertParticipant(10, c))
	req.NoError(AssertParticipant(20, c))
	req.ErrorIs(AssertParticipant(30, c), httpx.ErrForbidden)
	req.Equal(int64(20), c.Other(10))
	req.Equal(int64(10), c.Other(20))
}
