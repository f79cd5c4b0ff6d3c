package chat

import (
	"errors"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/user"

	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Chat) (*Chat, error)
	FindPair(a, b int64) (*Chat, error)
	GetByID(chatID int64) (*Chat, error)
	ListByUser(userID int64) ([]Chat, error)
	TouchActivity(chatID int64, at time.Time) error
	UsernamesByID(ids []int64) (map[int64]string, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(c *Chat) (*Chat, error) {
	if err := r.store.Base.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// FindPair looks the pair up in both orders rather than trusting canonical
// storage alone, so rows written before the ordering convention still resolve.
func (r *repo) FindPair(a, b int64) (*Chat, error) {
	var c Chat
	err := r.store.Base.
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", a, b, b, a).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) GetByID(chatID int64) (*Chat, error) {
	var c Chat
	if err := r.store.Base.First(&c, "id = ?", chatID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListByUser(userID int64) ([]Chat, error) {
	var out []Chat
	err := r.store.Base.
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repo) TouchActivity(chatID int64, at time.Time) error {
	return r.store.Base.Model(&Chat{}).
		Where("id = ?", chatID).
		Update("updated_at", at).Error
}

func (r *repo) UsernamesByID(ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []user.User
	if err := r.store.Base.Select("id", "username").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}

func IsNotFound(err error) bool  { return errors.Is(err, gorm.ErrRecordNotFound) }
func IsDuplicate(err error) bool { return errors.Is(err, gorm.ErrDuplicatedKey) }
