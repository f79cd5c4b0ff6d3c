package user

import (
	"errors"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) (*User, error)
	FindByExternal(externalID string) (*User, error)
	FindByID(id int64) (*User, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(u *User) (*User, error) {
	if err := r.store.Base.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) FindByExternal(externalID string) (*User, error) {
	var u User
	if err := r.store.Base.First(&u, "external_id = ?", externalID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) FindByID(id int64) (*User, error) {
	var u User
	if err := r.store.Base.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// IsNotFound reports whether err is the store's missing-row error.
func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool { return errors.Is(err, gorm.ErrDuplicatedKey) }
