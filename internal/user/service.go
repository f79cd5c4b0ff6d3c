package user

import (
	"fmt"
	"strings"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

type Service interface {
	// EnsureUser maps an external identity to an internal user, creating one
	// on first contact. The returned bool is true when a row was created.
	EnsureUser(externalID, proposedName string) (*User, bool, error)
	ResolveExternal(externalID string) (*User, error)
	GetByID(id int64) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) EnsureUser(externalID, proposedName string) (*User, bool, error) {
	if externalID == "" {
		return nil, false, fmt.Errorf("%w: missing external identity", httpx.ErrUnauthorized)
	}
	if u, err := s.repo.FindByExternal(externalID); err == nil {
		return u, false, nil
	} else if !IsNotFound(err) {
		return nil, false, err
	}

	name := strings.TrimSpace(proposedName)
	if name == "" {
		return nil, false, fmt.Errorf("%w: username is required", httpx.ErrInvalid)
	}
	u, err := s.repo.Create(&User{ExternalID: externalID, Username: name})
	if err == nil {
		return u, true, nil
	}
	if !IsDuplicate(err) {
		return nil, false, err
	}
	// Two uniques can fail here. A concurrent provision for the same external
	// identity means the row now exists and the call stays idempotent; a taken
	// username is a conflict the client retries with a disambiguated name.
	if u, e := s.repo.FindByExternal(externalID); e == nil {
		return u, false, nil
	}
	return nil, false, fmt.Errorf("%w: username already exists", httpx.ErrConflict)
}

func (s *service) ResolveExternal(externalID string) (*User, error) {
	u, err := s.repo.FindByExternal(externalID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: unknown user", httpx.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (s *service) GetByID(id int64) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: unknown user", httpx.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}
