package piece

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/cache"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

const (
	cacheKey = "pieces"
	cacheTTL = 24 * time.Hour
)

type Service interface {
	ListAll(ctx context.Context) ([]Piece, error)
	GetByID(pieceID int64) (*Piece, error)
	Holders(pieceID int64) ([]Holder, error)
}

type service struct {
	repo  Repository
	cache cache.Cache
}

func NewService(r Repository, c cache.Cache) Service {
	return &service{repo: r, cache: c}
}

// ListAll serves the piece catalog read-through: reference data changes once
// a year, so a stale day is acceptable.
func (s *service) ListAll(ctx context.Context) ([]Piece, error) {
	if raw, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
		var out []Piece
		if json.Unmarshal([]byte(raw), &out) == nil {
			return out, nil
		}
	}
	out, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, cacheKey, string(b), cacheTTL)
	}
	return out, nil
}

func (s *service) GetByID(pieceID int64) (*Piece, error) {
	p, err := s.repo.GetByID(pieceID)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: piece not found", httpx.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Holders(pieceID int64) ([]Holder, error) {
	return s.repo.HoldersByPiece(pieceID)
}
