package board

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/cache"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

// Board is one yearly game board edition.
type Board struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200" json:"name"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	cacheKey = "boards"
	cacheTTL = 24 * time.Hour
)

type Service struct {
	store *db.Store
	cache cache.Cache
}

func NewService(s *db.Store, c cache.Cache) *Service {
	return &Service{store: s, cache: c}
}

func (s *Service) ListAll(ctx context.Context) ([]Board, error) {
	if raw, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
		var out []Board
		if json.Unmarshal([]byte(raw), &out) == nil {
			return out, nil
		}
	}
	var out []Board
	if err := s.store.Base.Order("year DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, cacheKey, string(b), cacheTTL)
	}
	return out, nil
}

type Handler struct{ svc *Service }

func NewHandler(s *Service) *Handler { return &Handler{svc: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	out, err := h.svc.ListAll(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, out, http.StatusOK)
	return nil
}
