package piece

import (
	"context"
	"testing"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/cache"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	pieces    []Piece
	listCalls int
}

func (f *fakeRepo) ListAll() ([]Piece, error) {
	f.listCalls++
	return f.pieces, nil
}

func (f *fakeRepo) GetByID(id int64) (*Piece, error) {
	for i := range f.pieces {
		if f.pieces[i].ID == id {
			return &f.pieces[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) HoldersByPiece(int64) ([]Holder, error) { return nil, nil }

func TestListAll_ReadThroughCache(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := &fakeRepo{pieces: []Piece{
		{ID: 1, Name: "Boardwalk", Section: "dark blue", Color: "blue"},
		{ID: 2, Name: "Park Place", Section: "dark blue", Color: "blue"},
	}}
	svc := NewService(repo, cache.NewMemory())

	first, err := svc.ListAll(ctx)
	req.NoError(err)
	req.Len(first, 2)
	req.Equal(1, repo.listCalls)

	// second read is served from the cache
	second, err := svc.ListAll(ctx)
	req.NoError(err)
	req.Len(second, 2)
	req.Equal(first[0].Name, second[0].Name)
	req.Equal(1, repo.listCalls)
}

func TestGetByID_NotFound(t *testing.T) {
	req := require.New(t)
	svc := NewService(&fakeRepo{}, cache.NewMemory())

	_, err := svc.GetByID(404)
	req.ErrorIs(err, httpx.ErrNotFound)
}
