package piece

import (
	"errors"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	ListAll() ([]Piece, error)
	GetByID(pieceID int64) (*Piece, error)
	HoldersByPiece(pieceID int64) ([]Holder, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) ListAll() ([]Piece, error) {
	var out []Piece
	err := r.store.Base.Order("section").Find(&out).Error
	return out, err
}

func (r *repo) GetByID(pieceID int64) (*Piece, error) {
	var p Piece
	if err := r.store.Base.First(&p, "id = ?", pieceID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type holderRow struct {
	UserID        int64
	BoardID       int64
	PieceID       int64
	CityAcquired  *string
	StateAcquired *string
	CreatedAt     time.Time
	Username      string
	BoardName     string
}

func (r *repo) HoldersByPiece(pieceID int64) ([]Holder, error) {
	var rows []holderRow
	err := r.store.Base.Table("user_pieces").
		Select("user_pieces.*, users.username AS username, boards.name AS board_name").
		Joins("JOIN users ON users.id = user_pieces.user_id").
		Joins("JOIN boards ON boards.id = user_pieces.board_id").
		Where("user_pieces.piece_id = ?", pieceID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Holder, 0, len(rows))
	for _, h := range rows {
		out = append(out, Holder{
			UserID:        h.UserID,
			BoardID:       h.BoardID,
			PieceID:       h.PieceID,
			CityAcquired:  h.CityAcquired,
			StateAcquired: h.StateAcquired,
			CreatedAt:     h.CreatedAt,
			User:          HolderRef{ID: h.UserID, Username: h.Username},
			BoardName:     h.BoardName,
		})
	}
	return out, nil
}

func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
