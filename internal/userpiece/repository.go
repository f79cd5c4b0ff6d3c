package userpiece

import (
	"errors"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	ListByUser(userID int64) ([]View, error)
	Get(userID, boardID, pieceID int64) (*UserPiece, error)
	Create(up *UserPiece) error
	Update(up *UserPiece) error
	Delete(userID, boardID, pieceID int64) error
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) ListByUser(userID int64) ([]View, error) {
	var out []View
	err := r.store.Base.Table("user_pieces").
		Select("user_pieces.*, pieces.name AS piece_name, pieces.section, pieces.color, boards.year AS board_year").
		Joins("JOIN pieces ON pieces.id = user_pieces.piece_id").
		Joins("JOIN boards ON boards.id = user_pieces.board_id").
		Where("user_pieces.user_id = ?", userID).
		Find(&out).Error
	return out, err
}

func (r *repo) Get(userID, boardID, pieceID int64) (*UserPiece, error) {
	var up UserPiece
	err := r.store.Base.
		First(&up, "user_id = ? AND board_id = ? AND piece_id = ?", userID, boardID, pieceID).Error
	if err != nil {
		return nil, err
	}
	return &up, nil
}

func (r *repo) Create(up *UserPiece) error {
	return r.store.Base.Create(up).Error
}

func (r *repo) Update(up *UserPiece) error {
	return r.store.Base.Model(&UserPiece{}).
		Where("user_id = ? AND board_id = ? AND piece_id = ?", up.UserID, up.BoardID, up.PieceID).
		Updates(map[string]any{
			"city_acquired":  up.CityAcquired,
			"state_acquired": up.StateAcquired,
		}).Error
}

func (r *repo) Delete(userID, boardID, pieceID int64) error {
	return r.store.Base.
		Delete(&UserPiece{}, "user_id = ? AND board_id = ? AND piece_id = ?", userID, boardID, pieceID).Error
}

func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
