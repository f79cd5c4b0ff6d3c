package userpiece

import "time"

// UserPiece records that a user holds a piece from a given board, with the
// optional place it was acquired.
type UserPiece struct {
	UserID        int64     `gorm:"primaryKey" json:"user_id"`
	BoardID       int64     `gorm:"primaryKey" json:"board_id"`
	PieceID       int64     `gorm:"primaryKey" json:"piece_id"`
	CityAcquired  *string   `gorm:"size:100" json:"city_acquired"`
	StateAcquired *string   `gorm:"size:100" json:"state_acquired"`
	CreatedAt     time.Time `json:"created_at"`
}

// View is a collection row annotated with piece and board attributes for the
// my-pieces page.
type View struct {
	UserID        int64     `json:"user_id"`
	BoardID       int64     `json:"board_id"`
	PieceID       int64     `json:"piece_id"`
	CityAcquired  *string   `json:"city_acquired"`
	StateAcquired *string   `json:"state_acquired"`
	CreatedAt     time.Time `json:"created_at"`
	PieceName     string    `json:"piece_name"`
	BoardYear     int       `json:"board_year"`
	Section       string    `json:"section"`
	Color         string    `json:"color"`
}

type MutateReq struct {
	BoardID       int64   `json:"board_id" validate:"required"`
	PieceID       int64   `json:"piece_id" validate:"required"`
	CityAcquired  *string `json:"city_acquired"`
	StateAcquired *string `json:"state_acquired"`
}
