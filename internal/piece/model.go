package piece

import "time"

// Piece is reference catalog data: one collectible game piece printed on a
// board. Read-only from this service's point of view.
type Piece struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200" json:"name"`
	Section   string    `gorm:"size:100" json:"section"`
	Color     string    `gorm:"size:50" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Holder is one user's claim on a piece, annotated with the holder's display
// name and the board it belongs to.
type Holder struct {
	UserID        int64     `json:"user_id"`
	BoardID       int64     `json:"board_id"`
	PieceID       int64     `json:"piece_id"`
	CityAcquired  *string   `json:"city_acquired"`
	StateAcquired *string   `json:"state_acquired"`
	CreatedAt     time.Time `json:"created_at"`
	User          HolderRef `json:"user"`
	BoardName     string    `json:"board_name"`
}

type HolderRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
