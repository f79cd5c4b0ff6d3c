package migrate

import (
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/board"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/chat"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/message"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/piece"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/db"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/user"
	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/userpiece"
)

func AutoMigrateAll(store *db.Store) error {
	return store.Base.AutoMigrate(
		&user.User{},
		&chat.Chat{},
		&message.Message{},
		&piece.Piece{},
		&board.Board{},
		&userpiece.UserPiece{},
	)
}
