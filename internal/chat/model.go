package chat

import (
	"fmt"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"
)

// Chat is one conversation between exactly two users. The pair is stored in
// canonical order (User1ID < User2ID) and carries a unique index, so any two
// users have at most one chat; a racing duplicate insert fails on the index
// and is resolved by re-reading the winning row.
type Chat struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	User1ID   int64     `gorm:"uniqueIndex:idx_chat_pair" json:"user1_id"`
	User2ID   int64     `gorm:"uniqueIndex:idx_chat_pair" json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizePair orders two user ids canonically for storage and lookup.
func NormalizePair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// HasParticipant reports whether userID is one of the chat's two users.
func (c *Chat) HasParticipant(userID int64) bool {
	return userID == c.User1ID || userID == c.User2ID
}

// Other returns the participant that is not userID.
func (c *Chat) Other(userID int64) int64 {
	if userID == c.User1ID {
		return c.User2ID
	}
	return c.User1ID
}

// AssertParticipant is the authorization guard run before any read or write
// that exposes chat contents. Pure predicate, no side effects.
func AssertParticipant(userID int64, c *Chat) error {
	if !c.HasParticipant(userID) {
		return fmt.Errorf("%w: not a chat participant", httpx.ErrForbidden)
	}
	return nil
}
