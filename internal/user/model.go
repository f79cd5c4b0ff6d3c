package user

import "time"

// User is one registered participant. ExternalID is the auth provider's
// subject; Username is the unique display name shown to other users.
type User struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"size:64;uniqueIndex" json:"-"`
	Username   string    `gorm:"size:100;uniqueIndex" json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}
