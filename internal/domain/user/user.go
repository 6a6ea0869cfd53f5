package user

import "time"

// UserAccount owns every other record in the store. ShareID is reserved for
// the public read-only snapshot surface and is minted at registration.
type UserAccount struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	IsAdmin      bool      `json:"is_admin" bson:"is_admin"`
	ShareID      string    `json:"share_id,omitempty" bson:"share_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	PasswordSalt string    `json:"-" bson:"password_salt"`
}
