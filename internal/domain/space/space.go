package space

import "time"

// Space is a named partition of one user's matches, tournaments and
// leaderboards. At most one is active per session.
type Space struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
