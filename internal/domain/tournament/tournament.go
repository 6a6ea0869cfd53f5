package tournament

import "time"

// Tournament completes exactly once, when the scoped leaderboard leader
// reaches TargetPoints. There is no way to re-open a completed tournament.
type Tournament struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	OwnerID      string `json:"owner_id" bson:"owner_id"`
	Name         string `json:"name" bson:"name"`
	GameID       string `json:"game_id" bson:"game_id"`
	TargetPoints int    `json:"target_points" bson:"target_points"`
	// SpaceID == "" means the tournament runs in the global context.
	SpaceID string `json:"space_id,omitempty" bson:"space_id,omitempty"`

	Status      string     `json:"status" bson:"status"`
	WinnerID    string     `json:"winner_id,omitempty" bson:"winner_id,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}
