package player

import "time"

// UnknownName is what historical records resolve to after a player
// has been deleted from the roster.
const UnknownName = "Unknown Player"

type Player struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	OwnerID string `json:"owner_id" bson:"owner_id"`
	Name    string `json:"name" bson:"name"`

	AvatarURL string `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`

	// Baselines are only used as AI-prompt defaults for players with no
	// recorded history yet.
	BaselineWinRate  float64 `json:"baseline_win_rate,omitempty" bson:"baseline_win_rate,omitempty"`
	BaselineAvgScore float64 `json:"baseline_avg_score,omitempty" bson:"baseline_avg_score,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
