package match

import "time"

// Match is immutable once recorded except for winner/points correction
// through the explicit update path.
type Match struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	GameID    string    `json:"game_id" bson:"game_id"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	// SpaceID == "" means the match belongs to the global context.
	SpaceID string `json:"space_id,omitempty" bson:"space_id,omitempty"`

	PlayerIDs []string `json:"player_ids" bson:"player_ids"`
	// WinnerIDs must be a subset of PlayerIDs; enforced at creation.
	WinnerIDs     []string      `json:"winner_ids" bson:"winner_ids"`
	PointsAwarded []PointsAward `json:"points_awarded" bson:"points_awarded"`
	Handicaps     []Handicap    `json:"handicaps,omitempty" bson:"handicaps,omitempty"`
}

type PointsAward struct {
	PlayerID string `json:"player_id" bson:"player_id"`
	// Points may be negative for handicap adjustments.
	Points int `json:"points" bson:"points"`
}

// Handicap is an annotation kept alongside the awards, usually produced by
// the AI suggestion flow.
type Handicap struct {
	PlayerID string `json:"player_id" bson:"player_id"`
	Points   int    `json:"points" bson:"points"`
	Reason   string `json:"reason,omitempty" bson:"reason,omitempty"`
}
