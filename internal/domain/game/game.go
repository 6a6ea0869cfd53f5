package game

import "time"

type Game struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	OwnerID      string `json:"owner_id" bson:"owner_id"`
	Name         string `json:"name" bson:"name"`
	PointsPerWin int    `json:"points_per_win" bson:"points_per_win"`
	MinPlayers   int    `json:"min_players" bson:"min_players"`
	// MaxPlayers == 0 means no upper bound.
	MaxPlayers  int       `json:"max_players,omitempty" bson:"max_players,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string    `json:"icon,omitempty" bson:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
