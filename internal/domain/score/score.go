package score

// ScoreData is one leaderboard row. Derived, never persisted: it is
// recomputed from the match list on every read.
type ScoreData struct {
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	TotalPoints int    `json:"total_points"`
	GamesPlayed int    `json:"games_played"`
	Wins        int    `json:"wins"`
}

type StreakType string

const (
	StreakWin  StreakType = "W"
	StreakLoss StreakType = "L"
)

type Streak struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

type GameBreakdown struct {
	GameID      string  `json:"game_id"`
	GameName    string  `json:"game_name"`
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
}

// PlayerStats is a lifetime aggregate across all spaces. Rate fields are
// plain ratios in [0,1]; formatting is a presentation concern.
type PlayerStats struct {
	PlayerID          string          `json:"player_id"`
	PlayerName        string          `json:"player_name"`
	TotalMatches      int             `json:"total_matches"`
	Wins              int             `json:"wins"`
	Losses            int             `json:"losses"`
	WinRate           float64         `json:"win_rate"`
	CurrentStreak     Streak          `json:"current_streak"`
	LongestWinStreak  int             `json:"longest_win_streak"`
	LongestLossStreak int             `json:"longest_loss_streak"`
	TotalPoints       int             `json:"total_points"`
	AvgPointsPerMatch float64         `json:"avg_points_per_match"`
	ByGame            []GameBreakdown `json:"by_game"`
}
