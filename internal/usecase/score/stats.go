package score

import (
	"sort"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	scoreDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/score"
)

// CalcPlayerStats builds the lifetime aggregate for one player from the
// full, unscoped match history. Returns nil when the player is not in the
// roster. A player with no matches gets an all-zero snapshot with a W0
// current streak, not an error.
//
// Streaks are computed over the matches sorted ascending by timestamp;
// the sort is stable, so matches with equal timestamps keep their incoming
// order.
func CalcPlayerStats(playerID string, matches []matchDomain.Match, games []gameDomain.Game, players []playerDomain.Player) *scoreDomain.PlayerStats {
	var target *playerDomain.Player
	for i := range players {
		if players[i].ID == playerID {
			target = &players[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	var own []matchDomain.Match
	for _, m := range matches {
		for _, id := range m.PlayerIDs {
			if id == playerID {
				own = append(own, m)
				break
			}
		}
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Timestamp.Before(own[j].Timestamp)
	})

	stats := &scoreDomain.PlayerStats{
		PlayerID:      playerID,
		PlayerName:    target.Name,
		CurrentStreak: scoreDomain.Streak{Type: scoreDomain.StreakWin, Count: 0},
	}

	gameNames := make(map[string]string, len(games))
	for _, g := range games {
		gameNames[g.ID] = g.Name
	}

	byGame := make(map[string]*scoreDomain.GameBreakdown)
	var gameOrder []string

	winStreak, lossStreak := 0, 0
	for _, m := range own {
		won := false
		for _, id := range m.WinnerIDs {
			if id == playerID {
				won = true
				break
			}
		}

		stats.TotalMatches++
		if won {
			stats.Wins++
			winStreak++
			lossStreak = 0
			if winStreak > stats.LongestWinStreak {
				stats.LongestWinStreak = winStreak
			}
			stats.CurrentStreak = scoreDomain.Streak{Type: scoreDomain.StreakWin, Count: winStreak}
		} else {
			stats.Losses++
			lossStreak++
			winStreak = 0
			if lossStreak > stats.LongestLossStreak {
				stats.LongestLossStreak = lossStreak
			}
			stats.CurrentStreak = scoreDomain.Streak{Type: scoreDomain.StreakLoss, Count: lossStreak}
		}

		for _, award := range m.PointsAwarded {
			if award.PlayerID == playerID {
				stats.TotalPoints += award.Points
			}
		}

		b, ok := byGame[m.GameID]
		if !ok {
			name, found := gameNames[m.GameID]
			if !found {
				name = "Unknown Game"
			}
			b = &scoreDomain.GameBreakdown{GameID: m.GameID, GameName: name}
			byGame[m.GameID] = b
			gameOrder = append(gameOrder, m.GameID)
		}
		b.GamesPlayed++
		if won {
			b.Wins++
		} else {
			b.Losses++
		}
	}

	if stats.TotalMatches > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.TotalMatches)
		stats.AvgPointsPerMatch = float64(stats.TotalPoints) / float64(stats.TotalMatches)
	}

	stats.ByGame = make([]scoreDomain.GameBreakdown, 0, len(gameOrder))
	for _, gameID := range gameOrder {
		b := byGame[gameID]
		if b.GamesPlayed > 0 {
			b.WinRate = float64(b.Wins) / float64(b.GamesPlayed)
		}
		stats.ByGame = append(stats.ByGame, *b)
	}

	return stats
}
