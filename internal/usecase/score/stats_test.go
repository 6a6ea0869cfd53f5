package score

import (
	"testing"
	"time"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	scoreDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/score"
)

// outcomes is a W/L sequence for one player; matches are spaced a minute
// apart but fed in shuffled order to exercise the chronological sort.
func matchesFromOutcomes(playerID string, outcomes string) []matchDomain.Match {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var out []matchDomain.Match
	for i, c := range outcomes {
		m := matchDomain.Match{
			ID:        string(rune('a' + i)),
			GameID:    "g1",
			PlayerIDs: []string{playerID, "rival"},
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		if c == 'W' {
			m.WinnerIDs = []string{playerID}
		} else {
			m.WinnerIDs = []string{"rival"}
		}
		out = append(out, m)
	}
	// reverse so the calculator has to sort
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func TestCalcPlayerStatsStreaks(t *testing.T) {
	players := []playerDomain.Player{{ID: "p", Name: "Pat"}, {ID: "rival", Name: "Rival"}}
	games := []gameDomain.Game{{ID: "g1", Name: "Chess"}}

	stats := CalcPlayerStats("p", matchesFromOutcomes("p", "WWLWLLL"), games, players)
	if stats == nil {
		t.Fatal("expected stats")
	}
	if stats.LongestWinStreak != 2 {
		t.Errorf("longest win streak: got %d, want 2", stats.LongestWinStreak)
	}
	if stats.LongestLossStreak != 3 {
		t.Errorf("longest loss streak: got %d, want 3", stats.LongestLossStreak)
	}
	if stats.CurrentStreak.Type != scoreDomain.StreakLoss || stats.CurrentStreak.Count != 3 {
		t.Errorf("current streak: got %s%d, want L3", stats.CurrentStreak.Type, stats.CurrentStreak.Count)
	}
	if stats.TotalMatches != 7 || stats.Wins != 3 || stats.Losses != 4 {
		t.Errorf("totals: %d/%d/%d, want 7/3/4", stats.TotalMatches, stats.Wins, stats.Losses)
	}
}

func TestCalcPlayerStatsUnknownPlayer(t *testing.T) {
	if stats := CalcPlayerStats("nobody", nil, nil, []playerDomain.Player{{ID: "p", Name: "Pat"}}); stats != nil {
		t.Fatalf("expected nil for a player missing from the roster, got %+v", stats)
	}
}

func TestCalcPlayerStatsNoHistory(t *testing.T) {
	players := []playerDomain.Player{{ID: "p", Name: "Pat"}}

	stats := CalcPlayerStats("p", nil, nil, players)
	if stats == nil {
		t.Fatal("expected zeroed stats, got nil")
	}
	if stats.TotalMatches != 0 || stats.TotalPoints != 0 || stats.WinRate != 0 {
		t.Errorf("expected zeroed aggregate, got %+v", stats)
	}
	if stats.CurrentStreak.Type != scoreDomain.StreakWin || stats.CurrentStreak.Count != 0 {
		t.Errorf("zero-history current streak must be W0, got %s%d", stats.CurrentStreak.Type, stats.CurrentStreak.Count)
	}
	if len(stats.ByGame) != 0 {
		t.Errorf("expected empty breakdown, got %v", stats.ByGame)
	}
}

func TestCalcPlayerStatsSpansAllSpaces(t *testing.T) {
	players := []playerDomain.Player{{ID: "p", Name: "Pat"}}
	matches := []matchDomain.Match{
		{GameID: "g1", PlayerIDs: []string{"p"}, WinnerIDs: []string{"p"}, SpaceID: "office"},
		{GameID: "g1", PlayerIDs: []string{"p"}, WinnerIDs: []string{"p"}},
	}

	stats := CalcPlayerStats("p", matches, nil, players)
	if stats.TotalMatches != 2 {
		t.Errorf("stats must span spaces: got %d matches, want 2", stats.TotalMatches)
	}
}

func TestCalcPlayerStatsPointsAndBreakdown(t *testing.T) {
	players := []playerDomain.Player{{ID: "p", Name: "Pat"}, {ID: "q", Name: "Q"}}
	games := []gameDomain.Game{{ID: "chess", Name: "Chess"}, {ID: "darts", Name: "Darts"}}
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	matches := []matchDomain.Match{
		{
			GameID: "chess", Timestamp: base,
			PlayerIDs: []string{"p", "q"}, WinnerIDs: []string{"p"},
			PointsAwarded: []matchDomain.PointsAward{{PlayerID: "p", Points: 3}, {PlayerID: "q", Points: 1}},
		},
		{
			GameID: "chess", Timestamp: base.Add(time.Hour),
			PlayerIDs: []string{"p", "q"}, WinnerIDs: []string{"q"},
			PointsAwarded: []matchDomain.PointsAward{{PlayerID: "p", Points: -1}, {PlayerID: "q", Points: 3}},
		},
		{
			GameID: "darts", Timestamp: base.Add(2 * time.Hour),
			PlayerIDs: []string{"p", "q"}, WinnerIDs: []string{"p"},
			PointsAwarded: []matchDomain.PointsAward{{PlayerID: "p", Points: 2}},
		},
	}

	stats := CalcPlayerStats("p", matches, games, players)
	if stats.TotalPoints != 4 {
		t.Errorf("total points: got %d, want 4", stats.TotalPoints)
	}
	if want := float64(4) / 3; stats.AvgPointsPerMatch != want {
		t.Errorf("avg points: got %v, want %v", stats.AvgPointsPerMatch, want)
	}
	if len(stats.ByGame) != 2 {
		t.Fatalf("breakdown: got %d games, want 2", len(stats.ByGame))
	}
	chess := stats.ByGame[0]
	if chess.GameName != "Chess" || chess.GamesPlayed != 2 || chess.Wins != 1 || chess.Losses != 1 || chess.WinRate != 0.5 {
		t.Errorf("chess breakdown: %+v", chess)
	}
	darts := stats.ByGame[1]
	if darts.GamesPlayed != 1 || darts.Wins != 1 || darts.WinRate != 1 {
		t.Errorf("darts breakdown: %+v", darts)
	}
}
