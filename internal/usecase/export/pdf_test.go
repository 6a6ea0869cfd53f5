package export

import (
	"bytes"
	"testing"

	scoreDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/score"
)

func TestLeaderboardPDF(t *testing.T) {
	board := []scoreDomain.ScoreData{
		{PlayerID: "a", PlayerName: "Alice", TotalPoints: 12, GamesPlayed: 5, Wins: 4},
		{PlayerID: "b", PlayerName: "Bob", TotalPoints: 7, GamesPlayed: 5, Wins: 1},
	}

	out, err := LeaderboardPDF("Office Chess", board)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", out[:min(len(out), 8)])
	}
}

func TestLeaderboardPDFEmptyBoard(t *testing.T) {
	out, err := LeaderboardPDF("Empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Error("empty board must still render a document")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
