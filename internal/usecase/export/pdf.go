package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	scoreDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/score"
)

// LeaderboardPDF renders a scoped leaderboard into a printable one-pager.
func LeaderboardPDF(title string, board []scoreDomain.ScoreData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Courier", "B", 10)
	pdf.Cell(12, 6, "#")
	pdf.Cell(70, 6, "Player")
	pdf.Cell(30, 6, "Points")
	pdf.Cell(30, 6, "Games")
	pdf.Cell(30, 6, "Wins")
	pdf.Ln(8)

	pdf.SetFont("Courier", "", 10)
	if len(board) == 0 {
		pdf.Cell(0, 6, "No matches recorded in this scope.")
		pdf.Ln(6)
	}
	for i, row := range board {
		pdf.Cell(12, 6, fmt.Sprintf("%d", i+1))
		pdf.Cell(70, 6, row.PlayerName)
		pdf.Cell(30, 6, fmt.Sprintf("%d", row.TotalPoints))
		pdf.Cell(30, 6, fmt.Sprintf("%d", row.GamesPlayed))
		pdf.Cell(30, 6, fmt.Sprintf("%d", row.Wins))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
