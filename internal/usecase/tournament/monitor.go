package tournament

import (
	"context"
	"time"

	"go.uber.org/zap"

	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	"github.com/ahmedroou/scoreverse0-sub000/internal/statuses"
	scoreUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/score"
)

type CompletionStore interface {
	CompleteTournament(ctx context.Context, ownerID string, tournamentID string, winnerID string, completedAt time.Time) error
}

// Monitor runs exactly once after each committed match write, never on a
// schedule. A failed completion write is logged and the tournament stays
// active; the match itself has already committed and is not rolled back.
type Monitor struct {
	store CompletionStore
	log   *zap.SugaredLogger
}

func NewMonitor(store CompletionStore, log *zap.SugaredLogger) *Monitor {
	return &Monitor{store: store, log: log}
}

// CheckAfterMatch recomputes the leaderboard scoped to the new match's game
// and space (allMatches must already include the new match) and completes
// every active tournament in that scope whose target the leader has reached.
// The ranked list is scanned in order, so when several players cross the
// threshold on the same update the current leader takes the win.
//
// Returns the tournaments completed by this match, with winner and
// completion time filled in.
func (m *Monitor) CheckAfterMatch(
	ctx context.Context,
	newMatch matchDomain.Match,
	allMatches []matchDomain.Match,
	tournaments []tournamentDomain.Tournament,
	players []playerDomain.Player,
) []tournamentDomain.Tournament {
	scope := spaceDomain.ScopeFor(newMatch.SpaceID)
	scoped := scoreUC.MatchesForGame(scoreUC.MatchesInScope(allMatches, scope), newMatch.GameID)
	board := scoreUC.Leaderboard(scoped, players)
	if len(board) == 0 {
		return nil
	}

	var completed []tournamentDomain.Tournament
	for _, t := range tournaments {
		if t.Status != statuses.StatusActive || t.GameID != newMatch.GameID || !scope.Contains(t.SpaceID) {
			continue
		}

		winnerID := ""
		for _, row := range board {
			if row.TotalPoints >= t.TargetPoints {
				winnerID = row.PlayerID
				break
			}
		}
		if winnerID == "" {
			continue
		}

		completedAt := time.Now()
		if err := m.store.CompleteTournament(ctx, t.OwnerID, t.ID, winnerID, completedAt); err != nil {
			// no retry and no rollback: the tournament simply stays active
			m.log.Errorf("tournament %s completion write failed: %v", t.ID, err)
			continue
		}

		t.Status = statuses.StatusCompleted
		t.WinnerID = winnerID
		t.CompletedAt = &completedAt
		completed = append(completed, t)
	}

	return completed
}
