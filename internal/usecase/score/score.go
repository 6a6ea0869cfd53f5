package score

import (
	"sort"

	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	scoreDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/score"
	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
)

// Leaderboard converts an already-scoped match list into ranked rows, one
// per player who appears in at least one match. Pure function of its inputs.
//
// Ordering: total points descending, then wins descending, then player id
// ascending so equal records always come out in the same order.
//
// A win is credited only to ids present in the match's participant list;
// a malformed winner id outside it is ignored rather than invented into
// the board. Points awards are accumulated as-is, negative values included,
// even for ids missing from the participant list (creation-time validation
// is the place that rejects those).
func Leaderboard(matches []matchDomain.Match, players []playerDomain.Player) []scoreDomain.ScoreData {
	acc := make(map[string]*scoreDomain.ScoreData)

	entry := func(playerID string) *scoreDomain.ScoreData {
		if e, ok := acc[playerID]; ok {
			return e
		}
		e := &scoreDomain.ScoreData{PlayerID: playerID}
		acc[playerID] = e
		return e
	}

	for _, m := range matches {
		participants := make(map[string]struct{}, len(m.PlayerIDs))
		for _, id := range m.PlayerIDs {
			participants[id] = struct{}{}
			entry(id).GamesPlayed++
		}
		for _, award := range m.PointsAwarded {
			entry(award.PlayerID).TotalPoints += award.Points
		}
		for _, id := range m.WinnerIDs {
			if _, ok := participants[id]; !ok {
				continue
			}
			entry(id).Wins++
		}
	}

	roster := make(map[string]playerDomain.Player, len(players))
	for _, p := range players {
		roster[p.ID] = p
	}

	board := make([]scoreDomain.ScoreData, 0, len(acc))
	for _, e := range acc {
		if p, ok := roster[e.PlayerID]; ok {
			e.PlayerName = p.Name
			e.AvatarURL = p.AvatarURL
		} else {
			e.PlayerName = playerDomain.UnknownName
		}
		board = append(board, *e)
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].TotalPoints != board[j].TotalPoints {
			return board[i].TotalPoints > board[j].TotalPoints
		}
		if board[i].Wins != board[j].Wins {
			return board[i].Wins > board[j].Wins
		}
		return board[i].PlayerID < board[j].PlayerID
	})

	return board
}

// MatchesInScope keeps the matches belonging to the given scope. A match
// without a space id is visible only in the global scope.
func MatchesInScope(matches []matchDomain.Match, scope spaceDomain.Scope) []matchDomain.Match {
	var out []matchDomain.Match
	for _, m := range matches {
		if scope.Contains(m.SpaceID) {
			out = append(out, m)
		}
	}
	return out
}

// MatchesForGame keeps the matches of one game; gameID == "" keeps all.
func MatchesForGame(matches []matchDomain.Match, gameID string) []matchDomain.Match {
	if gameID == "" {
		return matches
	}
	var out []matchDomain.Match
	for _, m := range matches {
		if m.GameID == gameID {
			out = append(out, m)
		}
	}
	return out
}
