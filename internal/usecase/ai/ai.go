package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	scoreUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/score"
)

type LlmStore interface {
	SendRequestToLlm(request string) (response string, err error)
}

// AiUseCase wraps the two suggestion flows. Both are stateless: build a
// prompt from the roster, call the model, parse one JSON document out of
// the reply.
type AiUseCase struct {
	llm LlmStore
	log *zap.SugaredLogger
}

func NewAiUseCase(llm LlmStore, log *zap.SugaredLogger) *AiUseCase {
	return &AiUseCase{llm: llm, log: log}
}

type MatchupPair struct {
	PlayerIDs []string `json:"player_ids"`
	Rationale string   `json:"rationale,omitempty"`
}

// SuggestHandicaps asks the model for per-player point adjustments that
// would balance a match of the given game between the given players.
func (a *AiUseCase) SuggestHandicaps(ctx context.Context, forGame gameDomain.Game, roster []playerDomain.Player, history []matchDomain.Match) ([]matchDomain.Handicap, error) {
	_ = ctx

	var sb strings.Builder
	sb.WriteString("You are helping balance a friendly match of \"")
	sb.WriteString(forGame.Name)
	sb.WriteString("\". For each player suggest an integer point handicap (negative for stronger players, positive for weaker ones) with a one-sentence reason.\n")
	sb.WriteString("Players:\n")
	for _, p := range roster {
		sb.WriteString(playerLine(p, history))
	}
	sb.WriteString("Respond with ONLY a JSON array of objects {\"player_id\",\"points\",\"reason\"}.\n")

	resp, err := a.llm.SendRequestToLlm(sb.String())
	if err != nil {
		return nil, err
	}

	var out []matchDomain.Handicap
	if err := parseJSONReply(resp, &out); err != nil {
		return nil, err
	}
	// the model only ever annotates; callers still validate against the
	// participant list at match creation
	return out, nil
}

// DrawMatchups asks the model for balanced pairings of the given size.
// When the model call or its reply is unusable it logs the failure and
// falls back to a local random draw; the endpoint stays available during
// model outages.
func (a *AiUseCase) DrawMatchups(ctx context.Context, roster []playerDomain.Player, history []matchDomain.Match, groupSize int) ([]MatchupPair, error) {
	_ = ctx
	if groupSize < 2 {
		groupSize = 2
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Draw random but balanced matchups of %d players each from this roster:\n", groupSize)
	for _, p := range roster {
		sb.WriteString(playerLine(p, history))
	}
	sb.WriteString("Every player appears at most once. Respond with ONLY a JSON array of objects {\"player_ids\",\"rationale\"}.\n")

	resp, err := a.llm.SendRequestToLlm(sb.String())
	if err != nil {
		a.log.Errorf("matchup draw: model call failed, using local draw: %v", err)
		return randomDraw(roster, groupSize), nil
	}

	var out []MatchupPair
	if err := parseJSONReply(resp, &out); err != nil {
		a.log.Errorf("matchup draw: model reply unusable, using local draw: %v", err)
		return randomDraw(roster, groupSize), nil
	}
	return out, nil
}

func playerLine(p playerDomain.Player, history []matchDomain.Match) string {
	stats := scoreUC.CalcPlayerStats(p.ID, history, nil, []playerDomain.Player{p})
	if stats != nil && stats.TotalMatches > 0 {
		return fmt.Sprintf("- %s (id %s): %d matches, win rate %.2f, avg points %.1f\n",
			p.Name, p.ID, stats.TotalMatches, stats.WinRate, stats.AvgPointsPerMatch)
	}
	// no history yet: fall back to the manually entered baselines
	return fmt.Sprintf("- %s (id %s): no recorded matches, estimated win rate %.2f, estimated avg points %.1f\n",
		p.Name, p.ID, p.BaselineWinRate, p.BaselineAvgScore)
}

// parseJSONReply tolerates the markdown code fences chat models like to
// wrap JSON in.
func parseJSONReply(reply string, dst any) error {
	raw := strings.TrimSpace(reply)
	if i := strings.Index(raw, "```"); i >= 0 {
		raw = raw[i+3:]
		raw = strings.TrimPrefix(raw, "json")
		if j := strings.Index(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		return errs.ErrBadAiResponse
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrBadAiResponse, err)
	}
	return nil
}

func randomDraw(roster []playerDomain.Player, groupSize int) []MatchupPair {
	ids := make([]string, 0, len(roster))
	for _, p := range roster {
		ids = append(ids, p.ID)
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	var out []MatchupPair
	for len(ids) >= groupSize {
		out = append(out, MatchupPair{PlayerIDs: ids[:groupSize:groupSize]})
		ids = ids[groupSize:]
	}
	return out
}
