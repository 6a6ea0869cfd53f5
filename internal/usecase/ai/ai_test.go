package ai

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type fakeLlm struct {
	reply string
	err   error
	seen  string
}

func (f *fakeLlm) SendRequestToLlm(request string) (string, error) {
	f.seen = request
	return f.reply, f.err
}

var testRoster = []playerDomain.Player{
	{ID: "p1", Name: "Alice"},
	{ID: "p2", Name: "Bob"},
	{ID: "p3", Name: "Cara"},
	{ID: "p4", Name: "Dan"},
}

func TestSuggestHandicapsParsesFencedJSON(t *testing.T) {
	llm := &fakeLlm{reply: "```json\n[{\"player_id\":\"p1\",\"points\":-2,\"reason\":\"strongest recent record\"}]\n```"}
	uc := NewAiUseCase(llm, zap.NewNop().Sugar())

	got, err := uc.SuggestHandicaps(context.Background(), gameDomain.Game{Name: "Chess"}, testRoster, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].PlayerID != "p1" || got[0].Points != -2 {
		t.Errorf("parsed: %+v", got)
	}
	if llm.seen == "" {
		t.Error("prompt never sent")
	}
}

func TestSuggestHandicapsPlainJSON(t *testing.T) {
	llm := &fakeLlm{reply: `[{"player_id":"p2","points":3,"reason":"new player"}]`}
	got, err := NewAiUseCase(llm, zap.NewNop().Sugar()).SuggestHandicaps(context.Background(), gameDomain.Game{Name: "Darts"}, testRoster, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Points != 3 {
		t.Errorf("parsed: %+v", got)
	}
}

func TestSuggestHandicapsBadReply(t *testing.T) {
	llm := &fakeLlm{reply: "sorry, I cannot help with that"}
	_, err := NewAiUseCase(llm, zap.NewNop().Sugar()).SuggestHandicaps(context.Background(), gameDomain.Game{Name: "Chess"}, testRoster, nil)
	if !errors.Is(err, errs.ErrBadAiResponse) {
		t.Fatalf("got %v, want ErrBadAiResponse", err)
	}
}

func TestDrawMatchupsParsesReply(t *testing.T) {
	llm := &fakeLlm{reply: `[{"player_ids":["p1","p4"],"rationale":"strong vs strong"},{"player_ids":["p2","p3"]}]`}
	pairs, err := NewAiUseCase(llm, zap.NewNop().Sugar()).DrawMatchups(context.Background(), testRoster, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 || len(pairs[0].PlayerIDs) != 2 {
		t.Errorf("pairs: %+v", pairs)
	}
}

func TestDrawMatchupsFallsBackToLocalDraw(t *testing.T) {
	llm := &fakeLlm{err: errors.New("model unreachable")}
	pairs, err := NewAiUseCase(llm, zap.NewNop().Sugar()).DrawMatchups(context.Background(), testRoster, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("local draw of 4 players into pairs: got %d groups", len(pairs))
	}
	seen := make(map[string]bool)
	for _, pair := range pairs {
		for _, id := range pair.PlayerIDs {
			if seen[id] {
				t.Errorf("player %s drawn twice", id)
			}
			seen[id] = true
		}
	}
}
