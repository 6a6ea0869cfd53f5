package ai

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	aiUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/ai"
	scoreUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/score"
	spaceUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/space"
	"github.com/ahmedroou/scoreverse0-sub000/internal/utils"
)

type AiHandler struct {
	log         *zap.SugaredLogger
	aiUC        *aiUC.AiUseCase
	matches     *repository.MatchRepository
	players     *repository.PlayerRepository
	games       *repository.GameRepository
	spaceUC     *spaceUC.SpaceUseCase
	authHandler *authDelivery.AuthHandler
}

func NewAiHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, llmAdapter *adapters.LlmAdapter, authHandler *authDelivery.AuthHandler) *AiHandler {
	return &AiHandler{
		log:     log,
		aiUC:    aiUC.NewAiUseCase(repository.NewLlmRepository(llmAdapter, log), log),
		matches: repository.NewMatchRepository(cfg, log, mongoAdapter.Database),
		players: repository.NewPlayerRepository(log, mongoAdapter.Database),
		games:   repository.NewGameRepository(log, mongoAdapter.Database),
		spaceUC: spaceUC.NewSpaceUseCase(
			repository.NewSpaceRepository(log, mongoAdapter.Database),
			authHandler.Sessions(),
		),
		authHandler: authHandler,
	}
}

type handicapsRequest struct {
	GameID    string   `json:"game_id"`
	PlayerIDs []string `json:"player_ids,omitempty"`
}

// HandleHandicaps asks the llm agent for per-player handicap suggestions
// for one game, grounded on the scoped match history.
func (h *AiHandler) HandleHandicaps(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req handicapsRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("ai handicaps: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	forGame, err := h.games.GetGameByID(r.Context(), userID, req.GameID)
	if err != nil {
		if errors.Is(err, errs.ErrGameNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("ai handicaps: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	roster, history, err := h.loadContext(r, userID, req.PlayerIDs)
	if err != nil {
		h.log.Error("ai handicaps: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	suggestions, err := h.aiUC.SuggestHandicaps(r.Context(), forGame, roster, history)
	if err != nil {
		if errors.Is(err, errs.ErrBadAiResponse) {
			httpresponse.WriteResponseWithStatus(w, http.StatusBadGateway,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("ai handicaps: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, suggestions)
}

type matchupsRequest struct {
	PlayerIDs []string `json:"player_ids,omitempty"`
	GroupSize int      `json:"group_size"`
}

// HandleMatchups proposes balanced groupings. A local random draw covers
// llm outages, so this endpoint does not fail on agent errors.
func (h *AiHandler) HandleMatchups(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req matchupsRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("ai matchups: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}
	if req.GroupSize < 2 {
		req.GroupSize = 2
	}

	roster, history, err := h.loadContext(r, userID, req.PlayerIDs)
	if err != nil {
		h.log.Error("ai matchups: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	if len(roster) < req.GroupSize {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "not enough players for the requested group size"})
		return
	}

	pairs, err := h.aiUC.DrawMatchups(r.Context(), roster, history, req.GroupSize)
	if err != nil {
		h.log.Error("ai matchups: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, pairs)
}

func (h *AiHandler) loadContext(r *http.Request, userID string, playerIDs []string) ([]playerDomain.Player, []matchDomain.Match, error) {
	roster, err := h.loadRoster(r.Context(), userID, playerIDs)
	if err != nil {
		return nil, nil, err
	}

	allMatches, err := h.matches.GetMatchesByOwner(r.Context(), userID)
	if err != nil {
		return nil, nil, err
	}
	scope := h.spaceUC.ActiveScope(h.authHandler.SessionID(r))
	return roster, scoreUC.MatchesInScope(allMatches, scope), nil
}

func (h *AiHandler) loadRoster(ctx context.Context, userID string, playerIDs []string) ([]playerDomain.Player, error) {
	all, err := h.players.GetPlayersByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(playerIDs) == 0 {
		return all, nil
	}

	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}
	roster := make([]playerDomain.Player, 0, len(playerIDs))
	for _, p := range all {
		if _, ok := wanted[p.ID]; ok {
			roster = append(roster, p)
		}
	}
	return roster, nil
}
