package score

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	scoreDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/score"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	exportUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/export"
	scoreUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/score"
	spaceUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/space"
)

type ScoreHandler struct {
	log         *zap.SugaredLogger
	matches     *repository.MatchRepository
	players     *repository.PlayerRepository
	games       *repository.GameRepository
	spaceUC     *spaceUC.SpaceUseCase
	authHandler *authDelivery.AuthHandler
}

func NewScoreHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, authHandler *authDelivery.AuthHandler) *ScoreHandler {
	return &ScoreHandler{
		log:     log,
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

// HandleLeaderboard ranks the roster over the matches visible in the
// session's active scope. An optional game_id query restricts the board to
// one game.
func (h *ScoreHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	board, err := h.loadBoard(r, userID)
	if err != nil {
		h.log.Error("leaderboard: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, board)
}

func (h *ScoreHandler) HandlePlayerStats(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	playerID := chi.URLParam(r, "id")

	// stats span every space; the active scope only narrows leaderboards
	allMatches, err := h.matches.GetMatchesByOwner(r.Context(), userID)
	if err != nil {
		h.log.Error("player stats: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	games, err := h.games.GetGamesByOwner(r.Context(), userID)
	if err != nil {
		h.log.Error("player stats: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	players, err := h.players.GetPlayersByOwner(r.Context(), userID)
	if err != nil {
		h.log.Error("player stats: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	stats := scoreUC.CalcPlayerStats(playerID, allMatches, games, players)
	if stats == nil {
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
			httpresponse.ErrorResponse{ErrorDescription: "player not found"})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, stats)
}

func (h *ScoreHandler) HandleLeaderboardPDF(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	board, err := h.loadBoard(r, userID)
	if err != nil {
		h.log.Error("leaderboard pdf: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	title := "Leaderboard"
	if gameID := r.URL.Query().Get("game_id"); gameID != "" {
		if g, err := h.games.GetGameByID(r.Context(), userID, gameID); err == nil {
			title = fmt.Sprintf("Leaderboard: %s", g.Name)
		}
	}

	doc, err := exportUC.LeaderboardPDF(title, board)
	if err != nil {
		h.log.Error("leaderboard pdf: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.log.Error("leaderboard pdf write: ", err)
	}
}

func (h *ScoreHandler) loadBoard(r *http.Request, userID string) ([]scoreDomain.ScoreData, error) {
	scope := h.spaceUC.ActiveScope(h.authHandler.SessionID(r))

	allMatches, err := h.matches.GetMatchesByOwner(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	players, err := h.players.GetPlayersByOwner(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	visible := scoreUC.MatchesInScope(allMatches, scope)
	visible = scoreUC.MatchesForGame(visible, r.URL.Query().Get("game_id"))
	return scoreUC.Leaderboard(visible, players), nil
}
