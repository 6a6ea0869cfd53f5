package match

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	"github.com/ahmedroou/scoreverse0-sub000/internal/delivery/live"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	matchUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/match"
	spaceUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/space"
	tournamentUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/tournament"
	"github.com/ahmedroou/scoreverse0-sub000/internal/utils"
)

type MatchHandler struct {
	log         *zap.SugaredLogger
	matchUC     *matchUC.MatchUseCase
	matchRepo   *repository.MatchRepository
	spaceUC     *spaceUC.SpaceUseCase
	authHandler *authDelivery.AuthHandler
	hub         *live.Hub
}

func NewMatchHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, authHandler *authDelivery.AuthHandler, hub *live.Hub) *MatchHandler {
	matchRepo := repository.NewMatchRepository(cfg, log, mongoAdapter.Database)
	tournamentRepo := repository.NewTournamentRepository(log, mongoAdapter.Database)
	return &MatchHandler{
		log: log,
		matchUC: matchUC.NewMatchUseCase(
			matchRepo,
			repository.NewPlayerRepository(log, mongoAdapter.Database),
			repository.NewGameRepository(log, mongoAdapter.Database),
			tournamentRepo,
			tournamentUC.NewMonitor(tournamentRepo, log),
		),
		matchRepo: matchRepo,
		spaceUC: spaceUC.NewSpaceUseCase(
			repository.NewSpaceRepository(log, mongoAdapter.Database),
			authHandler.Sessions(),
		),
		authHandler: authHandler,
		hub:         hub,
	}
}

// RecordedMatchResponse is returned from match writes. Completed lists the
// tournaments this match pushed over their target, if any.
type RecordedMatchResponse struct {
	Match     matchDomain.Match             `json:"match"`
	Completed []tournamentDomain.Tournament `json:"completed_tournaments,omitempty"`
}

func (h *MatchHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req matchUC.RecordMatchRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("record match: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	scope := h.spaceUC.ActiveScope(h.authHandler.SessionID(r))
	committed, completed, err := h.matchUC.RecordMatch(r.Context(), userID, req, scope)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGameNotFound):
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		case errors.Is(err, errs.ErrNoParticipants),
			errors.Is(err, errs.ErrParticipantNotFound),
			errors.Is(err, errs.ErrWinnerNotParticipant),
			errors.Is(err, errs.ErrAwardNotParticipant):
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		default:
			h.log.Error("record match: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		}
		return
	}

	h.hub.Publish(r.Context(), userID)
	for _, t := range completed {
		h.hub.PublishTournamentCompleted(userID, t)
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK,
		RecordedMatchResponse{Match: committed, Completed: completed})
}

type correctMatchRequest struct {
	MatchID       string                    `json:"match_id"`
	WinnerIDs     []string                  `json:"winner_ids"`
	PointsAwarded []matchDomain.PointsAward `json:"points_awarded,omitempty"`
}

func (h *MatchHandler) HandleCorrect(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req correctMatchRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("correct match: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	updated, completed, err := h.matchUC.CorrectMatch(r.Context(), userID, req.MatchID, req.WinnerIDs, req.PointsAwarded)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMatchNotFound):
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		case errors.Is(err, errs.ErrWinnerNotParticipant),
			errors.Is(err, errs.ErrAwardNotParticipant):
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		default:
			h.log.Error("correct match: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		}
		return
	}

	h.hub.Publish(r.Context(), userID)
	for _, t := range completed {
		h.hub.PublishTournamentCompleted(userID, t)
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK,
		RecordedMatchResponse{Match: updated, Completed: completed})
}

func (h *MatchHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	scope := h.spaceUC.ActiveScope(h.authHandler.SessionID(r))

	// ?page=N (1-based) switches to the newest-first paginated query;
	// the scope narrows the query itself so pages stay full
	if pageNum, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && pageNum > 0 {
		page, err := h.matchRepo.GetMatchesByOwnerPaginated(r.Context(), userID, scope, pageNum)
		if err != nil {
			h.log.Error("list matches: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		httpresponse.WriteResponseWithStatus(w, http.StatusOK, page)
		return
	}

	matches, err := h.matchUC.ListMatches(r.Context(), userID, scope)
	if err != nil {
		h.log.Error("list matches: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, matches)
}
