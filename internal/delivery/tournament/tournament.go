package tournament

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	"github.com/ahmedroou/scoreverse0-sub000/internal/delivery/live"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	gameUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/game"
	spaceUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/space"
	tournamentUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/tournament"
	"github.com/ahmedroou/scoreverse0-sub000/internal/utils"
)

type TournamentHandler struct {
	log          *zap.SugaredLogger
	tournamentUC *tournamentUC.TournamentUseCase
	spaceUC      *spaceUC.SpaceUseCase
	authHandler  *authDelivery.AuthHandler
	hub          *live.Hub
}

func NewTournamentHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, authHandler *authDelivery.AuthHandler, hub *live.Hub) *TournamentHandler {
	return &TournamentHandler{
		log: log,
		tournamentUC: tournamentUC.NewTournamentUseCase(
			repository.NewTournamentRepository(log, mongoAdapter.Database),
			gameUC.NewGameUseCase(
				repository.NewGameRepository(log, mongoAdapter.Database),
				repository.NewMatchRepository(cfg, log, mongoAdapter.Database),
			),
		),
		spaceUC: spaceUC.NewSpaceUseCase(
			repository.NewSpaceRepository(log, mongoAdapter.Database),
			authHandler.Sessions(),
		),
		authHandler: authHandler,
		hub:         hub,
	}
}

func (h *TournamentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req tournamentUC.CreateTournamentRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("create tournament: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}
	if req.TargetPoints <= 0 {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "target_points must be positive"})
		return
	}

	scope := h.spaceUC.ActiveScope(h.authHandler.SessionID(r))
	created, err := h.tournamentUC.CreateTournament(r.Context(), userID, req, scope)
	if err != nil {
		if errors.Is(err, errs.ErrGameNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("create tournament: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, created)
}

func (h *TournamentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	scope := h.spaceUC.ActiveScope(h.authHandler.SessionID(r))
	tournaments, err := h.tournamentUC.ListTournaments(r.Context(), userID, scope)
	if err != nil {
		h.log.Error("list tournaments: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, tournaments)
}
