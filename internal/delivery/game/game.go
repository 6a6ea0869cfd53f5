package game

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	"github.com/ahmedroou/scoreverse0-sub000/internal/delivery/live"
	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	gameUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/game"
	"github.com/ahmedroou/scoreverse0-sub000/internal/utils"
)

type GameHandler struct {
	log         *zap.SugaredLogger
	gameUC      *gameUC.GameUseCase
	authHandler *authDelivery.AuthHandler
	hub         *live.Hub
}

func NewGameHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, authHandler *authDelivery.AuthHandler, hub *live.Hub) *GameHandler {
	return &GameHandler{
		log: log,
		gameUC: gameUC.NewGameUseCase(
			repository.NewGameRepository(log, mongoAdapter.Database),
			repository.NewMatchRepository(cfg, log, mongoAdapter.Database),
		),
		authHandler: authHandler,
		hub:         hub,
	}
}

func (h *GameHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req gameUC.CreateGameRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("create game: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}
	if req.Name == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "game name is required"})
		return
	}

	created, err := h.gameUC.CreateGame(r.Context(), userID, req)
	if err != nil {
		h.log.Error("create game: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, created)
}

func (h *GameHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	games, err := h.gameUC.ListGames(r.Context(), userID)
	if err != nil {
		h.log.Error("list games: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, games)
}

func (h *GameHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req gameDomain.Game
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("update game: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	updated, err := h.gameUC.UpdateGame(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, errs.ErrGameNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("update game: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, updated)
}

func (h *GameHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	gameID := chi.URLParam(r, "id")
	if err := h.gameUC.DeleteGame(r.Context(), userID, gameID); err != nil {
		switch {
		case errors.Is(err, errs.ErrGameNotFound):
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		case errors.Is(err, errs.ErrGameHasMatches):
			httpresponse.WriteResponseWithStatus(w, http.StatusConflict,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		default:
			h.log.Error("delete game: ", err)
			httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		}
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}
