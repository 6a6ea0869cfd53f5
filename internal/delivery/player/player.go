package player

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	"github.com/ahmedroou/scoreverse0-sub000/internal/delivery/live"
	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	playerUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/player"
	"github.com/ahmedroou/scoreverse0-sub000/internal/utils"
)

type PlayerHandler struct {
	log         *zap.SugaredLogger
	playerUC    *playerUC.PlayerUseCase
	authHandler *authDelivery.AuthHandler
	hub         *live.Hub
}

func NewPlayerHandler(log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, authHandler *authDelivery.AuthHandler, hub *live.Hub) *PlayerHandler {
	return &PlayerHandler{
		log:         log,
		playerUC:    playerUC.NewPlayerUseCase(repository.NewPlayerRepository(log, mongoAdapter.Database)),
		authHandler: authHandler,
		hub:         hub,
	}
}

func (h *PlayerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req playerUC.CreatePlayerRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("create player: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}
	if req.Name == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "player name is required"})
		return
	}

	created, err := h.playerUC.CreatePlayer(r.Context(), userID, req)
	if err != nil {
		h.log.Error("create player: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, created)
}

func (h *PlayerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	players, err := h.playerUC.ListPlayers(r.Context(), userID)
	if err != nil {
		h.log.Error("list players: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, players)
}

func (h *PlayerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req playerDomain.Player
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("update player: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	updated, err := h.playerUC.UpdatePlayer(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, errs.ErrPlayerNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("update player: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, updated)
}

func (h *PlayerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	playerID := chi.URLParam(r, "id")
	if err := h.playerUC.DeletePlayer(r.Context(), userID, playerID); err != nil {
		if errors.Is(err, errs.ErrPlayerNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("delete player: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}
