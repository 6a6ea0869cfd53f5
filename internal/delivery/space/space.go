package space

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	"github.com/ahmedroou/scoreverse0-sub000/internal/delivery/live"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/httpresponse"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	spaceUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/space"
	"github.com/ahmedroou/scoreverse0-sub000/internal/utils"
)

type SpaceHandler struct {
	log         *zap.SugaredLogger
	spaceUC     *spaceUC.SpaceUseCase
	authHandler *authDelivery.AuthHandler
	hub         *live.Hub
}

func NewSpaceHandler(log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, authHandler *authDelivery.AuthHandler, hub *live.Hub) *SpaceHandler {
	return &SpaceHandler{
		log: log,
		spaceUC: spaceUC.NewSpaceUseCase(
			repository.NewSpaceRepository(log, mongoAdapter.Database),
			authHandler.Sessions(),
		),
		authHandler: authHandler,
		hub:         hub,
	}
}

type createSpaceRequest struct {
	Name string `json:"name"`
}

func (h *SpaceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req createSpaceRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("create space: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}
	if req.Name == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "space name is required"})
		return
	}

	created, err := h.spaceUC.CreateSpace(r.Context(), userID, req.Name)
	if err != nil {
		h.log.Error("create space: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, created)
}

func (h *SpaceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	spaces, err := h.spaceUC.ListSpaces(r.Context(), userID)
	if err != nil {
		h.log.Error("list spaces: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, spaces)
}

func (h *SpaceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	spaceID := chi.URLParam(r, "id")
	if err := h.spaceUC.DeleteSpace(r.Context(), userID, h.authHandler.SessionID(r), spaceID); err != nil {
		if errors.Is(err, errs.ErrSpaceNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("delete space: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	h.hub.Publish(r.Context(), userID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

type activateSpaceRequest struct {
	SpaceID string `json:"space_id"`
}

// HandleActivate switches the session's active space. An empty space_id
// returns the session to the global view.
func (h *SpaceHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	var req activateSpaceRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("activate space: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	if err := h.spaceUC.Activate(r.Context(), userID, h.authHandler.SessionID(r), req.SpaceID); err != nil {
		if errors.Is(err, errs.ErrSpaceNotFound) {
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		}
		h.log.Error("activate space: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusInternalServerError,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}
