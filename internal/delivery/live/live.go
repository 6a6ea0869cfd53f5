package live

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	stateUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/state"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub pushes full-collection snapshots to every websocket a user has open.
// Write handlers call Publish after a committed write; there is no delta
// protocol and no ordering contract beyond "a later snapshot is newer".
type Hub struct {
	log         *zap.SugaredLogger
	state       *stateUC.StateUseCase
	authHandler *authDelivery.AuthHandler

	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]struct{}
}

func NewHub(state *stateUC.StateUseCase, authHandler *authDelivery.AuthHandler, log *zap.SugaredLogger) *Hub {
	return &Hub{
		log:         log,
		state:       state,
		authHandler: authHandler,
		conns:       make(map[string]map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) HandleLive(w http.ResponseWriter, r *http.Request) {
	userID := h.authHandler.GetUserID(w, r)
	if userID == "" {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("websocket upgrade failed: %v", err)
		return
	}

	h.register(userID, conn)
	h.log.Infof("live subscription opened for user %s", userID)

	// initial snapshot so the client starts from current state
	if snap, err := h.state.LoadSnapshot(r.Context(), userID); err == nil {
		h.send(userID, conn, Event{Type: "snapshot", Data: snap})
	}

	go h.readLoop(userID, conn)
}

// Publish loads a fresh snapshot and fans it out to the user's sockets.
func (h *Hub) Publish(ctx context.Context, ownerID string) {
	snap, err := h.state.LoadSnapshot(ctx, ownerID)
	if err != nil {
		h.log.Errorf("snapshot load for %s failed: %v", ownerID, err)
		return
	}
	h.broadcast(ownerID, Event{Type: "snapshot", Data: snap})
}

// PublishTournamentCompleted raises the per-tournament completion
// notification consumed by toast UI.
func (h *Hub) PublishTournamentCompleted(ownerID string, completed tournamentDomain.Tournament) {
	h.broadcast(ownerID, Event{Type: "tournament_completed", Data: completed})
}

func (h *Hub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[userID][conn] = struct{}{}
}

func (h *Hub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[userID], conn)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
	conn.Close()
}

// readLoop only drains control frames; the stream is one-directional.
func (h *Hub) readLoop(userID string, conn *websocket.Conn) {
	defer h.unregister(userID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) broadcast(ownerID string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[ownerID] {
		if err := conn.WriteJSON(event); err != nil {
			h.log.Errorf("live push to %s failed: %v", ownerID, err)
		}
	}
}

func (h *Hub) send(ownerID string, conn *websocket.Conn, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(event); err != nil {
		h.log.Errorf("live push to %s failed: %v", ownerID, err)
	}
}
