package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/openroom/partygames-go/internal/coordinator"
	"github.com/openroom/partygames-go/internal/middleware"
	"github.com/openroom/partygames-go/internal/protocol"
	"github.com/openroom/partygames-go/internal/services/dictionary"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Game clients are served from arbitrary origins
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves the websocket endpoint and operational routes
type Handler struct {
	registry *Registry
	coord    *coordinator.Coordinator
	dict     dictionary.ServiceInterface
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler set
func NewHandler(
	registry *Registry,
	coord *coordinator.Coordinator,
	dict dictionary.ServiceInterface,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registry: registry,
		coord:    coord,
		dict:     dict,
		logger:   logger,
	}
}

// Router builds the route table with logging and panic recovery
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(h.logger, h.handlePanic))
	r.Use(middleware.Logging(h.logger))

	r.HandleFunc("/ws", h.serveWS)
	r.HandleFunc("/health", h.serveHealth).Methods(http.MethodGet)

	return r
}

// serveWS upgrades the connection and runs its read loop. One writer
// goroutine drains the outbound queue; the read loop feeds decoded
// frames to the coordinator until the connection dies.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	id, outbound := h.registry.Register()
	h.logger.Info("client connected", "client", id, "remote", r.RemoteAddr)

	go func() {
		defer conn.Close()
		for payload := range outbound {
			if err := conn.WriteJSON(payload); err != nil {
				return
			}
		}
	}()

	defer func() {
		h.registry.Unregister(id)
		h.coord.HandleDisconnect(id)
		h.logger.Info("client disconnected", "client", id)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("read error", "client", id, "error", err)
			}
			return
		}
		// A frame that is not valid JSON gets an error reply; only
		// transport errors end the connection
		var msg protocol.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debug("malformed frame", "client", id, "error", err)
			h.registry.Send(id, protocol.NewError("invalid message format"))
			continue
		}
		h.coord.HandleMessage(id, &msg)
	}
}

type healthResponse struct {
	Status           string `json:"status"`
	Rooms            int    `json:"rooms"`
	Clients          int    `json:"clients"`
	DictionaryLoaded bool   `json:"dictionaryLoaded"`
}

func (h *Handler) serveHealth(w http.ResponseWriter, r *http.Request) {
	rooms, clients := h.coord.Stats()
	resp := healthResponse{
		Status:           "ok",
		Rooms:            rooms,
		Clients:          clients,
		DictionaryLoaded: h.dict.IsLoaded(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to write health response", "error", err)
	}
}

func (h *Handler) handlePanic(w http.ResponseWriter, r *http.Request, err any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
}
