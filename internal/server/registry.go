package server

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/protocol"
)

// sendBuffer is the per-connection outbound queue depth. A client that
// cannot drain this many frames is dropped rather than allowed to
// stall broadcasts for the whole room.
const sendBuffer = 64

// Registry tracks live connections and their outbound queues. It is
// the delivery side of the coordinator's Sender interface: sends are
// best-effort and never block.
type Registry struct {
	mu      sync.RWMutex
	clients map[model.ConnectionID]chan any
	logger  *slog.Logger
}

// NewRegistry creates an empty connection registry
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		clients: make(map[model.ConnectionID]chan any),
		logger:  logger,
	}
}

// Register assigns the connection a fresh identifier and queues the
// connected greeting carrying it. The returned channel is the
// connection's outbound queue; it is closed on Unregister.
func (r *Registry) Register() (model.ConnectionID, <-chan any) {
	id := model.ConnectionID(uuid.NewString())
	ch := make(chan any, sendBuffer)

	r.mu.Lock()
	r.clients[id] = ch
	r.mu.Unlock()

	ch <- protocol.Connected{Type: protocol.TypeConnected, ClientID: id}

	r.logger.Debug("connection registered", "client", id)
	return id, ch
}

// Unregister removes the connection and closes its outbound queue
func (r *Registry) Unregister(id model.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.clients[id]
	if !ok {
		return
	}
	delete(r.clients, id)
	close(ch)

	r.logger.Debug("connection unregistered", "client", id)
}

// Send queues payload for the connection. Unknown connections and
// full queues drop the frame; a client that far behind is about to be
// disconnected anyway.
func (r *Registry) Send(id model.ConnectionID, payload any) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.clients[id]
	if !ok {
		return
	}
	select {
	case ch <- payload:
	default:
		r.logger.Warn("outbound queue full, dropping frame", "client", id)
	}
}

// Count returns the number of registered connections
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
