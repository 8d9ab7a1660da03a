package model

import "time"

// ConnectionID is the ephemeral identifier assigned to a transport
// connection. It is generated at connect time and never reused.
type ConnectionID string

// PersistentID is an opaque identifier chosen and stored client-side.
// It is stable across reconnects and page reloads for one browser profile
// and is used only to re-associate a new connection with an existing
// room membership. It is not unique-enforced beyond room scope.
type PersistentID string

// Player is a room-scoped participant. It is keyed by ConnectionID for
// message routing and by PersistentID for reconnection; Room keeps the
// two in sync across reconnect and host-transfer events.
type Player struct {
	ConnectionID   ConnectionID
	Name           string
	PersistentID   PersistentID
	IsHost         bool
	IsConnected    bool
	JoinedAt       time.Time
	DisconnectedAt time.Time
	ReconnectedAt  time.Time
}
