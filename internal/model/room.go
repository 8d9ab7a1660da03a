package model

import "time"

// RoomCode is the 6-character code identifying a live room
type RoomCode string

// RoomSettings holds the host-configurable pre-game options for a room
type RoomSettings struct {
	Category string // Secret Word category, empty for random
}

// Room is the aggregate for one game session: membership, host
// designation, phase, and pre-game settings. Players are kept in
// insertion order for display. Game-specific state is owned by the
// bound rule plugin, not the room.
type Room struct {
	Code      RoomCode
	GameType  GameType
	HostID    ConnectionID
	Players   []*Player
	Phase     GamePhase
	Settings  RoomSettings
	CreatedAt time.Time
}

// NewRoom creates a room in the lobby phase with no players. The creator
// becomes host on the first AddPlayer call.
func NewRoom(code RoomCode, hostID ConnectionID, gameType GameType, now time.Time) *Room {
	return &Room{
		Code:      code,
		GameType:  gameType,
		HostID:    hostID,
		Phase:     PhaseLobby,
		CreatedAt: now,
	}
}

// AddPlayer inserts a new player. The player is host iff its connection
// is the room's designated host connection.
func (r *Room) AddPlayer(connID ConnectionID, name string, persistentID PersistentID, now time.Time) *Player {
	p := &Player{
		ConnectionID: connID,
		Name:         name,
		PersistentID: persistentID,
		IsHost:       connID == r.HostID,
		IsConnected:  true,
		JoinedAt:     now,
	}
	r.Players = append(r.Players, p)
	return p
}

// RemovePlayer deletes the player with the given connection. If the host
// left and others remain, the earliest-remaining player is promoted.
func (r *Room) RemovePlayer(connID ConnectionID) {
	for i, p := range r.Players {
		if p.ConnectionID == connID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			break
		}
	}

	if connID == r.HostID && len(r.Players) > 0 {
		newHost := r.Players[0]
		r.HostID = newHost.ConnectionID
		newHost.IsHost = true
	}
}

// DisconnectPlayer marks the player disconnected without removing it,
// holding its seat open for the reconnection grace window.
func (r *Room) DisconnectPlayer(connID ConnectionID, now time.Time) {
	if p := r.GetPlayer(connID); p != nil {
		p.IsConnected = false
		p.DisconnectedAt = now
	}
}

// ReconnectPlayer rebinds the player matching persistentID to a new
// connection identifier, transferring host designation with it. Returns
// false, with no mutation, if no player matches.
func (r *Room) ReconnectPlayer(newConnID ConnectionID, persistentID PersistentID, now time.Time) bool {
	if persistentID == "" {
		return false
	}

	for _, p := range r.Players {
		if p.PersistentID != persistentID {
			continue
		}
		if p.ConnectionID == r.HostID {
			r.HostID = newConnID
		}
		p.ConnectionID = newConnID
		p.IsConnected = true
		p.ReconnectedAt = now
		return true
	}
	return false
}

// GetPlayer returns the player bound to connID, or nil
func (r *Room) GetPlayer(connID ConnectionID) *Player {
	for _, p := range r.Players {
		if p.ConnectionID == connID {
			return p
		}
	}
	return nil
}

// FindByPersistentID returns the player with the given persistent
// identity, or nil
func (r *Room) FindByPersistentID(persistentID PersistentID) *Player {
	if persistentID == "" {
		return nil
	}
	for _, p := range r.Players {
		if p.PersistentID == persistentID {
			return p
		}
	}
	return nil
}

// IsEmpty reports whether the room has no players left
func (r *Room) IsEmpty() bool {
	return len(r.Players) == 0
}

// IsHost reports whether connID is the room's host connection
func (r *Room) IsHost(connID ConnectionID) bool {
	return connID == r.HostID
}

// InGame reports whether a game run is in progress
func (r *Room) InGame() bool {
	return r.Phase != PhaseLobby
}

// ResetForNewGame returns the phase to lobby. The coordinator resets the
// bound plugin's state alongside this.
func (r *Room) ResetForNewGame() {
	r.Phase = PhaseLobby
}
