package model

import "errors"

// Common errors used across the application
var (
	// Room lifecycle errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrRoomCodeExhausted = errors.New("unable to generate unique room code")
	ErrNotInRoom         = errors.New("not in a room")
	ErrGameTypeMismatch  = errors.New("room is for a different game type")
	ErrUnsupportedGame   = errors.New("unsupported game type")

	// Authorization errors
	ErrNotHost = errors.New("only the host can perform this action")

	// Phase errors
	ErrGameAlreadyStarted  = errors.New("game already started")
	ErrGameNotStarted      = errors.New("game not found or not started")
	ErrInvalidPhase        = errors.New("invalid phase for this game type")
	ErrPhaseNotAdvanceable = errors.New("cannot advance to this phase")
	ErrNotEnoughPlayers    = errors.New("not enough players to start")
	ErrLobbyOnly           = errors.New("settings can only be updated in the lobby")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game message errors
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrNotYourTurn        = errors.New("it is not your turn")
	ErrEmptyMessage       = errors.New("message cannot be empty")
	ErrMultipleWords      = errors.New("please send only one word at a time")
	ErrWrongPhase         = errors.New("action not available in this phase")
	ErrSelfVote           = errors.New("cannot vote for yourself")
	ErrInvalidVoteTarget  = errors.New("invalid player to vote for")
	ErrVotesOutstanding   = errors.New("not all players have voted yet")
	ErrInvalidCategory    = errors.New("invalid category selected")

	// Word Hunt errors
	ErrGameNotActive       = errors.New("game is not active")
	ErrGameActive          = errors.New("game is already active")
	ErrWordTooShort        = errors.New("word must be at least 3 letters")
	ErrInvalidWordPath     = errors.New("invalid word path on board")
	ErrWordAlreadyFound    = errors.New("word already found")
	ErrWordNotInDictionary = errors.New("word not in dictionary")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
