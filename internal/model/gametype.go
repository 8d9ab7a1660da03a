package model

// GameType identifies one of the supported game rule variants
type GameType string

const (
	GameTypeSecretWord GameType = "secret-word"
	GameTypeWordHunt   GameType = "word-hunt"
)

// GamePhase is a named stage in a game type's fixed phase sequence
type GamePhase string

const (
	PhaseLobby      GamePhase = "lobby"
	PhaseRoleReveal GamePhase = "roleReveal"
	PhaseDiscussion GamePhase = "discussion"
	PhaseVoting     GamePhase = "voting"
	PhasePlaying    GamePhase = "playing"
	PhaseResults    GamePhase = "results"
)

// GameConfig holds the static per-game-type metadata: player bounds and
// the declared phase sequence, starting at lobby
type GameConfig struct {
	Name       string
	MinPlayers int
	MaxPlayers int
	Phases     []GamePhase
}

var gameConfigs = map[GameType]GameConfig{
	GameTypeSecretWord: {
		Name:       "Secret Word",
		MinPlayers: 3,
		MaxPlayers: 10,
		Phases:     []GamePhase{PhaseLobby, PhaseRoleReveal, PhaseDiscussion, PhaseVoting, PhaseResults},
	},
	GameTypeWordHunt: {
		Name:       "Word Hunt",
		MinPlayers: 2,
		MaxPlayers: 8,
		Phases:     []GamePhase{PhaseLobby, PhasePlaying, PhaseResults},
	},
}

// ConfigFor returns the config for a game type; ok is false for unknown types
func ConfigFor(gt GameType) (GameConfig, bool) {
	cfg, ok := gameConfigs[gt]
	return cfg, ok
}

// IsValidGameType reports whether gt is a supported game type
func IsValidGameType(gt GameType) bool {
	_, ok := gameConfigs[gt]
	return ok
}

// PhaseIndex returns the position of phase in the config's sequence,
// or -1 if the phase is not declared for this game type
func (c GameConfig) PhaseIndex(phase GamePhase) int {
	for i, p := range c.Phases {
		if p == phase {
			return i
		}
	}
	return -1
}

// FirstGamePhase returns the first non-lobby phase in the sequence
func (c GameConfig) FirstGamePhase() GamePhase {
	if len(c.Phases) > 1 {
		return c.Phases[1]
	}
	return PhaseLobby
}
