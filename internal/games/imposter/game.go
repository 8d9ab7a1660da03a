package imposter

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/openroom/partygames-go/internal/dependencies/clock"
	"github.com/openroom/partygames-go/internal/dependencies/random"
	"github.com/openroom/partygames-go/internal/games"
	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/protocol"
)

// ChatMessage is one turn-taken word in the discussion phase
type ChatMessage struct {
	PlayerID   model.ConnectionID `json:"playerId"`
	PlayerName string             `json:"playerName"`
	Message    string             `json:"message"`
	Timestamp  int64              `json:"timestamp"`
}

// RoleView is the private role message for one player. The imposter
// sees a nil secret word.
type RoleView struct {
	IsImposter bool    `json:"isImposter"`
	SecretWord *string `json:"secretWord"`
}

// SharedState is the broadcast-safe projection of the game. The
// secret word, roles and individual votes only appear once the room
// reaches the results phase.
type SharedState struct {
	SelectedCategory string                                    `json:"selectedCategory,omitempty"`
	ChatMessages     []ChatMessage                             `json:"chatMessages"`
	CurrentTurnID    model.ConnectionID                        `json:"currentTurnPlayerId,omitempty"`
	TurnOrder        []model.ConnectionID                      `json:"turnOrder,omitempty"`
	VoteCount        int                                       `json:"voteCount"`
	Votes            map[model.ConnectionID]model.ConnectionID `json:"votes,omitempty"`
	Imposters        []model.ConnectionID                      `json:"imposters,omitempty"`
	SecretWord       string                                    `json:"secretWord,omitempty"`
}

// Game implements the secret-word rules: one hidden imposter, a
// turn-based single-word discussion, then a vote.
type Game struct {
	room   *model.Room
	rnd    random.Random
	clk    clock.Clock
	logger *slog.Logger

	secretWord  string
	category    string
	imposters   map[model.ConnectionID]struct{}
	votes       map[model.ConnectionID]model.ConnectionID
	chat        []ChatMessage
	turnOrder   []model.ConnectionID
	currentTurn model.ConnectionID
}

var _ games.Plugin = (*Game)(nil)

// New creates an uninitialised secret-word game for the room
func New(room *model.Room, rnd random.Random, clk clock.Clock, logger *slog.Logger) *Game {
	return &Game{
		room:      room,
		rnd:       rnd,
		clk:       clk,
		logger:    logger,
		imposters: make(map[model.ConnectionID]struct{}),
		votes:     make(map[model.ConnectionID]model.ConnectionID),
	}
}

func (g *Game) GameType() model.GameType {
	return model.GameTypeSecretWord
}

// Initialize picks the category and secret word and assigns one
// imposter among the room's current players
func (g *Game) Initialize(settings model.RoomSettings) error {
	g.Reset()

	category := settings.Category
	if !IsValidCategory(category) {
		category = categoryOrder[g.rnd.Intn(len(categoryOrder))]
	}
	words := categories[category].Words

	g.category = category
	g.secretWord = words[g.rnd.Intn(len(words))]

	ids := g.playerIDs()
	g.rnd.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	g.imposters[ids[0]] = struct{}{}

	g.logger.Info("secret-word game initialized",
		"room", g.room.Code,
		"category", category,
		"players", len(ids))
	return nil
}

// PlayerView returns the player's role. Only non-imposters learn the
// secret word.
func (g *Game) PlayerView(connID model.ConnectionID) any {
	_, isImposter := g.imposters[connID]
	view := RoleView{IsImposter: isImposter}
	if !isImposter {
		word := g.secretWord
		view.SecretWord = &word
	}
	return view
}

func (g *Game) HandleMessage(connID model.ConnectionID, msg *protocol.ClientMessage) (*model.WordScore, error) {
	switch msg.Type {
	case protocol.TypeSendChatMessage:
		return nil, g.handleChat(connID, msg.Message)
	case protocol.TypeVote:
		return nil, g.handleVote(connID, msg.VotedPlayerID)
	default:
		return nil, model.ErrUnknownMessageType
	}
}

func (g *Game) handleChat(connID model.ConnectionID, text string) error {
	if g.room.Phase != model.PhaseDiscussion {
		return model.ErrWrongPhase
	}
	if g.currentTurn != connID {
		return model.ErrNotYourTurn
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.ErrEmptyMessage
	}
	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return model.ErrMultipleWords
	}

	player := g.room.GetPlayer(connID)
	if player == nil {
		return model.ErrPlayerNotFound
	}

	g.chat = append(g.chat, ChatMessage{
		PlayerID:   connID,
		PlayerName: player.Name,
		Message:    trimmed,
		Timestamp:  g.clk.Now().UnixMilli(),
	})
	g.advanceTurn(connID)

	g.logger.Debug("chat message accepted",
		"room", g.room.Code,
		"player", player.Name,
		"word", trimmed)
	return nil
}

func (g *Game) advanceTurn(current model.ConnectionID) {
	for i, id := range g.turnOrder {
		if id == current {
			g.currentTurn = g.turnOrder[(i+1)%len(g.turnOrder)]
			return
		}
	}
}

func (g *Game) handleVote(connID model.ConnectionID, target model.ConnectionID) error {
	if g.room.Phase != model.PhaseVoting {
		return model.ErrWrongPhase
	}
	if g.room.GetPlayer(target) == nil {
		return model.ErrInvalidVoteTarget
	}
	if connID == target {
		return model.ErrSelfVote
	}

	g.votes[connID] = target
	return nil
}

// CanAdvancePhase gates the move to results on every player having
// voted; other transitions are always allowed
func (g *Game) CanAdvancePhase(next model.GamePhase) error {
	if next == model.PhaseResults && len(g.votes) < len(g.room.Players) {
		return model.ErrVotesOutstanding
	}
	return nil
}

// OnPhaseAdvanced sets up the randomized turn order when the
// discussion phase begins
func (g *Game) OnPhaseAdvanced(next model.GamePhase) {
	if next != model.PhaseDiscussion {
		return
	}

	ids := g.playerIDs()
	g.rnd.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	g.turnOrder = ids
	g.currentTurn = ids[0]
	g.chat = nil

	g.logger.Debug("discussion turns set up",
		"room", g.room.Code,
		"turnOrder", ids)
}

// OnPlayerRebound moves role, vote and turn state from a player's old
// connection ID to the new one after a reconnect
func (g *Game) OnPlayerRebound(oldID, newID model.ConnectionID) {
	if _, ok := g.imposters[oldID]; ok {
		delete(g.imposters, oldID)
		g.imposters[newID] = struct{}{}
	}
	if target, ok := g.votes[oldID]; ok {
		delete(g.votes, oldID)
		g.votes[newID] = target
	}
	for voter, target := range g.votes {
		if target == oldID {
			g.votes[voter] = newID
		}
	}
	for i, id := range g.turnOrder {
		if id == oldID {
			g.turnOrder[i] = newID
		}
	}
	if g.currentTurn == oldID {
		g.currentTurn = newID
	}
	for i := range g.chat {
		if g.chat[i].PlayerID == oldID {
			g.chat[i].PlayerID = newID
		}
	}
}

// SharedState hides the secret word, roles and ballot until results
func (g *Game) SharedState() any {
	state := SharedState{
		SelectedCategory: g.category,
		ChatMessages:     g.chat,
		CurrentTurnID:    g.currentTurn,
		TurnOrder:        g.turnOrder,
		VoteCount:        len(g.votes),
	}
	if state.ChatMessages == nil {
		state.ChatMessages = []ChatMessage{}
	}

	if g.room.Phase == model.PhaseResults {
		state.SecretWord = g.secretWord
		state.Votes = g.votes
		for id := range g.imposters {
			state.Imposters = append(state.Imposters, id)
		}
	}
	return state
}

func (g *Game) Reset() {
	g.secretWord = ""
	g.category = ""
	g.imposters = make(map[model.ConnectionID]struct{})
	g.votes = make(map[model.ConnectionID]model.ConnectionID)
	g.chat = nil
	g.turnOrder = nil
	g.currentTurn = ""
}

func (g *Game) playerIDs() []model.ConnectionID {
	ids := make([]model.ConnectionID, 0, len(g.room.Players))
	for _, p := range g.room.Players {
		ids = append(ids, p.ConnectionID)
	}
	return ids
}
