package wordhunt

import (
	"log/slog"
	"strings"
	"time"

	"github.com/openroom/partygames-go/internal/dependencies/clock"
	"github.com/openroom/partygames-go/internal/dependencies/random"
	"github.com/openroom/partygames-go/internal/dependencies/scheduler"
	"github.com/openroom/partygames-go/internal/games"
	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/protocol"
	"github.com/openroom/partygames-go/internal/services/dictionary"
)

// DefaultRoundDuration is how long a round runs once the host starts
// the countdown
const DefaultRoundDuration = 80 * time.Second

type playerScore struct {
	Score      int
	FoundWords []string
}

// PlayerScore is one player's row in the broadcast scoreboard. Found
// words are withheld until the results phase so opponents cannot
// copy them mid-round.
type PlayerScore struct {
	PlayerName string   `json:"playerName"`
	Score      int      `json:"score"`
	WordCount  int      `json:"wordCount"`
	FoundWords []string `json:"foundWords,omitempty"`
}

// SharedState is the broadcast projection of a round
type SharedState struct {
	Board           []string                           `json:"board"`
	TimeRemaining   int                                `json:"timeRemaining"`
	GameStartTime   int64                              `json:"gameStartTime,omitempty"`
	GameDuration    int                                `json:"gameDuration"`
	IsGameActive    bool                               `json:"isGameActive"`
	AllPlayerScores map[model.ConnectionID]PlayerScore `json:"allPlayerScores"`
}

// PlayerView extends the shared state with the player's own score and
// full word list
type PlayerView struct {
	SharedState
	PlayerScore      int      `json:"playerScore"`
	PlayerFoundWords []string `json:"playerFoundWords"`
}

// Game implements the word-hunt rules: a shared 4x4 letter grid, a
// host-started countdown, and per-player word submissions validated
// against the board and the dictionary.
type Game struct {
	room     *model.Room
	rnd      random.Random
	clk      clock.Clock
	sched    scheduler.Scheduler
	dict     dictionary.ServiceInterface
	duration time.Duration
	onExpire func()
	logger   *slog.Logger

	board     []string
	scores    map[model.ConnectionID]*playerScore
	startedAt time.Time
	active    bool
	countdown scheduler.Handle
}

var (
	_ games.Plugin  = (*Game)(nil)
	_ games.Expirer = (*Game)(nil)
)

// New creates an uninitialised word-hunt game. onExpire is invoked
// from a timer goroutine when the countdown runs out; the caller is
// expected to re-enter through ExpireCountdown under its own lock.
func New(
	room *model.Room,
	rnd random.Random,
	clk clock.Clock,
	sched scheduler.Scheduler,
	dict dictionary.ServiceInterface,
	duration time.Duration,
	onExpire func(),
	logger *slog.Logger,
) *Game {
	if duration <= 0 {
		duration = DefaultRoundDuration
	}
	return &Game{
		room:     room,
		rnd:      rnd,
		clk:      clk,
		sched:    sched,
		dict:     dict,
		duration: duration,
		onExpire: onExpire,
		logger:   logger,
		scores:   make(map[model.ConnectionID]*playerScore),
	}
}

func (g *Game) GameType() model.GameType {
	return model.GameTypeWordHunt
}

// Initialize generates a fresh board and zeroes every current
// player's score. The countdown does not start until the host sends
// startGameTimer.
func (g *Game) Initialize(settings model.RoomSettings) error {
	g.Reset()

	g.board = GenerateBoard(g.rnd)
	for _, p := range g.room.Players {
		g.scores[p.ConnectionID] = &playerScore{FoundWords: []string{}}
	}

	g.logger.Info("word-hunt game initialized",
		"room", g.room.Code,
		"players", len(g.scores))
	return nil
}

func (g *Game) HandleMessage(connID model.ConnectionID, msg *protocol.ClientMessage) (*model.WordScore, error) {
	switch msg.Type {
	case protocol.TypeStartGameTimer:
		return nil, g.handleStartTimer(connID)
	case protocol.TypeSubmitWord:
		return g.handleSubmitWord(connID, msg.Word, msg.Path)
	default:
		return nil, model.ErrUnknownMessageType
	}
}

func (g *Game) handleStartTimer(connID model.ConnectionID) error {
	if !g.room.IsHost(connID) {
		return model.ErrNotHost
	}
	if g.active {
		return model.ErrGameActive
	}

	g.startedAt = g.clk.Now()
	g.active = true
	g.countdown = g.sched.After(g.duration, g.onExpire)

	g.logger.Info("word-hunt countdown started",
		"room", g.room.Code,
		"duration", g.duration)
	return nil
}

func (g *Game) handleSubmitWord(connID model.ConnectionID, word string, path []int) (*model.WordScore, error) {
	if !g.active {
		return nil, model.ErrGameNotActive
	}
	if len(word) < dictionary.MinWordLength {
		return nil, model.ErrWordTooShort
	}
	if !ValidatePath(g.board, word, path) {
		return nil, model.ErrInvalidWordPath
	}

	lower := strings.ToLower(word)
	score, ok := g.scores[connID]
	if !ok {
		// Joined mid-game; start them from zero
		score = &playerScore{FoundWords: []string{}}
		g.scores[connID] = score
	}
	for _, found := range score.FoundWords {
		if found == lower {
			return nil, model.ErrWordAlreadyFound
		}
	}
	if !g.dict.IsValidWord(lower) {
		return nil, model.ErrWordNotInDictionary
	}

	points := Score(len(word))
	score.FoundWords = append(score.FoundWords, lower)
	score.Score += points

	g.logger.Debug("word accepted",
		"room", g.room.Code,
		"player", connID,
		"word", lower,
		"points", points)
	return &model.WordScore{Word: lower, Points: points}, nil
}

// ExpireCountdown ends the round when the countdown fires. A false
// return means the round had already ended, so the caller should
// ignore the expiry.
func (g *Game) ExpireCountdown() bool {
	if !g.active {
		return false
	}
	g.endRound()
	return true
}

func (g *Game) endRound() {
	g.active = false
	if g.countdown != nil {
		g.countdown.Cancel()
		g.countdown = nil
	}
	g.logger.Info("word-hunt round ended", "room", g.room.Code)
}

// CanAdvancePhase permits any transition; advancing to results early
// simply cuts the round short
func (g *Game) CanAdvancePhase(next model.GamePhase) error {
	return nil
}

// OnPhaseAdvanced ends the round when the host forces results before
// the countdown fires
func (g *Game) OnPhaseAdvanced(next model.GamePhase) {
	if next == model.PhaseResults && g.active {
		g.endRound()
	}
}

// OnPlayerRebound carries a player's score to their new connection ID
// after a reconnect
func (g *Game) OnPlayerRebound(oldID, newID model.ConnectionID) {
	if score, ok := g.scores[oldID]; ok {
		delete(g.scores, oldID)
		g.scores[newID] = score
	}
}

// SharedState includes live scores and word counts; the words
// themselves are revealed only at results
func (g *Game) SharedState() any {
	return g.sharedState()
}

func (g *Game) sharedState() SharedState {
	state := SharedState{
		Board:           g.board,
		TimeRemaining:   g.timeRemaining(),
		GameDuration:    int(g.duration / time.Second),
		IsGameActive:    g.active,
		AllPlayerScores: make(map[model.ConnectionID]PlayerScore, len(g.room.Players)),
	}
	if !g.startedAt.IsZero() {
		state.GameStartTime = g.startedAt.UnixMilli()
	}

	reveal := g.room.Phase == model.PhaseResults
	for _, p := range g.room.Players {
		row := PlayerScore{PlayerName: p.Name}
		if score, ok := g.scores[p.ConnectionID]; ok {
			row.Score = score.Score
			row.WordCount = len(score.FoundWords)
			if reveal {
				row.FoundWords = score.FoundWords
			}
		}
		state.AllPlayerScores[p.ConnectionID] = row
	}
	return state
}

// PlayerView adds the caller's own score and full word list to the
// shared state
func (g *Game) PlayerView(connID model.ConnectionID) any {
	view := PlayerView{
		SharedState:      g.sharedState(),
		PlayerFoundWords: []string{},
	}
	if score, ok := g.scores[connID]; ok {
		view.PlayerScore = score.Score
		view.PlayerFoundWords = score.FoundWords
	}
	return view
}

func (g *Game) timeRemaining() int {
	if !g.active {
		return 0
	}
	elapsed := g.clk.Now().Sub(g.startedAt)
	remaining := g.duration - elapsed
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Second)
}

func (g *Game) Reset() {
	if g.countdown != nil {
		g.countdown.Cancel()
		g.countdown = nil
	}
	g.board = nil
	g.scores = make(map[model.ConnectionID]*playerScore)
	g.startedAt = time.Time{}
	g.active = false
}
