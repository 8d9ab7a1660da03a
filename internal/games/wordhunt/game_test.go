package wordhunt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/openroom/partygames-go/internal/dependencies/mocks"
	"github.com/openroom/partygames-go/internal/model"
	"github.com/openroom/partygames-go/internal/protocol"
	"github.com/openroom/partygames-go/internal/services/dictionary"
	"github.com/openroom/partygames-go/internal/storage/memory"
	"github.com/openroom/partygames-go/internal/testutil"
)

type WordHuntSuite struct {
	suite.Suite
	room      *model.Room
	game      *Game
	mockClock *mocks.MockClock
	mockRand  *mocks.MockRandom
	mockSched *mocks.MockScheduler
	expired   int
}

func TestWordHuntSuite(t *testing.T) {
	suite.Run(t, new(WordHuntSuite))
}

func (s *WordHuntSuite) SetupTest() {
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRand = mocks.NewMockRandom()
	s.mockSched = mocks.NewMockScheduler()
	s.expired = 0

	dict := dictionary.New(memory.New())
	s.Require().NoError(dict.LoadWords([]string{"cat", "cart", "taco", "acts"}))

	s.room = model.NewRoom("ABC123", "p1", model.GameTypeWordHunt, s.mockClock.Now())
	s.room.AddPlayer("p1", "Alice", "persist-1", s.mockClock.Now())
	s.room.AddPlayer("p2", "Bob", "persist-2", s.mockClock.Now())
	s.room.Phase = model.PhasePlaying

	s.game = New(s.room, s.mockRand, s.mockClock, s.mockSched, dict,
		0, func() { s.expired++ }, testutil.NopLogger())
	s.Require().NoError(s.game.Initialize(model.RoomSettings{}))

	// Tests need known letters; overwrite the generated board:
	//   C A T S
	//   X R X X
	//   X X X X
	//   X X X X
	s.game.board = []string{
		"C", "A", "T", "S",
		"X", "R", "X", "X",
		"X", "X", "X", "X",
		"X", "X", "X", "X",
	}
}

func (s *WordHuntSuite) startTimer() {
	_, err := s.game.HandleMessage("p1", &protocol.ClientMessage{Type: protocol.TypeStartGameTimer})
	s.Require().NoError(err)
}

func (s *WordHuntSuite) submit(connID model.ConnectionID, word string, path []int) (*model.WordScore, error) {
	return s.game.HandleMessage(connID, &protocol.ClientMessage{
		Type: protocol.TypeSubmitWord,
		Word: word,
		Path: path,
	})
}

func (s *WordHuntSuite) TestInitializeGeneratesBoardAndScores() {
	s.Len(s.game.board, BoardSize)
	s.Len(s.game.scores, 2)
	s.False(s.game.active)
}

func (s *WordHuntSuite) TestStartTimerHostOnly() {
	_, err := s.game.HandleMessage("p2", &protocol.ClientMessage{Type: protocol.TypeStartGameTimer})
	s.ErrorIs(err, model.ErrNotHost)

	s.startTimer()
	s.True(s.game.active)
	s.Equal(1, s.mockSched.Pending())

	_, err = s.game.HandleMessage("p1", &protocol.ClientMessage{Type: protocol.TypeStartGameTimer})
	s.ErrorIs(err, model.ErrGameActive)
}

func (s *WordHuntSuite) TestSubmitWordBeforeStartRejected() {
	_, err := s.submit("p1", "cat", []int{0, 1, 2})
	s.ErrorIs(err, model.ErrGameNotActive)
}

func (s *WordHuntSuite) TestSubmitWordScoresAndRecords() {
	s.startTimer()

	result, err := s.submit("p1", "cat", []int{0, 1, 2})
	s.Require().NoError(err)
	s.Equal("cat", result.Word)
	s.Equal(100, result.Points)

	result, err = s.submit("p1", "cart", []int{0, 1, 5, 2})
	s.Require().NoError(err)
	s.Equal(400, result.Points)

	s.Equal(500, s.game.scores["p1"].Score)
	s.Equal([]string{"cat", "cart"}, s.game.scores["p1"].FoundWords)
}

func (s *WordHuntSuite) TestSubmitWordValidation() {
	s.startTimer()

	_, err := s.submit("p1", "at", []int{1, 2})
	s.ErrorIs(err, model.ErrWordTooShort)

	// Path length mismatch
	_, err = s.submit("p1", "cat", []int{0, 1})
	s.ErrorIs(err, model.ErrInvalidWordPath)

	// Path does not spell the word
	_, err = s.submit("p1", "cat", []int{0, 1, 3})
	s.ErrorIs(err, model.ErrInvalidWordPath)

	// Non-adjacent step
	_, err = s.submit("p1", "cts", []int{0, 2, 3})
	s.ErrorIs(err, model.ErrInvalidWordPath)

	// Valid trace but not a dictionary word
	_, err = s.submit("p1", "cats", []int{0, 1, 2, 3})
	s.ErrorIs(err, model.ErrWordNotInDictionary)
}

func (s *WordHuntSuite) TestDuplicateWordRejectedPerPlayer() {
	s.startTimer()

	_, err := s.submit("p1", "cat", []int{0, 1, 2})
	s.Require().NoError(err)

	_, err = s.submit("p1", "CAT", []int{0, 1, 2})
	s.ErrorIs(err, model.ErrWordAlreadyFound)

	// Another player may still find the same word
	_, err = s.submit("p2", "cat", []int{0, 1, 2})
	s.NoError(err)
}

func (s *WordHuntSuite) TestScoreStepFunction() {
	s.Equal(100, Score(3))
	s.Equal(400, Score(4))
	s.Equal(800, Score(5))
	s.Equal(1400, Score(6))
	s.Equal(1800, Score(7))
	s.Equal(2000, Score(8))
	s.Equal(2400, Score(9))
	s.Equal(2800, Score(10))
}

func (s *WordHuntSuite) TestCountdownExpiryEndsRound() {
	s.startTimer()

	s.mockClock.Advance(DefaultRoundDuration)
	s.mockSched.FireAll()
	s.Equal(1, s.expired)

	// The coordinator routes the expiry back through ExpireCountdown
	s.True(s.game.ExpireCountdown())
	s.False(s.game.active)

	// A second expiry for the same round is stale
	s.False(s.game.ExpireCountdown())

	_, err := s.submit("p1", "cat", []int{0, 1, 2})
	s.ErrorIs(err, model.ErrGameNotActive)
}

func (s *WordHuntSuite) TestForcedResultsCancelsCountdown() {
	s.startTimer()
	s.Require().Equal(1, s.mockSched.Pending())

	s.room.Phase = model.PhaseResults
	s.game.OnPhaseAdvanced(model.PhaseResults)

	s.False(s.game.active)
	s.Equal(0, s.mockSched.Pending())
}

func (s *WordHuntSuite) TestTimeRemaining() {
	state := s.game.SharedState().(SharedState)
	s.Equal(0, state.TimeRemaining)
	s.False(state.IsGameActive)

	s.startTimer()
	s.mockClock.Advance(30 * time.Second)

	state = s.game.SharedState().(SharedState)
	s.Equal(50, state.TimeRemaining)
	s.True(state.IsGameActive)
	s.Equal(80, state.GameDuration)

	s.mockClock.Advance(2 * DefaultRoundDuration)
	state = s.game.SharedState().(SharedState)
	s.Equal(0, state.TimeRemaining)
}

func (s *WordHuntSuite) TestSharedStateWithholdsWordsUntilResults() {
	s.startTimer()
	_, err := s.submit("p1", "cat", []int{0, 1, 2})
	s.Require().NoError(err)

	state := s.game.SharedState().(SharedState)
	row := state.AllPlayerScores["p1"]
	s.Equal(100, row.Score)
	s.Equal(1, row.WordCount)
	s.Empty(row.FoundWords)

	s.room.Phase = model.PhaseResults
	state = s.game.SharedState().(SharedState)
	s.Equal([]string{"cat"}, state.AllPlayerScores["p1"].FoundWords)
}

func (s *WordHuntSuite) TestPlayerViewIncludesOwnWords() {
	s.startTimer()
	_, err := s.submit("p1", "cat", []int{0, 1, 2})
	s.Require().NoError(err)

	view := s.game.PlayerView("p1").(PlayerView)
	s.Equal(100, view.PlayerScore)
	s.Equal([]string{"cat"}, view.PlayerFoundWords)

	other := s.game.PlayerView("p2").(PlayerView)
	s.Equal(0, other.PlayerScore)
	s.Empty(other.PlayerFoundWords)
}

func (s *WordHuntSuite) TestMidGameJoinerStartsFromZero() {
	s.startTimer()
	s.room.AddPlayer("p3", "Carol", "persist-3", s.mockClock.Now())

	result, err := s.submit("p3", "cat", []int{0, 1, 2})
	s.Require().NoError(err)
	s.Equal(100, result.Points)
	s.Equal(100, s.game.scores["p3"].Score)
}

func (s *WordHuntSuite) TestReboundCarriesScore() {
	s.startTimer()
	_, err := s.submit("p2", "cat", []int{0, 1, 2})
	s.Require().NoError(err)

	s.game.OnPlayerRebound("p2", "p2-new")

	s.NotContains(s.game.scores, model.ConnectionID("p2"))
	s.Equal(100, s.game.scores["p2-new"].Score)

	// The duplicate check follows the player
	_, err = s.submit("p2-new", "cat", []int{0, 1, 2})
	s.ErrorIs(err, model.ErrWordAlreadyFound)
}

func (s *WordHuntSuite) TestValidatePath() {
	board := []string{
		"C", "A", "T", "S",
		"X", "R", "X", "X",
		"X", "X", "X", "X",
		"X", "X", "X", "X",
	}

	s.True(ValidatePath(board, "cat", []int{0, 1, 2}))
	s.True(ValidatePath(board, "car", []int{0, 1, 5}))
	// Diagonal steps are legal
	s.True(ValidatePath(board, "rat", []int{5, 1, 2}))

	// Tile reuse
	s.False(ValidatePath(board, "aca", []int{1, 0, 1}))
	// Out of bounds
	s.False(ValidatePath(board, "cat", []int{0, 1, 16}))
	s.False(ValidatePath(board, "cat", []int{-1, 1, 2}))
	// Case-insensitive letter match
	s.True(ValidatePath(board, "CAT", []int{0, 1, 2}))
}

func (s *WordHuntSuite) TestResetCancelsCountdown() {
	s.startTimer()
	s.Require().Equal(1, s.mockSched.Pending())

	s.game.Reset()
	s.Equal(0, s.mockSched.Pending())
	s.False(s.game.active)
	s.Nil(s.game.board)
}
