package factory

import (
	"time"

	"github.com/openroom/partygames-go/internal/coordinator"
	"github.com/openroom/partygames-go/internal/dependencies/mocks"
	"github.com/openroom/partygames-go/internal/storage/memory"
	"github.com/openroom/partygames-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockScheduler *mocks.MockScheduler
}

// NewTestApp creates an App configured for testing with mocked
// dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockScheduler := mocks.NewMockScheduler()

	app := newWithDependencies(store, mockClock, mockRandom, mockScheduler,
		coordinator.Config{}, testutil.NopLogger())

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockScheduler: mockScheduler,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"ace", "act", "add", "age", "ant", "arm", "art", "ash",
		"bat", "bee", "cab", "car", "cat", "cow", "dog", "ear",
		"eat", "egg", "fox", "hat", "ice", "jam", "key", "log",
		"map", "net", "owl", "pen", "rat", "sun", "tea", "web",
		"cart", "east", "nest", "rats", "star", "tars", "tsar",
	}
	return t.DictionaryService.LoadWords(words)
}
