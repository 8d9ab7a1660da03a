package storage

import "context"

// Storage defines the interface for static game-data persistence.
// Live rooms and sessions are deliberately absent: they exist only in
// process memory, owned by the coordinator. Storage covers the word
// tables the game rules consume.
type Storage interface {
	// Dictionary operations
	SaveDictionaryWords(ctx context.Context, words []string) error
	GetDictionaryWords(ctx context.Context) ([]string, error)
}
