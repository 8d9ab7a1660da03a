package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openroom/partygames-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"cat", "dog", "tree"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveDictionaryWordsOverwrites() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"old"})

	err := s.storage.SaveDictionaryWords(s.ctx, []string{"new", "words"})
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"new", "words"}, retrieved)
}

func (s *StorageSuite) TestSavedWordsAreCopied() {
	words := []string{"cat", "dog"}
	_ = s.storage.SaveDictionaryWords(s.ctx, words)

	words[0] = "mutated"

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"cat", "dog"}, retrieved)
}
