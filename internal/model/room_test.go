package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RoomSuite struct {
	suite.Suite
	now  time.Time
	room *Room
}

func TestRoomSuite(t *testing.T) {
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) SetupTest() {
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.room = NewRoom("ABC123", "host-conn", GameTypeSecretWord, s.now)
}

func (s *RoomSuite) TestCreatorBecomesHost() {
	p := s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.True(p.IsHost)
	s.True(s.room.IsHost("host-conn"))

	other := s.room.AddPlayer("other-conn", "Bob", "persist-2", s.now)
	s.False(other.IsHost)
}

func (s *RoomSuite) TestRemoveHostPromotesEarliestPlayer() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.room.AddPlayer("c2", "Bob", "persist-2", s.now)
	s.room.AddPlayer("c3", "Carol", "persist-3", s.now)

	s.room.RemovePlayer("host-conn")

	s.True(s.room.IsHost("c2"))
	s.True(s.room.GetPlayer("c2").IsHost)
	s.False(s.room.GetPlayer("c3").IsHost)
	s.Len(s.room.Players, 2)
}

func (s *RoomSuite) TestRemoveLastPlayerEmptiesRoom() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.room.RemovePlayer("host-conn")
	s.True(s.room.IsEmpty())
}

func (s *RoomSuite) TestDisconnectKeepsSeat() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)

	later := s.now.Add(time.Minute)
	s.room.DisconnectPlayer("host-conn", later)

	p := s.room.GetPlayer("host-conn")
	s.Require().NotNil(p)
	s.False(p.IsConnected)
	s.Equal(later, p.DisconnectedAt)
	s.Len(s.room.Players, 1)
}

func (s *RoomSuite) TestReconnectRebindsConnection() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.room.AddPlayer("c2", "Bob", "persist-2", s.now)
	s.room.DisconnectPlayer("c2", s.now)

	later := s.now.Add(10 * time.Second)
	s.True(s.room.ReconnectPlayer("c2-new", "persist-2", later))

	s.Nil(s.room.GetPlayer("c2"))
	p := s.room.GetPlayer("c2-new")
	s.Require().NotNil(p)
	s.True(p.IsConnected)
	s.Equal(later, p.ReconnectedAt)
	s.Equal("Bob", p.Name)
}

func (s *RoomSuite) TestReconnectTransfersHostDesignation() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.room.DisconnectPlayer("host-conn", s.now)

	s.True(s.room.ReconnectPlayer("new-conn", "persist-1", s.now))
	s.True(s.room.IsHost("new-conn"))
	s.False(s.room.IsHost("host-conn"))
}

func (s *RoomSuite) TestReconnectUnknownIdentityFails() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)

	s.False(s.room.ReconnectPlayer("new-conn", "persist-unknown", s.now))
	s.False(s.room.ReconnectPlayer("new-conn", "", s.now))
	s.NotNil(s.room.GetPlayer("host-conn"))
}

func (s *RoomSuite) TestFindByPersistentID() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.room.AddPlayer("c2", "Bob", "", s.now)

	s.NotNil(s.room.FindByPersistentID("persist-1"))
	s.Nil(s.room.FindByPersistentID("persist-9"))
	// Empty persistent identity never matches, even if a player has one
	s.Nil(s.room.FindByPersistentID(""))
}

func (s *RoomSuite) TestResetForNewGame() {
	s.room.AddPlayer("host-conn", "Alice", "persist-1", s.now)
	s.room.Phase = PhaseResults
	s.room.Settings.Category = "Food"

	s.room.ResetForNewGame()

	s.Equal(PhaseLobby, s.room.Phase)
	s.False(s.room.InGame())
	// Settings survive the reset so a rematch keeps the category
	s.Equal("Food", s.room.Settings.Category)
}

type GameTypeSuite struct {
	suite.Suite
}

func TestGameTypeSuite(t *testing.T) {
	suite.Run(t, new(GameTypeSuite))
}

func (s *GameTypeSuite) TestConfigFor() {
	cfg, ok := ConfigFor(GameTypeSecretWord)
	s.True(ok)
	s.Equal(3, cfg.MinPlayers)
	s.Equal(10, cfg.MaxPlayers)

	cfg, ok = ConfigFor(GameTypeWordHunt)
	s.True(ok)
	s.Equal(2, cfg.MinPlayers)
	s.Equal(8, cfg.MaxPlayers)

	_, ok = ConfigFor("checkers")
	s.False(ok)
	s.False(IsValidGameType("checkers"))
}

func (s *GameTypeSuite) TestPhaseIndexOrdering() {
	cfg, _ := ConfigFor(GameTypeSecretWord)

	s.Equal(0, cfg.PhaseIndex(PhaseLobby))
	s.Less(cfg.PhaseIndex(PhaseRoleReveal), cfg.PhaseIndex(PhaseDiscussion))
	s.Less(cfg.PhaseIndex(PhaseDiscussion), cfg.PhaseIndex(PhaseVoting))
	s.Less(cfg.PhaseIndex(PhaseVoting), cfg.PhaseIndex(PhaseResults))
	s.Equal(-1, cfg.PhaseIndex(PhasePlaying))
}

func (s *GameTypeSuite) TestFirstGamePhase() {
	cfg, _ := ConfigFor(GameTypeSecretWord)
	s.Equal(PhaseRoleReveal, cfg.FirstGamePhase())

	cfg, _ = ConfigFor(GameTypeWordHunt)
	s.Equal(PhasePlaying, cfg.FirstGamePhase())
}
