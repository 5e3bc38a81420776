package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/clock"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/testutils"
)

type DiceSessionRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	cleanup   func()
	clock     *clock.Fixed
	repo      dicesession.Repository
	ctx       context.Context
}

func (s *DiceSessionRepositoryTestSuite) SetupTest() {
	c, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: c,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *DiceSessionRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *DiceSessionRepositoryTestSuite) rolls() []dicesession.DiceRoll {
	return []dicesession.DiceRoll{
		{RollID: "roll_1", Notation: "4d6", Dice: []int{6, 5, 4}, Dropped: []int{1}, Total: 15},
		{RollID: "roll_2", Notation: "4d6", Dice: []int{3, 3, 2}, Dropped: []int{2}, Total: 8},
	}
}

func (s *DiceSessionRepositoryTestSuite) TestCreateAndGet() {
	out, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID:   "char_1",
		EntityType: "character",
		Context:    "ability_scores",
		Method:     "4d6_drop_lowest",
		Rolls:      s.rolls(),
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(dicesession.DefaultTTL), out.Session.ExpiresAt)

	s.True(s.miniRedis.Exists("dice_session:char_1:ability_scores"))
	s.Equal(dicesession.DefaultTTL, s.miniRedis.TTL("dice_session:char_1:ability_scores"))

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "ability_scores"})
	s.Require().NoError(err)
	s.Equal([]int{15, 8}, got.Session.Totals())
	s.Equal("character", got.Session.EntityType)
	s.Equal("4d6_drop_lowest", got.Session.Method)
}

func (s *DiceSessionRepositoryTestSuite) TestGetExpiredByClock() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "ability_scores",
		Rolls:    s.rolls(),
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "ability_scores"})
	s.True(errors.IsNotFound(err))
	s.False(s.miniRedis.Exists("dice_session:char_1:ability_scores"))
}

func (s *DiceSessionRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "ability_scores",
		Rolls:    s.rolls(),
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "char_1", Context: "ability_scores"})
	s.Require().NoError(err)
	s.Equal(2, out.RollsDeleted)

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "char_1", Context: "ability_scores"})
	s.Require().NoError(err)
	s.Equal(0, out.RollsDeleted)
}

func (s *DiceSessionRepositoryTestSuite) TestCorruptSession() {
	key := "dice_session:char_1:ability_scores"
	s.Require().NoError(s.miniRedis.Set(key, "[1,2"))

	_, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "ability_scores"})
	s.True(errors.IsDataLoss(err))
	id, ok := errors.CorruptRecordID(err)
	s.True(ok)
	s.Equal(key, id)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "char_1", Context: "ability_scores"})
	s.Require().NoError(err)
	s.Equal(0, out.RollsDeleted)
	s.False(s.miniRedis.Exists(key))
}

func (s *DiceSessionRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{Context: "ability_scores"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = dicesession.NewRedisRepository(&dicesession.Config{})
	s.Error(err)
}

func TestDiceSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DiceSessionRepositoryTestSuite))
}
