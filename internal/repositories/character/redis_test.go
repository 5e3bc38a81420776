package character_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/clock"
	redisclient "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/redis"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/character"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/testutils"
)

const (
	testPlayerID  = "player_456"
	testCharKey   = "character:char-test-001"
	testPlayerKey = "character:player:player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	clock     *clock.Fixed
	repo      character.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.miniRedis, s.cleanup = testutils.CreateTestRedisServer(s.T())
	s.clock = clock.NewFixed(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := character.NewRedis(&character.RedisConfig{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("stores the record and indexes it by player", func() {
		fighter := testutils.CreateTestCharacter(testPlayerID)

		out, err := s.repo.Create(s.ctx, character.CreateInput{Character: fighter})
		s.Require().NoError(err)
		s.Equal(s.clock.Now().Unix(), out.Character.CreatedAt)
		s.Equal(s.clock.Now().Unix(), out.Character.UpdatedAt)

		s.True(s.miniRedis.Exists(testCharKey))
		members, err := s.miniRedis.SMembers(testPlayerKey)
		s.Require().NoError(err)
		s.Equal([]string{fighter.ID}, members)
	})

	s.Run("rejects a duplicate id", func() {
		fighter := testutils.CreateTestCharacter(testPlayerID)

		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: fighter})
		s.Error(err)
		s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
		s.Contains(err.Error(), "already exists")
	})

	s.Run("rejects nil and empty ids", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &dnd5e.Character{}})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "character ID cannot be empty")
	})
}

func (s *RedisRepositoryTestSuite) TestGetRoundTripsThroughNormalizer() {
	fighter := testutils.CreateTestCharacter(testPlayerID)
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: fighter})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: fighter.ID})
	s.Require().NoError(err)

	normalized := engine.Normalize(out.Record)
	s.Equal(created.Character, normalized)
}

func (s *RedisRepositoryTestSuite) TestGetLooseRecord() {
	s.Require().NoError(s.miniRedis.Set("character:legacy", `{
		"name": "Old Timer",
		"level": "7",
		"ability_scores": {"str": 18, "dexterity": "14", "con": null},
		"hp": {"max": 50.9}
	}`))

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "legacy"})
	s.Require().NoError(err)
	s.Equal("legacy", out.Record.ID)

	normalized := engine.Normalize(out.Record)
	s.Equal(7, normalized.Level)
	s.Equal(18, normalized.AbilityScores[dnd5e.AbilityStrength])
	s.Equal(14, normalized.AbilityScores[dnd5e.AbilityDexterity])
	s.Equal(10, normalized.AbilityScores[dnd5e.AbilityConstitution])
	s.Equal(50, normalized.HitPoints.Max)
	s.Equal(50, normalized.HitPoints.Current)
}

func (s *RedisRepositoryTestSuite) TestGetErrors() {
	s.Run("not found", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("corrupt record", func() {
		s.Require().NoError(s.miniRedis.Set("character:broken", "{not json"))
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: "broken"})
		s.Error(err)
		s.Equal(errors.CodeDataLoss, errors.GetCode(err))
		id, ok := errors.CorruptRecordID(err)
		s.True(ok)
		s.Equal("broken", id)
		s.Equal("character", errors.GetMeta(err)[errors.MetaRecordKind])
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	fighter := testutils.CreateTestCharacter(testPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: fighter})
	s.Require().NoError(err)

	s.Run("keeps created_at and moves the player index", func() {
		s.clock.Advance(time.Hour)

		changed := fighter.Clone()
		changed.Level = 6
		changed.PlayerID = "player_new"

		out, err := s.repo.Update(s.ctx, character.UpdateInput{Character: changed})
		s.Require().NoError(err)
		s.Equal(s.clock.Now().Add(-time.Hour).Unix(), out.Character.CreatedAt)
		s.Equal(s.clock.Now().Unix(), out.Character.UpdatedAt)

		oldMembers, _ := s.miniRedis.SMembers(testPlayerKey)
		s.Empty(oldMembers)
		newMembers, err := s.miniRedis.SMembers("character:player:player_new")
		s.Require().NoError(err)
		s.Equal([]string{fighter.ID}, newMembers)

		raw, err := s.miniRedis.Get(testCharKey)
		s.Require().NoError(err)
		var stored map[string]interface{}
		s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
		s.Equal(float64(6), stored["level"])
	})

	s.Run("not found", func() {
		ghost := &dnd5e.Character{ID: "ghost"}
		_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: ghost})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	fighter := testutils.CreateTestCharacter(testPlayerID)
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: fighter})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: fighter.ID})
	s.Require().NoError(err)

	s.False(s.miniRedis.Exists(testCharKey))
	members, _ := s.miniRedis.SMembers(testPlayerKey)
	s.Empty(members)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: fighter.ID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	fighter := testutils.CreateTestCharacter(testPlayerID)
	rogue := testutils.CreateTestRogue(testPlayerID)
	other := testutils.CreateTestRogue("player_other")
	other.ID = "char-test-003"

	for _, c := range []*dnd5e.Character{fighter, rogue, other} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	s.Run("returns only the player's records", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Len(out.Records, 2)

		names := make(map[string]bool)
		for _, r := range out.Records {
			names[r.Name] = true
			s.Equal(testPlayerID, r.PlayerID)
		}
		s.True(names[fighter.Name])
		s.True(names[rogue.Name])
	})

	s.Run("cleans stale index entries", func() {
		s.miniRedis.Del("character:" + rogue.ID)

		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Len(out.Records, 1)

		members, _ := s.miniRedis.SMembers(testPlayerKey)
		s.Equal([]string{fighter.ID}, members)
	})

	s.Run("empty player id", func() {
		_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "player ID cannot be empty")
	})

	s.Run("unknown player", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "nobody"})
		s.Require().NoError(err)
		s.Empty(out.Records)
	})
}

func (s *RedisRepositoryTestSuite) TestListIDs() {
	fighter := testutils.CreateTestCharacter(testPlayerID)
	rogue := testutils.CreateTestRogue(testPlayerID)
	for _, c := range []*dnd5e.Character{rogue, fighter} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.miniRedis.Set("character:char-broken", "{not json"))
	s.Require().NoError(s.miniRedis.Set("session:other", "x"))

	out, err := s.repo.ListIDs(s.ctx, character.ListIDsInput{})
	s.Require().NoError(err)

	// the player index shares the key prefix but is not a character
	s.Equal([]string{"char-broken", fighter.ID, rogue.ID}, out.IDs)
}

func (s *RedisRepositoryTestSuite) TestDeleteCorruptRecord() {
	s.Require().NoError(s.miniRedis.Set("character:char-broken", "{not json"))

	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-broken"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-broken"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("character:char-broken"))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
