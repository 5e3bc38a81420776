package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/dice"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/clock"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/idgen"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
	dicesessionmock "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session/mock"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/testutils"
)

// scriptedRoller returns the queued results in order
type scriptedRoller struct {
	results [][]int
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	vals, err := r.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

func (r *scriptedRoller) RollN(count, _ int) ([]int, error) {
	if len(r.results) == 0 {
		return nil, errors.Internal("roller exhausted")
	}
	next := r.results[0]
	r.results = r.results[1:]
	if len(next) != count {
		return nil, errors.Newf(errors.CodeInternal, "scripted %d dice, asked for %d", len(next), count)
	}
	return next, nil
}

type DiceOrchestratorTestSuite struct {
	suite.Suite
	cleanup func()
	roller  *scriptedRoller
	repo    dicesession.Repository
	orch    dice.Service
	ctx     context.Context
	entity  *dnd5e.CharacterEntity
}

func (s *DiceOrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo

	s.roller = &scriptedRoller{}
	orch, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: repo,
		IDGenerator:     idgen.NewSequential("roll"),
		Roller:          s.roller,
	})
	s.Require().NoError(err)
	s.orch = orch
	s.ctx = context.Background()
	s.entity = (&dnd5e.Character{ID: "char_1"}).AsEntity()
}

func (s *DiceOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *DiceOrchestratorTestSuite) TestFourDSixDropsLowest() {
	s.roller.results = [][]int{
		{6, 1, 5, 4},
		{3, 3, 3, 3},
		{1, 1, 1, 2},
		{6, 6, 6, 6},
		{2, 5, 2, 4},
		{4, 3, 6, 1},
	}

	out, err := s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{Entity: s.entity})
	s.Require().NoError(err)

	s.Equal([]int{15, 9, 4, 18, 11, 13}, out.Scores)
	s.Equal([]int{6, 5, 4}, out.Rolls[0].Dice)
	s.Equal([]int{1}, out.Rolls[0].Dropped)
	s.Equal("roll_1", out.Rolls[0].RollID)
	s.Equal(dice.MethodStandard, out.Session.Method)
	s.Equal(dnd5e.EntityTypeCharacter, out.Session.EntityType)

	for _, r := range out.Rolls {
		s.Len(r.Dice, 3)
		s.Len(r.Dropped, 1)
		s.GreaterOrEqual(r.Total, 3)
		s.LessOrEqual(r.Total, 18)
	}

	stored, err := s.orch.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "char_1"})
	s.Require().NoError(err)
	s.Equal(out.Scores, stored.Session.Totals())
}

func (s *DiceOrchestratorTestSuite) TestThreeDSix() {
	for i := 0; i < 6; i++ {
		s.roller.results = append(s.roller.results, []int{1, 2, i + 1})
	}

	out, err := s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		Entity: s.entity,
		Method: dice.MethodClassic,
	})
	s.Require().NoError(err)
	s.Equal([]int{4, 5, 6, 7, 8, 9}, out.Scores)
	s.Empty(out.Rolls[0].Dropped)
}

func (s *DiceOrchestratorTestSuite) TestStandardArrayUsesNoDice() {
	out, err := s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		Entity: s.entity,
		Method: dice.MethodStandardArray,
	})
	s.Require().NoError(err)
	s.Equal([]int{15, 14, 13, 12, 10, 8}, out.Scores)
}

func (s *DiceOrchestratorTestSuite) TestRejectsBadInput() {
	_, err := s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		Entity: s.entity,
		Method: "point_buy",
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "method")
}

func (s *DiceOrchestratorTestSuite) TestRollerFailure() {
	s.roller.results = [][]int{{6, 6, 6, 6}}

	_, err := s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{Entity: s.entity})
	s.Error(err)
	s.Contains(err.Error(), "failed to roll ability score 2")
}

func (s *DiceOrchestratorTestSuite) TestClearRollSession() {
	_, err := s.orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		Entity: s.entity,
		Method: dice.MethodStandardArray,
	})
	s.Require().NoError(err)

	out, err := s.orch.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "char_1"})
	s.Require().NoError(err)
	s.Equal(6, out.RollsDeleted)

	_, err = s.orch.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func (s *DiceOrchestratorTestSuite) TestAssignScores() {
	out, err := s.orch.AssignScores(s.ctx, &dice.AssignScoresInput{
		Scores:   []int{8, 10, 12, 13, 14, 15},
		Priority: []dnd5e.Ability{dnd5e.AbilityDexterity, dnd5e.AbilityConstitution},
	})
	s.Require().NoError(err)

	s.Equal(15, out.AbilityScores[dnd5e.AbilityDexterity])
	s.Equal(14, out.AbilityScores[dnd5e.AbilityConstitution])
	s.Equal(13, out.AbilityScores[dnd5e.AbilityStrength])
	s.Equal(12, out.AbilityScores[dnd5e.AbilityIntelligence])
	s.Equal(10, out.AbilityScores[dnd5e.AbilityWisdom])
	s.Equal(8, out.AbilityScores[dnd5e.AbilityCharisma])

	_, err = s.orch.AssignScores(s.ctx, &dice.AssignScoresInput{Scores: []int{10}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceOrchestratorTestSuite) TestRepositoryFailure() {
	ctrl := gomock.NewController(s.T())
	mockRepo := dicesessionmock.NewMockRepository(ctrl)
	orch, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: mockRepo,
		IDGenerator:     idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)

	mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err = orch.RollAbilityScores(s.ctx, &dice.RollAbilityScoresInput{
		Entity: s.entity,
		Method: dice.MethodStandardArray,
	})
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func TestDiceOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(DiceOrchestratorTestSuite))
}
