package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/handlers/statistics/v1alpha1"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/dice"
	dicemock "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/dice/mock"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/services/character"
	charactermock "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/services/character/mock"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	mockDice      *dicemock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockCharacter,
		DiceService:      s.mockDice,
	})
	s.Require().NoError(err)
	s.handler = handler
	s.ctx = context.Background()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	msg, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return msg
}

// fighterView runs the real engine so responses carry realistic numbers
func (s *HandlerTestSuite) fighterView() character.CharacterView {
	char := testutils.CreateTestCharacter("player_1")
	return character.CharacterView{
		Character:  char,
		Statistics: engine.Compute(char, catalog.Builtin()),
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
	s.Contains(err.Error(), "CharacterService")
	s.Contains(err.Error(), "DiceService")
}

func (s *HandlerTestSuite) TestComputeStatistics() {
	s.mockCharacter.EXPECT().
		ComputeStatistics(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.ComputeStatisticsInput) (*character.ComputeStatisticsOutput, error) {
			s.Equal("7", input.Record.Level)
			s.Equal(float64(16), input.Record.AbilityScores["strength"])
			s.Equal("chain-mail", input.Record.Armor.Type)
			return &character.ComputeStatisticsOutput{CharacterView: s.fighterView()}, nil
		})

	resp, err := s.handler.ComputeStatistics(s.ctx, s.request(map[string]interface{}{
		"character": map[string]interface{}{
			"level":          "7",
			"class":          "fighter",
			"ability_scores": map[string]interface{}{"strength": 16},
			"armor":          map[string]interface{}{"type": "chain-mail", "shield": true},
		},
	}))
	s.Require().NoError(err)

	stats := resp.GetFields()["statistics"].GetStructValue().GetFields()
	s.Equal(float64(18), stats["armor_class"].GetNumberValue())
	s.Equal(float64(44), stats["max_hp"].GetNumberValue())
	s.Equal(float64(14), stats["passive_perception"].GetNumberValue())
	s.Contains(stats["armor_class_breakdown"].GetStringValue(), "shield")

	char := resp.GetFields()["character"].GetStructValue().GetFields()
	s.Equal(testutils.TestCharacterName, char["name"].GetStringValue())
}

func (s *HandlerTestSuite) TestComputeStatisticsMalformedRequest() {
	_, err := s.handler.ComputeStatistics(s.ctx, s.request(map[string]interface{}{
		"character": "not an object",
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetCharacterStatistics() {
	s.mockCharacter.EXPECT().
		GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char-test-001"}).
		Return(&character.GetCharacterOutput{CharacterView: s.fighterView()}, nil)

	resp, err := s.handler.GetCharacterStatistics(s.ctx, s.request(map[string]interface{}{
		"character_id": "char-test-001",
	}))
	s.Require().NoError(err)
	s.Equal("char-test-001",
		resp.GetFields()["character"].GetStructValue().GetFields()["id"].GetStringValue())
}

func (s *HandlerTestSuite) TestGetCharacterStatisticsErrors() {
	_, err := s.handler.GetCharacterStatistics(s.ctx, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	s.mockCharacter.EXPECT().
		GetCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("character not found").WithMeta("character_id", "char_9"))

	_, err = s.handler.GetCharacterStatistics(s.ctx, s.request(map[string]interface{}{
		"character_id": "char_9",
	}))
	s.Equal(codes.NotFound, status.Code(err))

	back := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(back))
}

func (s *HandlerTestSuite) TestSaveCharacter() {
	s.mockCharacter.EXPECT().
		SaveCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.SaveCharacterInput) (*character.SaveCharacterOutput, error) {
			s.Equal("Thorin", input.Record.Name)
			return &character.SaveCharacterOutput{CharacterView: s.fighterView(), Created: true}, nil
		})

	resp, err := s.handler.SaveCharacter(s.ctx, s.request(map[string]interface{}{
		"character": map[string]interface{}{"name": "Thorin"},
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["created"].GetBoolValue())

	_, err = s.handler.SaveCharacter(s.ctx, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListAndDeleteCharacters() {
	view := s.fighterView()
	s.mockCharacter.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: "player_1"}).
		Return(&character.ListCharactersOutput{Characters: []*character.CharacterView{&view}}, nil)
	s.mockCharacter.EXPECT().
		DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "char-test-001"}).
		Return(&character.DeleteCharacterOutput{Message: "character char-test-001 deleted"}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, s.request(map[string]interface{}{"player_id": "player_1"}))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["characters"].GetListValue().GetValues(), 1)

	resp, err = s.handler.DeleteCharacter(s.ctx, s.request(map[string]interface{}{"character_id": "char-test-001"}))
	s.Require().NoError(err)
	s.Equal("character char-test-001 deleted", resp.GetFields()["message"].GetStringValue())
}

func (s *HandlerTestSuite) TestUpdateSkillProficiency() {
	s.mockCharacter.EXPECT().
		UpdateSkillProficiency(s.ctx, &character.UpdateSkillProficiencyInput{
			CharacterID: "char-test-001",
			Skill:       dnd5e.SkillPerception,
			Action:      character.SkillActionToggleExpertise,
		}).
		Return(&character.UpdateSkillProficiencyOutput{
			CharacterView: s.fighterView(),
			State:         dnd5e.ProficiencyExpertise,
		}, nil)

	resp, err := s.handler.UpdateSkillProficiency(s.ctx, s.request(map[string]interface{}{
		"character_id": "char-test-001",
		"skill":        "perception",
		"action":       "toggle_expertise",
	}))
	s.Require().NoError(err)
	s.Equal("expertise", resp.GetFields()["skill_state"].GetStringValue())
}

func (s *HandlerTestSuite) TestApplyHitPointChangeValidationError() {
	s.mockCharacter.EXPECT().
		ApplyHitPointChange(s.ctx, gomock.Any()).
		Return(nil, errors.NewValidationBuilder().InvalidField("amount", "must not be negative").Build())

	_, err := s.handler.ApplyHitPointChange(s.ctx, s.request(map[string]interface{}{
		"character_id": "char-test-001",
		"kind":         "damage",
		"amount":       -4,
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "amount")
}

func (s *HandlerTestSuite) TestRollAbilityScores() {
	expires := time.Date(2025, 3, 1, 12, 15, 0, 0, time.UTC)
	s.mockDice.EXPECT().
		RollAbilityScores(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *dice.RollAbilityScoresInput) (*dice.RollAbilityScoresOutput, error) {
			s.Equal("char_1", input.Entity.GetID())
			s.Equal(dnd5e.EntityTypeCharacter, input.Entity.GetType())
			s.Equal(dice.MethodClassic, input.Method)
			s.Equal(5*time.Minute, input.TTL)
			session := &dicesession.DiceSession{
				EntityID:  "char_1",
				Method:    dice.MethodClassic,
				Rolls:     []dicesession.DiceRoll{{RollID: "roll_1", Notation: "3d6", Dice: []int{6, 5, 1}, Total: 12}},
				ExpiresAt: expires,
			}
			return &dice.RollAbilityScoresOutput{Rolls: session.Rolls, Scores: session.Totals(), Session: session}, nil
		})

	resp, err := s.handler.RollAbilityScores(s.ctx, s.request(map[string]interface{}{
		"entity_id":   "char_1",
		"method":      "3d6",
		"ttl_seconds": 300,
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal(float64(expires.Unix()), fields["expires_at"].GetNumberValue())
	scores := fields["scores"].GetListValue().GetValues()
	s.Require().Len(scores, 1)
	s.Equal(float64(12), scores[0].GetNumberValue())
}

func (s *HandlerTestSuite) TestRollAbilityScoresValidation() {
	_, err := s.handler.RollAbilityScores(s.ctx, s.request(map[string]interface{}{
		"ttl_seconds": 90000,
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	back := errors.FromGRPCError(err)
	fields := errors.ValidationFields(back)
	s.Equal([]string{"is required"}, fields["entity_id"])
	s.Equal([]string{"must be between 0 and 86400"}, fields["ttl_seconds"])
}

func (s *HandlerTestSuite) TestRollSessionLifecycle() {
	s.mockDice.EXPECT().
		GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "char_1"}).
		Return(nil, errors.NotFound("dice session not found"))
	s.mockDice.EXPECT().
		ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "char_1"}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: 6}, nil)

	_, err := s.handler.GetRollSession(s.ctx, s.request(map[string]interface{}{"entity_id": "char_1"}))
	s.Equal(codes.NotFound, status.Code(err))

	resp, err := s.handler.ClearRollSession(s.ctx, s.request(map[string]interface{}{"entity_id": "char_1"}))
	s.Require().NoError(err)
	s.Equal(float64(6), resp.GetFields()["rolls_deleted"].GetNumberValue())
}

func (s *HandlerTestSuite) TestAssignScores() {
	s.mockDice.EXPECT().
		AssignScores(s.ctx, &dice.AssignScoresInput{
			Scores:   []int{15, 14, 13, 12, 10, 8},
			Priority: []dnd5e.Ability{dnd5e.AbilityDexterity},
		}).
		Return(&dice.AssignScoresOutput{AbilityScores: dnd5e.AbilityScores{dnd5e.AbilityDexterity: 15}}, nil)

	resp, err := s.handler.AssignScores(s.ctx, s.request(map[string]interface{}{
		"scores":   []interface{}{15, 14, 13, 12, 10, 8},
		"priority": []interface{}{"DEX"},
	}))
	s.Require().NoError(err)
	s.Equal(float64(15),
		resp.GetFields()["ability_scores"].GetStructValue().GetFields()["dexterity"].GetNumberValue())

	_, err = s.handler.AssignScores(s.ctx, s.request(map[string]interface{}{
		"scores":   []interface{}{15, 14, 13, 12, 10, 8},
		"priority": []interface{}{"luck"},
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

// TestServiceOverGRPC exercises the service descriptor and client end to end
func (s *HandlerTestSuite) TestServiceOverGRPC() {
	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	v1alpha1.RegisterStatisticsServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(lis)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "char-test-001"}).
		Return(&character.GetCharacterOutput{CharacterView: s.fighterView()}, nil)

	client := v1alpha1.NewStatisticsServiceClient(conn)
	resp, err := client.GetCharacterStatistics(s.ctx, s.request(map[string]interface{}{
		"character_id": "char-test-001",
	}))
	s.Require().NoError(err)
	s.Equal(float64(18),
		resp.GetFields()["statistics"].GetStructValue().GetFields()["armor_class"].GetNumberValue())

	_, err = client.GetCharacterStatistics(s.ctx, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}
