// Package v1alpha1 handles the statistics grpc service interface
package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/dice"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
	DiceService      dice.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// Handler implements StatisticsServiceServer
type Handler struct {
	UnimplementedStatisticsServiceServer
	characterService character.Service
	diceService      dice.Service
}

var _ StatisticsServiceServer = (*Handler)(nil)

// maxSessionTTLSeconds caps how long a roll session may be kept; zero uses the server default
const maxSessionTTLSeconds = 24 * 60 * 60

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
		diceService:      cfg.DiceService,
	}, nil
}

// ComputeStatistics computes statistics for a record without storing it
func (h *Handler) ComputeStatistics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CharacterRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ComputeStatistics(ctx, &character.ComputeStatisticsInput{
		Record: in.Character,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse(out.CharacterView))
}

// GetCharacterStatistics loads a stored character and computes its statistics
func (h *Handler) GetCharacterStatistics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CharacterIDRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		CharacterID: in.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse(out.CharacterView))
}

// ListCharacters lists a player's characters with statistics
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListCharactersRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		PlayerID: in.PlayerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListCharactersResponse{
		Characters: make([]*CharacterResponse, 0, len(out.Characters)),
	}
	for _, view := range out.Characters {
		resp.Characters = append(resp.Characters, characterResponse(*view))
	}
	return respond(resp)
}

// SaveCharacter normalizes and stores a record
func (h *Handler) SaveCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CharacterRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Character == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	out, err := h.characterService.SaveCharacter(ctx, &character.SaveCharacterInput{
		Record: in.Character,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := characterResponse(out.CharacterView)
	resp.Created = out.Created
	return respond(resp)
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CharacterIDRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		CharacterID: in.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DeleteCharacterResponse{Message: out.Message})
}

// UpdateSkillProficiency toggles proficiency or expertise, or sets a flat bonus
func (h *Handler) UpdateSkillProficiency(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in UpdateSkillProficiencyRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.UpdateSkillProficiency(ctx, &character.UpdateSkillProficiencyInput{
		CharacterID: in.CharacterID,
		Skill:       dnd5e.SkillID(in.Skill),
		Action:      character.SkillAction(in.Action),
		Bonus:       in.Bonus,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := characterResponse(out.CharacterView)
	resp.SkillState = string(out.State)
	return respond(resp)
}

// ApplyHitPointChange applies damage, healing or temporary hit points
func (h *Handler) ApplyHitPointChange(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ApplyHitPointChangeRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.ApplyHitPointChange(ctx, &character.ApplyHitPointChangeInput{
		CharacterID: in.CharacterID,
		Kind:        character.HitPointChangeKind(in.Kind),
		Amount:      in.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse(out.CharacterView))
}

// RollAbilityScores generates six ability scores for an entity
func (h *Handler) RollAbilityScores(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RollAbilityScoresRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("entity_id", in.EntityID, vb)
	errors.ValidateRange("ttl_seconds", in.TTLSeconds, 0, maxSessionTTLSeconds, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{
		Entity: (&dnd5e.Character{ID: in.EntityID}).AsEntity(),
		Method: in.Method,
		TTL:    time.Duration(in.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sessionResponse(out.Session))
}

// GetRollSession returns the stored rolls for an entity
func (h *Handler) GetRollSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RollSessionRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}

	out, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: in.EntityID,
		Context:  in.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sessionResponse(out.Session))
}

// ClearRollSession removes the stored rolls for an entity
func (h *Handler) ClearRollSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in RollSessionRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}

	out, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: in.EntityID,
		Context:  in.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ClearRollSessionResponse{RollsDeleted: out.RollsDeleted})
}

// AssignScores places six scores onto abilities
func (h *Handler) AssignScores(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in AssignScoresRequest
	if err := DecodeRequest(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	priority := make([]dnd5e.Ability, 0, len(in.Priority))
	for _, name := range in.Priority {
		ability, ok := dnd5e.ParseAbility(name)
		if !ok {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown ability %q", name))
		}
		priority = append(priority, ability)
	}

	out, err := h.diceService.AssignScores(ctx, &dice.AssignScoresInput{
		Scores:   in.Scores,
		Priority: priority,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&AssignScoresResponse{AbilityScores: out.AbilityScores})
}

func characterResponse(view character.CharacterView) *CharacterResponse {
	return &CharacterResponse{
		Character:  view.Character,
		Statistics: view.Statistics,
	}
}

func sessionResponse(session *dicesession.DiceSession) *RollSessionResponse {
	if session == nil {
		return &RollSessionResponse{}
	}
	return &RollSessionResponse{
		EntityID:  session.EntityID,
		Method:    session.Method,
		Scores:    session.Totals(),
		Rolls:     session.Rolls,
		ExpiresAt: session.ExpiresAt.Unix(),
	}
}

func respond(v interface{}) (*structpb.Struct, error) {
	msg, err := EncodeMessage(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return msg, nil
}
