package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
)

// CharacterRequest carries a loose character record
type CharacterRequest struct {
	Character *dnd5e.PartialCharacter `json:"character"`
}

// CharacterIDRequest names a stored character
type CharacterIDRequest struct {
	CharacterID string `json:"character_id"`
}

// ListCharactersRequest names a player
type ListCharactersRequest struct {
	PlayerID string `json:"player_id"`
}

// UpdateSkillProficiencyRequest edits one skill
type UpdateSkillProficiencyRequest struct {
	CharacterID string `json:"character_id"`
	Skill       string `json:"skill"`
	Action      string `json:"action"`
	Bonus       int    `json:"bonus,omitempty"`
}

// ApplyHitPointChangeRequest applies damage, healing or temporary hit points
type ApplyHitPointChangeRequest struct {
	CharacterID string `json:"character_id"`
	Kind        string `json:"kind"`
	Amount      int    `json:"amount"`
}

// RollAbilityScoresRequest asks for six generated scores
type RollAbilityScoresRequest struct {
	EntityID   string `json:"entity_id"`
	Method     string `json:"method,omitempty"`
	TTLSeconds int    `json:"ttl_seconds,omitempty"`
}

// RollSessionRequest names a stored roll session
type RollSessionRequest struct {
	EntityID string `json:"entity_id"`
	Context  string `json:"context,omitempty"`
}

// AssignScoresRequest places six scores onto abilities
type AssignScoresRequest struct {
	Scores   []int    `json:"scores"`
	Priority []string `json:"priority,omitempty"`
}

// CharacterResponse is a normalized character with its statistics
type CharacterResponse struct {
	Character  *dnd5e.Character         `json:"character"`
	Statistics *dnd5e.DerivedStatistics `json:"statistics"`
	Created    bool                     `json:"created,omitempty"`
	SkillState string                   `json:"skill_state,omitempty"`
}

// ListCharactersResponse holds every character a player owns
type ListCharactersResponse struct {
	Characters []*CharacterResponse `json:"characters"`
}

// DeleteCharacterResponse confirms a deletion
type DeleteCharacterResponse struct {
	Message string `json:"message"`
}

// RollSessionResponse holds generated scores and the rolls behind them
type RollSessionResponse struct {
	EntityID  string                 `json:"entity_id"`
	Method    string                 `json:"method,omitempty"`
	Scores    []int                  `json:"scores"`
	Rolls     []dicesession.DiceRoll `json:"rolls"`
	ExpiresAt int64                  `json:"expires_at"`
}

// ClearRollSessionResponse reports how many rolls were removed
type ClearRollSessionResponse struct {
	RollsDeleted int `json:"rolls_deleted"`
}

// AssignScoresResponse holds the placed ability scores
type AssignScoresResponse struct {
	AbilityScores dnd5e.AbilityScores `json:"ability_scores"`
}

// DecodeRequest reads a Struct message into a request type
func DecodeRequest(msg *structpb.Struct, out interface{}) error {
	if msg == nil {
		return errors.InvalidArgument("request is required")
	}
	data, err := protojson.Marshal(msg)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// EncodeMessage writes any JSON-serializable value as a Struct message
func EncodeMessage(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	return msg, nil
}
