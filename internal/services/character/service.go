// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/services/character Service

import (
	"context"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// Service defines the interface for character operations. Every operation
// that returns a character also returns its freshly computed statistics.
type Service interface {
	// Stored characters
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Edits that trigger a recompute
	UpdateSkillProficiency(ctx context.Context, input *UpdateSkillProficiencyInput) (*UpdateSkillProficiencyOutput, error)
	ApplyHitPointChange(ctx context.Context, input *ApplyHitPointChangeInput) (*ApplyHitPointChangeOutput, error)

	// ComputeStatistics works on a record that is not stored
	ComputeStatistics(ctx context.Context, input *ComputeStatisticsInput) (*ComputeStatisticsOutput, error)
}

// SkillAction is an edit to one skill's training
type SkillAction string

// Skill actions
const (
	// SkillActionToggleProficiency moves none <-> proficient
	SkillActionToggleProficiency SkillAction = "toggle_proficiency"
	// SkillActionToggleExpertise moves proficient <-> expertise
	SkillActionToggleExpertise SkillAction = "toggle_expertise"
	// SkillActionSetBonus replaces the flat bonus
	SkillActionSetBonus SkillAction = "set_bonus"
)

// HitPointChangeKind is the kind of hit point change
type HitPointChangeKind string

// Hit point change kinds
const (
	HitPointChangeDamage    HitPointChangeKind = "damage"
	HitPointChangeHeal      HitPointChangeKind = "heal"
	HitPointChangeTemporary HitPointChangeKind = "temporary"
)

// MaxHitPointChange bounds a single damage, heal or temporary grant
const MaxHitPointChange = 10000

// CharacterView is a normalized character with its derived statistics
type CharacterView struct {
	Character  *dnd5e.Character
	Statistics *dnd5e.DerivedStatistics
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	CharacterView
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*CharacterView
}

// SaveCharacterInput defines the request for saving a character.
// A record without an ID is created with a generated one.
type SaveCharacterInput struct {
	Record *dnd5e.PartialCharacter
}

// SaveCharacterOutput defines the response for saving a character
type SaveCharacterOutput struct {
	CharacterView
	Created bool
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Message string
}

// UpdateSkillProficiencyInput defines the request for editing a skill
type UpdateSkillProficiencyInput struct {
	CharacterID string
	Skill       dnd5e.SkillID
	Action      SkillAction
	// Bonus is only read by SkillActionSetBonus
	Bonus int
}

// UpdateSkillProficiencyOutput defines the response for editing a skill
type UpdateSkillProficiencyOutput struct {
	CharacterView
	State dnd5e.ProficiencyState
}

// ApplyHitPointChangeInput defines the request for a hit point change
type ApplyHitPointChangeInput struct {
	CharacterID string
	Kind        HitPointChangeKind
	Amount      int
}

// ApplyHitPointChangeOutput defines the response for a hit point change
type ApplyHitPointChangeOutput struct {
	CharacterView
}

// ComputeStatisticsInput defines the request for computing an unsaved record
type ComputeStatisticsInput struct {
	Record *dnd5e.PartialCharacter
}

// ComputeStatisticsOutput defines the response for computing an unsaved record
type ComputeStatisticsOutput struct {
	CharacterView
}
