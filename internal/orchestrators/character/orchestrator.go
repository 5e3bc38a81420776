// Package character implements the character orchestrator: every load and
// every edit runs normalize, then compute, so callers always see statistics
// that match the stored record.
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/idgen"
	characterrepo "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/character"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	Catalogs      engine.Catalogs
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalogs == nil {
		vb.RequiredField("Catalogs")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	catalogs      engine.Catalogs
	idGen         idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		catalogs:      cfg.Catalogs,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// GetCharacter loads, normalizes and computes a stored character
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{CharacterView: o.view(ctx, char)}, nil
}

// ListCharacters returns every character a player owns, each with statistics
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	views := make([]*character.CharacterView, 0, len(out.Records))
	for _, record := range out.Records {
		view := o.view(ctx, o.engine.Normalize(record))
		views = append(views, &view)
	}

	return &character.ListCharactersOutput{Characters: views}, nil
}

// SaveCharacter normalizes a record, applies the recomputed hit point bounds
// and persists it. A record without an ID, or with an ID nothing is stored
// under, is created.
func (o *Orchestrator) SaveCharacter(
	ctx context.Context,
	input *character.SaveCharacterInput,
) (*character.SaveCharacterOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("character record is required")
	}

	char := o.engine.Normalize(input.Record)
	created := false
	if char.ID == "" {
		char.ID = o.idGen.Generate()
		created = true
	}

	stats := o.engine.Compute(char, o.catalogs)
	char.HitPoints = stats.HitPoints

	var saved *dnd5e.Character
	if !created {
		out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
		switch {
		case err == nil:
			saved = out.Character
		case errors.IsNotFound(err):
			created = true
		default:
			return nil, errors.Wrapf(err, "failed to update character %s", char.ID)
		}
	}
	if created {
		out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create character %s", char.ID)
		}
		saved = out.Character
	}

	slog.InfoContext(ctx, "character saved",
		"character_id", saved.ID,
		"player_id", saved.PlayerID,
		"created", created,
		"level", saved.Level)

	return &character.SaveCharacterOutput{
		CharacterView: character.CharacterView{Character: saved, Statistics: stats},
		Created:       created,
	}, nil
}

// DeleteCharacter removes a stored character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &character.DeleteCharacterOutput{
		Message: fmt.Sprintf("character %s deleted", input.CharacterID),
	}, nil
}

// UpdateSkillProficiency applies one skill transition and recomputes
func (o *Orchestrator) UpdateSkillProficiency(
	ctx context.Context,
	input *character.UpdateSkillProficiencyInput,
) (*character.UpdateSkillProficiencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skillID := dnd5e.ParseSkillID(string(input.Skill))

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", input.CharacterID, vb)
	errors.ValidateRequired("skill", string(skillID), vb)
	errors.ValidateEnum("action", string(input.Action), []string{
		string(character.SkillActionToggleProficiency),
		string(character.SkillActionToggleExpertise),
		string(character.SkillActionSetBonus),
	}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	skill := char.Skill(skillID)
	before := skill.State()
	switch input.Action {
	case character.SkillActionToggleProficiency:
		skill = engine.ToggleProficiency(skill)
	case character.SkillActionToggleExpertise:
		skill = engine.ToggleExpertise(skill)
	case character.SkillActionSetBonus:
		skill.Bonus = input.Bonus
	}
	char.Skills[skillID] = skill

	slog.DebugContext(ctx, "skill proficiency changed",
		"character_id", char.ID,
		"skill", skillID,
		"action", input.Action,
		"from", before,
		"to", skill.State())

	view, err := o.persist(ctx, char)
	if err != nil {
		return nil, err
	}

	return &character.UpdateSkillProficiencyOutput{
		CharacterView: view,
		State:         skill.State(),
	}, nil
}

// ApplyHitPointChange applies damage, healing or temporary hit points and
// recomputes. The change is applied against the recomputed maximum.
func (o *Orchestrator) ApplyHitPointChange(
	ctx context.Context,
	input *character.ApplyHitPointChangeInput,
) (*character.ApplyHitPointChangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterId", input.CharacterID, vb)
	errors.ValidateEnum("kind", string(input.Kind), []string{
		string(character.HitPointChangeDamage),
		string(character.HitPointChangeHeal),
		string(character.HitPointChangeTemporary),
	}, vb)
	errors.ValidateRange("amount", input.Amount, 0, character.MaxHitPointChange, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	hp := o.engine.Compute(char, o.catalogs).HitPoints
	switch input.Kind {
	case character.HitPointChangeDamage:
		hp = hp.ApplyDamage(input.Amount)
	case character.HitPointChangeHeal:
		hp = hp.Heal(input.Amount)
	case character.HitPointChangeTemporary:
		hp = hp.SetTemporary(input.Amount)
	}
	char.HitPoints = hp

	slog.InfoContext(ctx, "hit points changed",
		"character_id", char.ID,
		"kind", input.Kind,
		"amount", input.Amount,
		"current", hp.Current,
		"temp", hp.Temp,
		"max", hp.Max)

	view, err := o.persist(ctx, char)
	if err != nil {
		return nil, err
	}

	return &character.ApplyHitPointChangeOutput{CharacterView: view}, nil
}

// ComputeStatistics normalizes and computes a record without storing it
func (o *Orchestrator) ComputeStatistics(
	ctx context.Context,
	input *character.ComputeStatisticsInput,
) (*character.ComputeStatisticsOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("character record is required")
	}

	return &character.ComputeStatisticsOutput{
		CharacterView: o.view(ctx, o.engine.Normalize(input.Record)),
	}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*dnd5e.Character, error) {
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	return o.engine.Normalize(out.Record), nil
}

// persist recomputes, clamps hit points into the new bounds and stores the character
func (o *Orchestrator) persist(ctx context.Context, char *dnd5e.Character) (character.CharacterView, error) {
	stats := o.engine.Compute(char, o.catalogs)
	char.HitPoints = stats.HitPoints

	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return character.CharacterView{}, errors.Wrapf(err, "failed to update character %s", char.ID)
	}

	return character.CharacterView{Character: out.Character, Statistics: stats}, nil
}

func (o *Orchestrator) view(ctx context.Context, char *dnd5e.Character) character.CharacterView {
	stats := o.engine.Compute(char, o.catalogs)
	char.HitPoints = stats.HitPoints

	if len(stats.Warnings) > 0 {
		slog.DebugContext(ctx, "statistics computed with fallbacks",
			"character_id", char.ID,
			"warnings", stats.Warnings)
	}

	return character.CharacterView{Character: char, Statistics: stats}
}
