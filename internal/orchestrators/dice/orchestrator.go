// Package dice implements ability score generation
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/idgen"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
)

const (
	// ContextAbilityScores groups ability score rolls
	ContextAbilityScores = "ability_scores"

	// Generation methods
	MethodStandard      = "4d6_drop_lowest"
	MethodClassic       = "3d6"
	MethodStandardArray = "standard_array"

	abilityScoreCount = 6
)

// StandardArray is the fixed score array from the Player's Handbook
var StandardArray = []int{15, 14, 13, 12, 10, 8}

// Methods lists the supported generation methods
var Methods = []string{MethodStandard, MethodClassic, MethodStandardArray}

// Service defines the interface for dice operations
type Service interface {
	// RollAbilityScores generates six scores and stores them as a session for the entity
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// AssignScores maps six scores onto abilities, highest first by priority
	AssignScores(ctx context.Context, input *AssignScoresInput) (*AssignScoresOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller is optional; defaults to the rpg-toolkit crypto roller
	Roller dice.Roller
	// SessionTTL applies when a request does not name one; zero uses the repository default
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	sessionTTL      time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		sessionTTL:      cfg.SessionTTL,
	}, nil
}

func (o *orchestrator) RollAbilityScores(
	ctx context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	if input == nil || input.Entity == nil || input.Entity.GetID() == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	method := input.Method
	if method == "" {
		method = MethodStandard
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("method", method, Methods, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = o.sessionTTL
	}

	rolls := make([]dicesession.DiceRoll, 0, abilityScoreCount)
	for i := 0; i < abilityScoreCount; i++ {
		roll, err := o.rollOne(method, i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
		}
		rolls = append(rolls, roll)
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID:   input.Entity.GetID(),
		EntityType: input.Entity.GetType(),
		Context:    ContextAbilityScores,
		Method:     method,
		Rolls:      rolls,
		TTL:        ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ability score session")
	}

	slog.InfoContext(ctx, "ability scores rolled",
		"entity_id", input.Entity.GetID(),
		"entity_type", input.Entity.GetType(),
		"method", method,
		"scores", createOutput.Session.Totals())

	return &RollAbilityScoresOutput{
		Rolls:   rolls,
		Scores:  createOutput.Session.Totals(),
		Session: createOutput.Session,
	}, nil
}

func (o *orchestrator) rollOne(method string, index int) (dicesession.DiceRoll, error) {
	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Description: fmt.Sprintf("Ability Score %d (%s)", index+1, method),
	}

	switch method {
	case MethodStandardArray:
		roll.Notation = "fixed"
		roll.Total = StandardArray[index]
		return roll, nil
	case MethodClassic:
		roll.Notation = "3d6"
		values, err := o.roller.RollN(3, 6)
		if err != nil {
			return roll, err
		}
		roll.Dice = values
		roll.Total = sum(values)
		return roll, nil
	default:
		roll.Notation = "4d6"
		values, err := o.roller.RollN(4, 6)
		if err != nil {
			return roll, err
		}
		kept, dropped := dropLowest(values, 1)
		roll.Dice = kept
		roll.Dropped = dropped
		roll.Total = sum(kept)
		return roll, nil
	}
}

// dropLowest splits values into the kept dice, highest first, and the n lowest
func dropLowest(values []int, n int) (kept, dropped []int) {
	sorted := append([]int(nil), values...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n <= 0 || n >= len(sorted) {
		return sorted, nil
	}
	cut := len(sorted) - n
	return sorted[:cut], sorted[cut:]
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func (o *orchestrator) GetRollSession(
	ctx context.Context,
	input *GetRollSessionInput,
) (*GetRollSessionOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	rollContext := input.Context
	if rollContext == "" {
		rollContext = ContextAbilityScores
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  rollContext,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{Session: getOutput.Session}, nil
}

func (o *orchestrator) ClearRollSession(
	ctx context.Context,
	input *ClearRollSessionInput,
) (*ClearRollSessionOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	rollContext := input.Context
	if rollContext == "" {
		rollContext = ContextAbilityScores
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  rollContext,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.InfoContext(ctx, "dice session cleared",
		"entity_id", input.EntityID,
		"context", rollContext,
		"rolls_deleted", deleteOutput.RollsDeleted)

	return &ClearRollSessionOutput{RollsDeleted: deleteOutput.RollsDeleted}, nil
}

func (o *orchestrator) AssignScores(_ context.Context, input *AssignScoresInput) (*AssignScoresOutput, error) {
	if input == nil || len(input.Scores) != abilityScoreCount {
		return nil, errors.InvalidArgumentf("exactly %d scores are required", abilityScoreCount)
	}

	scores := append([]int(nil), input.Scores...)
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	order := make([]dnd5e.Ability, 0, abilityScoreCount)
	placed := make(map[dnd5e.Ability]bool, abilityScoreCount)
	for _, a := range input.Priority {
		if !placed[a] && isAbility(a) {
			placed[a] = true
			order = append(order, a)
		}
	}
	for _, a := range dnd5e.Abilities {
		if !placed[a] {
			order = append(order, a)
		}
	}

	result := make(dnd5e.AbilityScores, abilityScoreCount)
	for i, a := range order {
		result[a] = scores[i]
	}
	return &AssignScoresOutput{AbilityScores: result}, nil
}

func isAbility(a dnd5e.Ability) bool {
	for _, known := range dnd5e.Abilities {
		if known == a {
			return true
		}
	}
	return false
}
