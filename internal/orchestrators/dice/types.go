package dice

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	dicesession "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session"
)

// RollAbilityScoresInput defines the request for generating six ability scores
type RollAbilityScoresInput struct {
	// Entity the scores are rolled for; its ID keys the stored session
	Entity core.Entity
	// Method is one of MethodStandard, MethodClassic or MethodStandardArray.
	// Empty means MethodStandard.
	Method string
	// TTL of the stored session; zero uses the repository default
	TTL time.Duration
}

// RollAbilityScoresOutput defines the response for rolling ability scores
type RollAbilityScoresOutput struct {
	Rolls   []dicesession.DiceRoll
	Scores  []int
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}

// AssignScoresInput places six scores onto abilities
type AssignScoresInput struct {
	Scores []int
	// Priority lists abilities that should receive the highest scores first.
	// Remaining abilities follow in sheet order.
	Priority []dnd5e.Ability
}

// AssignScoresOutput holds the resulting ability scores
type AssignScoresOutput struct {
	AbilityScores dnd5e.AbilityScores
}
