// Package dicesession stores recent ability score roll sets so a client can
// read them back before committing scores to a character
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/repositories/dice_session Repository

// DiceSession is a group of rolls owned by one entity under one context
type DiceSession struct {
	EntityID   string     `json:"entity_id"`
	EntityType string     `json:"entity_type,omitempty"`
	Context    string     `json:"context"`
	Method     string     `json:"method,omitempty"`
	Rolls      []DiceRoll `json:"rolls"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

// Totals returns the total of each roll in order
func (s *DiceSession) Totals() []int {
	out := make([]int, len(s.Rolls))
	for i, r := range s.Rolls {
		out[i] = r.Total
	}
	return out
}

// DiceRoll is a single rolled ability score
type DiceRoll struct {
	RollID      string `json:"roll_id"`
	Notation    string `json:"notation"`
	Dice        []int  `json:"dice,omitempty"`
	Dropped     []int  `json:"dropped,omitempty"`
	Total       int    `json:"total"`
	Description string `json:"description,omitempty"`
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID   string
	EntityType string
	Context    string
	Method     string
	Rolls      []DiceRoll
	TTL        time.Duration
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a session, replacing any previous one for the same entity and context
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a live session
	// Returns errors.NotFound when missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
