// Package engine computes a character's derived statistics from its raw
// attributes and the reference catalogs. Every function is pure: no I/O,
// no logging, no state kept between calls.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/engine Engine

import "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"

// Engine provides the character rules calculations
type Engine interface {
	// Normalize repairs a loose record into a valid character. Never fails.
	Normalize(record *dnd5e.PartialCharacter) *dnd5e.Character

	// Compute produces the full derived statistics snapshot. Never fails;
	// missing reference data degrades to fallbacks listed in Warnings.
	Compute(character *dnd5e.Character, catalogs Catalogs) *dnd5e.DerivedStatistics

	// Utility methods
	CalculateProficiencyBonus(level int) int
	CalculateAbilityModifier(score int) int
}
