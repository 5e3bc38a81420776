package engine

import "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"

// ClampLevel forces a level into [1, 20]
func ClampLevel(level int) int {
	return max(dnd5e.MinLevel, min(dnd5e.MaxLevel, level))
}

// ProficiencyBonus returns 2 + floor((level-1)/4) for a level clamped to [1, 20]
func ProficiencyBonus(level int) int {
	return 2 + (ClampLevel(level)-1)/4
}

// ProficiencyContribution is what a proficiency state adds to a check
func ProficiencyContribution(state dnd5e.ProficiencyState, proficiencyBonus int) int {
	switch state {
	case dnd5e.ProficiencyExpertise:
		return 2 * proficiencyBonus
	case dnd5e.ProficiencyProficient:
		return proficiencyBonus
	default:
		return 0
	}
}

// ToggleProficiency is the primary toggle: none <-> proficient.
// An expertise skill is left unchanged; it has to step down through
// ToggleExpertise first.
func ToggleProficiency(s dnd5e.SkillProficiency) dnd5e.SkillProficiency {
	switch s.State() {
	case dnd5e.ProficiencyNone:
		s.Proficient = true
	case dnd5e.ProficiencyProficient:
		s.Proficient = false
	}
	return s
}

// ToggleExpertise is the secondary toggle: proficient <-> expertise.
// Leaving expertise always lands on proficient. A skill with no
// proficiency is left unchanged.
func ToggleExpertise(s dnd5e.SkillProficiency) dnd5e.SkillProficiency {
	switch s.State() {
	case dnd5e.ProficiencyProficient:
		s.Expertise = true
	case dnd5e.ProficiencyExpertise:
		s.Expertise = false
		s.Proficient = true
	}
	return s
}
