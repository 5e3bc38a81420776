package engine

import "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"

// Modifier returns floor((score-10)/2). Go division truncates toward zero,
// so odd scores below 10 need one more step down.
func Modifier(score int) int {
	diff := score - 10
	mod := diff / 2
	if diff < 0 && diff%2 != 0 {
		mod--
	}
	return mod
}

// AbilityModifiers returns the modifier for each of the six abilities
func AbilityModifiers(scores dnd5e.AbilityScores) map[dnd5e.Ability]int {
	mods := make(map[dnd5e.Ability]int, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		mods[a] = Modifier(scores.Get(a))
	}
	return mods
}
