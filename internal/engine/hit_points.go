package engine

import (
	"fmt"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// AverageHitDieRoll is the fixed per-level gain: floor(size/2) + 1
func AverageHitDieRoll(dieSize int) int {
	return dieSize/2 + 1
}

// ComputeMaxHP returns maximum hit points. Level 1 takes the full die plus
// the Constitution modifier, each later level the rounded-up average plus the
// modifier. The result is never below one hit point per level.
// An unparsable die counts as a d8.
func ComputeMaxHP(level int, hitDie dnd5e.HitDie, conScore int) int {
	level = ClampLevel(level)
	size, ok := hitDie.Size()
	if !ok {
		size, _ = dnd5e.DefaultHitDie.Size()
	}
	conMod := Modifier(conScore)

	computed := size + conMod
	computed += (level - 1) * (AverageHitDieRoll(size) + conMod)

	return max(level, computed)
}

// HitDicePool renders the hit dice available at a level, e.g. "3d10"
func HitDicePool(level int, hitDie dnd5e.HitDie) string {
	size, ok := hitDie.Size()
	if !ok {
		size, _ = dnd5e.DefaultHitDie.Size()
	}
	return fmt.Sprintf("%dd%d", ClampLevel(level), size)
}

// ClampHitPoints applies a newly computed maximum to the stored hit points
func ClampHitPoints(hp dnd5e.HitPoints, maxHP int) dnd5e.HitPoints {
	return hp.WithMax(maxHP)
}
