package engine

import (
	"fmt"
	"strings"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// ShieldBonus is added to AC when a shield is carried
const ShieldBonus = 2

// ComputeAC returns the armor class for the given scores and armor.
// Armor that does not resolve is treated as unarmored. Strength
// shortfalls are flagged, never subtracted.
func ComputeAC(scores dnd5e.AbilityScores, armor dnd5e.Armor, armorCatalog ArmorCatalog) dnd5e.ArmorClass {
	def, warning := resolveArmor(armor.Type, armorCatalog)
	if def.Category == dnd5e.ArmorCategoryShield {
		// a shield recorded as the armor type
		armor.Shield = true
		def = dnd5e.UnarmoredDefinition
	}
	dexMod := Modifier(scores.Get(dnd5e.AbilityDexterity))

	var terms []string
	var value int
	switch {
	case def.Category == dnd5e.ArmorCategoryNone:
		value = 10 + dexMod
		terms = append(terms, fmt.Sprintf("10 (%s)", def.Name), signedTerm(dexMod, "Dex"))
	case def.MaxDexBonus.Unlimited():
		value = def.BaseAC + dexMod
		terms = append(terms, fmt.Sprintf("%d (%s)", def.BaseAC, def.Name), signedTerm(dexMod, "Dex"))
	default:
		capped := min(dexMod, def.MaxDexBonus.Cap())
		value = def.BaseAC + capped
		terms = append(terms,
			fmt.Sprintf("%d (%s)", def.BaseAC, def.Name),
			signedTerm(capped, fmt.Sprintf("Dex, max %d", def.MaxDexBonus.Cap())))
	}

	if armor.Shield {
		value += ShieldBonus
		terms = append(terms, signedTerm(ShieldBonus, "shield"))
	}

	result := dnd5e.ArmorClass{
		Value:               value,
		Breakdown:           fmt.Sprintf("%s = %d", strings.Join(terms, " "), value),
		StealthDisadvantage: def.StealthDisadvantage,
		ArmorID:             def.ID,
	}
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	if def.StrengthRequirement > 0 && scores.Get(dnd5e.AbilityStrength) < def.StrengthRequirement {
		result.StrengthRequirementUnmet = true
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"%s requires Strength %d (have %d): speed is reduced by 10 ft",
			def.Name, def.StrengthRequirement, scores.Get(dnd5e.AbilityStrength)))
	}

	return result
}

func resolveArmor(armorType string, armorCatalog ArmorCatalog) (dnd5e.ArmorTypeDefinition, string) {
	id := strings.ToLower(strings.TrimSpace(armorType))
	if id == "" || id == dnd5e.ArmorTypeNone {
		return dnd5e.UnarmoredDefinition, ""
	}
	if armorCatalog != nil {
		if def, ok := armorCatalog.Armor(id); ok {
			if def.Name == "" {
				def.Name = def.ID
			}
			return def, ""
		}
	}
	return dnd5e.UnarmoredDefinition, fmt.Sprintf("unknown armor %q: using unarmored AC", armorType)
}

// signedTerm renders "+ 2 (Dex)" or "- 1 (Dex)"
func signedTerm(n int, label string) string {
	if n < 0 {
		return fmt.Sprintf("- %d (%s)", -n, label)
	}
	return fmt.Sprintf("+ %d (%s)", n, label)
}
