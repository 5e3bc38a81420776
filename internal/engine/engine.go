package engine

import (
	"fmt"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

type rulesEngine struct{}

// New returns the standard rules engine
func New() Engine {
	return &rulesEngine{}
}

func (e *rulesEngine) Normalize(record *dnd5e.PartialCharacter) *dnd5e.Character {
	return Normalize(record)
}

func (e *rulesEngine) Compute(character *dnd5e.Character, catalogs Catalogs) *dnd5e.DerivedStatistics {
	return Compute(character, catalogs)
}

func (e *rulesEngine) CalculateProficiencyBonus(level int) int {
	return ProficiencyBonus(level)
}

func (e *rulesEngine) CalculateAbilityModifier(score int) int {
	return Modifier(score)
}

// Compute derives every statistic for a character. The character is read,
// never modified. A nil character is normalized from an empty record and nil
// catalogs fall back to the built-in tables.
func Compute(character *dnd5e.Character, catalogs Catalogs) *dnd5e.DerivedStatistics {
	if character == nil {
		character = Normalize(nil)
	}
	if catalogs == nil {
		catalogs = catalog.Builtin()
	}

	level := ClampLevel(character.Level)
	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	var class *dnd5e.ClassDefinition
	if def, ok := catalogs.Class(character.ClassID); ok {
		class = &def
	} else if character.ClassID != "" {
		warn("unknown class %q: no saving throw proficiencies or spell slots", character.ClassID)
	}

	stats := &dnd5e.DerivedStatistics{
		AbilityModifiers: AbilityModifiers(character.AbilityScores),
		ProficiencyBonus: ProficiencyBonus(level),
		Initiative:       Modifier(character.AbilityScores.Get(dnd5e.AbilityDexterity)),
		Speed:            dnd5e.DefaultSpeed,
	}

	// Armor class
	ac := ComputeAC(character.AbilityScores, character.Armor, catalogs)
	stats.ArmorClass = ac.Value
	stats.ArmorClassBreakdown = ac.Breakdown
	stats.StrengthRequirementUnmet = ac.StrengthRequirementUnmet
	stats.StealthDisadvantage = ac.StealthDisadvantage
	warnings = append(warnings, ac.Warnings...)
	if class != nil && ac.ArmorID != dnd5e.ArmorTypeNone {
		if def, ok := catalogs.Armor(ac.ArmorID); ok && !class.ProficientWithArmor(def.Category) {
			warn("%s is not proficient with %s armor", class.Name, def.Category)
		}
	}
	if class != nil && character.Armor.Shield && !class.ProficientWithArmor(dnd5e.ArmorCategoryShield) {
		warn("%s is not proficient with shields", class.Name)
	}

	// Hit points
	hitDie := resolveHitDie(character, class, warn)
	stats.MaxHP = ComputeMaxHP(level, hitDie, character.AbilityScores.Get(dnd5e.AbilityConstitution))
	stats.HitPoints = ClampHitPoints(character.HitPoints, stats.MaxHP)
	stats.HitPoints.HitDie = hitDie
	stats.HitDice = HitDicePool(level, hitDie)

	// Skills
	for _, id := range SkillIDs(character) {
		if _, ok := GoverningAbility(id, catalogs); !ok {
			warn("unknown skill %q: using %s", id, FallbackSkillAbility)
		}
		if character.Skill(id).Inconsistent() {
			warn("skill %q has expertise without proficiency: treated as expertise", id)
		}
	}
	stats.SkillModifiers = ComputeSkillModifiers(character, catalogs)
	stats.PassivePerception = PassivePerception(character, catalogs)
	stats.SavingThrows = ComputeSavingThrows(character, class)

	// Spell slots
	if class != nil && class.Spellcasting {
		slots := SlotsForLevel(level)
		stats.SpellSlots = slots[:]
	}

	// Speed
	if race, ok := catalogs.Race(character.RaceID); ok && race.Speed > 0 {
		stats.Speed = race.Speed
	} else if character.RaceID != "" {
		warn("unknown race %q: using speed %d", character.RaceID, dnd5e.DefaultSpeed)
	}

	stats.Warnings = warnings
	return stats
}

// resolveHitDie prefers the class's die, then the die stored on the record
func resolveHitDie(character *dnd5e.Character, class *dnd5e.ClassDefinition, warn func(string, ...interface{})) dnd5e.HitDie {
	if class != nil && class.HitDie.Valid() {
		return class.HitDie
	}
	if character.HitPoints.HitDie.Valid() {
		return character.HitPoints.HitDie
	}
	warn("no hit die for class %q: using %s", character.ClassID, dnd5e.DefaultHitDie)
	return dnd5e.DefaultHitDie
}
