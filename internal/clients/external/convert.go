package external

import (
	"log/slog"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/catalog"
	internalDnd5e "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// spellcastingClasses lists the full casters; the API does not expose caster progression on the class
var spellcastingClasses = map[string]bool{
	internalDnd5e.ClassBard:     true,
	internalDnd5e.ClassCleric:   true,
	internalDnd5e.ClassDruid:    true,
	internalDnd5e.ClassSorcerer: true,
	internalDnd5e.ClassWizard:   true,
}

// convertArmor returns nil for anything in the armor category that is not armor
func convertArmor(equipment dnd5e.EquipmentInterface) *internalDnd5e.ArmorTypeDefinition {
	armor, ok := equipment.(*entities.Armor)
	if !ok || armor == nil {
		if equipment != nil {
			slog.Debug("skipping non-armor equipment in armor category", "type", equipment.GetType())
		}
		return nil
	}

	category := internalDnd5e.ParseArmorCategory(armor.ArmorCategory)
	if category == internalDnd5e.ArmorCategoryNone {
		category = internalDnd5e.ArmorCategoryLight
	}

	def := &internalDnd5e.ArmorTypeDefinition{
		ID:                  strings.ToLower(armor.Key),
		Name:                strings.TrimSuffix(armor.Name, " Armor"),
		MaxDexBonus:         0,
		StrengthRequirement: armor.StrMinimum,
		StealthDisadvantage: armor.StealthDisadvantage,
		Category:            category,
	}
	if armor.ArmorClass != nil {
		def.BaseAC = armor.ArmorClass.Base
		if armor.ArmorClass.DexBonus {
			def.MaxDexBonus = catalog.DefaultMaxDexBonus(category)
		}
	}
	return def
}

func convertClass(class *entities.Class) *internalDnd5e.ClassDefinition {
	if class == nil {
		return nil
	}

	key := strings.ToLower(class.Key)
	def := &internalDnd5e.ClassDefinition{
		ID:           key,
		Name:         class.Name,
		Spellcasting: spellcastingClasses[key],
	}
	if class.HitDie > 0 {
		def.HitDie = internalDnd5e.HitDieFromSize(class.HitDie)
	}

	for _, st := range class.SavingThrows {
		ability, ok := internalDnd5e.ParseAbility(st.Key)
		if !ok {
			ability, ok = internalDnd5e.ParseAbility(st.Name)
		}
		if ok {
			def.SavingThrows = append(def.SavingThrows, ability)
		}
	}

	seen := make(map[internalDnd5e.ArmorCategory]bool)
	for _, prof := range class.ArmorProficiencies {
		for _, category := range internalDnd5e.ParseArmorProficiency(prof.Name) {
			if !seen[category] {
				seen[category] = true
				def.ArmorProficiencyCategories = append(def.ArmorProficiencyCategories, category)
			}
		}
	}

	return def
}

func convertRace(race *entities.Race) *internalDnd5e.RaceDefinition {
	if race == nil {
		return nil
	}
	return &internalDnd5e.RaceDefinition{
		ID:    strings.ToLower(race.Key),
		Name:  race.Name,
		Speed: race.Speed,
	}
}
