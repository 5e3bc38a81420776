package catalog

import (
	"sync"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// Builtin returns the SRD reference tables compiled into the binary
func Builtin() *Catalogs {
	return builtinCatalogs()
}

var builtinCatalogs = sync.OnceValue(func() *Catalogs {
	tables := BuiltinTables()
	return &Catalogs{
		armor:   indexArmor(tables.Armor),
		classes: indexClasses(tables.Classes),
		skills:  indexSkills(tables.Skills),
		races:   indexRaces(tables.Races),
	}
})

// BuiltinTables returns a fresh copy of the built-in reference data
func BuiltinTables() *Tables {
	return &Tables{
		Armor:   builtinArmor(),
		Classes: builtinClasses(),
		Skills:  builtinSkills(),
		Races:   builtinRaces(),
	}
}

func builtinArmor() []dnd5e.ArmorTypeDefinition {
	light := func(id, name string, base int, stealth bool) dnd5e.ArmorTypeDefinition {
		return dnd5e.ArmorTypeDefinition{
			ID: id, Name: name, BaseAC: base, MaxDexBonus: dnd5e.DexBonusUnlimited,
			StealthDisadvantage: stealth, Category: dnd5e.ArmorCategoryLight,
		}
	}
	medium := func(id, name string, base int, stealth bool) dnd5e.ArmorTypeDefinition {
		return dnd5e.ArmorTypeDefinition{
			ID: id, Name: name, BaseAC: base, MaxDexBonus: 2,
			StealthDisadvantage: stealth, Category: dnd5e.ArmorCategoryMedium,
		}
	}
	heavy := func(id, name string, base, str int) dnd5e.ArmorTypeDefinition {
		return dnd5e.ArmorTypeDefinition{
			ID: id, Name: name, BaseAC: base, MaxDexBonus: 0, StrengthRequirement: str,
			StealthDisadvantage: true, Category: dnd5e.ArmorCategoryHeavy,
		}
	}

	return []dnd5e.ArmorTypeDefinition{
		light("padded-armor", "Padded", 11, true),
		light("leather-armor", "Leather", 11, false),
		light("studded-leather-armor", "Studded Leather", 12, false),
		medium("hide-armor", "Hide", 12, false),
		medium("chain-shirt", "Chain Shirt", 13, false),
		medium("scale-mail", "Scale Mail", 14, true),
		medium("breastplate", "Breastplate", 14, false),
		medium("half-plate-armor", "Half Plate", 15, true),
		heavy("ring-mail", "Ring Mail", 14, 0),
		heavy("chain-mail", "Chain Mail", 16, 13),
		heavy("splint-armor", "Splint", 17, 15),
		heavy("plate-armor", "Plate", 18, 15),
		{
			ID: "shield", Name: "Shield", BaseAC: 2, MaxDexBonus: 0,
			Category: dnd5e.ArmorCategoryShield,
		},
	}
}

func builtinClasses() []dnd5e.ClassDefinition {
	var (
		lightOnly   = []dnd5e.ArmorCategory{dnd5e.ArmorCategoryLight}
		lightMedium = []dnd5e.ArmorCategory{dnd5e.ArmorCategoryLight, dnd5e.ArmorCategoryMedium, dnd5e.ArmorCategoryShield}
		allArmor    = []dnd5e.ArmorCategory{
			dnd5e.ArmorCategoryLight, dnd5e.ArmorCategoryMedium, dnd5e.ArmorCategoryHeavy, dnd5e.ArmorCategoryShield,
		}
	)
	const (
		str = dnd5e.AbilityStrength
		dex = dnd5e.AbilityDexterity
		con = dnd5e.AbilityConstitution
		in  = dnd5e.AbilityIntelligence
		wis = dnd5e.AbilityWisdom
		cha = dnd5e.AbilityCharisma
	)

	// Only full casters use the spell slot table. Paladin and ranger are
	// half casters and warlock uses pact magic, so none of them are flagged.
	return []dnd5e.ClassDefinition{
		{ID: dnd5e.ClassBarbarian, Name: "Barbarian", HitDie: dnd5e.HitDieD12,
			ArmorProficiencyCategories: lightMedium, PrimaryAbilities: []dnd5e.Ability{str},
			SavingThrows: []dnd5e.Ability{str, con}},
		{ID: dnd5e.ClassBard, Name: "Bard", HitDie: dnd5e.HitDieD8, Spellcasting: true,
			ArmorProficiencyCategories: lightOnly, PrimaryAbilities: []dnd5e.Ability{cha},
			SavingThrows: []dnd5e.Ability{dex, cha}},
		{ID: dnd5e.ClassCleric, Name: "Cleric", HitDie: dnd5e.HitDieD8, Spellcasting: true,
			ArmorProficiencyCategories: lightMedium, PrimaryAbilities: []dnd5e.Ability{wis},
			SavingThrows: []dnd5e.Ability{wis, cha}},
		{ID: dnd5e.ClassDruid, Name: "Druid", HitDie: dnd5e.HitDieD8, Spellcasting: true,
			ArmorProficiencyCategories: lightMedium, PrimaryAbilities: []dnd5e.Ability{wis},
			SavingThrows: []dnd5e.Ability{in, wis}},
		{ID: dnd5e.ClassFighter, Name: "Fighter", HitDie: dnd5e.HitDieD10,
			ArmorProficiencyCategories: allArmor, PrimaryAbilities: []dnd5e.Ability{str, dex},
			SavingThrows: []dnd5e.Ability{str, con}},
		{ID: dnd5e.ClassMonk, Name: "Monk", HitDie: dnd5e.HitDieD8,
			PrimaryAbilities: []dnd5e.Ability{dex, wis},
			SavingThrows:     []dnd5e.Ability{str, dex}},
		{ID: dnd5e.ClassPaladin, Name: "Paladin", HitDie: dnd5e.HitDieD10,
			ArmorProficiencyCategories: allArmor, PrimaryAbilities: []dnd5e.Ability{str, cha},
			SavingThrows: []dnd5e.Ability{wis, cha}},
		{ID: dnd5e.ClassRanger, Name: "Ranger", HitDie: dnd5e.HitDieD10,
			ArmorProficiencyCategories: lightMedium, PrimaryAbilities: []dnd5e.Ability{dex, wis},
			SavingThrows: []dnd5e.Ability{str, dex}},
		{ID: dnd5e.ClassRogue, Name: "Rogue", HitDie: dnd5e.HitDieD8,
			ArmorProficiencyCategories: lightOnly, PrimaryAbilities: []dnd5e.Ability{dex},
			SavingThrows: []dnd5e.Ability{dex, in}},
		{ID: dnd5e.ClassSorcerer, Name: "Sorcerer", HitDie: dnd5e.HitDieD6, Spellcasting: true,
			PrimaryAbilities: []dnd5e.Ability{cha},
			SavingThrows:     []dnd5e.Ability{con, cha}},
		{ID: dnd5e.ClassWarlock, Name: "Warlock", HitDie: dnd5e.HitDieD8,
			ArmorProficiencyCategories: lightOnly, PrimaryAbilities: []dnd5e.Ability{cha},
			SavingThrows: []dnd5e.Ability{wis, cha}},
		{ID: dnd5e.ClassWizard, Name: "Wizard", HitDie: dnd5e.HitDieD6, Spellcasting: true,
			PrimaryAbilities: []dnd5e.Ability{in},
			SavingThrows:     []dnd5e.Ability{in, wis}},
	}
}

func builtinSkills() []dnd5e.SkillDefinition {
	return []dnd5e.SkillDefinition{
		{ID: dnd5e.SkillAcrobatics, Name: "Acrobatics", GoverningAbility: dnd5e.AbilityDexterity},
		{ID: dnd5e.SkillAnimalHandling, Name: "Animal Handling", GoverningAbility: dnd5e.AbilityWisdom},
		{ID: dnd5e.SkillArcana, Name: "Arcana", GoverningAbility: dnd5e.AbilityIntelligence},
		{ID: dnd5e.SkillAthletics, Name: "Athletics", GoverningAbility: dnd5e.AbilityStrength},
		{ID: dnd5e.SkillDeception, Name: "Deception", GoverningAbility: dnd5e.AbilityCharisma},
		{ID: dnd5e.SkillHistory, Name: "History", GoverningAbility: dnd5e.AbilityIntelligence},
		{ID: dnd5e.SkillInsight, Name: "Insight", GoverningAbility: dnd5e.AbilityWisdom},
		{ID: dnd5e.SkillIntimidation, Name: "Intimidation", GoverningAbility: dnd5e.AbilityCharisma},
		{ID: dnd5e.SkillInvestigation, Name: "Investigation", GoverningAbility: dnd5e.AbilityIntelligence},
		{ID: dnd5e.SkillMedicine, Name: "Medicine", GoverningAbility: dnd5e.AbilityWisdom},
		{ID: dnd5e.SkillNature, Name: "Nature", GoverningAbility: dnd5e.AbilityIntelligence},
		{ID: dnd5e.SkillPerception, Name: "Perception", GoverningAbility: dnd5e.AbilityWisdom},
		{ID: dnd5e.SkillPerformance, Name: "Performance", GoverningAbility: dnd5e.AbilityCharisma},
		{ID: dnd5e.SkillPersuasion, Name: "Persuasion", GoverningAbility: dnd5e.AbilityCharisma},
		{ID: dnd5e.SkillReligion, Name: "Religion", GoverningAbility: dnd5e.AbilityIntelligence},
		{ID: dnd5e.SkillSleightOfHand, Name: "Sleight of Hand", GoverningAbility: dnd5e.AbilityDexterity},
		{ID: dnd5e.SkillStealth, Name: "Stealth", GoverningAbility: dnd5e.AbilityDexterity},
		{ID: dnd5e.SkillSurvival, Name: "Survival", GoverningAbility: dnd5e.AbilityWisdom},
	}
}

func builtinRaces() []dnd5e.RaceDefinition {
	return []dnd5e.RaceDefinition{
		{ID: dnd5e.RaceDragonborn, Name: "Dragonborn", Speed: 30},
		{ID: dnd5e.RaceDwarf, Name: "Dwarf", Speed: 25},
		{ID: dnd5e.RaceElf, Name: "Elf", Speed: 30},
		{ID: dnd5e.RaceGnome, Name: "Gnome", Speed: 25},
		{ID: dnd5e.RaceHalfElf, Name: "Half-Elf", Speed: 30},
		{ID: dnd5e.RaceHalfOrc, Name: "Half-Orc", Speed: 30},
		{ID: dnd5e.RaceHalfling, Name: "Halfling", Speed: 25},
		{ID: dnd5e.RaceHuman, Name: "Human", Speed: 30},
		{ID: dnd5e.RaceTiefling, Name: "Tiefling", Speed: 30},
	}
}
