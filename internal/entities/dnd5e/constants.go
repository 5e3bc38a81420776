package dnd5e

import "strings"

// Ability identifies one of the six ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// abilityAliases maps the short forms used by the SRD API and older records
var abilityAliases = map[string]Ability{
	"str": AbilityStrength,
	"dex": AbilityDexterity,
	"con": AbilityConstitution,
	"int": AbilityIntelligence,
	"wis": AbilityWisdom,
	"cha": AbilityCharisma,
}

// ParseAbility resolves a full or abbreviated ability name, case-insensitive
func ParseAbility(s string) (Ability, bool) {
	key := normalizeKey(s)
	for _, a := range Abilities {
		if string(a) == key {
			return a, true
		}
	}
	a, ok := abilityAliases[key]
	return a, ok
}

// SkillID identifies a skill
type SkillID string

// Skill constants
const (
	SkillAcrobatics     SkillID = "acrobatics"
	SkillAnimalHandling SkillID = "animal-handling"
	SkillArcana         SkillID = "arcana"
	SkillAthletics      SkillID = "athletics"
	SkillDeception      SkillID = "deception"
	SkillHistory        SkillID = "history"
	SkillInsight        SkillID = "insight"
	SkillIntimidation   SkillID = "intimidation"
	SkillInvestigation  SkillID = "investigation"
	SkillMedicine       SkillID = "medicine"
	SkillNature         SkillID = "nature"
	SkillPerception     SkillID = "perception"
	SkillPerformance    SkillID = "performance"
	SkillPersuasion     SkillID = "persuasion"
	SkillReligion       SkillID = "religion"
	SkillSleightOfHand  SkillID = "sleight-of-hand"
	SkillStealth        SkillID = "stealth"
	SkillSurvival       SkillID = "survival"
)

// StandardSkills lists the 18 standard skills in alphabetical order
var StandardSkills = []SkillID{
	SkillAcrobatics,
	SkillAnimalHandling,
	SkillArcana,
	SkillAthletics,
	SkillDeception,
	SkillHistory,
	SkillInsight,
	SkillIntimidation,
	SkillInvestigation,
	SkillMedicine,
	SkillNature,
	SkillPerception,
	SkillPerformance,
	SkillPersuasion,
	SkillReligion,
	SkillSleightOfHand,
	SkillStealth,
	SkillSurvival,
}

// ArmorCategory groups armor by weight class
type ArmorCategory string

// Armor categories
const (
	ArmorCategoryNone   ArmorCategory = "none"
	ArmorCategoryLight  ArmorCategory = "light"
	ArmorCategoryMedium ArmorCategory = "medium"
	ArmorCategoryHeavy  ArmorCategory = "heavy"
	ArmorCategoryShield ArmorCategory = "shield"
)

// ParseArmorCategory resolves category names as written by the SRD ("Light", "Heavy Armor")
func ParseArmorCategory(s string) ArmorCategory {
	switch normalizeKey(s) {
	case "light", "light armor":
		return ArmorCategoryLight
	case "medium", "medium armor":
		return ArmorCategoryMedium
	case "heavy", "heavy armor":
		return ArmorCategoryHeavy
	case "shield", "shields":
		return ArmorCategoryShield
	default:
		return ArmorCategoryNone
	}
}

// ParseArmorProficiency expands a class armor proficiency name into the
// categories it grants. "All armor" covers light, medium and heavy.
func ParseArmorProficiency(s string) []ArmorCategory {
	if normalizeKey(s) == "all armor" {
		return []ArmorCategory{ArmorCategoryLight, ArmorCategoryMedium, ArmorCategoryHeavy}
	}
	if c := ParseArmorCategory(s); c != ArmorCategoryNone {
		return []ArmorCategory{c}
	}
	return nil
}

// ArmorTypeNone is the armor type of an unarmored character
const ArmorTypeNone = "none"

// Class identifiers
const (
	ClassBarbarian = "barbarian"
	ClassBard      = "bard"
	ClassCleric    = "cleric"
	ClassDruid     = "druid"
	ClassFighter   = "fighter"
	ClassMonk      = "monk"
	ClassPaladin   = "paladin"
	ClassRanger    = "ranger"
	ClassRogue     = "rogue"
	ClassSorcerer  = "sorcerer"
	ClassWarlock   = "warlock"
	ClassWizard    = "wizard"
)

// Race identifiers
const (
	RaceHuman      = "human"
	RaceDwarf      = "dwarf"
	RaceElf        = "elf"
	RaceHalfling   = "halfling"
	RaceDragonborn = "dragonborn"
	RaceGnome      = "gnome"
	RaceHalfElf    = "half-elf"
	RaceHalfOrc    = "half-orc"
	RaceTiefling   = "tiefling"
)

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 20
)

// Ability score bounds and the value used in place of a bad score
const (
	MinAbilityScore     = 1
	MaxAbilityScore     = 30
	DefaultAbilityScore = 10
)

// DefaultSpeed is used when a race cannot be resolved
const DefaultSpeed = 30

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var idSeparators = strings.NewReplacer(" ", "-", "_", "-")

// NormalizeID maps a catalog id onto its canonical form: "Chain Mail",
// "chain_mail" and " CHAIN-MAIL " all become "chain-mail".
func NormalizeID(s string) string {
	return idSeparators.Replace(normalizeKey(s))
}

// ParseSkillID maps "Sleight of Hand", "sleight_of_hand" and
// "skill-sleight-of-hand" onto "sleight-of-hand". Unknown skills keep their
// normalized id; an empty result means the input had no id at all.
func ParseSkillID(s string) SkillID {
	return SkillID(strings.TrimPrefix(NormalizeID(s), "skill-"))
}
