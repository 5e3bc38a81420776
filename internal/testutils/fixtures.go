package testutils

import (
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Thorin Oakenshield"

// CreateTestCharacter returns a level 5 dwarf fighter in chain mail with a shield
func CreateTestCharacter(playerID string) *dnd5e.Character {
	return &dnd5e.Character{
		ID:       "char-test-001",
		PlayerID: playerID,
		Name:     TestCharacterName,
		Level:    5,
		ClassID:  dnd5e.ClassFighter,
		RaceID:   dnd5e.RaceDwarf,
		AbilityScores: dnd5e.AbilityScores{
			dnd5e.AbilityStrength:     16,
			dnd5e.AbilityDexterity:    12,
			dnd5e.AbilityConstitution: 14,
			dnd5e.AbilityIntelligence: 10,
			dnd5e.AbilityWisdom:       13,
			dnd5e.AbilityCharisma:     8,
		},
		Armor: dnd5e.Armor{Type: "chain-mail", Shield: true},
		HitPoints: dnd5e.HitPoints{
			Max:     44,
			Current: 44,
			HitDie:  dnd5e.HitDieD10,
		},
		Skills: map[dnd5e.SkillID]dnd5e.SkillProficiency{
			dnd5e.SkillAthletics:    {Proficient: true},
			dnd5e.SkillPerception:   {Proficient: true},
			dnd5e.SkillIntimidation: {},
		},
	}
}

// CreateTestRogue returns a level 3 halfling rogue in leather with expertise in stealth
func CreateTestRogue(playerID string) *dnd5e.Character {
	return &dnd5e.Character{
		ID:       "char-test-002",
		PlayerID: playerID,
		Name:     "Milo Tealeaf",
		Level:    3,
		ClassID:  dnd5e.ClassRogue,
		RaceID:   dnd5e.RaceHalfling,
		AbilityScores: dnd5e.AbilityScores{
			dnd5e.AbilityStrength:     8,
			dnd5e.AbilityDexterity:    17,
			dnd5e.AbilityConstitution: 12,
			dnd5e.AbilityIntelligence: 13,
			dnd5e.AbilityWisdom:       10,
			dnd5e.AbilityCharisma:     14,
		},
		Armor: dnd5e.Armor{Type: "leather-armor"},
		HitPoints: dnd5e.HitPoints{
			Max:     21,
			Current: 21,
			HitDie:  dnd5e.HitDieD8,
		},
		Skills: map[dnd5e.SkillID]dnd5e.SkillProficiency{
			dnd5e.SkillStealth:       {Proficient: true, Expertise: true},
			dnd5e.SkillSleightOfHand: {Proficient: true},
			dnd5e.SkillPerception:    {Proficient: true},
			dnd5e.SkillInvestigation: {Bonus: 1},
		},
	}
}
