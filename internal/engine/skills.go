package engine

import (
	"sort"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// PassivePerceptionBase is added to the perception modifier
const PassivePerceptionBase = 10

// FallbackSkillAbility governs any skill the catalog cannot resolve
const FallbackSkillAbility = dnd5e.AbilityIntelligence

// GoverningAbility returns the ability for a skill and whether the catalog knew it
func GoverningAbility(skill dnd5e.SkillID, skills SkillCatalog) (dnd5e.Ability, bool) {
	if skills != nil {
		if def, ok := skills.Skill(skill); ok && def.GoverningAbility != "" {
			return def.GoverningAbility, true
		}
	}
	return FallbackSkillAbility, false
}

// ComputeSkillModifier returns ability modifier + proficiency contribution + flat bonus
func ComputeSkillModifier(skill dnd5e.SkillID, character *dnd5e.Character, skills SkillCatalog) int {
	ability, _ := GoverningAbility(skill, skills)
	prof := character.Skill(skill)

	return Modifier(character.AbilityScores.Get(ability)) +
		ProficiencyContribution(prof.State(), ProficiencyBonus(character.Level)) +
		prof.Bonus
}

// PassivePerception returns 10 + the perception modifier
func PassivePerception(character *dnd5e.Character, skills SkillCatalog) int {
	return PassivePerceptionBase + ComputeSkillModifier(dnd5e.SkillPerception, character, skills)
}

// ComputeSkillModifiers runs a full pass over the standard skills plus any
// other skill the character has a record for
func ComputeSkillModifiers(character *dnd5e.Character, skills SkillCatalog) map[dnd5e.SkillID]int {
	out := make(map[dnd5e.SkillID]int, len(dnd5e.StandardSkills)+len(character.Skills))
	for _, id := range SkillIDs(character) {
		out[id] = ComputeSkillModifier(id, character, skills)
	}
	return out
}

// SkillIDs returns the standard skills followed by the character's
// non-standard skills in sorted order
func SkillIDs(character *dnd5e.Character) []dnd5e.SkillID {
	ids := make([]dnd5e.SkillID, 0, len(dnd5e.StandardSkills)+len(character.Skills))
	ids = append(ids, dnd5e.StandardSkills...)

	standard := make(map[dnd5e.SkillID]struct{}, len(dnd5e.StandardSkills))
	for _, id := range dnd5e.StandardSkills {
		standard[id] = struct{}{}
	}
	var extra []dnd5e.SkillID
	for id := range character.Skills {
		if _, ok := standard[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ids, extra...)
}

// ComputeSavingThrows returns each ability's save; the class's saving throw
// proficiencies add the proficiency bonus
func ComputeSavingThrows(character *dnd5e.Character, class *dnd5e.ClassDefinition) map[dnd5e.Ability]int {
	pb := ProficiencyBonus(character.Level)
	out := make(map[dnd5e.Ability]int, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		v := Modifier(character.AbilityScores.Get(a))
		if class != nil && class.HasSavingThrow(a) {
			v += pb
		}
		out[a] = v
	}
	return out
}
