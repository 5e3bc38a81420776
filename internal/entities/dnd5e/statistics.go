package dnd5e

// ArmorClass is the result of an armor class calculation
type ArmorClass struct {
	Value                    int    `json:"value"`
	Breakdown                string `json:"breakdown"`
	StrengthRequirementUnmet bool   `json:"strength_requirement_unmet"`
	StealthDisadvantage      bool   `json:"stealth_disadvantage"`
	// ArmorID is the definition actually used, "none" after a fallback
	ArmorID  string   `json:"armor_id"`
	Warnings []string `json:"warnings,omitempty"`
}

// DerivedStatistics is the full set of values computed from a character.
// It is recomputed on every change and never persisted as a source of truth.
type DerivedStatistics struct {
	AbilityModifiers         map[Ability]int `json:"ability_modifiers"`
	ProficiencyBonus         int             `json:"proficiency_bonus"`
	ArmorClass               int             `json:"armor_class"`
	ArmorClassBreakdown      string          `json:"armor_class_breakdown"`
	StrengthRequirementUnmet bool            `json:"strength_requirement_unmet"`
	StealthDisadvantage      bool            `json:"stealth_disadvantage"`
	MaxHP                    int             `json:"max_hp"`
	HitPoints                HitPoints       `json:"hp"`
	HitDice                  string          `json:"hit_dice"`
	PassivePerception        int             `json:"passive_perception"`
	SkillModifiers           map[SkillID]int `json:"skill_modifiers"`
	SavingThrows             map[Ability]int `json:"saving_throws"`
	Initiative               int             `json:"initiative"`
	Speed                    int             `json:"speed"`
	// SpellSlots is indexed by spell level minus one; nil for non-casters
	SpellSlots []int    `json:"spell_slots,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}
