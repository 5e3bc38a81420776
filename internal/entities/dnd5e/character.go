// Package dnd5e implements the D&D 5e entities
package dnd5e

// AbilityScores maps each ability to its score
type AbilityScores map[Ability]int

// Get returns the score for an ability, or the default score when absent
func (a AbilityScores) Get(ability Ability) int {
	if v, ok := a[ability]; ok {
		return v
	}
	return DefaultAbilityScore
}

// Clone returns an independent copy
func (a AbilityScores) Clone() AbilityScores {
	out := make(AbilityScores, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Armor is what a character is wearing
type Armor struct {
	Type   string `json:"type"`
	Shield bool   `json:"shield"`
}

// ProficiencyState is the training level of a skill
type ProficiencyState string

// Proficiency states
const (
	ProficiencyNone       ProficiencyState = "none"
	ProficiencyProficient ProficiencyState = "proficient"
	ProficiencyExpertise  ProficiencyState = "expertise"
)

// SkillProficiency is a character's training in one skill plus any flat bonus
type SkillProficiency struct {
	Proficient bool `json:"proficient"`
	Expertise  bool `json:"expertise"`
	Bonus      int  `json:"bonus"`
}

// State collapses the two flags into a single state. Expertise wins even when
// Proficient is unset.
func (s SkillProficiency) State() ProficiencyState {
	switch {
	case s.Expertise:
		return ProficiencyExpertise
	case s.Proficient:
		return ProficiencyProficient
	default:
		return ProficiencyNone
	}
}

// Inconsistent reports the expertise-without-proficiency combination
func (s SkillProficiency) Inconsistent() bool {
	return s.Expertise && !s.Proficient
}

// Character represents a normalized D&D 5e character.
// NOTE: This is a data-only struct. Derived values (AC, max HP, skill
// modifiers, ...) are produced by the engine and never stored here.
type Character struct {
	ID            string                       `json:"id"`
	PlayerID      string                       `json:"player_id,omitempty"`
	Name          string                       `json:"name"`
	Level         int                          `json:"level"`
	ClassID       string                       `json:"class"`
	RaceID        string                       `json:"race"`
	AbilityScores AbilityScores                `json:"ability_scores"`
	Armor         Armor                        `json:"armor"`
	HitPoints     HitPoints                    `json:"hp"`
	Skills        map[SkillID]SkillProficiency `json:"skills"`
	CreatedAt     int64                        `json:"created_at,omitempty"`
	UpdatedAt     int64                        `json:"updated_at,omitempty"`
}

// Clone returns a deep copy so callers can edit without touching a shared snapshot
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.AbilityScores = c.AbilityScores.Clone()
	out.Skills = make(map[SkillID]SkillProficiency, len(c.Skills))
	for k, v := range c.Skills {
		out.Skills[k] = v
	}
	return &out
}

// Skill returns the proficiency record for a skill, zero value when absent
func (c *Character) Skill(id SkillID) SkillProficiency {
	return c.Skills[id]
}

// PartialCharacter is a character record as it arrives from storage or a
// client: any field may be missing, and numeric fields may hold strings,
// floats or garbage. Numeric fields are decoded as interface{} for that reason.
type PartialCharacter struct {
	ID            string                   `json:"id,omitempty"`
	PlayerID      string                   `json:"player_id,omitempty"`
	Name          string                   `json:"name,omitempty"`
	Level         interface{}              `json:"level,omitempty"`
	ClassID       string                   `json:"class,omitempty"`
	RaceID        string                   `json:"race,omitempty"`
	AbilityScores map[string]interface{}   `json:"ability_scores,omitempty"`
	Armor         *PartialArmor            `json:"armor,omitempty"`
	HitPoints     *PartialHitPoints        `json:"hp,omitempty"`
	Skills        map[string]*PartialSkill `json:"skills,omitempty"`
	CreatedAt     int64                    `json:"created_at,omitempty"`
	UpdatedAt     int64                    `json:"updated_at,omitempty"`
}

// PartialArmor is the loose form of Armor
type PartialArmor struct {
	Type   string      `json:"type,omitempty"`
	Shield interface{} `json:"shield,omitempty"`
}

// PartialHitPoints is the loose form of HitPoints
type PartialHitPoints struct {
	Max     interface{} `json:"max,omitempty"`
	Current interface{} `json:"current,omitempty"`
	Temp    interface{} `json:"temp,omitempty"`
	HitDie  string      `json:"hit_die,omitempty"`
}

// PartialSkill is the loose form of SkillProficiency
type PartialSkill struct {
	Proficient interface{} `json:"proficient,omitempty"`
	Expertise  interface{} `json:"expertise,omitempty"`
	Bonus      interface{} `json:"bonus,omitempty"`
}

// ToPartial converts a normalized character back into its storable loose form
func (c *Character) ToPartial() *PartialCharacter {
	scores := make(map[string]interface{}, len(c.AbilityScores))
	for k, v := range c.AbilityScores {
		scores[string(k)] = v
	}
	skills := make(map[string]*PartialSkill, len(c.Skills))
	for k, v := range c.Skills {
		skills[string(k)] = &PartialSkill{
			Proficient: v.Proficient,
			Expertise:  v.Expertise,
			Bonus:      v.Bonus,
		}
	}
	return &PartialCharacter{
		ID:            c.ID,
		PlayerID:      c.PlayerID,
		Name:          c.Name,
		Level:         c.Level,
		ClassID:       c.ClassID,
		RaceID:        c.RaceID,
		AbilityScores: scores,
		Armor:         &PartialArmor{Type: c.Armor.Type, Shield: c.Armor.Shield},
		HitPoints: &PartialHitPoints{
			Max:     c.HitPoints.Max,
			Current: c.HitPoints.Current,
			Temp:    c.HitPoints.Temp,
			HitDie:  string(c.HitPoints.HitDie),
		},
		Skills:    skills,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
