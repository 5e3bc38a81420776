package dnd5e

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DexBonusUnlimited marks armor that adds the full dexterity modifier
const DexBonusUnlimited MaxDexBonus = -1

const unlimitedLiteral = "unlimited"

// MaxDexBonus caps the dexterity modifier an armor allows.
// Encoded as an integer or the literal "unlimited".
type MaxDexBonus int

// Unlimited reports whether the armor adds the full dexterity modifier
func (m MaxDexBonus) Unlimited() bool {
	return m == DexBonusUnlimited
}

// Cap returns the cap as a non-negative int; any negative value other than
// the unlimited sentinel is read as 0
func (m MaxDexBonus) Cap() int {
	if m < 0 {
		return 0
	}
	return int(m)
}

func (m MaxDexBonus) String() string {
	if m.Unlimited() {
		return unlimitedLiteral
	}
	return strconv.Itoa(m.Cap())
}

func parseMaxDexBonus(s string) (MaxDexBonus, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, unlimitedLiteral) || s == "" {
		return DexBonusUnlimited, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("max dex bonus must be an integer or %q, got %q", unlimitedLiteral, s)
	}
	if n < 0 {
		n = 0
	}
	return MaxDexBonus(n), nil
}

// MarshalJSON writes "unlimited" or the numeric cap
func (m MaxDexBonus) MarshalJSON() ([]byte, error) {
	if m.Unlimited() {
		return json.Marshal(unlimitedLiteral)
	}
	return json.Marshal(m.Cap())
}

// UnmarshalJSON accepts a number or "unlimited"
func (m *MaxDexBonus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := parseMaxDexBonus(s)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}
	if string(data) == "null" {
		*m = DexBonusUnlimited
		return nil
	}
	v, err := parseMaxDexBonus(string(data))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnmarshalYAML accepts a number or "unlimited"
func (m *MaxDexBonus) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: max dex bonus must be a scalar", node.Line)
	}
	v, err := parseMaxDexBonus(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = v
	return nil
}

// MarshalYAML writes "unlimited" or the numeric cap
func (m MaxDexBonus) MarshalYAML() (interface{}, error) {
	if m.Unlimited() {
		return unlimitedLiteral, nil
	}
	return m.Cap(), nil
}

// ArmorTypeDefinition is reference data for one armor type
type ArmorTypeDefinition struct {
	ID                  string        `json:"id" yaml:"id"`
	Name                string        `json:"name" yaml:"name"`
	BaseAC              int           `json:"base_ac" yaml:"base_ac"`
	MaxDexBonus         MaxDexBonus   `json:"max_dex_bonus" yaml:"max_dex_bonus"`
	StrengthRequirement int           `json:"strength_requirement,omitempty" yaml:"strength_requirement,omitempty"`
	StealthDisadvantage bool          `json:"stealth_disadvantage" yaml:"stealth_disadvantage"`
	Category            ArmorCategory `json:"category" yaml:"category"`
}

// UnarmoredDefinition is used whenever an armor type cannot be resolved
var UnarmoredDefinition = ArmorTypeDefinition{
	ID:          ArmorTypeNone,
	Name:        "Unarmored",
	BaseAC:      10,
	MaxDexBonus: DexBonusUnlimited,
	Category:    ArmorCategoryNone,
}

// ClassDefinition is reference data for one class
type ClassDefinition struct {
	ID                         string          `json:"id" yaml:"id"`
	Name                       string          `json:"name" yaml:"name"`
	HitDie                     HitDie          `json:"hit_die" yaml:"hit_die"`
	Spellcasting               bool            `json:"spellcasting" yaml:"spellcasting"`
	ArmorProficiencyCategories []ArmorCategory `json:"armor_proficiency_categories" yaml:"armor_proficiency_categories"`
	PrimaryAbilities           []Ability       `json:"primary_abilities" yaml:"primary_abilities"`
	SavingThrows               []Ability       `json:"saving_throws" yaml:"saving_throws"`
}

// ProficientWithArmor reports whether the class is trained in the given category.
// Unarmored is always allowed.
func (c *ClassDefinition) ProficientWithArmor(category ArmorCategory) bool {
	if category == ArmorCategoryNone || category == "" {
		return true
	}
	for _, p := range c.ArmorProficiencyCategories {
		if p == category {
			return true
		}
	}
	return false
}

// HasSavingThrow reports whether the class grants proficiency in the ability's save
func (c *ClassDefinition) HasSavingThrow(ability Ability) bool {
	for _, a := range c.SavingThrows {
		if a == ability {
			return true
		}
	}
	return false
}

// SkillDefinition is reference data for one skill
type SkillDefinition struct {
	ID               SkillID `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	GoverningAbility Ability `json:"governing_ability" yaml:"governing_ability"`
}

// RaceDefinition is reference data for one race
type RaceDefinition struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Speed int    `json:"speed" yaml:"speed"`
}
