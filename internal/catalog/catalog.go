// Package catalog holds the read-only reference tables (armor, classes,
// skills, races) the rules engine looks definitions up in. Every table
// falls back to a built-in copy of the SRD data when its source is empty.
package catalog

import (
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// Table names
const (
	TableArmor   = "armor"
	TableClasses = "classes"
	TableSkills  = "skills"
	TableRaces   = "races"
)

// Tables is raw reference data as produced by a Loader
type Tables struct {
	Armor   []dnd5e.ArmorTypeDefinition `yaml:"armor"`
	Classes []dnd5e.ClassDefinition     `yaml:"classes"`
	Skills  []dnd5e.SkillDefinition     `yaml:"skills"`
	Races   []dnd5e.RaceDefinition      `yaml:"races"`
}

// Catalogs is an immutable, indexed set of reference tables. Lookups are
// case-insensitive and consult the built-in tables for ids the loaded
// source does not carry. Safe for concurrent use.
type Catalogs struct {
	armor   map[string]dnd5e.ArmorTypeDefinition
	classes map[string]dnd5e.ClassDefinition
	skills  map[dnd5e.SkillID]dnd5e.SkillDefinition
	races   map[string]dnd5e.RaceDefinition

	fallbacks []string
	builtin   *Catalogs
}

// New indexes the given tables. Any empty table is replaced by its built-in
// counterpart and reported by FallbackTables.
func New(tables *Tables) *Catalogs {
	if tables == nil {
		tables = &Tables{}
	}
	builtin := Builtin()
	c := &Catalogs{builtin: builtin}

	if len(tables.Armor) == 0 {
		c.armor = builtin.armor
		c.fallbacks = append(c.fallbacks, TableArmor)
	} else {
		c.armor = indexArmor(tables.Armor)
	}
	if len(tables.Classes) == 0 {
		c.classes = builtin.classes
		c.fallbacks = append(c.fallbacks, TableClasses)
	} else {
		c.classes = indexClasses(tables.Classes)
	}
	if len(tables.Skills) == 0 {
		c.skills = builtin.skills
		c.fallbacks = append(c.fallbacks, TableSkills)
	} else {
		c.skills = indexSkills(tables.Skills)
	}
	if len(tables.Races) == 0 {
		c.races = builtin.races
		c.fallbacks = append(c.fallbacks, TableRaces)
	} else {
		c.races = indexRaces(tables.Races)
	}

	return c
}

// FallbackTables lists the tables that are served from built-in data
func (c *Catalogs) FallbackTables() []string {
	return append([]string(nil), c.fallbacks...)
}

// Armor resolves an armor id. "leather" also matches "leather-armor".
func (c *Catalogs) Armor(id string) (dnd5e.ArmorTypeDefinition, bool) {
	key := normalizeKey(id)
	for _, candidate := range []string{key, key + "-armor"} {
		if def, ok := c.armor[candidate]; ok {
			return def, true
		}
	}
	if c.builtin != nil {
		return c.builtin.Armor(id)
	}
	return dnd5e.ArmorTypeDefinition{}, false
}

// Class resolves a class id
func (c *Catalogs) Class(id string) (dnd5e.ClassDefinition, bool) {
	if def, ok := c.classes[normalizeKey(id)]; ok {
		return def, true
	}
	if c.builtin != nil {
		return c.builtin.Class(id)
	}
	return dnd5e.ClassDefinition{}, false
}

// Skill resolves a skill id
func (c *Catalogs) Skill(id dnd5e.SkillID) (dnd5e.SkillDefinition, bool) {
	if def, ok := c.skills[dnd5e.SkillID(normalizeKey(string(id)))]; ok {
		return def, true
	}
	if c.builtin != nil {
		return c.builtin.Skill(id)
	}
	return dnd5e.SkillDefinition{}, false
}

// Race resolves a race id
func (c *Catalogs) Race(id string) (dnd5e.RaceDefinition, bool) {
	if def, ok := c.races[normalizeKey(id)]; ok {
		return def, true
	}
	if c.builtin != nil {
		return c.builtin.Race(id)
	}
	return dnd5e.RaceDefinition{}, false
}

// ListArmor returns every armor definition in id order
func (c *Catalogs) ListArmor() []dnd5e.ArmorTypeDefinition {
	return sortedValues(c.armor)
}

// ListClasses returns every class definition in id order
func (c *Catalogs) ListClasses() []dnd5e.ClassDefinition {
	return sortedValues(c.classes)
}

// ListSkills returns every skill definition in id order
func (c *Catalogs) ListSkills() []dnd5e.SkillDefinition {
	return sortedValues(c.skills)
}

// ListRaces returns every race definition in id order
func (c *Catalogs) ListRaces() []dnd5e.RaceDefinition {
	return sortedValues(c.races)
}

func indexArmor(defs []dnd5e.ArmorTypeDefinition) map[string]dnd5e.ArmorTypeDefinition {
	out := make(map[string]dnd5e.ArmorTypeDefinition, len(defs))
	for _, d := range defs {
		d.ID = normalizeKey(d.ID)
		if d.ID == "" {
			continue
		}
		if d.Category == "" {
			d.Category = dnd5e.ArmorCategoryLight
		}
		if d.Name == "" {
			d.Name = d.ID
		}
		out[d.ID] = d
	}
	return out
}

func indexClasses(defs []dnd5e.ClassDefinition) map[string]dnd5e.ClassDefinition {
	out := make(map[string]dnd5e.ClassDefinition, len(defs))
	for _, d := range defs {
		d.ID = normalizeKey(d.ID)
		if d.ID == "" {
			continue
		}
		if d.Name == "" {
			d.Name = d.ID
		}
		out[d.ID] = d
	}
	return out
}

func indexSkills(defs []dnd5e.SkillDefinition) map[dnd5e.SkillID]dnd5e.SkillDefinition {
	out := make(map[dnd5e.SkillID]dnd5e.SkillDefinition, len(defs))
	for _, d := range defs {
		d.ID = dnd5e.SkillID(normalizeKey(string(d.ID)))
		if d.ID == "" {
			continue
		}
		out[d.ID] = d
	}
	return out
}

func indexRaces(defs []dnd5e.RaceDefinition) map[string]dnd5e.RaceDefinition {
	out := make(map[string]dnd5e.RaceDefinition, len(defs))
	for _, d := range defs {
		d.ID = normalizeKey(d.ID)
		if d.ID == "" {
			continue
		}
		out[d.ID] = d
	}
	return out
}

func normalizeKey(s string) string {
	return dnd5e.NormalizeID(s)
}
