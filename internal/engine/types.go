package engine

import "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"

// ArmorCatalog resolves armor type definitions
type ArmorCatalog interface {
	Armor(id string) (dnd5e.ArmorTypeDefinition, bool)
}

// ClassCatalog resolves class definitions
type ClassCatalog interface {
	Class(id string) (dnd5e.ClassDefinition, bool)
}

// SkillCatalog resolves skill definitions
type SkillCatalog interface {
	Skill(id dnd5e.SkillID) (dnd5e.SkillDefinition, bool)
}

// RaceCatalog resolves race definitions
type RaceCatalog interface {
	Race(id string) (dnd5e.RaceDefinition, bool)
}

// Catalogs is the read-only reference data the engine consumes.
// Implementations must be safe for concurrent reads.
type Catalogs interface {
	ArmorCatalog
	ClassCatalog
	SkillCatalog
	RaceCatalog
}
