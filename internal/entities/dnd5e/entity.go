package dnd5e

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeCharacter is the rpg-toolkit entity type of a character
const EntityTypeCharacter = "character"

// CharacterEntity wraps Character to implement core.Entity
type CharacterEntity struct {
	*Character
}

var _ core.Entity = (*CharacterEntity)(nil)

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// AsEntity wraps the character for rpg-toolkit APIs
func (c *Character) AsEntity() *CharacterEntity {
	return &CharacterEntity{Character: c}
}
