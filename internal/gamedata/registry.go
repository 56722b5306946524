package gamedata

import "errors"

// CharacterRegistry holds loaded character definitions keyed by id.
type CharacterRegistry struct {
	characters map[string]*CharacterDef
	all        []CharacterDef
}

// NewCharacterRegistry creates a registry from loaded character definitions.
func NewCharacterRegistry(characters []CharacterDef) *CharacterRegistry {
	registry := &CharacterRegistry{
		characters: make(map[string]*CharacterDef),
		all:        characters,
	}
	for i := range characters {
		registry.characters[characters[i].ID] = &characters[i]
	}
	return registry
}

// LoadCharacterRegistry loads and creates a registry from the embedded characters.json.
func LoadCharacterRegistry() (*CharacterRegistry, error) {
	characters, err := LoadCharacters()
	if err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		return nil, errors.New("no characters loaded from characters.json")
	}
	return NewCharacterRegistry(characters), nil
}

// MustLoadCharacterRegistry loads a registry, panicking on error.
func MustLoadCharacterRegistry() *CharacterRegistry {
	registry, err := LoadCharacterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the character definition with the given ID, or nil if not found.
func (r *CharacterRegistry) GetByID(id string) *CharacterDef {
	return r.characters[id]
}

// All returns all character definitions.
func (r *CharacterRegistry) All() []CharacterDef {
	return r.all
}

// Count returns the number of characters in the registry.
func (r *CharacterRegistry) Count() int {
	return len(r.all)
}
