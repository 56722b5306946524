package gamedata

import "github.com/samdwyer/chunkrun/internal/world"

// FrameDef is the pixel size of one sprite frame.
type FrameDef struct {
	W int `json:"w"`
	H int `json:"h"`
}

// CharacterDef defines a character loaded from JSON.
type CharacterDef struct {
	ID      string              `json:"id"`      // Unique identifier (e.g., "hero")
	Name    string              `json:"name"`    // Display name
	Glyph   string              `json:"glyph"`   // Single character for rendering
	Color   uint8               `json:"color"`   // Palette index used to draw the character
	MaxVelX float64             `json:"maxVelX"` // Horizontal speed cap, pixels per frame
	MaxVelY float64             `json:"maxVelY"` // Vertical speed cap, pixels per frame
	Frames  map[string]FrameDef `json:"frames"`  // Frame size per movement state name
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CharacterDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// Frame returns the frame size for a movement state, falling back to the
// "idle" frame and then to one tile.
func (c *CharacterDef) Frame(state string) FrameDef {
	if f, ok := c.Frames[state]; ok && f.W > 0 && f.H > 0 {
		return f
	}
	if f, ok := c.Frames["idle"]; ok && f.W > 0 && f.H > 0 {
		return f
	}
	return FrameDef{W: world.TileWidth, H: world.TileHeight}
}

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Characters []CharacterDef `json:"characters"`
}

// LoadCharacters loads character definitions from the embedded characters.json file.
func LoadCharacters() ([]CharacterDef, error) {
	file, err := Load[CharactersFile]("characters.json")
	if err != nil {
		return nil, err
	}
	return file.Characters, nil
}
