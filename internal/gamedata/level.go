package gamedata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/chunkrun/internal/world"
)

// ErrBadLevel is returned for level data that cannot be turned into chunks.
var ErrBadLevel = errors.New("bad level data")

// Tile letters used in level rows.
const (
	glyphEmpty = '.'
	glyphSolid = '#'
	glyphJoint = '+'
	glyphBrick = 'b'
)

// ChunkDef is one chunk of a level. Rows are listed top row first and each
// row holds one letter per tile.
type ChunkDef struct {
	X      int      `json:"x"`      // Tile x of the chunk's top-left corner
	Y      int      `json:"y"`      // Tile y of the chunk's top-left corner
	Width  int      `json:"width"`  // Width in tiles
	Height int      `json:"height"` // Height in tiles
	Rows   []string `json:"rows"`   // Tile letters, len(Rows) == Height
}

// SpawnDef places a player slot or NPC at a pixel position.
type SpawnDef struct {
	Character string  `json:"character"`        // Character id from characters.json
	X         float64 `json:"x"`                // Pixel x
	Y         float64 `json:"y"`                // Pixel y
	Facing    string  `json:"facing,omitempty"` // "left" or "right"
}

// LevelDef is the structure of level.json.
type LevelDef struct {
	Name    string     `json:"name"`
	Budget  int        `json:"budget,omitempty"` // World tile budget, 0 for the default
	Chunks  []ChunkDef `json:"chunks"`
	Players []SpawnDef `json:"players"`
	NPCs    []SpawnDef `json:"npcs"`
}

// LoadLevel loads the embedded level.json.
func LoadLevel() (*LevelDef, error) {
	return LoadLevelFrom(dataFS)
}

// LoadLevelFrom loads level.json from fsys.
func LoadLevelFrom(fsys fs.FS) (*LevelDef, error) {
	level, err := LoadFrom[LevelDef](fsys, "level.json")
	if err != nil {
		return nil, err
	}
	if len(level.Chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks in level.json", ErrBadLevel)
	}
	return &level, nil
}

// ChunkSpecs converts the level's chunks into world chunk specs.
func (l *LevelDef) ChunkSpecs() ([]world.ChunkSpec, error) {
	specs := make([]world.ChunkSpec, 0, len(l.Chunks))
	for i, c := range l.Chunks {
		tiles, err := ParseRows(c.Rows, c.Width, c.Height)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		specs = append(specs, world.ChunkSpec{
			Bound: world.TileBound{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height},
			Tiles: tiles,
		})
	}
	return specs, nil
}

// ParseRows converts tile letters into a row-major tile buffer.
func ParseRows(rows []string, width, height int) ([]world.Tile, error) {
	if len(rows) != height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadLevel, len(rows), height)
	}
	tiles := make([]world.Tile, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrBadLevel, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			t, ok := tileForGlyph(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrBadLevel, row[x], x, y)
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}

func tileForGlyph(c byte) (world.Tile, bool) {
	switch c {
	case glyphEmpty:
		return world.TileEmpty, true
	case glyphSolid:
		return world.TileSolid, true
	case glyphJoint:
		return world.TileJoint, true
	case glyphBrick:
		return world.TileBrick, true
	default:
		return world.TileEmpty, false
	}
}
