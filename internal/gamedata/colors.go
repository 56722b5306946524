package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PaletteFile represents the structure of palette.json. Colors are indexed by
// the draw color the renderer selects.
type PaletteFile struct {
	Colors []string `json:"colors"`
}

// LoadPalette loads the embedded palette as tcell colors.
func LoadPalette() ([]tcell.Color, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	colors := make([]tcell.Color, 0, len(file.Colors))
	for i, hex := range file.Colors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(v)), nil
}
