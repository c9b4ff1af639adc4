package terrain

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
)

type gridJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// MarshalJSON encodes the grid as glyph rows
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{
		Width:  g.width,
		Height: g.height,
		Rows:   g.Rows(),
	})
}

// UnmarshalJSON decodes glyph rows written by MarshalJSON
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to decode grid")
	}

	parsed, err := Parse(raw.Rows)
	if err != nil {
		return err
	}
	if parsed.width != raw.Width || parsed.height != raw.Height {
		return errors.InvalidArgumentf("grid rows are %dx%d but header says %dx%d",
			parsed.width, parsed.height, raw.Width, raw.Height)
	}

	*g = *parsed
	return nil
}

// Parse builds a grid from glyph rows. Every row must have the same length
// and contain only known glyphs.
func Parse(rows []string) (*Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = utf8.RuneCountInString(rows[0])
	}

	g := New(width, height, entities.TileFloor)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, errors.InvalidArgumentf("row %d has %d cells, expected %d", y, n, width).
				WithMeta("row", y)
		}
		x := 0
		for _, r := range row {
			kind, ok := entities.TileFromGlyph(r)
			if !ok {
				return nil, errors.InvalidArgumentf("unknown glyph %q at (%d,%d)", r, x, y).
					WithMeta("row", y)
			}
			g.Set(x, y, kind)
			x++
		}
	}
	return g, nil
}

// MustParse is Parse for fixtures; it panics on malformed rows
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}
