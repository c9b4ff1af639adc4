package main

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/KirkDiggler/rpg-mapgen/internal/entities"
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/terrain"
)

// Color modes accepted by --color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var kindStyles = map[entities.Kind]color.Style{
	entities.KindWall:       {color.FgGray},
	entities.KindFloor:      {color.FgDarkGray},
	entities.KindWater:      {color.FgBlue, color.OpBold},
	entities.KindTrees:      {color.FgGreen, color.OpBold},
	entities.KindGrass:      {color.FgGreen},
	entities.KindDirt:       {color.FgYellow},
	entities.KindUpstairs:   {color.FgCyan, color.OpBold},
	entities.KindDownstairs: {color.FgMagenta, color.OpBold},
	entities.KindPlayer:     {color.FgLightWhite, color.BgBlack, color.OpBold},
}

// renderer draws a level as glyph rows, one line per grid row
type renderer struct {
	colored bool
}

func newRenderer(mode string, out io.Writer) (*renderer, error) {
	switch mode {
	case ColorNever:
		return &renderer{}, nil
	case ColorAlways:
		color.ForceColor()
		return &renderer{colored: true}, nil
	case ColorAuto, "":
		return &renderer{colored: isTerminal(out)}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown color mode: %s", mode).
			WithMeta("color", mode)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// cellKinds resolves the top-most kind per cell: terrain first, then the
// stairs and player drawn over it
func cellKinds(grid *terrain.Grid, lvl *entities.Level) [][]entities.Kind {
	kinds := make([][]entities.Kind, grid.Height())
	for y := range kinds {
		kinds[y] = make([]entities.Kind, grid.Width())
	}
	grid.Each(func(x, y int, tile entities.TileKind) {
		kinds[y][x] = tile.Kind()
	})

	overlay := func(p *entities.Point, k entities.Kind) {
		if p != nil && grid.InBounds(p.X, p.Y) {
			kinds[p.Y][p.X] = k
		}
	}
	if lvl != nil {
		overlay(lvl.Upstairs, entities.KindUpstairs)
		overlay(lvl.Downstairs, entities.KindDownstairs)
		overlay(lvl.Player, entities.KindPlayer)
	}
	return kinds
}

// Render writes the map to w
func (r *renderer) Render(w io.Writer, grid *terrain.Grid, lvl *entities.Level) error {
	var sb strings.Builder
	for _, row := range cellKinds(grid, lvl) {
		for _, k := range row {
			glyph := string(k.Glyph())
			if style, ok := kindStyles[k]; ok && r.colored {
				glyph = style.Sprint(glyph)
			}
			sb.WriteString(glyph)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
