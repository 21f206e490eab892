package mapview

import (
	"math"
	"sort"

	"github.com/custodia-labs/seamap/internal/core/domain"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Smallest span used when the view collapses to a point, in projected units.
const minSpan = 1e-4

// maxLat is the Web Mercator latitude limit.
const maxLat = 85.05112878

// Cell is one drawn marker.
type Cell struct {
	Col, Row   int
	Glyph      rune
	Initiative *domain.Initiative
}

// Render draws the canvas onto width x height cells and returns the rows.
// Unselected markers are drawn first, then selected ones, then anything with
// a positive z-index offset, so later glyphs cover earlier ones.
func (c *Canvas) Render(width, height int) []string {
	grid := make([][]rune, max(height, 0))
	for r := range grid {
		grid[r] = make([]rune, max(width, 0))
		for col := range grid[r] {
			grid[r][col] = GlyphEmpty
		}
	}
	for _, cell := range c.Cells(width, height) {
		grid[cell.Row][cell.Col] = cell.Glyph
	}

	rows := make([]string, len(grid))
	for r, line := range grid {
		rows[r] = string(line)
	}
	return rows
}

// Cells projects every layered marker that falls inside width x height, in
// draw order.
func (c *Canvas) Cells(width, height int) []Cell {
	if width <= 0 || height <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	type drawn struct {
		m     *Marker
		glyph rune
		rank  int
	}
	var items []drawn
	for _, m := range c.order {
		switch {
		case c.selected.members[m]:
			items = append(items, drawn{m: m, glyph: GlyphSelected, rank: 1})
		case c.unselected.members[m]:
			items = append(items, drawn{m: m, glyph: GlyphUnselected, rank: 0})
		}
	}
	if len(items) == 0 {
		return nil
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].m.zOffset != items[j].m.zOffset {
			return items[i].m.zOffset < items[j].m.zOffset
		}
		return items[i].rank < items[j].rank
	})

	fit := c.view
	if !c.hasView {
		initiatives := make([]*domain.Initiative, len(items))
		for i, it := range items {
			initiatives[i] = it.m.initiative
		}
		fit.Bounds, _ = domain.BoundsOf(initiatives)
		fit.Padding = domain.Padding{}
	}
	proj := newProjection(fit, width, height)

	cells := make([]Cell, 0, len(items))
	for _, it := range items {
		col, row := proj.project(it.m.initiative.Lat, it.m.initiative.Lng)
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}
		cells = append(cells, Cell{Col: col, Row: row, Glyph: it.glyph, Initiative: it.m.initiative})
	}
	return cells
}

// projection maps lat/lng to cells with a uniform scale so the fitted bounds
// sit centred in the area left inside the padding.
type projection struct {
	centreX, centreY float64
	cx, cy           float64
	rowsPerUnit      float64
}

func newProjection(fit domain.FitBounds, width, height int) projection {
	x0 := float64(fit.Padding.TopLeft.X)
	y0 := float64(fit.Padding.TopLeft.Y)
	x1 := float64(width - 1 - fit.Padding.BottomRight.X)
	y1 := float64(height - 1 - fit.Padding.BottomRight.Y)
	if x1 < x0 {
		x0, x1 = 0, float64(width-1)
	}
	if y1 < y0 {
		y0, y1 = 0, float64(height-1)
	}

	minX, maxY := mercator(fit.Bounds.MaxLat, fit.Bounds.MinLng)
	maxX, minY := mercator(fit.Bounds.MinLat, fit.Bounds.MaxLng)
	spanX := math.Max(maxX-minX, minSpan)
	spanY := math.Max(maxY-minY, minSpan)

	rowsPerUnit := math.Min((x1-x0)/(cellAspect*spanX), (y1-y0)/spanY)
	if rowsPerUnit <= 0 || math.IsInf(rowsPerUnit, 0) || math.IsNaN(rowsPerUnit) {
		rowsPerUnit = 1
	}

	return projection{
		centreX:     (minX + maxX) / 2,
		centreY:     (minY + maxY) / 2,
		cx:          (x0 + x1) / 2,
		cy:          (y0 + y1) / 2,
		rowsPerUnit: rowsPerUnit,
	}
}

func (p projection) project(lat, lng float64) (col, row int) {
	x, y := mercator(lat, lng)
	col = int(math.Round(p.cx + (x-p.centreX)*p.rowsPerUnit*cellAspect))
	row = int(math.Round(p.cy - (y-p.centreY)*p.rowsPerUnit))
	return col, row
}

// mercator converts degrees to Web Mercator units on the unit sphere.
func mercator(lat, lng float64) (x, y float64) {
	lat = math.Max(-maxLat, math.Min(maxLat, lat))
	x = lng * math.Pi / 180
	y = math.Log(math.Tan(math.Pi/4 + lat*math.Pi/360))
	return x, y
}
