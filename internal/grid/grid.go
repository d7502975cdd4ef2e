package grid

import "strings"

// Coord addresses a cell by row and column. Lower columns hold
// more-significant place values.
type Coord struct {
	Row int
	Col int
}

// Cell is one position of the tableau.
type Cell struct {
	Row     int
	Col     int
	Content string
	Tags    Tag
}

// Coord returns the cell's coordinate.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Observer receives every cell mutation as it happens.
type Observer func(Cell)

// Grid is a sparse two-dimensional layout of cells. Absent coordinates
// render as blank. Cells are never removed once placed.
type Grid struct {
	cells    map[Coord]*Cell
	rows     int
	cols     int
	observer Observer
}

// New creates an empty Grid.
func New() *Grid {
	return &Grid{cells: make(map[Coord]*Cell)}
}

// Observe registers fn to be called after every mutation. A nil fn
// removes the observer.
func (g *Grid) Observe(fn Observer) {
	g.observer = fn
}

// Place writes content and tags at (row, col), overwriting any existing cell.
func (g *Grid) Place(row, col int, content string, tags ...Tag) Cell {
	var set Tag
	for _, t := range tags {
		set = set.With(t)
	}
	c := &Cell{Row: row, Col: col, Content: content, Tags: set}
	g.cells[Coord{row, col}] = c
	if row+1 > g.rows {
		g.rows = row + 1
	}
	if col+1 > g.cols {
		g.cols = col + 1
	}
	g.notify(c)
	return *c
}

// Get returns the cell at (row, col) and whether it exists.
func (g *Grid) Get(row, col int) (Cell, bool) {
	c, ok := g.cells[Coord{row, col}]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// Has reports whether a cell exists at (row, col).
func (g *Grid) Has(row, col int) bool {
	_, ok := g.cells[Coord{row, col}]
	return ok
}

// SetContent replaces the content of an existing cell, keeping its tags.
// Returns false if no cell exists at (row, col).
func (g *Grid) SetContent(row, col int, content string) bool {
	c, ok := g.cells[Coord{row, col}]
	if !ok {
		return false
	}
	c.Content = content
	g.notify(c)
	return true
}

// AddTag sets tag on the cell at (row, col). Returns false if absent.
func (g *Grid) AddTag(row, col int, tag Tag) bool {
	c, ok := g.cells[Coord{row, col}]
	if !ok {
		return false
	}
	c.Tags = c.Tags.With(tag)
	g.notify(c)
	return true
}

// RemoveTag clears tag on the cell at (row, col). Returns false if absent.
func (g *Grid) RemoveTag(row, col int, tag Tag) bool {
	c, ok := g.cells[Coord{row, col}]
	if !ok {
		return false
	}
	c.Tags = c.Tags.Without(tag)
	g.notify(c)
	return true
}

// Bounds returns one past the highest occupied row and column.
func (g *Grid) Bounds() (rows, cols int) {
	return g.rows, g.cols
}

// String renders the grid as plain text, two characters per column.
// A right border is drawn as "|" and bottom-bordered runs are underlined
// with "-" on the following line.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		var line, under strings.Builder
		bordered := false
		for col := 0; col < g.cols; col++ {
			c, ok := g.cells[Coord{row, col}]
			content := " "
			sep := " "
			bar := "  "
			if ok {
				if c.Content != "" {
					content = c.Content
				}
				if c.Tags.Has(TagBorderRight) {
					sep = "|"
				}
				if c.Tags.Has(TagBorderBottom) {
					bar = "--"
					bordered = true
				}
			}
			line.WriteString(content + sep)
			under.WriteString(bar)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
		if bordered {
			b.WriteString(strings.TrimRight(under.String(), " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (g *Grid) notify(c *Cell) {
	if g.observer != nil {
		g.observer(*c)
	}
}
