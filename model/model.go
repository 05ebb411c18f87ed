package model

// Cell codes as stored in level grids.
const (
	CellOpen = 0
	CellWall = 1
	CellGoal = 3
)

// TileSize is the pixel-to-cell scale factor. Cell and pixel coordinates
// are only ever converted through it.
const TileSize = 50

// Cell is a grid position, indexed [row][col].
type Cell struct {
	Row, Col int
}

// Pixel is a screen position. X grows with columns, Y with rows.
type Pixel struct {
	X, Y int
}

// Pixel converts the cell to its top-left pixel position.
func (c Cell) Pixel() Pixel {
	return Pixel{X: c.Col * TileSize, Y: c.Row * TileSize}
}

// Cell converts the pixel position back to the containing grid cell.
func (p Pixel) Cell() Cell {
	return Cell{Row: p.Y / TileSize, Col: p.X / TileSize}
}

// Agent is the moving entity. The pixel position is the only authoritative
// state; the cell view is derived from it on demand, so the two cannot
// drift apart.
type Agent struct {
	pos Pixel
}

// NewAgent places an agent at the given spawn cell.
func NewAgent(spawn Cell) *Agent {
	return &Agent{pos: spawn.Pixel()}
}

// Pixel returns the current pixel position.
func (a *Agent) Pixel() Pixel {
	return a.pos
}

// Cell returns the grid cell the agent currently occupies.
func (a *Agent) Cell() Cell {
	return a.pos.Cell()
}

// MoveTo commits a new pixel position. Validation is the caller's job.
func (a *Agent) MoveTo(p Pixel) {
	a.pos = p
}
