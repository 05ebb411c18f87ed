package nav

import (
	"context"
	"errors"
	"image/color"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeway/model"
	"github.com/zucenko/mazeway/solve"
)

var ErrNoSolver = errors.New("nav: solver not configured")
var ErrNoGoal = errors.New("nav: goal not found")

// PathColor paints the remaining-path overlay during replay.
var PathColor = color.RGBA{G: 255, A: 255}

// Direction is a single keyboard-driven move.
type Direction int

const (
	NONE Direction = iota
	UP
	DOWN
	LEFT
	RIGHT
)

func (d Direction) Name() string {
	switch d {
	case NONE:
		return "NONE"
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return "N/A"
	}
}

func (d Direction) delta() (dRow, dCol int) {
	switch d {
	case UP:
		return -1, 0
	case DOWN:
		return 1, 0
	case LEFT:
		return 0, -1
	case RIGHT:
		return 0, 1
	}
	return 0, 0
}

// Surface is the rendering capability handed to the controller. Replay
// calls it once per committed step; it is the only place the navigation
// core touches drawing or timing.
type Surface interface {
	RedrawLevel()
	DrawRect(x, y, w, h int, clr color.Color)
	Present()
	Delay(d time.Duration)
}

// Controller owns the agent and drives it across the grid, by single
// keyboard moves or by replaying a solver's path.
type Controller struct {
	Grid      *model.Grid
	Agent     *model.Agent
	Spawn     model.Cell
	StepDelay time.Duration

	surface Surface
	solvers map[solve.Strategy]solve.Solver
}

// NewController wires a controller to a grid, an agent and a surface.
// Spawn defaults to one tile in from the origin on both axes.
func NewController(grid *model.Grid, agent *model.Agent, surface Surface) *Controller {
	return &Controller{
		Grid:      grid,
		Agent:     agent,
		Spawn:     model.Cell{Row: 1, Col: 1},
		StepDelay: 100 * time.Millisecond,
		surface:   surface,
		solvers:   make(map[solve.Strategy]solve.Solver),
	}
}

// SetSolver binds a solver to a strategy slot. Solvers may be swapped at
// any time without touching the agent or the grid.
func (c *Controller) SetSolver(st solve.Strategy, s solve.Solver) {
	c.solvers[st] = s
}

// MoveByDirection consumes one directional input. The prospective cell and
// the cell re-derived from the prospective pixel position must both be
// walkable before anything mutates; a rejected move is routine collision
// handling, not an error.
func (c *Controller) MoveByDirection(d Direction) bool {
	if d == NONE {
		return false
	}
	dRow, dCol := d.delta()

	cur := c.Agent.Cell()
	nextCell := model.Cell{Row: cur.Row + dRow, Col: cur.Col + dCol}

	pos := c.Agent.Pixel()
	nextPixel := model.Pixel{X: pos.X + dCol*model.TileSize, Y: pos.Y + dRow*model.TileSize}

	if !c.Grid.Walkable(nextCell) || !c.Grid.Walkable(nextPixel.Cell()) {
		return false
	}
	c.Agent.MoveTo(nextPixel)
	return true
}

// MoveToGoal runs the chosen solver from the agent's current cell to the
// goal marker and replays the result. A missing solver or goal is reported
// and nothing moves; an unreachable goal is a normal negative outcome.
// ctx cancels the replay between steps.
func (c *Controller) MoveToGoal(ctx context.Context, st solve.Strategy) (bool, error) {
	solver, ok := c.solvers[st]
	if !ok || solver == nil {
		log.Warnf("MoveToGoal %s: solver not configured", st.Name())
		return false, ErrNoSolver
	}
	goal, ok := c.Grid.Goal()
	if !ok {
		log.Warnf("MoveToGoal %s: goal not found", st.Name())
		return false, ErrNoGoal
	}

	start := c.Agent.Cell()
	path, found := solver.Solve(c.Grid, start, goal)
	if !found {
		log.Infof("MoveToGoal %s: no path %v -> %v", st.Name(), start, goal)
		return false, nil
	}
	log.Infof("MoveToGoal %s: %d steps %v -> %v", st.Name(), len(path), start, goal)

	if err := c.followPath(ctx, path); err != nil {
		return false, err
	}
	return true, nil
}

// ResetPosition snaps the agent back to the spawn point.
func (c *Controller) ResetPosition() {
	c.Agent.MoveTo(c.Spawn.Pixel())
}
