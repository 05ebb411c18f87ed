package nav

import (
	"context"
	"fmt"

	"github.com/zucenko/mazeway/model"
	"github.com/zucenko/mazeway/solve"
)

// followPath walks the agent along the path one tile-sized step at a time,
// x axis first, never diagonally. Every step re-derives the destination
// cell from the new pixel coordinates and is dropped if that cell is not
// walkable. Committed steps redraw the level, overlay the remaining path
// and pace through the surface delay.
//
// Each per-target loop is bounded by the Manhattan distance plus one;
// exceeding it means a step stayed blocked and the replay is reported as
// stalled instead of spinning.
func (c *Controller) followPath(ctx context.Context, path solve.Path) error {
	for i, target := range path {
		tp := target.Pixel()
		limit := solve.Manhattan(c.Agent.Cell(), target) + 1

		for iter := 0; c.Agent.Pixel() != tp; iter++ {
			if iter >= limit {
				return fmt.Errorf("nav: replay stalled before cell %v", target)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pos := c.Agent.Pixel()
			np := pos
			if np.X != tp.X {
				np.X += sign(tp.X-pos.X) * model.TileSize
			} else {
				np.Y += sign(tp.Y-pos.Y) * model.TileSize
			}
			if !c.Grid.Walkable(np.Cell()) {
				continue
			}

			c.Agent.MoveTo(np)
			c.surface.RedrawLevel()
			c.drawPath(path[i:])
			c.surface.Present()
			c.surface.Delay(c.StepDelay)
		}
	}
	return nil
}

func (c *Controller) drawPath(remaining solve.Path) {
	for _, cell := range remaining {
		p := cell.Pixel()
		c.surface.DrawRect(p.X, p.Y, model.TileSize, model.TileSize, PathColor)
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
