package main

import (
	"bytes"
	"context"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/zucenko/mazeway/model"
	"github.com/zucenko/mazeway/nav"
	"github.com/zucenko/mazeway/solve"
)

const (
	size = model.TileSize
)

var COLOR_BG = color.RGBA{70, 70, 70, 255}
var COLOR_WALL = color.RGBA{0x44, 0x44, 0x44, 0xff}
var COLOR_GOAL = color.RGBA{0xed, 0xbc, 0x1e, 0xff}
var COLOR_AGENT = color.RGBA{0xfa, 0x36, 0x36, 0xff}
var COLOR_PATH = color.RGBA{0x0a, 0xbd, 0x38, 0x90}

type GameState int

const (
	IDLE GameState = iota + 1
	ACTING
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case ACTING:
		return "ACTING"
	default:
		return "N/A"
	}
}

type Game struct {
	mu sync.Mutex

	State      GameState
	Grid       *model.Grid
	Agent      *model.Agent
	Controller *nav.Controller
	Strategy   solve.Strategy
	Tweens     map[*gween.Tween]Action

	// remaining-path overlay, written by the replay surface
	overlay []model.Cell

	// tweened draw position of the agent sprite
	drawX, drawY float64

	StrategyLabel *ebiten.Image
	cancel        context.CancelFunc
}

var theGame *Game

var screenWidth, screenHeight int
var Font font.Face

func init() {
	dat, err := ebitenutil.OpenFile("Teko-Light.ttf")
	if err == nil {
		buf := new(bytes.Buffer)
		buf.ReadFrom(dat)
		tt, ttErr := truetype.Parse(buf.Bytes())
		if ttErr != nil {
			log.Fatal(ttErr)
		}
		const dpi = 72
		Font = truetype.NewFace(tt, &truetype.Options{
			Size:       30,
			DPI:        dpi,
			SubPixelsX: 100,
			Hinting:    font.HintingFull,
		})
	}

	grid, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	screenWidth = grid.Cols() * size
	screenHeight = grid.Rows() * size

	agent := model.NewAgent(model.Cell{Row: 1, Col: 1})
	theGame = &Game{
		State:  IDLE,
		Grid:   grid,
		Agent:  agent,
		Tweens: make(map[*gween.Tween]Action),
		drawX:  float64(agent.Pixel().X),
		drawY:  float64(agent.Pixel().Y),
	}
	theGame.Controller = nav.NewController(grid, agent, theGame)
	for _, tag := range []solve.Strategy{solve.ALG_DFS, solve.ALG_BFS, solve.ALG_DIJKSTRA, solve.ALG_ASTAR} {
		theGame.Controller.SetSolver(tag, solve.New(tag))
	}
	theGame.StrategyLabel = prepareTextImage("ARROWS MOVE / 1-4 SOLVE / R RESET")
}

func prepareTextImage(s string) *ebiten.Image {
	image, _ := ebiten.NewImage(400, 50, ebiten.FilterLinear)
	if Font != nil {
		text.Draw(image, s, Font, 5, 35, color.White)
	}
	return image
}

// pressedDirection maps the key-state to a single directional input.
func pressedDirection() nav.Direction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		return nav.UP
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		return nav.DOWN
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return nav.LEFT
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return nav.RIGHT
	}
	return nav.NONE
}

// launch starts a solver replay on its own goroutine; the update loop keeps
// drawing while the controller paces through the path.
func (g *Game) launch(st solve.Strategy) {
	g.mu.Lock()
	if g.State != IDLE {
		g.mu.Unlock()
		return
	}
	g.State = ACTING
	g.Strategy = st
	g.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.StrategyLabel = prepareTextImage(st.Name())

	go func() {
		defer cancel()
		if _, err := g.Controller.MoveToGoal(ctx, st); err != nil {
			log.Printf("replay %s: %v", st.Name(), err)
		}
		g.mu.Lock()
		g.State = IDLE
		g.overlay = g.overlay[:0]
		g.mu.Unlock()
	}()
}

// animateAgent tweens the sprite from where it is drawn now to the agent's
// committed pixel position.
func (g *Game) animateAgent() {
	pos := g.Agent.Pixel()

	g.mu.Lock()
	defer g.mu.Unlock()
	fromX, fromY := g.drawX, g.drawY
	toX, toY := float64(pos.X), float64(pos.Y)

	t := gween.New(0, 1, 0.1, ease.Linear)
	a := Action{onChange: func(v float32) {
		g.drawX = fromX + (toX-fromX)*float64(v)
		g.drawY = fromY + (toY-fromY)*float64(v)
	}}
	a.addOnFinish(func() {
		g.drawX, g.drawY = toX, toY
	})
	g.Tweens[t] = a
}

// nav.Surface implementation: the replay goroutine records the overlay and
// schedules the sprite tween; actual drawing happens in update.

func (g *Game) RedrawLevel() {
	g.mu.Lock()
	g.overlay = g.overlay[:0]
	g.mu.Unlock()
}

func (g *Game) DrawRect(x, y, w, h int, clr color.Color) {
	g.mu.Lock()
	g.overlay = append(g.overlay, model.Pixel{X: x, Y: y}.Cell())
	g.mu.Unlock()
}

func (g *Game) Present() {
	g.animateAgent()
}

func (g *Game) Delay(d time.Duration) {
	time.Sleep(d)
}

func (g *Game) update(screen *ebiten.Image) error {
	// tween
	g.mu.Lock()
	for t, a := range g.Tweens {
		curr, finished := t.Update(0.02)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}
	state := g.State
	overlay := append([]model.Cell(nil), g.overlay...)
	g.mu.Unlock()

	if state == IDLE {
		if d := pressedDirection(); d != nav.NONE {
			if g.Controller.MoveByDirection(d) {
				g.animateAgent()
			}
		}
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			g.launch(solve.ALG_DFS)
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			g.launch(solve.ALG_BFS)
		case inpututil.IsKeyJustPressed(ebiten.Key3):
			g.launch(solve.ALG_DIJKSTRA)
		case inpututil.IsKeyJustPressed(ebiten.Key4):
			g.launch(solve.ALG_ASTAR)
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.Controller.ResetPosition()
			g.animateAgent()
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.cancel != nil {
		g.cancel()
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	e := screen.Fill(COLOR_BG)
	if e != nil {
		log.Printf("%v", e)
	}

	for r := 0; r < g.Grid.Rows(); r++ {
		for c := 0; c < g.Grid.Cols(); c++ {
			cell := model.Cell{Row: r, Col: c}
			p := cell.Pixel()
			switch g.Grid.At(cell) {
			case model.CellWall:
				ebitenutil.DrawRect(screen, float64(p.X), float64(p.Y), size, size, COLOR_WALL)
			case model.CellGoal:
				ebitenutil.DrawRect(screen, float64(p.X), float64(p.Y), size, size, COLOR_GOAL)
			}
		}
	}

	for _, cell := range overlay {
		p := cell.Pixel()
		ebitenutil.DrawRect(screen, float64(p.X), float64(p.Y), size, size, COLOR_PATH)
	}

	ebitenutil.DrawRect(screen, g.drawX+4, g.drawY+4, size-8, size-8, COLOR_AGENT)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(5, 0)
	screen.DrawImage(g.StrategyLabel, op)

	ebitenutil.DebugPrintAt(screen, state.Name(), screenWidth-60, 0)

	return nil
}

func main() {
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "Mazeway"); err != nil {
		log.Fatal(err)
	}
}
