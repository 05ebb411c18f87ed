package server

import (
	"context"
	"encoding/gob"
	"image/color"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeway/model"
	"github.com/zucenko/mazeway/nav"
	"github.com/zucenko/mazeway/solve"
)

func NewReplayServer() *ReplayServer {
	return &ReplayServer{
		Upgrader:  &websocket.Upgrader{},
		LoadLevel: Load,
	}
}

func (s *ReplayServer) HandleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleWatch - connection received.............................")

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleWatch websocket upgrade err %v", err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		defer con.Close()

		// first frame from the viewer picks the strategy
		_, reader, err := con.NextReader()
		if err != nil {
			log.Printf("HandleWatch err reading message from Conn %v", err)
			return
		}
		dec := gob.NewDecoder(reader)
		cm := &model.ClientMessage{}
		if err := dec.Decode(cm); err != nil {
			log.Warn("cant decode")
			return
		}
		strategy := solve.Strategy(cm.Strategy)
		if solve.New(strategy) == nil {
			log.Warnf("HandleWatch unknown strategy %d", cm.Strategy)
			return
		}
		log.Printf("HandleWatch strategy %s", strategy.Name())

		grid, err := s.LoadLevel()
		if err != nil {
			log.Errorf("ERR LOADING %v", err)
			return
		}

		rs := &ReplaySession{
			State:          RS_NEW,
			Conn:           con,
			MessagesToSend: make(chan model.ServerMessage, 16),
			WriterDone:     make(chan struct{}),
		}
		go rs.LoopChannelWrite()

		rs.Run(r.Context(), grid, strategy)

		close(rs.MessagesToSend)
		<-rs.WriterDone
		log.Printf("HandleWatch done, session %s", rs.State.Name())
	}
}

// Run replays the chosen strategy over the grid, streaming every committed
// step through MessagesToSend.
func (rs *ReplaySession) Run(ctx context.Context, grid *model.Grid, st solve.Strategy) {
	agent := model.NewAgent(model.Cell{Row: 1, Col: 1})
	surface := &wireSurface{session: rs, agent: agent}
	ctl := nav.NewController(grid, agent, surface)
	for _, tag := range []solve.Strategy{solve.ALG_DFS, solve.ALG_BFS, solve.ALG_DIJKSTRA, solve.ALG_ASTAR} {
		ctl.SetSolver(tag, solve.New(tag))
	}

	rs.send(model.ServerMessage{Setup: []model.Setup{{
		Rows:     grid.Rows(),
		Cols:     grid.Cols(),
		Cells:    grid.Codes(),
		Spawn:    ctl.Spawn,
		Strategy: int(st),
	}}})
	rs.State = RS_PLAY

	moved, err := ctl.MoveToGoal(ctx, st)
	result := model.Result{Strategy: int(st), Found: moved, Steps: surface.steps}
	if err != nil {
		result.Err = err.Error()
		rs.State = RS_ERR
	} else {
		rs.State = RS_OVER
	}
	rs.send(model.ServerMessage{Results: []model.Result{result}})
}

// send never blocks; a viewer that stopped draining loses messages.
func (rs *ReplaySession) send(mes model.ServerMessage) {
	select {
	case rs.MessagesToSend <- mes:
	default:
		log.Warnf("Dropping message, MessagesToSend FULL")
	}
}

// this function only consumes. no worries about full buffer stuck
func (rs *ReplaySession) LoopChannelWrite() {
	log.Printf("ReplaySession.LoopChannelWrite STARTED")
loop:
	for mes := range rs.MessagesToSend {
		w, err := rs.Conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Warnf("ReplaySession.LoopChannelWrite cant get writer %v", err)
			rs.State = RS_ERR
			break loop
		}
		enc := gob.NewEncoder(w)
		if err = enc.Encode(mes); err != nil {
			log.Warnf("ReplaySession.LoopChannelWrite cant encode %v", err)
			rs.State = RS_ERR
			break loop
		}
		if err = w.Close(); err != nil {
			log.Warnf("ReplaySession.LoopChannelWrite cant close writer %v", err)
			rs.State = RS_ERR
			break loop
		}
		rs.DebugOutMessages++
		rs.DebugLastMessage = time.Now()
	}
	close(rs.WriterDone)
	log.Printf("LoopChannelWrite ENDED")
}

// wireSurface turns replay drawing into Step messages. RedrawLevel resets
// the overlay, DrawRect collects it, Present ships the step.
type wireSurface struct {
	session *ReplaySession
	agent   *model.Agent
	overlay []model.Cell
	steps   int
}

func (ws *wireSurface) RedrawLevel() {
	ws.overlay = ws.overlay[:0]
}

func (ws *wireSurface) DrawRect(x, y, w, h int, clr color.Color) {
	ws.overlay = append(ws.overlay, model.Pixel{X: x, Y: y}.Cell())
}

func (ws *wireSurface) Present() {
	ws.steps++
	pos := ws.agent.Pixel()
	ws.session.send(model.ServerMessage{Steps: []model.Step{{
		X:         pos.X,
		Y:         pos.Y,
		Remaining: append([]model.Cell(nil), ws.overlay...),
	}}})
}

func (ws *wireSurface) Delay(d time.Duration) {
	time.Sleep(d)
}
