package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/mazeway/model"
)

// ReplayServer streams solver replays to websocket viewers. One session
// per connection; the viewer picks the strategy, the server runs it over
// the level and broadcasts every committed step.
type ReplayServer struct {
	Upgrader  *websocket.Upgrader
	LoadLevel func() (*model.Grid, error)
}

type ReplaySessionState int

const (
	RS_NEW ReplaySessionState = iota + 1
	RS_PLAY
	RS_OVER
	RS_ERR
)

type ReplaySession struct {
	State ReplaySessionState
	Conn  *websocket.Conn

	MessagesToSend chan model.ServerMessage
	WriterDone     chan struct{}

	DebugOutMessages int
	DebugLastMessage time.Time
}
