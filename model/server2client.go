package model

// Messages exchanged with replay viewers. Gob-encoded over the websocket.

type ServerMessage struct {
	Setup   []Setup
	Steps   []Step
	Results []Result
}

// Setup describes the level once, right after the connection upgrades.
type Setup struct {
	Rows, Cols int
	Cells      [][]int
	Spawn      Cell
	Strategy   int
}

// Step is one committed replay move: the agent's new pixel position and
// the overlay of cells still ahead on the path.
type Step struct {
	X, Y      int
	Remaining []Cell
}

// Result closes a replay: whether a path existed and how many steps the
// solver produced.
type Result struct {
	Strategy int
	Found    bool
	Steps    int
	Err      string
}

// ClientMessage selects the strategy the viewer wants replayed.
type ClientMessage struct {
	Strategy int
}
