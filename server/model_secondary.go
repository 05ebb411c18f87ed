package server

import "fmt"

const HTTP_SERVER_ERR = 503

func (s ReplaySessionState) Name() string {
	switch s {
	case RS_NEW:
		return "RS_NEW"
	case RS_PLAY:
		return "RS_PLAY"
	case RS_OVER:
		return "RS_OVER"
	case RS_ERR:
		return "RS_ERR"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}
