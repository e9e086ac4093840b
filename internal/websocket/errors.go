package websocket

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
	ErrGatewayClosed         = errors.New("gateway closed")
	ErrUpgradeFailed         = errors.New("websocket upgrade failed")
)
