package websocket

import (
	"time"

	"lead-notification-srv/internal/model"
)

// Transport is the part of *websocket.Conn the gateway relies on.
type Transport interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadLimit(limit int64)
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// ConnState is the lifecycle of a single connection. It only moves forward.
type ConnState int32

const (
	ConnStateConnecting ConnState = iota
	ConnStateAuthenticating
	ConnStateOpen
	ConnStateClosing
	ConnStateClosed
)

func (s ConnState) String() string {
	switch s {
	case ConnStateConnecting:
		return "connecting"
	case ConnStateAuthenticating:
		return "authenticating"
	case ConnStateOpen:
		return "open"
	case ConnStateClosing:
		return "closing"
	case ConnStateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// CanTransition reports whether s may move to next.
func (s ConnState) CanTransition(next ConnState) bool {
	switch s {
	case ConnStateConnecting:
		return next == ConnStateAuthenticating
	case ConnStateAuthenticating:
		return next == ConnStateOpen || next == ConnStateClosed
	case ConnStateOpen:
		return next == ConnStateClosing
	case ConnStateClosing:
		return next == ConnStateClosed
	default:
		return false
	}
}

// Frame types on the wire.
const (
	FrameConnected    = "connected"
	FrameNotification = "notification"
	FramePing         = "ping"
	FramePong         = "pong"
)

const ConnectedMessage = "WebSocket connected successfully"

// Frame is the envelope of every text frame exchanged with clients.
type Frame struct {
	Type    string              `json:"type"`
	Message string              `json:"message,omitempty"`
	Data    *model.Notification `json:"data,omitempty"`
}

// AcceptInput is a connection attempt. Upgrade is only invoked once the
// caller is authenticated and capacity allows it.
type AcceptInput struct {
	Cookie  string
	Upgrade func() (Transport, error)
}

type ConnectionInfo struct {
	ID     string
	UserID string
	Role   model.Role
}

type HubStats struct {
	ActiveConnections   int
	TotalUniqueUsers    int
	TotalMessagesSent   int64
	TotalMessagesFailed int64
	TotalEvicted        int64
	TotalRejected       int64
}
