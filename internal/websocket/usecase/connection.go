package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"lead-notification-srv/internal/model"
	ws "lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// connection is one client socket. Its send buffer is guarded by mu so that
// enqueueing after close is a no-op.
type connection struct {
	id     string
	userID string
	role   model.Role

	transport ws.Transport
	hub       *hub
	l         log.Logger

	state      atomic.Int32
	alive      atomic.Bool
	writerDone atomic.Bool

	mu     sync.Mutex
	send   chan []byte
	closed bool

	closeOnce sync.Once
	writeWait time.Duration
}

func newConnection(h *hub, l log.Logger, sendBuffer int, writeWait time.Duration) *connection {
	c := &connection{
		id:        uuid.NewString(),
		hub:       h,
		l:         l,
		send:      make(chan []byte, sendBuffer),
		writeWait: writeWait,
	}
	c.state.Store(int32(ws.ConnStateConnecting))
	c.alive.Store(true)
	return c
}

func (c *connection) State() ws.ConnState {
	return ws.ConnState(c.state.Load())
}

// transition moves the state from -> to. It fails when the current state is
// not from or the move is not a forward edge.
func (c *connection) transition(from, to ws.ConnState) bool {
	if !from.CanTransition(to) {
		return false
	}
	return c.state.CompareAndSwap(int32(from), int32(to))
}

func (c *connection) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// terminate closes the send buffer once. The write pump then sends a close
// frame and releases the transport.
func (c *connection) terminate() {
	c.closeOnce.Do(func() {
		if c.transition(ws.ConnStateOpen, ws.ConnStateClosing) {
			if c.writerDone.Load() {
				c.transition(ws.ConnStateClosing, ws.ConnStateClosed)
			}
		} else {
			c.transition(ws.ConnStateAuthenticating, ws.ConnStateClosed)
		}
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
	})
}

func (c *connection) start(maxMessageSize int64) {
	c.transport.SetReadLimit(maxMessageSize)
	c.transport.SetPongHandler(func(string) error {
		c.alive.Store(true)
		return nil
	})
	go c.writePump()
	go c.readPump()
}

func (c *connection) readPump() {
	ctx := context.Background()
	defer c.hub.leave(c)

	for {
		_, data, err := c.transport.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.l.Warnf(ctx, "internal.websocket.usecase.readPump: user=%s conn=%s: %v", c.userID, c.id, err)
			}
			return
		}
		c.handleFrame(ctx, data)
	}
}

func (c *connection) handleFrame(ctx context.Context, data []byte) {
	var f ws.Frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.l.Warnf(ctx, "internal.websocket.usecase.handleFrame: malformed frame from user=%s: %v", c.userID, err)
		return
	}

	switch f.Type {
	case ws.FramePing:
		if !c.enqueue(pongFrame) {
			c.l.Debugf(ctx, "internal.websocket.usecase.handleFrame: pong dropped for conn=%s", c.id)
		}
	default:
		c.l.Debugf(ctx, "internal.websocket.usecase.handleFrame: ignoring frame type %q from user=%s", f.Type, c.userID)
	}
}

func (c *connection) writePump() {
	defer func() {
		_ = c.transport.Close()
		c.writerDone.Store(true)
		c.transition(ws.ConnStateClosing, ws.ConnStateClosed)
	}()

	for data := range c.send {
		_ = c.transport.SetWriteDeadline(time.Now().Add(c.writeWait))
		if err := c.transport.WriteMessage(websocket.TextMessage, data); err != nil {
			c.l.Debugf(context.Background(), "internal.websocket.usecase.writePump: conn=%s: %v", c.id, err)
			return
		}
	}

	_ = c.transport.SetWriteDeadline(time.Now().Add(c.writeWait))
	_ = c.transport.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (c *connection) ping(now time.Time) error {
	return c.transport.WriteControl(websocket.PingMessage, nil, now.Add(c.writeWait))
}

func (c *connection) info() ws.ConnectionInfo {
	return ws.ConnectionInfo{ID: c.id, UserID: c.userID, Role: c.role}
}
