package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"lead-notification-srv/internal/identity"
	"lead-notification-srv/internal/model"
	ws "lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/log"

	"github.com/gorilla/websocket"
)

var errTransportClosed = errors.New("use of closed network connection")

type fakeTransport struct {
	mu          sync.Mutex
	text        [][]byte
	closeFrames int
	pings       int
	closed      bool
	readLimit   int64
	pong        func(string) error

	reads     chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		reads:   make(chan []byte, 8),
		closeCh: make(chan struct{}),
	}
}

func (f *fakeTransport) ReadMessage() (int, []byte, error) {
	select {
	case b := <-f.reads:
		return websocket.TextMessage, b, nil
	case <-f.closeCh:
		return 0, nil, errTransportClosed
	}
}

func (f *fakeTransport) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errTransportClosed
	}
	switch messageType {
	case websocket.TextMessage:
		f.text = append(f.text, append([]byte(nil), data...))
	case websocket.CloseMessage:
		f.closeFrames++
	}
	return nil
}

func (f *fakeTransport) WriteControl(messageType int, _ []byte, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errTransportClosed
	}
	if messageType == websocket.PingMessage {
		f.pings++
	}
	return nil
}

func (f *fakeTransport) SetReadLimit(limit int64) {
	f.mu.Lock()
	f.readLimit = limit
	f.mu.Unlock()
}

func (f *fakeTransport) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeTransport) SetPongHandler(h func(string) error) {
	f.mu.Lock()
	f.pong = h
	f.mu.Unlock()
}

func (f *fakeTransport) Close() error {
	f.closeOnce.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.mu.Unlock()
		close(f.closeCh)
	})
	return nil
}

func (f *fakeTransport) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeTransport) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.text...)
}

func (f *fakeTransport) pingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

func (f *fakeTransport) firePong() {
	f.mu.Lock()
	h := f.pong
	f.mu.Unlock()
	if h != nil {
		_ = h("")
	}
}

func testConfig() Config {
	return Config{
		PingInterval:   time.Hour,
		WriteWait:      time.Second,
		MaxMessageSize: 4096,
		SendBufferSize: 8,
	}.withDefaults()
}

// newTestConn builds an authenticated connection that has not been registered.
func newTestConn(h *hub, userID string, role model.Role) (*connection, *fakeTransport) {
	ft := newFakeTransport()
	c := newConnection(h, log.NewNop(), h.cfg.SendBufferSize, h.cfg.WriteWait)
	c.userID = userID
	c.role = role
	c.transport = ft
	c.transition(ws.ConnStateConnecting, ws.ConnStateAuthenticating)
	return c, ft
}

// queued drains whatever is waiting in the connection's send buffer.
func queued(c *connection) [][]byte {
	var out [][]byte
	for {
		select {
		case b, ok := <-c.send:
			if !ok {
				return out
			}
			out = append(out, b)
		default:
			return out
		}
	}
}

func staticResolver(id identity.Identity, err error) identity.Resolver {
	return identity.ResolverFunc(func(context.Context, string) (identity.Identity, error) {
		return id, err
	})
}
