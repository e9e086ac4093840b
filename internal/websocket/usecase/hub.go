package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	ws "lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/log"
)

// hub owns the registry. Only the run loop mutates connections; readers take
// the read lock.
type hub struct {
	// userID -> connections in registration order
	connections map[string][]*connection
	mu          sync.RWMutex

	register   chan *connection
	unregister chan *connection

	active              atomic.Int64
	totalMessagesSent   atomic.Int64
	totalMessagesFailed atomic.Int64
	totalEvicted        atomic.Int64
	totalRejected       atomic.Int64

	cfg Config
	l   log.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool
	now     func() time.Time
}

func newHub(l log.Logger, cfg Config) *hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &hub{
		connections: make(map[string][]*connection),
		register:    make(chan *connection, 100),
		unregister:  make(chan *connection, 100),
		cfg:         cfg,
		l:           l,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
		now:         time.Now,
	}
}

func (h *hub) run() {
	if !h.running.CompareAndSwap(false, true) {
		return
	}
	defer close(h.done)

	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			h.l.Info(context.Background(), "internal.websocket.usecase.hub: shutting down")
			h.closeAllConnections()
			return

		case c := <-h.register:
			h.registerConnection(c)

		case c := <-h.unregister:
			h.unregisterConnection(c)

		case <-ticker.C:
			h.sweep()
		}
	}
}

// join hands c to the run loop.
func (h *hub) join(c *connection) error {
	select {
	case <-h.ctx.Done():
		return ws.ErrGatewayClosed
	default:
	}
	select {
	case h.register <- c:
		return nil
	case <-h.ctx.Done():
		return ws.ErrGatewayClosed
	}
}

// leave asks the run loop to drop c. After shutdown c is just terminated.
func (h *hub) leave(c *connection) {
	select {
	case <-h.ctx.Done():
		c.terminate()
		return
	default:
	}
	select {
	case h.unregister <- c:
	case <-h.ctx.Done():
		c.terminate()
	}
}

func (h *hub) registerConnection(c *connection) {
	if !c.transition(ws.ConnStateAuthenticating, ws.ConnStateOpen) {
		// closed before the loop got to it
		return
	}

	h.mu.Lock()
	h.connections[c.userID] = append(h.connections[c.userID], c)
	userConns := len(h.connections[c.userID])
	h.mu.Unlock()
	total := h.active.Add(1)

	if !c.enqueue(connectedFrame) {
		h.l.Warnf(context.Background(), "internal.websocket.usecase.hub.registerConnection: ack dropped for conn=%s", c.id)
	}

	h.l.Infof(context.Background(),
		"User connected: %s role=%s conn=%s (total connections: %d, user connections: %d)",
		c.userID, c.role, c.id, total, userConns,
	)
}

func (h *hub) unregisterConnection(c *connection) {
	h.mu.Lock()
	removed := h.removeLocked(c)
	remaining := len(h.connections[c.userID])
	h.mu.Unlock()

	c.terminate()
	if !removed {
		return
	}

	if remaining == 0 {
		h.l.Infof(context.Background(), "User disconnected (all connections closed): %s", c.userID)
	} else {
		h.l.Infof(context.Background(), "User connection closed: %s (remaining connections: %d)", c.userID, remaining)
	}
}

// removeLocked drops c from the registry. The caller holds mu.
func (h *hub) removeLocked(c *connection) bool {
	conns, ok := h.connections[c.userID]
	if !ok {
		return false
	}
	for i, existing := range conns {
		if existing != c {
			continue
		}
		conns = append(conns[:i:i], conns[i+1:]...)
		if len(conns) == 0 {
			delete(h.connections, c.userID)
		} else {
			h.connections[c.userID] = conns
		}
		h.active.Add(-1)
		return true
	}
	return false
}

// sweep evicts connections that missed the previous ping and pings the rest.
func (h *hub) sweep() {
	var dead, live []*connection

	h.mu.Lock()
	for _, conns := range h.connections {
		for _, c := range conns {
			if c.alive.Load() {
				live = append(live, c)
				continue
			}
			dead = append(dead, c)
		}
	}
	for _, c := range dead {
		h.removeLocked(c)
	}
	h.mu.Unlock()

	for _, c := range dead {
		c.terminate()
		_ = c.transport.Close()
		h.totalEvicted.Add(1)
		h.l.Infof(context.Background(), "internal.websocket.usecase.hub.sweep: evicted unresponsive conn=%s user=%s", c.id, c.userID)
	}

	now := h.now()
	for _, c := range live {
		c.alive.Store(false)
		if err := c.ping(now); err != nil {
			h.l.Debugf(context.Background(), "internal.websocket.usecase.hub.sweep: ping conn=%s: %v", c.id, err)
		}
	}
}

func (h *hub) closeAllConnections() {
	h.mu.Lock()
	var all []*connection
	for userID, conns := range h.connections {
		all = append(all, conns...)
		delete(h.connections, userID)
	}
	h.mu.Unlock()
	h.active.Store(0)

	for _, c := range all {
		c.terminate()
	}
}

// userConnections returns the open connections of userID in registration order.
func (h *hub) userConnections(userID string) []*connection {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return openOnly(h.connections[userID])
}

// openConnections returns every open connection accepted by match.
func (h *hub) openConnections(match func(*connection) bool) []*connection {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []*connection
	for _, conns := range h.connections {
		for _, c := range conns {
			if match(c) && c.State() == ws.ConnStateOpen {
				out = append(out, c)
			}
		}
	}
	return out
}

func openOnly(conns []*connection) []*connection {
	out := make([]*connection, 0, len(conns))
	for _, c := range conns {
		if c.State() == ws.ConnStateOpen {
			out = append(out, c)
		}
	}
	return out
}

// deliver enqueues data on every connection and returns how many accepted it.
func (h *hub) deliver(conns []*connection, data []byte) int {
	n := 0
	for _, c := range conns {
		if c.enqueue(data) {
			n++
			h.totalMessagesSent.Add(1)
			continue
		}
		h.totalMessagesFailed.Add(1)
		h.l.Warnf(context.Background(), "internal.websocket.usecase.hub.deliver: send buffer full or closed for conn=%s user=%s", c.id, c.userID)
	}
	return n
}

func (h *hub) stats() ws.HubStats {
	h.mu.RLock()
	users := len(h.connections)
	h.mu.RUnlock()

	return ws.HubStats{
		ActiveConnections:   int(h.active.Load()),
		TotalUniqueUsers:    users,
		TotalMessagesSent:   h.totalMessagesSent.Load(),
		TotalMessagesFailed: h.totalMessagesFailed.Load(),
		TotalEvicted:        h.totalEvicted.Load(),
		TotalRejected:       h.totalRejected.Load(),
	}
}

// shutdown stops the loop and waits for it, bounded by ctx.
func (h *hub) shutdown(ctx context.Context) error {
	h.cancel()
	if !h.running.Load() {
		h.closeAllConnections()
		return nil
	}
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
