package preview

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// liveReloadScript is injected into rendered pages when live reload is
// enabled. It reloads the page on any message from the server.
const liveReloadScript = `(function(){` +
	`var proto=location.protocol==="https:"?"wss://":"ws://";` +
	`var ws=new WebSocket(proto+location.host+"/_livereload");` +
	`ws.onmessage=function(){location.reload();};` +
	`})();`

// clientSet tracks connected live-reload websocket clients.
type clientSet struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newClientSet() *clientSet {
	return &clientSet{conns: make(map[*websocket.Conn]struct{})}
}

func (c *clientSet) add(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conns[conn] = struct{}{}
}

func (c *clientSet) remove(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.conns, conn)
}

// snapshot copies the current connections so broadcast writes happen
// outside the lock.
func (c *clientSet) snapshot() []*websocket.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(c.conns))
	for conn := range c.conns {
		conns = append(conns, conn)
	}
	return conns
}

// handleLiveReload upgrades the connection and parks it until the client
// disconnects. The server never reads meaningful data from clients; the
// read loop only notices closure.
func (s *Server) handleLiveReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	s.clients.add(conn)
	s.metrics.reloadClients.Inc()
	s.logger.Debug("live-reload client connected", "remote", conn.RemoteAddr())

	defer func() {
		s.clients.remove(conn)
		s.metrics.reloadClients.Dec()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcastReload tells every connected client to reload. Clients whose
// writes fail are dropped; they will reconnect after the reload.
func (s *Server) broadcastReload() {
	for _, conn := range s.clients.snapshot() {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			s.logger.Debug("dropping live-reload client", "remote", conn.RemoteAddr(), "error", err)
			s.clients.remove(conn)
			s.metrics.reloadClients.Dec()
			conn.Close()
			continue
		}
		s.metrics.reloadsSent.Inc()
	}
}
