package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/game2048"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Outgoing states buffered per connection.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message types on the wire.
const (
	msgMove    = "move"
	msgRestart = "restart"
	msgState   = "state"
)

// clientMessage is a command from the browser.
type clientMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"`
}

// stateMessage carries the session snapshot to the browser.
type stateMessage struct {
	Type  string            `json:"type"`
	State game2048.Snapshot `json:"state"`
}

// conn is one browser connection and the game it owns. Only readPump
// touches the session.
type conn struct {
	id        string
	ws        *websocket.Conn
	send      chan []byte
	session   *game2048.Session
	shareLink string
	logger    *log.Logger
}

// handleWS upgrades the request and starts a new game for the connection.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	id := uuid.NewString()
	c := &conn{
		id:        id,
		ws:        ws,
		send:      make(chan []byte, sendBuffer),
		session:   game2048.NewSession(game2048.NewSeededSpawner(s.config.Seed)),
		shareLink: s.config.ShareLink,
		logger:    s.logger.With("conn", id),
	}
	if c.shareLink == "" {
		c.shareLink = game2048.DefaultShareLink
	}

	c.logger.Info("connection opened", "remote", r.RemoteAddr)

	c.pushState()
	go c.writePump()
	go c.readPump()
}

// readPump applies client commands in arrival order, replying with the
// new state after each one.
func (c *conn) readPump() {
	start := time.Now()
	defer func() {
		close(c.send)
		c.ws.Close()
		c.logger.Info("connection closed",
			"score", c.session.Score(),
			"moves", c.session.Moves(),
			"duration", time.Since(start).Round(time.Second),
		)
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket error", "err", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("bad message", "err", err)
			continue
		}
		if !c.handle(msg) {
			continue
		}
		if !c.pushState() {
			return
		}
	}
}

// handle applies one command. Unknown commands report false and get no
// reply.
func (c *conn) handle(msg clientMessage) bool {
	switch msg.Type {
	case msgMove:
		dir, ok := game2048.ParseDirection(msg.Direction)
		if !ok {
			c.logger.Debug("unknown direction", "direction", msg.Direction)
			return false
		}
		out := c.session.Apply(dir)
		c.logger.Debug("move", "dir", dir, "outcome", out, "score", c.session.Score())
		if out == game2048.OutcomeGameOver {
			c.logger.Info("game over",
				"score", c.session.Score(),
				"max_tile", c.session.Grid().MaxTile(),
				"moves", c.session.Moves(),
				"share", game2048.ShareText(c.session.Score(), c.shareLink),
			)
		}
		return true

	case msgRestart:
		c.logger.Info("new game", "previous_score", c.session.Score(), "moves", c.session.Moves())
		c.session.Restart()
		return true

	default:
		c.logger.Debug("unknown message type", "type", msg.Type)
		return false
	}
}

// pushState queues the current snapshot. It reports false when the
// writer has fallen behind and the connection should be dropped.
func (c *conn) pushState() bool {
	data, err := json.Marshal(stateMessage{
		Type:  msgState,
		State: c.session.Snapshot(c.shareLink),
	})
	if err != nil {
		c.logger.Error("marshal state", "err", err)
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		c.logger.Warn("send buffer full, dropping connection")
		return false
	}
}

// writePump writes queued states and keeps the connection alive with pings.
func (c *conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
