package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jamieb133/skyjo/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cross-origin policy is enforced by the CORS middleware wrapping
		// the router, not at upgrade time.
		return true
	},
}

// ClientMessage is an inbound input event from a renderer client. One
// message maps to exactly one engine tick.
type ClientMessage struct {
	Type   string     `json:"type"` // "hover", "click", "advance", "reset"
	Target *TargetRef `json:"target,omitempty"`
}

// TargetRef addresses a card in renderer coordinates.
type TargetRef struct {
	Kind   string `json:"kind"` // "deck", "discard", "hand"
	Player int    `json:"player"`
	Index  int    `json:"index"`
}

// ServerMessage is the outbound envelope wrapping a render state.
type ServerMessage struct {
	Type  string            `json:"type"`
	State *game.RenderState `json:"state,omitempty"`
	Error string            `json:"error,omitempty"`
}

// Client is one connected renderer.
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub owns the single engine instance and fans render states out to
// every connected client. All engine access is serialized through mu:
// the engine itself is single-threaded by contract.
type Hub struct {
	logger *zap.Logger

	mu     sync.Mutex
	engine *game.Engine

	clientsMu sync.RWMutex
	clients   map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a hub around an engine and performs the opening deal so
// the first connected client sees a dealt board.
func NewHub(engine *game.Engine, logger *zap.Logger) *Hub {
	h := &Hub{
		logger:     logger,
		engine:     engine,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
	h.step(game.InputFrame{})
	return h
}

// Run services client registration and broadcast until the hub is
// garbage collected with the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
			h.logger.Info("client registered", zap.String("client_id", client.id))
			client.send <- h.renderMessage()

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			h.logger.Info("client unregistered", zap.String("client_id", client.id))

		case message := <-h.broadcast:
			h.clientsMu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
				}
			}
			h.clientsMu.RUnlock()
		}
	}
}

// handleMessage converts an inbound event into an input frame and ticks
// the engine. Malformed selections are reported back to the sender only;
// everyone receives the resulting render state.
func (h *Hub) handleMessage(client *Client, msg ClientMessage) {
	frame, err := toInputFrame(msg)
	if err != nil {
		h.sendError(client, err)
		return
	}
	if tickErr := h.step(frame); tickErr != nil {
		h.sendError(client, tickErr)
	}
	h.broadcast <- h.renderMessage()
}

// step applies one input frame. When a round transition lands back in
// the deal phase, one extra empty tick performs the deal immediately so
// clients never render an undealt board.
func (h *Hub) step(frame game.InputFrame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.engine.Tick(frame)
	if h.engine.State().Phase == game.PhaseDeal {
		if dealErr := h.engine.Tick(game.InputFrame{}); dealErr != nil && err == nil {
			err = dealErr
		}
	}
	return err
}

func (h *Hub) renderMessage() []byte {
	h.mu.Lock()
	state := h.engine.Render()
	h.mu.Unlock()

	data, err := json.Marshal(ServerMessage{Type: "render_state", State: state})
	if err != nil {
		h.logger.Error("marshaling render state", zap.Error(err))
		return []byte(`{"type":"error","error":"internal"}`)
	}
	return data
}

func (h *Hub) sendError(client *Client, err error) {
	h.logger.Warn("client input rejected",
		zap.String("client_id", client.id),
		zap.Error(err),
	)
	data, marshalErr := json.Marshal(ServerMessage{Type: "error", Error: err.Error()})
	if marshalErr != nil {
		return
	}
	select {
	case client.send <- data:
	default:
	}
}

func toInputFrame(msg ClientMessage) (game.InputFrame, error) {
	switch msg.Type {
	case "advance":
		return game.InputFrame{Advance: true}, nil
	case "reset":
		return game.InputFrame{Reset: true}, nil
	case "hover", "click":
		target, err := toTarget(msg.Target)
		if err != nil {
			return game.InputFrame{}, err
		}
		return game.InputFrame{Hover: target, Click: msg.Type == "click"}, nil
	default:
		return game.InputFrame{}, errors.New("unknown message type: " + msg.Type)
	}
}

func toTarget(ref *TargetRef) (*game.Target, error) {
	if ref == nil {
		return nil, nil
	}
	switch ref.Kind {
	case "deck":
		return &game.Target{Kind: game.TargetDeck}, nil
	case "discard":
		return &game.Target{Kind: game.TargetDiscard}, nil
	case "hand":
		return &game.Target{Kind: game.TargetHand, Player: ref.Player, Index: ref.Index}, nil
	default:
		return nil, errors.New("unknown target kind: " + ref.Kind)
	}
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			hub.logger.Warn("unmarshaling client message",
				zap.String("client_id", c.id),
				zap.Error(err),
			)
			continue
		}
		hub.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

// ServeWS upgrades an HTTP request to a websocket client connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}
