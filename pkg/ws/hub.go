package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the envelope sent to clients.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client is one websocket connection joined to a set of rooms.
type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	rooms []string
}

// Hub tracks connections per room and fans messages out to them.
// A room is a circle id or a member id.
type Hub struct {
	logger     *zap.Logger
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	emit       chan roomMessage
	mu         sync.RWMutex
}

type roomMessage struct {
	room    string
	payload []byte
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		emit:       make(chan roomMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			for _, room := range client.rooms {
				if h.rooms[room] == nil {
					h.rooms[room] = make(map[*Client]bool)
				}
				h.rooms[room][client] = true
			}
			h.mu.Unlock()
			h.logger.Info("websocket client connected", zap.Strings("rooms", client.rooms))

		case client := <-h.unregister:
			h.mu.Lock()
			h.dropLocked(client)
			h.mu.Unlock()
			h.logger.Info("websocket client disconnected")

		case msg := <-h.emit:
			h.mu.Lock()
			for client := range h.rooms[msg.room] {
				select {
				case client.send <- msg.payload:
				default:
					// slow consumer, drop the connection
					h.dropLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// dropLocked removes a client from every room it joined. Caller holds mu.
func (h *Hub) dropLocked(client *Client) {
	dropped := false
	for _, room := range client.rooms {
		if clients, ok := h.rooms[room]; ok {
			if clients[client] {
				delete(clients, client)
				dropped = true
			}
			if len(clients) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	if dropped {
		close(client.send)
	}
}

// EmitToRoom sends an event to every connection in the room.
func (h *Hub) EmitToRoom(room, event string, data any) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.logger.Error("marshal room message", zap.Error(err))
		return
	}
	h.emit <- roomMessage{room: room, payload: payload}
}

// RoomSize returns the number of connections currently in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func NewClient(hub *Hub, conn *websocket.Conn, rooms []string) *Client {
	return &Client{
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, 256),
		rooms: rooms,
	}
}

func (c *Client) Register() {
	c.hub.register <- c
}

func (c *Client) Unregister() {
	c.hub.unregister <- c
}

// ReadPump drains client frames to keep the connection alive; inbound
// messages are not interpreted.
func (c *Client) ReadPump() {
	defer func() {
		c.Unregister()
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	defer func() { _ = c.conn.Close() }()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
