package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 32
)

// Client is one websocket connection attached to the hub.
type Client struct {
	ID     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan OutMessage
	gameID string
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		send: make(chan OutMessage, sendBufferSize),
	}
}

// trySend queues an outbound event without blocking the hub loop. A
// client whose buffer is full misses the event; the protocol is
// best-effort and carries full grid state in every reveal, so a
// missed frame heals on the next one.
func (c *Client) trySend(msg OutMessage) {
	select {
	case c.send <- msg:
	default:
		if debug {
			log.Printf("ws: dropping %s for slow client %s", msg.Event, c.ID)
		}
	}
}

// readPump relays parsed client commands into the hub until the
// connection dies, then triggers disconnect handling.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read error for client %s: %v", c.ID, err)
			}
			return
		}

		var msg InMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			if debug {
				log.Printf("ws: dropping malformed message from client %s: %v", c.ID, err)
			}
			continue
		}
		c.hub.inbound <- inbound{client: c, msg: msg}
	}
}

// writePump drains the send channel onto the wire and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
