package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a player connected to the server via websockets
type Client struct {
	// ID is the subscriber id. Game state references this id; only the
	// transport layer ever touches the connection itself.
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// PlayerID is bound when the client joins a room
	PlayerID string

	session *Session
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.New().String(),
		Conn: conn,
		send: make(chan interface{}, 256),
	}
}

// Send enqueues a message to the web client
// Sends are best-effort: a client with a full buffer misses the message
// rather than stalling the room
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.PlayerID == "" {
		return c.ID
	}

	return fmt.Sprintf("%s:%s", c.PlayerID, c.ID)
}
