package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"president-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// dealer is fixed at creation, messages can arrive before the PitBoss registers the client
	dealer *Dealer

	playerID string
}

// NewClient returns a new client object for the room run by dealer
// The player id does not have to be a participant, anybody else watches
func NewClient(conn *websocket.Conn, dealer *Dealer, playerID string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		dealer:   dealer,
		playerID: playerID,
	}
}

// Send send a message to the web client
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

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.playerID, c.roomID())
}

func (c *Client) roomID() string {
	if c.dealer == nil {
		return ""
	}

	return c.dealer.ID
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		c.Send(newErrorResponse(msg.Context, ErrRoomNotFound))
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
