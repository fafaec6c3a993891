package web

import (
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a websocket connection to the hub.
type Client struct {
	mu       sync.RWMutex
	hub      *hub
	conn     *websocket.Conn
	Send     chan []byte
	ID       uint8
	Metadata struct {
		RemoteAddr string
		UserAgent  string
		Username   string
	}
	avgLatency uint16
}

// latency returns the average round trip time to the client in
// milliseconds.
func (c *Client) latency() uint16 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.avgLatency
}

// identity is the client as it is sent to other clients.
func (c *Client) identity() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var data []byte
	data = append(data, c.Metadata.RemoteAddr...)
	data = append(data, 0)
	data = append(data, c.Metadata.UserAgent...)
	data = append(data, 0)
	data = append(data, c.Metadata.Username...)
	data = append(data, 0)
	data = append(data, c.ID)
	return data
}

// ReadPump reads messages from the client until the connection is
// closed. Settings are applied to the hub, and everything else is
// passed on to the emulator.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case Compression, FrameCaching:
			if len(message) < 2 {
				continue
			}
			c.hub.setting(message[0], message[1] == 1)
		case RegisterUsername:
			c.mu.Lock()
			c.Metadata.Username = string(message[1:])
			c.mu.Unlock()

			c.hub.publish(append([]byte{ClientInfo, RegisterUsername}, c.identity()...))
		case KeepAlive:
		case Closing:
			return
		default:
			select {
			case c.hub.input <- message:
			case <-c.hub.done:
				return
			}
		}
	}
}

// WritePump writes queued messages to the client, measuring its
// latency as it goes.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for message := range c.Send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}

		tcp, ok := c.conn.UnderlyingConn().(*net.TCPConn)
		if !ok {
			continue
		}
		rtt, err := roundTrip(tcp)
		if err != nil {
			continue
		}
		c.mu.Lock()
		c.avgLatency = ((c.avgLatency * 9) + uint16(rtt/time.Millisecond)) / 10
		c.mu.Unlock()
	}

	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
