package web

import (
	"encoding/binary"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gochip8/internal/types"
	"github.com/thelolagemann/gochip8/pkg/log"
)

type hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	// input carries key and control messages to the emulator.
	input chan []byte
	done  chan struct{}

	compression  bool
	frameCaching bool
	paused       bool
	currentID    uint8

	encoder *encoder
	log     log.Logger

	mu sync.Mutex
}

func newHub(logger log.Logger) *hub {
	return &hub{
		clients:      make(map[*Client]bool),
		broadcast:    make(chan []byte, 64),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		input:        make(chan []byte, 64),
		done:         make(chan struct{}),
		compression:  true,
		frameCaching: true,
		encoder:      newEncoder(),
		log:          logger,
	}
}

// ServeHTTP upgrades the connection to a websocket, and registers the
// client with the hub.
func (h *hub) ServeHTTP(wr http.ResponseWriter, r *http.Request) {
	wr.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(wr, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrade failed: %v", err)
		return
	}

	c := h.newClient(conn, r)
	if c == nil {
		conn.Close()
		return
	}

	go c.ReadPump()
	go c.WritePump()
}

// run handles registration and broadcasting until stop is called.
func (h *hub) run() {
	t := time.NewTicker(time.Second)
	defer t.Stop()

	for {
		select {
		case <-h.done:
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.sync(c)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; !ok {
				continue
			}
			close(c.Send)
			delete(h.clients, c)

			id := c.identity()
			for other := range h.clients {
				select {
				case other.Send <- append([]byte{ClientClosing}, id...):
				default:
				}
			}
		case msg := <-h.broadcast:
			h.sendAll(msg)
		case <-t.C:
			h.sendAll(h.serverInfo())
		}
	}
}

func (h *hub) sendAll(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			// too slow to keep up
			close(c.Send)
			delete(h.clients, c)
		}
	}
}

// publish queues a message for every client.
func (h *hub) publish(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// sync brings a newly registered client up to date.
func (h *hub) sync(c *Client) {
	c.Send <- []byte{ClientInfo, h.info()}

	msgs, err := h.encoder.sync()
	if err != nil {
		h.log.Errorf("web: failed to sync client %d: %v", c.ID, err)
	} else {
		for _, msg := range msgs {
			c.Send <- msg
		}
	}

	var data []byte
	for cl := range h.clients {
		if cl == c {
			continue
		}
		data = append(data, cl.identity()...)
		data = append(data, '\n')
	}
	if len(data) > 0 {
		// remove last newline to avoid issues with JS
		data = data[:len(data)-1]
	}
	c.Send <- append([]byte{ClientListSync}, data...)
}

func (h *hub) stop() {
	close(h.done)
}

func (h *hub) setting(e Event, enabled bool) {
	h.mu.Lock()
	switch e {
	case Compression:
		h.compression = enabled
	case FrameCaching:
		h.frameCaching = enabled
	}
	h.mu.Unlock()

	h.publish([]byte{ClientInfo, h.info()})
}

func (h *hub) setPaused(paused bool) {
	h.mu.Lock()
	h.paused = paused
	h.mu.Unlock()
}

// frame encodes and broadcasts a frame.
func (h *hub) frame(f []byte) error {
	h.mu.Lock()
	compress, caching := h.compression, h.frameCaching
	h.mu.Unlock()

	msg, err := h.encoder.encode(f, compress, caching)
	if err != nil {
		return err
	}
	h.publish(msg)
	return nil
}

// info returns a byte of information containing the various
// hub settings. The byte is constructed as follows:
//
//	Bit 0: Compression enabled
//	Bit 1: Frame caching enabled
//	Bit 2: Emulator paused
func (h *hub) info() byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	info := uint8(0)
	if h.compression {
		info |= types.Bit0
	}
	if h.frameCaching {
		info |= types.Bit1
	}
	if h.paused {
		info |= types.Bit2
	}

	return info
}

// serverInfo returns the hub settings, followed by the ID and average
// latency of every client.
func (h *hub) serverInfo() []byte {
	data := []byte{ServerInfo, h.info()}
	for c := range h.clients {
		latencyBuf := make([]byte, 2)
		binary.LittleEndian.PutUint16(latencyBuf, c.latency())
		data = append(data, c.ID)
		data = append(data, latencyBuf...)
	}
	return data
}

// newClient creates a new client and registers it to the hub. It
// returns nil once the hub has stopped.
func (h *hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	h.currentID++
	id := h.currentID
	h.mu.Unlock()

	c := &Client{
		hub:         h,
		conn:        conn,
		Send:        make(chan []byte, 256),
		ID:          id,
	}
	c.Metadata.RemoteAddr = r.RemoteAddr
	c.Metadata.UserAgent = r.Header.Get("User-Agent")

	select {
	case h.register <- c:
		return c
	case <-h.done:
		return nil
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
