package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gochip8/pkg/log"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func TestHub(t *testing.T) {
	h := newHub(log.NewNullLogger())
	go h.run()
	defer h.stop()

	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	for _, expected := range []Type{ClientInfo, FrameSync, FrameCacheSync, ClientListSync} {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if msg[0] != expected {
			t.Errorf("expected message type %d, got %d", expected, msg[0])
		}
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{KeyDown, 0xA}); err != nil {
		t.Fatal(err)
	}
	select {
	case msg := <-h.input:
		if msg[0] != KeyDown || msg[1] != 0xA {
			t.Errorf("expected key down 0xA, got % X", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected the key to reach the hub")
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{Compression, 0}); err != nil {
		t.Fatal(err)
	}
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if msg[0] == ClientInfo {
			if msg[1]&0x01 != 0 {
				t.Errorf("expected compression to be disabled, got %08b", msg[1])
			}
			break
		}
	}
}
