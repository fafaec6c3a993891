// Package web provides a display driver that streams frames to
// browsers over websockets, and takes keypad input back from them.
package web

import (
	"errors"
	"net/http"

	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/thelolagemann/gochip8/pkg/log"
)

func init() {
	driver := &webDriver{log: log.New()}
	display.Install("web", driver, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &driver.addr,
			Type:        "string",
			Description: "Address to serve the websocket on",
		},
	})
}

type webDriver struct {
	addr string

	emu display.Emulator
	log log.Logger
}

func (w *webDriver) Initialize(emu display.Emulator) {
	w.emu = emu
}

// Start serves the websocket until the emulator quits.
func (w *webDriver) Start(frames <-chan []byte, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	h := newHub(w.log)
	srv := &http.Server{Addr: w.addr, Handler: h}

	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	go h.run()
	defer func() {
		srv.Close()
		h.stop()
	}()

	w.log.Infof("web: serving on %s", w.addr)

	for {
		select {
		case f := <-frames:
			if err := h.frame(f); err != nil {
				w.log.Errorf("web: failed to encode frame: %v", err)
			}
		case msg := <-h.input:
			w.handle(h, msg, pressed, released)
		case e := <-events:
			switch e.Type {
			case event.Title:
				h.publish(append([]byte{Title}, e.Data.(string)...))
			case event.Sound:
				var b byte
				if e.Data.(bool) {
					b = 1
				}
				h.publish([]byte{Sound, b})
			case event.Quit:
				return nil
			}
		case err := <-errs:
			return err
		}
	}
}

// handle applies a message from a client.
func (w *webDriver) handle(h *hub, msg []byte, pressed, released chan<- keypad.Key) {
	switch msg[0] {
	case KeyDown, KeyUp:
		if len(msg) < 2 || msg[1] >= keypad.NumKeys {
			return
		}
		if msg[0] == KeyDown {
			pressed <- msg[1]
		} else {
			released <- msg[1]
		}
	case PausePlay:
		w.emu.SendCommand(display.TogglePause)
		h.setPaused(w.emu.Status().IsPaused())
		h.publish([]byte{ClientInfo, h.info()})
	case Reset:
		w.emu.SendCommand(display.Reset)
	}
}

func (w *webDriver) Stop() error {
	return nil
}
