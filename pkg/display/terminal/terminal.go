// Package terminal provides a display driver that draws frames in a
// terminal with ANSI colours, two pixels to a character cell.
package terminal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"golang.org/x/term"
)

func init() {
	driver := &terminalDriver{in: os.Stdin, out: os.Stdout}
	display.Install("terminal", driver, []display.DriverOption{
		{
			Name:        "hold",
			Default:     0.15,
			Value:       &driver.hold,
			Type:        "float",
			Description: "Seconds a key is held for after it is typed",
		},
	})
}

const (
	escape    = 0x1b
	ctrlC     = 0x03
	upperHalf = "▀"
)

// terminalDriver draws to a terminal in raw mode. Terminals only
// report typed characters, so a key is released once it has not been
// typed for the hold duration.
type terminalDriver struct {
	hold float64

	emu display.Emulator
	in  *os.File
	out io.Writer
}

func (t *terminalDriver) Initialize(emu display.Emulator) {
	t.emu = emu
}

func (t *terminalDriver) Start(frames <-chan []byte, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("terminal: stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	// hide the cursor, and clear the screen
	fmt.Fprint(t.out, "\x1b[?25l\x1b[2J")
	defer fmt.Fprint(t.out, "\x1b[0m\x1b[?25h\r\n")

	input := make(chan []byte)
	go readInput(t.in, input)

	hold := time.Duration(t.hold * float64(time.Second))
	held := make(map[keypad.Key]time.Time)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	w := bufio.NewWriter(t.out)
	for {
		select {
		case f := <-frames:
			render(w, f)
			w.Flush()
		case in, ok := <-input:
			if !ok {
				t.emu.SendCommand(display.Close)
				return nil
			}
			for _, k := range t.handleInput(in) {
				if _, down := held[k]; !down {
					pressed <- k
				}
				held[k] = time.Now().Add(hold)
			}
		case now := <-ticker.C:
			for k, until := range held {
				if now.After(until) {
					delete(held, k)
					released <- k
				}
			}
		case e := <-events:
			switch e.Type {
			case event.Title:
				fmt.Fprintf(t.out, "\x1b]0;%s\x07", e.Data.(string))
			case event.Quit:
				return nil
			}
		}
	}
}

// handleInput applies control characters, and returns the keypad
// keys typed.
func (t *terminalDriver) handleInput(in []byte) []keypad.Key {
	// a lone escape quits, longer sequences are ignored
	if in[0] == escape {
		if len(in) == 1 {
			t.emu.SendCommand(display.Close)
		}
		return nil
	}

	var keys []keypad.Key
	for _, b := range in {
		switch b {
		case ctrlC:
			t.emu.SendCommand(display.Close)
			return nil
		case ' ':
			t.emu.SendCommand(display.TogglePause)
		default:
			if k, ok := display.LookupKey(rune(b)); ok {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

func readInput(r io.Reader, input chan<- []byte) {
	defer close(input)

	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			input <- append([]byte(nil), buf[:n]...)
		}
	}
}

// render draws an RGB frame, pairing rows so that each character
// shows the upper pixel in its foreground colour and the lower pixel
// in its background colour.
func render(w io.Writer, f []byte) {
	var b bytes.Buffer
	b.WriteString("\x1b[H")

	pixel := func(x, y int) (byte, byte, byte) {
		i := (y*display.ScreenWidth + x) * 3
		return f[i], f[i+1], f[i+2]
	}

	for y := 0; y < display.ScreenHeight; y += 2 {
		for x := 0; x < display.ScreenWidth; x++ {
			tr, tg, tb := pixel(x, y)
			br, bg, bb := pixel(x, y+1)
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", tr, tg, tb, br, bg, bb, upperHalf)
		}
		b.WriteString("\x1b[0m\r\n")
	}

	w.Write(b.Bytes())
}

func (t *terminalDriver) Stop() error {
	return nil
}
