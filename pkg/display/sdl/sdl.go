//go:build !test

// Package sdl provides a display driver using SDL2, drawing each
// pixel as a filled rectangle.
package sdl

import (
	"runtime"
	"time"

	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL must be driven from the main thread
	runtime.LockOSThread()

	driver := &sdlDriver{}
	display.Install("sdl", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     20.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
		{
			Name:        "outline",
			Default:     false,
			Value:       &driver.outline,
			Type:        "bool",
			Description: "Outline lit pixels with the background colour",
		},
	})
}

type sdlDriver struct {
	scale   float64
	outline bool

	emu      display.Emulator
	window   *sdl.Window
	renderer *sdl.Renderer
}

func (s *sdlDriver) Initialize(emu display.Emulator) {
	s.emu = emu
}

// Start opens the window and draws frames until the window is closed,
// or the emulator quits.
func (s *sdlDriver) Start(frames <-chan []byte, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	scale := int32(s.scale)
	if scale < 1 {
		scale = 1
	}

	var err error
	if s.window, err = sdl.CreateWindow("gochip8", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		display.ScreenWidth*scale, display.ScreenHeight*scale, sdl.WINDOW_SHOWN); err != nil {
		return err
	}
	if s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED); err != nil {
		return err
	}

	// poll input even when no frames arrive
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			switch ev := e.(type) {
			case *sdl.QuitEvent:
				s.emu.SendCommand(display.Close)
				return nil
			case *sdl.KeyboardEvent:
				if ev.Repeat != 0 {
					continue
				}
				s.handleKey(ev, pressed, released)
			}
		}

		select {
		case f := <-frames:
			s.draw(f, scale)
		case e := <-events:
			switch e.Type {
			case event.Title:
				s.window.SetTitle(e.Data.(string))
			case event.Quit:
				return nil
			}
		case <-ticker.C:
		}
	}
}

func (s *sdlDriver) handleKey(ev *sdl.KeyboardEvent, pressed, released chan<- keypad.Key) {
	sym := ev.Keysym.Sym
	if sym < 0x80 {
		if k, ok := display.LookupKey(rune(sym)); ok {
			if ev.Type == sdl.KEYDOWN {
				pressed <- k
			} else {
				released <- k
			}
			return
		}
	}

	if ev.Type != sdl.KEYDOWN {
		return
	}
	switch sym {
	case sdl.K_ESCAPE:
		s.emu.SendCommand(display.Close)
	case sdl.K_SPACE:
		s.emu.SendCommand(display.TogglePause)
	}
}

// draw fills a rectangle for every pixel of the RGB frame.
func (s *sdlDriver) draw(f []byte, scale int32) {
	bg := display.DefaultPalette.Off
	if p, ok := s.emu.(interface{ Palette() display.Palette }); ok {
		bg = p.Palette().Off
	}
	s.renderer.SetDrawColor(bg.R, bg.G, bg.B, 0xFF)
	s.renderer.Clear()

	rect := &sdl.Rect{W: scale, H: scale}
	for i := 0; i < display.ScreenWidth*display.ScreenHeight; i++ {
		rect.X = int32(i%display.ScreenWidth) * scale
		rect.Y = int32(i/display.ScreenWidth) * scale

		r, g, b := f[i*3], f[i*3+1], f[i*3+2]
		s.renderer.SetDrawColor(r, g, b, 0xFF)
		s.renderer.FillRect(rect)

		if s.outline && (r != bg.R || g != bg.G || b != bg.B) {
			s.renderer.SetDrawColor(bg.R, bg.G, bg.B, 0xFF)
			s.renderer.DrawRect(rect)
		}
	}

	s.renderer.Present()
}

func (s *sdlDriver) Stop() error {
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}
