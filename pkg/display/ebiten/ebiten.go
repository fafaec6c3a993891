//go:build ebiten

package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/thelolagemann/gochip8/pkg/emulator"
)

func init() {
	driver := &ebitenDriver{}
	display.Install("ebiten", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     10.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "The scale factor of the window",
		},
		{
			Name:        "fullscreen",
			Default:     false,
			Value:       &driver.fullscreen,
			Type:        "bool",
			Description: "Start the window in fullscreen",
		},
	})
}

var keys = map[ebiten.Key]keypad.Key{
	ebiten.Key1: keypad.Key1, ebiten.Key2: keypad.Key2, ebiten.Key3: keypad.Key3, ebiten.Key4: keypad.KeyC,
	ebiten.KeyQ: keypad.Key4, ebiten.KeyW: keypad.Key5, ebiten.KeyE: keypad.Key6, ebiten.KeyR: keypad.KeyD,
	ebiten.KeyA: keypad.Key7, ebiten.KeyS: keypad.Key8, ebiten.KeyD: keypad.Key9, ebiten.KeyF: keypad.KeyE,
	ebiten.KeyZ: keypad.KeyA, ebiten.KeyX: keypad.Key0, ebiten.KeyC: keypad.KeyB, ebiten.KeyV: keypad.KeyF,
}

type ebitenDriver struct {
	scale      float64
	fullscreen bool

	emu    display.Emulator
	screen *ebiten.Image
	pixels []byte

	frames   <-chan []byte
	events   <-chan event.Event
	pressed  chan<- keypad.Key
	released chan<- keypad.Key
}

func (e *ebitenDriver) Initialize(emu display.Emulator) {
	e.emu = emu
}

func (e *ebitenDriver) Start(frames <-chan []byte, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	e.frames, e.events = frames, events
	e.pressed, e.released = pressed, released
	e.pixels = make([]byte, display.ScreenWidth*display.ScreenHeight*4)

	scale := e.scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("gochip8")
	ebiten.SetWindowSize(int(display.ScreenWidth*scale), int(display.ScreenHeight*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(e.fullscreen)

	err := ebiten.RunGame(e)
	e.emu.SendCommand(display.Close)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update forwards input to the emulator, and takes the latest frame
// without blocking.
func (e *ebitenDriver) Update() error {
	for k, key := range keys {
		if inpututil.IsKeyJustPressed(k) {
			e.pressed <- key
		}
		if inpututil.IsKeyJustReleased(k) {
			e.released <- key
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		e.emu.SendCommand(display.TogglePause)
	case inpututil.IsKeyJustPressed(ebiten.KeyF11):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	for {
		select {
		case f := <-e.frames:
			rgba(e.pixels, f)
		case ev := <-e.events:
			switch ev.Type {
			case event.Title:
				ebiten.SetWindowTitle(ev.Data.(string))
			case event.Quit:
				return ebiten.Termination
			}
		default:
			return nil
		}
	}
}

func (e *ebitenDriver) Draw(screen *ebiten.Image) {
	if e.screen == nil {
		e.screen = ebiten.NewImage(display.ScreenWidth, display.ScreenHeight)
	}
	e.screen.WritePixels(e.pixels)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/display.ScreenWidth, float64(h)/display.ScreenHeight)
	screen.DrawImage(e.screen, op)

	if e.emu.Status() == emulator.Paused {
		ebitenutil.DebugPrint(screen, "PAUSED")
	}
}

func (e *ebitenDriver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *ebitenDriver) Stop() error {
	return nil
}

// rgba expands a packed RGB frame into dst.
func rgba(dst, f []byte) {
	for i, j := 0, 0; i+2 < len(f) && j+3 < len(dst); i, j = i+3, j+4 {
		dst[j], dst[j+1], dst[j+2], dst[j+3] = f[i], f[i+1], f[i+2], 0xFF
	}
}
