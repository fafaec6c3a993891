//go:build !test && !ebiten

// Package fyne provides a display driver built on fyne, with menus
// for loading programs and states, and debug views.
package fyne

import (
	"fmt"
	"image"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/thelolagemann/gochip8/internal/chip8"
	"github.com/thelolagemann/gochip8/internal/keypad"
	"github.com/thelolagemann/gochip8/pkg/display"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/thelolagemann/gochip8/pkg/display/fyne/themes"
	"github.com/thelolagemann/gochip8/pkg/display/fyne/views"
	"github.com/thelolagemann/gochip8/pkg/emulator"
	"github.com/thelolagemann/gochip8/pkg/utils"
)

func init() {
	driver := &fyneDriver{}
	display.Install("fyne", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     10.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
	})
}

// speeds are the instructions per second offered by the speed menu.
var speeds = []uint16{300, 600, 900, 1200, 2400}

// debuggable is implemented by emulators that can be inspected by the
// debug views.
type debuggable interface {
	Snapshot() chip8.Snapshot
	Logs() []string
}

type fyneWindow struct {
	fyne.Window
	view   View
	events chan event.Event
}

type fyneDriver struct {
	scale float64
	emu   display.Emulator

	app        fyne.App
	mainWindow fyne.Window
	raster     *canvas.Raster
	image      *image.RGBA

	// Windows is the list of open views
	Windows []*fyneWindow
	mu      sync.Mutex
}

func (f *fyneDriver) Initialize(emu display.Emulator) {
	f.emu = emu
}

// Start runs the application and blocks until the application is
// closed, or the emulator quits.
func (f *fyneDriver) Start(frames <-chan []byte, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	f.app = app.NewWithID("gochip8")
	f.app.Settings().SetTheme(themes.Default{})

	f.mainWindow = f.app.NewWindow("gochip8")
	f.mainWindow.SetMaster()
	f.mainWindow.SetPadded(false)

	// create the image to draw to
	f.image = image.NewRGBA(image.Rect(0, 0, display.ScreenWidth, display.ScreenHeight))
	f.raster = canvas.NewRasterFromImage(f.image)
	f.raster.ScaleMode = canvas.ImageScalePixels
	f.raster.SetMinSize(fyne.NewSize(display.ScreenWidth, display.ScreenHeight))

	f.mainWindow.SetContent(f.raster)
	f.mainWindow.SetMainMenu(f.mainMenu())
	f.mainWindow.Resize(fyne.NewSize(float32(display.ScreenWidth*f.scale), float32(display.ScreenHeight*f.scale)))

	// handle input
	if desk, ok := f.mainWindow.Canvas().(desktop.Canvas); ok {
		desk.SetOnKeyDown(func(e *fyne.KeyEvent) {
			if k, ok := lookupKey(e.Name); ok {
				pressed <- k
				return
			}
			switch e.Name {
			case fyne.KeyEscape:
				f.emu.SendCommand(display.Close)
			case fyne.KeySpace:
				f.emu.SendCommand(display.TogglePause)
			}
		})
		desk.SetOnKeyUp(func(e *fyne.KeyEvent) {
			if k, ok := lookupKey(e.Name); ok {
				released <- k
			}
		})
	}

	go f.dispatch(frames, events)

	f.mainWindow.ShowAndRun()

	// the window was closed by the user
	f.emu.SendCommand(display.Close)
	return nil
}

// dispatch draws frames, and hands events to the open views.
func (f *fyneDriver) dispatch(frames <-chan []byte, events <-chan event.Event) {
	for {
		select {
		case frame := <-frames:
			display.CopyRGB(f.image, frame)
			f.raster.Refresh()
		case e := <-events:
			switch e.Type {
			case event.Title:
				f.mainWindow.SetTitle(e.Data.(string))
			case event.Quit:
				f.mu.Lock()
				for _, w := range f.Windows {
					close(w.events)
				}
				f.Windows = nil
				f.mu.Unlock()
				f.app.Quit()
				return
			default:
				f.mu.Lock()
				for _, w := range f.Windows {
					select {
					case w.events <- e:
					default:
					}
				}
				f.mu.Unlock()
			}
		}
	}
}

func lookupKey(name fyne.KeyName) (keypad.Key, bool) {
	if len(name) != 1 {
		return 0, false
	}
	return display.LookupKey(rune(name[0]))
}

func (f *fyneDriver) mainMenu() *fyne.MainMenu {
	debug, canDebug := f.emu.(debuggable)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open ROM...", f.openROM),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save State...", f.saveState),
		fyne.NewMenuItem("Load State...", f.loadState),
	)

	speed := fyne.NewMenuItem("Speed", nil)
	speed.ChildMenu = fyne.NewMenu("")
	for _, ips := range speeds {
		ips := ips
		speed.ChildMenu.Items = append(speed.ChildMenu.Items, fyne.NewMenuItem(fmt.Sprintf("%d IPS", ips), func() {
			upper, lower := utils.Uint16ToBytes(ips)
			f.command(emulator.CommandPacket{Command: emulator.CommandSetSpeed, Data: []byte{upper, lower}})
		}))
	}

	emuMenu := fyne.NewMenu("Emulation",
		NewCustomizedMenuItem("Paused", nil, Checked(f.emu.Status().IsPaused(), func(paused bool) {
			if paused {
				f.command(display.Pause)
			} else {
				f.command(display.Resume)
			}
		})),
		fyne.NewMenuItem("Reset", func() {
			f.command(display.Reset)
		}),
		speed,
	)

	videoMenu := fyne.NewMenu("Video",
		fyne.NewMenuItem("Take Screenshot", func() {
			if err := utils.SaveImage(f.screenshot()); err != nil {
				f.error(err)
			}
		}),
		fyne.NewMenuItem("Copy Screenshot", func() {
			if err := utils.CopyImage(f.screenshot()); err != nil {
				f.error(err)
			}
		}),
	)

	debugMenu := fyne.NewMenu("Debug",
		NewCustomizedMenuItem("CPU", func() {
			f.openWindowIfNotOpen(views.NewCPU(debug.Snapshot))
		}, Gated(canDebug)),
		NewCustomizedMenuItem("Memory", func() {
			f.openWindowIfNotOpen(views.NewMemory(debug.Snapshot))
		}, Gated(canDebug)),
		NewCustomizedMenuItem("Log", func() {
			f.openWindowIfNotOpen(views.NewLog(debug.Logs))
		}, Gated(canDebug)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Performance", func() {
			f.openWindowIfNotOpen(&views.Performance{})
		}),
	)

	return fyne.NewMainMenu(fileMenu, emuMenu, videoMenu, debugMenu)
}

// command sends a command to the emulator, showing any error.
func (f *fyneDriver) command(cmd emulator.CommandPacket) emulator.ResponsePacket {
	resp := f.emu.SendCommand(cmd)
	if resp.Error != nil {
		f.error(fmt.Errorf("%s: %w", cmd.Command, resp.Error))
	}
	return resp
}

func (f *fyneDriver) error(err error) {
	dialog.NewError(err, f.mainWindow).Show()
}

func (f *fyneDriver) openROM() {
	filename, err := utils.AskForROM("")
	if err != nil {
		return // user cancelled
	}

	rom, err := utils.LoadFile(filename)
	if err != nil {
		f.error(err)
		return
	}

	f.command(emulator.CommandPacket{Command: emulator.CommandLoadROM, Data: rom})
}

func (f *fyneDriver) saveState() {
	resp := f.command(display.SaveState)
	if resp.Error != nil {
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if writer == nil {
			return // user cancelled
		}
		defer writer.Close()
		if _, err := writer.Write(resp.Data); err != nil {
			f.error(err)
		}
	}, f.mainWindow)
	d.SetFileName("state" + emulator.StateExtension)
	d.Show()
}

func (f *fyneDriver) loadState() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if reader == nil {
			return // user cancelled
		}
		defer reader.Close()

		b, err := io.ReadAll(reader)
		if err != nil {
			f.error(err)
			return
		}
		f.command(emulator.CommandPacket{Command: emulator.CommandLoadState, Data: b})
	}, f.mainWindow)
	d.Show()
}

// screenshot returns the frame currently shown, scaled up.
func (f *fyneDriver) screenshot() image.Image {
	return display.ScaleImage(f.image, int(f.scale))
}

func (f *fyneDriver) openWindowIfNotOpen(view View) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, w := range f.Windows {
		if w.view.Title() == view.Title() {
			w.RequestFocus()
			return
		}
	}

	win := &fyneWindow{
		Window: f.app.NewWindow(view.Title()),
		view:   view,
		events: make(chan event.Event, 16),
	}
	if err := view.Run(win, win.events); err != nil {
		win.Close()
		f.error(err)
		return
	}

	f.Windows = append(f.Windows, win)
	win.SetOnClosed(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, w := range f.Windows {
			if w == win {
				close(win.events)
				f.Windows = append(f.Windows[:i], f.Windows[i+1:]...)
				break
			}
		}
	})
	win.Show()
}

func (f *fyneDriver) Stop() error {
	return nil
}
