// Package views provides the debug windows of the fyne display
// driver.
package views

import (
	"image"
	"image/color"
	"image/png"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/thelolagemann/gochip8/internal/chip8"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/thelolagemann/gochip8/pkg/display/fyne/themes"
)

// Source returns a snapshot of the machine being viewed.
type Source func() chip8.Snapshot

// refreshRate is how often views poll the machine.
const refreshRate = time.Second / 10

// bold is a small utility function for creating a bold label.
func bold(s string) *widget.Label { return widget.NewLabelWithStyle(s, 0, fyne.TextStyle{Bold: true}) }

// mono is a small utility function for creating a monospaced text element.
func mono(s string, c color.Color) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextStyle.Monospace = true

	return t
}

func newCard(title string, content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewMax(
		canvas.NewRectangle(themeColor(themes.ColorNameBackgroundOnBackground)),
		container.NewVBox(
			container.NewMax(canvas.NewRectangle(themeColor(theme.ColorNameInputBackground)), container.NewPadded(mono(title, themeColor(theme.ColorNameForeground)))),
			content,
		),
	)
}

func themeColor(name fyne.ThemeColorName) color.Color {
	settings := fyne.CurrentApp().Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}

// poll calls refresh at refreshRate until the emulator quits.
func poll(events <-chan event.Event, refresh func()) {
	t := time.NewTicker(refreshRate)
	defer t.Stop()

	for {
		select {
		case e, ok := <-events:
			if !ok || e.Type == event.Quit {
				return
			}
		case <-t.C:
			refresh()
		}
	}
}

func findWindow(name string) fyne.Window {
	for _, w := range fyne.CurrentApp().Driver().AllWindows() {
		if w.Title() == name {
			return w
		}
	}

	return nil
}

func saveImage(img image.Image, filename, name string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if writer == nil {
			return // user cancelled
		}
		defer writer.Close()
		if err := png.Encode(writer, img); err != nil {
			showError(err, name)
			return
		}
	}, findWindow(name))
	d.SetFileName(filename)
	d.Show()
}

func showError(err error, name string) {
	if err != nil {
		d := dialog.NewError(err, findWindow(name))
		d.Show()
	}
}
