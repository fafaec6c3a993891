package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/thelolagemann/gochip8/pkg/display/event"
)

// maxLogLines is the number of lines shown by the Log view.
const maxLogLines = 20

// Log shows the most recent lines logged by the machine.
type Log struct {
	lines func() []string
}

func NewLog(lines func() []string) *Log {
	return &Log{lines: lines}
}

func (l *Log) Title() string {
	return "Log"
}

func (l *Log) Run(window fyne.Window, events <-chan event.Event) error {
	view := container.NewVBox()
	window.SetContent(container.NewVScroll(view))
	window.Resize(fyne.NewSize(480, 360))

	var shown []string
	go poll(events, func() {
		lines := l.lines()
		if len(lines) > maxLogLines {
			lines = lines[len(lines)-maxLogLines:]
		}
		if equal(lines, shown) {
			return
		}
		shown = lines

		objects := make([]fyne.CanvasObject, len(lines))
		for i, line := range lines {
			label := widget.NewLabel(line)
			label.TextStyle.Monospace = true
			objects[i] = label
		}
		view.Objects = objects
		view.Refresh()
	})

	return nil
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
