package views

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/thelolagemann/gochip8/internal/ram"
	"github.com/thelolagemann/gochip8/pkg/display/event"
	"github.com/thelolagemann/gochip8/pkg/utils"
)

// bytesPerRow is the number of bytes shown on each row.
const bytesPerRow = 16

// Memory shows the contents of RAM as a hex dump.
type Memory struct {
	widget.BaseWidget

	source Source
	list   *widget.List

	data []byte
	pc   int
	mu   sync.RWMutex
}

func NewMemory(source Source) *Memory {
	m := &Memory{source: source, data: make([]byte, ram.Size)}
	m.ExtendBaseWidget(m)
	return m
}

func (m *Memory) Title() string {
	return "Memory"
}

func (m *Memory) CreateRenderer() fyne.WidgetRenderer {
	m.list = m.createHexList()
	return widget.NewSimpleRenderer(container.NewPadded(m.list))
}

func (m *Memory) createHexList() *widget.List {
	numRows := (len(m.data) + bytesPerRow - 1) / bytesPerRow
	dim := color.RGBA{0x7f, 0x7f, 0x7f, 255}

	return widget.NewList(
		func() int {
			return numRows
		},
		func() fyne.CanvasObject {
			hexLabels := make([]fyne.CanvasObject, bytesPerRow)
			for i := range hexLabels {
				hexLabels[i] = mono("00", themeColor(theme.ColorNameForeground))
			}

			asciiLabels := make([]fyne.CanvasObject, bytesPerRow)
			for i := range asciiLabels {
				asciiLabels[i] = mono(".", themeColor(theme.ColorNameForeground))
			}

			return container.NewHBox(
				mono("0x000", themeColor(theme.ColorNameForeground)),
				mono("  ", themeColor(theme.ColorNameForeground)), // spacing
				container.NewHBox(hexLabels...),
				mono("  ", themeColor(theme.ColorNameForeground)), // spacing
				container.NewHBox(asciiLabels...),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			offset := id * bytesPerRow

			m.mu.RLock()
			address, hexValues, asciiValues := formatRow(offset, m.data)
			pc := m.pc
			m.mu.RUnlock()

			hbox := item.(*fyne.Container)
			hbox.Objects[0].(*canvas.Text).Text = address
			hbox.Objects[0].Refresh()

			hexContainer := hbox.Objects[2].(*fyne.Container)
			for i, hexText := range hexValues {
				hexLabel := hexContainer.Objects[i].(*canvas.Text)
				hexLabel.Text = hexText

				switch {
				case offset+i == pc || offset+i == pc+1:
					hexLabel.Color = themeColor(theme.ColorNamePrimary)
				case hexText == "00":
					hexLabel.Color = dim
				default:
					hexLabel.Color = themeColor(theme.ColorNameForeground)
				}
				hexLabel.Refresh()
			}

			asciiContainer := hbox.Objects[4].(*fyne.Container)
			for i, asciiText := range asciiValues {
				asciiLabel := asciiContainer.Objects[i].(*canvas.Text)
				asciiLabel.Text = asciiText
				if asciiText == "." {
					asciiLabel.Color = dim
				} else {
					asciiLabel.Color = themeColor(theme.ColorNameForeground)
				}
				asciiLabel.Refresh()
			}
		},
	)
}

// Refresh copies the memory of the machine, and redraws the rows.
func (m *Memory) Refresh() {
	s := m.source()

	m.mu.Lock()
	copy(m.data, s.RAM)
	m.pc = int(s.Registers.PC)
	m.mu.Unlock()

	if m.list != nil {
		m.list.Refresh()
	}
}

func (m *Memory) Run(window fyne.Window, events <-chan event.Event) error {
	window.SetContent(m)
	window.Resize(fyne.NewSize(720, 480))
	go poll(events, m.Refresh)

	return nil
}

func formatRow(offset int, data []byte) (string, []string, []string) {
	address := fmt.Sprintf("0x%03X", offset)

	hexValues := make([]string, bytesPerRow)
	asciiValues := make([]string, bytesPerRow)
	for i := 0; i < bytesPerRow && offset+i < len(data); i++ {
		hexValues[i] = fmt.Sprintf("%02X", data[offset+i])
		asciiValues[i] = utils.FormatASCII(data[offset+i])
	}

	return address, hexValues, asciiValues
}
