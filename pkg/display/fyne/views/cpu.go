package views

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/thelolagemann/gochip8/internal/cpu"
	"github.com/thelolagemann/gochip8/pkg/display/event"
)

// CPU shows the registers, timers and call stack of the machine.
type CPU struct {
	widget.BaseWidget

	source Source

	regs  [cpu.NumRegisters]*widget.Label
	i     *widget.Label
	pc    *widget.Label
	dt    *widget.Label
	st    *widget.Label
	last  *widget.Label
	stack *widget.Label
}

func NewCPU(source Source) *CPU {
	c := &CPU{
		source: source,
		i:      widget.NewLabel("0x000"),
		pc:     widget.NewLabel("0x200"),
		dt:     widget.NewLabel("0"),
		st:     widget.NewLabel("0"),
		last:   widget.NewLabel(""),
		stack:  widget.NewLabel(""),
	}
	for i := range c.regs {
		c.regs[i] = widget.NewLabel("0x00")
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *CPU) Title() string {
	return "CPU"
}

func (c *CPU) CreateRenderer() fyne.WidgetRenderer {
	regs := container.NewGridWithColumns(4)
	for i, l := range c.regs {
		regs.Add(bold(fmt.Sprintf("V%X:", i)))
		regs.Add(l)
	}

	other := container.NewGridWithColumns(2,
		bold("I:"), c.i,
		bold("PC:"), c.pc,
		bold("DT:"), c.dt,
		bold("ST:"), c.st,
		bold("Last:"), c.last,
	)

	for _, grid := range []*fyne.Container{regs, other} {
		for _, l := range grid.Objects {
			if label, ok := l.(*widget.Label); ok {
				label.TextStyle.Monospace = true
			}
		}
	}
	c.stack.TextStyle.Monospace = true

	return widget.NewSimpleRenderer(container.NewVBox(
		newCard("Registers", regs),
		newCard("Timers", other),
		newCard("Stack", c.stack),
	))
}

// Refresh updates the values of the CPU registers in the widget
func (c *CPU) Refresh() {
	s := c.source()
	for i, l := range c.regs {
		l.SetText(fmt.Sprintf("0x%02X", s.Registers.V[i]))
	}
	c.i.SetText(fmt.Sprintf("0x%03X", s.Registers.I))
	c.pc.SetText(fmt.Sprintf("0x%03X", s.Registers.PC))
	c.dt.SetText(fmt.Sprintf("%d", s.Delay))
	c.st.SetText(fmt.Sprintf("%d", s.Sound))
	c.last.SetText(fmt.Sprintf("%04X %s", s.Last.Opcode, cpu.Disassemble(s.Last.Opcode)))
	c.stack.SetText(formatStack(s.Stack))
}

func (c *CPU) Run(window fyne.Window, events <-chan event.Event) error {
	window.SetContent(c)
	go poll(events, c.Refresh)

	return nil
}

// formatStack lists the return addresses, most recent first.
func formatStack(stack []uint16) string {
	if len(stack) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%2d: 0x%03X\n", i, stack[i])
	}
	return strings.TrimSuffix(b.String(), "\n")
}
