// Package themes provides the fyne theme of the emulator.
package themes

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var _ fyne.Theme = Default{}

// Default is a dark theme with phosphor green highlights.
type Default struct{}

var (
	primaryA20 = color.NRGBA{0x33, 0xff, 0x66, 0xff}
	primaryA60 = color.NRGBA{0x85, 0xff, 0xa3, 0xff}

	surfaceA0  = color.NRGBA{0x12, 0x16, 0x14, 0xff}
	surfaceA20 = color.NRGBA{0x27, 0x2c, 0x29, 0xff}
	surfaceA40 = color.NRGBA{0x3e, 0x43, 0x40, 0xff}
	surfaceA60 = color.NRGBA{0x56, 0x5b, 0x58, 0xff}

	disabled = color.NRGBA{35, 35, 35, 255}
)

const (
	ColorNameSecondary              fyne.ThemeColorName = "secondary"
	ColorNameBackgroundOnBackground fyne.ThemeColorName = "background-on-background"
)

var colorMap = map[fyne.ThemeColorName]color.Color{
	ColorNameBackgroundOnBackground: surfaceA20,
	ColorNameSecondary:              primaryA60,
	theme.ColorNamePrimary:          primaryA20,
	theme.ColorNameBackground:       surfaceA0,
	theme.ColorNameDisabled:         disabled,
	theme.ColorNameButton:           surfaceA40,
	theme.ColorNameInputBackground:  surfaceA40,
	theme.ColorNameFocus:            surfaceA20,
	theme.ColorNameHover:            surfaceA60,
}

func (d Default) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := colorMap[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (d Default) Font(style fyne.TextStyle) fyne.Resource    { return theme.DefaultTheme().Font(style) }
func (d Default) Icon(name fyne.ThemeIconName) fyne.Resource { return theme.DefaultTheme().Icon(name) }
func (d Default) Size(name fyne.ThemeSizeName) float32       { return theme.DefaultTheme().Size(name) }
