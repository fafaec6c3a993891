//go:build !test

package utils

import "github.com/sqweek/dialog"

// AskForROM opens a file dialog for the user to choose a ROM,
// starting in startingDir.
func AskForROM(startingDir string) (string, error) {
	return dialog.File().
		SetStartDir(startingDir).
		Title("Open ROM").
		Filter("CHIP-8 ROMs (*.ch8, *.c8, *.rom)", "ch8", "c8", "rom").
		Filter("Archives (*.zip, *.7z, *.gz)", "zip", "7z", "gz").
		Load()
}
