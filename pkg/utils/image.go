//go:build !test

package utils

import (
	"image"

	"github.com/sqweek/dialog"
)

// SaveImage asks the user where to save img, and writes it there
// as a PNG.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Screenshot").Save()
	if err != nil {
		return err
	}

	return WritePNG(filename, img)
}
