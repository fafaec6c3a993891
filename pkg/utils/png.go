package utils

import (
	"image"
	"image/png"
	"os"
	"strings"
)

// WritePNG encodes img to filename, adding a .png extension if
// filename has none.
func WritePNG(filename string, img image.Image) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(file, img); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
