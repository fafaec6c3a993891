package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// ROMExtensions are the file extensions recognised as CHIP-8
// programs when searching an archive.
var ROMExtensions = []string{".ch8", ".c8", ".rom"}

// LoadFile loads the given file and performs decompression if
// necessary. Archives (.zip, .7z) are searched for the first file
// with one of the ROMExtensions, falling back to the first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		decoder, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		defer decoder.Close()
		return io.ReadAll(decoder)
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		files := make([]archiveFile, 0, len(r.File))
		for _, f := range r.File {
			if !f.FileInfo().IsDir() {
				files = append(files, archiveFile{f.Name, f.Open})
			}
		}
		return readArchive(filename, files)
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		files := make([]archiveFile, 0, len(r.File))
		for _, f := range r.File {
			if !f.FileInfo().IsDir() {
				files = append(files, archiveFile{f.Name, f.Open})
			}
		}
		return readArchive(filename, files)
	default:
		// return the data as is
		return data, nil
	}
}

type archiveFile struct {
	name string
	open func() (io.ReadCloser, error)
}

// readArchive reads the ROM from the files of an archive.
func readArchive(filename string, files []archiveFile) ([]byte, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
	}

	chosen := files[0]
	for _, f := range files {
		if IsROM(f.name) {
			chosen = f
			break
		}
	}

	rc, err := chosen.open()
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", filename, chosen.name, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// IsROM returns true if name has one of the ROMExtensions.
func IsROM(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ROMExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ROMName returns the base name of a ROM file, without any
// archive or ROM extensions, e.g. "roms/pong.ch8.gz" -> "pong".
func ROMName(filename string) string {
	name := filepath.Base(filename)
	for {
		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case ".gz", ".zip", ".7z", ".ch8", ".c8", ".rom":
			name = name[:len(name)-len(ext)]
			continue
		}
		return name
	}
}
