package app

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/xfmoulet/qoi"
)

// ExportImage writes an export surface to path, picking the codec from
// the extension: .qoi gets the QOI encoder, everything else PNG.
// Reading pixels back means this must run on the game goroutine.
func ExportImage(img *ebiten.Image, path string) error {
	if img == nil {
		return fmt.Errorf("no image to export")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	var encErr error
	if strings.EqualFold(filepath.Ext(path), ".qoi") {
		encErr = qoi.Encode(f, img)
	} else {
		encErr = png.Encode(f, img)
	}
	if cerr := f.Close(); encErr == nil {
		encErr = cerr
	}
	if encErr != nil {
		return fmt.Errorf("encode export %s: %w", path, encErr)
	}
	return nil
}

// ExportPath builds a timestamped file name in dir so repeated exports
// never clobber each other.
func ExportPath(dir, ext string, at time.Time) string {
	return filepath.Join(dir, "pitch-"+at.Format("20060102-150405")+ext)
}
