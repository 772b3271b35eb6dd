package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("app: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}
