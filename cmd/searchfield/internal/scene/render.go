package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/searchfield/pkg/graphics"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

// RenderPNG paints field onto a fresh raster canvas and writes it to path.
func RenderPNG(field *searchfield.Field, path string) error {
	size := field.Size()
	canvas := graphics.NewRasterCanvas(int(size.Width), int(size.Height))
	defer func() { _ = canvas.Close() }()
	field.Paint(canvas)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// FramePath returns the file name of frame i inside dir.
func FramePath(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
}

// Record paints field into a display list.
func Record(field *searchfield.Field) *graphics.DisplayList {
	var rec graphics.PictureRecorder
	field.Paint(rec.BeginRecording(field.Size()))
	return rec.EndRecording()
}
