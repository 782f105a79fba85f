package capture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

var ErrNoFrame = errors.New("capture: empty frame")

// FrameFromRGB wraps tightly packed RGB rows, bottom row first as GL reads
// them, into an RGBA image. The rows are not flipped.
func FrameFromRGB(width, height int, pix []byte) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNoFrame
	}
	if len(pix) < width*height*3 {
		return nil, fmt.Errorf("capture: got %d bytes for %dx%d RGB frame", len(pix), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, o := 0, 0; i < width*height; i++ {
		img.Pix[o] = pix[i*3]
		img.Pix[o+1] = pix[i*3+1]
		img.Pix[o+2] = pix[i*3+2]
		img.Pix[o+3] = 0xff
		o += 4
	}
	return img, nil
}

// Writer stores bottom-up frames as top-down JPEG files.
type Writer struct {
	Quality int
}

func NewWriter(quality int) *Writer {
	return &Writer{Quality: quality}
}

func (w *Writer) Write(path string, frame image.Image) error {
	if frame == nil || frame.Bounds().Empty() {
		return ErrNoFrame
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("capture: create directory for %s: %w", path, err)
	}

	flipped := transform.FlipV(frame)
	if err := imgio.Save(path, flipped, imgio.JPEGEncoder(w.Quality)); err != nil {
		return fmt.Errorf("capture: save %s: %w", path, err)
	}
	return nil
}
