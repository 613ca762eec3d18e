package imgio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/NotActuallyHim/ImageEditor/pixel"
)

// Load decodes the image at path into a grid. It also returns the format
// name reported by the decoder. Every failure is a *pixel.DecodeError.
func Load(path string) (*pixel.Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &pixel.DecodeError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	g, format, err := decode(f)
	if err != nil {
		return nil, "", &pixel.DecodeError{Path: path, Err: err}
	}
	return g, format, nil
}

// Decode reads any registered image format from r. Failures are returned
// as a *pixel.DecodeError.
func Decode(r io.Reader) (*pixel.Grid, string, error) {
	g, format, err := decode(r)
	if err != nil {
		return nil, "", &pixel.DecodeError{Err: err}
	}
	return g, format, nil
}

func decode(r io.Reader) (*pixel.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}

	g, err := pixel.FromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("unusable %s image: %w", format, err)
	}
	return g, format, nil
}
