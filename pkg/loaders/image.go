package loaders

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrImageFormat is returned for an output path or format no encoder handles
var ErrImageFormat = errors.New("loaders: unsupported image format")

// FormatFromPath picks an image format from a file extension
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", errors.Wrapf(ErrImageFormat, "%q", ext)
	}
}

// EncodeImage writes img to w in the named format (png, jpeg, bmp or tiff)
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Wrapf(ErrImageFormat, "%q", format)
	}
}

// SaveImage writes img to path, choosing the encoder from the extension
func SaveImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "loaders: creating output directory")
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "loaders: creating image file")
	}

	if err := EncodeImage(file, img, format); err != nil {
		file.Close()
		return errors.Wrapf(err, "loaders: encoding %s", format)
	}
	return file.Close()
}
