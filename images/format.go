package images

import (
	"path/filepath"
	"strings"
)

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
	FormatBMP  ImageFormat = "bmp"
	FormatTIFF ImageFormat = "tiff"
)

// Formats lists every supported format.
var Formats = []ImageFormat{FormatJPEG, FormatWebP, FormatPNG, FormatBMP, FormatTIFF}

// FormatFromPath guesses the format from a file extension. ok is false for
// unknown extensions.
func FormatFromPath(path string) (f ImageFormat, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".png":
		return FormatPNG, true
	case ".webp":
		return FormatWebP, true
	case ".bmp":
		return FormatBMP, true
	case ".tif", ".tiff":
		return FormatTIFF, true
	}
	return "", false
}

// Lossless reports whether an encode/decode round trip preserves every channel.
func (f ImageFormat) Lossless() bool {
	return f != FormatJPEG
}
