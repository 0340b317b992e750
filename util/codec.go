// Package util - grid codecs and file loading for the engine's collaborators.
package util

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/nvr-ai/go-pixelgrid/images"
)

// ErrUnsupportedFormat is returned for formats or file extensions the codec
// does not handle.
var ErrUnsupportedFormat = errors.New("util: unsupported image format")

// JPEGQuality is the quality used when encoding JPEG output.
const JPEGQuality = 95

// Decode reads one image of the given format from r into a new grid.
//
// Arguments:
// - r: The encoded image stream.
// - format: The image format of the stream.
//
// Returns:
// - *images.Grid: The decoded grid.
// - error: ErrUnsupportedFormat, a decoder error, or images.ErrMalformedGrid for
// a zero-sized image.
func Decode(r io.Reader, format images.ImageFormat) (*images.Grid, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case images.FormatJPEG:
		img, err = jpeg.Decode(r)
	case images.FormatPNG:
		img, err = png.Decode(r)
	case images.FormatBMP:
		img, err = bmp.Decode(r)
	case images.FormatTIFF:
		img, err = tiff.Decode(r)
	case images.FormatWebP:
		img, err = webp.Decode(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "decode %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", format)
	}
	return images.FromImage(img)
}

// Encode writes g to w in the given format. WebP output is lossless.
func Encode(w io.Writer, g *images.Grid, format images.ImageFormat) error {
	img := images.ToImage(g)

	var err error
	switch format {
	case images.FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case images.FormatPNG:
		err = png.Encode(w, img)
	case images.FormatBMP:
		err = bmp.Encode(w, img)
	case images.FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case images.FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "encode %q", format)
	}
	return errors.Wrapf(err, "encode %s", format)
}

// DecodeImage decodes an encoded images.Image. A non-zero Width/Height must
// match the decoded size.
func DecodeImage(img images.Image) (*images.Grid, error) {
	g, err := Decode(bytes.NewReader(img.Data), img.Format)
	if err != nil {
		return nil, err
	}
	if (img.Width != 0 && img.Width != g.Width()) || (img.Height != 0 && img.Height != g.Height()) {
		return nil, errors.Wrapf(images.ErrMalformedGrid, "declared %dx%d, decoded %dx%d",
			img.Width, img.Height, g.Width(), g.Height())
	}
	return g, nil
}

// EncodeImage encodes g into an images.Image of the given format.
func EncodeImage(g *images.Grid, format images.ImageFormat) (images.Image, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, format); err != nil {
		return images.Image{}, err
	}
	return images.Image{
		Format: format,
		Data:   buf.Bytes(),
		Width:  g.Width(),
		Height: g.Height(),
	}, nil
}

// ReadImage reads the encoded file at path, choosing the format from its
// extension. Width and Height are left zero; DecodeImage fills in the grid.
func ReadImage(path string) (images.Image, error) {
	format, ok := images.FormatFromPath(path)
	if !ok {
		return images.Image{}, errors.Wrapf(ErrUnsupportedFormat, "read %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return images.Image{}, errors.Wrap(err, "read")
	}
	return images.Image{Format: format, Data: data}, nil
}

// WriteImage writes img's encoded bytes to path. The file is created or
// truncated. The extension of path must name img.Format.
func WriteImage(path string, img images.Image) error {
	format, ok := images.FormatFromPath(path)
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "write %s", path)
	}
	if format != img.Format {
		return errors.Wrapf(ErrUnsupportedFormat, "write %s image to %s", img.Format, path)
	}
	return errors.Wrap(os.WriteFile(path, img.Data, 0o644), "write")
}

// Load decodes the image file at path, choosing the format from its extension.
func Load(path string) (*images.Grid, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	g, err := DecodeImage(img)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return g, nil
}

// Save encodes g to path, choosing the format from its extension. The file is
// created or truncated.
func Save(path string, g *images.Grid) error {
	format, ok := images.FormatFromPath(path)
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "save %s", path)
	}
	img, err := EncodeImage(g, format)
	if err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return WriteImage(path, img)
}
