package images

import (
	"image"
	"image/color"
)

// Image is an encoded image handed between the engine's collaborators.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The encoded data of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// FromImage copies img into a new grid with the same width and height. Alpha is
// discarded: each pixel's non-premultiplied RGB channels are kept as is.
//
// Arguments:
//   - img: Any image.Image. Bounds need not start at (0, 0).
//
// Returns:
//   - *Grid: The grid, row 0 being the image's top scanline.
//   - error: ErrMalformedGrid when img has an empty bounds rectangle.
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	g, err := NewGrid(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}

	if rgba, ok := img.(*image.RGBA); ok {
		fromRGBA(g, rgba)
		return g, nil
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.pix[(y-b.Min.Y)*g.width : (y-b.Min.Y+1)*g.width]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[x-b.Min.X] = Color{R: c.R, G: c.G, B: c.B}
		}
	}
	return g, nil
}

// fromRGBA reads raw bytes instead of going through color.Model per pixel.
// Opaque pixels (the common case after decoding) are copied directly.
func fromRGBA(g *Grid, src *image.RGBA) {
	b := src.Rect
	for y := 0; y < b.Dy(); y++ {
		off := y * src.Stride
		row := g.pix[y*g.width : (y+1)*g.width]
		for x := range row {
			p := src.Pix[off+x*4 : off+x*4+4 : off+x*4+4]
			if p[3] == 0xff {
				row[x] = Color{R: p[0], G: p[1], B: p[2]}
				continue
			}
			c := color.NRGBAModel.Convert(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}).(color.NRGBA)
			row[x] = Color{R: c.R, G: c.G, B: c.B}
		}
	}
}

// ToImage renders g as an opaque *image.RGBA with bounds (0, 0)-(W, H).
func ToImage(g *Grid) *image.RGBA {
	mustBeWellFormed(g)
	dst := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		off := y * dst.Stride
		for x, c := range g.pix[y*g.width : (y+1)*g.width] {
			p := dst.Pix[off+x*4 : off+x*4+4 : off+x*4+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
		}
	}
	return dst
}
