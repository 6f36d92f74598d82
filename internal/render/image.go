package render

import (
	"image"
	"image/color"
)

// ImageSurface draws onto an in-memory RGBA image.
type ImageSurface struct {
	Img *image.RGBA
}

// NewImageSurface allocates a w*h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Fill paints every pixel.
func (s *ImageSurface) Fill(c color.Color) {
	fillRGBA(s.Img, s.Img.Rect, c)
}

// FillRect paints the rectangle clipped to the image bounds.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	fillRGBA(s.Img, image.Rect(x, y, x+w, y+h), c)
}

// fillRGBA writes c into every pixel of r that lies inside img.
func fillRGBA(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := img.PixOffset(r.Min.X, y)
		row := img.Pix[base : base+4*r.Dx()]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = uint8(cr >> 8)
			row[i+1] = uint8(cg >> 8)
			row[i+2] = uint8(cb >> 8)
			row[i+3] = uint8(ca >> 8)
		}
	}
}
