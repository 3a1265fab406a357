package render

import (
	"image"
	"image/color"
)

// ImageSurface is a Surface backed by an in-memory RGBA image. The optional
// present hook receives the image after every finished frame.
type ImageSurface struct {
	img       *image.RGBA
	onPresent func(*image.RGBA)
	frames    int
}

// NewImageSurface allocates a w*h surface.
func NewImageSurface(w, h int, onPresent func(*image.RGBA)) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h)), onPresent: onPresent}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Frames returns the number of presented frames.
func (s *ImageSurface) Frames() int { return s.frames }

// Clear fills the whole surface with c.
func (s *ImageSurface) Clear(c color.RGBA) {
	s.FillRect(0, 0, s.img.Rect.Dx(), s.img.Rect.Dy(), c)
}

// FillRect fills the rectangle clipped to the surface bounds.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		base := s.img.PixOffset(r.Min.X, py)
		row := s.img.Pix[base : base+4*r.Dx()]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// Present finishes the frame.
func (s *ImageSurface) Present() {
	s.frames++
	if s.onPresent != nil {
		s.onPresent(s.img)
	}
}
