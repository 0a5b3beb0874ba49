package pix

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToImage renders b as a standard library image.Image (image.Gray, ON =
// black, OFF = white), for debugging and visualization. This module does
// not encode to any file format; callers reach for image/png et al. once
// they have this.
func (b *Bitmap) ToImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			v := uint8(255)
			if b.GetPixel(x, y) {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// FromImage thresholds an arbitrary image.Image into a Bitmap: a pixel is
// ON when its luma falls below the midpoint of the gray scale.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gr := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			out.SetPixel(x, y, gr.Y < 128)
		}
	}
	return out
}

// Scaled returns a thresholded nearest-neighbor resize of b to w x h, for
// previewing a bitmap too large to print one character per pixel.
func (b *Bitmap) Scaled(w, h int) *Bitmap {
	src := b.ToImage()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return FromImage(dst)
}
