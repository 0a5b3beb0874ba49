package pix

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToImageAndFromImageRoundTrip(t *testing.T) {
	b := New(6, 4)
	b.SetPixel(1, 1, true)
	b.SetPixel(4, 3, true)

	img := b.ToImage()
	back := FromImage(img)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			assert.Equal(t, b.GetPixel(x, y), back.GetPixel(x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestScaledProducesRequestedSize(t *testing.T) {
	b := New(20, 20)
	b.SetPixel(10, 10, true)
	out := b.Scaled(10, 10)
	assert.Equal(t, 10, out.Width)
	assert.Equal(t, 10, out.Height)
}

func TestFromImageThresholds(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 255})
	b := FromImage(img)
	assert.True(t, b.GetPixel(0, 0))
	assert.False(t, b.GetPixel(1, 0))
}
