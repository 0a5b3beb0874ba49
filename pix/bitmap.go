// Package pix implements the packed 1-bpp bitmap container and the
// boolean-lattice rasterop engine that every morphological operator is
// built from.
package pix

import (
	"fmt"
	"strings"

	"morphops/internal/morphlog"
	"morphops/internal/operr"
)

// Bitmap is a packed 1-bpp image. Each row occupies WordStride 32-bit words,
// pixels packed MSB-first within a word: pixel x of a row lives at bit
// 31-(x&31) of word x>>5. A set bit is ON (foreground); bits beyond Width
// within the last word of a row ("pad bits") start at 0 and no operation in
// this package sets them, but NewWithData keeps whatever the caller passes.
type Bitmap struct {
	Width, Height int
	WordStride    int
	Data          []uint32
}

// wordsFor returns the number of 32-bit words needed to hold w bits.
func wordsFor(w int) int {
	return (w + 31) >> 5
}

// New creates a cleared w x h bitmap.
func New(w, h int) *Bitmap {
	stride := wordsFor(w)
	return &Bitmap{
		Width:      w,
		Height:     h,
		WordStride: stride,
		Data:       make([]uint32, stride*h),
	}
}

// NewWithData wraps an existing word slice as a w x h bitmap. The slice
// must already hold exactly wordsFor(w)*h words. The words are used as
// given: pad bits are not cleared.
func NewWithData(w, h int, data []uint32) (*Bitmap, error) {
	stride := wordsFor(w)
	if len(data) != stride*h {
		return nil, operr.Errorf("NewWithData", "data length %d does not match %dx%d (stride %d words)", len(data), w, h, stride)
	}
	return &Bitmap{Width: w, Height: h, WordStride: stride, Data: data}, nil
}

// CreateTemplate returns a cleared bitmap with the same geometry as src.
func CreateTemplate(src *Bitmap) *Bitmap {
	return New(src.Width, src.Height)
}

// Clone returns a new handle sharing src's backing storage: mutating one
// bitmap's pixels through RasterOp mutates the other's too.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{Width: b.Width, Height: b.Height, WordStride: b.WordStride, Data: b.Data}
}

// Copy returns an independent deep copy of b.
func (b *Bitmap) Copy() *Bitmap {
	data := make([]uint32, len(b.Data))
	copy(data, b.Data)
	return &Bitmap{Width: b.Width, Height: b.Height, WordStride: b.WordStride, Data: data}
}

// Copy copies src's pixels into dst. If dst is nil, an independent copy of
// src is returned; otherwise dst must have src's exact size.
func Copy(dst, src *Bitmap) (*Bitmap, error) {
	if src == nil {
		return nil, operr.Error("Copy", "source bitmap not defined")
	}
	if dst == nil {
		return src.Copy(), nil
	}
	if dst == src {
		return dst, nil
	}
	if !dst.SizesEqual(src) {
		return nil, operr.Errorf("Copy", "destination size %dx%d does not match source size %dx%d", dst.Width, dst.Height, src.Width, src.Height)
	}
	copy(dst.Data, src.Data)
	return dst, nil
}

// SizesEqual reports whether a and b have identical width and height.
func (b *Bitmap) SizesEqual(other *Bitmap) bool {
	return b.Width == other.Width && b.Height == other.Height
}

// Dimensions returns width, height and the fixed bit depth (always 1).
func (b *Bitmap) Dimensions() (w, h, depth int) {
	return b.Width, b.Height, 1
}

// ClearAll sets every pixel OFF.
func (b *Bitmap) ClearAll() error {
	return b.RasterOp(0, 0, b.Width, b.Height, PixClr, nil, 0, 0)
}

// SetAll sets every pixel ON.
func (b *Bitmap) SetAll() error {
	return b.RasterOp(0, 0, b.Width, b.Height, PixSet, nil, 0, 0)
}

func (b *Bitmap) wordIndex(x, y int) int {
	return y*b.WordStride + (x >> 5)
}

// GetPixel reports whether pixel (x,y) is ON. Out-of-bounds reads return
// false, matching the library's OFF-outside-the-image convention.
func (b *Bitmap) GetPixel(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	word := b.Data[b.wordIndex(x, y)]
	shift := uint(31 - (x & 31))
	return (word>>shift)&1 != 0
}

// SetPixel sets pixel (x,y) to val. Out-of-bounds writes are silently
// ignored.
func (b *Bitmap) SetPixel(x, y int, val bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	idx := b.wordIndex(x, y)
	shift := uint(31 - (x & 31))
	if val {
		b.Data[idx] |= 1 << shift
	} else {
		b.Data[idx] &^= 1 << shift
	}
}

// String renders the bitmap as an ASCII-art grid ('#' for ON, '.' for OFF),
// mirroring the teacher's debug dump.
func (b *Bitmap) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bitmap %dx%d\n", b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.GetPixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AddBorder pads b by size pixels on every side, filled with fillOn (ON if
// true, OFF if false).
func (b *Bitmap) AddBorder(size int, fillOn bool) (*Bitmap, error) {
	return b.AddBorderGeneral(size, size, size, size, fillOn)
}

// AddBorderGeneral pads b with independently sized borders on each side.
func (b *Bitmap) AddBorderGeneral(left, right, top, bottom int, fillOn bool) (*Bitmap, error) {
	if left < 0 || right < 0 || top < 0 || bottom < 0 {
		morphlog.Log.Debug("AddBorderGeneral: negative border size %d/%d/%d/%d", left, right, top, bottom)
		return nil, operr.Error("AddBorderGeneral", "negative border size")
	}
	out := New(b.Width+left+right, b.Height+top+bottom)
	if fillOn {
		if err := out.SetAll(); err != nil {
			return nil, err
		}
	}
	if err := out.RasterOp(left, top, b.Width, b.Height, PixSrc, b, 0, 0); err != nil {
		return nil, operr.Wrap(err, "AddBorderGeneral", "blitting source into padded frame")
	}
	return out, nil
}

// RemoveBorder strips size pixels from every side.
func (b *Bitmap) RemoveBorder(size int) (*Bitmap, error) {
	return b.RemoveBorderGeneral(size, size, size, size)
}

// RemoveBorderGeneral strips independently sized borders from each side.
func (b *Bitmap) RemoveBorderGeneral(left, right, top, bottom int) (*Bitmap, error) {
	w := b.Width - left - right
	h := b.Height - top - bottom
	if w <= 0 || h <= 0 {
		return nil, operr.Errorf("RemoveBorderGeneral", "border %d/%d/%d/%d too large for %dx%d bitmap", left, right, top, bottom, b.Width, b.Height)
	}
	out := New(w, h)
	if err := out.RasterOp(0, 0, w, h, PixSrc, b, left, top); err != nil {
		return nil, operr.Wrap(err, "RemoveBorderGeneral", "blitting interior out of bordered frame")
	}
	return out, nil
}
