// Package morphtab provides pixel population-count and centroid queries
// over a pix.Bitmap, built from an 8-bit lookup table the way the teacher
// builds its pixel-sum and pixel-centroid tables, scanning each 32-bit
// word of the packed buffer one byte at a time.
package morphtab

import "morphops/pix"

var sumTab8 [256]uint8
var centroidTab8 [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		var sum, weighted uint8
		for b := 0; b < 8; b++ {
			if i&(1<<uint(7-b)) != 0 {
				sum++
				weighted += uint8(b)
			}
		}
		sumTab8[i] = sum
		centroidTab8[i] = weighted
	}
}

// forEachRowByte walks b row by row, byte by byte (MSB-first, matching the
// bitmap's packing), invoking fn with each byte's column offset, its
// pad-masked value and its set-bit count.
func forEachRowByte(b *pix.Bitmap, fn func(y, colBase int, byteVal byte, cnt int)) {
	for y := 0; y < b.Height; y++ {
		rowStart := y * b.WordStride
		bitsLeft := b.Width
		colBase := 0
		for w := 0; w < b.WordStride && bitsLeft > 0; w++ {
			word := b.Data[rowStart+w]
			for shift := 24; shift >= 0 && bitsLeft > 0; shift -= 8 {
				nbits := 8
				if bitsLeft < 8 {
					nbits = bitsLeft
				}
				byteVal := byte(word >> uint(shift))
				if nbits < 8 {
					byteVal &= 0xFF << uint(8-nbits)
				}
				cnt := int(sumTab8[byteVal])
				fn(y, colBase, byteVal, cnt)
				bitsLeft -= nbits
				colBase += 8
			}
		}
	}
}

// CountPixels returns the number of ON pixels in b.
func CountPixels(b *pix.Bitmap) int {
	count := 0
	forEachRowByte(b, func(_, _ int, _ byte, cnt int) {
		count += cnt
	})
	return count
}

// Point is a 2-D centroid location.
type Point struct {
	X, Y float32
}

// Centroid returns the centroid of b's ON pixels: the unweighted mean of
// their (x, y) coordinates. The centroid of an all-OFF bitmap is the
// origin.
func Centroid(b *pix.Bitmap) Point {
	var xsum, ysum, pixsum int
	forEachRowByte(b, func(y, colBase int, byteVal byte, cnt int) {
		if cnt == 0 {
			return
		}
		xsum += cnt*colBase + int(centroidTab8[byteVal])
		ysum += cnt * y
		pixsum += cnt
	})
	if pixsum == 0 {
		return Point{}
	}
	return Point{X: float32(xsum) / float32(pixsum), Y: float32(ysum) / float32(pixsum)}
}
