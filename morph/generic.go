package morph

import (
	"morphops/internal/morphlog"
	"morphops/pix"
	"morphops/sel"
)

// clearEdges clears the border strips a HIT cell of maximal translation
// (left, top, right, bottom) could have pulled in from beyond the image
// under the asymmetric boundary condition.
func clearEdges(b *pix.Bitmap, left, top, right, bottom int) error {
	if left > 0 {
		if err := b.RasterOp(0, 0, left, b.Height, pix.PixClr, nil, 0, 0); err != nil {
			return err
		}
	}
	if right > 0 {
		if err := b.RasterOp(b.Width-right, 0, right, b.Height, pix.PixClr, nil, 0, 0); err != nil {
			return err
		}
	}
	if top > 0 {
		if err := b.RasterOp(0, 0, b.Width, top, pix.PixClr, nil, 0, 0); err != nil {
			return err
		}
	}
	if bottom > 0 {
		if err := b.RasterOp(0, b.Height-bottom, b.Width, bottom, pix.PixClr, nil, 0, 0); err != nil {
			return err
		}
	}
	return nil
}

// Dilate computes the dilation of s by sl into d, allocating d if nil.
// Dilation is dst := OR over every HIT cell (i,j) of src translated by
// (j-Cx, i-Cy).
func Dilate(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, t, err := processArgs1("Dilate", d, s, sl)
	if err != nil {
		return nil, err
	}
	if err := dest.ClearAll(); err != nil {
		return nil, err
	}
	for i := 0; i < sl.Height; i++ {
		for j := 0; j < sl.Width; j++ {
			if sl.Data[i][j] != sel.Hit {
				continue
			}
			if err := dest.RasterOp(j-sl.Cx, i-sl.Cy, s.Width, s.Height, pix.PixSrcOrDst, t, 0, 0); err != nil {
				morphlog.Log.Debug("Dilate: rasterop failed at sel cell (%d,%d): %v", i, j, err)
				return nil, err
			}
		}
	}
	return dest, nil
}

// Erode computes the erosion of s by sl into d, allocating d if nil.
// Erosion is dst := AND over every HIT cell (i,j) of src translated by
// (Cx-j, Cy-i); under the asymmetric boundary condition, the border strip
// a HIT cell could reach past the edge is cleared afterward.
func Erode(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, t, err := processArgs1("Erode", d, s, sl)
	if err != nil {
		return nil, err
	}
	if err := dest.SetAll(); err != nil {
		return nil, err
	}
	for i := 0; i < sl.Height; i++ {
		for j := 0; j < sl.Width; j++ {
			if sl.Data[i][j] != sel.Hit {
				continue
			}
			if err := dest.RasterOp(sl.Cx-j, sl.Cy-i, s.Width, s.Height, pix.PixSrcAndDst, t, 0, 0); err != nil {
				morphlog.Log.Debug("Erode: rasterop failed at sel cell (%d,%d): %v", i, j, err)
				return nil, err
			}
		}
	}
	if CurrentBoundaryCondition() == Asymmetric {
		xp, yp, xn, yn := sl.MaxTranslations()
		if err := clearEdges(dest, xp, yp, xn, yn); err != nil {
			return nil, err
		}
	}
	return dest, nil
}

// HMT computes the hit-miss transform of s by sl into d, allocating d if
// nil. HMT combines a HIT-cell erosion with a MISS-cell erosion of the
// complement: dst starts from the first non-DONT_CARE cell (ClearAll plus
// OR for a HIT, SetAll plus AND-NOT for a MISS) and every subsequent cell
// ANDs its own contribution in.
func HMT(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, t, err := processArgs1("HMT", d, s, sl)
	if err != nil {
		return nil, err
	}
	first := true
	for i := 0; i < sl.Height; i++ {
		for j := 0; j < sl.Width; j++ {
			val := sl.Data[i][j]
			if val == sel.DontCare {
				continue
			}
			dx, dy := sl.Cx-j, sl.Cy-i
			if first {
				first = false
				switch val {
				case sel.Hit:
					if err := dest.ClearAll(); err != nil {
						return nil, err
					}
					if err := dest.RasterOp(dx, dy, s.Width, s.Height, pix.PixSrc, t, 0, 0); err != nil {
						return nil, err
					}
				case sel.Miss:
					if err := dest.SetAll(); err != nil {
						return nil, err
					}
					if err := dest.RasterOp(dx, dy, s.Width, s.Height, pix.PixNotSrc, t, 0, 0); err != nil {
						return nil, err
					}
				}
				continue
			}
			switch val {
			case sel.Hit:
				if err := dest.RasterOp(dx, dy, s.Width, s.Height, pix.PixSrcAndDst, t, 0, 0); err != nil {
					morphlog.Log.Debug("HMT: rasterop failed at sel cell (%d,%d): %v", i, j, err)
					return nil, err
				}
			case sel.Miss:
				if err := dest.RasterOp(dx, dy, s.Width, s.Height, pix.PixNotSrcAndDst, t, 0, 0); err != nil {
					morphlog.Log.Debug("HMT: rasterop failed at sel cell (%d,%d): %v", i, j, err)
					return nil, err
				}
			}
		}
	}
	if first {
		// sel was entirely DONT_CARE; every pixel matches trivially.
		if err := dest.SetAll(); err != nil {
			return nil, err
		}
	}
	xp, yp, xn, yn := sl.MaxTranslations()
	if err := clearEdges(dest, xp, yp, xn, yn); err != nil {
		return nil, err
	}
	return dest, nil
}
