package morph

import (
	"morphops/internal/operr"
	"morphops/pix"
	"morphops/sel"
)

// bricks returns the two one-dimensional structuring elements a rectangular
// hsize x vsize brick decomposes into: a 1-row horizontal run and a 1-column
// vertical run, each centered the way sel.CreateBrick centers a 2-D brick.
func bricks(hsize, vsize int) (horiz, vert *sel.Sel) {
	horiz = sel.CreateBrick(1, hsize, 0, hsize/2, sel.Hit)
	vert = sel.CreateBrick(vsize, 1, vsize/2, 0, sel.Hit)
	return horiz, vert
}

func validateBrickSize(process string, hsize, vsize int) error {
	if hsize < 1 || vsize < 1 {
		return operr.Errorf(process, "invalid brick size %dx%d", hsize, vsize)
	}
	return nil
}

// DilateBrick dilates s by an hsize x vsize all-HIT rectangular sel,
// decomposed into a horizontal pass then a vertical pass when both
// dimensions exceed 1.
func DilateBrick(d, s *pix.Bitmap, hsize, vsize int) (*pix.Bitmap, error) {
	if err := validateBrickSize("DilateBrick", hsize, vsize); err != nil {
		return nil, err
	}
	dest, err := reconcileDest("DilateBrick", d, s)
	if err != nil {
		return nil, err
	}
	switch {
	case hsize == 1 && vsize == 1:
		if _, err := pix.Copy(dest, s); err != nil {
			return nil, err
		}
		return dest, nil
	case hsize == 1 || vsize == 1:
		brick := sel.CreateBrick(vsize, hsize, vsize/2, hsize/2, sel.Hit)
		return Dilate(dest, s, brick)
	default:
		horiz, vert := bricks(hsize, vsize)
		t, err := Dilate(nil, s, horiz)
		if err != nil {
			return nil, err
		}
		return Dilate(dest, t, vert)
	}
}

// ErodeBrick erodes s by an hsize x vsize all-HIT rectangular sel, using
// the same separable decomposition as DilateBrick.
func ErodeBrick(d, s *pix.Bitmap, hsize, vsize int) (*pix.Bitmap, error) {
	if err := validateBrickSize("ErodeBrick", hsize, vsize); err != nil {
		return nil, err
	}
	dest, err := reconcileDest("ErodeBrick", d, s)
	if err != nil {
		return nil, err
	}
	switch {
	case hsize == 1 && vsize == 1:
		if _, err := pix.Copy(dest, s); err != nil {
			return nil, err
		}
		return dest, nil
	case hsize == 1 || vsize == 1:
		brick := sel.CreateBrick(vsize, hsize, vsize/2, hsize/2, sel.Hit)
		return Erode(dest, s, brick)
	default:
		horiz, vert := bricks(hsize, vsize)
		t, err := Erode(nil, s, horiz)
		if err != nil {
			return nil, err
		}
		return Erode(dest, t, vert)
	}
}

// OpenBrick opens s by an hsize x vsize brick, reusing two scratch
// bitmaps across the two erosion and two dilation passes instead of
// composing independent ErodeBrick/DilateBrick calls.
func OpenBrick(d, s *pix.Bitmap, hsize, vsize int) (*pix.Bitmap, error) {
	if err := validateBrickSize("OpenBrick", hsize, vsize); err != nil {
		return nil, err
	}
	dest, err := reconcileDest("OpenBrick", d, s)
	if err != nil {
		return nil, err
	}
	if hsize == 1 && vsize == 1 {
		if _, err := pix.Copy(dest, s); err != nil {
			return nil, err
		}
		return dest, nil
	}
	if hsize == 1 || vsize == 1 {
		brick := sel.CreateBrick(vsize, hsize, vsize/2, hsize/2, sel.Hit)
		return Open(dest, s, brick)
	}
	horiz, vert := bricks(hsize, vsize)
	t, err := Erode(nil, s, horiz)
	if err != nil {
		return nil, err
	}
	tv, err := Erode(nil, t, vert)
	if err != nil {
		return nil, err
	}
	if _, err := Dilate(t, tv, horiz); err != nil {
		return nil, err
	}
	if _, err := Dilate(dest, t, vert); err != nil {
		return nil, err
	}
	return dest, nil
}

// CloseBrick closes s by an hsize x vsize brick, with the same two-scratch
// reuse as OpenBrick but dilating before eroding.
func CloseBrick(d, s *pix.Bitmap, hsize, vsize int) (*pix.Bitmap, error) {
	if err := validateBrickSize("CloseBrick", hsize, vsize); err != nil {
		return nil, err
	}
	dest, err := reconcileDest("CloseBrick", d, s)
	if err != nil {
		return nil, err
	}
	if hsize == 1 && vsize == 1 {
		if _, err := pix.Copy(dest, s); err != nil {
			return nil, err
		}
		return dest, nil
	}
	if hsize == 1 || vsize == 1 {
		brick := sel.CreateBrick(vsize, hsize, vsize/2, hsize/2, sel.Hit)
		return Close(dest, s, brick)
	}
	horiz, vert := bricks(hsize, vsize)
	t, err := Dilate(nil, s, horiz)
	if err != nil {
		return nil, err
	}
	tv, err := Dilate(nil, t, vert)
	if err != nil {
		return nil, err
	}
	if _, err := Erode(t, tv, horiz); err != nil {
		return nil, err
	}
	if _, err := Erode(dest, t, vert); err != nil {
		return nil, err
	}
	return dest, nil
}

// CloseSafeBrick is CloseBrick under the symmetric boundary condition, and
// a border-padded CloseBrick under the asymmetric one: unlike CloseSafe,
// the padding is a single uniform bordsize on all four sides, rounded up
// to a full word, since a separable brick's reach is the same in both
// axes once cut down to max(hsize, vsize)/2.
func CloseSafeBrick(d, s *pix.Bitmap, hsize, vsize int) (*pix.Bitmap, error) {
	if err := validateBrickSize("CloseSafeBrick", hsize, vsize); err != nil {
		return nil, err
	}
	if CurrentBoundaryCondition() == Symmetric {
		return CloseBrick(d, s, hsize, vsize)
	}
	dest, err := reconcileDest("CloseSafeBrick", d, s)
	if err != nil {
		return nil, err
	}
	bordsize := 32 * ((max(hsize/2, vsize/2) + 31) / 32)
	padded, err := s.AddBorder(bordsize, false)
	if err != nil {
		return nil, err
	}
	if _, err := CloseBrick(padded, padded, hsize, vsize); err != nil {
		return nil, err
	}
	cropped, err := padded.RemoveBorder(bordsize)
	if err != nil {
		return nil, err
	}
	if _, err := pix.Copy(dest, cropped); err != nil {
		return nil, err
	}
	return dest, nil
}
