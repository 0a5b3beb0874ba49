package morph

import (
	"morphops/pix"
	"morphops/sel"
)

// Open computes the opening of s by sl (erosion followed by dilation)
// into d, allocating d if nil.
func Open(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, err := processArgs2("Open", d, s, sl)
	if err != nil {
		return nil, err
	}
	t, err := Erode(nil, s, sl)
	if err != nil {
		return nil, err
	}
	if _, err := Dilate(dest, t, sl); err != nil {
		return nil, err
	}
	return dest, nil
}

// Close computes the closing of s by sl (dilation followed by erosion)
// into d, allocating d if nil.
func Close(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, err := processArgs2("Close", d, s, sl)
	if err != nil {
		return nil, err
	}
	t, err := Dilate(nil, s, sl)
	if err != nil {
		return nil, err
	}
	if _, err := Erode(dest, t, sl); err != nil {
		return nil, err
	}
	return dest, nil
}

// CloseSafe computes closing the way Close does under the symmetric
// boundary condition, where closing is already guaranteed extensive. Under
// the asymmetric condition it instead pads s with enough OFF border that
// the interior closing result cannot be corrupted by the image edge, runs
// Close on the padded copy, and crops the border back off: left/right get
// the same word-rounded padding (xbord), top/bottom get the sel's own
// asymmetric vertical reach (yp/yn) directly.
func CloseSafe(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	if CurrentBoundaryCondition() == Symmetric {
		return Close(d, s, sl)
	}
	dest, err := processArgs2("CloseSafe", d, s, sl)
	if err != nil {
		return nil, err
	}
	xp, yp, xn, yn := sl.MaxTranslations()
	xbord := 32 * ((max(xp, xn) + 31) / 32)
	padded, err := s.AddBorderGeneral(xbord, xbord, yp, yn, false)
	if err != nil {
		return nil, err
	}
	if _, err := Close(padded, padded, sl); err != nil {
		return nil, err
	}
	cropped, err := padded.RemoveBorderGeneral(xbord, xbord, yp, yn)
	if err != nil {
		return nil, err
	}
	if _, err := pix.Copy(dest, cropped); err != nil {
		return nil, err
	}
	return dest, nil
}

// OpenGeneralized computes the generalized opening of s by sl: the
// hit-miss transform of s by sl, dilated back out using only sl's HIT
// cells (which Dilate already restricts itself to).
func OpenGeneralized(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, err := processArgs2("OpenGeneralized", d, s, sl)
	if err != nil {
		return nil, err
	}
	t, err := HMT(nil, s, sl)
	if err != nil {
		return nil, err
	}
	if _, err := Dilate(dest, t, sl); err != nil {
		return nil, err
	}
	return dest, nil
}

// CloseGeneralized computes the generalized closing of s by sl: dilation
// using only sl's HIT cells, followed by the hit-miss transform of the
// dilated result by the full sel.
func CloseGeneralized(d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	dest, err := processArgs2("CloseGeneralized", d, s, sl)
	if err != nil {
		return nil, err
	}
	t, err := Dilate(nil, s, sl)
	if err != nil {
		return nil, err
	}
	if _, err := HMT(dest, t, sl); err != nil {
		return nil, err
	}
	return dest, nil
}
