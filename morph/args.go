package morph

import (
	"morphops/internal/morphlog"
	"morphops/internal/operr"
	"morphops/pix"
	"morphops/sel"
)

// processArgs1 reconciles the (d, s, sl) triple for the generic operators
// (Dilate, Erode, HMT). It returns the destination to write into and a
// snapshot of s that stays safe to read from even if d and s alias:
//   - d == nil: a fresh cleared destination and a shared-buffer clone of s
//     (s itself is never mutated by a generic op, so sharing is safe).
//   - d != s: d reused as-is, s cloned (again, sharing is safe since s is
//     read-only to the operator).
//   - d == s: d reused as-is, but the snapshot must be a deep copy, since
//     the operator will overwrite d's buffer while still reading the
//     original source pixels through the snapshot.
func processArgs1(process string, d, s *pix.Bitmap, sl *sel.Sel) (dest, snapshot *pix.Bitmap, err error) {
	if s == nil {
		morphlog.Log.Debug("%s: source bitmap not defined", process)
		return nil, nil, operr.Error(process, "source bitmap not defined")
	}
	if err := sl.Validate(); err != nil {
		morphlog.Log.Debug("%s: %v", process, err)
		return nil, nil, operr.Wrap(err, process, "invalid sel")
	}
	if d == nil {
		return pix.CreateTemplate(s), s.Clone(), nil
	}
	if !d.SizesEqual(s) {
		morphlog.Log.Debug("%s: destination size %dx%d != source size %dx%d", process, d.Width, d.Height, s.Width, s.Height)
		return nil, nil, operr.Errorf(process, "destination size %dx%d does not match source size %dx%d", d.Width, d.Height, s.Width, s.Height)
	}
	if d == s {
		return d, s.Copy(), nil
	}
	return d, s.Clone(), nil
}

// processArgs2 reconciles the (d, s, sl) pair for the derived operators
// (Open, Close, CloseSafe, OpenGeneralized, CloseGeneralized), which only
// need a destination handle: the two internal generic-op calls they make
// each reconcile their own aliasing via processArgs1.
func processArgs2(process string, d, s *pix.Bitmap, sl *sel.Sel) (*pix.Bitmap, error) {
	if s == nil {
		morphlog.Log.Debug("%s: source bitmap not defined", process)
		return nil, operr.Error(process, "source bitmap not defined")
	}
	if err := sl.Validate(); err != nil {
		morphlog.Log.Debug("%s: %v", process, err)
		return nil, operr.Wrap(err, process, "invalid sel")
	}
	if d == nil {
		return pix.CreateTemplate(s), nil
	}
	if !d.SizesEqual(s) {
		morphlog.Log.Debug("%s: destination size %dx%d != source size %dx%d", process, d.Width, d.Height, s.Width, s.Height)
		return nil, operr.Errorf(process, "destination size %dx%d does not match source size %dx%d", d.Width, d.Height, s.Width, s.Height)
	}
	return d, nil
}

// reconcileDest is processArgs2 without a sel, used by the brick fast path
// whose structuring elements are implicit.
func reconcileDest(process string, d, s *pix.Bitmap) (*pix.Bitmap, error) {
	if s == nil {
		morphlog.Log.Debug("%s: source bitmap not defined", process)
		return nil, operr.Error(process, "source bitmap not defined")
	}
	if d == nil {
		return pix.CreateTemplate(s), nil
	}
	if !d.SizesEqual(s) {
		morphlog.Log.Debug("%s: destination size %dx%d != source size %dx%d", process, d.Width, d.Height, s.Width, s.Height)
		return nil, operr.Errorf(process, "destination size %dx%d does not match source size %dx%d", d.Width, d.Height, s.Width, s.Height)
	}
	return d, nil
}
