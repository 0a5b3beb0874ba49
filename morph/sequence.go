package morph

import (
	"morphops/internal/operr"
	"morphops/pix"
)

// StepOp names one stage of a Sequence.
type StepOp int

const (
	StepDilate StepOp = iota
	StepErode
	StepOpen
	StepCloseSafe
	StepAddBorder
	StepRemoveBorder
)

// Step is one stage of a structured morphological pipeline: the brick
// dimensions apply to the brick ops, Border applies to the two border ops.
type Step struct {
	Op           StepOp
	HSize, VSize int
	Border       int
}

// Sequence runs steps against s in order and returns the final result.
// Each stage writes into a freshly allocated bitmap; s itself is not
// modified. It is the struct-driven counterpart of running a handful of
// brick operators back to back by hand.
func Sequence(s *pix.Bitmap, steps ...Step) (*pix.Bitmap, error) {
	if s == nil {
		return nil, operr.Error("Sequence", "source bitmap not defined")
	}
	if len(steps) == 0 {
		return nil, operr.Error("Sequence", "no steps given")
	}
	cur := s.Copy()
	for n, st := range steps {
		var next *pix.Bitmap
		var err error
		switch st.Op {
		case StepDilate:
			next, err = DilateBrick(nil, cur, st.HSize, st.VSize)
		case StepErode:
			next, err = ErodeBrick(nil, cur, st.HSize, st.VSize)
		case StepOpen:
			next, err = OpenBrick(nil, cur, st.HSize, st.VSize)
		case StepCloseSafe:
			next, err = CloseSafeBrick(nil, cur, st.HSize, st.VSize)
		case StepAddBorder:
			next, err = cur.AddBorder(st.Border, false)
		case StepRemoveBorder:
			next, err = cur.RemoveBorder(st.Border)
		default:
			return nil, operr.Errorf("Sequence", "step %d: invalid operation %d", n, int(st.Op))
		}
		if err != nil {
			return nil, operr.Wrapf(err, "Sequence", "step %d", n)
		}
		cur = next
	}
	return cur, nil
}
