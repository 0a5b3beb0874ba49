package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRunsStepsInOrder(t *testing.T) {
	s := gridFromStrings([]string{
		"0000000",
		"0001000",
		"0000000",
	})

	out, err := Sequence(s,
		Step{Op: StepDilate, HSize: 3, VSize: 3},
		Step{Op: StepErode, HSize: 3, VSize: 3},
	)
	require.NoError(t, err)
	assert.True(t, out.GetPixel(3, 1))
}

func TestSequenceAddRemoveBorder(t *testing.T) {
	s := gridFromStrings([]string{
		"11",
		"11",
	})
	out, err := Sequence(s,
		Step{Op: StepAddBorder, Border: 2},
		Step{Op: StepRemoveBorder, Border: 2},
	)
	require.NoError(t, err)
	assert.True(t, out.SizesEqual(s))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			assert.Equal(t, s.GetPixel(x, y), out.GetPixel(x, y))
		}
	}
}

func TestSequenceRejectsEmptyAndNilSource(t *testing.T) {
	s := gridFromStrings([]string{"1"})
	_, err := Sequence(s)
	assert.Error(t, err)

	_, err = Sequence(nil, Step{Op: StepDilate, HSize: 1, VSize: 1})
	assert.Error(t, err)
}

func TestSequenceInvalidStepOp(t *testing.T) {
	s := gridFromStrings([]string{"1"})
	_, err := Sequence(s, Step{Op: StepOp(99)})
	assert.Error(t, err)
}
