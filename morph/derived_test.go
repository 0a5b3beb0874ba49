package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morphops/sel"
)

func TestOpenRemovesIsolatedSpeck(t *testing.T) {
	s := gridFromStrings([]string{
		"0000000",
		"0111000",
		"0111000",
		"0111000",
		"0000100",
		"0000000",
	})
	brick := sel.CreateBrick(3, 3, 1, 1, sel.Hit)
	out, err := Open(nil, s, brick)
	require.NoError(t, err)

	assert.True(t, out.GetPixel(2, 2))
	assert.False(t, out.GetPixel(4, 4), "a speck smaller than the sel should be removed by opening")
}

func TestCloseFillsSmallGap(t *testing.T) {
	s := gridFromStrings([]string{
		"0000000",
		"0111110",
		"0110110",
		"0111110",
		"0000000",
	})
	brick := sel.CreateBrick(3, 3, 1, 1, sel.Hit)
	out, err := Close(nil, s, brick)
	require.NoError(t, err)
	assert.True(t, out.GetPixel(3, 2), "closing should fill a single-pixel gap smaller than the sel")
}

func TestOpenIsIdempotent(t *testing.T) {
	s := gridFromStrings([]string{
		"0000000",
		"0111110",
		"0111110",
		"0111110",
		"0000000",
	})
	brick := sel.CreateBrick(3, 3, 1, 1, sel.Hit)
	once, err := Open(nil, s, brick)
	require.NoError(t, err)
	twice, err := Open(nil, once, brick)
	require.NoError(t, err)

	for y := 0; y < once.Height; y++ {
		for x := 0; x < once.Width; x++ {
			assert.Equal(t, once.GetPixel(x, y), twice.GetPixel(x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestCloseSafeMatchesCloseAwayFromEdge(t *testing.T) {
	ResetMorphBoundaryCondition(Asymmetric)
	s := gridFromStrings([]string{
		"000000000",
		"000000000",
		"001111100",
		"001101100",
		"001111100",
		"000000000",
		"000000000",
	})
	brick := sel.CreateBrick(3, 3, 1, 1, sel.Hit)

	closed, err := Close(nil, s, brick)
	require.NoError(t, err)
	safe, err := CloseSafe(nil, s, brick)
	require.NoError(t, err)

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			assert.Equal(t, closed.GetPixel(x, y), safe.GetPixel(x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestOpenGeneralizedUsesHitCellsOnly(t *testing.T) {
	s := gridFromStrings([]string{
		"0000000",
		"0011000",
		"0111000",
		"0111000",
		"0000000",
	})
	hm := sel.CreateBrick(3, 3, 1, 1, sel.Hit)
	hm.Data[0][0] = sel.Miss

	out, err := OpenGeneralized(nil, s, hm)
	require.NoError(t, err)
	assert.True(t, out.GetPixel(2, 2))
	assert.False(t, out.GetPixel(1, 1), "the MISS cell must not be dilated back in")
}

func TestCloseGeneralizedRoundTrips(t *testing.T) {
	s := gridFromStrings([]string{
		"0000",
		"0110",
		"0110",
		"0000",
	})
	hm := sel.CreateBrick(2, 2, 0, 0, sel.Hit)
	out, err := CloseGeneralized(nil, s, hm)
	require.NoError(t, err)
	assertGridEqual(t, []string{
		"0000",
		"0110",
		"0110",
		"0000",
	}, out)
}
