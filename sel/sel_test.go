package sel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBrickDimensionsAndOrigin(t *testing.T) {
	s := CreateBrick(3, 5, 1, 2, Hit)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, 5, s.Width)
	assert.Equal(t, 1, s.Cy)
	assert.Equal(t, 2, s.Cx)
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			assert.Equal(t, Hit, s.Data[i][j])
		}
	}
}

func TestCreateBrickDontCareFill(t *testing.T) {
	s := CreateBrick(2, 2, 0, 0, DontCare)
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			assert.Equal(t, DontCare, s.Data[i][j])
		}
	}
}

func TestParameters(t *testing.T) {
	s := CreateBrick(3, 5, 1, 2, Hit)
	sy, sx, cy, cx := s.Parameters()
	assert.Equal(t, 3, sy)
	assert.Equal(t, 5, sx)
	assert.Equal(t, 1, cy)
	assert.Equal(t, 2, cx)
}

func TestMaxTranslationsBrick(t *testing.T) {
	s := CreateBrick(3, 5, 1, 2, Hit)
	xp, yp, xn, yn := s.MaxTranslations()
	assert.Equal(t, 2, xp)
	assert.Equal(t, 1, yp)
	assert.Equal(t, 2, xn)
	assert.Equal(t, 1, yn)
}

func TestMaxTranslationsIgnoresNonHit(t *testing.T) {
	s := Create(3, 3, "cross")
	s.SetOrigin(1, 1)
	s.Data[1][1] = Hit
	s.Data[0][0] = Miss
	xp, yp, xn, yn := s.MaxTranslations()
	assert.Equal(t, 0, xp)
	assert.Equal(t, 0, yp)
	assert.Equal(t, 0, xn)
	assert.Equal(t, 0, yn)
}

func TestReflect(t *testing.T) {
	s := Create(2, 3, "L")
	s.SetOrigin(0, 0)
	s.Data[0][0] = Hit
	s.Data[1][2] = Miss

	r := Reflect(s)
	assert.Equal(t, 1, r.Cy)
	assert.Equal(t, 2, r.Cx)
	assert.Equal(t, Hit, r.Data[1][2])
	assert.Equal(t, Miss, r.Data[0][0])
}

func TestValidateRejectsMalformedSel(t *testing.T) {
	require.Error(t, (*Sel)(nil).Validate())

	s := Create(2, 2, "broken")
	s.Height = 3
	require.Error(t, s.Validate())

	ok := Create(2, 2, "fine")
	require.NoError(t, ok.Validate())
}
