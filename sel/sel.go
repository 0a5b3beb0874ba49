// Package sel implements structuring elements: the HIT/MISS/DONT_CARE
// grids that parameterize every morphological operator in package morph.
package sel

import "morphops/internal/operr"

// Value is the classification of one cell of a Sel's grid.
type Value int

const (
	DontCare Value = iota
	Hit
	Miss
)

// Sel is a structuring element: a Height x Width grid of Value cells with
// an origin (Cx, Cy) that the morphological operators translate against.
type Sel struct {
	Height, Width int
	Cy, Cx        int
	Name          string
	Data          [][]Value
}

// Create returns a new all-DONT_CARE sel of the given size.
func Create(sy, sx int, name string) *Sel {
	data := make([][]Value, sy)
	for i := range data {
		data[i] = make([]Value, sx)
	}
	return &Sel{Height: sy, Width: sx, Name: name, Data: data}
}

// CreateBrick returns a rectangular sel of size sy x sx with origin (cx, cy)
// and every cell set to fill.
func CreateBrick(sy, sx, cy, cx int, fill Value) *Sel {
	s := Create(sy, sx, "brick")
	if fill != DontCare {
		for i := range s.Data {
			for j := range s.Data[i] {
				s.Data[i][j] = fill
			}
		}
	}
	s.SetOrigin(cy, cx)
	return s
}

// SetOrigin sets the sel's translation origin.
func (s *Sel) SetOrigin(cy, cx int) {
	s.Cy = cy
	s.Cx = cx
}

// Parameters returns the sel's height, width and origin.
func (s *Sel) Parameters() (sy, sx, cy, cx int) {
	return s.Height, s.Width, s.Cy, s.Cx
}

// MaxTranslations returns how far the HIT cells extend from the origin in
// each direction: xp to the left, yp above, xn to the right, yn below.
func (s *Sel) MaxTranslations() (xp, yp, xn, yn int) {
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			if s.Data[i][j] != Hit {
				continue
			}
			xp = max(xp, s.Cx-j)
			yp = max(yp, s.Cy-i)
			xn = max(xn, j-s.Cx)
			yn = max(yn, i-s.Cy)
		}
	}
	return xp, yp, xn, yn
}

// Reflect returns the 180-degree rotation of s about its origin: the cell
// at (i,j) moves to (Height-1-i, Width-1-j) and the origin moves to
// (Height-1-Cy, Width-1-Cx), so every cell's offset from the origin is
// negated. Used by tests exercising the dilation/erosion duality relation.
func Reflect(s *Sel) *Sel {
	out := Create(s.Height, s.Width, s.Name+"-reflected")
	out.SetOrigin(s.Height-1-s.Cy, s.Width-1-s.Cx)
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			out.Data[s.Height-1-i][s.Width-1-j] = s.Data[i][j]
		}
	}
	return out
}

// Validate reports whether s is usable by a morphological operator: it
// must have positive size and a non-empty Data grid matching it.
func (s *Sel) Validate() error {
	if s == nil {
		return operr.Error("Validate", "sel not defined")
	}
	if s.Height <= 0 || s.Width <= 0 {
		return operr.Errorf("Validate", "sel has non-positive size %dx%d", s.Width, s.Height)
	}
	if len(s.Data) != s.Height {
		return operr.Errorf("Validate", "sel data has %d rows, want %d", len(s.Data), s.Height)
	}
	for i, row := range s.Data {
		if len(row) != s.Width {
			return operr.Errorf("Validate", "sel data row %d has %d columns, want %d", i, len(row), s.Width)
		}
	}
	return nil
}
