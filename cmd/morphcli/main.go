// Command morphcli loads or generates a small binary bitmap, runs a named
// morphological operator against it, and prints the result as ASCII art.
// It exists to exercise the library end to end, the same role unipdf's
// own examples/ directory plays for its packages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"morphops/morph"
	"morphops/pix"
)

func main() {
	var (
		pattern = flag.String("pattern", "plus", "canned test pattern: plus, dot, frame, or a path to a 0/1 text grid")
		op      = flag.String("op", "dilate", "operator: dilate, erode, open, close, closesafe")
		hsize   = flag.Int("hsize", 3, "brick horizontal size")
		vsize   = flag.Int("vsize", 3, "brick vertical size")
		trace   = flag.Bool("trace", false, "print a run id alongside the result")
	)
	flag.Parse()

	if err := run(*pattern, *op, *hsize, *vsize, *trace, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(pattern, op string, hsize, vsize int, trace bool, out io.Writer) error {
	src, err := loadPattern(pattern)
	if err != nil {
		return errors.Wrap(err, "loading pattern")
	}

	result, err := applyOp(op, src, hsize, vsize)
	if err != nil {
		return errors.Wrapf(err, "running operator %q", op)
	}

	if trace {
		fmt.Fprintf(out, "run %s\n", uuid.New())
	}
	fmt.Fprint(out, result.String())
	return nil
}

func applyOp(op string, src *pix.Bitmap, hsize, vsize int) (*pix.Bitmap, error) {
	switch strings.ToLower(op) {
	case "dilate":
		return morph.DilateBrick(nil, src, hsize, vsize)
	case "erode":
		return morph.ErodeBrick(nil, src, hsize, vsize)
	case "open":
		return morph.OpenBrick(nil, src, hsize, vsize)
	case "close":
		return morph.CloseBrick(nil, src, hsize, vsize)
	case "closesafe":
		return morph.CloseSafeBrick(nil, src, hsize, vsize)
	default:
		return nil, errors.Errorf("unknown operator %q", op)
	}
}

// loadPattern returns one of a few canned test bitmaps, or parses the
// named file as a text grid in which '1' and '#' are ON and every other
// character is OFF (so both '0'/'1' and '.'/'#' grids work).
func loadPattern(name string) (*pix.Bitmap, error) {
	switch name {
	case "dot":
		b := pix.New(9, 9)
		b.SetPixel(4, 4, true)
		return b, nil
	case "plus":
		b := pix.New(9, 9)
		for i := 0; i < 9; i++ {
			b.SetPixel(4, i, true)
			b.SetPixel(i, 4, true)
		}
		return b, nil
	case "frame":
		b := pix.New(12, 12)
		for i := 2; i < 10; i++ {
			b.SetPixel(i, 2, true)
			b.SetPixel(i, 9, true)
			b.SetPixel(2, i, true)
			b.SetPixel(9, i, true)
		}
		return b, nil
	default:
		return loadGrid(name)
	}
}

func loadGrid(path string) (*pix.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening grid file")
	}
	defer f.Close()

	var rows [][]bool
	width := -1
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		row := make([]bool, len(line))
		for i, c := range line {
			row[i] = c == '1' || c == '#'
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Errorf("grid row %d has width %d, want %d", len(rows), len(row), width)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading grid file")
	}
	if len(rows) == 0 {
		return nil, errors.New("grid file has no rows")
	}

	b := pix.New(width, len(rows))
	for y, row := range rows {
		for x, on := range row {
			b.SetPixel(x, y, on)
		}
	}
	return b, nil
}
