package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pthm-cable/micromouse/grid"
)

// Maze text format: the first line is the dimension n, followed by n lines
// of n comma-separated openness values (0..15). Line i holds column x=i from
// bottom to top, so the file reads column-major with y growing along each
// line.

// Parse reads a maze from r and validates it.
func Parse(r io.Reader) (*Maze, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, fmt.Errorf("maze file is empty")
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("maze header %q is not a dimension: %w", sc.Text(), err)
	}
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("maze dimension %d must be even and at least 4", n)
	}

	m := &Maze{dim: n, open: make([]uint8, n*n)}
	for x := 0; x < n; x++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("maze file ends after %d of %d columns", x, n)
		}
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(fields) != n {
			return nil, fmt.Errorf("column %d has %d values, want %d", x, len(fields), n)
		}
		for y, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("column %d value %d: %w", x, y, err)
			}
			if v < 0 || v > 15 {
				return nil, fmt.Errorf("column %d value %d: openness %d out of range", x, y, v)
			}
			m.open[m.idx(grid.Cell{X: x, Y: y})] = uint8(v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads and validates a maze file.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Write serializes the maze in the text format Parse reads.
func (m *Maze) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", m.dim)
	for x := 0; x < m.dim; x++ {
		for y := 0; y < m.dim; y++ {
			if y > 0 {
				bw.WriteByte(',')
			}
			fmt.Fprintf(bw, "%d", m.open[m.idx(grid.Cell{X: x, Y: y})])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes the maze to a file, creating or truncating it.
func (m *Maze) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
