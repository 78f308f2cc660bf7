package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const objPrefix = "mesh: "

// FromFile loads a Mesh from the OBJ subset the pipeline understands:
// "v x y z" position lines and "f a b c [d ...]" face lines, fan-
// triangulated as (a,b,c), (a,c,d), ... Each face element may be
// "idx" or "idx/tex/normal"; only the index is read. File indices are
// 1-based and converted to 0-based. Every other line is ignored.
func FromFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%sopen %s: %w", objPrefix, path, err)
	}
	defer f.Close()

	var vertices []float32
	var indices []int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line[2:])
			if err != nil {
				return nil, fmt.Errorf("%s%w", objPrefix, err)
			}
			vertices = append(vertices, v[0], v[1], v[2])
		case strings.HasPrefix(line, "f "):
			faceIdx, err := parseFace(line[2:])
			if err != nil {
				return nil, fmt.Errorf("%s%w", objPrefix, err)
			}
			for i := 1; i <= len(faceIdx)-2; i++ {
				indices = append(indices, faceIdx[0], faceIdx[i], faceIdx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%sread %s: %w", objPrefix, path, err)
	}

	return FromVectors(vertices, indices), nil
}

func parseVertex(rest string) ([3]float32, error) {
	var v [3]float32
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return v, fmt.Errorf("vertex line has fewer than 3 components: %q", rest)
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("parse vertex component %q: %w", fields[i], err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseFace(rest string) ([]int, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return nil, fmt.Errorf("face line has fewer than 3 elements: %q", rest)
	}
	idx := make([]int, len(fields))
	for i, field := range fields {
		first := field
		if j := strings.IndexByte(field, '/'); j >= 0 {
			first = field[:j]
		}
		n, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("parse face index %q: %w", first, err)
		}
		idx[i] = n - 1
	}
	return idx, nil
}
