package stroke

import (
	"math"

	"github.com/gogpu/agg/internal/path"
)

// Dash splits subpaths into the "on" intervals of a dash pattern.
//
// array alternates on and off lengths; an odd-length array is repeated to
// make it even. offset shifts the pattern start along each subpath and may
// be negative. Patterns that are empty, contain a negative or non-finite
// length, or sum to zero leave the input unchanged.
//
// Every subpath restarts the pattern. Closed subpaths are dashed along
// their closing segment too, and the dashes come out open.
func Dash(subpaths []path.Subpath, array []float64, offset float64) []path.Subpath {
	pattern, total := normalizePattern(array)
	if total == 0 {
		return subpaths
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		offset = 0
	}
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}

	var out []path.Subpath
	for _, sp := range subpaths {
		out = dashSubpath(out, sp, pattern, offset)
	}
	return out
}

func normalizePattern(array []float64) ([]float64, float64) {
	if len(array) == 0 {
		return nil, 0
	}
	var total float64
	for _, v := range array {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, 0
		}
		total += v
	}
	if total == 0 {
		return nil, 0
	}
	if len(array)%2 == 1 {
		array = append(append([]float64(nil), array...), array...)
		total *= 2
	}
	return array, total
}

func dashSubpath(out []path.Subpath, sp path.Subpath, pattern []float64, offset float64) []path.Subpath {
	pts := sp.Points
	if len(pts) == 0 {
		return out
	}
	if sp.Closed {
		pts = append(append([]Point(nil), pts...), pts[0])
	}

	// Position inside the pattern.
	idx := 0
	remaining := pattern[0]
	for offset > 0 {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}
	on := idx%2 == 0

	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}
	flush := func() {
		if len(cur) > 0 {
			out = append(out, path.Subpath{Points: cur})
		}
		cur = nil
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Sub(a).Length()
		pos := 0.0
		for seg-pos > remaining {
			pos += remaining
			p := a.Lerp(b, pos/seg)
			if on {
				cur = append(cur, p)
				flush()
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= seg - pos
		if on {
			cur = append(cur, b)
		}
	}
	flush()
	return out
}
