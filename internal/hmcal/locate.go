// Public domain.

package hmcal

import (
	"fmt"
	"math"

	"github.com/soniakeys/hirsmoon/internal/hmcube"
)

// ScanRange is an inclusive range of scan position labels.
type ScanRange struct {
	Min, Max int
}

func (r ScanRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// columns returns indexes into pos of the labels within r.
func (r ScanRange) columns(pos []int) []int {
	var cx []int
	for i, p := range pos {
		if p >= r.Min && p <= r.Max {
			cx = append(cx, i)
		}
	}
	return cx
}

// Locate finds the intrusion scanline in a deep space series.
//
// The mean count over scan positions in window is computed for every
// record and the index of the smallest mean is returned.  The first of
// equal minima wins.  Non-finite counts are left out of the mean and
// records with no finite count in window are ignored.
//
// At least three records are required so the scanlines either side of
// the intrusion can exist.
func Locate(s *hmcube.ScanSeries, window ScanRange) (int, error) {
	if n := s.Len(); n < 3 {
		return -1, &InsufficientDataError{"deep space scanlines", n, 3}
	}
	cx := window.columns(s.Pos)
	if len(cx) == 0 {
		return -1, &InsufficientDataError{
			"scan positions in window " + window.String(), 0, 1}
	}
	least := math.Inf(1)
	ix := -1
	for rx, row := range s.Counts {
		var sum float64
		n := 0
		for _, c := range cx {
			if finite(row[c]) {
				sum += row[c]
				n++
			}
		}
		if n == 0 {
			continue
		}
		if m := sum / float64(n); m < least {
			least = m
			ix = rx
		}
	}
	if ix < 0 {
		return -1, &InsufficientDataError{"finite deep space scanlines", 0, 1}
	}
	return ix, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
