// Public domain.

package hmcal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/hirsmoon/internal/hmcal"
	"github.com/soniakeys/hirsmoon/internal/hmcube"
)

// newSeries builds an n record deep space series over all scan positions
// with counts from f.
func newSeries(n int, f func(rx, pos int) float64) *hmcube.ScanSeries {
	s := &hmcube.ScanSeries{Channel: 1, Type: hmcube.DeepSpace}
	for p := 0; p < hmcube.NumPositions; p++ {
		s.Pos = append(s.Pos, p+hmcube.FirstPos)
	}
	for rx := 0; rx < n; rx++ {
		row := make([]float64, len(s.Pos))
		for px, pos := range s.Pos {
			row[px] = f(rx, pos)
		}
		s.Counts = append(s.Counts, row)
	}
	return s
}

func TestLocate(t *testing.T) {
	base := []float64{1000, 1003, 998, 1001, 1002, 999, 1000}
	s := newSeries(len(base), func(rx, pos int) float64 {
		if rx == 4 && pos >= 20 && pos <= 30 {
			return base[rx] - 60
		}
		return base[rx]
	})
	for i := 0; i < 3; i++ {
		ix, err := hmcal.Locate(s, hmcal.DefaultWindow)
		if err != nil {
			t.Fatal(err)
		}
		if ix != 4 {
			t.Fatalf("Locate = %d, want 4", ix)
		}
	}
	// rearranging other records leaves the minimum where it is
	s.Counts[0], s.Counts[6] = s.Counts[6], s.Counts[0]
	s.Counts[1], s.Counts[5] = s.Counts[5], s.Counts[1]
	s.Counts[2], s.Counts[3] = s.Counts[3], s.Counts[2]
	if ix, _ := hmcal.Locate(s, hmcal.DefaultWindow); ix != 4 {
		t.Fatalf("Locate after permutation = %d, want 4", ix)
	}
}

func TestLocateNonFinite(t *testing.T) {
	base := []float64{1000, 1003, 998, 1001, 1002, 999, 1000}
	s := newSeries(len(base), func(rx, pos int) float64 {
		if rx == 4 && pos >= 20 && pos <= 30 {
			return base[rx] - 60
		}
		return base[rx]
	})
	// a dropped sample leaves the rest of the scanline usable
	s.Counts[4][40] = math.NaN()
	s.Counts[4][22] = math.Inf(-1)
	if ix, err := hmcal.Locate(s, hmcal.DefaultWindow); err != nil || ix != 4 {
		t.Fatalf("Locate = %d, %v, want 4", ix, err)
	}
	// a scanline with nothing finite in the window is passed over
	for px := range s.Counts[4] {
		s.Counts[4][px] = math.NaN()
	}
	if ix, _ := hmcal.Locate(s, hmcal.DefaultWindow); ix != 2 {
		t.Fatalf("Locate = %d, want 2", ix)
	}
	var ide *hmcal.InsufficientDataError
	s = newSeries(4, func(rx, pos int) float64 { return math.NaN() })
	if _, err := hmcal.Locate(s, hmcal.DefaultWindow); !errors.As(err, &ide) {
		t.Fatal("no finite counts: got", err)
	}
}

func TestLocateWindow(t *testing.T) {
	// dip outside the window is not seen
	s := newSeries(5, func(rx, pos int) float64 {
		switch {
		case rx == 1 && pos < hmcal.WindowMin:
			return 0
		case rx == 3:
			return 990
		}
		return 1000
	})
	if ix, _ := hmcal.Locate(s, hmcal.DefaultWindow); ix != 3 {
		t.Fatalf("Locate = %d, want 3", ix)
	}
}

func TestLocateTie(t *testing.T) {
	s := newSeries(6, func(rx, pos int) float64 {
		if rx == 2 || rx == 4 {
			return 500
		}
		return 700
	})
	if ix, _ := hmcal.Locate(s, hmcal.DefaultWindow); ix != 2 {
		t.Fatalf("Locate = %d, want first minimum 2", ix)
	}
}

func TestLocateInsufficient(t *testing.T) {
	var ide *hmcal.InsufficientDataError
	s := newSeries(2, func(rx, pos int) float64 { return 1 })
	if _, err := hmcal.Locate(s, hmcal.DefaultWindow); !errors.As(err, &ide) {
		t.Fatal("2 records: got", err)
	}
	s = newSeries(5, func(rx, pos int) float64 { return 1 })
	if _, err := hmcal.Locate(s, hmcal.ScanRange{Min: 60, Max: 70}); !errors.As(err, &ide) {
		t.Fatal("empty window: got", err)
	}
}
