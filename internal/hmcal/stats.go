// Public domain.

package hmcal

import (
	"math"

	"github.com/soniakeys/hirsmoon/internal/hmcube"
)

// StatPair is a mean with its standard deviation.  Std includes the
// digitization noise floor so is never zero for count statistics.
type StatPair struct {
	Mean, Std float64
}

// meanStd returns the mean and population standard deviation of x.
func meanStd(x []float64) (mean, std float64) {
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(x)))
}

// window returns the finite counts of record rx at scan positions in r.
func window(s *hmcube.ScanSeries, rx int, r ScanRange) ([]float64, error) {
	if rx < 0 || rx >= s.Len() {
		return nil, &InsufficientDataError{
			s.Type.String() + " scanline index", s.Len(), rx + 1}
	}
	cx := r.columns(s.Pos)
	if len(cx) == 0 {
		return nil, &InsufficientDataError{
			"scan positions in range " + r.String(), 0, 1}
	}
	w := make([]float64, 0, len(cx))
	for _, c := range cx {
		if v := s.Counts[rx][c]; finite(v) {
			w = append(w, v)
		}
	}
	if len(w) == 0 {
		return nil, &InsufficientDataError{
			"finite counts in " + s.Type.String() + " scanline", 0, 1}
	}
	return w, nil
}

// WindowStats computes count statistics for record rx of s over the scan
// positions in r.
//
// Std is sqrt(σ²/N + QuantVar) where σ is the sample standard deviation
// and N the number of finite counts at scan positions in r.
func WindowStats(s *hmcube.ScanSeries, rx int, r ScanRange) (StatPair, error) {
	w, err := window(s, rx, r)
	if err != nil {
		return StatPair{}, err
	}
	m, sd := meanStd(w)
	return StatPair{m, math.Sqrt(sd*sd/float64(len(w)) + QuantVar)}, nil
}

// BlackbodyStats computes count statistics of blackbody record rx over
// DefaultWindow.
func BlackbodyStats(s *hmcube.ScanSeries, rx int) (StatPair, error) {
	return WindowStats(s, rx, DefaultWindow)
}

// BaselineStats computes deep space reference statistics from the records
// before and after intrusion record rx, over scan positions in r.
//
// The mean is the average of the two scanline means.  Std is
// sqrt(((σb² + σa²)/BaselineSamples + BaselineQuant) / 2).
func BaselineStats(s *hmcube.ScanSeries, rx int, r ScanRange) (StatPair, error) {
	switch {
	case rx < 1:
		return StatPair{}, &InsufficientDataError{
			"deep space scanlines before intrusion", 0, 1}
	case rx+1 >= s.Len():
		return StatPair{}, &InsufficientDataError{
			"deep space scanlines after intrusion", max(s.Len()-rx-1, 0), 1}
	}
	before, err := window(s, rx-1, r)
	if err != nil {
		return StatPair{}, err
	}
	after, err := window(s, rx+1, r)
	if err != nil {
		return StatPair{}, err
	}
	mb, sb := meanStd(before)
	ma, sa := meanStd(after)
	return StatPair{
		Mean: (mb + ma) / 2,
		Std:  math.Sqrt(((sb*sb+sa*sa)/BaselineSamples + BaselineQuant) / 2),
	}, nil
}
