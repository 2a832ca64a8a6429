// Public domain.

package hmcal

import "math"

// BlackbodyTemp averages the warm target temperature sensors at record rx.
//
// Temps is indexed [record][sensor]; the first sensors of each record are
// used.  Std is the standard deviation of the readings scaled by
// 1/sqrt(sensors+1).
func BlackbodyTemp(temps [][]float64, rx, sensors int) (StatPair, error) {
	if sensors <= 0 {
		return StatPair{}, &ConfigurationError{
			What: "no blackbody temperature sensors"}
	}
	if rx < 0 || rx >= len(temps) {
		return StatPair{}, &InsufficientDataError{
			"blackbody temperature scanline index", len(temps), rx + 1}
	}
	if n := len(temps[rx]); n < sensors {
		return StatPair{}, &InsufficientDataError{
			"blackbody temperature sensors", n, sensors}
	}
	m, sd := meanStd(temps[rx][:sensors])
	// note sensors+1, not sensors
	return StatPair{m, sd / math.Sqrt(float64(sensors+1))}, nil
}
