// Public domain.

package hmcal

import (
	"math"

	"github.com/soniakeys/unit"
)

// CalibrationPoint is the two point count to radiance calibration,
// anchored at deep space (zero radiance) and the blackbody.
type CalibrationPoint struct {
	Slope, SlopeStd float64
	Offset          float64
}

// TwoPoint computes slope and slope uncertainty from the blackbody
// radiance and the blackbody and deep space count statistics.
// Uncertainty of bbRadiance is taken as zero.
func TwoPoint(bbRadiance float64, bb, dsv StatPair) (CalibrationPoint, error) {
	d := bb.Mean - dsv.Mean
	if !finite(d) || math.Abs(d) < MinSpread {
		return CalibrationPoint{}, &DegenerateCalibrationError{
			"blackbody - deep space counts", d}
	}
	slope := bbRadiance / d
	return CalibrationPoint{
		Slope:    slope,
		SlopeStd: slope * math.Sqrt(bb.Std*bb.Std+dsv.Std*dsv.Std) / d,
	}, nil
}

// Ephemeris holds the lunar geometry at the intrusion, looked up outside
// of this program.
type Ephemeris struct {
	AngularDiameter unit.Angle
	PhaseAngle      unit.Angle
}

// CalibrationInput collects everything Calibrate needs for one channel.
type CalibrationInput struct {
	BBRadiance    float64 // units of 1/RadianceScale W m-2 sr-1 Hz-1
	BB, DSV, Moon StatPair
	FOV           unit.Angle
	Wavenumber    float64 // cm-1
	Ephemeris
}

// Radiance is the calibrated lunar signal of one channel.
type Radiance struct {
	CalibrationPoint
	Radiance       float64 // units of 1/RadianceScale W m-2 sr-1 Hz-1
	UncertaintyPct float64 // relative, percent
	BrightnessTemp float64 // K
	PhaseAngle     unit.Angle
}

// Calibrate converts moon counts to lunar radiance and brightness
// temperature.
//
// The counts are calibrated with TwoPoint, then scaled from the field of
// view to the lunar disk by FOV²/AngularDiameter² and divided by
// FillFactor.  The phase angle is passed through to the result.
func Calibrate(in CalibrationInput) (Radiance, error) {
	cp, err := TwoPoint(in.BBRadiance, in.BB, in.DSV)
	if err != nil {
		return Radiance{}, err
	}
	if !finite(cp.Slope) || cp.Slope == 0 {
		return Radiance{}, &DegenerateCalibrationError{"slope", cp.Slope}
	}
	if in.Wavenumber <= 0 {
		return Radiance{}, &DegenerateCalibrationError{
			"wavenumber", in.Wavenumber}
	}
	ad := in.AngularDiameter.Deg()
	if ad == 0 {
		return Radiance{}, &DegenerateCalibrationError{
			"angular diameter", ad}
	}
	bm := in.BB.Mean - in.Moon.Mean
	if !finite(bm) || math.Abs(bm) < MinSpread {
		return Radiance{}, &DegenerateCalibrationError{
			"blackbody - moon counts", bm}
	}
	fov := in.FOV.Deg()
	r := (in.BBRadiance + cp.Slope*(in.Moon.Mean-in.BB.Mean)) /
		(ad * ad) * fov * fov / FillFactor

	rs := cp.SlopeStd / cp.Slope
	u := 100 * math.Sqrt(rs*rs+
		(in.BB.Std*in.BB.Std+in.Moon.Std*in.Moon.Std)/(bm*bm)) *
		math.Abs((in.Moon.Mean-in.BB.Mean)/(in.DSV.Mean-in.BB.Mean))

	if !finite(r) || r <= 0 {
		return Radiance{}, &DegenerateCalibrationError{"radiance", r}
	}
	if !finite(u) {
		return Radiance{}, &DegenerateCalibrationError{"uncertainty", u}
	}
	return Radiance{
		CalibrationPoint: cp,
		Radiance:         r,
		UncertaintyPct:   u,
		BrightnessTemp:   BrightnessTemp(in.Wavenumber, r),
		PhaseAngle:       in.PhaseAngle,
	}, nil
}
