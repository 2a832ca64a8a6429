// Public domain.

package hmcal

import "math"

// Correction is the linear blackbody temperature correction
// T' = A + B*T for one channel.
type Correction struct {
	A, B float64
}

// PlanckWavenumber returns blackbody spectral radiance per unit
// wavenumber, W m-2 sr-1 (m-1)-1, for wavenumber wn in m-1 and
// temperature t in K.
func PlanckWavenumber(wn, t float64) float64 {
	return 2 * Planck * SpeedOfLight * SpeedOfLight * wn * wn * wn /
		math.Expm1(Planck*SpeedOfLight*wn/(Boltzmann*t))
}

// PlanckTb returns the brightness temperature in K for spectral radiance
// per unit frequency r, W m-2 sr-1 Hz-1, at frequency f in Hz.
//
// This is the closed form inverse of the Planck function.
func PlanckTb(f, r float64) float64 {
	return Planck * f /
		(Boltzmann * math.Log1p(2*Planck*f*f*f/(SpeedOfLight*SpeedOfLight*r)))
}

// Flux returns the blackbody radiance seen by a channel, in units of
// 1/RadianceScale W m-2 sr-1 Hz-1.
//
// Wn is the channel central wavenumber in m-1.  Callers holding cm-1
// multiply by 100.  The blackbody temperature is corrected with c before
// evaluating the Planck function, and FluxEfficiency is applied.
func Flux(wn float64, c Correction, bbTemp float64) float64 {
	t := c.A + c.B*bbTemp
	return PlanckWavenumber(wn, t) / SpeedOfLight * RadianceScale *
		FluxEfficiency
}

// BrightnessTemp returns the brightness temperature in K for a radiance
// in units of 1/RadianceScale W m-2 sr-1 Hz-1 at wavenumber wn in cm-1.
func BrightnessTemp(wn, radiance float64) float64 {
	return PlanckTb(wn*100*SpeedOfLight, radiance/RadianceScale)
}
