// Public domain.

package hmcal

// Physical constants, SI.
const (
	SpeedOfLight = 2.99792458e8   // m/s
	Planck       = 6.62607015e-34 // J s
	Boltzmann    = 1.380649e-23   // J/K
)

// Instrument and calibration parameters.
const (
	// Default scan position window viewing only deep space, used for
	// locating the intrusion and for the space and blackbody references.
	WindowMin = 10
	WindowMax = 55

	// Variance of the ±.5 count digitization, uniformly distributed.
	QuantVar = .25 / 3

	// Deep space baseline: sample count divisor and quantization term.
	BaselineSamples = 48
	BaselineQuant   = .5 / 3

	// Radiances are expressed in units of 1e-20 W m-2 sr-1 Hz-1.
	RadianceScale = 1e20

	// Efficiency applied to blackbody radiance.
	FluxEfficiency = .98

	// Fill factor applied to lunar radiance.
	FillFactor = .97

	// Count differences smaller than this are degenerate.
	MinSpread = 1e-9
)

// DefaultWindow is the deep space window WindowMin-WindowMax.
var DefaultWindow = ScanRange{WindowMin, WindowMax}
