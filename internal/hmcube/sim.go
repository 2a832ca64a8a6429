// Public domain.

package hmcube

import (
	"time"

	xrand "golang.org/x/exp/rand"
)

// LinePeriod is the HIRS scanline period.
const LinePeriod = 6400 * time.Millisecond

// Sim describes a synthetic granule containing a lunar intrusion.
//
// The granule is a sequence of calibration cycles.  Each cycle holds one
// deep space scanline, one blackbody scanline and EarthLines earth view
// scanlines, in that order.
type Sim struct {
	Satellite  string
	Start      time.Time
	Cycles     int
	EarthLines int

	// Intrusion is the deep space record the moon falls in.  Counts at
	// scan positions MoonMin through MoonMax are reduced by Moon[ch].
	Intrusion        int
	MoonMin, MoonMax int

	Space, BB, Moon [NumChannels]float64 // counts
	Noise           float64              // count noise, standard deviation

	Sensors  int
	IWT      float64 // warm target temperature, K
	IWTNoise float64

	Lon, Lat float64 // degrees, at the first scanline
	Alt      float64 // km
}

// DefaultSim returns a plausible noaa19 granule with the moon in the
// sixth deep space scanline.
func DefaultSim() *Sim {
	s := &Sim{
		Satellite:  "noaa19",
		Start:      time.Date(2015, 3, 4, 5, 6, 7, 0, time.UTC),
		Cycles:     12,
		EarthLines: 3,
		Intrusion:  5,
		MoonMin:    25,
		MoonMax:    35,
		Noise:      1,
		Sensors:    5,
		IWT:        286.4,
		IWTNoise:   .02,
		Lon:        -20.5,
		Lat:        71.25,
		Alt:        860,
	}
	for c := range s.Space {
		// HIRS gain is negative; the warm target reads below space
		s.Space[c] = 2000 + 10*float64(c)
		s.BB[c] = 1000 + 20*float64(c)
		s.Moon[c] = 40 + float64(c)
	}
	return s
}

// Cube generates the granule.  Noise is drawn from rnd; with rnd nil the
// cube is noise free.
func (s *Sim) Cube(rnd *xrand.Rand) *Cube {
	norm := func(sd float64) float64 {
		if rnd == nil || sd == 0 {
			return 0
		}
		return rnd.NormFloat64() * sd
	}
	nLines := s.Cycles * (2 + s.EarthLines)
	c := &Cube{
		Satellite: s.Satellite,
		Time:      make([]time.Time, nLines),
		ScanType:  make([]ScanType, nLines),
		Counts:    make([][][]float64, nLines),
		IWT:       make([][]float64, nLines),
		Longitude: make([][]float64, nLines),
		Latitude:  make([][]float64, nLines),
		Altitude:  make([]float64, nLines),
	}
	t := 0
	for cy := 0; cy < s.Cycles; cy++ {
		for l := 0; l < 2+s.EarthLines; l++ {
			st := Earth
			switch l {
			case 0:
				st = DeepSpace
			case 1:
				st = Blackbody
			}
			c.Time[t] = s.Start.Add(time.Duration(t) * LinePeriod)
			c.ScanType[t] = st
			c.Counts[t] = make([][]float64, NumPositions)
			c.Longitude[t] = make([]float64, NumPositions)
			c.Latitude[t] = make([]float64, NumPositions)
			for p := range c.Counts[t] {
				row := make([]float64, NumChannels)
				for ch := range row {
					switch st {
					case DeepSpace:
						row[ch] = s.Space[ch]
						pos := p + FirstPos
						if cy == s.Intrusion &&
							pos >= s.MoonMin && pos <= s.MoonMax {
							row[ch] -= s.Moon[ch]
						}
					case Blackbody:
						row[ch] = s.BB[ch]
					default:
						row[ch] = (s.Space[ch] + s.BB[ch]) / 2
					}
					row[ch] += norm(s.Noise)
				}
				c.Counts[t][p] = row
				// a small cross track spread about the ground track
				c.Longitude[t][p] = s.Lon + .02*float64(t) +
					.1*float64(p+FirstPos-NadirPos)
				c.Latitude[t][p] = s.Lat - .05*float64(t)
			}
			c.IWT[t] = make([]float64, s.Sensors)
			for i := range c.IWT[t] {
				c.IWT[t][i] = s.IWT + norm(s.IWTNoise)
			}
			c.Altitude[t] = s.Alt
			t++
		}
	}
	return c
}
