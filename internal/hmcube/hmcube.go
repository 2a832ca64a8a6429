// Public domain.

// Package hmcube defines the HIRS telemetry cube consumed by hirsmoon and
// the file format used to store it.
//
// A cube is the decoded content of one instrument granule: digitizer counts
// indexed by time, scan position and channel, a scan type per time index,
// internal warm target temperatures, and the satellite position.
package hmcube

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/unit"
)

// Instrument dimensions.
const (
	NumChannels  = 19
	NumPositions = 56
	FirstPos     = 1 // label of the first scan position
)

// ScanType tags what a scanline looked at.
type ScanType int8

// Scan types as assigned by the HIRS level 1b decoders.
const (
	Earth ScanType = iota
	DeepSpace
	ColdTarget
	Blackbody
)

var stName = []string{"earth", "deep space", "cold target", "blackbody"}

func (st ScanType) String() string {
	if st < 0 || int(st) >= len(stName) {
		return fmt.Sprintf("scantype(%d)", int8(st))
	}
	return stName[st]
}

// Cube holds one granule of decoded telemetry.
//
// Slices indexed by time all have the same length.  Counts, Longitude and
// Latitude rows have NumPositions elements, indexed by scan position label
// minus FirstPos.
type Cube struct {
	Satellite string
	Time      []time.Time
	ScanType  []ScanType
	Counts    [][][]float64 // [time][scan position][channel-1]
	IWT       [][]float64   // [time][sensor], warm target PRT readings, K
	Longitude [][]float64   // [time][scan position], degrees
	Latitude  [][]float64   // [time][scan position], degrees
	Altitude  []float64     // [time], platform altitude, km
}

// Sensors returns the number of warm target temperature sensors.
func (c *Cube) Sensors() int {
	if len(c.IWT) == 0 {
		return 0
	}
	return len(c.IWT[0])
}

// Check verifies the cube dimensions are consistent.
func (c *Cube) Check() error {
	nt := len(c.Time)
	if nt == 0 {
		return errors.New("cube has no scanlines")
	}
	if len(c.ScanType) != nt || len(c.Counts) != nt || len(c.IWT) != nt ||
		len(c.Longitude) != nt || len(c.Latitude) != nt ||
		len(c.Altitude) != nt {
		return errors.New("cube time axis lengths differ")
	}
	ns := len(c.IWT[0])
	for t := 0; t < nt; t++ {
		if len(c.Counts[t]) != NumPositions ||
			len(c.Longitude[t]) != NumPositions ||
			len(c.Latitude[t]) != NumPositions {
			return fmt.Errorf("scanline %d: want %d scan positions",
				t, NumPositions)
		}
		for p, ch := range c.Counts[t] {
			if len(ch) != NumChannels {
				return fmt.Errorf("scanline %d position %d: want %d channels",
					t, p+FirstPos, NumChannels)
			}
		}
		if len(c.IWT[t]) != ns {
			return fmt.Errorf("scanline %d: want %d temperature sensors",
				t, ns)
		}
	}
	return nil
}

// times returns the time indexes of scanlines of type st, in time order.
func (c *Cube) times(st ScanType) []int {
	var tx []int
	for t, s := range c.ScanType {
		if s == st {
			tx = append(tx, t)
		}
	}
	return tx
}

// ScanSeries is the time ordered sequence of scanlines of one scan type
// for one channel.  All records share the scan position labels in Pos.
type ScanSeries struct {
	Channel int
	Type    ScanType
	Pos     []int       // scan position labels
	Time    []time.Time // [record]
	Counts  [][]float64 // [record][index into Pos]
}

// Len returns the number of scanlines in the series.
func (s *ScanSeries) Len() int { return len(s.Counts) }

// Series extracts the counts of channel ch (1 based) for all scanlines of
// type st.  The returned series shares no memory with the cube.
func (c *Cube) Series(ch int, st ScanType) (*ScanSeries, error) {
	if ch < 1 || ch > NumChannels {
		return nil, fmt.Errorf("channel %d out of range 1-%d", ch, NumChannels)
	}
	s := &ScanSeries{Channel: ch, Type: st, Pos: make([]int, NumPositions)}
	for p := range s.Pos {
		s.Pos[p] = p + FirstPos
	}
	for _, t := range c.times(st) {
		row := make([]float64, NumPositions)
		for p := range row {
			row[p] = c.Counts[t][p][ch-1]
		}
		s.Time = append(s.Time, c.Time[t])
		s.Counts = append(s.Counts, row)
	}
	return s, nil
}

// Temperatures returns warm target temperatures for scanlines of type st,
// indexed [record][sensor] in the same record order as Series.
func (c *Cube) Temperatures(st ScanType) [][]float64 {
	tx := c.times(st)
	r := make([][]float64, len(tx))
	for i, t := range tx {
		r[i] = append([]float64{}, c.IWT[t]...)
	}
	return r
}

// Position is the satellite location at one scanline.
type Position struct {
	Lon, Lat unit.Angle
	Alt      float64 // km
}

// NadirPos is the scan position used for reporting satellite position.
const NadirPos = 28

// Position returns the satellite position at record rx of the scan type st
// series, taking longitude and latitude at scan position NadirPos.
func (c *Cube) Position(st ScanType, rx int) (Position, error) {
	tx := c.times(st)
	if rx < 0 || rx >= len(tx) {
		return Position{}, fmt.Errorf("%s scanline %d out of range", st, rx)
	}
	t := tx[rx]
	return Position{
		Lon: unit.AngleFromDeg(c.Longitude[t][NadirPos-FirstPos]),
		Lat: unit.AngleFromDeg(c.Latitude[t][NadirPos-FirstPos]),
		Alt: c.Altitude[t],
	}, nil
}

// ReadFile reads a cube written by WriteFile and checks its dimensions.
func ReadFile(fn string) (*Cube, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c Cube
	if err = gob.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("%s: %v", fn, err)
	}
	if err = c.Check(); err != nil {
		return nil, fmt.Errorf("%s: %v", fn, err)
	}
	return &c, nil
}

// WriteFile writes c to file fn.
func WriteFile(fn string, c *Cube) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = gob.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
