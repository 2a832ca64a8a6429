// Public domain.

package hmcal

import (
	"fmt"
	"time"

	"github.com/soniakeys/hirsmoon/internal/hmcube"
	"github.com/soniakeys/unit"
)

// ChannelMeta is static per satellite, per channel metadata.
type ChannelMeta struct {
	Wavenumber float64 // central wavenumber, cm-1
	Correction         // blackbody temperature correction
	FOV        unit.Angle
}

// Pipeline calibrates the lunar intrusion in one cube.
//
// Quantities that do not depend on the channel are computed once by New
// and shared read only by all channels.  Channel may be called
// concurrently.
type Pipeline struct {
	cube   *hmcube.Cube
	ranges map[int]ScanRange
	meta   map[int]ChannelMeta // nil if unavailable
	eph    *Ephemeris          // nil if not supplied

	Index    int // run intrusion record of the deep space series
	Time     time.Time
	Position hmcube.Position
	BBTemp   StatPair
	Located  map[int]int // per channel intrusion record

	locErr map[int]error
}

// New prepares a pipeline.
//
// Ranges must hold a scan range for every channel.  Meta and eph may be
// nil; radiance results are then omitted.
//
// The run intrusion record is the record most channels locate, the
// earliest on a tie.  The blackbody temperature, time and satellite
// position are taken there.
func New(c *hmcube.Cube, ranges map[int]ScanRange, meta map[int]ChannelMeta,
	eph *Ephemeris) (*Pipeline, error) {
	for ch := 1; ch <= hmcube.NumChannels; ch++ {
		if _, ok := ranges[ch]; !ok {
			return nil, &ConfigurationError{
				What: fmt.Sprint("no scan range for channel ", ch)}
		}
	}
	p := &Pipeline{
		cube:    c,
		ranges:  ranges,
		meta:    meta,
		eph:     eph,
		Located: map[int]int{},
		locErr:  map[int]error{},
	}
	votes := map[int]int{}
	var firstErr error
	for ch := 1; ch <= hmcube.NumChannels; ch++ {
		s, err := c.Series(ch, hmcube.DeepSpace)
		if err == nil {
			var ix int
			if ix, err = Locate(s, DefaultWindow); err == nil {
				p.Located[ch] = ix
				votes[ix]++
				continue
			}
		}
		p.locErr[ch] = err
		if firstErr == nil {
			firstErr = &ChannelError{ch, err}
		}
	}
	if len(votes) == 0 {
		return nil, firstErr
	}
	p.Index = -1
	for ix, n := range votes {
		if p.Index < 0 || n > votes[p.Index] ||
			n == votes[p.Index] && ix < p.Index {
			p.Index = ix
		}
	}
	dsv, _ := c.Series(1, hmcube.DeepSpace)
	p.Time = dsv.Time[p.Index]
	var err error
	if p.Position, err = c.Position(hmcube.DeepSpace, p.Index); err != nil {
		return nil, err
	}
	p.BBTemp, err = BlackbodyTemp(c.Temperatures(hmcube.Blackbody),
		p.Index, c.Sensors())
	if err != nil {
		return nil, err
	}
	return p, nil
}

// HasRadiance reports whether radiances can be computed at all.
func (p *Pipeline) HasRadiance() bool {
	return p.meta != nil && p.eph != nil
}

// Counts are the count statistics of one channel.
type Counts struct {
	DSV, Moon, BB StatPair
}

// ChannelResult is the outcome for one channel.  Nil fields are
// unavailable; Err says why when the cause is a failure rather than
// missing input.
type ChannelResult struct {
	Channel    int
	ScanRange  ScanRange
	Index      int // intrusion record, -1 if not located
	Time       time.Time
	Counts     *Counts
	Meta       *ChannelMeta
	BBRadiance *float64
	Radiance   *Radiance
	Err        error
}

// Channel computes the result for channel ch.
func (p *Pipeline) Channel(ch int) ChannelResult {
	r := ChannelResult{Channel: ch, ScanRange: p.ranges[ch], Index: -1}
	fail := func(err error) ChannelResult {
		r.Err = &ChannelError{ch, err}
		return r
	}
	ix, ok := p.Located[ch]
	if !ok {
		err, known := p.locErr[ch]
		if !known {
			err = fmt.Errorf("no channel %d", ch)
		}
		return fail(err)
	}
	dsv, err := p.cube.Series(ch, hmcube.DeepSpace)
	if err != nil {
		return fail(err)
	}
	bb, err := p.cube.Series(ch, hmcube.Blackbody)
	if err != nil {
		return fail(err)
	}
	r.Index = ix
	r.Time = dsv.Time[ix]
	var c Counts
	if c.Moon, err = WindowStats(dsv, ix, r.ScanRange); err != nil {
		return fail(err)
	}
	if c.DSV, err = BaselineStats(dsv, ix, DefaultWindow); err != nil {
		return fail(err)
	}
	if c.BB, err = BlackbodyStats(bb, ix); err != nil {
		return fail(err)
	}
	r.Counts = &c

	m, ok := p.meta[ch]
	if !ok {
		return r
	}
	r.Meta = &m
	bbRad := Flux(m.Wavenumber*100, m.Correction, p.BBTemp.Mean)
	r.BBRadiance = &bbRad
	if p.eph == nil {
		return r
	}
	rad, err := Calibrate(CalibrationInput{
		BBRadiance: bbRad,
		BB:         c.BB,
		DSV:        c.DSV,
		Moon:       c.Moon,
		FOV:        m.FOV,
		Wavenumber: m.Wavenumber,
		Ephemeris:  *p.eph,
	})
	if err != nil {
		return fail(err)
	}
	r.Radiance = &rad
	return r
}

// Run computes all channels in channel order.
func (p *Pipeline) Run() []ChannelResult {
	r := make([]ChannelResult, hmcube.NumChannels)
	for i := range r {
		r[i] = p.Channel(i + 1)
	}
	return r
}
