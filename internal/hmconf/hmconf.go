// Public domain.

// Package hmconf reads the hirsmoon configuration tables.
//
// Both tables are comma separated text with a heading line naming the
// columns.  Lines starting with # are ignored.  Each table has one row per
// HIRS channel, keyed by column "channel".
//
// The scan range table, config_intr_scan_ranges.txt by default, has columns
// min_scanpos and max_scanpos.  It is required.
//
// Per satellite metadata tables, meta_files/meta_<satellite>.txt by
// default, have columns wavenumber (cm-1), correction_factor1,
// correction_factor2 and fov (degrees).  They are optional.
package hmconf

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soniakeys/hirsmoon/internal/hmcal"
	"github.com/soniakeys/hirsmoon/internal/hmcube"
	"github.com/soniakeys/unit"
)

// Default file names.
const (
	RangeFile = "config_intr_scan_ranges.txt"
	MetaDir   = "meta_files"
)

// MetaFile returns the metadata file name for a satellite within dir.
func MetaFile(dir, satellite string) string {
	return filepath.Join(dir, "meta_"+satellite+".txt")
}

// MetadataUnavailableError reports that no metadata file exists for a
// satellite.  It is not fatal; radiances are simply not computed.
type MetadataUnavailableError struct {
	Satellite, File string
	Err             error
}

func (e *MetadataUnavailableError) Error() string {
	return fmt.Sprintf("no metadata for %s: %v", e.Satellite, e.Err)
}

func (e *MetadataUnavailableError) Unwrap() error { return e.Err }

// table is a parsed config table, rows keyed by channel.
type table struct {
	col  map[string]int
	rows map[int][]string
}

func readTable(r io.Reader, need ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty table")
	}
	t := &table{col: map[string]int{}, rows: map[int][]string{}}
	for i, h := range recs[0] {
		t.col[strings.TrimSpace(h)] = i
	}
	for _, h := range append([]string{"channel"}, need...) {
		if _, ok := t.col[h]; !ok {
			return nil, fmt.Errorf("missing column %q", h)
		}
	}
	for _, rec := range recs[1:] {
		cs := strings.TrimSpace(rec[t.col["channel"]])
		ch, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("channel %q: %v", cs, err)
		}
		if ch < 1 || ch > hmcube.NumChannels {
			return nil, fmt.Errorf("channel %d out of range 1-%d",
				ch, hmcube.NumChannels)
		}
		if _, dup := t.rows[ch]; dup {
			return nil, fmt.Errorf("channel %d listed twice", ch)
		}
		t.rows[ch] = rec
	}
	for ch := 1; ch <= hmcube.NumChannels; ch++ {
		if _, ok := t.rows[ch]; !ok {
			return nil, fmt.Errorf("channel %d missing", ch)
		}
	}
	return t, nil
}

func (t *table) float(ch int, h string) (float64, error) {
	s := strings.TrimSpace(t.rows[ch][t.col[h]])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("channel %d %s: %v", ch, h, err)
	}
	return v, nil
}

func (t *table) integer(ch int, h string) (int, error) {
	s := strings.TrimSpace(t.rows[ch][t.col[h]])
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("channel %d %s: %v", ch, h, err)
	}
	return v, nil
}

func confErr(fn string, err error) error {
	return &hmcal.ConfigurationError{What: fn, Err: err}
}

// ReadScanRanges reads the per channel scan ranges of the moon.
//
// Any failure, including a missing file, is a *hmcal.ConfigurationError.
func ReadScanRanges(fn string) (map[int]hmcal.ScanRange, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, confErr(fn, err)
	}
	defer f.Close()
	t, err := readTable(f, "min_scanpos", "max_scanpos")
	if err != nil {
		return nil, confErr(fn, err)
	}
	m := make(map[int]hmcal.ScanRange, len(t.rows))
	for ch := range t.rows {
		var r hmcal.ScanRange
		if r.Min, err = t.integer(ch, "min_scanpos"); err != nil {
			return nil, confErr(fn, err)
		}
		if r.Max, err = t.integer(ch, "max_scanpos"); err != nil {
			return nil, confErr(fn, err)
		}
		if r.Min > r.Max || r.Min < hmcube.FirstPos ||
			r.Max >= hmcube.FirstPos+hmcube.NumPositions {
			return nil, confErr(fn,
				fmt.Errorf("channel %d: invalid scan range %v", ch, r))
		}
		m[ch] = r
	}
	return m, nil
}

// ReadMeta reads channel metadata for a satellite from file fn.
//
// A missing file gives a *MetadataUnavailableError, other failures a
// *hmcal.ConfigurationError.
func ReadMeta(fn, satellite string) (map[int]hmcal.ChannelMeta, error) {
	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MetadataUnavailableError{satellite, fn, err}
		}
		return nil, confErr(fn, err)
	}
	defer f.Close()
	t, err := readTable(f, "wavenumber",
		"correction_factor1", "correction_factor2", "fov")
	if err != nil {
		return nil, confErr(fn, err)
	}
	m := make(map[int]hmcal.ChannelMeta, len(t.rows))
	for ch := range t.rows {
		var cm hmcal.ChannelMeta
		var fov float64
		if cm.Wavenumber, err = t.float(ch, "wavenumber"); err == nil {
			if cm.A, err = t.float(ch, "correction_factor1"); err == nil {
				if cm.B, err = t.float(ch, "correction_factor2"); err == nil {
					fov, err = t.float(ch, "fov")
				}
			}
		}
		if err != nil {
			return nil, confErr(fn, err)
		}
		if cm.Wavenumber <= 0 || fov <= 0 {
			return nil, confErr(fn, fmt.Errorf(
				"channel %d: wavenumber and fov must be positive", ch))
		}
		cm.FOV = unit.AngleFromDeg(fov)
		m[ch] = cm
	}
	return m, nil
}
