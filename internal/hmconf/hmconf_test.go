// Public domain.

package hmconf_test

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soniakeys/hirsmoon/internal/hmcal"
	"github.com/soniakeys/hirsmoon/internal/hmconf"
)

func writeFile(t *testing.T, dir, name, s string) string {
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func rangeTable(skip int) string {
	var b strings.Builder
	b.WriteString("channel,min_scanpos,max_scanpos\n")
	for ch := 1; ch <= 19; ch++ {
		if ch != skip {
			fmt.Fprintf(&b, "%d,%d,%d\n", ch, 20+ch/4, 30+ch/4)
		}
	}
	return b.String()
}

func metaTable() string {
	var b strings.Builder
	b.WriteString("# noaa19 HIRS/4\n")
	b.WriteString("channel, wavenumber, correction_factor1, correction_factor2, fov\n")
	for ch := 1; ch <= 19; ch++ {
		fmt.Fprintf(&b, "%d, %g, %g, %g, 1.3\n", ch, 669+50*float64(ch), .01, .9998)
	}
	return b.String()
}

func TestReadScanRanges(t *testing.T) {
	dir := t.TempDir()
	m, err := hmconf.ReadScanRanges(writeFile(t, dir, hmconf.RangeFile,
		rangeTable(0)))
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 19 {
		t.Fatal(len(m), "ranges")
	}
	if m[9] != (hmcal.ScanRange{Min: 22, Max: 32}) {
		t.Fatal("channel 9:", m[9])
	}
}

func TestReadScanRangesErrors(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct{ name, content string }{
		{"missing channel", rangeTable(7)},
		{"missing column", "channel,min_scanpos\n1,20\n"},
		{"bad number", strings.Replace(rangeTable(0), "5,21,31", "5,x,31", 1)},
		{"reversed", strings.Replace(rangeTable(0), "5,21,31", "5,31,21", 1)},
		{"duplicate", rangeTable(0) + "3,20,30\n"},
		{"channel 20", rangeTable(0) + "20,20,30\n"},
		{"empty", ""},
	} {
		fn := writeFile(t, dir, "r.txt", tc.content)
		_, err := hmconf.ReadScanRanges(fn)
		var ce *hmcal.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: got %v", tc.name, err)
		}
	}
	var ce *hmcal.ConfigurationError
	_, err := hmconf.ReadScanRanges(filepath.Join(dir, "none.txt"))
	if !errors.As(err, &ce) || !errors.Is(err, os.ErrNotExist) {
		t.Fatal("missing file: got", err)
	}
}

func TestReadMeta(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "meta_noaa19.txt", metaTable())
	if fn != hmconf.MetaFile(dir, "noaa19") {
		t.Fatal("MetaFile", hmconf.MetaFile(dir, "noaa19"))
	}
	m, err := hmconf.ReadMeta(fn, "noaa19")
	if err != nil {
		t.Fatal(err)
	}
	c := m[2]
	if c.Wavenumber != 769 || c.A != .01 || c.B != .9998 ||
		math.Abs(c.FOV.Deg()-1.3) > 1e-12 {
		t.Fatalf("channel 2: %+v", c)
	}
}

func TestReadMetaMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := hmconf.ReadMeta(hmconf.MetaFile(dir, "noaa07"), "noaa07")
	var mu *hmconf.MetadataUnavailableError
	if !errors.As(err, &mu) || mu.Satellite != "noaa07" {
		t.Fatal("got", err)
	}
	// a malformed file is a configuration error, not missing metadata
	fn := writeFile(t, dir, "meta_noaa07.txt",
		strings.Replace(metaTable(), ", 1.3\n", ", -1\n", 1))
	_, err = hmconf.ReadMeta(fn, "noaa07")
	var ce *hmcal.ConfigurationError
	if !errors.As(err, &ce) || errors.As(err, &mu) {
		t.Fatal("got", err)
	}
}
