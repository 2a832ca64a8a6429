// Public domain.

package hmcube_test

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/hirsmoon/internal/hmcube"
)

func ExampleInstrument() {
	for _, sat := range []string{"noaa11", "noaa16", "metopb", "goes16"} {
		inst, err := hmcube.Instrument(sat)
		fmt.Println(sat, inst, err)
	}
	// Output:
	// noaa11 HIRS/2 <nil>
	// noaa16 HIRS/3 <nil>
	// metopb HIRS/4 <nil>
	// goes16  goes16 does not have HIRS on board
}

func ExampleScanType_String() {
	fmt.Println(hmcube.DeepSpace, hmcube.Blackbody, hmcube.ScanType(9))
	// Output:
	// deep space blackbody scantype(9)
}

func TestSeries(t *testing.T) {
	s := hmcube.DefaultSim()
	c := s.Cube(nil)
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
	dsv, err := c.Series(3, hmcube.DeepSpace)
	if err != nil {
		t.Fatal(err)
	}
	if dsv.Len() != s.Cycles {
		t.Fatalf("deep space records = %d, want %d", dsv.Len(), s.Cycles)
	}
	if dsv.Pos[0] != 1 || dsv.Pos[len(dsv.Pos)-1] != hmcube.NumPositions {
		t.Fatal("scan position labels", dsv.Pos[0], dsv.Pos[len(dsv.Pos)-1])
	}
	for rx, row := range dsv.Counts {
		for px, cnt := range row {
			want := s.Space[2]
			pos := dsv.Pos[px]
			if rx == s.Intrusion && pos >= s.MoonMin && pos <= s.MoonMax {
				want -= s.Moon[2]
			}
			if cnt != want {
				t.Fatalf("record %d position %d: counts %g, want %g",
					rx, pos, cnt, want)
			}
		}
	}
	// series must be a copy
	dsv.Counts[0][0] = -1
	again, _ := c.Series(3, hmcube.DeepSpace)
	if again.Counts[0][0] == -1 {
		t.Fatal("series shares memory with cube")
	}
	if _, err := c.Series(20, hmcube.DeepSpace); err == nil {
		t.Fatal("expected error for channel 20")
	}
}

func TestTemperaturesPosition(t *testing.T) {
	s := hmcube.DefaultSim()
	c := s.Cube(nil)
	tb := c.Temperatures(hmcube.Blackbody)
	if len(tb) != s.Cycles || len(tb[0]) != s.Sensors {
		t.Fatalf("temperatures %dx%d", len(tb), len(tb[0]))
	}
	if c.Sensors() != s.Sensors {
		t.Fatal("Sensors() =", c.Sensors())
	}
	p, err := c.Position(hmcube.DeepSpace, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Lon.Deg()-s.Lon) > 1e-12 ||
		math.Abs(p.Lat.Deg()-s.Lat) > 1e-12 || p.Alt != s.Alt {
		t.Fatalf("position %v %v %v", p.Lon.Deg(), p.Lat.Deg(), p.Alt)
	}
	if _, err := c.Position(hmcube.DeepSpace, s.Cycles); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestReadWrite(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	c := hmcube.DefaultSim().Cube(rnd)
	fn := filepath.Join(t.TempDir(), "granule.hmc")
	if err := hmcube.WriteFile(fn, c); err != nil {
		t.Fatal(err)
	}
	r, err := hmcube.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if r.Satellite != c.Satellite || len(r.Time) != len(c.Time) {
		t.Fatal("header mismatch")
	}
	if !r.Time[7].Equal(c.Time[7]) || r.ScanType[6] != c.ScanType[6] {
		t.Fatal("time axis mismatch")
	}
	if r.Counts[12][30][18] != c.Counts[12][30][18] ||
		r.IWT[4][2] != c.IWT[4][2] {
		t.Fatal("data mismatch")
	}
	if _, err := hmcube.ReadFile(filepath.Join(t.TempDir(), "none")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCheck(t *testing.T) {
	c := hmcube.DefaultSim().Cube(nil)
	c.Altitude = c.Altitude[1:]
	if c.Check() == nil {
		t.Fatal("short altitude axis accepted")
	}
	c = hmcube.DefaultSim().Cube(nil)
	c.Counts[2][5] = c.Counts[2][5][:18]
	if c.Check() == nil {
		t.Fatal("short channel axis accepted")
	}
	if (&hmcube.Cube{}).Check() == nil {
		t.Fatal("empty cube accepted")
	}
}
