// Public domain.

// Package hmprog implements the hirsmoon command.
package hmprog

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/hirsmoon/internal/hmcal"
	"github.com/soniakeys/hirsmoon/internal/hmconf"
	"github.com/soniakeys/hirsmoon/internal/hmcube"
	"github.com/soniakeys/unit"
)

const versionString = "hirsmoon version 0.1 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	// these functions all terminate on error
	cl := parseCommandLine()
	ranges := readRanges(cl)
	cube, sat, inst := readCube(cl)
	meta := readMeta(cl, sat)

	var eph *hmcal.Ephemeris
	if cl.haveEph {
		eph = &hmcal.Ephemeris{
			AngularDiameter: unit.AngleFromSec(cl.diameter),
			PhaseAngle:      unit.AngleFromDeg(cl.phase),
		}
	}
	p, err := hmcal.New(cube, ranges, meta, eph)
	if err != nil {
		exit.Log(err)
	}

	fmt.Println(versionString)
	fmt.Printf("Granule:    %s\n", cl.fnCube)
	fmt.Printf("Satellite:  %s (%s)\n", sat, inst)
	fmt.Printf("Intrusion:  %s, deep space scanline %d\n",
		p.Time.Format("2006-01-02 15:04:05"), p.Index)
	fmt.Println()

	// results arrive in channel order regardless of which worker
	// finished first.
	res := make([]hmcal.ChannelResult, 0, hmcube.NumChannels)
	for rch := range dispatch(p, cl.workers) {
		r := <-rch
		printScanline(os.Stdout, r)
		res = append(res, r)
	}
	fmt.Println()
	printTable(os.Stdout, p, res)

	fn := filepath.Join(cl.dOut, outputName(sat, p.Time))
	if err := writeCSVFile(fn, p, res); err != nil {
		exit.Log(err)
	}
	fmt.Println()
	fmt.Println("Output saved to:", fn)
	if eph == nil {
		fmt.Println()
		printInstructions(os.Stdout, p)
	}
}

type commandLine struct {
	dr, dm, dp string // range file, metadata dir, default path
	dOut       string // output dir
	sat        string // satellite override
	diameter   float64
	phase      float64
	haveEph    bool
	workers    int
	fnCube     string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dr, "r", "", "")
	flag.StringVar(&cl.dm, "m", "", "")
	flag.StringVar(&cl.dp, "p", "", "")
	flag.StringVar(&cl.dOut, "o", "", "")
	flag.StringVar(&cl.sat, "s", "", "")
	flag.Float64Var(&cl.diameter, "d", 0, "")
	flag.Float64Var(&cl.phase, "a", 0, "")
	flag.IntVar(&cl.workers, "j", runtime.GOMAXPROCS(0), "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: hirsmoon [options] <granule>    calibrate lunar intrusion in granule
       hirsmoon -h                     display help
       hirsmoon -v                     display version and copyright

Options:
       -r <scan-range-file>
       -m <metadata-dir>
       -p <path>
       -o <output-dir>
       -s <satellite>
       -d <lunar angular diameter, arc seconds>
       -a <lunar phase angle, degrees>
       -j <workers>
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}
	var d, a bool
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			d = true
		case "a":
			a = true
		}
	})
	if d != a {
		exit.Log("Options -d and -a must be given together.")
	}
	if d && cl.diameter <= 0 {
		exit.Log("Angular diameter must be positive.")
	}
	cl.haveEph = d
	if cl.workers < 1 {
		cl.workers = 1
	}
	cl.fnCube = flag.Arg(0)
	return &cl
}

func (cl *commandLine) fixupCP(fnSpec, fnDefault string) string {
	if fnSpec > "" {
		return fnSpec
	}
	return filepath.Join(cl.dp, fnDefault)
}

func readRanges(cl *commandLine) map[int]hmcal.ScanRange {
	ranges, err := hmconf.ReadScanRanges(cl.fixupCP(cl.dr, hmconf.RangeFile))
	if err != nil {
		log.Println(err)
		exit.Log("Scan ranges of the moon intrusion are required for every channel.")
	}
	return ranges
}

func readCube(cl *commandLine) (c *hmcube.Cube, sat, inst string) {
	c, err := hmcube.ReadFile(cl.fnCube)
	if err != nil {
		exit.Log(err)
	}
	sat = c.Satellite
	if cl.sat > "" {
		sat = cl.sat
	}
	if inst, err = hmcube.Instrument(sat); err != nil {
		exit.Log(err)
	}
	return c, sat, inst
}

// readMeta returns nil if there is no metadata for the satellite.
func readMeta(cl *commandLine, sat string) map[int]hmcal.ChannelMeta {
	meta, err := hmconf.ReadMeta(
		hmconf.MetaFile(cl.fixupCP(cl.dm, hmconf.MetaDir), sat), sat)
	var mu *hmconf.MetadataUnavailableError
	switch {
	case err == nil:
		return meta
	case errors.As(err, &mu):
		log.Println(err)
		log.Println("Blackbody and lunar radiance will not be calculated.")
		return nil
	}
	exit.Log(err)
	return nil
}

func printHelp() {
	fmt.Println(`
Hirsmoon locates a lunar intrusion in the deep space view of a HIRS granule
and calibrates it to radiance and brightness temperature.

Input is a granule file, a scan range table and optionally a metadata
table for the satellite.  With -d and -a, lunar radiance is computed.
Without them, the observer ephemeris query needed to look them up is shown.

Files:
   ` + hmconf.RangeFile + `
   ` + hmconf.MetaDir + `/meta_<satellite>.txt

For full documentation:
   go doc github.com/soniakeys/hirsmoon`)
}
