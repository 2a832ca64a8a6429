/*
Command hmsim writes a synthetic HIRS granule containing a lunar intrusion.

The granule can be used to try out hirsmoon without access to HIRS data.

Usage

   hmsim [options] <output file>
   hmsim -v

Options:

   -s <satellite>   default noaa19
   -i <index>       deep space scanline of the intrusion, default 5
   -n <counts>      count noise, standard deviation, default 1
   -seed <n>        random seed, default 3

-------------
Public domain.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/hirsmoon/internal/hmcube"
)

const versionString = "hmsim version 0.1"
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	s := hmcube.DefaultSim()
	flag.StringVar(&s.Satellite, "s", s.Satellite, "satellite")
	flag.IntVar(&s.Intrusion, "i", s.Intrusion, "intrusion scanline")
	flag.Float64Var(&s.Noise, "n", s.Noise, "count noise")
	seed := flag.Uint64("seed", 3, "random seed")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: hmsim [options] <output file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := hmcube.Instrument(s.Satellite); err != nil {
		exit.Log(err)
	}
	if s.Intrusion < 0 || s.Intrusion >= s.Cycles {
		exit.Log(fmt.Sprintf("Intrusion scanline must be 0-%d.", s.Cycles-1))
	}

	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(*seed)
	c := s.Cube(rnd)
	if err := hmcube.WriteFile(flag.Arg(0), c); err != nil {
		exit.Log(err)
	}
	fmt.Printf("%s: %s, %d scanlines, moon in deep space scanline %d\n",
		flag.Arg(0), s.Satellite, len(c.Time), s.Intrusion)
}
