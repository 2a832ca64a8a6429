// Public domain.

package hmprog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/soniakeys/hirsmoon/internal/hmcal"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	sexa "github.com/soniakeys/sexagesimal"
)

// outputName is the default name of the CSV result file.
func outputName(sat string, t time.Time) string {
	return fmt.Sprintf("hirs_moon_intrusion_%s_%s_%s_calculations.csv",
		sat, t.Format("2006-01-02"), t.Format("15:04:05"))
}

var csvHeading = []string{
	"channel",
	"central_wavenumber",
	"intrusion_scan_range",
	"intrusion_time",
	"bb_temp_mean",
	"bb_temp_std",
	"moon_counts_mean",
	"moon_counts_std",
	"dsv_counts_mean",
	"dsv_counts_std",
	"bb_counts_mean",
	"bb_counts_std",
	"bb_rad",
	"moon_rad",
	"moon_rad_err_pct",
	"moon_bt",
	"phase_angle",
	"longitude",
	"latitude",
	"altitude",
}

func ff(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// csvRecord formats one channel.  Unavailable values are empty.
func csvRecord(p *hmcal.Pipeline, r hmcal.ChannelResult) []string {
	rec := make([]string, len(csvHeading))
	rec[0] = strconv.Itoa(r.Channel)
	rec[2] = r.ScanRange.String()
	if r.Index >= 0 {
		rec[3] = r.Time.Format("15:04:05")
	}
	rec[4] = ff(p.BBTemp.Mean, 4)
	rec[5] = ff(p.BBTemp.Std, 4)
	if c := r.Counts; c != nil {
		rec[6], rec[7] = ff(c.Moon.Mean, 2), ff(c.Moon.Std, 2)
		rec[8], rec[9] = ff(c.DSV.Mean, 2), ff(c.DSV.Std, 2)
		rec[10], rec[11] = ff(c.BB.Mean, 2), ff(c.BB.Std, 2)
	}
	if r.Meta != nil {
		rec[1] = ff(r.Meta.Wavenumber, 2)
	}
	if r.BBRadiance != nil {
		rec[12] = ff(*r.BBRadiance, 2)
	}
	if rad := r.Radiance; rad != nil {
		rec[13] = ff(rad.Radiance, 4)
		rec[14] = ff(rad.UncertaintyPct, 4)
		rec[15] = ff(rad.BrightnessTemp, 3)
		rec[16] = ff(rad.PhaseAngle.Deg(), 3)
	}
	rec[17] = ff(p.Position.Lon.Deg(), 4)
	rec[18] = ff(p.Position.Lat.Deg(), 4)
	rec[19] = ff(p.Position.Alt, 3)
	return rec
}

func writeCSV(w io.Writer, p *hmcal.Pipeline, res []hmcal.ChannelResult) error {
	cw := csv.NewWriter(w)
	cw.Write(csvHeading)
	for _, r := range res {
		cw.Write(csvRecord(p, r))
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVFile(fn string, p *hmcal.Pipeline, res []hmcal.ChannelResult) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = writeCSV(f, p, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printScanline shows where the intrusion was found in one channel.
func printScanline(w io.Writer, r hmcal.ChannelResult) {
	if r.Index < 0 {
		fmt.Fprintf(w, "channel %2d  not located: %v\n", r.Channel, r.Err)
		return
	}
	fmt.Fprintf(w, "channel %2d  scanline %3d  %s  range %s\n",
		r.Channel, r.Index, r.Time.Format("15:04:05"), r.ScanRange)
	if r.Err != nil {
		fmt.Fprintf(w, "            %v\n", r.Err)
	}
}

// printTable shows results in aligned columns.
func printTable(w io.Writer, p *hmcal.Pipeline, res []hmcal.ChannelResult) {
	fmt.Fprintf(w, "Blackbody temperature: %.4f ± %.4f K\n\n",
		p.BBTemp.Mean, p.BBTemp.Std)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Ch\tMoon\t±\tDSV\t±\tBB\t±\tBB rad\tRad\t±%\tBT\t")
	for _, r := range res {
		fmt.Fprintf(tw, "%d\t", r.Channel)
		if c := r.Counts; c != nil {
			fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t",
				c.Moon.Mean, c.Moon.Std, c.DSV.Mean, c.DSV.Std,
				c.BB.Mean, c.BB.Std)
		} else {
			fmt.Fprint(tw, "-\t-\t-\t-\t-\t-\t")
		}
		if r.BBRadiance != nil {
			fmt.Fprintf(tw, "%.2f\t", *r.BBRadiance)
		} else {
			fmt.Fprint(tw, "-\t")
		}
		if rad := r.Radiance; rad != nil {
			fmt.Fprintf(tw, "%.4f\t%.3f\t%.2f\t\n",
				rad.Radiance, rad.UncertaintyPct, rad.BrightnessTemp)
		} else {
			fmt.Fprint(tw, "-\t-\t-\t\n")
		}
	}
	tw.Flush()
}

// printInstructions describes the observer ephemeris query for the
// lunar angular diameter and phase angle.
func printInstructions(w io.Writer, p *hmcal.Pipeline) {
	pos := p.Position
	jd := julian.TimeToJD(p.Time)
	fmt.Fprintf(w, `Look up the angular diameter and phase angle of the moon in an observer
ephemeris such as JPL Horizons, https://ssd.jpl.nasa.gov/horizons/

  Ephemeris type:     OBSERVER
  Target body:        Moon [301]
  Observer location:  topocentric, lon %.4f°, lat %.4f°, alt %.3f km
                      (%.1d, %.1d)
  Time span:          %s to +1 min, step 1 m
                      (JD %.5f, MJD %.5f)
  Quantities:         13 (target angular diameter),
                      24 (Sun-Target-Observer phase angle)

Then run again with -d <angular diameter, arc seconds> -a <phase angle, degrees>.
`,
		pos.Lon.Deg(), pos.Lat.Deg(), pos.Alt,
		sexa.FmtAngle(pos.Lon), sexa.FmtAngle(pos.Lat),
		p.Time.Format("2006-01-02 15:04:05"),
		jd, jd-base.JMod)
}
