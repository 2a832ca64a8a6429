/*
Command hirsmoon finds a lunar intrusion in the deep space view of a HIRS
granule and calibrates it to lunar radiance and brightness temperature.

Contents

  Program overview
  Command line usage
  File formats
  Algorithm outline


Program overview

The HIRS radiometers flown on the NOAA and MetOp satellites view deep space
and an internal warm blackbody target to calibrate their earth views.
Occasionally the moon drifts into the deep space view.  The deep space
counts drop for a scanline, and that scanline, properly calibrated, is a
measurement of the moon.

Input is a granule file holding decoded telemetry, a table of the scan
positions where the moon appears in each channel, and optionally a table
of channel metadata for the satellite.  Output is a table of count
statistics, blackbody radiance, lunar radiance and brightness temperature
for each of the 19 channels, printed and saved as a CSV file.

Lunar radiance depends on the angular diameter of the moon as seen from
the satellite.  This and the lunar phase angle are looked up by hand in an
observer ephemeris.  Run hirsmoon once without them to locate the intrusion
and see the query parameters, then again with -d and -a.

Sample run, using a synthetic granule from the hmsim command:

  hmsim noaa19.hmc
  hirsmoon noaa19.hmc
  hirsmoon -d 1811.4 -a 43.2 noaa19.hmc


Command line usage

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

-p gives a common directory for the scan range file and the metadata
directory.  -r and -m take precedence over -p.  -s overrides the satellite
name recorded in the granule.  -d and -a must be given together.
Channels are calibrated concurrently on -j workers, by default one per CPU.


File formats

The scan range file, config_intr_scan_ranges.txt, is required.  It is
comma separated text with a heading line and one line per channel:

  channel,min_scanpos,max_scanpos
  1,26,33
  2,25,34
  ...

Ranges are inclusive.  All 19 channels must be present.

The metadata file meta_files/meta_<satellite>.txt is optional.  Lines
beginning with # are ignored.

  # noaa19
  channel,wavenumber,correction_factor1,correction_factor2,fov
  1,669.36,-0.0107,1.00002,1.3
  ...

Wavenumber is the channel central wavenumber in cm-1, the correction
factors are the linear blackbody temperature correction T' = f1 + f2*T,
and fov is the channel field of view in degrees.  Without this file the
program still reports count statistics and the blackbody temperature.

The output file is named

  hirs_moon_intrusion_<satellite>_<date>_<time>_calculations.csv

with the date and time of the intrusion scanline.


Algorithm outline

1.  For each channel, the deep space scanline with the lowest mean count
over scan positions 10-55 is the intrusion scanline.  The first is taken
if several are equal.

2.  Moon counts are the mean over the channel's scan range at the
intrusion scanline.  Deep space counts are the average of the scanlines
before and after it.  Blackbody counts are from the blackbody scanline at
the same index.  Uncertainties include the ±.5 count digitization.

3.  The blackbody temperature is the mean of the warm target sensors at
the intrusion scanline, the scanline most channels agree on.

4.  Blackbody radiance is the Planck function at the channel wavenumber
and the corrected blackbody temperature.

5.  A two point calibration, zero radiance at deep space counts and
blackbody radiance at blackbody counts, converts moon counts to radiance.
This is scaled from the field of view to the lunar disk and inverted
through the Planck function for brightness temperature.

-------------
Public domain.
*/
package main
