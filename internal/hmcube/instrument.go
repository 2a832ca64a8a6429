// Public domain.

package hmcube

import "fmt"

// Instrument returns the HIRS instrument generation flown on the named
// satellite: "HIRS/2", "HIRS/3" or "HIRS/4".
func Instrument(satellite string) (string, error) {
	switch satellite {
	case "tirosn", "noaa06", "noaa07", "noaa08", "noaa09",
		"noaa10", "noaa11", "noaa12", "noaa13", "noaa14":
		return "HIRS/2", nil
	case "noaa15", "noaa16", "noaa17":
		return "HIRS/3", nil
	case "noaa18", "noaa19", "metopa", "metopb", "metopc":
		return "HIRS/4", nil
	}
	return "", fmt.Errorf("%s does not have HIRS on board", satellite)
}
