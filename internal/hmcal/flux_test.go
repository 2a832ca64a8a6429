// Public domain.

package hmcal_test

import (
	"math"
	"testing"

	"github.com/soniakeys/hirsmoon/internal/hmcal"
)

func TestFluxRoundTrip(t *testing.T) {
	for _, wn := range []float64{669, 1217, 2515} { // cm-1
		for _, temp := range []float64{210, 265.5, 302} {
			f := hmcal.Flux(wn*100, hmcal.Correction{A: 0, B: 1}, temp)
			got := hmcal.BrightnessTemp(wn, f/hmcal.FluxEfficiency)
			if math.Abs(got-temp) > 1e-3 {
				t.Fatalf("wn %g T %g: round trip %g", wn, temp, got)
			}
		}
	}
}

func TestFluxCorrection(t *testing.T) {
	wn := 900e2
	c := hmcal.Correction{A: .5, B: .998}
	got := hmcal.Flux(wn, c, 287)
	want := hmcal.Flux(wn, hmcal.Correction{A: 0, B: 1}, .5+.998*287)
	if got != want {
		t.Fatalf("corrected flux %g, want %g", got, want)
	}
	if hmcal.Flux(wn, hmcal.Correction{A: 0, B: 1}, 300) <=
		hmcal.Flux(wn, hmcal.Correction{A: 0, B: 1}, 290) {
		t.Fatal("flux not increasing with temperature")
	}
}

func TestPlanck(t *testing.T) {
	// per frequency and per wavenumber forms agree
	wn := 1500e2 // m-1
	temp := 250.
	bw := hmcal.PlanckWavenumber(wn, temp)
	got := hmcal.PlanckTb(wn*hmcal.SpeedOfLight, bw/hmcal.SpeedOfLight)
	if math.Abs(got-temp) > 1e-9 {
		t.Fatal("PlanckTb", got)
	}
}
