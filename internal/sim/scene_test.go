package sim

import (
	"context"
	"math"
	"testing"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/site"
)

func gizaScene(ts astro.TimeSpec) *Scene {
	return NewScene(site.Lookup(site.Giza), nil, ts)
}

func TestStepDaysCarriesAcrossYears(t *testing.T) {
	tests := []struct {
		name     string
		start    astro.TimeSpec
		dd       int
		wantYear int
		wantDoy  int
	}{
		{"forward within year", astro.TimeSpec{Year: -2500, DayOfYear: 100}, 10, -2500, 110},
		{"forward across year", astro.TimeSpec{Year: -2500, DayOfYear: 360}, 10, -2499, 5},
		{"backward across year", astro.TimeSpec{Year: -2500, DayOfYear: 5}, -10, -2501, 360},
		{"forward across leap day", astro.TimeSpec{Year: -4, DayOfYear: 360}, 10, -3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := gizaScene(tt.start)
			s.StepDays(tt.dd)
			got := s.Time()
			if got.Year != tt.wantYear || got.DayOfYear != tt.wantDoy {
				t.Errorf("got year %d doy %d, want year %d doy %d",
					got.Year, got.DayOfYear, tt.wantYear, tt.wantDoy)
			}
		})
	}
}

func TestStepHoursCarriesAcrossDays(t *testing.T) {
	s := gizaScene(astro.TimeSpec{Year: -2500, DayOfYear: 365, HourUTC: 23})
	s.StepHours(2)

	got := s.Time()
	if got.Year != -2499 || got.DayOfYear != 1 {
		t.Errorf("got year %d doy %d, want -2499/1", got.Year, got.DayOfYear)
	}
	if math.Abs(got.HourUTC-1) > 1e-12 {
		t.Errorf("hour = %v, want 1", got.HourUTC)
	}

	s.StepHours(-2)
	got = s.Time()
	if got.Year != -2500 || got.DayOfYear != 365 || math.Abs(got.HourUTC-23) > 1e-12 {
		t.Errorf("reverse step got %+v, want -2500/365 hour 23", got)
	}
}

func TestStepYearsClampsLeapDay(t *testing.T) {
	// Day 366 exists in year -4 but not in -3.
	s := gizaScene(astro.TimeSpec{Year: -4, DayOfYear: 366})
	s.StepYears(1)

	got := s.Time()
	if got.Year != -3 || got.DayOfYear != 365 {
		t.Errorf("got year %d doy %d, want -3/365", got.Year, got.DayOfYear)
	}
}

func TestSnapshotShape(t *testing.T) {
	s := gizaScene(astro.TimeSpec{Year: -2500, DayOfYear: 100, HourUTC: 22})
	snap := s.Snapshot()

	if len(snap.Stars) == 0 || len(snap.Segments) == 0 {
		t.Fatalf("snapshot has %d stars, %d segments", len(snap.Stars), len(snap.Segments))
	}
	if len(snap.Alignments) != 4 {
		t.Fatalf("Giza snapshot has %d alignments, want 4", len(snap.Alignments))
	}

	for _, a := range snap.Alignments {
		if a.Star == "" {
			continue
		}
		if a.ErrorDeg < 0 || a.ErrorDeg > 180 {
			t.Errorf("%s alignment error %v out of range", a.SightLine, a.ErrorDeg)
		}
	}

	if snap.Sun.AzRad < 0 || snap.Sun.AzRad >= 2*math.Pi {
		t.Errorf("sun azimuth %v out of range", snap.Sun.AzRad)
	}
}

func TestSnapshotIsolatedFromScene(t *testing.T) {
	s := gizaScene(astro.TimeSpec{Year: -2500, DayOfYear: 100, HourUTC: 22})
	snap1 := s.Snapshot()
	star0 := snap1.Stars[0]

	// A later snapshot at a different time must not rewrite slices handed
	// out earlier.
	s.StepYears(1000)
	s.Snapshot()

	if snap1.Stars[0] != star0 {
		t.Error("earlier snapshot mutated by later reprojection")
	}
}

func TestJumpToDawnSunNearTarget(t *testing.T) {
	s := gizaScene(astro.TimeSpec{Year: 2000, DayOfYear: 80, HourUTC: 12})
	s.JumpToDawn()

	snap := s.Snapshot()
	if alt := snap.Sun.AltDeg(); math.Abs(alt-astro.CivilDawnAltDeg) > 0.2 {
		t.Errorf("sun altitude at dawn = %v, want about %v", alt, astro.CivilDawnAltDeg)
	}
}

func TestSearchAlignmentUnknownSightLine(t *testing.T) {
	s := gizaScene(astro.TimeSpec{Year: -2500, DayOfYear: 100})

	if _, err := s.SearchAlignment(context.Background(), "no-such-shaft",
		astro.DefaultSearchOptions(-2500, -4000, 0)); err == nil {
		t.Error("expected error for unknown sight-line")
	}
}

func TestSearchAlignmentRuns(t *testing.T) {
	s := gizaScene(astro.TimeSpec{Year: -2500, DayOfYear: 100})

	res, err := s.SearchAlignment(context.Background(), "queens-south",
		astro.DefaultSearchOptions(-2500, -4000, 0))
	if err != nil {
		t.Fatalf("SearchAlignment: %v", err)
	}
	if res.Year < -4000 || res.Year > 0 {
		t.Errorf("result year %d outside search range", res.Year)
	}
	if res.ErrorDeg < 0 || res.ErrorDeg > 180 {
		t.Errorf("result error %v out of range", res.ErrorDeg)
	}
}
