package catalog

import (
	"math"
	"testing"

	"github.com/paleosky/paleosky/internal/astro"
)

var gizaTime = astro.TimeSpec{Year: -2500, DayOfYear: 100, HourUTC: 22}

func TestReprojectStarsEmptyCatalog(t *testing.T) {
	p := NewProjector(gizaTime, 29.9792, 31.1342)

	out := p.ReprojectStars(nil, nil)
	if len(out) != 0 {
		t.Errorf("empty catalog produced %d points", len(out))
	}
}

func TestReprojectStarsUnitVectors(t *testing.T) {
	cat := Default()
	p := NewProjector(gizaTime, 29.9792, 31.1342)

	out := p.ReprojectStars(cat.Stars, nil)
	if len(out) != len(cat.Stars) {
		t.Fatalf("got %d points for %d stars", len(out), len(cat.Stars))
	}

	for i, pt := range out {
		if n := pt.Dir.Norm(); math.Abs(n-1) > 1e-9 {
			t.Errorf("star %d direction norm = %v, want 1", i, n)
		}
		if pt.Intensity < 0.05 || pt.Intensity > 1 {
			t.Errorf("star %d intensity out of range: %v", i, pt.Intensity)
		}
	}
}

func TestReprojectReusesBuffer(t *testing.T) {
	cat := Default()
	p := NewProjector(gizaTime, 29.9792, 31.1342)

	buf := make([]StarPoint, 0, len(cat.Stars))
	out1 := p.ReprojectStars(cat.Stars, buf)
	out2 := p.ReprojectStars(cat.Stars, out1)

	if &out1[0] != &out2[0] {
		t.Error("reprojection reallocated the caller-owned buffer")
	}
}

func TestReprojectDoesNotMutateCatalog(t *testing.T) {
	cat := Default()
	before := cat.Stars[0]

	p := NewProjector(gizaTime, 29.9792, 31.1342)
	p.ReprojectStars(cat.Stars, nil)
	p.ReprojectSegments(cat.Segments, nil)

	if cat.Stars[0] != before {
		t.Error("reprojection mutated the canonical catalog")
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		mag  float64
		want float64
	}{
		{-1, 1.0},   // brightest clamp: (1-0)^2.2*0.95+0.05
		{6, 0.05},   // dimmest clamp: (1-1)^2.2*0.95+0.05
		{-5, 1.0},   // below clamp behaves like -1
		{10, 0.05},  // above clamp behaves like 6
	}

	for _, tt := range tests {
		if got := Intensity(tt.mag); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Intensity(%v) = %v, want %v", tt.mag, got, tt.want)
		}
	}

	// Brighter stars map to strictly higher intensity.
	if Intensity(0) <= Intensity(3) {
		t.Errorf("Intensity not decreasing with magnitude: I(0)=%v I(3)=%v", Intensity(0), Intensity(3))
	}
}

func TestNearestZodiacSegment(t *testing.T) {
	lines := []SegmentLine{
		{ID: "Ori", A: astro.Vec3{X: 1}, B: astro.Vec3{X: 1}},        // not zodiac
		{ID: "Tau", A: astro.Vec3{Y: 1}, B: astro.Vec3{Y: 1}},
		{ID: "Leo", A: astro.Vec3{X: 1}, B: astro.Vec3{Y: 1}},
	}

	id, ok := NearestZodiacSegment(lines, astro.Vec3{Y: 1}, 1000)
	if !ok {
		t.Fatal("no zodiac segment found")
	}
	if id != "Tau" {
		t.Errorf("nearest zodiac = %s, want Tau", id)
	}

	// Orion is excluded even when geometrically closest.
	id, ok = NearestZodiacSegment(lines, astro.Vec3{X: 1}, 1000)
	if !ok || id == "Ori" {
		t.Errorf("nearest zodiac = %s (ok=%v), Orion must not classify", id, ok)
	}
}

func TestNearestZodiacSegmentTieBreak(t *testing.T) {
	// Two zodiac segments at the same midpoint: catalog order wins.
	lines := []SegmentLine{
		{ID: "Gem", A: astro.Vec3{Y: 1}, B: astro.Vec3{Y: 1}},
		{ID: "Cnc", A: astro.Vec3{Y: 1}, B: astro.Vec3{Y: 1}},
	}

	id, ok := NearestZodiacSegment(lines, astro.Vec3{Y: 1}, 1000)
	if !ok || id != "Gem" {
		t.Errorf("tie-break returned %s (ok=%v), want first-encountered Gem", id, ok)
	}
}

func TestNearestZodiacSegmentEmpty(t *testing.T) {
	if _, ok := NearestZodiacSegment(nil, astro.Vec3{Y: 1}, 1000); ok {
		t.Error("empty segment list claimed a match")
	}
}
