package catalog

import (
	"math"
	"testing"
)

func TestParseStarsFeatureCollection(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"geometry": {"coordinates": [101.287, -16.716]}, "properties": {"name": "Sirius", "mag": -1.46}},
			{"geometry": {"coordinates": [279.235, 38.784]}, "properties": {"name": "Vega", "mag": 0.03}}
		]
	}`)

	stars, err := ParseStars(data)
	if err != nil {
		t.Fatalf("ParseStars: %v", err)
	}
	if len(stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(stars))
	}

	if stars[0].Name != "Sirius" {
		t.Errorf("first star name = %q, want Sirius", stars[0].Name)
	}
	if want := 101.287 * math.Pi / 180; math.Abs(stars[0].RARad-want) > 1e-12 {
		t.Errorf("Sirius RA = %v, want %v", stars[0].RARad, want)
	}
	if stars[0].Mag != -1.46 {
		t.Errorf("Sirius mag = %v, want -1.46", stars[0].Mag)
	}
}

func TestParseStarsRows(t *testing.T) {
	data := []byte(`[[101.287, -16.716, -1.46], [279.235, 38.784, 0.03]]`)

	stars, err := ParseStars(data)
	if err != nil {
		t.Fatalf("ParseStars: %v", err)
	}
	if len(stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(stars))
	}
	if stars[1].Mag != 0.03 {
		t.Errorf("second star mag = %v, want 0.03", stars[1].Mag)
	}
}

func TestParseStarsSkipsMalformedRows(t *testing.T) {
	data := []byte(`[[101.287, -16.716, -1.46], [1.0], "junk", [279.235, 38.784, 0.03]]`)

	stars, err := ParseStars(data)
	if err != nil {
		t.Fatalf("ParseStars: %v", err)
	}
	if len(stars) != 2 {
		t.Errorf("got %d stars, want 2 (malformed rows skipped)", len(stars))
	}
}

func TestParseStarsSkipsFeatureWithoutCoordinates(t *testing.T) {
	data := []byte(`{
		"features": [
			{"properties": {"name": "nowhere", "mag": 1}},
			{"geometry": {"coordinates": [10, 20]}, "properties": {"name": "ok", "mag": 1}}
		]
	}`)

	stars, err := ParseStars(data)
	if err != nil {
		t.Fatalf("ParseStars: %v", err)
	}
	if len(stars) != 1 || stars[0].Name != "ok" {
		t.Errorf("got %+v, want only the well-formed feature", stars)
	}
}

func TestParseStarsEmpty(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("  ")} {
		stars, err := ParseStars(data)
		if err != nil {
			t.Fatalf("ParseStars(%q): %v", data, err)
		}
		if len(stars) != 0 {
			t.Errorf("ParseStars(%q) = %d stars, want 0", data, len(stars))
		}
	}
}

func TestParseSegments(t *testing.T) {
	data := []byte(`[
		{"id": "Ori", "lines": [[88.793, 7.407, 81.283, 6.35], [81.283, 6.35, 83.002]]},
		{"id": "Tau", "lines": [[68.98, 16.509, 81.573, 28.608]]}
	]`)

	segments, err := ParseSegments(data)
	if err != nil {
		t.Fatalf("ParseSegments: %v", err)
	}

	// The three-coordinate Orion row is malformed and skipped.
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].ID != "Ori" || segments[1].ID != "Tau" {
		t.Errorf("segment ids = %q, %q", segments[0].ID, segments[1].ID)
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if len(cat.Stars) == 0 {
		t.Fatal("default catalog has no stars")
	}
	if len(cat.Segments) == 0 {
		t.Fatal("default catalog has no segments")
	}

	if _, ok := cat.StarByName("Sirius"); !ok {
		t.Error("default catalog missing Sirius")
	}

	// Every zodiac constellation should contribute at least one segment.
	seen := map[string]bool{}
	for _, s := range cat.Segments {
		seen[s.ID] = true
	}
	for id := range ZodiacIDs {
		if !seen[id] {
			t.Errorf("default catalog missing zodiac constellation %s", id)
		}
	}
}
