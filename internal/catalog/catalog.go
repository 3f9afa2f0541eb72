// Package catalog holds the star and constellation reference data and its
// bulk reprojection into an observer's sky.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"sync"
)

//go:embed data/stars.json
var defaultStarData []byte

//go:embed data/constellations.json
var defaultSegmentData []byte

// Star is a catalog entry in the J2000 mean equatorial frame. The data is
// read-only reference material; reprojection never writes back into it.
type Star struct {
	Name   string
	RARad  float64
	DecRad float64
	Mag    float64
}

// Segment is one constellation figure line between two J2000 endpoints.
type Segment struct {
	ID                 string
	RA1, De1, RA2, De2 float64 // radians
}

// Catalog bundles the loaded reference data.
type Catalog struct {
	Stars    []Star
	Segments []Segment
}

// StarByName looks a star up case-sensitively by its catalog name.
func (c *Catalog) StarByName(name string) (Star, bool) {
	for _, s := range c.Stars {
		if s.Name == name {
			return s, true
		}
	}
	return Star{}, false
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded catalog: bright stars down to roughly fourth
// magnitude plus stick figures for the zodiac constellations and Orion.
// Parsed once, shared afterwards; callers must not modify it.
func Default() *Catalog {
	defaultOnce.Do(func() {
		stars, err := ParseStars(defaultStarData)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded star data: %v", err))
		}
		segments, err := ParseSegments(defaultSegmentData)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded segment data: %v", err))
		}
		defaultCat = &Catalog{Stars: stars, Segments: segments}
	})
	return defaultCat
}

// starFeature mirrors the feature-collection input shape.
type starFeature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Name string   `json:"name"`
		Mag  *float64 `json:"mag"`
	} `json:"properties"`
}

type starCollection struct {
	Features []starFeature `json:"features"`
}

// ParseStars reads a star catalog from either of the two shapes collaborators
// supply: a geographic-feature-collection-style document whose point
// coordinates are [raDeg, decDeg], or a plain array of [raDeg, decDeg, mag]
// rows. Malformed entries are skipped individually so a partial dataset
// still loads; an empty document yields an empty catalog, not an error.
func ParseStars(data []byte) ([]Star, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '{' {
		return parseStarCollection(trimmed)
	}
	return parseStarRows(trimmed)
}

func parseStarCollection(data []byte) ([]Star, error) {
	var coll starCollection
	if err := json.Unmarshal(data, &coll); err != nil {
		return nil, fmt.Errorf("parse star collection: %w", err)
	}

	stars := make([]Star, 0, len(coll.Features))
	for _, f := range coll.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		mag := 6.0
		if f.Properties.Mag != nil {
			mag = *f.Properties.Mag
		}
		stars = append(stars, Star{
			Name:   f.Properties.Name,
			RARad:  degToRad(f.Geometry.Coordinates[0]),
			DecRad: degToRad(f.Geometry.Coordinates[1]),
			Mag:    mag,
		})
	}
	return stars, nil
}

func parseStarRows(data []byte) ([]Star, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse star rows: %w", err)
	}

	stars := make([]Star, 0, len(rows))
	for _, raw := range rows {
		var row []float64
		if err := json.Unmarshal(raw, &row); err != nil || len(row) < 3 {
			continue
		}
		stars = append(stars, Star{
			RARad:  degToRad(row[0]),
			DecRad: degToRad(row[1]),
			Mag:    row[2],
		})
	}
	return stars, nil
}

// segmentSet mirrors the constellation input shape: one entry per
// constellation with [ra1, de1, ra2, de2] degree rows.
type segmentSet struct {
	ID    string      `json:"id"`
	Lines [][]float64 `json:"lines"`
}

// ParseSegments reads constellation figure segments. Rows that do not carry
// four coordinates are skipped individually.
func ParseSegments(data []byte) ([]Segment, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var sets []segmentSet
	if err := json.Unmarshal(trimmed, &sets); err != nil {
		return nil, fmt.Errorf("parse segments: %w", err)
	}

	var segments []Segment
	for _, set := range sets {
		for _, line := range set.Lines {
			if len(line) < 4 {
				continue
			}
			segments = append(segments, Segment{
				ID:  set.ID,
				RA1: degToRad(line[0]),
				De1: degToRad(line[1]),
				RA2: degToRad(line[2]),
				De2: degToRad(line[3]),
			})
		}
	}
	return segments, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
