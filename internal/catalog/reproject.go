package catalog

import (
	"math"

	"github.com/paleosky/paleosky/internal/astro"
)

// Projector reprojects J2000 catalog positions into the horizontal frame of
// one observer at one moment. The precession matrix is the expensive part
// and is computed exactly once per Projector, then shared across every star
// and segment endpoint; this is what keeps bulk updates linear in catalog
// size at interactive rates.
type Projector struct {
	jd     float64
	pm     astro.Mat3
	latRad float64
	lonRad float64
}

// NewProjector builds a projector for a time spec and observer location in
// degrees.
func NewProjector(ts astro.TimeSpec, latDeg, lonDeg float64) *Projector {
	jd := ts.JulianDate()
	return &Projector{
		jd:     jd,
		pm:     astro.PrecessionMatrix(astro.JulianEpoch(jd)),
		latRad: latDeg * math.Pi / 180,
		lonRad: lonDeg * math.Pi / 180,
	}
}

// Horizontal maps a single J2000 position through the shared matrix.
func (p *Projector) Horizontal(t astro.Target) astro.Horizontal {
	return astro.ToHorizontalPrecessed(t, p.pm, p.jd, p.latRad, p.lonRad)
}

// StarPoint is a reprojected star ready for placement by a renderer.
type StarPoint struct {
	Name      string
	Dir       astro.Vec3 // unit vector, observer East/North/Up frame
	Intensity float64
	Mag       float64
}

// SegmentLine is a reprojected constellation segment.
type SegmentLine struct {
	ID   string
	A, B astro.Vec3 // unit vectors, observer East/North/Up frame
}

// ReprojectStars writes the horizontal directions of every star into out,
// reusing its backing array. The canonical catalog is never modified; an
// empty catalog produces an empty result.
func (p *Projector) ReprojectStars(stars []Star, out []StarPoint) []StarPoint {
	out = out[:0]
	for _, s := range stars {
		hd := p.Horizontal(astro.Target{RARad: s.RARad, DecRad: s.DecRad})
		out = append(out, StarPoint{
			Name:      s.Name,
			Dir:       hd.Vector(),
			Intensity: Intensity(s.Mag),
			Mag:       s.Mag,
		})
	}
	return out
}

// ReprojectSegments writes the horizontal directions of every segment
// endpoint into out, reusing its backing array.
func (p *Projector) ReprojectSegments(segments []Segment, out []SegmentLine) []SegmentLine {
	out = out[:0]
	for _, s := range segments {
		a := p.Horizontal(astro.Target{RARad: s.RA1, DecRad: s.De1})
		b := p.Horizontal(astro.Target{RARad: s.RA2, DecRad: s.De2})
		out = append(out, SegmentLine{ID: s.ID, A: a.Vector(), B: b.Vector()})
	}
	return out
}

// Intensity maps apparent magnitude to a display intensity in (0, 1]:
// magnitude clamps to [-1, 6], then intensity = (1-t)^2.2 * 0.95 + 0.05
// with t = (mag+1)/7, so brighter stars come out brighter.
func Intensity(mag float64) float64 {
	if mag < -1 {
		mag = -1
	} else if mag > 6 {
		mag = 6
	}
	t := (mag + 1) / 7
	return math.Pow(1-t, 2.2)*0.95 + 0.05
}

// ZodiacIDs is the constellation subset used for sight-line classification.
var ZodiacIDs = map[string]bool{
	"Ari": true, "Tau": true, "Gem": true, "Cnc": true,
	"Leo": true, "Vir": true, "Lib": true, "Sco": true,
	"Sgr": true, "Cap": true, "Aqr": true, "Psc": true,
}

// NearestZodiacSegment returns the constellation whose reprojected segment
// midpoint lies closest, in straight-line distance at the given sphere
// radius, to the reference direction. Only segments in ZodiacIDs compete;
// ties keep the first segment encountered in catalog order. Returns false
// when no zodiac segment is present.
func NearestZodiacSegment(lines []SegmentLine, ref astro.Vec3, radius float64) (string, bool) {
	refPt := ref.Normalized().Scale(radius)

	bestID := ""
	bestDist := math.MaxFloat64
	found := false

	for _, ln := range lines {
		if !ZodiacIDs[ln.ID] {
			continue
		}
		mid := ln.A.Scale(radius).Add(ln.B.Scale(radius)).Scale(0.5)
		if d := mid.Sub(refPt).Norm(); d < bestDist {
			bestDist = d
			bestID = ln.ID
			found = true
		}
	}
	return bestID, found
}
