// Package sim provides thread-safe scene state: one observer site, one
// moment in time, and the reprojected sky derived from them.
package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/catalog"
	"github.com/paleosky/paleosky/internal/site"
)

// skyRadius is the sphere radius used when classifying sight-lines against
// constellation segments. The classification only compares distances, so the
// value just has to be shared between both sides.
const skyRadius = 1000.0

// Alignment describes which zodiac constellation a sight-line currently
// passes through, if any.
type Alignment struct {
	SightLine     string  `json:"sight_line"`
	Star          string  `json:"star,omitempty"`
	Constellation string  `json:"constellation,omitempty"`
	ErrorDeg      float64 `json:"error_deg,omitempty"`
}

// Snapshot is an immutable view of the scene at one moment. The slices are
// owned by the snapshot; the scene's internal buffers are never handed out.
type Snapshot struct {
	Site       site.Info
	Time       astro.TimeSpec
	Stars      []catalog.StarPoint
	Segments   []catalog.SegmentLine
	Sun        astro.Horizontal
	SunTarget  astro.Target
	Alignments []Alignment
}

// Scene holds the mutable observer state behind a mutex. Reprojection
// buffers are reused across updates so stepping through time does not
// allocate per frame.
type Scene struct {
	mu   sync.Mutex
	info site.Info
	cat  *catalog.Catalog
	ts   astro.TimeSpec

	starBuf []catalog.StarPoint
	segBuf  []catalog.SegmentLine
}

// NewScene creates a scene at the given site and time. A nil catalog uses
// the embedded default.
func NewScene(info site.Info, cat *catalog.Catalog, ts astro.TimeSpec) *Scene {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Scene{info: info, cat: cat, ts: ts}
}

// Time returns the current time spec.
func (s *Scene) Time() astro.TimeSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ts
}

// SetTime replaces the current time spec.
func (s *Scene) SetTime(ts astro.TimeSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ts = ts
}

// StepYears advances the scene by dy calendar years, clamping the day of
// year when the target year is shorter.
func (s *Scene) StepYears(dy int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ts.Year += dy
	if max := astro.DaysInYear(s.ts.Year); s.ts.DayOfYear > max {
		s.ts.DayOfYear = max
	}
}

// StepDays advances the scene by dd days, carrying across year boundaries.
func (s *Scene) StepDays(dd int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ts.DayOfYear += dd
	for s.ts.DayOfYear > astro.DaysInYear(s.ts.Year) {
		s.ts.DayOfYear -= astro.DaysInYear(s.ts.Year)
		s.ts.Year++
	}
	for s.ts.DayOfYear < 1 {
		s.ts.Year--
		s.ts.DayOfYear += astro.DaysInYear(s.ts.Year)
	}
}

// StepHours advances the scene by dh hours, carrying across day and year
// boundaries.
func (s *Scene) StepHours(dh float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ts.HourUTC += dh
	for s.ts.HourUTC >= 24 {
		s.ts.HourUTC -= 24
		s.ts.DayOfYear++
	}
	for s.ts.HourUTC < 0 {
		s.ts.HourUTC += 24
		s.ts.DayOfYear--
	}
	for s.ts.DayOfYear > astro.DaysInYear(s.ts.Year) {
		s.ts.DayOfYear -= astro.DaysInYear(s.ts.Year)
		s.ts.Year++
	}
	for s.ts.DayOfYear < 1 {
		s.ts.Year--
		s.ts.DayOfYear += astro.DaysInYear(s.ts.Year)
	}
}

// JumpToDawn sets the hour to civil dawn for the current day at the scene's
// site. When the sun never crosses the dawn altitude the closest approach is
// used, matching the solver's fallback.
func (s *Scene) JumpToDawn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ts.HourUTC = astro.CivilDawnHour(s.ts.Year, s.ts.DayOfYear, s.info.Latitude, s.info.Longitude)
}

// Snapshot reprojects the catalog for the current time and classifies every
// sight-line against the zodiac segments.
func (s *Scene) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := catalog.NewProjector(s.ts, s.info.Latitude, s.info.Longitude)
	s.starBuf = p.ReprojectStars(s.cat.Stars, s.starBuf)
	s.segBuf = p.ReprojectSegments(s.cat.Segments, s.segBuf)

	stars := make([]catalog.StarPoint, len(s.starBuf))
	copy(stars, s.starBuf)
	segments := make([]catalog.SegmentLine, len(s.segBuf))
	copy(segments, s.segBuf)

	// The sun position is already of-date, so it skips the precession
	// matrix the catalog stars go through.
	jd := s.ts.JulianDate()
	sunRA, sunDec := astro.SunPosition(jd)
	sunTarget := astro.Target{RARad: sunRA, DecRad: sunDec}
	sun := astro.ToHorizontal(sunRA, sunDec, jd,
		s.info.Latitude*degToRad, s.info.Longitude*degToRad)

	alignments := make([]Alignment, 0, len(s.info.SightLines))
	for _, sl := range s.info.SightLines {
		a := Alignment{SightLine: sl.Name, Star: sl.Star}
		if id, ok := catalog.NearestZodiacSegment(segments, sl.Vector(), skyRadius); ok {
			a.Constellation = id
		}
		if sl.Star != "" {
			if star, ok := s.cat.StarByName(sl.Star); ok {
				hd := p.Horizontal(astro.Target{RARad: star.RARad, DecRad: star.DecRad})
				a.ErrorDeg = astro.AngularSeparationDeg(hd.Vector(), sl.Vector())
			}
		}
		alignments = append(alignments, a)
	}

	return Snapshot{
		Site:       s.info,
		Time:       s.ts,
		Stars:      stars,
		Segments:   segments,
		Sun:        sun,
		SunTarget:  sunTarget,
		Alignments: alignments,
	}
}

// SearchAlignment runs the epoch descent for one of the scene's named
// sight-lines against its associated star.
func (s *Scene) SearchAlignment(ctx context.Context, sightLine string, opts astro.SearchOptions) (astro.SearchResult, error) {
	s.mu.Lock()
	info := s.info
	cat := s.cat
	s.mu.Unlock()

	sl, ok := info.SightLineByName(sightLine)
	if !ok {
		return astro.SearchResult{}, fmt.Errorf("site %s has no sight-line %q", info.ID, sightLine)
	}
	star, ok := cat.StarByName(sl.Star)
	if !ok {
		return astro.SearchResult{}, fmt.Errorf("sight-line %q has no catalog star", sightLine)
	}

	target := astro.Target{RARad: star.RARad, DecRad: star.DecRad}
	res := astro.SearchAlignmentYear(ctx, target, sl.Vector(),
		info.Latitude*degToRad, info.Longitude*degToRad, opts)
	return res, nil
}

const degToRad = 0.017453292519943295
