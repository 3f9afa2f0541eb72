package httpapi

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paleosky/paleosky/internal/astro"
	"github.com/paleosky/paleosky/internal/catalog"
	"github.com/paleosky/paleosky/internal/config"
	"github.com/paleosky/paleosky/internal/sim"
	"github.com/paleosky/paleosky/internal/site"
	"github.com/paleosky/paleosky/internal/version"
)

// Handler handles HTTP requests for sky geometry queries.
type Handler struct {
	cfg config.Config
	cat *catalog.Catalog
}

// NewHandler creates a new HTTP handler. The config supplies defaults for
// omitted query parameters; a nil catalog uses the embedded default.
func NewHandler(cfg config.Config, cat *catalog.Catalog) *Handler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Handler{cfg: cfg, cat: cat}
}

// query holds the parsed common parameters shared by every endpoint.
type query struct {
	info site.Info
	ts   astro.TimeSpec
}

// parseCommon reads site/year/day/hour, falling back to the configured
// defaults. A false return means a 400 has already been written.
func (h *Handler) parseCommon(c *gin.Context) (query, bool) {
	q := query{
		info: h.cfg.SiteInfo(),
		ts: astro.TimeSpec{
			Year:      h.cfg.Year,
			DayOfYear: h.cfg.Day,
			HourUTC:   h.cfg.Hour,
		},
	}

	if s := c.Query("site"); s != "" {
		info, ok := site.Known[site.ID(s)]
		if !ok {
			badRequest(c, "unknown site %q", s)
			return q, false
		}
		q.info = info
	}

	if s := c.Query("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, "invalid year: %v", err)
			return q, false
		}
		q.ts.Year = year
	}

	if s := c.Query("day"); s != "" {
		day, err := strconv.Atoi(s)
		if err != nil || day < 1 || day > astro.DaysInYear(q.ts.Year) {
			badRequest(c, "invalid day %q for year %d", s, q.ts.Year)
			return q, false
		}
		q.ts.DayOfYear = day
	}

	if s := c.Query("hour"); s != "" {
		hour, err := strconv.ParseFloat(s, 64)
		if err != nil || hour < 0 || hour >= 24 {
			badRequest(c, "invalid hour %q", s)
			return q, false
		}
		q.ts.HourUTC = hour
	}

	return q, true
}

// parseTarget reads either a star name or explicit ra/dec in degrees.
func (h *Handler) parseTarget(c *gin.Context) (astro.Target, string, bool) {
	if name := c.Query("star"); name != "" {
		star, ok := h.cat.StarByName(name)
		if !ok {
			badRequest(c, "unknown star %q", name)
			return astro.Target{}, "", false
		}
		return astro.Target{RARad: star.RARad, DecRad: star.DecRad}, star.Name, true
	}

	raStr, decStr := c.Query("ra"), c.Query("dec")
	if raStr == "" || decStr == "" {
		badRequest(c, "star or ra/dec parameters are required")
		return astro.Target{}, "", false
	}

	ra, err := strconv.ParseFloat(raStr, 64)
	if err != nil {
		badRequest(c, "invalid ra: %v", err)
		return astro.Target{}, "", false
	}
	dec, err := strconv.ParseFloat(decStr, 64)
	if err != nil || dec < -90 || dec > 90 {
		badRequest(c, "invalid dec %q", decStr)
		return astro.Target{}, "", false
	}

	t := astro.Target{
		RARad:  ra * math.Pi / 180,
		DecRad: dec * math.Pi / 180,
	}
	return t, "", true
}

func badRequest(c *gin.Context, format string, args ...any) {
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(format, args...)})
}

// GetPosition handles GET /v1/position: one J2000 target reduced to the
// horizontal frame at the requested site and time.
func (h *Handler) GetPosition(c *gin.Context) {
	q, ok := h.parseCommon(c)
	if !ok {
		return
	}
	target, name, ok := h.parseTarget(c)
	if !ok {
		return
	}

	jd := q.ts.JulianDate()
	hd := astro.ToHorizontalJ2000(target, jd, astro.JulianEpoch(jd),
		degToRad(q.info.Latitude), degToRad(q.info.Longitude))

	c.JSON(http.StatusOK, gin.H{
		"site":    q.info.ID,
		"year":    q.ts.Year,
		"day":     q.ts.DayOfYear,
		"hour":    q.ts.HourUTC,
		"star":    name,
		"az_deg":  hd.AzDeg(),
		"alt_deg": hd.AltDeg(),
	})
}

// skyStar is the wire form of one reprojected star.
type skyStar struct {
	Name      string  `json:"name"`
	AzDeg     float64 `json:"az_deg"`
	AltDeg    float64 `json:"alt_deg"`
	Mag       float64 `json:"mag"`
	Intensity float64 `json:"intensity"`
}

// skySegment is the wire form of one reprojected constellation segment.
type skySegment struct {
	ID      string  `json:"id"`
	AzDeg1  float64 `json:"az_deg_1"`
	AltDeg1 float64 `json:"alt_deg_1"`
	AzDeg2  float64 `json:"az_deg_2"`
	AltDeg2 float64 `json:"alt_deg_2"`
}

// GetSky handles GET /v1/sky: the whole catalog reprojected at once.
func (h *Handler) GetSky(c *gin.Context) {
	q, ok := h.parseCommon(c)
	if !ok {
		return
	}

	scene := sim.NewScene(q.info, h.cat, q.ts)
	snap := scene.Snapshot()

	stars := make([]skyStar, len(snap.Stars))
	for i, s := range snap.Stars {
		hd := astro.HorizontalFromVector(s.Dir)
		stars[i] = skyStar{
			Name:      s.Name,
			AzDeg:     hd.AzDeg(),
			AltDeg:    hd.AltDeg(),
			Mag:       s.Mag,
			Intensity: s.Intensity,
		}
	}

	segments := make([]skySegment, len(snap.Segments))
	for i, s := range snap.Segments {
		a := astro.HorizontalFromVector(s.A)
		b := astro.HorizontalFromVector(s.B)
		segments[i] = skySegment{
			ID:      s.ID,
			AzDeg1:  a.AzDeg(),
			AltDeg1: a.AltDeg(),
			AzDeg2:  b.AzDeg(),
			AltDeg2: b.AltDeg(),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"site":        q.info.ID,
		"year":        q.ts.Year,
		"day":         q.ts.DayOfYear,
		"hour":        q.ts.HourUTC,
		"sun_az_deg":  snap.Sun.AzDeg(),
		"sun_alt_deg": snap.Sun.AltDeg(),
		"stars":       stars,
		"segments":    segments,
		"alignments":  snap.Alignments,
	})
}

// GetDawn handles GET /v1/dawn: the civil dawn hour for one day.
func (h *Handler) GetDawn(c *gin.Context) {
	q, ok := h.parseCommon(c)
	if !ok {
		return
	}

	hour := astro.CivilDawnHour(q.ts.Year, q.ts.DayOfYear, q.info.Latitude, q.info.Longitude)
	month, day := astro.MonthDayFromDayOfYear(q.ts.Year, q.ts.DayOfYear)

	c.JSON(http.StatusOK, gin.H{
		"site":     q.info.ID,
		"year":     q.ts.Year,
		"day":      q.ts.DayOfYear,
		"month":    month,
		"monthday": day,
		"dawn_utc": hour,
	})
}

// GetTransit handles GET /v1/transit: the day and hour in the requested
// year at which the target crosses the meridian closest to local midnight.
func (h *Handler) GetTransit(c *gin.Context) {
	q, ok := h.parseCommon(c)
	if !ok {
		return
	}
	target, name, ok := h.parseTarget(c)
	if !ok {
		return
	}

	doy, hour := astro.BestTransitTime(target, q.ts.Year, degToRad(q.info.Longitude))

	c.JSON(http.StatusOK, gin.H{
		"site":     q.info.ID,
		"year":     q.ts.Year,
		"star":     name,
		"day":      doy,
		"hour_utc": hour,
	})
}

// GetAlignment handles GET /v1/alignment: the epoch search for one of the
// site's sight-lines.
func (h *Handler) GetAlignment(c *gin.Context) {
	q, ok := h.parseCommon(c)
	if !ok {
		return
	}

	name := c.Query("sight_line")
	if name == "" {
		badRequest(c, "sight_line parameter is required")
		return
	}

	opts := astro.DefaultSearchOptions(q.ts.Year, q.ts.Year-10000, q.ts.Year+10000)
	if s := c.Query("min_year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, "invalid min_year: %v", err)
			return
		}
		opts.MinYear = y
	}
	if s := c.Query("max_year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, "invalid max_year: %v", err)
			return
		}
		opts.MaxYear = y
	}
	if opts.MinYear > opts.MaxYear {
		badRequest(c, "min_year %d exceeds max_year %d", opts.MinYear, opts.MaxYear)
		return
	}

	scene := sim.NewScene(q.info, h.cat, q.ts)
	res, err := scene.SearchAlignment(c.Request.Context(), name, opts)
	if err != nil {
		badRequest(c, "%v", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"site":       q.info.ID,
		"sight_line": name,
		"result":     res,
	})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
