package astro

import "context"

// SearchOptions bound the alignment search. The zero value is not useful;
// start from DefaultSearchOptions.
type SearchOptions struct {
	StartYear int
	MinYear   int
	MaxYear   int

	// StepYears is the discrete search resolution. The default of 100
	// years is tied to the precession timescale: the error curve has
	// sub-resolution structure that is not the intended target, so a
	// finer or continuous optimizer would chase noise.
	StepYears int

	// ThresholdDeg stops the search early once the error is good enough.
	ThresholdDeg float64

	// MaxIterations caps the descent so the search always terminates.
	MaxIterations int
}

// DefaultSearchOptions returns the standard search configuration over the
// given year range.
func DefaultSearchOptions(startYear, minYear, maxYear int) SearchOptions {
	return SearchOptions{
		StartYear:     startYear,
		MinYear:       minYear,
		MaxYear:       maxYear,
		StepYears:     100,
		ThresholdDeg:  0.5,
		MaxIterations: 5000,
	}
}

// SearchResult reports the best year found, its angular error, and how many
// descent iterations were spent.
type SearchResult struct {
	Year       int     `json:"year"`
	ErrorDeg   float64 `json:"errorDeg"`
	Iterations int     `json:"iterations"`
}

// AlignmentError evaluates the search objective for one candidate year: the
// angle in degrees between a fixed sight-line direction and the target's
// horizontal direction at that year's best transit time.
func AlignmentError(target Target, fixedDir Vec3, year int, latRad, lonRad float64) float64 {
	doy, hour := BestTransitTime(target, year, lonRad)
	month, day := MonthDayFromDayOfYear(year, doy)
	jd := JulianDate(year, month, day, hour, 0, 0)
	hd := ToHorizontalJ2000(target, jd, JulianEpoch(jd), latRad, lonRad)
	return AngularSeparationDeg(fixedDir, hd.Vector())
}

// SearchAlignmentYear walks calendar years in fixed steps to find a local
// minimum of AlignmentError. Each iteration evaluates both neighbors of the
// current year and moves to whichever improves on it, preferring the
// smaller of the two when both do. The search stops at a local minimum at
// this resolution, when the error falls to ThresholdDeg or below, when the
// iteration cap is reached, or when ctx is cancelled; it always reports the
// best value found and never fails.
//
// Years are clamped into [MinYear, MaxYear] at every step.
func SearchAlignmentYear(ctx context.Context, target Target, fixedDir Vec3, latRad, lonRad float64, opts SearchOptions) SearchResult {
	if opts.StepYears <= 0 {
		opts.StepYears = 100
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 5000
	}

	clampYear := func(y int) int {
		if y < opts.MinYear {
			return opts.MinYear
		}
		if y > opts.MaxYear {
			return opts.MaxYear
		}
		return y
	}

	// Each descent step re-visits its predecessor as a neighbor, so a
	// small memo avoids recomputing year-long transit scans.
	cache := make(map[int]float64)
	errAt := func(year int) float64 {
		if e, ok := cache[year]; ok {
			return e
		}
		e := AlignmentError(target, fixedDir, year, latRad, lonRad)
		cache[year] = e
		return e
	}

	year := clampYear(opts.StartYear)
	errCur := errAt(year)
	iters := 0

	for iters < opts.MaxIterations {
		if errCur <= opts.ThresholdDeg || ctx.Err() != nil {
			break
		}
		iters++

		lo := clampYear(year - opts.StepYears)
		hi := clampYear(year + opts.StepYears)

		nextYear, nextErr := year, errCur
		if e := errAt(lo); e < nextErr {
			nextYear, nextErr = lo, e
		}
		if e := errAt(hi); e < nextErr {
			nextYear, nextErr = hi, e
		}

		if nextYear == year {
			break // local minimum at this step size
		}
		year, errCur = nextYear, nextErr
	}

	return SearchResult{Year: year, ErrorDeg: errCur, Iterations: iters}
}
