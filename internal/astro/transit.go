package astro

import "math"

const (
	// transitTolRad is the sidereal-angle tolerance under which an hour
	// sample counts as a meridian transit.
	transitTolRad = 0.02

	transitHourStep = 0.1

	// transitDaysPerYear is fixed at 365 even in leap years; the search
	// wants a representative transit, not calendar bookkeeping.
	transitDaysPerYear = 365
)

// BestTransitTime scans a year for the local meridian transits of a J2000
// target and returns the day of year and UTC hour of the transit that falls
// closest to local midnight, biasing the result toward night hours when the
// alignment would actually be visible.
//
// The target is precessed once, at a mid-year epoch; day-scale precession
// is far below the search's resolution.
func BestTransitTime(target Target, year int, lonRad float64) (dayOfYear int, hourUTC float64) {
	midJD := JulianDate(year, 7, 1, 0, 0, 0)
	pm := PrecessionMatrix(JulianEpoch(midJD))
	raDate, _ := RADecFromUnit(pm.MulVec(UnitFromRADec(target.RARad, target.DecRad)))

	bestDay := 1
	bestHour := 0.0
	bestDist := math.MaxFloat64

	for doy := 1; doy <= transitDaysPerYear; doy++ {
		month, day := MonthDayFromDayOfYear(year, doy)
		for h := 0.0; h < 24; h += transitHourStep {
			jd := JulianDate(year, month, day, h, 0, 0)
			lst := LocalSiderealRadians(jd, lonRad)

			if shortestAngle(lst-raDate) >= transitTolRad {
				continue
			}
			if dist := math.Min(h, 24-h); dist < bestDist {
				bestDist = dist
				bestDay = doy
				bestHour = h
			}
		}
	}

	return bestDay, bestHour
}
