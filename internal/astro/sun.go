package astro

import "math"

// SunPosition calculates low-precision apparent equatorial coordinates of
// the Sun for a Julian Date: mean longitude plus a two-harmonic equation of
// center, with the mean obliquity and its small secular drift. Accurate to
// a fraction of a degree, which is all the dawn solver needs; this is not
// an ephemeris.
func SunPosition(jd float64) (raRad, decRad float64) {
	T := (jd - J2000JD) / 36525.0

	// Mean longitude and mean anomaly of the Sun (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad)

	// True longitude and mean obliquity (degrees)
	lonRad := degToRad(L0 + C)
	epsRad := degToRad(23.439291 - 0.0130042*T)

	raRad = normalizeAngle(math.Atan2(math.Cos(epsRad)*math.Sin(lonRad), math.Cos(lonRad)))
	decRad = math.Asin(clamp1(math.Sin(epsRad) * math.Sin(lonRad)))
	return raRad, decRad
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

const (
	// CivilDawnAltDeg is the solar altitude defining civil dawn.
	CivilDawnAltDeg = -6.0

	dawnScanStepHours = 5.0 / 60.0
	dawnBisectIters   = 28
)

// CivilDawnHour returns the UTC hour in [0, 24) at which the Sun's center
// rises through the civil-dawn altitude of −6° on the given day. The day is
// scanned in 5-minute steps for the first upward crossing, which is then
// refined with 28 bisection iterations for sub-minute precision.
//
// Under polar conditions the crossing may not exist; the scan then falls
// back to the hour of closest approach to the target altitude instead of
// reporting an error.
func CivilDawnHour(year, doy int, latDeg, lonDeg float64) float64 {
	lat := degToRad(latDeg)
	lon := degToRad(lonDeg)
	month, day := MonthDayFromDayOfYear(year, doy)

	altAt := func(hour float64) float64 {
		jd := JulianDate(year, month, day, hour, 0, 0)
		ra, dec := SunPosition(jd)
		return ToHorizontal(ra, dec, jd, lat, lon).AltDeg()
	}

	prev := altAt(0)
	bestHour := 0.0
	bestDiff := math.Abs(prev - CivilDawnAltDeg)

	for h := dawnScanStepHours; h < 24; h += dawnScanStepHours {
		alt := altAt(h)

		if diff := math.Abs(alt - CivilDawnAltDeg); diff < bestDiff {
			bestDiff = diff
			bestHour = h
		}

		// Rising crossing only; the evening crossing is not dawn.
		if prev < CivilDawnAltDeg && alt >= CivilDawnAltDeg {
			lo, hi := h-dawnScanStepHours, h
			for i := 0; i < dawnBisectIters; i++ {
				mid := (lo + hi) / 2
				if altAt(mid) < CivilDawnAltDeg {
					lo = mid
				} else {
					hi = mid
				}
			}
			return (lo + hi) / 2
		}
		prev = alt
	}

	return bestHour
}
