package astro

import "math"

// GMSTRadians returns Greenwich Mean Sidereal Time for a Julian Date,
// reduced to [0, 2π). Uses the IAU 1982 polynomial:
//
//	GMST = 280.46061837 + 360.98564736629*(JD-2451545) + 0.000387933*T² - T³/38710000
//
// Visualization-grade accuracy; not sub-second precise.
func GMSTRadians(jd float64) float64 {
	d := jd - J2000JD
	T := d / 36525.0

	deg := 280.46061837 +
		360.98564736629*d +
		0.000387933*T*T -
		T*T*T/38710000.0

	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg * math.Pi / 180
}

// LocalSiderealRadians returns local sidereal time for an east-positive
// longitude in radians, reduced to [0, 2π).
func LocalSiderealRadians(jd, lonRad float64) float64 {
	return normalizeAngle(GMSTRadians(jd) + lonRad)
}

// normalizeAngle reduces an angle to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// shortestAngle reduces an angle difference to [0, π] by wraparound.
func shortestAngle(a float64) float64 {
	a = math.Mod(math.Abs(a), 2*math.Pi)
	if a > math.Pi {
		a = 2*math.Pi - a
	}
	return a
}
