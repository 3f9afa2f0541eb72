package astro

import "math"

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the scalar product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the vector product of two vectors.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Mat3 is a 3×3 rotation matrix stored as rows.
type Mat3 [3]Vec3

// MulVec applies the rotation to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0].Dot(v),
		Y: m[1].Dot(v),
		Z: m[2].Dot(v),
	}
}

// Target is a catalog position in the J2000 mean equatorial frame.
type Target struct {
	RARad  float64 // right ascension, [0, 2π)
	DecRad float64 // declination, [-π/2, π/2]
}

// Horizontal is an observer-local direction. Azimuth is measured from North
// toward East in [0, 2π); altitude is [-π/2, π/2].
type Horizontal struct {
	AzRad  float64
	AltRad float64
}

// AzDeg returns the azimuth in degrees.
func (h Horizontal) AzDeg() float64 { return radToDeg(h.AzRad) }

// AltDeg returns the altitude in degrees.
func (h Horizontal) AltDeg() float64 { return radToDeg(h.AltRad) }

// Vector returns the direction as a unit vector in the observer's
// East/North/Up frame: x east, y north, z up.
func (h Horizontal) Vector() Vec3 {
	cosAlt := math.Cos(h.AltRad)
	return Vec3{
		X: cosAlt * math.Sin(h.AzRad),
		Y: cosAlt * math.Cos(h.AzRad),
		Z: math.Sin(h.AltRad),
	}
}

// HorizontalFromDegrees builds a Horizontal from degree inputs, normalizing
// azimuth into [0, 2π). Fixed architectural sight-lines are specified this
// way and converted once.
func HorizontalFromDegrees(azDeg, altDeg float64) Horizontal {
	return Horizontal{
		AzRad:  normalizeAngle(degToRad(azDeg)),
		AltRad: degToRad(altDeg),
	}
}

// HorizontalFromVector recovers azimuth and altitude from an East/North/Up
// vector of any magnitude.
func HorizontalFromVector(v Vec3) Horizontal {
	u := v.Normalized()
	return Horizontal{
		AzRad:  normalizeAngle(math.Atan2(u.X, u.Y)),
		AltRad: math.Asin(clamp1(u.Z)),
	}
}

// UnitFromRADec converts equatorial spherical coordinates to a unit vector.
func UnitFromRADec(raRad, decRad float64) Vec3 {
	cosDec := math.Cos(decRad)
	return Vec3{
		X: cosDec * math.Cos(raRad),
		Y: cosDec * math.Sin(raRad),
		Z: math.Sin(decRad),
	}
}

// RADecFromUnit converts a unit vector back to equatorial spherical
// coordinates, RA normalized into [0, 2π).
func RADecFromUnit(v Vec3) (raRad, decRad float64) {
	raRad = normalizeAngle(math.Atan2(v.Y, v.X))
	decRad = math.Asin(clamp1(v.Z / math.Max(v.Norm(), 1e-15)))
	return raRad, decRad
}

// cosFloor keeps the azimuth denominator away from zero near the zenith
// and the poles; degenerate geometry clamps instead of failing.
const cosFloor = 1e-9

// ToHorizontal converts an equatorial position of date to horizontal
// coordinates for an observer at the given latitude and east-positive
// longitude (both radians).
func ToHorizontal(raRad, decRad, jd, latRad, lonRad float64) Horizontal {
	lst := LocalSiderealRadians(jd, lonRad)
	ha := lst - raRad

	sinLat, cosLat := math.Sincos(latRad)
	sinDec, cosDec := math.Sincos(decRad)

	sinAlt := clamp1(sinDec*sinLat + cosDec*cosLat*math.Cos(ha))
	alt := math.Asin(sinAlt)

	denom := math.Cos(alt) * cosLat
	if denom < cosFloor {
		denom = cosFloor
	}
	cosAz := clamp1((sinDec - sinAlt*sinLat) / denom)

	az := math.Acos(cosAz)
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return Horizontal{AzRad: normalizeAngle(az), AltRad: alt}
}

// ToHorizontalPrecessed maps a J2000 catalog position through a precomputed
// precession matrix and on to horizontal coordinates. Bulk reprojection
// builds the matrix once per epoch and calls this per entry.
func ToHorizontalPrecessed(t Target, pm Mat3, jd, latRad, lonRad float64) Horizontal {
	v := pm.MulVec(UnitFromRADec(t.RARad, t.DecRad))
	ra, dec := RADecFromUnit(v)
	return ToHorizontal(ra, dec, jd, latRad, lonRad)
}

// ToHorizontalJ2000 is the single-query form of ToHorizontalPrecessed: it
// computes the precession matrix for the given epoch itself.
func ToHorizontalJ2000(t Target, jd, epj, latRad, lonRad float64) Horizontal {
	return ToHorizontalPrecessed(t, PrecessionMatrix(epj), jd, latRad, lonRad)
}

// AngularSeparationDeg returns the angle between two directions in degrees.
func AngularSeparationDeg(a, b Vec3) float64 {
	return radToDeg(math.Acos(clamp1(a.Normalized().Dot(b.Normalized()))))
}

// clamp1 clamps to [-1, 1] so asin/acos survive floating point error.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
