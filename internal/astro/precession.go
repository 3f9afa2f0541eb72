package astro

import "math"

// Long-term precession of the ecliptic and the equator after Vondrák,
// Capitaine & Wallace (2011), A&A 534, A22. Unlike the short-term IAU
// series, this model stays valid for tens of millennia around J2000, which
// is what lets the alignment search walk calendar years in deep prehistory.
//
// The coefficient tables below are the published constants. They are
// evaluated, never derived; do not reformat or "clean up" the literals.

// arcsecToRad converts arcseconds to radians.
const arcsecToRad = math.Pi / (180.0 * 3600.0)

// obliquityJ2000Arcsec is the J2000 mean obliquity used by the model.
const obliquityJ2000Arcsec = 84381.406

// pqPoly holds the polynomial coefficients of the ecliptic-pole parameters
// P (row 0) and Q (row 1), in arcseconds per power of T, where T is
// centuries since J2000.
var pqPoly = [2][4]float64{
	{+5851.607687, -0.1189000, -0.00028913, +0.000000101},
	{-1600.886300, +1.1689818, -0.00000020, -0.000000437},
}

// pqPeriodic holds the periodic terms of the ecliptic-pole series. Each row
// is {period in centuries, P cosine, Q cosine, P sine, Q sine}, amplitudes
// in arcseconds.
var pqPeriodic = [8][5]float64{
	{708.15, -5486.751211, -684.661560, 667.666730, -5523.863691},
	{2309.00, -17.127623, 2446.283880, -2354.886252, -549.747450},
	{1620.00, -617.517403, 399.671049, -428.152441, -310.998056},
	{492.20, 413.442940, -356.652376, 376.202861, 421.535876},
	{1183.00, 78.614193, -186.387003, 184.778874, -36.776172},
	{622.00, -180.732815, -316.800070, 335.321713, -145.278396},
	{882.00, -87.676083, 198.296701, -185.138669, -34.744450},
	{547.00, 46.140315, 101.135679, -120.972830, 22.885731},
}

// xyPoly holds the polynomial coefficients of the equatorial-pole
// components X (row 0) and Y (row 1), in arcseconds per power of T.
var xyPoly = [2][4]float64{
	{+5453.282155, +0.4252841, -0.00037173, -0.000000152},
	{-73750.930350, -0.7675452, -0.00018725, +0.000000231},
}

// xyPeriodic holds the periodic terms of the equatorial-pole series. Each
// row is {period in centuries, X cosine, Y cosine, X sine, Y sine}.
var xyPeriodic = [14][5]float64{
	{256.75, -819.940624, 75004.344875, 81491.287984, 1558.515853},
	{708.15, -8444.676815, 624.033993, 787.163481, 7774.939698},
	{274.20, 2600.009459, 1251.136893, 1251.296102, -2219.534038},
	{241.45, 2755.175630, -1102.212834, -1257.950837, -2523.969396},
	{2309.00, -167.659835, -2660.664980, -2966.799730, 247.850422},
	{492.20, 871.855056, 699.291817, 639.744522, -846.485643},
	{396.10, 44.769698, 153.167220, 131.600209, -1393.124055},
	{288.90, -512.313065, -950.865637, -445.040117, 368.526116},
	{231.10, -819.415595, 499.754645, 584.522874, 749.045012},
	{1610.00, -538.071099, -145.188210, -89.756563, 444.704518},
	{620.00, -189.793622, 558.116553, 524.429630, 235.934465},
	{157.87, -402.922932, -23.923029, -13.549067, 374.049623},
	{220.30, 179.516345, -165.405086, -210.157124, -171.330180},
	{1200.00, -9.814756, 9.344131, -44.919798, -22.899655},
}

// eclipticPole returns the unit vector of the mean ecliptic pole at a
// Julian epoch, expressed in the J2000 equatorial frame.
func eclipticPole(epj float64) Vec3 {
	T := (epj - 2000.0) / 100.0
	w := 2 * math.Pi * T

	var p, q float64
	for _, row := range pqPeriodic {
		s, c := math.Sincos(w / row[0])
		p += c*row[1] + s*row[3]
		q += c*row[2] + s*row[4]
	}

	tp := 1.0
	for i := 0; i < len(pqPoly[0]); i++ {
		p += pqPoly[0][i] * tp
		q += pqPoly[1][i] * tp
		tp *= T
	}

	p *= arcsecToRad
	q *= arcsecToRad
	z := math.Sqrt(math.Max(1-p*p-q*q, 0))

	s, c := math.Sincos(obliquityJ2000Arcsec * arcsecToRad)
	return Vec3{
		X: p,
		Y: -q*c - z*s,
		Z: -q*s + z*c,
	}
}

// equatorialPole returns the unit vector of the mean equatorial pole at a
// Julian epoch, directly in the J2000 frame.
func equatorialPole(epj float64) Vec3 {
	T := (epj - 2000.0) / 100.0
	w := 2 * math.Pi * T

	var x, y float64
	for _, row := range xyPeriodic {
		s, c := math.Sincos(w / row[0])
		x += c*row[1] + s*row[3]
		y += c*row[2] + s*row[4]
	}

	tp := 1.0
	for i := 0; i < len(xyPoly[0]); i++ {
		x += xyPoly[0][i] * tp
		y += xyPoly[1][i] * tp
		tp *= T
	}

	x *= arcsecToRad
	y *= arcsecToRad

	var z float64
	if w := 1 - x*x - y*y; w > 0 {
		z = math.Sqrt(w)
	}
	return Vec3{X: x, Y: y, Z: z}
}

// PrecessionMatrix returns the rotation from the J2000 mean equatorial
// frame to the mean equator and equinox of the given Julian epoch. The rows
// are the equinox direction, its completion to a right-handed triad, and
// the equatorial pole; they form an orthonormal matrix, and at epoch 2000.0
// the result reduces to the identity within numerical tolerance.
//
// Recompute the matrix whenever the epoch changes; it is a pure function of
// epj and is never mutated in place.
func PrecessionMatrix(epj float64) Mat3 {
	peqr := equatorialPole(epj)
	pecl := eclipticPole(epj)

	eqx := peqr.Cross(pecl).Normalized()
	mid := peqr.Cross(eqx)

	return Mat3{eqx, mid, peqr}
}
