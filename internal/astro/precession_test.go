package astro

import (
	"math"
	"testing"
)

// Epochs spanning the model's multi-millennial validity window.
var testEpochs = []float64{-20000, -10000, -2500, -500, 0, 1000, 2000, 2000.5, 2100, 10000, 20000}

func TestPrecessionMatrixOrthonormal(t *testing.T) {
	const tol = 1e-9

	for _, epj := range testEpochs {
		pm := PrecessionMatrix(epj)

		for i := 0; i < 3; i++ {
			if n := pm[i].Norm(); math.Abs(n-1) > tol {
				t.Errorf("epoch %v: row %d norm = %v, want 1", epj, i, n)
			}
			for j := i + 1; j < 3; j++ {
				if d := pm[i].Dot(pm[j]); math.Abs(d) > tol {
					t.Errorf("epoch %v: rows %d,%d not orthogonal: dot = %v", epj, i, j, d)
				}
			}
		}
	}
}

func TestPrecessionMatrixIdentityAtJ2000(t *testing.T) {
	const tol = 1e-7

	pm := PrecessionMatrix(2000.0)
	identity := Mat3{
		{X: 1}, {Y: 1}, {Z: 1},
	}

	for i := 0; i < 3; i++ {
		if d := pm[i].Sub(identity[i]).Norm(); d > tol {
			t.Errorf("PMAT(2000) row %d = %+v deviates from identity by %v", i, pm[i], d)
		}
	}
}

func TestEclipticPoleAtJ2000(t *testing.T) {
	// At J2000 the ecliptic pole sits at (0, -sin ε, cos ε) for the fixed
	// obliquity constant.
	eps := obliquityJ2000Arcsec * arcsecToRad
	want := Vec3{X: 0, Y: -math.Sin(eps), Z: math.Cos(eps)}

	got := eclipticPole(2000.0)
	if d := got.Sub(want).Norm(); d > 1e-7 {
		t.Errorf("eclipticPole(2000) = %+v, want %+v (diff %v)", got, want, d)
	}

	if n := got.Norm(); math.Abs(n-1) > 1e-9 {
		t.Errorf("eclipticPole(2000) norm = %v, want 1", n)
	}
}

func TestEquatorialPoleDriftsOverMillennia(t *testing.T) {
	// The equatorial pole traces the precession circle: over 4500 years
	// it should move tens of degrees from its J2000 direction.
	now := equatorialPole(2000.0)
	then := equatorialPole(-2500.0)

	sep := AngularSeparationDeg(now, then)
	if sep < 10 || sep > 45 {
		t.Errorf("equatorial pole moved %v° between -2500 and 2000; expected tens of degrees", sep)
	}
}

func TestThubanNearPoleInPyramidAge(t *testing.T) {
	// Thuban (α Draconis) was the pole star around 2800 BCE. Precessing
	// its J2000 position to that epoch should place it within a few
	// degrees of the celestial pole.
	thuban := UnitFromRADec(degToRad(211.097), degToRad(64.376))

	pm := PrecessionMatrix(-2800.0)
	_, dec := RADecFromUnit(pm.MulVec(thuban))

	if decDeg := radToDeg(dec); decDeg < 80 {
		t.Errorf("Thuban declination at epoch -2800 = %v°, want near the pole (> 80°)", decDeg)
	}
}

func TestPrecessionMatrixPreservesLength(t *testing.T) {
	v := UnitFromRADec(degToRad(101.287), degToRad(-16.716))

	for _, epj := range testEpochs {
		w := PrecessionMatrix(epj).MulVec(v)
		if n := w.Norm(); math.Abs(n-1) > 1e-9 {
			t.Errorf("epoch %v: rotated vector norm = %v, want 1", epj, n)
		}
	}
}
