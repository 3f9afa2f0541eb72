// Package astro provides calendar arithmetic, long-term precession, and sky
// geometry for arbitrary epochs, including deep prehistory.
package astro

import "math"

// J2000JD is the Julian Date of the J2000.0 reference epoch.
const J2000JD = 2451545.0

// TimeSpec identifies a moment in the proleptic Gregorian calendar using
// astronomical year numbering: year 0 is 1 BCE, negative years count further
// back. DayOfYear runs 1..365 (366 in leap years) and HourUTC is [0, 24).
type TimeSpec struct {
	Year      int
	DayOfYear int
	HourUTC   float64
}

// MonthDay derives the calendar month and day for the spec's day of year.
func (t TimeSpec) MonthDay() (month, day int) {
	return MonthDayFromDayOfYear(t.Year, t.DayOfYear)
}

// JulianDate converts the spec to a Julian Date.
func (t TimeSpec) JulianDate() float64 {
	month, day := t.MonthDay()
	return JulianDate(t.Year, month, day, t.HourUTC, 0, 0)
}

// JulianEpoch converts the spec to a fractional Julian year.
func (t TimeSpec) JulianEpoch() float64 {
	return JulianEpoch(t.JulianDate())
}

// JulianEpoch converts a Julian Date to a fractional Julian year, the
// parameter the precession model runs on.
func JulianEpoch(jd float64) float64 {
	return 2000.0 + (jd-J2000JD)/365.25
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the proleptic Gregorian leap rule. The rule extends to
// negative astronomical years: -4 is a leap year, -100 is not.
func IsLeapYear(year int) bool {
	return modFloor(year, 4) == 0 && (modFloor(year, 100) != 0 || modFloor(year, 400) == 0)
}

// modFloor returns a non-negative remainder for any sign of a.
func modFloor(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of a month, leap-aware. Month is clamped
// into 1..12.
func DaysInMonth(year, month int) int {
	if month < 1 {
		month = 1
	} else if month > 12 {
		month = 12
	}
	days := monthLengths[month-1]
	if month == 2 && IsLeapYear(year) {
		days = 29
	}
	return days
}

// MonthDayFromDayOfYear converts an ordinal day of year to calendar month
// and day. Out-of-range input is clamped into the year rather than
// rejected; callers feed raw slider values and must never crash.
func MonthDayFromDayOfYear(year, doy int) (month, day int) {
	if doy < 1 {
		doy = 1
	}
	if max := DaysInYear(year); doy > max {
		doy = max
	}

	month = 1
	for doy > DaysInMonth(year, month) {
		doy -= DaysInMonth(year, month)
		month++
	}
	return month, doy
}

// DayOfYearFromMonthDay is the inverse of MonthDayFromDayOfYear. Month and
// day are clamped into their valid ranges.
func DayOfYearFromMonthDay(year, month, day int) int {
	if month < 1 {
		month = 1
	} else if month > 12 {
		month = 12
	}
	if day < 1 {
		day = 1
	} else if max := DaysInMonth(year, month); day > max {
		day = max
	}

	doy := day
	for m := 1; m < month; m++ {
		doy += DaysInMonth(year, m)
	}
	return doy
}

// JulianDate converts a proleptic Gregorian calendar moment to a Julian
// Date using the Meeus algorithm. math.Floor (not integer truncation) keeps
// the formula correct for BCE years under astronomical numbering.
func JulianDate(year, month, day int, hour, minute, second float64) float64 {
	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	dayFrac := (hour + minute/60 + second/3600) / 24

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + b - 1524.5 + dayFrac
}
