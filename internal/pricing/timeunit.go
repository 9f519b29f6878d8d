package pricing

import "strings"

// TimeUnit identifies the unit in which a time-to-expiration value is
// expressed. The closed set of units is day, week, and year; anything else is
// rejected by ParseTimeUnit.
type TimeUnit string

const (
	Day  TimeUnit = "day"
	Week TimeUnit = "week"
	Year TimeUnit = "year"
)

// Units per calendar year. These are pure normalization divisors so that a
// duration entered in days or weeks can be expressed in fractional years; no
// calendar-date arithmetic is involved.
const (
	DaysInYear  = 365.0
	WeeksInYear = 52 + 1.0/52
)

// divisors maps each unit to how many of it occur in one year. Read-only for
// the process lifetime.
var divisors = map[TimeUnit]float64{
	Day:  DaysInYear,
	Week: WeeksInYear,
	Year: 1.0,
}

// ParseTimeUnit resolves a selector into a TimeUnit. Both the full names
// ("day", "week", "year") and the single-letter forms ("d", "w", "y") are
// accepted, case-insensitively. An unknown selector returns
// InvalidTimeUnitError.
func ParseTimeUnit(selector string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "d", "day", "days":
		return Day, nil
	case "w", "week", "weeks":
		return Week, nil
	case "y", "year", "years":
		return Year, nil
	}
	return "", InvalidTimeUnitError{Selector: selector}
}

// Divisor returns the unit's units-per-year constant. A TimeUnit obtained via
// ParseTimeUnit always has an entry; a zero or hand-built value does not, and
// yields 0 so that contract validation catches it.
func (u TimeUnit) Divisor() float64 {
	return divisors[u]
}
