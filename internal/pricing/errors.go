package pricing

import "fmt"

// InvalidTimeUnitError reports a time-unit selector outside the closed set
// {day, week, year}.
type InvalidTimeUnitError struct {
	Selector string
}

func (e InvalidTimeUnitError) Error() string {
	return fmt.Sprintf("invalid time unit %q: must be one of day, week, year", e.Selector)
}

// InvalidParameterError reports a contract parameter that violates its domain
// constraint. Construction is atomic: the first violating field aborts it and
// no contract is created.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
