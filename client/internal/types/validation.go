package types

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

// ValidatePresent rejects empty required fields.
func ValidatePresent(v, field string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(v, field string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a YYYY-MM-DD date: %w", field, err)
	}
	return t, nil
}

// ValidatePlanRequest checks the local preconditions for a planning
// submission: destination and both dates present, dates well formed,
// start not after end.
func ValidatePlanRequest(req TripRequest) error {
	if err := ValidatePresent(req.Destination, "destination"); err != nil {
		return err
	}
	if err := ValidatePresent(req.StartDate, "start_date"); err != nil {
		return err
	}
	if err := ValidatePresent(req.EndDate, "end_date"); err != nil {
		return err
	}
	start, err := ParseDate(req.StartDate, "start_date")
	if err != nil {
		return err
	}
	end, err := ParseDate(req.EndDate, "end_date")
	if err != nil {
		return err
	}
	if start.After(end) {
		return fmt.Errorf("start_date must not be after end_date")
	}
	return nil
}
