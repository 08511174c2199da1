package transformers

import "time"

// optionalTime returns nil for an unset time so it is left out of the response
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
