package service

// ResponseType enumerates the outcomes a service call can report to a handler
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response, the resource is no longer in a state that allows the change
	Conflict

	// AmountMismatch response, the claimed amount disagrees with the payment attempt
	AmountMismatch

	// AttemptNotFound response, no payment attempt matches the claimed transaction
	AttemptNotFound
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"conflict",
	"amount-mismatch",
	"attempt-not-found",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
