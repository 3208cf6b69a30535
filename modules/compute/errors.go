package compute

import "errors"

// Sentinel errors for compute operations. All of them describe invalid or
// out-of-bound input and map to HTTP 422 at the API layer.
var (
	// ErrCountOutOfRange is returned when the fibonacci count is negative
	// or exceeds the configured maximum.
	ErrCountOutOfRange = errors.New("count out of range")

	// ErrTooManyElements is returned when an input array exceeds the
	// configured maximum length.
	ErrTooManyElements = errors.New("too many elements")

	// ErrEmptyInput is returned when lcm/hcf receive an empty array.
	ErrEmptyInput = errors.New("empty input")

	// ErrNonPositiveElement is returned when lcm/hcf receive a zero or
	// negative element.
	ErrNonPositiveElement = errors.New("non-positive element")

	// ErrOverflow is returned when an lcm intermediate product exceeds the
	// int64 range.
	ErrOverflow = errors.New("result exceeds integer range")
)

// IsInputError reports whether err is one of the compute input sentinels,
// i.e. the caller supplied an unprocessable value rather than the service
// failing internally.
func IsInputError(err error) bool {
	return errors.Is(err, ErrCountOutOfRange) ||
		errors.Is(err, ErrTooManyElements) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrNonPositiveElement) ||
		errors.Is(err, ErrOverflow)
}
