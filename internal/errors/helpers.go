package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error. Uncoded errors are INTERNAL.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return HasCode(err, CodeInvalidArgument)
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return HasCode(err, CodeFailedPrecondition)
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return HasCode(err, CodeInternal)
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return HasCode(err, CodeUnavailable)
}

// IsResourceExhausted checks if an error is a resource exhausted error
func IsResourceExhausted(err error) bool {
	return HasCode(err, CodeResourceExhausted)
}

// IsDataLoss checks if an error is a data loss error
func IsDataLoss(err error) bool {
	return HasCode(err, CodeDataLoss)
}
