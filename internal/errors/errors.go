// Package errors classifies failures so the command can pick an exit status
// and a hint for the user.
package errors

import "errors"

// Category groups errors that share an exit status.
type Category string

const (
	// CategoryUsage marks bad arguments, detected before any file is touched.
	CategoryUsage Category = "usage"
	// CategoryIOFailure marks a plan that could not be read or an output that
	// could not be written.
	CategoryIOFailure Category = "io_failure"
)

type classifiedError struct {
	category Category
	code     string
	hint     string
	cause    error
}

func (e *classifiedError) Error() string {
	if e.cause == nil {
		return "unknown error"
	}
	return e.cause.Error()
}

func (e *classifiedError) Unwrap() error {
	return e.cause
}

// Wrap attaches a category, a machine-readable code and a user hint to cause.
// A nil cause stays nil.
func Wrap(cause error, category Category, code, hint string) error {
	if cause == nil {
		return nil
	}
	return &classifiedError{
		category: category,
		code:     code,
		hint:     hint,
		cause:    cause,
	}
}

// CategoryOf returns the category of the first classified error in err's chain.
func CategoryOf(err error) Category {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.category
	}
	return ""
}

// CodeOf returns the code of the first classified error in err's chain.
func CodeOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.code
	}
	return ""
}

// HintOf returns the hint of the first classified error in err's chain.
func HintOf(err error) string {
	var classified *classifiedError
	if errors.As(err, &classified) {
		return classified.hint
	}
	return ""
}
