package dtparse

import (
	"errors"
	"fmt"

	"github.com/nickwells/english.mod/english"
)

var (
	// ErrEmpty is reported when there is no date or time to parse
	ErrEmpty = errors.New("no date or time was given")
	// ErrNoLayout is reported when the date and time do not match any of
	// the recognised forms
	ErrNoLayout = errors.New("the date and time are not in a recognised form")
)

// exampleForms are shown to the user when the date and time are not
// recognised
var exampleForms = []string{
	"2023-10-01 11:20:00 CEST",
	"2023-10-01T11:20:00+02:00",
	"11:20 JST",
	"2023-10-01",
}

// Error is the interface satisfied by errors from this package
type Error interface {
	error

	// DtparseError is a no-op function but it serves to distinguish
	// errors from this package from other errors
	DtparseError()
}

// ParseError records the string that could not be parsed and the reason
type ParseError struct {
	Input string
	Err   error
}

// Error returns the string form of the error with an appropriate prefix
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q: %s", e.Input, e.Err)
	if errors.Is(e.Err, ErrNoLayout) {
		msg += ", try something like '" +
			english.Join(exampleForms, "', '", "' or '") + "'"
	}

	return msg
}

// DtparseError marks this as an error from this package
func (e *ParseError) DtparseError() {}

// Unwrap returns the reason
func (e *ParseError) Unwrap() error {
	return e.Err
}
