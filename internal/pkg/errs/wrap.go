package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates an infrastructure error with a message and a stack trace.
// A nil error stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}
