package errs

import "errors"

// expecter is implemented by typed errors which are caused by user input and
// don't indicate a failure of the application.
type expecter interface {
	Expected() bool
}

// IsExpected checks if the given error, or any error it wraps, reports itself as expected.
func IsExpected(err error) bool {
	var e expecter
	if errors.As(err, &e) {
		return e.Expected()
	}

	return false
}
