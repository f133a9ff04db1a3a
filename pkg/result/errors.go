package result

import "reflect"

// ResultError is the panic value raised by Unwrap and Expect when called on
// a failure. It signals misuse at the call site, not a domain error; the
// combinators never produce it.
type ResultError struct {
	msg string
}

func (e *ResultError) Error() string {
	return e.msg
}

func isNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
