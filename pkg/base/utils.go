package base

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilValue is the panic value used when a present variant is built
	// from a nil payload.
	ErrNilValue = errors.New("nil value passed to constructor of a present variant")

	// ErrPanic marks errors recovered from a panicking function.
	ErrPanic = errors.New("recovered panic")
)

// IsNil reports whether i is nil or a nil value of a nilable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// MustNotNil panics with ErrNilValue when v is nil.
func MustNotNil[T any](v T, variant string) {
	if IsNil(v) {
		panic(fmt.Errorf("%s: %w", variant, ErrNilValue))
	}
}

// Equal compares two values structurally.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Capture calls f and turns a panic into an error. A returned error is
// passed through untouched.
func Capture[T any](f func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = PanicError(r)
		}
	}()

	return f()
}

// PanicError converts a recovered panic value into an error that matches
// ErrPanic.
func PanicError(r any) error {
	if e, ok := r.(error); ok {
		return errors.Join(ErrPanic, e)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}

// GetErrors flattens a joined error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
