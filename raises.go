package try

import (
	"errors"
	"fmt"
)

// Raises runs a test that passes only when the body raises an error of kind
// E, directly or anywhere in its wrap chain. Raising means returning a
// non-nil error or panicking with an error value. Every other outcome is a
// failure with a description saying what actually happened.
//
// Raises is a free function because Go methods cannot carry type parameters.
func Raises[E error](r *Runner, sc SourceContext, test Func, args ...any) bool {
	return r.Run(sc, expectRaise(test, func(err error) bool {
		var want E
		return errors.As(err, &want)
	}), args...)
}

// RaisesIs is the sentinel-error form of Raises: the raised error must
// match target per errors.Is.
func (r *Runner) RaisesIs(sc SourceContext, target error, test Func, args ...any) bool {
	return r.Run(sc, expectRaise(test, func(err error) bool {
		return errors.Is(err, target)
	}), args...)
}

// expectRaise wraps test so that an expected raise becomes a pass and every
// other outcome becomes a descriptive failure.
func expectRaise(test Func, matches func(error) bool) Func {
	return func(args ...any) error {
		raised, wasRaise := runForRaise(test, args)
		if !wasRaise {
			return errors.New("Test did not throw!")
		}
		if raised == nil {
			return errors.New("Test raises a wrong non-exception!")
		}
		if matches(raised) {
			return nil
		}
		return fmt.Errorf("Test raises a wrong exception (%T): %s", raised, raised)
	}
}

// runForRaise executes test, reporting whether it raised and the error
// value if the raise carried one. A panic with a non-error value counts as
// a raise with no error.
func runForRaise(test Func, args []any) (raised error, wasRaise bool) {
	defer func() {
		if v := recover(); v != nil {
			wasRaise = true
			raised, _ = v.(error)
		}
	}()
	if err := test(args...); err != nil {
		return err, true
	}
	return nil, false
}
