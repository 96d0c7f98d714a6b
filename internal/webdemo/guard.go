package webdemo

import (
	"errors"
	"fmt"
)

// ErrHostCall reports a host call that panicked, typically a JS argument of
// the wrong type reaching a numeric conversion.
var ErrHostCall = errors.New("webdemo: host call failed")

// Guard runs fn and turns a panic inside it into an error wrapping
// ErrHostCall. A panic escaping a host callback would stop the runtime, so
// every exported binding goes through Guard.
func Guard(fn func() any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrHostCall, r)
		}
	}()
	return fn(), nil
}
