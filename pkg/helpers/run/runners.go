package run

import "fmt"

//WithError runs fn and turns a panic inside it into the returned error.
func WithError(fn func() error) (err error) {
	defer recoverInto(&err)
	return fn()
}

//AsyncWithError runs fn in a new goroutine; the channel receives exactly one value: its error or panic.
func AsyncWithError(fn func() error) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- WithError(fn)
	}()
	return errCh
}

func recoverInto(err *error) {
	if p := recover(); p != nil {
		if perr, ok := p.(error); ok {
			*err = perr
		} else {
			*err = fmt.Errorf("panic: %v", p)
		}
	}
}
