package assets

import "errors"

// ErrPending is returned by Result before the load has completed.
var ErrPending = errors.New("asset still loading")

// Future is the handle of an asynchronous load. It resolves on the render
// thread when Loader.Drain applies the completion, so it must only be read
// from that thread.
type Future[T any] struct {
	done  bool
	value T
	err   error
}

// Done reports whether the load has completed and been applied.
func (f *Future[T]) Done() bool {
	return f.done
}

// Result returns the loaded value, or ErrPending while still loading.
func (f *Future[T]) Result() (T, error) {
	if !f.done {
		var zero T
		return zero, ErrPending
	}
	return f.value, f.err
}

// Err returns the load error once done.
func (f *Future[T]) Err() error {
	_, err := f.Result()
	return err
}

func (f *Future[T]) resolve(v T, err error) {
	f.value = v
	f.err = err
	f.done = true
}

// Resolved returns an already completed future.
func Resolved[T any](v T, err error) *Future[T] {
	f := &Future[T]{}
	f.resolve(v, err)
	return f
}

// Pending returns an unresolved future and the function that resolves it.
// The resolver must be called on the render thread.
func Pending[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{}
	return f, f.resolve
}
