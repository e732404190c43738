package async

import (
	"context"
	"time"
)

// Future holds the result of an asynchronous computation.
type Future[U any] struct {
	value U
	err   error
	done  chan struct{}
}

// Async runs fn(ctx, param) on its own goroutine and returns a Future for
// its result. If ctx is already done when the goroutine starts, fn is not
// called and the future resolves to ctx.Err().
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the computation finishes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout is like Await but gives up after timeout with ErrTimeout.
// The computation keeps running; a later Await still returns its result.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the computation finishes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// WaitAll waits for every future and returns their values in order.
// It returns the first error encountered in argument order, after all
// futures have finished.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	values := make([]U, len(futures))
	var firstErr error
	for i, f := range futures {
		v, err := f.Await()
		values[i] = v
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return values, firstErr
}

// WaitAny returns the index and result of the first future to finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	winner := make(chan int, len(futures))
	for i, f := range futures {
		go func() {
			<-f.done
			winner <- i
		}()
	}

	i := <-winner
	return i, futures[i].value, futures[i].err
}
