package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the computation is still running.
	ErrTimeout = errors.New("async: timeout")

	// ErrNoFutures is returned by WaitAny when called without futures.
	ErrNoFutures = errors.New("async: no futures provided")
)
