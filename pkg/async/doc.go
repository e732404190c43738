// Package async provides generic futures for running a function on its own
// goroutine and collecting the result later.
//
// # Usage
//
//	future := async.Async(ctx, "123.123.123-87", func(ctx context.Context, v string) (bool, error) {
//		return document.IsCPF(v), nil
//	})
//
//	// Do other work...
//
//	ok, err := future.Await()
//
// With a timeout:
//
//	ok, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		// still running
//	}
//
// # Coordination
//
// WaitAll collects every result in order; WaitAny returns the first one to
// finish:
//
//	values, err := async.WaitAll(f1, f2, f3)
//	index, value, err := async.WaitAny(f1, f2, f3)
//
// # Context
//
// A context that is already cancelled when the goroutine starts resolves the
// future to ctx.Err() without calling the function. Cancellation after that
// point is up to the function itself.
package async
