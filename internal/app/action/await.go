package action

import "context"

// awaitOrTimeout races one asynchronous gateway operation against the
// dispatch deadline. Every suspension point in the executors goes
// through here. onAbort runs only when the deadline wins.
func awaitOrTimeout(ctx context.Context, result <-chan error, onAbort func()) error {
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		if onAbort != nil {
			onAbort()
		}
		return ErrTimeout
	}
}
