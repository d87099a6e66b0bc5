package audit

import "context"

// Worker consumes entries from a channel and persists them through a single
// goroutine, so concurrent emitters never interleave appends and the
// ledger's chronological ordering holds.
type Worker struct {
	store Store
	inbox <-chan Entry
}

func NewWorker(store Store, inbox <-chan Entry) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry, open := <-w.inbox:
			if !open {
				return nil
			}
			if err := w.store.Append(ctx, entry); err != nil {
				return err
			}
		}
	}
}
