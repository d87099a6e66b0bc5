package audit

import "context"

// Store is the append-only persistence contract for ledger entries. Several
// read APIs assume chronological ordering, so implementations must preserve
// insertion order. Reset exists for test fixtures only.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context, filter Filter) ([]Entry, error)
	Reset(ctx context.Context) error
}
