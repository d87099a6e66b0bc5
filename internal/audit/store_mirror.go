package audit

import "context"

// MirrorStore appends to a primary store synchronously and forwards a copy
// of every entry to an inbox channel, where a Worker persists it to a
// durable secondary store. Reads and Reset hit only the primary; the mirror
// is write-behind and may lag.
type MirrorStore struct {
	primary Store
	inbox   chan<- Entry
}

func NewMirrorStore(primary Store, inbox chan<- Entry) *MirrorStore {
	return &MirrorStore{primary: primary, inbox: inbox}
}

func (s *MirrorStore) Append(ctx context.Context, entry Entry) error {
	if err := s.primary.Append(ctx, entry); err != nil {
		return err
	}
	select {
	case s.inbox <- entry:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (s *MirrorStore) List(ctx context.Context, filter Filter) ([]Entry, error) {
	return s.primary.List(ctx, filter)
}

func (s *MirrorStore) Reset(ctx context.Context) error {
	return s.primary.Reset(ctx)
}
