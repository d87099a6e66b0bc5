package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorStoreForwardsToWorker(t *testing.T) {
	primary := NewInMemoryStore()
	secondary := NewInMemoryStore()
	inbox := make(chan Entry, 8)

	mirror := NewMirrorStore(primary, inbox)
	ctx := context.Background()

	require.NoError(t, mirror.Append(ctx, Entry{EntityID: "app-1", Action: ActionCreate}))
	require.NoError(t, mirror.Append(ctx, Entry{EntityID: "app-1", Action: ActionView}))
	close(inbox)

	worker := NewWorker(secondary, inbox)
	require.NoError(t, worker.Run(ctx))

	fromPrimary, err := primary.List(ctx, Filter{})
	require.NoError(t, err)
	fromSecondary, err := secondary.List(ctx, Filter{})
	require.NoError(t, err)

	require.Len(t, fromPrimary, 2)
	assert.Equal(t, fromPrimary, fromSecondary)
	assert.Equal(t, ActionCreate, fromSecondary[0].Action)
	assert.Equal(t, ActionView, fromSecondary[1].Action)
}

func TestMirrorStoreReadsHitPrimaryOnly(t *testing.T) {
	primary := NewInMemoryStore()
	inbox := make(chan Entry, 1)
	mirror := NewMirrorStore(primary, inbox)
	ctx := context.Background()

	require.NoError(t, mirror.Append(ctx, Entry{EntityID: "app-1", Action: ActionView}))

	entries, err := mirror.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, mirror.Reset(ctx))
	entries, err = mirror.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	inbox := make(chan Entry)
	worker := NewWorker(NewInMemoryStore(), inbox)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, worker.Run(ctx), context.Canceled)
}
