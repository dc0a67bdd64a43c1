package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	testdb "github.com/mnemonic-nexus/mnx/test/database"
)

// TestListEventsPagination walks a five-event stream with a page size of
// two, following the next_after_global_seq cursor.
func TestListEventsPagination(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	seqs := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		env := newEnvelope(worldID, emo.KindCreated, emoPayload(uuid.NewString(), 1, "page fodder"))
		resp, err := app.events.AppendEvent(ctx, env, "")
		require.NoError(t, err)
		seqs = append(seqs, resp.GlobalSeq)
	}

	var cursor int64
	var collected []int64
	for page := 0; page < 3; page++ {
		resp, err := app.events.ListEvents(ctx, models.EventFilters{
			WorldID:  worldID,
			AfterSeq: cursor,
			Limit:    2,
		})
		require.NoError(t, err)

		for _, item := range resp.Items {
			collected = append(collected, item.ID)
		}
		cursor = resp.NextAfterGlobalSeq

		if page < 2 {
			assert.Len(t, resp.Items, 2)
			assert.True(t, resp.HasMore)
		} else {
			assert.Len(t, resp.Items, 1)
			assert.False(t, resp.HasMore)
		}
	}

	assert.Equal(t, seqs, collected, "pages concatenate to the stream in order")
}

// TestListEventsKindFilter narrows a mixed stream to one kind.
func TestListEventsKindFilter(t *testing.T) {
	client := testdb.NewMigratedClient(t)
	app := newTestApp(t, client)
	ctx := context.Background()

	worldID := uuid.NewString()
	emoID := uuid.NewString()

	created := newEnvelope(worldID, emo.KindCreated, emoPayload(emoID, 1, "v1"))
	_, err := app.events.AppendEvent(ctx, created, "")
	require.NoError(t, err)

	updated := newEnvelope(worldID, emo.KindUpdated, emoPayload(emoID, 2, "v2"))
	_, err = app.events.AppendEvent(ctx, updated, "")
	require.NoError(t, err)

	resp, err := app.events.ListEvents(ctx, models.EventFilters{
		WorldID: worldID,
		Kind:    emo.KindUpdated,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, emo.KindUpdated, resp.Items[0].Kind)
	assert.False(t, resp.HasMore)
}
