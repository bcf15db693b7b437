package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealgate/internal/investor/models"
	investorstore "dealgate/internal/investor/store/investor"
	"dealgate/pkg/platform/sentinel"
)

// Without Redis the decorator must be a transparent pass-through; the
// Redis-backed paths are covered by the integration suite.
func TestNilRedisPassThrough(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := New(investorstore.NewInMemory(), nil)

	inv := &models.Investor{
		ID:        uuid.New(),
		AccountID: "acct-1",
		Status:    models.StatusApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.CreateIfAccountAvailable(ctx, inv))

	got, err := store.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	got, err = store.FindByAccountID(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = store.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	out, err := store.Execute(ctx, inv.ID,
		func(*models.Investor) error { return nil },
		func(cur *models.Investor) { cur.Status = models.StatusUnderReview },
	)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, out.Status)

	list, err := store.List(ctx, models.ListFilter{}, now)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
