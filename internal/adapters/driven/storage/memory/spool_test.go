package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulware/haulbot/internal/core/domain"
)

func TestSpool_SaveListDelete(t *testing.T) {
	spool := NewSpool()
	ctx := context.Background()

	require.NoError(t, spool.Save(ctx, []string{"Acme", "", "773", "", "", "pump stopped", ""}))
	require.NoError(t, spool.Save(ctx, []string{"Depot", "", "", "", "", "leak", ""}))

	rows, err := spool.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0].Row[0])
	assert.Equal(t, "Depot", rows[1].Row[0])
	assert.NotEmpty(t, rows[0].ID)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)

	require.NoError(t, spool.Delete(ctx, rows[0].ID))

	rows, err = spool.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Depot", rows[0].Row[0])
}

func TestSpool_DeleteMissing(t *testing.T) {
	spool := NewSpool()

	err := spool.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSpool_SaveCopiesRow(t *testing.T) {
	spool := NewSpool()
	ctx := context.Background()

	row := []string{"Acme", "", "", "", "", "", ""}
	require.NoError(t, spool.Save(ctx, row))
	row[0] = "mutated"

	rows, err := spool.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rows[0].Row[0])
}
