package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakatime-tracker/internal/domain"
)

func TestBackfillCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid range", func(t *testing.T) {
		app, mock := setupTestApp()
		mock.backfillResult = &domain.BackfillResult{Successes: 5, TotalDays: 5}
		cmd := NewBackfillCommand(app)

		err := cmd.Execute(ctx, []string{"2024-03-01", "2024-03-05"})
		assert.NoError(t, err)
		require.Len(t, mock.backfillRanges, 1)
		assert.Equal(t, [2]string{"2024-03-01", "2024-03-05"}, mock.backfillRanges[0])
	})

	t.Run("partial failures still succeed", func(t *testing.T) {
		app, mock := setupTestApp()
		mock.backfillResult = &domain.BackfillResult{Successes: 3, TotalDays: 5}
		cmd := NewBackfillCommand(app)

		err := cmd.Execute(ctx, []string{"2024-03-01", "2024-03-05"})
		assert.NoError(t, err)
	})

	t.Run("reversed range is rejected", func(t *testing.T) {
		app, mock := setupTestApp()
		cmd := NewBackfillCommand(app)

		err := cmd.Execute(ctx, []string{"2024-03-05", "2024-03-01"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to backfill historical data")
		assert.Empty(t, mock.backfillRanges)
	})

	t.Run("missing arguments", func(t *testing.T) {
		app, _ := setupTestApp()
		cmd := NewBackfillCommand(app)

		err := cmd.Execute(ctx, []string{"2024-03-01"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "usage: wakatrack backfill")
	})
}
