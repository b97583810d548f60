package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/testutil"
)

func TestRecordRepo_SetAndAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "g1_2026-01-20", true))
	require.NoError(t, repo.Set(ctx, "g1_2026-01-21", true))
	require.NoError(t, repo.Set(ctx, "g1_2026-01-21", false))

	got, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalRecords{"g1_2026-01-20": true, "g1_2026-01-21": false}, got)
}

func TestRecordRepo_DeleteByGoal_MatchesPrefixOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, domain.GoalRecords{
		"g1_2026-01-20":  true,
		"g1_2026-01-21":  false,
		"g10_2026-01-20": true,
		"xg1_2026-01-20": true,
	}))

	n, err := repo.DeleteByGoal(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalRecords{"g10_2026-01-20": true, "xg1_2026-01-20": true}, got)
}

func TestRecordRepo_DeleteByGoal_LikeWildcardsAreLiteral(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, domain.GoalRecords{"a%_2026-01-20": true, "ab_2026-01-20": true}))
	n, err := repo.DeleteByGoal(ctx, "a%")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
