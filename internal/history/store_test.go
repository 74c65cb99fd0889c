// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pseudoc/internal/transpile"
	"github.com/pdiddy/pseudoc/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewRun(t *testing.T) {
	job := transpile.Job{Input: "prog.ppc", Output: "prog.py"}

	ok := NewRun(job, transpile.StatusCompiled, nil)
	assert.NotEmpty(t, ok.ID)
	assert.Equal(t, "prog.ppc", ok.Input)
	assert.Equal(t, transpile.StatusCompiled, ok.Status)
	assert.Empty(t, ok.Error)
	assert.False(t, ok.CreatedAt.IsZero())

	failed := NewRun(job, transpile.StatusFailed, errors.New("indentation mismatch"))
	assert.Equal(t, "indentation mismatch", failed.Error)
	assert.NotEqual(t, ok.ID, failed.ID)
}

func TestStore_RecordAndList(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	job := transpile.Job{Input: "a.ppc", Output: "a.py"}
	run := NewRun(job, transpile.StatusCompiled, nil)
	require.NoError(t, s.Record(ctx, run))

	runs, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "a.ppc", runs[0].Input)
	assert.Equal(t, transpile.StatusCompiled, runs[0].Status)
	assert.WithinDuration(t, run.CreatedAt, runs[0].CreatedAt, time.Second)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, input := range []string{"first.ppc", "second.ppc", "third.ppc"} {
		r := NewRun(transpile.Job{Input: input}, transpile.StatusCompiled, nil)
		r.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, s.Record(ctx, r))
	}

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third.ppc", runs[0].Input)
	assert.Equal(t, "second.ppc", runs[1].Input)
}

func TestStore_ListDefaultLimit(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		r := NewRun(transpile.Job{Input: "x.ppc"}, transpile.StatusFailed,
			errors.New("failed to process line 1"))
		require.NoError(t, s.Record(ctx, r))
	}

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, defaultMaxResults)
	assert.Equal(t, "failed to process line 1", runs[0].Error)
}

func TestNewStore_Reopens(t *testing.T) {
	cfg := types.HistoryConfig{Dir: t.TempDir()}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	run := NewRun(transpile.Job{Input: "a.ppc"}, transpile.StatusCompiled, nil)
	require.NoError(t, s.Record(context.Background(), run))
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}
