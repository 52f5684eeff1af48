package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resp "pulseboard/internal/models/response_models"
)

func snapshotAt(t time.Time, fields map[string]any) resp.Snapshot {
	return resp.Snapshot{Date: t, Fields: fields}
}

func TestFileHistoryAppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	repo := NewFileHistoryRepository(path)
	ctx := context.Background()

	first := snapshotAt(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		map[string]any{"youtube": float64(1200), "mrr": float64(250)})
	second := snapshotAt(time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		map[string]any{"youtube": float64(1250)})

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	history, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, first.Date, history[0].Date)
	assert.Equal(t, first.Fields, history[0].Fields)
	assert.Equal(t, second.Date, history[1].Date)
}

func TestFileHistoryMissingFileReadsEmpty(t *testing.T) {
	repo := NewFileHistoryRepository(filepath.Join(t.TempDir(), "nope.json"))

	history, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestFileHistoryCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileHistoryRepository(path)

	history, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

// Appending over a corrupt file starts a fresh history instead of
// failing; the bad content is replaced atomically.
func TestFileHistoryAppendRecoversFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("][garbage"), 0o644))

	repo := NewFileHistoryRepository(path)
	ctx := context.Background()

	snap := snapshotAt(time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
		map[string]any{"current": float64(7)})
	require.NoError(t, repo.Append(ctx, snap))

	history, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, snap.Fields, history[0].Fields)
}

func TestFileHistoryCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.json")
	repo := NewFileHistoryRepository(path)

	snap := snapshotAt(time.Now().UTC().Truncate(time.Second), map[string]any{"x": float64(1)})
	require.NoError(t, repo.Append(context.Background(), snap))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSnapshotWireShapeIsFlat(t *testing.T) {
	snap := snapshotAt(time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC),
		map[string]any{"mrr": float64(250)})

	data, err := snap.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-05-01T08:30:00Z","mrr":250}`, string(data))

	var back resp.Snapshot
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, snap.Date, back.Date)
	assert.Equal(t, snap.Fields, back.Fields)
}
