package evaluation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAppendAndList(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "results.json"))

	first := Record{Date: "2026-09-01", Time: "10:00:00", Scores: Scores{Coherence: 3.0}}
	second := Record{Date: "2026-09-01", Time: "11:00:00", Scores: Scores{Coherence: 4.5}}

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "11:00:00", records[0].Time)
	assert.Equal(t, "10:00:00", records[1].Time)
}

func TestStoreListEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results.json"))

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).List()
	assert.Error(t, err)
}

func TestStoreDeleteAll(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "results.json"))
	require.NoError(t, store.Append(Record{Date: "2026-09-01"}))

	require.NoError(t, store.DeleteAll())

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	// Deleting an already-empty store is not an error.
	assert.NoError(t, store.DeleteAll())
}
