package fs

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letterdesk/letterdesk/pkg/registry"
)

// tempSnapshot copies the testdata snapshot into a scratch dir so tests can
// mutate it freely.
func tempSnapshot(t *testing.T) string {
	t.Helper()

	data, err := ioutil.ReadFile(filepath.Join("testdata", "letters.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	file := filepath.Join(dir, "letters.yaml")
	require.NoError(t, ioutil.WriteFile(file, data, 0644))
	return file
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	loader, err := New(tempSnapshot(t), zerolog.Nop())
	require.NoError(t, err)
	return loader
}

func TestSnapshotSortedNewestFirst(t *testing.T) {
	loader := newTestLoader(t)

	letters, err := loader.Snapshot()
	require.NoError(t, err)
	require.Len(t, letters, 5)

	for i := 1; i < len(letters); i++ {
		assert.False(t, letters[i-1].ReceivedAt.Before(letters[i].ReceivedAt),
			"snapshot not sorted newest first at index %d", i)
	}
}

func TestSnapshotAssignsMissingIDs(t *testing.T) {
	loader := newTestLoader(t)

	letters, err := loader.Snapshot()
	require.NoError(t, err)
	for _, l := range letters {
		assert.NotEmpty(t, l.ID)
	}
}

func TestSnapshotIdentityChangesPerCall(t *testing.T) {
	loader := newTestLoader(t)

	a, err := loader.Snapshot()
	require.NoError(t, err)
	b, err := loader.Snapshot()
	require.NoError(t, err)

	// Fresh slice per call; downstream caches rely on identity.
	assert.NotSame(t, &a[0], &b[0])
}

func TestGet(t *testing.T) {
	loader := newTestLoader(t)

	l, err := loader.Get("ltr-002")
	require.NoError(t, err)
	assert.Equal(t, "Regional budget review invitation", l.Subject)

	_, err = loader.Get("nope")
	assert.ErrorIs(t, err, registry.ErrNoLetterFound)
}

func TestSoftDeleteAndRestore(t *testing.T) {
	loader := newTestLoader(t)

	require.NoError(t, loader.SoftDelete("ltr-001", "ltr-003"))

	active, err := loader.Snapshot()
	require.NoError(t, err)
	assert.Len(t, active, 3)

	trash, err := loader.Trash()
	require.NoError(t, err)
	assert.Len(t, trash, 2)

	// The rewrite survives a cold reload.
	reloaded, err := New(loader.Path(), zerolog.Nop())
	require.NoError(t, err)
	active, err = reloaded.Snapshot()
	require.NoError(t, err)
	assert.Len(t, active, 3)

	require.NoError(t, loader.Restore("ltr-001", "ltr-003"))
	active, err = loader.Snapshot()
	require.NoError(t, err)
	assert.Len(t, active, 5)
}

func TestSoftDeleteUnknownIDFailsWholeBatch(t *testing.T) {
	loader := newTestLoader(t)

	err := loader.SoftDelete("ltr-001", "missing")
	assert.ErrorIs(t, err, registry.ErrNoLetterFound)

	// Nothing was applied.
	active, err := loader.Snapshot()
	require.NoError(t, err)
	assert.Len(t, active, 5)
}

func TestWatchSignalsOnExternalWrite(t *testing.T) {
	loader := newTestLoader(t)

	snapshot, err := ioutil.ReadFile(loader.Path())
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(loader.Path(), snapshot, 0644))

	select {
	case <-loader.Watch():
	case <-time.After(3 * time.Second):
		t.Fatal("no refresh signal after external write")
	}
}
