package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zenith-sms/zenith/internal/config"
)

// newTestStores returns one store per driver, each backed by a temp file.
func newTestStores(t *testing.T) map[string]Store {
	t.Helper()

	dir := t.TempDir()

	sqliteStore, err := NewSQLite(filepath.Join(dir, "kv.db"))
	require.NoError(t, err, "failed to create sqlite store")

	boltStore, err := NewBolt(filepath.Join(dir, "kv.bolt"))
	require.NoError(t, err, "failed to create bolt store")

	stores := map[string]Store{
		"sqlite": sqliteStore,
		"bolt":   boltStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore_PutGet(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Put("schoolStudents", []byte(`[{"id":1}]`))
			require.NoError(t, err)

			got, err := store.Get("schoolStudents")
			require.NoError(t, err)
			require.JSONEq(t, `[{"id":1}]`, string(got))
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get("nonexistent")
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put("appTheme", []byte(`"light"`)))
			require.NoError(t, store.Put("appTheme", []byte(`"dark"`)))

			got, err := store.Get("appTheme")
			require.NoError(t, err)
			require.Equal(t, `"dark"`, string(got))
		})
	}
}

func TestStore_RepeatedIdenticalWrites(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				require.NoError(t, store.Put("academicSessions", []byte(`["2024-25"]`)))
			}
			got, err := store.Get("academicSessions")
			require.NoError(t, err)
			require.Equal(t, `["2024-25"]`, string(got))
		})
	}
}

func TestStore_Keys(t *testing.T) {
	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put("b", []byte("2")))
			require.NoError(t, store.Put("a", []byte("1")))

			keys, err := store.Keys()
			require.NoError(t, err)
			require.ElementsMatch(t, []string{"a", "b"}, keys)
		})
	}
}

func TestStore_ValueSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kv.db")

	store, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("schoolSettings", []byte(`{"schoolName":"Test"}`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("schoolSettings")
	require.NoError(t, err)
	require.JSONEq(t, `{"schoolName":"Test"}`, string(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(config.StorageConfig{Driver: "sqlite", Path: filepath.Join(dir, "a.db")})
	require.NoError(t, err)
	require.IsType(t, &SQLite{}, store)
	store.Close()

	store, err = Open(config.StorageConfig{Driver: "bolt", Path: filepath.Join(dir, "a.bolt")})
	require.NoError(t, err)
	require.IsType(t, &Bolt{}, store)
	store.Close()

	_, err = Open(config.StorageConfig{Driver: "postgres", Path: "x"})
	require.Error(t, err)
}
