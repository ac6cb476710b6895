package activity_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zenith-sms/zenith/internal/domain/activity"
	"github.com/zenith-sms/zenith/internal/mirror"
	"github.com/zenith-sms/zenith/internal/storage"
)

func newTestService(t *testing.T) (*activity.Service, storage.Store) {
	t.Helper()
	store, err := storage.NewSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := mirror.New(store, "schoolActivities", []activity.Activity{}, nil)
	return activity.NewService(log, nil), store
}

func TestActivityService_AddAndRecent(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Add("Student Added", "Ahmed Khan enrolled in class VIII."))
	require.NoError(t, svc.Add("Data Export", "Local backup created for Session A."))

	entries := svc.Recent(0)
	require.Len(t, entries, 2)
	require.Equal(t, "Data Export", entries[0].Action)
	require.Equal(t, "Student Added", entries[1].Action)
	require.False(t, entries[0].Timestamp.IsZero())
}

func TestActivityService_CapAtFifty(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 60; i++ {
		require.NoError(t, svc.Add("Action", fmt.Sprintf("entry %d", i)))
	}

	entries := svc.Recent(0)
	require.Len(t, entries, activity.MaxEntries)
	// Most recent first: the last add is at the head, the first ten are gone.
	require.Equal(t, "entry 59", entries[0].Details)
	require.Equal(t, "entry 10", entries[len(entries)-1].Details)
}

func TestActivityService_RecentLimit(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Add("Action", fmt.Sprintf("entry %d", i)))
	}

	require.Len(t, svc.Recent(3), 3)
	require.Len(t, svc.Recent(100), 5)
}

func TestActivityService_Persisted(t *testing.T) {
	svc, store := newTestService(t)

	require.NoError(t, svc.Add("Workspace Switch", "Switched to Session B."))

	reloaded := activity.NewService(mirror.New(store, "schoolActivities", []activity.Activity{}, nil), nil)
	entries := reloaded.Recent(0)
	require.Len(t, entries, 1)
	require.Equal(t, "Workspace Switch", entries[0].Action)
}
