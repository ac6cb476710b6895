package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zenith-sms/zenith/internal/domain/school"
	"github.com/zenith-sms/zenith/internal/registry"
	"github.com/zenith-sms/zenith/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRegistry_FirstRunDefaults(t *testing.T) {
	reg := registry.New(newTestStore(t), nil)

	require.Empty(t, reg.Students.Get())
	require.Empty(t, reg.Staff.Get())
	require.Equal(t, school.DefaultGlobalSessions(), reg.Sessions.Get())
	require.Equal(t, school.DefaultSubjects(), reg.Subjects.Get())
	require.Equal(t, school.DefaultStudentHeaders(), reg.StudentHeaders.Get())
	require.Equal(t, school.DefaultStaffHeaders(), reg.StaffHeaders.Get())
	require.Len(t, reg.Modules.Get(), 17)
	require.Equal(t, "light", reg.Theme.Get())
	require.False(t, reg.SidebarCollapsed.Get())
}

func TestRegistry_StableKeys(t *testing.T) {
	// On-disk key names are a compatibility contract with existing data.
	require.Equal(t, "schoolSettings", registry.KeySchoolSettings)
	require.Equal(t, "schoolStudents", registry.KeySchoolStudents)
	require.Equal(t, "academicSessions", registry.KeyAcademicSessions)
	require.Equal(t, "schoolActivities", registry.KeySchoolActivities)
	require.Equal(t, "zenith_workspaces", registry.KeyWorkspaces)
	require.Equal(t, "zenith_current_ws", registry.KeyCurrentWorkspace)
	require.Equal(t, "appTheme", registry.KeyAppTheme)
	require.Equal(t, "sidebarCollapsed", registry.KeySidebarCollapsed)
}

func TestRegistry_FunctionalUpdatePersists(t *testing.T) {
	store := newTestStore(t)
	reg := registry.New(store, nil)

	require.NoError(t, reg.Students.Update(func(prev []school.Student) []school.Student {
		return append(prev, school.Student{ID: 1, Name: "Ahmed Khan", Class: "VIII"})
	}))
	require.NoError(t, reg.Students.Update(func(prev []school.Student) []school.Student {
		return append(prev, school.Student{ID: 2, Name: "Sara Baig", Class: "VI"})
	}))

	// A fresh registry over the same store sees both records.
	reloaded := registry.New(store, nil)
	students := reloaded.Students.Get()
	require.Len(t, students, 2)
	require.Equal(t, "Ahmed Khan", students[0].Name)
	require.Equal(t, "Sara Baig", students[1].Name)
}

func TestRegistry_SettingsScalar(t *testing.T) {
	store := newTestStore(t)
	reg := registry.New(store, nil)

	settings := reg.Settings.Get()
	settings.SchoolName = "City Grammar School"
	settings.OnboardingComplete = true
	require.NoError(t, reg.Settings.Set(settings))

	reloaded := registry.New(store, nil)
	require.Equal(t, "City Grammar School", reloaded.Settings.Get().SchoolName)
	require.True(t, reloaded.Settings.Get().OnboardingComplete)
}
