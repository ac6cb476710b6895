// Package workspace groups the collection registry into switchable, portable
// school datasets. The service is the only component that bulk-overwrites
// live collections.
package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/zenith-sms/zenith/internal/domain/activity"
	"github.com/zenith-sms/zenith/internal/domain/school"
	"github.com/zenith-sms/zenith/internal/mirror"
	"github.com/zenith-sms/zenith/internal/registry"
	"github.com/zenith-sms/zenith/internal/storage"
)

// Service handles workspace operations. Operations run under a single-writer
// lock: no partial-switch state is observable to callers.
type Service struct {
	mu         sync.Mutex
	reg        *registry.Registry
	workspaces *mirror.Mirror[[]Workspace]
	current    *mirror.Mirror[string]
	activity   *activity.Service
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a workspace service over the shared store and registry.
func NewService(store storage.Store, reg *registry.Registry, act *activity.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		reg:        reg,
		workspaces: mirror.New(store, registry.KeyWorkspaces, []Workspace{}, logger),
		current:    mirror.New(store, registry.KeyCurrentWorkspace, "", logger),
		activity:   act,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Create registers a new workspace seeded with the default subject list,
// session window and register headers. It becomes active only when no
// workspace was active before; live collections are never overwritten here.
func (s *Service) Create(name string) (*Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	ws := Workspace{
		ID:         "ws_" + uuid.NewString(),
		Name:       name,
		CreatedAt:  now,
		LastActive: now,
		Settings: school.Settings{
			SchoolName:         name,
			PrimaryColor:       school.DefaultPrimaryColor,
			OnboardingComplete: true,
		},
		Data: seedData(),
	}

	if err := s.workspaces.Update(func(prev []Workspace) []Workspace {
		return append(prev, ws)
	}); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	if s.current.Get() == "" {
		if err := s.current.Set(ws.ID); err != nil {
			return nil, fmt.Errorf("activating first workspace: %w", err)
		}
	}

	s.logger.Info("workspace created", "id", ws.ID, "name", name)
	return &ws, nil
}

// Switch makes the target workspace active and replaces every live
// collection with its snapshot. Absent snapshot keys get collection-specific
// defaults so older backups don't break newer renderers.
func (s *Service) Switch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.find(id)
	if !ok {
		return ErrWorkspaceNotFound
	}

	if err := s.current.Set(id); err != nil {
		return fmt.Errorf("switching workspace: %w", err)
	}

	var errs []error
	set := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	d := target.Data
	set(s.reg.Settings.Set(target.Settings))
	set(s.reg.Students.Set(orEmpty(d.Students)))
	set(s.reg.Staff.Set(orEmpty(d.Staff)))
	set(s.reg.Fees.Set(orEmpty(d.Fees)))
	set(s.reg.Expenses.Set(orEmpty(d.Expenses)))
	set(s.reg.Attendance.Set(orEmpty(d.Attendance)))
	set(s.reg.Marks.Set(orEmpty(d.Marks)))
	set(s.reg.OtherFees.Set(orEmpty(d.OtherFees)))
	set(s.reg.StudyMaterials.Set(orEmpty(d.StudyMaterials)))
	set(s.reg.Timetable.Set(orEmpty(d.Timetable)))
	set(s.reg.Announcements.Set(orEmpty(d.Announcements)))
	set(s.reg.BusRoutes.Set(orEmpty(d.BusRoutes)))
	set(s.reg.Transport.Set(orEmpty(d.StudentTransport)))
	set(s.reg.Books.Set(orEmpty(d.Books)))
	set(s.reg.BookIssues.Set(orEmpty(d.BookIssueRecords)))
	set(s.reg.ClassFees.Set(orEmpty(d.ClassFees)))
	set(s.reg.StudentHeaders.Set(orEmpty(d.StudentHeaders)))
	set(s.reg.StaffHeaders.Set(orEmpty(d.StaffHeaders)))

	subjects := d.Subjects
	if subjects == nil {
		subjects = school.DefaultSubjects()
	}
	set(s.reg.Subjects.Set(subjects))

	sessions := d.Sessions
	if sessions == nil {
		sessions = school.DefaultWorkspaceSessions()
	}
	set(s.reg.Sessions.Set(sessions))

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("persisting switched collections: %w", err)
	}

	s.logger.Info("workspace switched", "id", id, "name", target.Name)
	return nil
}

// List returns all known workspaces.
func (s *Service) List() []Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspaces.Get()
}

// Get fetches a workspace by id.
func (s *Service) Get(id string) (*Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.find(id)
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	return &ws, nil
}

// CurrentID returns the active workspace id, or "" before any workspace was
// created.
func (s *Service) CurrentID() string {
	return s.current.Get()
}

func (s *Service) find(id string) (Workspace, bool) {
	for _, ws := range s.workspaces.Get() {
		if ws.ID == id {
			return ws, true
		}
	}
	return Workspace{}, false
}

// upsertLocked replaces any workspace with the same id, then appends.
// Caller holds s.mu.
func (s *Service) upsertLocked(ws Workspace) error {
	return s.workspaces.Update(func(prev []Workspace) []Workspace {
		next := make([]Workspace, 0, len(prev)+1)
		for _, w := range prev {
			if w.ID != ws.ID {
				next = append(next, w)
			}
		}
		return append(next, ws)
	})
}

// seedData is the snapshot a fresh workspace starts from.
func seedData() Data {
	return Data{
		Students:         []school.Student{},
		Staff:            []school.Staff{},
		Fees:             []school.FeeRecord{},
		Expenses:         []school.Expense{},
		Attendance:       []school.AttendanceRecord{},
		Marks:            []school.Mark{},
		OtherFees:        []school.OtherFee{},
		StudyMaterials:   []school.StudyMaterial{},
		Timetable:        []school.TimetableEntry{},
		Announcements:    []school.Announcement{},
		BusRoutes:        []school.BusRoute{},
		StudentTransport: []school.StudentTransport{},
		Books:            []school.Book{},
		BookIssueRecords: []school.BookIssueRecord{},
		ClassFees:        []school.ClassFeeConfig{},
		Subjects:         school.DefaultSubjects(),
		Sessions:         school.DefaultWorkspaceSessions(),
		StudentHeaders:   school.DefaultStudentHeaders(),
		StaffHeaders:     school.DefaultStaffHeaders(),
	}
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
