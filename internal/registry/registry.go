// Package registry wires the fixed set of named collections to their durable
// mirrors. Each collection exposes a current-value accessor and setters with
// functional-update semantics; every write persists immediately.
package registry

import (
	"log/slog"

	"github.com/zenith-sms/zenith/internal/domain/activity"
	"github.com/zenith-sms/zenith/internal/domain/school"
	"github.com/zenith-sms/zenith/internal/mirror"
	"github.com/zenith-sms/zenith/internal/storage"
)

// Registry holds one mirror per collection. Workspace data collections are
// bulk-overwritten on a workspace switch; the mirrors below them are
// process-lifetime singletons and are never recreated.
type Registry struct {
	Settings       *mirror.Mirror[school.Settings]
	Subjects       *mirror.Mirror[[]school.Subject]
	Students       *mirror.Mirror[[]school.Student]
	StudentHeaders *mirror.Mirror[[]string]
	Staff          *mirror.Mirror[[]school.Staff]
	StaffHeaders   *mirror.Mirror[[]string]
	ClassFees      *mirror.Mirror[[]school.ClassFeeConfig]
	Sessions       *mirror.Mirror[[]string]
	Marks          *mirror.Mirror[[]school.Mark]
	Fees           *mirror.Mirror[[]school.FeeRecord]
	Expenses       *mirror.Mirror[[]school.Expense]
	OtherFees      *mirror.Mirror[[]school.OtherFee]
	Attendance     *mirror.Mirror[[]school.AttendanceRecord]
	StudyMaterials *mirror.Mirror[[]school.StudyMaterial]
	Timetable      *mirror.Mirror[[]school.TimetableEntry]
	Announcements  *mirror.Mirror[[]school.Announcement]
	BusRoutes      *mirror.Mirror[[]school.BusRoute]
	Transport      *mirror.Mirror[[]school.StudentTransport]
	Books          *mirror.Mirror[[]school.Book]
	BookIssues     *mirror.Mirror[[]school.BookIssueRecord]

	// Global collections, outside workspace snapshots.
	Modules          *mirror.Mirror[[]school.Module]
	Activities       *mirror.Mirror[[]activity.Activity]
	Alerts           *mirror.Mirror[[]school.Alert]
	Theme            *mirror.Mirror[string]
	SidebarCollapsed *mirror.Mirror[bool]
}

// New seeds every collection from the store, falling back to the first-run
// defaults.
func New(store storage.Store, logger *slog.Logger) *Registry {
	return &Registry{
		Settings:       mirror.New(store, KeySchoolSettings, school.DefaultSettings(), logger),
		Subjects:       mirror.New(store, KeySchoolSubjects, school.DefaultSubjects(), logger),
		Students:       mirror.New(store, KeySchoolStudents, []school.Student{}, logger),
		StudentHeaders: mirror.New(store, KeyStudentHeaders, school.DefaultStudentHeaders(), logger),
		Staff:          mirror.New(store, KeySchoolStaff, []school.Staff{}, logger),
		StaffHeaders:   mirror.New(store, KeyStaffHeaders, school.DefaultStaffHeaders(), logger),
		ClassFees:      mirror.New(store, KeyClassFees, []school.ClassFeeConfig{}, logger),
		Sessions:       mirror.New(store, KeyAcademicSessions, school.DefaultGlobalSessions(), logger),
		Marks:          mirror.New(store, KeySchoolMarks, []school.Mark{}, logger),
		Fees:           mirror.New(store, KeySchoolFees, []school.FeeRecord{}, logger),
		Expenses:       mirror.New(store, KeySchoolExpenses, []school.Expense{}, logger),
		OtherFees:      mirror.New(store, KeySchoolOtherFees, []school.OtherFee{}, logger),
		Attendance:     mirror.New(store, KeySchoolAttendance, []school.AttendanceRecord{}, logger),
		StudyMaterials: mirror.New(store, KeyStudyMaterials, []school.StudyMaterial{}, logger),
		Timetable:      mirror.New(store, KeyTimetable, []school.TimetableEntry{}, logger),
		Announcements:  mirror.New(store, KeyAnnouncements, []school.Announcement{}, logger),
		BusRoutes:      mirror.New(store, KeyBusRoutes, []school.BusRoute{}, logger),
		Transport:      mirror.New(store, KeyStudentTransport, []school.StudentTransport{}, logger),
		Books:          mirror.New(store, KeyBooks, []school.Book{}, logger),
		BookIssues:     mirror.New(store, KeyBookIssueRecords, []school.BookIssueRecord{}, logger),

		Modules:          mirror.New(store, KeySchoolModules, school.DefaultModules(), logger),
		Activities:       mirror.New(store, KeySchoolActivities, []activity.Activity{}, logger),
		Alerts:           mirror.New(store, KeySchoolAlerts, []school.Alert{}, logger),
		Theme:            mirror.New(store, KeyAppTheme, "light", logger),
		SidebarCollapsed: mirror.New(store, KeySidebarCollapsed, false, logger),
	}
}
