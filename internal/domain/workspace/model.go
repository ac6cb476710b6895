package workspace

import (
	"time"

	"github.com/zenith-sms/zenith/internal/domain/school"
)

// Workspace is an independent, named snapshot of an entire school dataset.
// While a workspace is active its stored Data and Settings are stale proxies;
// the authoritative values live in the collection registry and are pulled
// back in at export time.
type Workspace struct {
	ID         string          `json:"id" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	CreatedAt  time.Time       `json:"createdAt"`
	LastActive time.Time       `json:"lastActive"`
	Settings   school.Settings `json:"settings"`
	Data       Data            `json:"data"`
}

// Data is the full collection snapshot carried by a workspace. Every key is
// written on export, so a present-but-empty collection stays distinguishable
// from one absent in an older backup file; absent keys are default-filled on
// switch.
type Data struct {
	Students         []school.Student          `json:"students"`
	Staff            []school.Staff            `json:"staff"`
	Fees             []school.FeeRecord        `json:"fees"`
	Expenses         []school.Expense          `json:"expenses"`
	Attendance       []school.AttendanceRecord `json:"attendance"`
	Marks            []school.Mark             `json:"marks"`
	OtherFees        []school.OtherFee         `json:"otherFees"`
	StudyMaterials   []school.StudyMaterial    `json:"studyMaterials"`
	Timetable        []school.TimetableEntry   `json:"timetable"`
	Announcements    []school.Announcement     `json:"announcements"`
	BusRoutes        []school.BusRoute         `json:"busRoutes"`
	StudentTransport []school.StudentTransport `json:"studentTransport"`
	Books            []school.Book             `json:"books"`
	BookIssueRecords []school.BookIssueRecord  `json:"bookIssueRecords"`
	ClassFees        []school.ClassFeeConfig   `json:"classFees"`
	Subjects         []school.Subject          `json:"subjects"`
	Sessions         []string                  `json:"sessions"`
	StudentHeaders   []string                  `json:"studentHeaders"`
	StaffHeaders     []string                  `json:"staffHeaders"`
}
