package registry

// Persisted storage keys. These are a stable on-disk contract shared with
// data written by earlier releases; renaming any of them breaks backward
// compatibility.
const (
	KeySchoolSettings   = "schoolSettings"
	KeySchoolModules    = "schoolModules"
	KeySchoolSubjects   = "schoolSubjects"
	KeySchoolStudents   = "schoolStudents"
	KeyStudentHeaders   = "studentHeaders"
	KeySchoolStaff      = "schoolStaff"
	KeyStaffHeaders     = "staffHeaders"
	KeyClassFees        = "classFees"
	KeyAcademicSessions = "academicSessions"
	KeySchoolMarks      = "schoolMarks"
	KeySchoolFees       = "schoolFees"
	KeySchoolExpenses   = "schoolExpenses"
	KeySchoolOtherFees  = "schoolOtherFees"
	KeySchoolAttendance = "schoolAttendance"
	KeySchoolActivities = "schoolActivities"
	KeySchoolAlerts     = "schoolAlerts"
	KeyStudyMaterials   = "studyMaterials"
	KeyTimetable        = "timetable"
	KeyAnnouncements    = "announcements"
	KeyBusRoutes        = "busRoutes"
	KeyStudentTransport = "studentTransport"
	KeyBooks            = "books"
	KeyBookIssueRecords = "bookIssueRecords"
	KeyWorkspaces       = "zenith_workspaces"
	KeyCurrentWorkspace = "zenith_current_ws"
	KeyAppTheme         = "appTheme"
	KeySidebarCollapsed = "sidebarCollapsed"
)
