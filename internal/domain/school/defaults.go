package school

// DefaultPrimaryColor is the accent color applied to fresh settings.
const DefaultPrimaryColor = "#f97316"

// DefaultSettings is the first-run school configuration, before onboarding.
func DefaultSettings() Settings {
	return Settings{
		PrimaryColor:       DefaultPrimaryColor,
		OnboardingComplete: false,
	}
}

// DefaultSubjects is the fixed subject list seeded into new workspaces.
func DefaultSubjects() []Subject {
	return []Subject{
		{ID: "math", Name: "Mathematics"},
		{ID: "sci", Name: "Science"},
		{ID: "eng", Name: "English"},
		{ID: "hist", Name: "History"},
		{ID: "geo", Name: "Geography"},
	}
}

// DefaultGlobalSessions is the first-run academic session list.
func DefaultGlobalSessions() []string {
	return []string{"2023-24", "2024-25", "2025-26"}
}

// DefaultWorkspaceSessions is the session window seeded into a fresh workspace.
func DefaultWorkspaceSessions() []string {
	return []string{"2024-25"}
}

// DefaultStudentHeaders are the General Register columns.
func DefaultStudentHeaders() []string {
	return []string{
		"General Register No.",
		"Name of Pupil",
		"Father Name",
		"Religion",
		"Date of Birth (In Words)",
		"Date of Birth (Numerical)",
		"Place of Birth",
		"Last School Attended",
		"Date of Admission",
		"Class in Which Admitted",
		"Progress",
		"Conduct",
		"Date of Leaving",
		"Class From Which Left",
		"Remarks",
		"Status",
	}
}

// DefaultStaffHeaders are the staff register columns.
func DefaultStaffHeaders() []string {
	return []string{
		"Personal ID",
		"Name in Full",
		"Date of Birth",
		"CNIC No.",
		"Designation",
		"BPS",
		"Date of Entry in Govt. Service",
		"Date of Posting at Current School",
		"Contact Number",
	}
}

// DefaultModules is the full module catalog with role access.
func DefaultModules() []Module {
	adminOnly := []Role{RoleSchoolAdmin}
	adminAndTeacher := []Role{RoleSchoolAdmin, RoleTeacher}

	return []Module{
		{ID: "dashboard", Name: "Dashboard", Icon: "dashboard", Enabled: true, RoleAccess: adminAndTeacher},
		{ID: "student-management", Name: "Students", Icon: "groups", Enabled: true, RoleAccess: adminOnly},
		{ID: "staff-management", Name: "Staff", Icon: "badge", Enabled: true, RoleAccess: adminOnly},
		{ID: "attendance", Name: "Attendance", Icon: "checklist", Enabled: true, RoleAccess: adminAndTeacher},
		{ID: "announcements", Name: "Announcements", Icon: "campaign", Enabled: true, RoleAccess: adminOnly},
		{ID: "timetable-management", Name: "Timetable", Icon: "grid_view", Enabled: true, RoleAccess: adminAndTeacher},
		{ID: "marks-sheets", Name: "Exams & Marksheets", Icon: "history_edu", Enabled: true, RoleAccess: adminAndTeacher},
		{ID: "study-materials", Name: "Study Materials", Icon: "menu_book", Enabled: true, RoleAccess: adminAndTeacher},
		{ID: "transport-management", Name: "Transport", Icon: "directions_bus", Enabled: true, RoleAccess: adminOnly},
		{ID: "library-management", Name: "Library", Icon: "local_library", Enabled: true, RoleAccess: adminAndTeacher},
		{ID: "fee-management", Name: "Fee Management", Icon: "payments", Enabled: true, RoleAccess: adminOnly},
		{ID: "other-fees", Name: "Other Collections", Icon: "account_balance_wallet", Enabled: true, RoleAccess: adminOnly},
		{ID: "expense-tracker", Name: "Expense Tracker", Icon: "receipt_long", Enabled: true, RoleAccess: adminOnly},
		{ID: "id-card-generator", Name: "ID Cards", Icon: "contact_mail", Enabled: true, RoleAccess: adminOnly},
		{ID: "certificate-generator", Name: "Certificates", Icon: "workspace_premium", Enabled: true, RoleAccess: adminOnly},
		{ID: "data-import", Name: "Data Import", Icon: "upload_file", Enabled: true, RoleAccess: adminOnly},
		{ID: "admin-settings", Name: "Admin Settings", Icon: "settings", Enabled: true, RoleAccess: []Role{RoleSchoolAdmin, RoleSuperAdmin}},
	}
}
