// Package school defines the entity types stored in the collection registry.
package school

import "time"

// Role gates module visibility in the UI layer. Not enforced by the core.
type Role string

const (
	RoleSuperAdmin  Role = "Super Admin"
	RoleSchoolAdmin Role = "School Admin"
	RoleTeacher     Role = "Teacher"
	RoleStudent     Role = "Student"
)

// StudentStatus tracks whether a pupil is enrolled.
type StudentStatus string

const (
	StatusStudying  StudentStatus = "Studying"
	StatusLeft      StudentStatus = "Left"
	StatusCompleted StudentStatus = "Completed Education"
)

// Settings is the singleton school configuration record.
type Settings struct {
	SchoolName         string `json:"schoolName"`
	LogoURL            string `json:"logoUrl"`
	PrimaryColor       string `json:"primaryColor"`
	ContactDetails     string `json:"contactDetails"`
	OnboardingComplete bool   `json:"onboardingComplete"`
}

// Module describes one console module and which roles may open it.
type Module struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Enabled    bool   `json:"enabled"`
	RoleAccess []Role `json:"roleAccess"`
}

// Student is a registry record. Core fields are fixed; columns imported from
// spreadsheets beyond the core schema live in Extra and are marshalled flat
// into the record object.
type Student struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	RollNo        string        `json:"rollNo"`
	Class         string        `json:"class"`
	FatherName    string        `json:"fatherName"`
	DOB           string        `json:"dob"`
	ParentContact string        `json:"parentContact"`
	ProfilePicURL string        `json:"profilePicUrl"`
	Address       string        `json:"address"`
	BloodGroup    string        `json:"bloodGroup"`
	AdmissionDate string        `json:"admissionDate"`
	Status        StudentStatus `json:"status"`

	Extra map[string]string `json:"-"`
}

// Staff is a registry record; Extra works as on Student.
type Staff struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	EmployeeID    string `json:"employeeId"`
	Role          string `json:"role"`
	Subject       string `json:"subject"`
	Contact       string `json:"contact"`
	PhoneNumber   string `json:"phoneNumber"`
	JoinDate      string `json:"joinDate"`
	ProfilePicURL string `json:"profilePicUrl"`

	Extra map[string]string `json:"-"`
}

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClassFeeConfig struct {
	ClassName string  `json:"className"`
	Amount    float64 `json:"amount"`
}

// AttendanceRecord references students by id only; no foreign-key checks.
type AttendanceRecord struct {
	StudentID int64  `json:"studentId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

type Mark struct {
	StudentID  int64   `json:"studentId"`
	SubjectID  string  `json:"subjectId"`
	Term       string  `json:"term"`
	Year       string  `json:"year"`
	Marks      float64 `json:"marks"`
	TotalMarks float64 `json:"totalMarks"`
}

type FeeRecord struct {
	ID        int64   `json:"id"`
	StudentID int64   `json:"studentId"`
	Amount    float64 `json:"amount"`
	DueDate   string  `json:"dueDate"`
	Status    string  `json:"status"`
}

type Expense struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type OtherFee struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type StudyMaterial struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	Class      string `json:"class"`
	FileURL    string `json:"fileUrl"`
	FileName   string `json:"fileName"`
	MimeType   string `json:"mimeType"`
	UploadDate string `json:"uploadDate"`
}

type TimetableEntry struct {
	ID        int64  `json:"id"`
	Class     string `json:"class"`
	DayOfWeek string `json:"dayOfWeek"`
	Period    int    `json:"period"`
	SubjectID string `json:"subjectId"`
	TeacherID int64  `json:"teacherId"`
}

type Announcement struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Target  string `json:"target"`
	Date    string `json:"date"`
}

type BusRoute struct {
	ID            int64  `json:"id"`
	RouteName     string `json:"routeName"`
	DriverName    string `json:"driverName"`
	DriverContact string `json:"driverContact"`
	VehicleNumber string `json:"vehicleNumber"`
}

type StudentTransport struct {
	StudentID int64  `json:"studentId"`
	RouteID   *int64 `json:"routeId"`
}

type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
}

type BookIssueRecord struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"bookId"`
	StudentID  int64   `json:"studentId"`
	IssueDate  string  `json:"issueDate"`
	DueDate    string  `json:"dueDate"`
	ReturnDate *string `json:"returnDate"`
}

type Alert struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NewRecordID returns a millisecond-timestamp record id, matching the
// convention of existing persisted data. Not collision-free under rapid
// inserts; workspace ids use UUIDs instead.
func NewRecordID() int64 {
	return time.Now().UnixMilli()
}
