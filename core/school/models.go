// Package school holds the domain entities, their seed data, role scoping
// and the operations behind every screen of the app.
package school

// Entity status enumerations. Stored as plain strings so persisted JSON
// stays readable.
const (
	StudentActive   = "Active"
	StudentInactive = "Inactive"

	FeePaid    = "Paid"
	FeePending = "Pending"
	FeeOverdue = "Overdue"

	ResultPassed = "Passed"
	ResultFailed = "Failed"

	AssignmentPending   = "Pending"
	AssignmentActive    = "Active"
	AssignmentCompleted = "Completed"

	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"

	// NoGrade marks a subject or exam open to every grade.
	NoGrade = "All"

	NotifInfo    = "info"
	NotifWarning = "warning"
	NotifSuccess = "success"
	NotifAlert   = "alert"
)

type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Grade         string `json:"grade"`
	Section       string `json:"section"`
	RollNumber    string `json:"rollNumber"`
	Attendance    int    `json:"attendance"` // percentage
	Status        string `json:"status"`
	Email         string `json:"email"`
	DOB           string `json:"dob,omitempty"`
	Gender        string `json:"gender,omitempty"`
	ParentContact string `json:"parentContact,omitempty"`
	Address       string `json:"address,omitempty"`
}

func (s Student) EntityID() string       { return s.ID }
func (s *Student) SetEntityID(id string) { s.ID = id }

// ClassLabel is the "grade-section" form used by timetable and
// assignment records.
func (s Student) ClassLabel() string { return s.Grade + "-" + s.Section }

type Teacher struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	HireDate string `json:"hireDate,omitempty"`
}

func (t Teacher) EntityID() string       { return t.ID }
func (t *Teacher) SetEntityID(id string) { t.ID = id }

type Class struct {
	ID           string   `json:"id"`
	Grade        string   `json:"grade"`
	Section      string   `json:"section"`
	ClassTeacher string   `json:"classTeacher"` // teacher name, not a foreign key
	StudentCount int      `json:"studentCount"`
	RoomNumber   string   `json:"roomNumber"`
	Capacity     int      `json:"capacity,omitempty"`
	Subjects     []string `json:"subjects,omitempty"`
}

func (c Class) EntityID() string       { return c.ID }
func (c *Class) SetEntityID(id string) { c.ID = id }

func (c Class) Label() string { return c.Grade + "-" + c.Section }

type Subject struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	TeacherID       string `json:"teacherId"`
	Grade           string `json:"grade"`
	SessionsPerWeek int    `json:"sessionsPerWeek"`
}

func (s Subject) EntityID() string       { return s.ID }
func (s *Subject) SetEntityID(id string) { s.ID = id }

// Exam is a scheduled examination.
type Exam struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	Duration   string `json:"duration"`
	Grade      string `json:"grade"`
	TotalMarks int    `json:"totalMarks"`
}

func (e Exam) EntityID() string       { return e.ID }
func (e *Exam) SetEntityID(id string) { e.ID = id }

// ExamResult is a graded exam entry for one student.
type ExamResult struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Subject     string `json:"subject"`
	ExamType    string `json:"examType"`
	Teacher     string `json:"teacher"`
	Score       int    `json:"score"`
	Term        string `json:"term"`
	Status      string `json:"status"`
}

func (r ExamResult) EntityID() string       { return r.ID }
func (r *ExamResult) SetEntityID(id string) { r.ID = id }

// LetterGrade maps a score to the A-F scale shown on result screens.
func (r ExamResult) LetterGrade() string {
	switch {
	case r.Score >= 90:
		return "A"
	case r.Score >= 80:
		return "B"
	case r.Score >= 70:
		return "C"
	case r.Score >= 60:
		return "D"
	}
	return "F"
}

type Fee struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Type        string  `json:"type"` // Tuition, Transport, Library, Exam, ...
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	DatePaid    string  `json:"datePaid,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (f Fee) EntityID() string       { return f.ID }
func (f *Fee) SetEntityID(id string) { f.ID = id }

type TimetableItem struct {
	ID      string `json:"id"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Grade   string `json:"grade"` // "10-A" class label
	Room    string `json:"room"`
}

func (t TimetableItem) EntityID() string       { return t.ID }
func (t *TimetableItem) SetEntityID(id string) { t.ID = id }

type Assignment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Grade       string `json:"grade"` // class label
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	Submissions int    `json:"submissions"`
	Total       int    `json:"total"`
	Description string `json:"description,omitempty"`
}

func (a Assignment) EntityID() string       { return a.ID }
func (a *Assignment) SetEntityID(id string) { a.ID = id }

type AttendanceRecord struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

func (a AttendanceRecord) EntityID() string       { return a.ID }
func (a *AttendanceRecord) SetEntityID(id string) { a.ID = id }

type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
	Type    string `json:"type"`
}

func (n Notification) EntityID() string       { return n.ID }
func (n *Notification) SetEntityID(id string) { n.ID = id }

type DashboardStats struct {
	TotalStudents  int `json:"totalStudents"`
	TotalTeachers  int `json:"totalTeachers"`
	TotalClasses   int `json:"totalClasses"`
	AttendanceRate int `json:"attendanceRate"`
}
