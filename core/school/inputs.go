package school

import (
	"context"

	"github.com/edumanage/backend/core"
)

// Form input payloads. Required-field and numeric-bound rules live here as
// validate tags; ValidateInput is what form sessions gate commits on.

type NewStudentInput struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Grade         string `json:"grade" validate:"required"`
	Section       string `json:"section" validate:"required"`
	RollNumber    string `json:"rollNumber"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	ParentContact string `json:"parentContact"`
	Address       string `json:"address"`
}

type UpdateStudentInput struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Grade         string `json:"grade" validate:"required"`
	Section       string `json:"section" validate:"required"`
	RollNumber    string `json:"rollNumber"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	DOB           string `json:"dob"`
	Gender        string `json:"gender"`
	ParentContact string `json:"parentContact"`
	Address       string `json:"address"`
}

type TeacherInput struct {
	Name     string `json:"name" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	HireDate string `json:"hireDate"`
}

type ClassInput struct {
	Grade        string   `json:"grade" validate:"required"`
	Section      string   `json:"section" validate:"required"`
	ClassTeacher string   `json:"classTeacher" validate:"required"`
	RoomNumber   string   `json:"roomNumber" validate:"required"`
	Capacity     int      `json:"capacity" validate:"omitempty,gt=0"`
	Subjects     []string `json:"subjects"`
}

type SubjectInput struct {
	Name            string `json:"name" validate:"required"`
	Code            string `json:"code" validate:"required"`
	TeacherID       string `json:"teacherId" validate:"required"`
	Grade           string `json:"grade" validate:"required"`
	SessionsPerWeek int    `json:"sessionsPerWeek" validate:"required,gte=1,lte=20"`
}

type ExamInput struct {
	Name       string `json:"name" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	Date       string `json:"date" validate:"required"`
	StartTime  string `json:"startTime" validate:"required"`
	Duration   string `json:"duration" validate:"required"`
	Grade      string `json:"grade" validate:"required"`
	TotalMarks int    `json:"totalMarks" validate:"required,gt=0"`
}

type ExamResultInput struct {
	StudentName string `json:"studentName" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	ExamType    string `json:"examType" validate:"required"`
	Teacher     string `json:"teacher" validate:"required"`
	Score       *int   `json:"score" validate:"required,gte=0,lte=100"`
	Term        string `json:"term" validate:"required"`
}

type FeeInput struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"dueDate" validate:"required"`
	Description string  `json:"description"`
}

type TimetableInput struct {
	Day     string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	Hour    int    `json:"hour" validate:"required,gte=7,lte=17"`
	Subject string `json:"subject" validate:"required"`
	Teacher string `json:"teacher" validate:"required"`
	ClassID string `json:"classId" validate:"required"`
	Room    string `json:"room" validate:"required"`
}

type AssignmentInput struct {
	Title       string `json:"title" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Grade       string `json:"grade" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=Pending Active Completed"`
	Total       int    `json:"total" validate:"required,gt=0"`
	Description string `json:"description"`
}

type AttendanceSheetInput struct {
	Date      string   `json:"date" validate:"required"`
	ClassID   string   `json:"classId" validate:"required"`
	AbsentIDs []string `json:"absentIds"`
	LateIDs   []string `json:"lateIds"`
}

type NotificationInput struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=info warning success alert"`
}

// ValidateInput runs the struct validation rules and translates failures
// into user-facing field errors.
func ValidateInput(ctx context.Context, in interface{}) error {
	return core.TranslateValidationErrors(core.Validate.StructCtx(ctx, in))
}
