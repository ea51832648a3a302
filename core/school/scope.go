package school

import (
	"strings"

	"github.com/edumanage/backend/core/session"
)

// Viewer is the identity a collection is projected for. Role scoping is
// read-only and recomputed per call; the underlying stores stay the
// single source of truth.
type Viewer struct {
	Role  session.Role
	Name  string
	Email string
}

func NewViewer(usr session.User) Viewer {
	return Viewer{Role: usr.Role, Name: usr.Name, Email: usr.Email}
}

// SelfStudent resolves the viewer's own student record by name or email.
// The linkage is name-based, mirroring the rest of the data model.
func SelfStudent(v Viewer, students []Student) (Student, bool) {
	for _, s := range students {
		if strings.EqualFold(s.Name, v.Name) || strings.EqualFold(s.Email, v.Email) {
			return s, true
		}
	}
	return Student{}, false
}

// teacherNameMatch reports whether a stored teacher-name field refers to
// the viewer. Mock identities ("Sarah Teacher") and roster names
// ("Ms. Sarah Davis") only share name fragments, so matching is by
// token overlap rather than equality.
func teacherNameMatch(field, viewerName string) bool {
	f := strings.ToLower(field)
	for _, tok := range strings.Fields(strings.ToLower(viewerName)) {
		if len(tok) < 3 || tok == "teacher" {
			continue
		}
		if strings.Contains(f, tok) {
			return true
		}
	}
	return false
}

func ScopeStudents(v Viewer, students []Student) []Student {
	switch v.Role {
	case session.RoleStudent:
		if self, ok := SelfStudent(v, students); ok {
			return []Student{self}
		}
		return []Student{}
	default:
		return students
	}
}

func ScopeClasses(v Viewer, classes []Class, students []Student) []Class {
	switch v.Role {
	case session.RoleTeacher:
		out := make([]Class, 0, len(classes))
		for _, c := range classes {
			if teacherNameMatch(c.ClassTeacher, v.Name) {
				out = append(out, c)
			}
		}
		return out
	case session.RoleStudent:
		self, ok := SelfStudent(v, students)
		if !ok {
			return []Class{}
		}
		out := make([]Class, 0, 1)
		for _, c := range classes {
			if c.Grade == self.Grade && c.Section == self.Section {
				out = append(out, c)
			}
		}
		return out
	default:
		return classes
	}
}

func ScopeSubjects(v Viewer, subjects []Subject, students []Student) []Subject {
	if v.Role != session.RoleStudent {
		return subjects
	}
	self, ok := SelfStudent(v, students)
	if !ok {
		return []Subject{}
	}
	out := make([]Subject, 0, len(subjects))
	for _, s := range subjects {
		if s.Grade == self.Grade || s.Grade == NoGrade {
			out = append(out, s)
		}
	}
	return out
}

func ScopeExams(v Viewer, exams []Exam, students []Student) []Exam {
	if v.Role != session.RoleStudent {
		return exams
	}
	self, ok := SelfStudent(v, students)
	if !ok {
		return []Exam{}
	}
	out := make([]Exam, 0, len(exams))
	for _, e := range exams {
		if e.Grade == self.Grade || e.Grade == NoGrade {
			out = append(out, e)
		}
	}
	return out
}

func ScopeResults(v Viewer, results []ExamResult, students []Student) []ExamResult {
	if v.Role != session.RoleStudent {
		return results
	}
	name := v.Name
	if self, ok := SelfStudent(v, students); ok {
		name = self.Name
	}
	out := make([]ExamResult, 0, len(results))
	for _, r := range results {
		if strings.EqualFold(r.StudentName, name) || strings.EqualFold(r.StudentName, v.Name) {
			out = append(out, r)
		}
	}
	return out
}

func ScopeFees(v Viewer, fees []Fee, students []Student) []Fee {
	if v.Role != session.RoleStudent {
		return fees
	}
	name := v.Name
	if self, ok := SelfStudent(v, students); ok {
		name = self.Name
	}
	out := make([]Fee, 0, len(fees))
	for _, f := range fees {
		if strings.EqualFold(f.StudentName, name) || strings.EqualFold(f.StudentName, v.Name) {
			out = append(out, f)
		}
	}
	return out
}

func ScopeTimetable(v Viewer, items []TimetableItem, students []Student) []TimetableItem {
	switch v.Role {
	case session.RoleStudent:
		self, ok := SelfStudent(v, students)
		if !ok {
			return []TimetableItem{}
		}
		out := make([]TimetableItem, 0, len(items))
		for _, it := range items {
			if it.Grade == self.ClassLabel() {
				out = append(out, it)
			}
		}
		return out
	case session.RoleTeacher:
		out := make([]TimetableItem, 0, len(items))
		for _, it := range items {
			if teacherNameMatch(it.Teacher, v.Name) {
				out = append(out, it)
			}
		}
		return out
	default:
		return items
	}
}

func ScopeAssignments(v Viewer, items []Assignment, students []Student) []Assignment {
	if v.Role != session.RoleStudent {
		return items
	}
	self, ok := SelfStudent(v, students)
	if !ok {
		return []Assignment{}
	}
	out := make([]Assignment, 0, len(items))
	for _, it := range items {
		if it.Grade == self.ClassLabel() {
			out = append(out, it)
		}
	}
	return out
}
