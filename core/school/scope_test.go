package school

import (
	"testing"

	"github.com/edumanage/backend/core/session"
)

var (
	adminViewer   = Viewer{Role: session.RoleAdmin, Name: "Admin User", Email: "admin@gmail.com"}
	teacherViewer = Viewer{Role: session.RoleTeacher, Name: "Sarah Teacher", Email: "teacher@gmail.com"}
	aliceViewer   = Viewer{Role: session.RoleStudent, Name: "Alice Johnson", Email: "alice@school.com"}
	daisyViewer   = Viewer{Role: session.RoleStudent, Name: "Daisy Miller", Email: "daisy@school.com"}
	johnViewer    = Viewer{Role: session.RoleStudent, Name: "John Student", Email: "student@gmail.com"}
)

func TestScopeStudents(t *testing.T) {
	students := SeedStudents()

	if got := ScopeStudents(adminViewer, students); len(got) != len(students) {
		t.Errorf("admin sees %d students, want all %d", len(got), len(students))
	}
	if got := ScopeStudents(teacherViewer, students); len(got) != len(students) {
		t.Errorf("teacher sees %d students, want all %d", len(got), len(students))
	}

	got := ScopeStudents(aliceViewer, students)
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("student sees %+v, want only own record s1", got)
	}
	// a viewer with no roster record sees nothing
	if got = ScopeStudents(johnViewer, students); len(got) != 0 {
		t.Errorf("unmatched student sees %d records, want 0", len(got))
	}
}

func TestScopeStudentsDisjoint(t *testing.T) {
	students := SeedStudents()

	alice := ScopeStudents(aliceViewer, students)
	daisy := ScopeStudents(daisyViewer, students)
	for _, a := range alice {
		for _, d := range daisy {
			if a.ID == d.ID {
				t.Errorf("students share record %q across scopes", a.ID)
			}
		}
	}
}

func TestScopeClasses(t *testing.T) {
	classes := SeedClasses()
	students := SeedStudents()

	// "Sarah Teacher" matches "Ms. Sarah Davis" by name fragment
	got := ScopeClasses(teacherViewer, classes, students)
	if len(got) != 1 || got[0].ID != "c3" {
		t.Errorf("teacher sees %+v, want only c3", got)
	}

	// Alice is 10-A
	got = ScopeClasses(aliceViewer, classes, students)
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("student sees %+v, want only own class c1", got)
	}

	if got = ScopeClasses(adminViewer, classes, students); len(got) != len(classes) {
		t.Errorf("admin sees %d classes, want all", len(got))
	}
}

func TestScopeSubjects(t *testing.T) {
	subjects := SeedSubjects()
	students := SeedStudents()

	// Alice is grade 10: grade-10 subjects plus the grade-All one
	got := ScopeSubjects(aliceViewer, subjects, students)
	want := map[string]bool{"sub1": true, "sub2": true, "sub3": true, "sub4": true}
	if len(got) != len(want) {
		t.Fatalf("student sees %d subjects, want %d", len(got), len(want))
	}
	for _, s := range got {
		if !want[s.ID] {
			t.Errorf("unexpected subject %q in student scope", s.ID)
		}
	}
}

func TestScopeResults(t *testing.T) {
	results := SeedExamResults()

	got := ScopeResults(johnViewer, results, SeedStudents())
	if len(got) != 4 {
		t.Fatalf("student sees %d results, want 4", len(got))
	}
	for _, r := range got {
		if r.StudentName != "John Student" {
			t.Errorf("result %q for %q leaked into scope", r.ID, r.StudentName)
		}
	}

	if got = ScopeResults(teacherViewer, results, SeedStudents()); len(got) != len(results) {
		t.Errorf("teacher sees %d results, want all", len(got))
	}
}

func TestScopeFees(t *testing.T) {
	fees := SeedFees()
	students := SeedStudents()

	got := ScopeFees(aliceViewer, fees, students)
	if len(got) != 1 || got[0].ID != "f1" {
		t.Errorf("student sees %+v, want only own fee f1", got)
	}
}

func TestScopeTimetable(t *testing.T) {
	items := SeedTimetable()
	students := SeedStudents()

	got := ScopeTimetable(aliceViewer, items, students)
	if len(got) != 4 {
		t.Errorf("student sees %d items, want the 4 for 10-A", len(got))
	}
	for _, it := range got {
		if it.Grade != "10-A" {
			t.Errorf("item %q for %q leaked into scope", it.ID, it.Grade)
		}
	}

	// timetable rows abbreviate the teacher to "Ms. Davis", which shares
	// no usable fragment with "Sarah Teacher"
	got = ScopeTimetable(teacherViewer, items, students)
	if len(got) != 0 {
		t.Errorf("teacher sees %d items, want 0 without a name match", len(got))
	}
}

func TestScopeAssignments(t *testing.T) {
	items := SeedAssignments()
	students := SeedStudents()

	got := ScopeAssignments(aliceViewer, items, students)
	if len(got) != 2 {
		t.Errorf("student sees %d assignments, want the 2 for 10-A", len(got))
	}
}
