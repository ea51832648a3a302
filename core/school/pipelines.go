package school

import "github.com/edumanage/backend/core/entity"

// Per-screen filter pipelines: the searchable fields and discrete filters
// each list view supports.

var StudentPipeline = entity.Pipeline[Student]{
	Searchable: func(s Student) []string { return []string{s.Name, s.Email, s.RollNumber} },
	Fields: map[string]func(Student) string{
		"grade":   func(s Student) string { return s.Grade },
		"section": func(s Student) string { return s.Section },
		"status":  func(s Student) string { return s.Status },
	},
}

var TeacherPipeline = entity.Pipeline[Teacher]{
	Searchable: func(t Teacher) []string { return []string{t.Name, t.Subject, t.Email} },
	Fields: map[string]func(Teacher) string{
		"subject": func(t Teacher) string { return t.Subject },
	},
}

var ClassPipeline = entity.Pipeline[Class]{
	Searchable: func(c Class) []string { return []string{c.Label(), c.ClassTeacher, c.RoomNumber} },
	Fields: map[string]func(Class) string{
		"grade": func(c Class) string { return c.Grade },
	},
}

var SubjectPipeline = entity.Pipeline[Subject]{
	Searchable: func(s Subject) []string { return []string{s.Name, s.Code} },
	Fields: map[string]func(Subject) string{
		"grade": func(s Subject) string { return s.Grade },
	},
}

var ExamPipeline = entity.Pipeline[Exam]{
	Searchable: func(e Exam) []string { return []string{e.Name, e.Subject} },
	Fields: map[string]func(Exam) string{
		"grade":   func(e Exam) string { return e.Grade },
		"subject": func(e Exam) string { return e.Subject },
	},
	Less: func(a, b Exam) bool { return a.Date < b.Date },
}

var ResultPipeline = entity.Pipeline[ExamResult]{
	Searchable: func(r ExamResult) []string { return []string{r.StudentName, r.Subject, r.ExamType} },
	Fields: map[string]func(ExamResult) string{
		"examType": func(r ExamResult) string { return r.ExamType },
		"term":     func(r ExamResult) string { return r.Term },
		"status":   func(r ExamResult) string { return r.Status },
	},
}

var FeePipeline = entity.Pipeline[Fee]{
	Searchable: func(f Fee) []string { return []string{f.StudentName, f.Type} },
	Fields: map[string]func(Fee) string{
		"status": func(f Fee) string { return f.Status },
		"type":   func(f Fee) string { return f.Type },
	},
	Less: func(a, b Fee) bool { return a.DueDate < b.DueDate },
}

var AssignmentPipeline = entity.Pipeline[Assignment]{
	Searchable: func(a Assignment) []string { return []string{a.Title, a.Subject} },
	Fields: map[string]func(Assignment) string{
		"status": func(a Assignment) string { return a.Status },
		"grade":  func(a Assignment) string { return a.Grade },
	},
	Less: func(a, b Assignment) bool { return a.DueDate < b.DueDate },
}
