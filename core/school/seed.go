package school

// Seed collections used whenever no persisted state exists for an entity
// type. Persisted state, once written, fully shadows these.

func SeedStudents() []Student {
	return []Student{
		{ID: "s1", Name: "Alice Johnson", FirstName: "Alice", LastName: "Johnson", Grade: "10", Section: "A", RollNumber: "1001", Attendance: 92, Status: StudentActive, Email: "alice@school.com", DOB: "2008-05-15", Gender: "Female", ParentContact: "(555) 123-4567", Address: "123 Maple Drive, Springfield"},
		{ID: "s2", Name: "Bob Smith", FirstName: "Bob", LastName: "Smith", Grade: "10", Section: "A", RollNumber: "1002", Attendance: 85, Status: StudentActive, Email: "bob@school.com", DOB: "2008-08-22", Gender: "Male", ParentContact: "(555) 987-6543", Address: "456 Oak Lane, Springfield"},
		{ID: "s3", Name: "Charlie Brown", FirstName: "Charlie", LastName: "Brown", Grade: "10", Section: "B", RollNumber: "1003", Attendance: 78, Status: StudentInactive, Email: "charlie@school.com", DOB: "2008-02-10", Gender: "Male", ParentContact: "(555) 456-7890", Address: "789 Pine Street, Springfield"},
		{ID: "s4", Name: "Daisy Miller", FirstName: "Daisy", LastName: "Miller", Grade: "11", Section: "A", RollNumber: "1101", Attendance: 95, Status: StudentActive, Email: "daisy@school.com", DOB: "2007-11-30", Gender: "Female", ParentContact: "(555) 222-3333", Address: "321 Elm Road, Springfield"},
		{ID: "s5", Name: "Ethan Hunt", FirstName: "Ethan", LastName: "Hunt", Grade: "11", Section: "C", RollNumber: "1102", Attendance: 88, Status: StudentActive, Email: "ethan@school.com", DOB: "2007-07-04", Gender: "Male", ParentContact: "(555) 444-5555", Address: "654 Birch Blvd, Springfield"},
		{ID: "s6", Name: "Fiona Gallagher", FirstName: "Fiona", LastName: "Gallagher", Grade: "12", Section: "A", RollNumber: "1201", Attendance: 91, Status: StudentActive, Email: "fiona@school.com", DOB: "2006-09-12", Gender: "Female", ParentContact: "(555) 666-7777", Address: "987 Cedar Way, Springfield"},
	}
}

func SeedTeachers() []Teacher {
	return []Teacher{
		{ID: "t1", Name: "Mr. Robert Anderson", Subject: "Mathematics", Email: "anderson@school.com", Phone: "555-0101", Address: "123 Maple St", HireDate: "2020-08-15"},
		{ID: "t2", Name: "Ms. Sarah Davis", Subject: "Physics", Email: "davis@school.com", Phone: "555-0102", Address: "456 Oak Ave", HireDate: "2019-09-01"},
		{ID: "t3", Name: "Mrs. Emily Wilson", Subject: "Literature", Email: "wilson@school.com", Phone: "555-0103", Address: "789 Pine Ln", HireDate: "2021-01-10"},
		{ID: "t4", Name: "Mr. James Moore", Subject: "History", Email: "moore@school.com", Phone: "555-0104", Address: "321 Elm St", HireDate: "2018-11-22"},
		{ID: "t5", Name: "Ms. Jessica Taylor", Subject: "Chemistry", Email: "taylor@school.com", Phone: "555-0105", Address: "654 Birch Rd", HireDate: "2022-03-05"},
	}
}

func SeedClasses() []Class {
	return []Class{
		{ID: "c1", Grade: "10", Section: "A", ClassTeacher: "Mr. Robert Anderson", StudentCount: 32, RoomNumber: "101", Capacity: 40, Subjects: []string{"Mathematics", "Physics", "Literature", "History"}},
		{ID: "c2", Grade: "10", Section: "B", ClassTeacher: "Mr. James Moore", StudentCount: 30, RoomNumber: "102", Capacity: 40, Subjects: []string{"Mathematics", "Literature", "History"}},
		{ID: "c3", Grade: "11", Section: "A", ClassTeacher: "Ms. Sarah Davis", StudentCount: 28, RoomNumber: "201", Capacity: 35, Subjects: []string{"Physics", "Chemistry", "Mathematics"}},
		{ID: "c4", Grade: "12", Section: "A", ClassTeacher: "Mrs. Emily Wilson", StudentCount: 25, RoomNumber: "301", Capacity: 30, Subjects: []string{"Literature", "History", "Physics"}},
	}
}

func SeedSubjects() []Subject {
	return []Subject{
		{ID: "sub1", Name: "Mathematics", Code: "MTH101", TeacherID: "t1", Grade: "10", SessionsPerWeek: 5},
		{ID: "sub2", Name: "Physics", Code: "PHY101", TeacherID: "t2", Grade: "10", SessionsPerWeek: 4},
		{ID: "sub3", Name: "Literature", Code: "ENG101", TeacherID: "t3", Grade: "All", SessionsPerWeek: 4},
		{ID: "sub4", Name: "History", Code: "HIS101", TeacherID: "t4", Grade: "10", SessionsPerWeek: 3},
		{ID: "sub5", Name: "Chemistry", Code: "CHE101", TeacherID: "t5", Grade: "11", SessionsPerWeek: 4},
	}
}

func SeedExams() []Exam {
	return []Exam{
		{ID: "e1", Name: "Mid-Term Mathematics", Subject: "Mathematics", Date: "2024-03-15", StartTime: "09:00 AM", Duration: "2 Hours", Grade: "10", TotalMarks: 100},
		{ID: "e2", Name: "Physics Pop Quiz", Subject: "Physics", Date: "2024-03-18", StartTime: "11:00 AM", Duration: "45 Mins", Grade: "10", TotalMarks: 20},
		{ID: "e3", Name: "Final History Exam", Subject: "History", Date: "2024-04-10", StartTime: "10:00 AM", Duration: "3 Hours", Grade: "10", TotalMarks: 100},
		{ID: "e4", Name: "Chemistry Lab Practical", Subject: "Chemistry", Date: "2024-03-20", StartTime: "01:00 PM", Duration: "1.5 Hours", Grade: "11", TotalMarks: 50},
	}
}

func SeedExamResults() []ExamResult {
	return []ExamResult{
		{ID: "r1", StudentName: "Alice Johnson", Subject: "Mathematics", ExamType: "Mid-Term", Teacher: "Mr. Robert Anderson", Score: 85, Term: "Term 1", Status: ResultPassed},
		{ID: "r2", StudentName: "Bob Smith", Subject: "Physics", ExamType: "Quiz", Teacher: "Ms. Sarah Davis", Score: 42, Term: "Term 1", Status: ResultFailed},
		{ID: "r3", StudentName: "Charlie Brown", Subject: "History", ExamType: "Final", Teacher: "Mr. James Moore", Score: 92, Term: "Term 1", Status: ResultPassed},
		{ID: "r4", StudentName: "Daisy Miller", Subject: "Chemistry", ExamType: "Mid-Term", Teacher: "Ms. Jessica Taylor", Score: 78, Term: "Term 1", Status: ResultPassed},
		{ID: "r5", StudentName: "Ethan Hunt", Subject: "Literature", ExamType: "Quiz", Teacher: "Mrs. Emily Wilson", Score: 88, Term: "Term 1", Status: ResultPassed},
		{ID: "r6", StudentName: "Fiona Gallagher", Subject: "Mathematics", ExamType: "Final", Teacher: "Mr. Robert Anderson", Score: 95, Term: "Term 1", Status: ResultPassed},
		{ID: "r7", StudentName: "Alice Johnson", Subject: "Physics", ExamType: "Project", Teacher: "Ms. Sarah Davis", Score: 65, Term: "Term 1", Status: ResultPassed},
		{ID: "r8", StudentName: "Bob Smith", Subject: "Mathematics", ExamType: "Mid-Term", Teacher: "Mr. Robert Anderson", Score: 55, Term: "Term 1", Status: ResultPassed},
		{ID: "r9", StudentName: "John Student", Subject: "Mathematics", ExamType: "Mid-Term", Teacher: "Mr. Robert Anderson", Score: 76, Term: "Term 1", Status: ResultPassed},
		{ID: "r10", StudentName: "John Student", Subject: "Physics", ExamType: "Quiz", Teacher: "Ms. Sarah Davis", Score: 82, Term: "Term 1", Status: ResultPassed},
		{ID: "r11", StudentName: "John Student", Subject: "History", ExamType: "Final", Teacher: "Mr. James Moore", Score: 65, Term: "Term 1", Status: ResultPassed},
		{ID: "r12", StudentName: "John Student", Subject: "Chemistry", ExamType: "Mid-Term", Teacher: "Ms. Jessica Taylor", Score: 88, Term: "Term 1", Status: ResultPassed},
	}
}

func SeedFees() []Fee {
	return []Fee{
		{ID: "f1", StudentID: "s1", StudentName: "Alice Johnson", Type: "Tuition", Amount: 500, DueDate: "2024-03-01", Status: FeePaid, DatePaid: "2024-02-28"},
		{ID: "f2", StudentID: "s2", StudentName: "Bob Smith", Type: "Tuition", Amount: 500, DueDate: "2024-03-01", Status: FeeOverdue},
		{ID: "f3", StudentID: "s3", StudentName: "Charlie Brown", Type: "Transport", Amount: 150, DueDate: "2024-03-01", Status: FeePending},
		{ID: "f4", StudentID: "s4", StudentName: "Daisy Miller", Type: "Library", Amount: 50, DueDate: "2024-03-10", Status: FeePending},
	}
}

func SeedTimetable() []TimetableItem {
	return []TimetableItem{
		{ID: "tt1", Day: "Monday", Time: "09:00 - 10:00", Subject: "Mathematics", Teacher: "Mr. Anderson", Grade: "10-A", Room: "101"},
		{ID: "tt2", Day: "Monday", Time: "10:00 - 11:00", Subject: "Physics", Teacher: "Ms. Davis", Grade: "10-A", Room: "101"},
		{ID: "tt3", Day: "Monday", Time: "11:15 - 12:15", Subject: "Literature", Teacher: "Mrs. Wilson", Grade: "10-A", Room: "101"},
		{ID: "tt4", Day: "Tuesday", Time: "09:00 - 10:00", Subject: "History", Teacher: "Mr. Moore", Grade: "10-A", Room: "101"},
		{ID: "tt5", Day: "Wednesday", Time: "09:00 - 10:00", Subject: "Chemistry", Teacher: "Ms. Taylor", Grade: "11-A", Room: "201"},
	}
}

func SeedAssignments() []Assignment {
	return []Assignment{
		{ID: "1", Title: "Physics Lab Report", Subject: "Physics", Grade: "10-A", DueDate: "2024-03-25", Status: AssignmentPending, Submissions: 12, Total: 32},
		{ID: "2", Title: "History Essay: WW2", Subject: "History", Grade: "10-A", DueDate: "2024-03-28", Status: AssignmentActive, Submissions: 5, Total: 32},
		{ID: "3", Title: "Math Problem Set 5", Subject: "Mathematics", Grade: "10-B", DueDate: "2024-03-22", Status: AssignmentCompleted, Submissions: 30, Total: 30},
	}
}

func SeedNotifications() []Notification {
	return []Notification{
		{ID: "n1", Title: "New Assignment Posted", Message: "Mr. Anderson added a new Math assignment due March 25th.", Time: "10 mins ago", Read: false, Type: NotifInfo},
		{ID: "n2", Title: "Exam Schedule Released", Message: "The final exam schedule for Grade 10 has been published.", Time: "2 hours ago", Read: false, Type: NotifAlert},
		{ID: "n3", Title: "Fee Payment Reminder", Message: "Tuition fees for Term 2 are due next week.", Time: "1 day ago", Read: true, Type: NotifWarning},
		{ID: "n4", Title: "Attendance Update", Message: "You were marked present for all classes yesterday.", Time: "1 day ago", Read: true, Type: NotifSuccess},
		{ID: "n5", Title: "School Holiday", Message: "School will be closed this Friday for maintenance.", Time: "2 days ago", Read: true, Type: NotifInfo},
	}
}
