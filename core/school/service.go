package school

import (
	"context"
	"fmt"
	"math/rand"
	"net/mail"
	"time"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/entity"
	"github.com/edumanage/backend/storage/kv"
)

const dateLayout = "2006-01-02"

// Storage keys, one collection per entity type.
const (
	studentsKey      = "edu_students"
	teachersKey      = "edu_teachers"
	classesKey       = "edu_classes"
	subjectsKey      = "edu_subjects"
	examsKey         = "edu_exams"
	resultsKey       = "edu_exam_results"
	feesKey          = "edu_fees"
	timetableKey     = "edu_timetable"
	assignmentsKey   = "edu_assignments"
	attendanceKey    = "edu_attendance"
	notificationsKey = "edu_notifications"
)

// Service aggregates the entity stores and implements the operations
// behind every screen.
type Service struct {
	clock   entity.Clock
	logger  core.Logger
	mailSvc core.EmailService
	randInt func(n int) int

	Students      *entity.Store[Student, *Student]
	Teachers      *entity.Store[Teacher, *Teacher]
	Classes       *entity.Store[Class, *Class]
	Subjects      *entity.Store[Subject, *Subject]
	Exams         *entity.Store[Exam, *Exam]
	Results       *entity.Store[ExamResult, *ExamResult]
	Fees          *entity.Store[Fee, *Fee]
	Timetable     *entity.Store[TimetableItem, *TimetableItem]
	Assignments   *entity.Store[Assignment, *Assignment]
	Attendance    *entity.Store[AttendanceRecord, *AttendanceRecord]
	Notifications *entity.Store[Notification, *Notification]
}

type Option func(*Service)

func WithClock(now entity.Clock) Option {
	return func(svc *Service) { svc.clock = now }
}

func WithRand(randInt func(n int) int) Option {
	return func(svc *Service) { svc.randInt = randInt }
}

func NewService(db kv.DB, logger core.Logger, mailSvc core.EmailService, opts ...Option) *Service {
	svc := &Service{
		clock:   time.Now,
		logger:  logger,
		mailSvc: mailSvc,
		randInt: rand.Intn,
	}
	for _, opt := range opts {
		opt(svc)
	}

	clk := entity.WithClock(svc.clock)
	svc.Students = entity.NewStore[Student, *Student](db, studentsKey, "s", SeedStudents(), logger, clk)
	svc.Teachers = entity.NewStore[Teacher, *Teacher](db, teachersKey, "t", SeedTeachers(), logger, clk)
	svc.Classes = entity.NewStore[Class, *Class](db, classesKey, "c", SeedClasses(), logger, clk)
	svc.Subjects = entity.NewStore[Subject, *Subject](db, subjectsKey, "sub", SeedSubjects(), logger, clk)
	svc.Exams = entity.NewStore[Exam, *Exam](db, examsKey, "e", SeedExams(), logger, clk)
	svc.Results = entity.NewStore[ExamResult, *ExamResult](db, resultsKey, "ex", SeedExamResults(), logger, clk, entity.Prepend())
	svc.Fees = entity.NewStore[Fee, *Fee](db, feesKey, "f", SeedFees(), logger, clk, entity.Prepend())
	svc.Timetable = entity.NewStore[TimetableItem, *TimetableItem](db, timetableKey, "tt", SeedTimetable(), logger, clk)
	svc.Assignments = entity.NewStore[Assignment, *Assignment](db, assignmentsKey, "a", SeedAssignments(), logger, clk)
	svc.Attendance = entity.NewStore[AttendanceRecord, *AttendanceRecord](db, attendanceKey, "att", nil, logger, clk)
	svc.Notifications = entity.NewStore[Notification, *Notification](db, notificationsKey, "n", SeedNotifications(), logger, clk, entity.Prepend())
	return svc
}

func (svc *Service) today() string { return svc.clock().Format(dateLayout) }

// ResetAll restores every collection to its seed state.
func (svc *Service) ResetAll(ctx context.Context) error {
	resets := []func(context.Context) error{
		svc.Students.Reset, svc.Teachers.Reset, svc.Classes.Reset,
		svc.Subjects.Reset, svc.Exams.Reset, svc.Results.Reset,
		svc.Fees.Reset, svc.Timetable.Reset, svc.Assignments.Reset,
		svc.Attendance.Reset, svc.Notifications.Reset,
	}
	for _, reset := range resets {
		if err := reset(ctx); err != nil {
			return err
		}
	}
	return nil
}

// --- Students ---

func (svc *Service) CreateStudent(ctx context.Context, in NewStudentInput) (Student, error) {
	first := core.CleanString(in.FirstName)
	last := core.CleanString(in.LastName)

	roll := in.RollNumber
	if roll == "" {
		roll = fmt.Sprintf("%d", 1000+svc.randInt(9000))
	}
	return svc.Students.Create(ctx, Student{
		Name:          first + " " + last,
		FirstName:     first,
		LastName:      last,
		Grade:         in.Grade,
		Section:       in.Section,
		RollNumber:    roll,
		Attendance:    0,
		Status:        StudentActive,
		Email:         core.CleanString(in.Email, true),
		DOB:           in.DOB,
		Gender:        in.Gender,
		ParentContact: in.ParentContact,
		Address:       in.Address,
	})
}

func (svc *Service) UpdateStudent(ctx context.Context, id string, in UpdateStudentInput) (Student, error) {
	first := core.CleanString(in.FirstName)
	last := core.CleanString(in.LastName)

	return svc.Students.Update(ctx, id, func(s *Student) {
		s.Name = first + " " + last
		s.FirstName = first
		s.LastName = last
		s.Grade = in.Grade
		s.Section = in.Section
		s.Email = core.CleanString(in.Email, true)
		if in.RollNumber != "" {
			s.RollNumber = in.RollNumber
		}
		if in.Status != "" {
			s.Status = in.Status
		}
		if in.DOB != "" {
			s.DOB = in.DOB
		}
		if in.Gender != "" {
			s.Gender = in.Gender
		}
		if in.ParentContact != "" {
			s.ParentContact = in.ParentContact
		}
		if in.Address != "" {
			s.Address = in.Address
		}
	})
}

// --- Teachers ---

func (svc *Service) CreateTeacher(ctx context.Context, in TeacherInput) (Teacher, error) {
	return svc.Teachers.Create(ctx, Teacher{
		Name:     core.CleanString(in.Name),
		Subject:  in.Subject,
		Email:    core.CleanString(in.Email, true),
		Phone:    in.Phone,
		Address:  in.Address,
		HireDate: in.HireDate,
	})
}

func (svc *Service) UpdateTeacher(ctx context.Context, id string, in TeacherInput) (Teacher, error) {
	return svc.Teachers.Update(ctx, id, func(t *Teacher) {
		t.Name = core.CleanString(in.Name)
		t.Subject = in.Subject
		t.Email = core.CleanString(in.Email, true)
		t.Phone = in.Phone
		if in.Address != "" {
			t.Address = in.Address
		}
		if in.HireDate != "" {
			t.HireDate = in.HireDate
		}
	})
}

// --- Classes ---

func (svc *Service) CreateClass(ctx context.Context, in ClassInput) (Class, error) {
	return svc.Classes.Create(ctx, Class{
		Grade:        in.Grade,
		Section:      in.Section,
		ClassTeacher: in.ClassTeacher,
		StudentCount: 0,
		RoomNumber:   in.RoomNumber,
		Capacity:     in.Capacity,
		Subjects:     in.Subjects,
	})
}

func (svc *Service) UpdateClass(ctx context.Context, id string, in ClassInput) (Class, error) {
	return svc.Classes.Update(ctx, id, func(c *Class) {
		c.Grade = in.Grade
		c.Section = in.Section
		c.ClassTeacher = in.ClassTeacher
		c.RoomNumber = in.RoomNumber
		if in.Capacity > 0 {
			c.Capacity = in.Capacity
		}
		if in.Subjects != nil {
			c.Subjects = in.Subjects
		}
	})
}

// --- Subjects ---

func (svc *Service) CreateSubject(ctx context.Context, in SubjectInput) (Subject, error) {
	return svc.Subjects.Create(ctx, Subject{
		Name:            in.Name,
		Code:            in.Code,
		TeacherID:       in.TeacherID,
		Grade:           in.Grade,
		SessionsPerWeek: in.SessionsPerWeek,
	})
}

func (svc *Service) UpdateSubject(ctx context.Context, id string, in SubjectInput) (Subject, error) {
	return svc.Subjects.Update(ctx, id, func(s *Subject) {
		s.Name = in.Name
		s.Code = in.Code
		s.TeacherID = in.TeacherID
		s.Grade = in.Grade
		s.SessionsPerWeek = in.SessionsPerWeek
	})
}

// --- Exams (schedule) ---

func (svc *Service) CreateExam(ctx context.Context, in ExamInput) (Exam, error) {
	return svc.Exams.Create(ctx, Exam{
		Name:       in.Name,
		Subject:    in.Subject,
		Date:       in.Date,
		StartTime:  in.StartTime,
		Duration:   in.Duration,
		Grade:      in.Grade,
		TotalMarks: in.TotalMarks,
	})
}

func (svc *Service) UpdateExam(ctx context.Context, id string, in ExamInput) (Exam, error) {
	return svc.Exams.Update(ctx, id, func(e *Exam) {
		e.Name = in.Name
		e.Subject = in.Subject
		e.Date = in.Date
		e.StartTime = in.StartTime
		e.Duration = in.Duration
		e.Grade = in.Grade
		e.TotalMarks = in.TotalMarks
	})
}

// --- Exam results ---

func resultStatus(score int) string {
	if score >= 50 {
		return ResultPassed
	}
	return ResultFailed
}

func (svc *Service) CreateResult(ctx context.Context, in ExamResultInput) (ExamResult, error) {
	score := *in.Score
	return svc.Results.Create(ctx, ExamResult{
		StudentName: in.StudentName,
		Subject:     in.Subject,
		ExamType:    in.ExamType,
		Teacher:     in.Teacher,
		Score:       score,
		Term:        in.Term,
		Status:      resultStatus(score),
	})
}

func (svc *Service) UpdateResult(ctx context.Context, id string, in ExamResultInput) (ExamResult, error) {
	score := *in.Score
	return svc.Results.Update(ctx, id, func(r *ExamResult) {
		r.StudentName = in.StudentName
		r.Subject = in.Subject
		r.ExamType = in.ExamType
		r.Teacher = in.Teacher
		r.Score = score
		r.Term = in.Term
		r.Status = resultStatus(score)
	})
}

// --- Fees ---

func (svc *Service) CreateFee(ctx context.Context, in FeeInput) (Fee, error) {
	studentName := "Unknown Student"
	if stu, err := svc.Students.Get(ctx, in.StudentID); err == nil {
		studentName = stu.Name
	}
	return svc.Fees.Create(ctx, Fee{
		StudentID:   in.StudentID,
		StudentName: studentName,
		Type:        in.Type,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		Status:      FeePending,
		Description: in.Description,
	})
}

func (svc *Service) UpdateFee(ctx context.Context, id string, in FeeInput) (Fee, error) {
	studentName := ""
	if stu, err := svc.Students.Get(ctx, in.StudentID); err == nil {
		studentName = stu.Name
	}
	return svc.Fees.Update(ctx, id, func(f *Fee) {
		f.StudentID = in.StudentID
		if studentName != "" {
			f.StudentName = studentName
		}
		f.Type = in.Type
		f.Amount = in.Amount
		f.DueDate = in.DueDate
		f.Description = in.Description
	})
}

// RecordFeePayment marks a fee Paid as of today. All other fields are
// left unchanged.
func (svc *Service) RecordFeePayment(ctx context.Context, id string) (Fee, error) {
	return svc.Fees.Update(ctx, id, func(f *Fee) {
		f.Status = FeePaid
		f.DatePaid = svc.today()
	})
}

// MarkOverdueFees flips Pending fees past their due date to Overdue,
// emails the student a reminder and appends a feed notification. Returns
// the number of fees flipped; already-Overdue fees are left alone, so the
// sweep is idempotent.
func (svc *Service) MarkOverdueFees(ctx context.Context) (int, error) {
	fees, err := svc.Fees.List(ctx)
	if err != nil {
		return 0, err
	}
	today := svc.today()

	var flipped int
	for _, fee := range fees {
		if fee.Status != FeePending || fee.DueDate >= today {
			continue
		}
		if _, err = svc.Fees.Update(ctx, fee.ID, func(f *Fee) { f.Status = FeeOverdue }); err != nil {
			return flipped, err
		}
		flipped++

		svc.sendFeeReminder(ctx, fee)
		if _, err = svc.AddNotification(ctx, NotificationInput{
			Title:   "Fee Overdue",
			Message: fmt.Sprintf("%s fee of $%.0f for %s is overdue since %s.", fee.Type, fee.Amount, fee.StudentName, fee.DueDate),
			Type:    NotifWarning,
		}); err != nil {
			return flipped, err
		}
	}
	return flipped, nil
}

func (svc *Service) sendFeeReminder(ctx context.Context, fee Fee) {
	if svc.mailSvc == nil {
		return
	}
	stu, err := svc.Students.Get(ctx, fee.StudentID)
	if err != nil {
		if svc.logger != nil {
			svc.logger.Warn(fmt.Sprintf("fee %s: no student record for reminder email", fee.ID))
		}
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: stu.Name, Address: stu.Email}},
		Subject: fmt.Sprintf("Payment reminder: %s fee overdue", fee.Type),
		BodyStr: fmt.Sprintf(
			"Dear %s,\n\nYour %s fee of $%.2f was due on %s and is now overdue. Please settle it at your earliest convenience.\n\nSchool Administration",
			stu.Name, fee.Type, fee.Amount, fee.DueDate,
		),
	})
}

// --- Timetable ---

func (svc *Service) CreateTimetableItem(ctx context.Context, in TimetableInput) (TimetableItem, error) {
	cls, err := svc.Classes.Get(ctx, in.ClassID)
	if err != nil {
		return TimetableItem{}, err
	}
	return svc.Timetable.Create(ctx, TimetableItem{
		Day:     in.Day,
		Time:    fmt.Sprintf("%02d:00 - %02d:00", in.Hour, in.Hour+1),
		Subject: in.Subject,
		Teacher: in.Teacher,
		Grade:   cls.Label(),
		Room:    in.Room,
	})
}

func (svc *Service) UpdateTimetableItem(ctx context.Context, id string, in TimetableInput) (TimetableItem, error) {
	cls, err := svc.Classes.Get(ctx, in.ClassID)
	if err != nil {
		return TimetableItem{}, err
	}
	return svc.Timetable.Update(ctx, id, func(it *TimetableItem) {
		it.Day = in.Day
		it.Time = fmt.Sprintf("%02d:00 - %02d:00", in.Hour, in.Hour+1)
		it.Subject = in.Subject
		it.Teacher = in.Teacher
		it.Grade = cls.Label()
		it.Room = in.Room
	})
}

// --- Assignments ---

func (svc *Service) CreateAssignment(ctx context.Context, in AssignmentInput) (Assignment, error) {
	status := in.Status
	if status == "" {
		status = AssignmentPending
	}
	return svc.Assignments.Create(ctx, Assignment{
		Title:       in.Title,
		Subject:     in.Subject,
		Grade:       in.Grade,
		DueDate:     in.DueDate,
		Status:      status,
		Submissions: 0,
		Total:       in.Total,
		Description: in.Description,
	})
}

func (svc *Service) UpdateAssignment(ctx context.Context, id string, in AssignmentInput) (Assignment, error) {
	return svc.Assignments.Update(ctx, id, func(a *Assignment) {
		a.Title = in.Title
		a.Subject = in.Subject
		a.Grade = in.Grade
		a.DueDate = in.DueDate
		if in.Status != "" {
			a.Status = in.Status
		}
		a.Total = in.Total
		a.Description = in.Description
	})
}

// --- Attendance ---

// SaveAttendanceSheet records one AttendanceRecord per student of the
// class for the given date, Present unless listed absent or late.
// Re-saving the same date replaces that day's records for the class.
func (svc *Service) SaveAttendanceSheet(ctx context.Context, in AttendanceSheetInput) ([]AttendanceRecord, error) {
	cls, err := svc.Classes.Get(ctx, in.ClassID)
	if err != nil {
		return nil, err
	}
	students, err := svc.Students.List(ctx)
	if err != nil {
		return nil, err
	}

	roster := make([]Student, 0, len(students))
	rosterIDs := make(map[string]bool, len(students))
	for _, stu := range students {
		if stu.Grade == cls.Grade && stu.Section == cls.Section {
			roster = append(roster, stu)
			rosterIDs[stu.ID] = true
		}
	}

	// drop any previous records for this class and date
	existing, err := svc.Attendance.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range existing {
		if rec.Date == in.Date && rosterIDs[rec.StudentID] {
			if err = svc.Attendance.Delete(ctx, rec.ID); err != nil {
				return nil, err
			}
		}
	}

	absent := make(map[string]bool, len(in.AbsentIDs))
	for _, id := range in.AbsentIDs {
		absent[id] = true
	}
	late := make(map[string]bool, len(in.LateIDs))
	for _, id := range in.LateIDs {
		late[id] = true
	}

	out := make([]AttendanceRecord, 0, len(roster))
	for _, stu := range roster {
		status := AttendancePresent
		switch {
		case absent[stu.ID]:
			status = AttendanceAbsent
		case late[stu.ID]:
			status = AttendanceLate
		}
		rec, err := svc.Attendance.Create(ctx, AttendanceRecord{
			StudentID: stu.ID,
			Date:      in.Date,
			Status:    status,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// --- Dashboard ---

func (svc *Service) Stats(ctx context.Context) (DashboardStats, error) {
	students, err := svc.Students.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	teachers, err := svc.Teachers.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	classes, err := svc.Classes.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	var rate int
	if len(students) > 0 {
		var sum int
		for _, stu := range students {
			sum += stu.Attendance
		}
		rate = (sum + len(students)/2) / len(students)
	}
	return DashboardStats{
		TotalStudents:  len(students),
		TotalTeachers:  len(teachers),
		TotalClasses:   len(classes),
		AttendanceRate: rate,
	}, nil
}

// --- Notification feed ---

func (svc *Service) AddNotification(ctx context.Context, in NotificationInput) (Notification, error) {
	return svc.Notifications.Create(ctx, Notification{
		Title:   in.Title,
		Message: in.Message,
		Time:    svc.clock().Format(time.RFC3339),
		Read:    false,
		Type:    in.Type,
	})
}

func (svc *Service) MarkNotificationRead(ctx context.Context, id string) (Notification, error) {
	return svc.Notifications.Update(ctx, id, func(n *Notification) { n.Read = true })
}

func (svc *Service) MarkAllNotificationsRead(ctx context.Context) error {
	items, err := svc.Notifications.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range items {
		if n.Read {
			continue
		}
		if _, err = svc.Notifications.Update(ctx, n.ID, func(n *Notification) { n.Read = true }); err != nil {
			return err
		}
	}
	return nil
}

func (svc *Service) UnreadCount(ctx context.Context) (int, error) {
	items, err := svc.Notifications.List(ctx)
	if err != nil {
		return 0, err
	}
	var count int
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
