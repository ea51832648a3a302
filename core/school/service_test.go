package school

import (
	"context"
	"testing"
	"time"

	"github.com/edumanage/backend/core"
	inmemkv "github.com/edumanage/backend/storage/kv/inmem"
)

type emailSpy struct {
	sent []*core.EmailMessage
}

func (s *emailSpy) SendMessages(messages ...*core.EmailMessage) {
	s.sent = append(s.sent, messages...)
}

func newTestService(opts ...Option) (*Service, *emailSpy) {
	spy := &emailSpy{}
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	base := []Option{WithClock(func() time.Time { return now })}
	return NewService(inmemkv.NewDB(), nil, spy, append(base, opts...)...), spy
}

func TestCreateStudentDefaults(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.Students.Reset(ctx); err != nil {
		t.Fatalf("Reset() failed, %v", err)
	}
	before, _ := svc.Students.List(ctx)

	created, err := svc.CreateStudent(ctx, NewStudentInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		Grade:     "10",
		Section:   "A",
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed, %v", err)
	}

	after, _ := svc.Students.List(ctx)
	if len(after) != len(before)+1 {
		t.Errorf("List() has %d records, want %d", len(after), len(before)+1)
	}
	if created.Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want %q", created.Name, "Ada Lovelace")
	}
	if created.Attendance != 0 {
		t.Errorf("Attendance = %d, want 0", created.Attendance)
	}
	if created.Status != StudentActive {
		t.Errorf("Status = %q, want %q", created.Status, StudentActive)
	}
	if len(created.RollNumber) != 4 {
		t.Errorf("RollNumber = %q, want a generated 4-digit number", created.RollNumber)
	}
	if created.ID == "" {
		t.Error("no ID assigned")
	}
}

func TestUpdateStudentKeepsUntouchedFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	updated, err := svc.UpdateStudent(ctx, "s1", UpdateStudentInput{
		FirstName: "Alice",
		LastName:  "Johnson",
		Email:     "alice@school.com",
		Grade:     "11",
		Section:   "A",
	})
	if err != nil {
		t.Fatalf("UpdateStudent() failed, %v", err)
	}
	if updated.Grade != "11" {
		t.Errorf("Grade = %q, want %q", updated.Grade, "11")
	}
	if updated.Attendance != 92 {
		t.Errorf("Attendance = %d, want 92 retained", updated.Attendance)
	}
	if updated.ID != "s1" {
		t.Errorf("ID = %q, must not change on update", updated.ID)
	}
}

func TestRecordFeePayment(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	fee, err := svc.RecordFeePayment(ctx, "f3")
	if err != nil {
		t.Fatalf("RecordFeePayment() failed, %v", err)
	}
	if fee.Status != FeePaid {
		t.Errorf("Status = %q, want %q", fee.Status, FeePaid)
	}
	if fee.DatePaid != "2024-03-15" {
		t.Errorf("DatePaid = %q, want today", fee.DatePaid)
	}
	if fee.StudentName != "Charlie Brown" || fee.Amount != 150 {
		t.Errorf("other fields changed: %+v", fee)
	}
}

func TestCreateFeeResolvesStudentName(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	fee, err := svc.CreateFee(ctx, FeeInput{StudentID: "s2", Type: "Exam", Amount: 75, DueDate: "2024-04-01"})
	if err != nil {
		t.Fatalf("CreateFee() failed, %v", err)
	}
	if fee.StudentName != "Bob Smith" {
		t.Errorf("StudentName = %q, want resolved from student record", fee.StudentName)
	}
	if fee.Status != FeePending {
		t.Errorf("Status = %q, want %q", fee.Status, FeePending)
	}

	orphan, err := svc.CreateFee(ctx, FeeInput{StudentID: "missing", Type: "Exam", Amount: 75, DueDate: "2024-04-01"})
	if err != nil {
		t.Fatalf("CreateFee() failed, %v", err)
	}
	if orphan.StudentName != "Unknown Student" {
		t.Errorf("StudentName = %q, want %q", orphan.StudentName, "Unknown Student")
	}

	// fees insert at the front
	fees, _ := svc.Fees.List(ctx)
	if fees[0].ID != orphan.ID {
		t.Errorf("List()[0].ID = %q, want newest fee first", fees[0].ID)
	}
}

func TestMarkOverdueFees(t *testing.T) {
	svc, spy := newTestService()
	ctx := context.Background()

	flipped, err := svc.MarkOverdueFees(ctx)
	if err != nil {
		t.Fatalf("MarkOverdueFees() failed, %v", err)
	}
	// seed Pending fees f3 (due 2024-03-01) and f4 (due 2024-03-10) are both past due
	if flipped != 2 {
		t.Errorf("flipped = %d, want 2", flipped)
	}

	f3, _ := svc.Fees.Get(ctx, "f3")
	if f3.Status != FeeOverdue {
		t.Errorf("f3.Status = %q, want %q", f3.Status, FeeOverdue)
	}
	f1, _ := svc.Fees.Get(ctx, "f1")
	if f1.Status != FeePaid {
		t.Errorf("f1.Status = %q, paid fees must not be touched", f1.Status)
	}

	if len(spy.sent) != 2 {
		t.Errorf("sent %d reminder emails, want 2", len(spy.sent))
	}
	unread, _ := svc.UnreadCount(ctx)
	if unread < 2 {
		t.Errorf("UnreadCount() = %d, want the sweep to append notifications", unread)
	}

	// second sweep finds nothing new
	again, err := svc.MarkOverdueFees(ctx)
	if err != nil {
		t.Fatalf("MarkOverdueFees() failed, %v", err)
	}
	if again != 0 {
		t.Errorf("second sweep flipped %d fees, want 0", again)
	}
}

func TestSaveAttendanceSheet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// class c1 is 10-A: s1 (Alice) and s2 (Bob)
	recs, err := svc.SaveAttendanceSheet(ctx, AttendanceSheetInput{
		Date:      "2024-03-15",
		ClassID:   "c1",
		AbsentIDs: []string{"s2"},
	})
	if err != nil {
		t.Fatalf("SaveAttendanceSheet() failed, %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want one per student of the class", len(recs))
	}
	byStudent := make(map[string]string)
	for _, r := range recs {
		byStudent[r.StudentID] = r.Status
	}
	if byStudent["s1"] != AttendancePresent || byStudent["s2"] != AttendanceAbsent {
		t.Errorf("statuses = %v, want s1 Present and s2 Absent", byStudent)
	}

	// re-saving the same day replaces, not duplicates
	if _, err = svc.SaveAttendanceSheet(ctx, AttendanceSheetInput{Date: "2024-03-15", ClassID: "c1"}); err != nil {
		t.Fatalf("SaveAttendanceSheet() failed, %v", err)
	}
	all, _ := svc.Attendance.List(ctx)
	if len(all) != 2 {
		t.Errorf("collection has %d records after re-save, want 2", len(all))
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService()

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() failed, %v", err)
	}
	if stats.TotalStudents != 6 || stats.TotalTeachers != 5 || stats.TotalClasses != 4 {
		t.Errorf("Stats() = %+v, want seed totals 6/5/4", stats)
	}
	// (92+85+78+95+88+91)/6 = 88.2 -> 88
	if stats.AttendanceRate != 88 {
		t.Errorf("AttendanceRate = %d, want 88", stats.AttendanceRate)
	}
}

func TestResultStatusDerivation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	score := 49
	failed, err := svc.CreateResult(ctx, ExamResultInput{
		StudentName: "Alice Johnson", Subject: "Physics", ExamType: "Quiz",
		Teacher: "Ms. Sarah Davis", Score: &score, Term: "Term 2",
	})
	if err != nil {
		t.Fatalf("CreateResult() failed, %v", err)
	}
	if failed.Status != ResultFailed {
		t.Errorf("Status = %q, want %q for score 49", failed.Status, ResultFailed)
	}

	pass := 50
	updated, err := svc.UpdateResult(ctx, failed.ID, ExamResultInput{
		StudentName: "Alice Johnson", Subject: "Physics", ExamType: "Quiz",
		Teacher: "Ms. Sarah Davis", Score: &pass, Term: "Term 2",
	})
	if err != nil {
		t.Fatalf("UpdateResult() failed, %v", err)
	}
	if updated.Status != ResultPassed {
		t.Errorf("Status = %q, want %q for score 50", updated.Status, ResultPassed)
	}
}

func TestCreateTimetableItemDerivesSlot(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	item, err := svc.CreateTimetableItem(ctx, TimetableInput{
		Day: "Friday", Hour: 9, Subject: "Physics", Teacher: "Ms. Davis", ClassID: "c1", Room: "101",
	})
	if err != nil {
		t.Fatalf("CreateTimetableItem() failed, %v", err)
	}
	if item.Time != "09:00 - 10:00" {
		t.Errorf("Time = %q, want %q", item.Time, "09:00 - 10:00")
	}
	if item.Grade != "10-A" {
		t.Errorf("Grade = %q, want the class label", item.Grade)
	}
}

func TestNotificationFeed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// seed has 2 unread
	unread, _ := svc.UnreadCount(ctx)
	if unread != 2 {
		t.Fatalf("UnreadCount() = %d, want 2 from seed", unread)
	}

	added, err := svc.AddNotification(ctx, NotificationInput{Title: "Hello", Message: "World", Type: NotifInfo})
	if err != nil {
		t.Fatalf("AddNotification() failed, %v", err)
	}
	if added.Read {
		t.Error("new notifications must start unread")
	}
	items, _ := svc.Notifications.List(ctx)
	if items[0].ID != added.ID {
		t.Error("new notifications must be prepended")
	}

	if _, err = svc.MarkNotificationRead(ctx, added.ID); err != nil {
		t.Fatalf("MarkNotificationRead() failed, %v", err)
	}
	if err = svc.MarkAllNotificationsRead(ctx); err != nil {
		t.Fatalf("MarkAllNotificationsRead() failed, %v", err)
	}
	unread, _ = svc.UnreadCount(ctx)
	if unread != 0 {
		t.Errorf("UnreadCount() = %d after mark-all, want 0", unread)
	}
}

func TestValidateInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		in      interface{}
		wantErr bool
	}{
		{name: "missing required fields", in: NewStudentInput{FirstName: "Ada"}, wantErr: true},
		{name: "bad email", in: NewStudentInput{FirstName: "Ada", LastName: "Lovelace", Email: "nope", Grade: "10", Section: "A"}, wantErr: true},
		{name: "valid student", in: NewStudentInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Grade: "10", Section: "A"}},
		{name: "score above bound", in: ExamResultInput{StudentName: "A", Subject: "B", ExamType: "Quiz", Teacher: "T", Score: intPtr(101), Term: "Term 1"}, wantErr: true},
		{name: "score zero is allowed", in: ExamResultInput{StudentName: "A", Subject: "B", ExamType: "Quiz", Teacher: "T", Score: intPtr(0), Term: "Term 1"}},
		{name: "bad weekday", in: TimetableInput{Day: "Sunday", Hour: 9, Subject: "S", Teacher: "T", ClassID: "c1", Room: "1"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(ctx, tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
