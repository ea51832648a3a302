package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/core/session"
)

func Test_classApi_query(t *testing.T) {
	resetState(t)

	adminToken := getToken(t, seedUser(t, session.RoleAdmin))
	teacherToken := getToken(t, seedUser(t, session.RoleTeacher))

	seed := school.SeedClasses()

	runTable(t, []httpTest{
		{name: "Admin sees all", path: "/v1/classes", token: adminToken, wantData: marshalObj(t, seed)},
		// "Sarah Teacher" is class teacher of c3 as "Ms. Sarah Davis"
		{name: "Teacher sees own classes", path: "/v1/classes", token: teacherToken, wantData: marshalObj(t, seed[2:3])},
		{name: "filter grade", path: "/v1/classes?grade=10", token: adminToken, wantData: marshalObj(t, seed[:2])},
	})
}

func Test_feeApi(t *testing.T) {
	resetState(t)

	adminToken := getToken(t, seedUser(t, session.RoleAdmin))
	studentToken := getToken(t, seedUser(t, session.RoleStudent))

	t.Run("Payment is admin only", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/f3/payment", studentToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marshalObj(t, errForbidden)}, rec)
	})

	t.Run("Payment marks the fee paid today", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/fees/f3/payment", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; wantCode %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var fee school.Fee
		if err := json.Unmarshal(rec.Body.Bytes(), &fee); err != nil {
			t.Fatalf("unmarshal fee: %v", err)
		}
		if fee.Status != school.FeePaid {
			t.Errorf("Status = %v; want %v", fee.Status, school.FeePaid)
		}
		if want := time.Now().Format("2006-01-02"); fee.DatePaid != want {
			t.Errorf("DatePaid = %v; want %v", fee.DatePaid, want)
		}
	})

	t.Run("Created fee resolves the student name", func(t *testing.T) {
		body := []byte(`{"studentId":"s5","type":"Exam","amount":75,"dueDate":"2024-05-01"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/fees", adminToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; wantCode %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var fee school.Fee
		if err := json.Unmarshal(rec.Body.Bytes(), &fee); err != nil {
			t.Fatalf("unmarshal fee: %v", err)
		}
		if fee.StudentName != "Ethan Hunt" {
			t.Errorf("StudentName = %v; want %v", fee.StudentName, "Ethan Hunt")
		}
		if fee.Status != school.FeePending {
			t.Errorf("Status = %v; want %v", fee.Status, school.FeePending)
		}
	})
}

func Test_timetableApi_query(t *testing.T) {
	resetState(t)

	adminToken := getToken(t, seedUser(t, session.RoleAdmin))
	studentToken := getToken(t, seedUser(t, session.RoleStudent))

	seed := school.SeedTimetable()

	runTable(t, []httpTest{
		{name: "Admin sees all", path: "/v1/timetable", token: adminToken, wantData: marshalObj(t, seed)},
		// no roster record for the canned student identity
		{name: "Student without roster record", path: "/v1/timetable", token: studentToken, wantData: marshalObj(t, []school.TimetableItem{})},
	})
}

func Test_attendanceApi_saveSheet(t *testing.T) {
	resetState(t)

	teacherToken := getToken(t, seedUser(t, session.RoleTeacher))
	studentToken := getToken(t, seedUser(t, session.RoleStudent))

	t.Run("Staff required", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", studentToken, []byte(`{}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marshalObj(t, errForbidden)}, rec)
	})

	t.Run("Sheet records the whole roster", func(t *testing.T) {
		body := []byte(`{"date":"2024-03-15","classId":"c1","absentIds":["s2"]}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", teacherToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; wantCode %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var records []school.AttendanceRecord
		if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
			t.Fatalf("unmarshal records: %v", err)
		}
		// class 10-A has two seed students
		if len(records) != 2 {
			t.Fatalf("records = %v; want %v", len(records), 2)
		}
		statuses := make(map[string]string, len(records))
		for _, r := range records {
			statuses[r.StudentID] = r.Status
		}
		if statuses["s1"] != school.AttendancePresent {
			t.Errorf("s1 status = %v; want %v", statuses["s1"], school.AttendancePresent)
		}
		if statuses["s2"] != school.AttendanceAbsent {
			t.Errorf("s2 status = %v; want %v", statuses["s2"], school.AttendanceAbsent)
		}
	})

	t.Run("Records are queryable by date", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/attendance?date=2024-03-15", teacherToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		var records []school.AttendanceRecord
		if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
			t.Fatalf("unmarshal records: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("records = %v; want %v", len(records), 2)
		}
	})
}

func Test_notificationApi(t *testing.T) {
	resetState(t)

	adminToken := getToken(t, seedUser(t, session.RoleAdmin))

	unread := func(t *testing.T) int {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, "/v1/notifications/unread-count", adminToken)
		app.ServeHTTP(rec, req)
		var resp struct {
			Unread int `json:"unread"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal unread count: %v", err)
		}
		return resp.Unread
	}

	if got := unread(t); got != 2 {
		t.Errorf("unread = %v; want %v", got, 2)
	}

	t.Run("Mark one read", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/notifications/n1/read", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		var n school.Notification
		if err := json.Unmarshal(rec.Body.Bytes(), &n); err != nil {
			t.Fatalf("unmarshal notification: %v", err)
		}
		if !n.Read {
			t.Error("notification still unread")
		}
		if got := unread(t); got != 1 {
			t.Errorf("unread = %v; want %v", got, 1)
		}
	})

	t.Run("Mark all read", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPut, "/v1/notifications/read-all", adminToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; wantCode %v", rec.Code, http.StatusOK)
		}
		if got := unread(t); got != 0 {
			t.Errorf("unread = %v; want %v", got, 0)
		}
	})

	t.Run("New notification leads the feed", func(t *testing.T) {
		body := []byte(`{"title":"Sports Day","message":"Sports day is on Friday.","type":"info"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/notifications", adminToken, body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; wantCode %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/notifications", adminToken)
		app.ServeHTTP(rec, req)
		var items []school.Notification
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("unmarshal notifications: %v", err)
		}
		if len(items) == 0 || items[0].Title != "Sports Day" {
			t.Errorf("newest notification is not first; got %+v", items)
		}
		if got := unread(t); got != 1 {
			t.Errorf("unread = %v; want %v", got, 1)
		}
	})
}

func Test_dashboardApi_stats(t *testing.T) {
	resetState(t)

	studentToken := getToken(t, seedUser(t, session.RoleStudent))

	runTable(t, []httpTest{
		{
			name: "Auth required", path: "/v1/dashboard/stats",
			wantCode: http.StatusUnauthorized, wantData: marshalObj(t, errMissingToken),
		},
		{
			name: "Stats from seed data", path: "/v1/dashboard/stats", token: studentToken,
			wantData: marshalObj(t, school.DashboardStats{
				TotalStudents:  6,
				TotalTeachers:  5,
				TotalClasses:   4,
				AttendanceRate: 88,
			}),
		},
	})
}
