package entity

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
)

type draft struct {
	Name  string
	Score int
}

type spyStore struct {
	creates int
	updates int
	lastID  string
	fail    error
}

func (s *spyStore) create(_ context.Context, _ draft) error {
	s.creates++
	return s.fail
}

func (s *spyStore) update(_ context.Context, id string, _ draft) error {
	s.updates++
	s.lastID = id
	return s.fail
}

func newSession(spy *spyStore) *FormSession[draft] {
	return &FormSession[draft]{
		Validate: func(d draft) error {
			if d.Name == "" {
				return core.NewValidationError(nil, core.FieldError{Field: "name", Error: "this field is required"})
			}
			if d.Score < 0 || d.Score > 100 {
				return core.NewValidationError(nil, core.FieldError{Field: "score", Error: "must be between 0 and 100"})
			}
			return nil
		},
		Create: spy.create,
		Update: spy.update,
	}
}

func TestFormSessionCommitClosed(t *testing.T) {
	sess := newSession(&spyStore{})
	if err := sess.Commit(context.Background()); err != ErrFormClosed {
		t.Errorf("Commit() error = %v, want ErrFormClosed", err)
	}
}

func TestFormSessionCreate(t *testing.T) {
	spy := &spyStore{}
	sess := newSession(spy)

	sess.OpenCreate(draft{Score: 50})
	if sess.State() != StateCreating {
		t.Fatalf("State() = %v, want StateCreating", sess.State())
	}
	sess.Draft().Name = "Ada"

	if err := sess.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() failed, %v", err)
	}
	if spy.creates != 1 || spy.updates != 0 {
		t.Errorf("store calls = %d creates / %d updates, want 1/0", spy.creates, spy.updates)
	}
	if sess.State() != StateClosed {
		t.Errorf("State() = %v, want StateClosed after commit", sess.State())
	}
}

func TestFormSessionEdit(t *testing.T) {
	spy := &spyStore{}
	sess := newSession(spy)

	sess.OpenEdit("s1", draft{Name: "Grace", Score: 90})
	if sess.State() != StateEditing {
		t.Fatalf("State() = %v, want StateEditing", sess.State())
	}

	if err := sess.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() failed, %v", err)
	}
	if spy.updates != 1 || spy.lastID != "s1" {
		t.Errorf("update calls = %d (id %q), want 1 call for s1", spy.updates, spy.lastID)
	}
}

func TestFormSessionValidationNeverCallsStore(t *testing.T) {
	spy := &spyStore{}
	sess := newSession(spy)

	sess.OpenCreate(draft{Score: 200})
	err := sess.Commit(context.Background())
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Commit() error = %v, want ValidationError", err)
	}
	if spy.creates != 0 || spy.updates != 0 {
		t.Errorf("store called %d/%d times on invalid draft, want 0/0", spy.creates, spy.updates)
	}
	if sess.State() != StateCreating {
		t.Errorf("State() = %v, want StateCreating retained", sess.State())
	}
	if sess.Draft().Score != 200 {
		t.Error("draft changed on failed validation")
	}
}

func TestFormSessionCancel(t *testing.T) {
	spy := &spyStore{}
	sess := newSession(spy)

	sess.OpenCreate(draft{Name: "x"})
	sess.Cancel()
	if sess.State() != StateClosed {
		t.Errorf("State() = %v, want StateClosed", sess.State())
	}
	if spy.creates != 0 {
		t.Error("Cancel() must not touch the store")
	}
}

func TestFormSessionStoreFailureReopens(t *testing.T) {
	spy := &spyStore{fail: errors.New("backend down")}
	sess := newSession(spy)

	sess.OpenEdit("s1", draft{Name: "Grace"})
	if err := sess.Commit(context.Background()); err == nil {
		t.Fatal("Commit() succeeded, want store error")
	}
	if sess.State() != StateEditing {
		t.Errorf("State() = %v, want StateEditing restored", sess.State())
	}
}

func TestFormSessionLatencyRuns(t *testing.T) {
	spy := &spyStore{}
	sess := newSession(spy)
	ran := false
	sess.Latency = func(context.Context) { ran = true }

	sess.OpenCreate(draft{Name: "x"})
	if err := sess.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() failed, %v", err)
	}
	if !ran {
		t.Error("latency strategy was not invoked")
	}
}
