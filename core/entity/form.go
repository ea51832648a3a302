package entity

import (
	"context"

	"github.com/pkg/errors"
)

// FormState is the lifecycle stage of a FormSession.
type FormState int

const (
	StateClosed FormState = iota
	StateCreating
	StateEditing
	StateSubmitting
)

func (s FormState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

var ErrFormClosed = errors.New("no open form")

// FormSession manages one in-flight create-or-edit interaction over a
// draft of type D. Commit validates the draft, waits out the configured
// latency and hands the draft to the create or update callback; a failed
// validation surfaces the error and leaves the draft, state and store
// untouched. Not safe for concurrent use; each interaction owns its own
// session.
type FormSession[D any] struct {
	// Validate rejects incomplete drafts. Required.
	Validate func(D) error
	// Create commits a draft opened with OpenCreate.
	Create func(ctx context.Context, draft D) error
	// Update commits a draft opened with OpenEdit.
	Update func(ctx context.Context, id string, draft D) error
	// Latency, when set, runs between validation and the store call.
	Latency func(ctx context.Context)

	state  FormState
	draft  D
	editID string
}

func (f *FormSession[D]) State() FormState { return f.state }

// Draft returns a pointer to the current draft for field edits.
func (f *FormSession[D]) Draft() *D { return &f.draft }

// EditID returns the target record ID of an editing session.
func (f *FormSession[D]) EditID() string { return f.editID }

// OpenCreate starts a create interaction with the given defaults.
func (f *FormSession[D]) OpenCreate(defaults D) {
	f.state = StateCreating
	f.draft = defaults
	f.editID = ""
}

// OpenEdit starts an edit interaction over a copy of the record's
// current values.
func (f *FormSession[D]) OpenEdit(id string, current D) {
	f.state = StateEditing
	f.draft = current
	f.editID = id
}

// Cancel discards the draft without touching the store.
func (f *FormSession[D]) Cancel() {
	var zero D
	f.state = StateClosed
	f.draft = zero
	f.editID = ""
}

// Commit validates and commits the draft. On validation failure the
// session stays open with the draft unchanged and the store is never
// called. On success the session closes.
func (f *FormSession[D]) Commit(ctx context.Context) error {
	open := f.state
	if open != StateCreating && open != StateEditing {
		return ErrFormClosed
	}

	if err := f.Validate(f.draft); err != nil {
		return err
	}

	f.state = StateSubmitting
	if f.Latency != nil {
		f.Latency(ctx)
	}

	var err error
	if open == StateCreating {
		err = f.Create(ctx, f.draft)
	} else {
		err = f.Update(ctx, f.editID, f.draft)
	}
	if err != nil {
		f.state = open
		return err
	}

	f.Cancel()
	return nil
}
