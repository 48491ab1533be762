// Package tracker wires the progression engine to a persistence
// boundary. A Tracker owns the in-memory subject collection and writes
// it back through its SubjectRepo after every mutation; nothing here is
// reachable through globals — callers hold the Tracker handle
// explicitly.
package tracker

import (
	"context"
	"time"

	"github.com/ashwin/studytrack/internal/progress"
	"github.com/ashwin/studytrack/internal/store"
	"github.com/ashwin/studytrack/internal/subject"
)

// Tracker coordinates collection state, the progression engine, and
// persistence. Single-user and synchronous: each operation completes
// fully (engine then save) before returning.
type Tracker struct {
	repo     store.SubjectRepo
	subjects []subject.Subject
	today    func() string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithToday overrides the clock used to date new sessions. Tests use
// this to pin the calendar.
func WithToday(today func() string) Option {
	return func(t *Tracker) {
		t.today = today
	}
}

// New creates a Tracker over the given repo with an empty collection.
// Call Load to pull persisted state.
func New(repo store.SubjectRepo, opts ...Option) *Tracker {
	t := &Tracker{
		repo: repo,
		today: func() string {
			return time.Now().Format(subject.DateLayout)
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load replaces the in-memory collection with the persisted one. On
// storage failure the collection resets to empty and the error is
// returned so the caller can warn; the Tracker stays usable either way.
func (t *Tracker) Load(ctx context.Context) error {
	subjects, err := t.repo.Load(ctx)
	if err != nil {
		t.subjects = nil
		return err
	}
	t.subjects = subjects
	return nil
}

// Subjects returns the full collection, archived included.
func (t *Tracker) Subjects() []subject.Subject {
	return t.subjects
}

// Active returns the subjects not archived.
func (t *Tracker) Active() []subject.Subject {
	return subject.Active(t.subjects)
}

// Archived returns the archived subjects.
func (t *Tracker) Archived() []subject.Subject {
	return subject.Archived(t.subjects)
}

// Today returns today's date string as the engine will see it.
func (t *Tracker) Today() string {
	return t.today()
}

// Find locates a subject by id, name, or unique name prefix.
func (t *Tracker) Find(key string) (subject.Subject, error) {
	return subject.Find(t.subjects, key)
}

// Add creates a subject and persists the grown collection.
func (t *Tracker) Add(ctx context.Context, name string) (subject.Subject, error) {
	subjects, added, err := subject.Add(t.subjects, name)
	if err != nil {
		return subject.Subject{}, err
	}
	t.subjects = subjects
	return added, t.save(ctx)
}

// Log applies a session to the subject matching key and persists the
// result. The returned outcome carries the updated subject and any
// level-up or streak-reset event for the caller to surface.
func (t *Tracker) Log(ctx context.Context, key string, inputMinutes, outputMinutes int) (progress.Outcome, error) {
	s, err := subject.Find(t.subjects, key)
	if err != nil {
		return progress.Outcome{}, err
	}

	out, err := progress.LogSession(s, t.today(), inputMinutes, outputMinutes)
	if err != nil {
		return progress.Outcome{}, err
	}

	t.subjects, _ = subject.Replace(t.subjects, out.Subject)
	return out, t.save(ctx)
}

// Restore replaces the whole collection with an imported one and
// persists it. The previous collection is gone after this; callers
// confirm with the user first.
func (t *Tracker) Restore(ctx context.Context, subjects []subject.Subject) error {
	t.subjects = subjects
	return t.save(ctx)
}

// Archive soft-deletes the subject with the given id and persists.
// Reports whether anything changed.
func (t *Tracker) Archive(ctx context.Context, id string) (bool, error) {
	subjects, changed := subject.Archive(t.subjects, id)
	t.subjects = subjects
	if !changed {
		return false, nil
	}
	return true, t.save(ctx)
}

// Delete removes the subject and its whole history, then persists.
// Reports whether anything changed. Deleting down to an empty
// collection still persists — the empty state is real.
func (t *Tracker) Delete(ctx context.Context, id string) (bool, error) {
	subjects, changed := subject.Delete(t.subjects, id)
	t.subjects = subjects
	if !changed {
		return false, nil
	}
	return true, t.save(ctx)
}

func (t *Tracker) save(ctx context.Context) error {
	return t.repo.Save(ctx, t.subjects)
}
