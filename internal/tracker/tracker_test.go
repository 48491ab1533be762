package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/ashwin/studytrack/internal/progress"
	"github.com/ashwin/studytrack/internal/store"
	"github.com/ashwin/studytrack/internal/subject"
)

// memRepo is an in-memory SubjectRepo for tests.
type memRepo struct {
	saved     []subject.Subject
	saveCount int
	loadErr   error
	saveErr   error
}

func (r *memRepo) Load(ctx context.Context) ([]subject.Subject, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]subject.Subject, len(r.saved))
	for i, s := range r.saved {
		out[i] = s.Clone()
	}
	return out, nil
}

func (r *memRepo) Save(ctx context.Context, subjects []subject.Subject) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saveCount++
	r.saved = make([]subject.Subject, len(subjects))
	for i, s := range subjects {
		r.saved[i] = s.Clone()
	}
	return nil
}

func fixedDay(date string) Option {
	return WithToday(func() string { return date })
}

func TestAddPersists(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo)
	ctx := context.Background()

	added, err := tr.Add(ctx, "Japanese")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.Level != 1 || added.Streak != 0 {
		t.Errorf("unexpected new subject state: %+v", added)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("persisted %d subjects, want 1", len(repo.saved))
	}
}

func TestAddRejectsBlankNameWithoutSaving(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo)

	_, err := tr.Add(context.Background(), "   ")
	if !errors.Is(err, subject.ErrEmptyName) {
		t.Fatalf("error = %v, want ErrEmptyName", err)
	}
	if repo.saveCount != 0 {
		t.Error("rejected add must not persist")
	}
}

func TestLogUpdatesAndPersists(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo, fixedDay("2025-03-01"))
	ctx := context.Background()

	if _, err := tr.Add(ctx, "Japanese"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := tr.Log(ctx, "Japanese", 20, 5)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if out.Subject.Streak != 1 {
		t.Errorf("Streak = %d, want 1", out.Subject.Streak)
	}
	if len(repo.saved) != 1 || len(repo.saved[0].Sessions) != 1 {
		t.Error("logged session not persisted")
	}
	if tr.Subjects()[0].Streak != 1 {
		t.Error("in-memory collection not updated")
	}
}

func TestLogUnknownSubject(t *testing.T) {
	tr := New(&memRepo{})
	_, err := tr.Log(context.Background(), "nope", 20, 5)
	if !errors.Is(err, subject.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLogSurfacesLevelUp(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo, fixedDay("2025-03-15"))
	ctx := context.Background()

	s, _ := subject.New("Japanese")
	s.Streak = 14
	s.DaysCompleted = 14
	s.Sessions = []subject.Session{
		{ID: "prev", Date: "2025-03-14", InputMinutes: 20, OutputMinutes: 5, MeetsRequirement: true},
	}
	repo.saved = []subject.Subject{s}
	if err := tr.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	out, err := tr.Log(ctx, "Japanese", 20, 5)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if out.Event != progress.EventLevelUp || out.NewLevel != 2 {
		t.Errorf("Event = %v NewLevel = %d, want level-up to 2", out.Event, out.NewLevel)
	}
}

func TestArchiveAndDelete(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo)
	ctx := context.Background()

	a, _ := tr.Add(ctx, "Math")
	b, _ := tr.Add(ctx, "Piano")

	changed, err := tr.Archive(ctx, a.ID)
	if err != nil || !changed {
		t.Fatalf("archive: changed=%v err=%v", changed, err)
	}
	if len(tr.Active()) != 1 || len(tr.Archived()) != 1 {
		t.Error("archive views wrong")
	}

	// Unknown ids are no-ops and skip the save.
	before := repo.saveCount
	if changed, _ := tr.Archive(ctx, "nope"); changed {
		t.Error("unknown archive id should report no change")
	}
	if changed, _ := tr.Delete(ctx, "nope"); changed {
		t.Error("unknown delete id should report no change")
	}
	if repo.saveCount != before {
		t.Error("no-op lifecycle calls must not persist")
	}

	changed, err = tr.Delete(ctx, b.ID)
	if err != nil || !changed {
		t.Fatalf("delete: changed=%v err=%v", changed, err)
	}
	if len(tr.Subjects()) != 1 {
		t.Errorf("collection size = %d, want 1", len(tr.Subjects()))
	}
}

func TestDeleteToEmptyStillPersists(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo)
	ctx := context.Background()

	a, _ := tr.Add(ctx, "Math")
	if _, err := tr.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("empty collection must be persisted, not skipped")
	}

	// A reload must not resurrect the deleted subject.
	if err := tr.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tr.Subjects()) != 0 {
		t.Error("deleted subject resurrected from storage")
	}
}

func TestRestoreReplacesCollection(t *testing.T) {
	repo := &memRepo{}
	tr := New(repo)
	ctx := context.Background()

	if _, err := tr.Add(ctx, "Math"); err != nil {
		t.Fatalf("add: %v", err)
	}

	imported, _ := subject.New("Japanese")
	if err := tr.Restore(ctx, []subject.Subject{imported}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if len(tr.Subjects()) != 1 || tr.Subjects()[0].Name != "Japanese" {
		t.Errorf("collection = %+v, want only the imported subject", tr.Subjects())
	}
	if len(repo.saved) != 1 || repo.saved[0].Name != "Japanese" {
		t.Error("restored collection not persisted")
	}
}

func TestLoadFailureLeavesEmptyCollection(t *testing.T) {
	repo := &memRepo{loadErr: store.ErrStorageUnavailable}
	tr := New(repo)

	err := tr.Load(context.Background())
	if !errors.Is(err, store.ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}
	if len(tr.Subjects()) != 0 {
		t.Error("failed load should leave an empty collection")
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	repo := &memRepo{saveErr: store.ErrStorageUnavailable}
	tr := New(repo)

	_, err := tr.Add(context.Background(), "Math")
	if !errors.Is(err, store.ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}
	// In-memory state is still the source of truth.
	if len(tr.Subjects()) != 1 {
		t.Error("save failure must not roll back in-memory state")
	}
}
