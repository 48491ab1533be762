package dashboard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ashwin/studytrack/internal/router"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/ashwin/studytrack/internal/tracker"
)

// memRepo is an in-memory SubjectRepo for tests.
type memRepo struct {
	saved []subject.Subject
}

func (r *memRepo) Load(ctx context.Context) ([]subject.Subject, error) {
	return r.saved, nil
}

func (r *memRepo) Save(ctx context.Context, subjects []subject.Subject) error {
	r.saved = subjects
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestDashboard(t *testing.T, names ...string) (*Dashboard, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(&memRepo{})
	for _, name := range names {
		if _, err := tr.Add(context.Background(), name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	return New(tr), tr
}

func TestNavigation(t *testing.T) {
	d, _ := newTestDashboard(t, "Math", "Piano", "Japanese")

	if d.selected != 0 {
		t.Fatalf("initial selection = %d, want 0", d.selected)
	}
	d.Update(keyPress('j'))
	d.Update(keyPress('j'))
	if d.selected != 2 {
		t.Errorf("selection after jj = %d, want 2", d.selected)
	}
	// Can't move past the end.
	d.Update(keyPress('j'))
	if d.selected != 2 {
		t.Errorf("selection past end = %d, want 2", d.selected)
	}
	d.Update(keyPress('k'))
	if d.selected != 1 {
		t.Errorf("selection after k = %d, want 1", d.selected)
	}
}

func TestEnterPushesLogForm(t *testing.T) {
	d, _ := newTestDashboard(t, "Math")

	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a subject should push a screen")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	d, tr := newTestDashboard(t, "Math")

	// First x only arms the confirmation.
	d.Update(keyPress('x'))
	if len(tr.Subjects()) != 1 {
		t.Fatal("single x must not delete")
	}
	if !d.pendingDelete {
		t.Fatal("first x should arm the pending delete")
	}

	// Any other key disarms it.
	d.Update(keyPress('j'))
	if d.pendingDelete {
		t.Error("non-x key should cancel the pending delete")
	}
	d.Update(keyPress('x'))
	if len(tr.Subjects()) != 1 {
		t.Error("re-armed x must not delete yet")
	}

	// Second consecutive x deletes.
	d.Update(keyPress('x'))
	if len(tr.Subjects()) != 0 {
		t.Error("second consecutive x should delete the subject")
	}
}

func TestArchiveRemovesFromView(t *testing.T) {
	d, tr := newTestDashboard(t, "Math", "Piano")

	d.Update(keyPress('e'))
	if len(d.subjects) != 1 {
		t.Errorf("dashboard shows %d subjects after archive, want 1", len(d.subjects))
	}
	if len(tr.Archived()) != 1 {
		t.Errorf("archived = %d, want 1", len(tr.Archived()))
	}
}

func TestEmptyStatePromptsAdd(t *testing.T) {
	d, _ := newTestDashboard(t)

	view := d.View(80, 24)
	if !strings.Contains(view, "No subjects yet") {
		t.Error("empty dashboard should prompt to add a subject")
	}
	// Enter with nothing selected must not push anything.
	if _, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter on empty dashboard should be a no-op")
	}
}

func TestRefreshPicksUpNewSubjects(t *testing.T) {
	d, tr := newTestDashboard(t, "Math")

	if _, err := tr.Add(context.Background(), "Piano"); err != nil {
		t.Fatalf("add: %v", err)
	}
	d.Refresh()
	if len(d.subjects) != 2 {
		t.Errorf("dashboard shows %d subjects after refresh, want 2", len(d.subjects))
	}
}
