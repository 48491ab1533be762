package logform

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ashwin/studytrack/internal/progress"
	"github.com/ashwin/studytrack/internal/router"
	"github.com/ashwin/studytrack/internal/subject"
	"github.com/ashwin/studytrack/internal/tracker"
)

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

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func newTestForm(t *testing.T) (*LogForm, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(&memRepo{}, tracker.WithToday(func() string { return "2025-03-01" }))
	s, err := tr.Add(context.Background(), "Japanese")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	f := New(tr, s.ID)
	f.Init()
	return f, tr
}

func typeDigits(f *LogForm, digits string) {
	for _, r := range digits {
		f.Update(keyPress(r))
	}
}

func TestSubmitQualifyingSession(t *testing.T) {
	f, tr := newTestForm(t)

	typeDigits(f, "20")
	f.Update(enter()) // move to output field
	typeDigits(f, "5")
	f.Update(enter()) // submit

	if f.outcome == nil {
		t.Fatal("submit should record an outcome")
	}
	if !f.outcome.Session.MeetsRequirement {
		t.Error("20+5 at level 1 should qualify")
	}
	if f.outcome.Subject.Streak != 1 {
		t.Errorf("Streak = %d, want 1", f.outcome.Subject.Streak)
	}
	if len(tr.Subjects()[0].Sessions) != 1 {
		t.Error("session not stored on the subject")
	}

	view := f.View(80, 24)
	if !strings.Contains(view, "Day complete") {
		t.Error("qualifying outcome should be reported in the view")
	}

	// Enter after the outcome dismisses the form.
	_, cmd := f.Update(enter())
	if cmd == nil {
		t.Fatal("enter after outcome should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSubmitNonQualifyingSession(t *testing.T) {
	f, _ := newTestForm(t)

	typeDigits(f, "5")
	f.Update(enter())
	typeDigits(f, "1")
	f.Update(enter())

	if f.outcome == nil {
		t.Fatal("submit should record an outcome")
	}
	if f.outcome.Session.MeetsRequirement {
		t.Error("5+1 at level 1 must not qualify")
	}
	if f.outcome.Event != progress.EventNone {
		t.Errorf("Event = %v, want EventNone", f.outcome.Event)
	}
	if f.outcome.Subject.Streak != 0 {
		t.Errorf("Streak = %d, want 0", f.outcome.Subject.Streak)
	}
}

func TestNumericFieldsIgnoreLetters(t *testing.T) {
	f, _ := newTestForm(t)

	typeDigits(f, "2")
	f.Update(keyPress('a'))
	typeDigits(f, "0")

	if got := f.inputField.Value(); got != "20" {
		t.Errorf("input value = %q, want %q", got, "20")
	}
}

func TestEmptyFieldsReadAsZero(t *testing.T) {
	f, _ := newTestForm(t)

	f.Update(enter()) // skip input field
	f.Update(enter()) // submit with both empty

	if f.outcome == nil {
		t.Fatal("submitting empty fields should still log a zero-minute session")
	}
	if f.outcome.Session.InputMinutes != 0 || f.outcome.Session.OutputMinutes != 0 {
		t.Errorf("session = %+v, want zero minutes", f.outcome.Session)
	}
	if f.outcome.Session.MeetsRequirement {
		t.Error("zero-minute session must not qualify")
	}
}
