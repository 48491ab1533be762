package subject

import (
	"errors"
	"testing"
)

func TestNewSubjectDefaults(t *testing.T) {
	s, err := New("Japanese")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.ID == "" {
		t.Error("expected a generated id")
	}
	if s.Level != 1 {
		t.Errorf("Level = %d, want 1", s.Level)
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d, want 0", s.Streak)
	}
	if s.DaysCompleted != 0 {
		t.Errorf("DaysCompleted = %d, want 0", s.DaysCompleted)
	}
	if len(s.Sessions) != 0 {
		t.Errorf("Sessions length = %d, want 0", len(s.Sessions))
	}
	if s.IsArchived {
		t.Error("new subject should not be archived")
	}
}

func TestNewSubjectRejectsBlankNames(t *testing.T) {
	for _, name := range []string{"", " ", "\t", "  \n "} {
		_, err := New(name)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("New(%q) error = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestAddAppends(t *testing.T) {
	var subjects []Subject
	subjects, first, err := Add(subjects, "Math")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	subjects, _, err = Add(subjects, "Physics")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("len = %d, want 2", len(subjects))
	}
	if subjects[0].ID != first.ID {
		t.Error("insertion order not preserved")
	}
}

func TestArchive(t *testing.T) {
	subjects, s, _ := Add(nil, "History")

	subjects, changed := Archive(subjects, s.ID)
	if !changed {
		t.Error("expected archive to report a change")
	}
	if !subjects[0].IsArchived {
		t.Error("subject should be archived")
	}

	// Archiving again is a no-op.
	subjects, changed = Archive(subjects, s.ID)
	if changed {
		t.Error("re-archive should report no change")
	}

	// Unknown id is a silent no-op.
	_, changed = Archive(subjects, "nope")
	if changed {
		t.Error("unknown id should report no change")
	}
}

func TestArchivePreservesSessionsAndTotals(t *testing.T) {
	subjects, s, _ := Add(nil, "History")
	subjects[0].Sessions = []Session{
		{ID: "1", Date: "2025-01-15", InputMinutes: 30, OutputMinutes: 15, MeetsRequirement: true},
	}
	before := subjects[0].TotalMinutes()

	subjects, _ = Archive(subjects, s.ID)
	if got := subjects[0].TotalMinutes(); got != before {
		t.Errorf("TotalMinutes after archive = %d, want %d", got, before)
	}
	if len(subjects[0].Sessions) != 1 {
		t.Error("archive must not touch session history")
	}
	if len(Active(subjects)) != 0 {
		t.Error("archived subject should leave the active view")
	}
	if len(Archived(subjects)) != 1 {
		t.Error("archived subject should appear in the archived view")
	}
}

func TestDelete(t *testing.T) {
	subjects, a, _ := Add(nil, "Math")
	subjects, b, _ := Add(subjects, "Physics")

	subjects, changed := Delete(subjects, a.ID)
	if !changed {
		t.Error("expected delete to report a change")
	}
	if len(subjects) != 1 || subjects[0].ID != b.ID {
		t.Errorf("unexpected collection after delete: %+v", subjects)
	}

	_, changed = Delete(subjects, "nope")
	if changed {
		t.Error("unknown id should report no change")
	}
}

func TestFind(t *testing.T) {
	subjects, math, _ := Add(nil, "Mathematics")
	subjects, phys, _ := Add(subjects, "Physics")
	subjects, _, _ = Add(subjects, "Philosophy")

	if got, err := Find(subjects, math.ID); err != nil || got.ID != math.ID {
		t.Errorf("Find by id = (%v, %v)", got.Name, err)
	}
	if got, err := Find(subjects, "physics"); err != nil || got.ID != phys.ID {
		t.Errorf("Find by case-insensitive name = (%v, %v)", got.Name, err)
	}
	if got, err := Find(subjects, "Math"); err != nil || got.ID != math.ID {
		t.Errorf("Find by unique prefix = (%v, %v)", got.Name, err)
	}
	// "Ph" matches Physics and Philosophy.
	if _, err := Find(subjects, "Ph"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ambiguous prefix error = %v, want ErrNotFound", err)
	}
	if _, err := Find(subjects, "Chemistry"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing subject error = %v, want ErrNotFound", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := Subject{
		ID:       "s1",
		Name:     "Math",
		Level:    1,
		Sessions: []Session{{ID: "a", Date: "2025-01-01"}},
	}
	c := s.Clone()
	c.Sessions[0].Date = "2030-12-31"
	if s.Sessions[0].Date != "2025-01-01" {
		t.Error("Clone shares session backing array with original")
	}
}
