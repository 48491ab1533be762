package store

import (
	"context"
	"testing"

	"github.com/ashwin/studytrack/internal/subject"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCollection() []subject.Subject {
	return []subject.Subject{
		{
			ID:            "sub-1",
			Name:          "Japanese",
			Level:         2,
			Streak:        7,
			DaysCompleted: 4,
			Sessions: []subject.Session{
				{ID: "s1", Date: "2025-03-01", InputMinutes: 30, OutputMinutes: 10, MeetsRequirement: true},
				{ID: "s2", Date: "2025-03-02", InputMinutes: 5, OutputMinutes: 0, MeetsRequirement: false},
			},
		},
		{
			ID:         "sub-2",
			Name:       "Piano",
			Level:      1,
			IsArchived: true,
			Sessions:   []subject.Session{},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLoadEmptyCollection(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()

	subjects, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(subjects) != 0 {
		t.Errorf("expected empty collection, got %d subjects", len(subjects))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	want := testCollection()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d subjects, want 2", len(got))
	}
	if got[0].ID != "sub-1" || got[1].ID != "sub-2" {
		t.Errorf("insertion order lost: %q, %q", got[0].ID, got[1].ID)
	}
	if got[0].Level != 2 || got[0].Streak != 7 || got[0].DaysCompleted != 4 {
		t.Errorf("progression state lost: %+v", got[0])
	}
	if !got[1].IsArchived {
		t.Error("archive flag lost")
	}
	if len(got[0].Sessions) != 2 {
		t.Fatalf("session count = %d, want 2", len(got[0].Sessions))
	}
	if got[0].Sessions[0].ID != "s1" || got[0].Sessions[1].ID != "s2" {
		t.Errorf("session append order lost: %+v", got[0].Sessions)
	}
	if got[0].Sessions[1].MeetsRequirement {
		t.Error("meetsRequirement flag lost")
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	want := testCollection()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("first save: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}

	again, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again) != len(loaded) {
		t.Fatalf("collection size changed across save(load()): %d vs %d", len(again), len(loaded))
	}
	for i := range loaded {
		if again[i].ID != loaded[i].ID || len(again[i].Sessions) != len(loaded[i].Sessions) {
			t.Errorf("subject %d changed across save(load())", i)
		}
	}
}

func TestSaveEmptyCollectionPersists(t *testing.T) {
	// Saving an empty collection must actually clear the store;
	// skipping the write would let deleted subjects resurrect from
	// stale storage.
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testCollection()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected cleared store, got %d subjects", len(got))
	}
}

func TestDeleteSubjectRemovesHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	collection := testCollection()
	if err := repo.Save(ctx, collection); err != nil {
		t.Fatalf("save: %v", err)
	}

	collection, changed := subject.Delete(collection, "sub-1")
	if !changed {
		t.Fatal("expected delete to report a change")
	}
	if err := repo.Save(ctx, collection); err != nil {
		t.Fatalf("save after delete: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "sub-2" {
		t.Errorf("unexpected collection after delete: %+v", got)
	}

	// No orphaned session rows.
	count, err := s.Client().StudySession.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned session rows = %d, want 0", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"subjects", "study_sessions"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
