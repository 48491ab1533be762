package progress

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ashwin/studytrack/internal/subject"
)

func newSubject(t *testing.T, name string) subject.Subject {
	t.Helper()
	s, err := subject.New(name)
	if err != nil {
		t.Fatalf("new subject: %v", err)
	}
	return s
}

func mustLog(t *testing.T, s subject.Subject, date string, input, output int) Outcome {
	t.Helper()
	out, err := LogSession(s, date, input, output)
	if err != nil {
		t.Fatalf("log session on %s: %v", date, err)
	}
	return out
}

func TestFirstQualifyingSessionStartsStreak(t *testing.T) {
	s := newSubject(t, "Japanese")

	out := mustLog(t, s, "2025-03-01", 13, 2)

	if out.Subject.Streak != 1 {
		t.Errorf("Streak = %d, want 1", out.Subject.Streak)
	}
	if out.Subject.DaysCompleted != 1 {
		t.Errorf("DaysCompleted = %d, want 1", out.Subject.DaysCompleted)
	}
	if out.Event != EventNone {
		t.Errorf("Event = %v, want EventNone", out.Event)
	}
	if len(out.Subject.Sessions) != 1 {
		t.Fatalf("Sessions length = %d, want 1", len(out.Subject.Sessions))
	}
	sess := out.Subject.Sessions[0]
	if !sess.MeetsRequirement {
		t.Error("session should be marked as meeting the requirement")
	}
	if sess.Date != "2025-03-01" {
		t.Errorf("session date = %q", sess.Date)
	}
	if sess.ID == "" {
		t.Error("session should get a generated id")
	}
}

func TestConsecutiveDayContinuesStreak(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 20, 5).Subject

	out := mustLog(t, s, "2025-03-02", 20, 5)

	if out.Subject.Streak != 2 {
		t.Errorf("Streak = %d, want 2", out.Subject.Streak)
	}
	if out.Subject.DaysCompleted != 2 {
		t.Errorf("DaysCompleted = %d, want 2", out.Subject.DaysCompleted)
	}
	if out.Event != EventNone {
		t.Errorf("Event = %v, want EventNone", out.Event)
	}
}

func TestGapResetsStreakToOne(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 20, 5).Subject
	s = mustLog(t, s, "2025-03-02", 20, 5).Subject

	// Two-day gap.
	out := mustLog(t, s, "2025-03-05", 20, 5)

	if out.Subject.Streak != 1 {
		t.Errorf("Streak = %d, want 1", out.Subject.Streak)
	}
	if out.Subject.DaysCompleted != 1 {
		t.Errorf("DaysCompleted = %d, want 1", out.Subject.DaysCompleted)
	}
	if out.Event != EventStreakReset {
		t.Errorf("Event = %v, want EventStreakReset", out.Event)
	}
}

func TestMonthBoundaryCountsAsAdjacent(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-01-31", 20, 5).Subject

	out := mustLog(t, s, "2025-02-01", 20, 5)
	if out.Subject.Streak != 2 {
		t.Errorf("Streak across month boundary = %d, want 2", out.Subject.Streak)
	}
}

func TestYearBoundaryCountsAsAdjacent(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2024-12-31", 20, 5).Subject

	out := mustLog(t, s, "2025-01-01", 20, 5)
	if out.Subject.Streak != 2 {
		t.Errorf("Streak across year boundary = %d, want 2", out.Subject.Streak)
	}
}

func TestLevelUpRollsOverDaysCompleted(t *testing.T) {
	s := newSubject(t, "Japanese")
	// Level 1 requires 15 consecutive days. Complete 14.
	s.Streak = 14
	s.DaysCompleted = 14
	s.Sessions = []subject.Session{
		{ID: "prev", Date: "2025-03-14", InputMinutes: 20, OutputMinutes: 5, MeetsRequirement: true},
	}

	out := mustLog(t, s, "2025-03-15", 20, 5)

	if out.Event != EventLevelUp {
		t.Fatalf("Event = %v, want EventLevelUp", out.Event)
	}
	if out.NewLevel != 2 {
		t.Errorf("NewLevel = %d, want 2", out.NewLevel)
	}
	if out.Subject.Level != 2 {
		t.Errorf("Level = %d, want 2", out.Subject.Level)
	}
	if out.Subject.DaysCompleted != 0 {
		t.Errorf("DaysCompleted = %d, want 0 after rollover", out.Subject.DaysCompleted)
	}
	// Streak is untouched by the rollover.
	if out.Subject.Streak != 15 {
		t.Errorf("Streak = %d, want 15", out.Subject.Streak)
	}
}

func TestDaysCompletedStaysBelowRequiredDays(t *testing.T) {
	s := newSubject(t, "Japanese")
	date := func(day int) string {
		return fmt.Sprintf("2025-03-%02d", day)
	}

	// 20 consecutive qualifying days spanning the level-1 threshold.
	for day := 1; day <= 20; day++ {
		out := mustLog(t, s, date(day), 80, 30)
		s = out.Subject
		cfgDays := 15
		if s.Level >= 2 {
			cfgDays = 30
		}
		if s.DaysCompleted >= cfgDays {
			t.Fatalf("day %d: DaysCompleted = %d, must stay below %d", day, s.DaysCompleted, cfgDays)
		}
	}
	if s.Level != 2 {
		t.Errorf("Level after 20 days = %d, want 2", s.Level)
	}
	if s.Streak != 20 {
		t.Errorf("Streak after 20 days = %d, want 20", s.Streak)
	}
	if s.DaysCompleted != 5 {
		t.Errorf("DaysCompleted = %d, want 5", s.DaysCompleted)
	}
}

func TestNonQualifyingSessionAppendsWithoutProgress(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 20, 5).Subject

	out := mustLog(t, s, "2025-03-02", 5, 0)

	if out.Subject.Streak != 1 {
		t.Errorf("Streak = %d, want 1 (unchanged)", out.Subject.Streak)
	}
	if out.Subject.DaysCompleted != 1 {
		t.Errorf("DaysCompleted = %d, want 1 (unchanged)", out.Subject.DaysCompleted)
	}
	if out.Event != EventNone {
		t.Errorf("Event = %v, want EventNone", out.Event)
	}
	if len(out.Subject.Sessions) != 2 {
		t.Fatalf("Sessions length = %d, want 2 (append is unconditional)", len(out.Subject.Sessions))
	}
	if out.Subject.Sessions[1].MeetsRequirement {
		t.Error("failing session should be recorded with MeetsRequirement=false")
	}
}

func TestSecondLogSameDayNeverTouchesProgression(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 20, 5).Subject

	// Qualifying second log on the same day.
	out := mustLog(t, s, "2025-03-01", 90, 30)
	if out.Subject.Streak != 1 || out.Subject.DaysCompleted != 1 || out.Subject.Level != 1 {
		t.Errorf("same-day qualifying log changed progression: %+v", out.Subject)
	}
	if out.Event != EventNone {
		t.Errorf("Event = %v, want EventNone", out.Event)
	}
	if len(out.Subject.Sessions) != 2 {
		t.Errorf("Sessions length = %d, want 2", len(out.Subject.Sessions))
	}

	// Non-qualifying third log on the same day.
	out = mustLog(t, out.Subject, "2025-03-01", 1, 0)
	if out.Subject.Streak != 1 || out.Subject.DaysCompleted != 1 {
		t.Errorf("same-day non-qualifying log changed progression: %+v", out.Subject)
	}
	if len(out.Subject.Sessions) != 3 {
		t.Errorf("Sessions length = %d, want 3", len(out.Subject.Sessions))
	}
}

func TestFailedSessionTodayBlocksLaterQualifyingLog(t *testing.T) {
	// A non-qualifying morning log still marks the date as logged, so a
	// qualifying evening log cannot earn the streak day.
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 1, 0).Subject

	out := mustLog(t, s, "2025-03-01", 90, 30)
	if out.Subject.Streak != 0 {
		t.Errorf("Streak = %d, want 0", out.Subject.Streak)
	}
	if out.Event != EventNone {
		t.Errorf("Event = %v, want EventNone", out.Event)
	}
}

func TestQualifyingAfterGapFromFailedSessions(t *testing.T) {
	// The adjacency check looks at the last appended session's date,
	// qualifying or not. A failed session yesterday keeps continuity
	// alive for today's qualifying log.
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 20, 5).Subject
	s = mustLog(t, s, "2025-03-02", 1, 0).Subject // failed, still dated yesterday

	out := mustLog(t, s, "2025-03-03", 20, 5)
	if out.Subject.Streak != 2 {
		t.Errorf("Streak = %d, want 2", out.Subject.Streak)
	}
	if out.Event != EventNone {
		t.Errorf("Event = %v, want EventNone", out.Event)
	}
}

func TestLogSessionIsPure(t *testing.T) {
	s := newSubject(t, "Japanese")
	s = mustLog(t, s, "2025-03-01", 20, 5).Subject
	snapshot := s.Clone()

	mustLog(t, s, "2025-03-02", 20, 5)

	if s.Streak != snapshot.Streak || len(s.Sessions) != len(snapshot.Sessions) {
		t.Error("LogSession mutated its input subject")
	}
}

func TestNegativeMinutesRejected(t *testing.T) {
	s := newSubject(t, "Japanese")
	if _, err := LogSession(s, "2025-03-01", -1, 5); !errors.Is(err, subject.ErrInvalidMinutes) {
		t.Errorf("negative input error = %v, want ErrInvalidMinutes", err)
	}
	if _, err := LogSession(s, "2025-03-01", 5, -1); !errors.Is(err, subject.ErrInvalidMinutes) {
		t.Errorf("negative output error = %v, want ErrInvalidMinutes", err)
	}
}

func TestMalformedDateRejected(t *testing.T) {
	s := newSubject(t, "Japanese")
	if _, err := LogSession(s, "03/01/2025", 20, 5); err == nil {
		t.Error("expected error for malformed date")
	}
}
