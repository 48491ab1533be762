package activity

import (
	"testing"

	"github.com/ashwin/studytrack/internal/subject"
)

func sess(date string, input, output int) subject.Session {
	return subject.Session{
		ID:            date + "-test",
		Date:          date,
		InputMinutes:  input,
		OutputMinutes: output,
	}
}

func TestAggregateSharedDay(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", Sessions: []subject.Session{sess("2025-01-15", 30, 15)}},
		{ID: "b", Name: "Physics", Sessions: []subject.Session{sess("2025-01-15", 60, 30)}},
	}

	years := Aggregate(subjects)
	ya := years[2025]
	if ya == nil {
		t.Fatal("expected 2025 activity")
	}
	bucket := ya.Days["2025-01-15"]
	if bucket == nil {
		t.Fatal("expected bucket for 2025-01-15")
	}
	if bucket.TotalMinutes != 135 {
		t.Errorf("TotalMinutes = %d, want 135", bucket.TotalMinutes)
	}
	if len(bucket.Contributions) != 2 {
		t.Fatalf("Contributions length = %d, want 2", len(bucket.Contributions))
	}
	if bucket.Contributions[0].SubjectName != "Math" || bucket.Contributions[1].SubjectName != "Physics" {
		t.Errorf("unexpected contribution order: %+v", bucket.Contributions)
	}
	if ya.MaxMinutes != 135 {
		t.Errorf("MaxMinutes = %d, want 135", ya.MaxMinutes)
	}
	if !ya.HasActivity {
		t.Error("HasActivity should be true")
	}
}

func TestAggregateDensePreallocation(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", Sessions: []subject.Session{sess("2025-06-01", 10, 5)}},
	}

	ya := Aggregate(subjects)[2025]
	if len(ya.Days) != 365 {
		t.Errorf("2025 day count = %d, want 365", len(ya.Days))
	}
	// Untouched days exist with zeroed buckets.
	empty := ya.Days["2025-12-25"]
	if empty == nil {
		t.Fatal("expected a bucket for an inactive day")
	}
	if empty.TotalMinutes != 0 || len(empty.Contributions) != 0 {
		t.Errorf("inactive day bucket not zeroed: %+v", empty)
	}
}

func TestAggregateLeapYear(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", Sessions: []subject.Session{sess("2024-02-29", 10, 5)}},
	}

	ya := Aggregate(subjects)[2024]
	if len(ya.Days) != 366 {
		t.Errorf("2024 day count = %d, want 366", len(ya.Days))
	}
	if ya.Days["2024-02-29"].TotalMinutes != 15 {
		t.Error("leap day session not bucketed")
	}
}

func TestAggregateIncludesArchivedSubjects(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", IsArchived: true, Sessions: []subject.Session{sess("2025-01-15", 30, 15)}},
	}

	ya := Aggregate(subjects)[2025]
	if ya == nil || ya.Days["2025-01-15"].TotalMinutes != 45 {
		t.Error("archived subject's history must count toward activity")
	}
}

func TestAggregateSkipsMalformedDates(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", Sessions: []subject.Session{
			sess("not-a-date", 30, 15),
			sess("2025-01-15", 10, 5),
		}},
	}

	years := Aggregate(subjects)
	if len(years) != 1 {
		t.Fatalf("year count = %d, want 1", len(years))
	}
	if years[2025].Days["2025-01-15"].TotalMinutes != 15 {
		t.Error("valid session should still be bucketed")
	}
}

func TestAggregateMultipleYears(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", Sessions: []subject.Session{
			sess("2024-12-31", 30, 0),
			sess("2025-01-01", 45, 15),
		}},
	}

	years := Aggregate(subjects)
	if len(years) != 2 {
		t.Fatalf("year count = %d, want 2", len(years))
	}
	if years[2024].MaxMinutes != 30 {
		t.Errorf("2024 MaxMinutes = %d, want 30", years[2024].MaxMinutes)
	}
	if years[2025].MaxMinutes != 60 {
		t.Errorf("2025 MaxMinutes = %d, want 60", years[2025].MaxMinutes)
	}
}

func TestActiveYearsSortedDescending(t *testing.T) {
	subjects := []subject.Subject{
		{ID: "a", Name: "Math", Sessions: []subject.Session{
			sess("2023-05-01", 10, 5),
			sess("2025-05-01", 10, 5),
			sess("2024-05-01", 10, 5),
		}},
	}

	got := ActiveYears(Aggregate(subjects))
	want := []int{2025, 2024, 2023}
	if len(got) != len(want) {
		t.Fatalf("ActiveYears = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ActiveYears = %v, want %v", got, want)
		}
	}
}

func TestActiveYearsEmptyCollection(t *testing.T) {
	if got := ActiveYears(Aggregate(nil)); len(got) != 0 {
		t.Errorf("ActiveYears of empty collection = %v, want none", got)
	}
}

func TestColorBucket(t *testing.T) {
	tests := []struct {
		minutes int
		max     int
		want    int
	}{
		{0, 100, 0},
		{50, 0, 0},
		{0, 0, 0},
		{100, 100, 5},
		{1, 100, 1},
		{20, 100, 1},
		{21, 100, 2},
		{40, 100, 2},
		{41, 100, 3},
		{60, 100, 3},
		{80, 100, 4},
		{99, 100, 5},
		{7, 7, 5},
	}

	for _, tt := range tests {
		if got := ColorBucket(tt.minutes, tt.max); got != tt.want {
			t.Errorf("ColorBucket(%d, %d) = %d, want %d", tt.minutes, tt.max, got, tt.want)
		}
	}
}
