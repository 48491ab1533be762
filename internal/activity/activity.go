// Package activity builds the calendar heat-map data: per-day study
// minutes bucketed by year, recomputed from the full subject collection
// on every call. Nothing here is persisted or updated incrementally.
package activity

import (
	"sort"
	"time"

	"github.com/ashwin/studytrack/internal/subject"
)

// Contribution records one session's share of a day's total.
type Contribution struct {
	SubjectName   string
	InputMinutes  int
	OutputMinutes int
}

// DayBucket aggregates all sessions logged on one calendar date.
type DayBucket struct {
	TotalMinutes  int
	Contributions []Contribution
}

// YearActivity holds a full year of day buckets. Days maps every date
// of the year (Jan 1 through Dec 31) to a bucket, including days with
// zero activity, so callers can render a dense calendar grid.
type YearActivity struct {
	Year        int
	Days        map[string]*DayBucket
	MaxMinutes  int
	HasActivity bool
}

// Aggregate buckets every session of every subject by year and day.
// Archived subjects are included: activity reflects historical fact
// regardless of current archive state. Sessions whose dates fail to
// parse are skipped.
func Aggregate(subjects []subject.Subject) map[int]*YearActivity {
	years := make(map[int]*YearActivity)

	// First pass: pre-populate a dense day map for every year touched.
	for _, sub := range subjects {
		for _, sess := range sub.Sessions {
			d, err := time.Parse(subject.DateLayout, sess.Date)
			if err != nil {
				continue
			}
			if _, ok := years[d.Year()]; !ok {
				years[d.Year()] = newYearActivity(d.Year())
			}
		}
	}

	// Second pass: fill buckets and track per-year maxima.
	for _, sub := range subjects {
		for _, sess := range sub.Sessions {
			d, err := time.Parse(subject.DateLayout, sess.Date)
			if err != nil {
				continue
			}
			ya := years[d.Year()]
			bucket, ok := ya.Days[sess.Date]
			if !ok {
				continue
			}
			bucket.TotalMinutes += sess.TotalMinutes()
			bucket.Contributions = append(bucket.Contributions, Contribution{
				SubjectName:   sub.Name,
				InputMinutes:  sess.InputMinutes,
				OutputMinutes: sess.OutputMinutes,
			})
			ya.HasActivity = true
			if bucket.TotalMinutes > ya.MaxMinutes {
				ya.MaxMinutes = bucket.TotalMinutes
			}
		}
	}

	return years
}

// ActiveYears returns the years with activity, newest first.
func ActiveYears(years map[int]*YearActivity) []int {
	var out []int
	for y, ya := range years {
		if ya.HasActivity {
			out = append(out, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// ColorBucket maps a day's minutes to a heat intensity in [0,5]:
// 0 for no activity, otherwise ceil(minutes/maxMinutes*5) clamped to
// [1,5].
func ColorBucket(minutes, maxMinutes int) int {
	if minutes == 0 || maxMinutes == 0 {
		return 0
	}
	level := (minutes*5 + maxMinutes - 1) / maxMinutes // integer ceil
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return level
}

// newYearActivity allocates a YearActivity with one zeroed bucket per
// calendar day of the year.
func newYearActivity(year int) *YearActivity {
	ya := &YearActivity{
		Year: year,
		Days: make(map[string]*DayBucket, 366),
	}
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Year() == year {
		ya.Days[d.Format(subject.DateLayout)] = &DayBucket{}
		d = d.AddDate(0, 0, 1)
	}
	return ya
}
