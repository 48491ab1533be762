// Package progress implements the streak and level progression rules.
//
// A subject earns streak days by logging one qualifying session per
// calendar day. Consecutive qualifying days grow the streak and count
// toward the level's required days; a gap resets the streak; reaching
// the required days rolls the subject over to the next level. Each log
// call is a pure function from old subject state to new subject state.
package progress

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ashwin/studytrack/internal/levels"
	"github.com/ashwin/studytrack/internal/subject"
)

// Event is the progression side effect of a log call, surfaced so the
// caller can notify the user. At most one fires per call.
type Event int

const (
	// EventNone: the session was appended without touching
	// streak/level state.
	EventNone Event = iota

	// EventLevelUp: the session completed the level's required days.
	EventLevelUp

	// EventStreakReset: the session qualified but broke continuity,
	// restarting the streak at 1.
	EventStreakReset
)

// Outcome is the result of logging a session.
type Outcome struct {
	Subject  subject.Subject
	Session  subject.Session
	Event    Event
	NewLevel int // populated when Event is EventLevelUp
}

// LogSession applies one logged session to a subject and returns the
// updated subject state.
//
// The session is always appended to the history, qualifying or not.
// Streak, days-completed, and level only move when the session meets
// the level requirement AND it is the first log on today's date: later
// same-day logs are recorded but never recompute progression state.
// Continuity is calendar-based — the previous session must be dated
// exactly one day before today — not based on session count.
func LogSession(s subject.Subject, today string, inputMinutes, outputMinutes int) (Outcome, error) {
	if inputMinutes < 0 || outputMinutes < 0 {
		return Outcome{}, subject.ErrInvalidMinutes
	}
	if _, err := time.Parse(subject.DateLayout, today); err != nil {
		return Outcome{}, fmt.Errorf("parse date %q: %w", today, err)
	}

	meets := subject.MeetsRequirement(s.Level, inputMinutes, outputMinutes)
	alreadyLoggedToday := s.LoggedOn(today)

	out := Outcome{Subject: s.Clone(), Event: EventNone}
	upd := &out.Subject

	if meets && !alreadyLoggedToday {
		last := upd.LastSessionDate()
		if last == "" || isDayBefore(last, today) {
			// Streak continues or starts.
			upd.Streak++
			upd.DaysCompleted++
			if upd.DaysCompleted >= levels.Config(upd.Level).RequiredDays {
				upd.Level++
				upd.DaysCompleted = 0
				out.Event = EventLevelUp
				out.NewLevel = upd.Level
			}
		} else {
			// Continuity broken: restart from this session.
			upd.Streak = 1
			upd.DaysCompleted = 1
			out.Event = EventStreakReset
		}
	}

	out.Session = subject.Session{
		ID:               uuid.NewString(),
		Date:             today,
		InputMinutes:     inputMinutes,
		OutputMinutes:    outputMinutes,
		MeetsRequirement: meets,
	}
	upd.Sessions = append(upd.Sessions, out.Session)

	return out, nil
}

// isDayBefore reports whether a is the calendar day immediately before
// b. Unparseable dates break continuity rather than erroring.
func isDayBefore(a, b string) bool {
	ta, err := time.Parse(subject.DateLayout, a)
	if err != nil {
		return false
	}
	return ta.AddDate(0, 0, 1).Format(subject.DateLayout) == b
}
