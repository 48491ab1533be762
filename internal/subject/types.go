package subject

// DateLayout is the calendar-date format used throughout: an ISO date
// with no time component. Sessions on the same DateLayout string count
// as the same day regardless of when they were logged.
const DateLayout = "2006-01-02"

// Session is one logged study event. Immutable once created; owned
// exclusively by its parent Subject.
type Session struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	InputMinutes     int    `json:"inputMinutes"`
	OutputMinutes    int    `json:"outputMinutes"`
	MeetsRequirement bool   `json:"meetsRequirement"`
}

// TotalMinutes returns the combined input and output minutes.
func (s Session) TotalMinutes() int {
	return s.InputMinutes + s.OutputMinutes
}

// Subject is a tracked study topic with its own level, streak, and
// session history. Sessions are append-only in insertion order.
type Subject struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Level         int       `json:"level"`
	Streak        int       `json:"streak"`
	DaysCompleted int       `json:"daysCompleted"`
	Sessions      []Session `json:"sessions"`
	IsArchived    bool      `json:"isArchived"`
}

// TotalMinutes sums input and output minutes across all sessions.
func (s Subject) TotalMinutes() int {
	total := 0
	for _, sess := range s.Sessions {
		total += sess.TotalMinutes()
	}
	return total
}

// LoggedOn reports whether any session was logged on the given date.
func (s Subject) LoggedOn(date string) bool {
	for _, sess := range s.Sessions {
		if sess.Date == date {
			return true
		}
	}
	return false
}

// CompletedOn reports whether a qualifying session was logged on the
// given date.
func (s Subject) CompletedOn(date string) bool {
	for _, sess := range s.Sessions {
		if sess.Date == date && sess.MeetsRequirement {
			return true
		}
	}
	return false
}

// LastSessionDate returns the date of the most recently appended
// session, or "" if the subject has no sessions.
func (s Subject) LastSessionDate() string {
	if len(s.Sessions) == 0 {
		return ""
	}
	return s.Sessions[len(s.Sessions)-1].Date
}

// Clone returns a deep copy of the subject. The progression engine
// works on copies so a log call is a pure old-state to new-state
// function rather than an in-place mutation.
func (s Subject) Clone() Subject {
	out := s
	out.Sessions = make([]Session, len(s.Sessions))
	copy(out.Sessions, s.Sessions)
	return out
}
