package subject

import (
	"strings"

	"github.com/google/uuid"
)

// New creates a subject at level 1 with no history. Returns
// ErrEmptyName if the name is empty or whitespace-only.
func New(name string) (Subject, error) {
	if strings.TrimSpace(name) == "" {
		return Subject{}, ErrEmptyName
	}
	return Subject{
		ID:            uuid.NewString(),
		Name:          name,
		Level:         1,
		Streak:        0,
		DaysCompleted: 0,
		Sessions:      []Session{},
		IsArchived:    false,
	}, nil
}

// Add appends a newly created subject to the collection.
func Add(subjects []Subject, name string) ([]Subject, Subject, error) {
	s, err := New(name)
	if err != nil {
		return subjects, Subject{}, err
	}
	return append(subjects, s), s, nil
}

// Archive soft-deletes the subject with the given id: the subject stays
// in the collection (and in activity history) but leaves the active
// list. Reports whether anything changed; an unknown id is a no-op.
func Archive(subjects []Subject, id string) ([]Subject, bool) {
	for i := range subjects {
		if subjects[i].ID == id {
			changed := !subjects[i].IsArchived
			subjects[i].IsArchived = true
			return subjects, changed
		}
	}
	return subjects, false
}

// Delete removes the subject and all its sessions. Irreversible.
// Reports whether anything changed; an unknown id is a no-op.
func Delete(subjects []Subject, id string) ([]Subject, bool) {
	for i := range subjects {
		if subjects[i].ID == id {
			return append(subjects[:i:i], subjects[i+1:]...), true
		}
	}
	return subjects, false
}

// Active returns the subjects not archived.
func Active(subjects []Subject) []Subject {
	var out []Subject
	for _, s := range subjects {
		if !s.IsArchived {
			out = append(out, s)
		}
	}
	return out
}

// Archived returns the archived subjects.
func Archived(subjects []Subject) []Subject {
	var out []Subject
	for _, s := range subjects {
		if s.IsArchived {
			out = append(out, s)
		}
	}
	return out
}

// Find locates a subject by exact id, exact name, or unique name
// prefix, in that order. Returns ErrNotFound when nothing matches or a
// prefix is ambiguous.
func Find(subjects []Subject, key string) (Subject, error) {
	for _, s := range subjects {
		if s.ID == key {
			return s, nil
		}
	}
	for _, s := range subjects {
		if strings.EqualFold(s.Name, key) {
			return s, nil
		}
	}
	var match Subject
	found := 0
	for _, s := range subjects {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(key)) {
			match = s
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	return Subject{}, ErrNotFound
}

// Replace swaps the subject with the same id for updated. Reports
// whether a replacement happened.
func Replace(subjects []Subject, updated Subject) ([]Subject, bool) {
	for i := range subjects {
		if subjects[i].ID == updated.ID {
			subjects[i] = updated
			return subjects, true
		}
	}
	return subjects, false
}
