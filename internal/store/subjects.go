package store

import (
	"context"
	"fmt"

	"github.com/ashwin/studytrack/ent"
	"github.com/ashwin/studytrack/ent/studysession"
	entsubject "github.com/ashwin/studytrack/ent/subject"
	"github.com/ashwin/studytrack/internal/subject"
)

// SubjectRepo persists the subject collection. The engine treats the
// whole collection as the unit of persistence: Load returns everything,
// Save replaces everything. An empty collection is persisted like any
// other; skipping the write would let deleted subjects resurrect from
// stale storage on the next load.
type SubjectRepo interface {
	// Load returns the full subject collection in insertion order, or
	// an empty collection when nothing is persisted.
	Load(ctx context.Context) ([]subject.Subject, error)

	// Save replaces the persisted collection with subjects.
	Save(ctx context.Context, subjects []subject.Subject) error
}

// subjectRepo implements SubjectRepo using the ent client.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Load(ctx context.Context) ([]subject.Subject, error) {
	rows, err := r.client.Subject.Query().
		Order(ent.Asc(entsubject.FieldPosition)).
		WithSessions(func(q *ent.StudySessionQuery) {
			q.Order(ent.Asc(studysession.FieldPosition))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w: %w", ErrStorageUnavailable, err)
	}

	subjects := make([]subject.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, entToSubject(row))
	}
	return subjects, nil
}

func (r *subjectRepo) Save(ctx context.Context, subjects []subject.Subject) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w: %w", ErrStorageUnavailable, err)
	}

	if err := replaceAll(ctx, tx, subjects); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// replaceAll wipes the persisted collection and writes subjects in
// order. Sessions are deleted first so the subject cascade never races
// the foreign key check.
func replaceAll(ctx context.Context, tx *ent.Tx, subjects []subject.Subject) error {
	if _, err := tx.StudySession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear sessions: %w: %w", ErrStorageUnavailable, err)
	}
	if _, err := tx.Subject.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear subjects: %w: %w", ErrStorageUnavailable, err)
	}

	for pos, s := range subjects {
		row, err := tx.Subject.Create().
			SetUID(s.ID).
			SetName(s.Name).
			SetLevel(s.Level).
			SetStreak(s.Streak).
			SetDaysCompleted(s.DaysCompleted).
			SetIsArchived(s.IsArchived).
			SetPosition(pos).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save subject %q: %w: %w", s.Name, ErrStorageUnavailable, err)
		}

		builders := make([]*ent.StudySessionCreate, 0, len(s.Sessions))
		for i, sess := range s.Sessions {
			builders = append(builders, tx.StudySession.Create().
				SetUID(sess.ID).
				SetDate(sess.Date).
				SetInputMinutes(sess.InputMinutes).
				SetOutputMinutes(sess.OutputMinutes).
				SetMeetsRequirement(sess.MeetsRequirement).
				SetPosition(i).
				SetSubject(row))
		}
		if len(builders) > 0 {
			if _, err := tx.StudySession.CreateBulk(builders...).Save(ctx); err != nil {
				return fmt.Errorf("save sessions for %q: %w: %w", s.Name, ErrStorageUnavailable, err)
			}
		}
	}
	return nil
}

// entToSubject converts an ent Subject row (with loaded sessions) to
// the domain type.
func entToSubject(row *ent.Subject) subject.Subject {
	s := subject.Subject{
		ID:            row.UID,
		Name:          row.Name,
		Level:         row.Level,
		Streak:        row.Streak,
		DaysCompleted: row.DaysCompleted,
		IsArchived:    row.IsArchived,
		Sessions:      []subject.Session{},
	}
	for _, sess := range row.Edges.Sessions {
		s.Sessions = append(s.Sessions, subject.Session{
			ID:               sess.UID,
			Date:             sess.Date,
			InputMinutes:     sess.InputMinutes,
			OutputMinutes:    sess.OutputMinutes,
			MeetsRequirement: sess.MeetsRequirement,
		})
	}
	return s
}
