package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is one logged study event. Rows are append-only and
// immutable once written; they are only ever removed together with
// their subject.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			NotEmpty().
			Comment("Stable UUID exposed to the domain layer"),
		field.String("date").
			NotEmpty().
			Comment("ISO calendar date (YYYY-MM-DD), no time component"),
		field.Int("input_minutes").
			Default(0).
			Comment("Minutes of input practice (reading, listening)"),
		field.Int("output_minutes").
			Default(0).
			Comment("Minutes of output practice (writing, speaking)"),
		field.Bool("meets_requirement").
			Default(false).
			Comment("Whether the session satisfied the level requirement when logged"),
		field.Int("position").
			Comment("Append order within the subject's history"),
	}
}

func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("sessions").
			Unique().
			Required(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
		index.Fields("position"),
	}
}
