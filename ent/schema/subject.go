package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject is a tracked study topic with its progression state.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			NotEmpty().
			Comment("Stable UUID exposed to the domain layer"),
		field.String("name").
			NotEmpty().
			Comment("User-visible subject name"),
		field.Int("level").
			Default(1).
			Comment("Current level, clamped to the catalog on read"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive qualifying days ending at the last qualifying session"),
		field.Int("days_completed").
			Default(0).
			Comment("Qualifying days counted toward the current level"),
		field.Bool("is_archived").
			Default(false).
			Comment("Soft-delete flag; archived subjects keep their history"),
		field.Int("position").
			Comment("Insertion order within the collection"),
	}
}

func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", StudySession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)).
			Comment("Sessions owned exclusively by this subject"),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uid"),
		index.Fields("position"),
	}
}
