package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one submitted quiz attempt. Appended on every
// submission whether or not the progress report reached the backend,
// so local history survives offline sessions.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID for this attempt"),
		field.String("quiz_id").
			NotEmpty().
			Comment("Quiz the attempt ran against"),
		field.String("quiz_title").
			NotEmpty().
			Comment("Normalized quiz title at submit time"),
		field.String("subject").
			Default("General").
			Comment("Quiz subject label"),
		field.Int("total").
			NonNegative().
			Comment("Question count"),
		field.Int("correct").
			NonNegative().
			Comment("Correct answers"),
		field.Int("accuracy").
			Comment("Rounded percentage, 0-100"),
		field.Time("taken_at").
			Comment("Submit time"),
		field.Bool("reported").
			Default(false).
			Comment("Whether the progress POST succeeded"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("taken_at"),
	}
}
