package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Student is the locally persisted identity record: an opaque id and
// display name read once at session start, plus the API token. At
// most one row exists; logout deletes it.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Unique().
			Comment("Backend-assigned student id, opaque to the client"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("token").
			Optional().
			Sensitive().
			Comment("Bearer token for the portal API"),
		field.Time("logged_in_at").
			Default(time.Now).
			Comment("When the record was stored"),
	}
}
