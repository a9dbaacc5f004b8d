// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rajat/learnhub/ent/attemptevent"
	"github.com/rajat/learnhub/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AttemptEventUpdate) SetQuizID(v string) *AttemptEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuizID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *AttemptEventUpdate) SetQuizTitle(v string) *AttemptEventUpdate {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuizTitle(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AttemptEventUpdate) SetSubject(v string) *AttemptEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubject(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *AttemptEventUpdate) SetTotal(v int) *AttemptEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTotal(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AttemptEventUpdate) AddTotal(v int) *AttemptEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v int) *AttemptEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AttemptEventUpdate) AddCorrect(v int) *AttemptEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *AttemptEventUpdate) SetAccuracy(v int) *AttemptEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAccuracy(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *AttemptEventUpdate) AddAccuracy(v int) *AttemptEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *AttemptEventUpdate) SetTakenAt(v time.Time) *AttemptEventUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTakenAt(v *time.Time) *AttemptEventUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetReported sets the "reported" field.
func (_u *AttemptEventUpdate) SetReported(v bool) *AttemptEventUpdate {
	_u.mutation.SetReported(v)
	return _u
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableReported(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetReported(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := attemptevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizTitle(); ok {
		if err := attemptevent.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.quiz_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := attemptevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := attemptevent.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.correct": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(attemptevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(attemptevent.FieldQuizTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(attemptevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(attemptevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(attemptevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(attemptevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(attemptevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(attemptevent.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reported(); ok {
		_spec.SetField(attemptevent.FieldReported, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AttemptEventUpdateOne) SetQuizID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuizID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *AttemptEventUpdateOne) SetQuizTitle(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuizTitle(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AttemptEventUpdateOne) SetSubject(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubject(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *AttemptEventUpdateOne) SetTotal(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTotal(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *AttemptEventUpdateOne) AddTotal(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AttemptEventUpdateOne) AddCorrect(v int) *AttemptEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *AttemptEventUpdateOne) SetAccuracy(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAccuracy(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *AttemptEventUpdateOne) AddAccuracy(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *AttemptEventUpdateOne) SetTakenAt(v time.Time) *AttemptEventUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTakenAt(v *time.Time) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetReported sets the "reported" field.
func (_u *AttemptEventUpdateOne) SetReported(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetReported(v)
	return _u
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableReported(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetReported(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := attemptevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizTitle(); ok {
		if err := attemptevent.QuizTitleValidator(v); err != nil {
			return &ValidationError{Name: "quiz_title", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.quiz_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := attemptevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := attemptevent.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.correct": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(attemptevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(attemptevent.FieldQuizTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(attemptevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(attemptevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(attemptevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(attemptevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(attemptevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(attemptevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(attemptevent.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reported(); ok {
		_spec.SetField(attemptevent.FieldReported, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
