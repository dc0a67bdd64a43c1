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
	"github.com/mnemonic-nexus/mnx/ent/outboxentry"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// OutboxEntryUpdate is the builder for updating OutboxEntry entities.
type OutboxEntryUpdate struct {
	config
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// Where appends a list predicates to the OutboxEntryUpdate builder.
func (_u *OutboxEntryUpdate) Where(ps ...predicate.OutboxEntry) *OutboxEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *OutboxEntryUpdate) SetPublishedAt(v time.Time) *OutboxEntryUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillablePublishedAt(v *time.Time) *OutboxEntryUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *OutboxEntryUpdate) ClearPublishedAt() *OutboxEntryUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboxEntryUpdate) SetAttempts(v int) *OutboxEntryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableAttempts(v *int) *OutboxEntryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboxEntryUpdate) AddAttempts(v int) *OutboxEntryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboxEntryUpdate) SetLastError(v string) *OutboxEntryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableLastError(v *string) *OutboxEntryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboxEntryUpdate) ClearLastError() *OutboxEntryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *OutboxEntryUpdate) SetNextRetryAt(v time.Time) *OutboxEntryUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *OutboxEntryUpdate) SetNillableNextRetryAt(v *time.Time) *OutboxEntryUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *OutboxEntryUpdate) ClearNextRetryAt() *OutboxEntryUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_u *OutboxEntryUpdate) Mutation() *OutboxEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutboxEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutboxEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OutboxEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(outboxentry.Table, outboxentry.Columns, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(outboxentry.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(outboxentry.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboxentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboxentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(outboxentry.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(outboxentry.FieldNextRetryAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutboxEntryUpdateOne is the builder for updating a single OutboxEntry entity.
type OutboxEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutboxEntryMutation
}

// SetPublishedAt sets the "published_at" field.
func (_u *OutboxEntryUpdateOne) SetPublishedAt(v time.Time) *OutboxEntryUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillablePublishedAt(v *time.Time) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *OutboxEntryUpdateOne) ClearPublishedAt() *OutboxEntryUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OutboxEntryUpdateOne) SetAttempts(v int) *OutboxEntryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableAttempts(v *int) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OutboxEntryUpdateOne) AddAttempts(v int) *OutboxEntryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OutboxEntryUpdateOne) SetLastError(v string) *OutboxEntryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableLastError(v *string) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OutboxEntryUpdateOne) ClearLastError() *OutboxEntryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *OutboxEntryUpdateOne) SetNextRetryAt(v time.Time) *OutboxEntryUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *OutboxEntryUpdateOne) SetNillableNextRetryAt(v *time.Time) *OutboxEntryUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *OutboxEntryUpdateOne) ClearNextRetryAt() *OutboxEntryUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_u *OutboxEntryUpdateOne) Mutation() *OutboxEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutboxEntryUpdate builder.
func (_u *OutboxEntryUpdateOne) Where(ps ...predicate.OutboxEntry) *OutboxEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutboxEntryUpdateOne) Select(field string, fields ...string) *OutboxEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutboxEntry entity.
func (_u *OutboxEntryUpdateOne) Save(ctx context.Context) (*OutboxEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutboxEntryUpdateOne) SaveX(ctx context.Context) *OutboxEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutboxEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutboxEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OutboxEntryUpdateOne) sqlSave(ctx context.Context) (_node *OutboxEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(outboxentry.Table, outboxentry.Columns, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutboxEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outboxentry.FieldID)
		for _, f := range fields {
			if !outboxentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outboxentry.FieldID {
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
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(outboxentry.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(outboxentry.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(outboxentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(outboxentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(outboxentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(outboxentry.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(outboxentry.FieldNextRetryAt, field.TypeTime)
	}
	_node = &OutboxEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outboxentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
