// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
	"github.com/mnemonic-nexus/mnx/ent/worldevent"
)

// WorldEventUpdate is the builder for updating WorldEvent entities.
type WorldEventUpdate struct {
	config
	hooks    []Hook
	mutation *WorldEventMutation
}

// Where appends a list predicates to the WorldEventUpdate builder.
func (_u *WorldEventUpdate) Where(ps ...predicate.WorldEvent) *WorldEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the WorldEventMutation object of the builder.
func (_u *WorldEventUpdate) Mutation() *WorldEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorldEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorldEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorldEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(worldevent.Table, worldevent.Columns, sqlgraph.NewFieldSpec(worldevent.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OccurredAtCleared() {
		_spec.ClearField(worldevent.FieldOccurredAt, field.TypeTime)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(worldevent.FieldIdempotencyKey, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worldevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorldEventUpdateOne is the builder for updating a single WorldEvent entity.
type WorldEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorldEventMutation
}

// Mutation returns the WorldEventMutation object of the builder.
func (_u *WorldEventUpdateOne) Mutation() *WorldEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorldEventUpdate builder.
func (_u *WorldEventUpdateOne) Where(ps ...predicate.WorldEvent) *WorldEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorldEventUpdateOne) Select(field string, fields ...string) *WorldEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorldEvent entity.
func (_u *WorldEventUpdateOne) Save(ctx context.Context) (*WorldEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldEventUpdateOne) SaveX(ctx context.Context) *WorldEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorldEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorldEventUpdateOne) sqlSave(ctx context.Context) (_node *WorldEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(worldevent.Table, worldevent.Columns, sqlgraph.NewFieldSpec(worldevent.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorldEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, worldevent.FieldID)
		for _, f := range fields {
			if !worldevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != worldevent.FieldID {
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
	if _u.mutation.OccurredAtCleared() {
		_spec.ClearField(worldevent.FieldOccurredAt, field.TypeTime)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(worldevent.FieldIdempotencyKey, field.TypeString)
	}
	_node = &WorldEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{worldevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
