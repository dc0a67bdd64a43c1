// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemonic-nexus/mnx/ent/emohistory"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// EmoHistoryUpdate is the builder for updating EmoHistory entities.
type EmoHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *EmoHistoryMutation
}

// Where appends a list predicates to the EmoHistoryUpdate builder.
func (_u *EmoHistoryUpdate) Where(ps ...predicate.EmoHistory) *EmoHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EmoHistoryMutation object of the builder.
func (_u *EmoHistoryUpdate) Mutation() *EmoHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmoHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmoHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmoHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmoHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmoHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emohistory.Table, emohistory.Columns, sqlgraph.NewFieldSpec(emohistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ChangeIDCleared() {
		_spec.ClearField(emohistory.FieldChangeID, field.TypeUUID)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(emohistory.FieldIdempotencyKey, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emohistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmoHistoryUpdateOne is the builder for updating a single EmoHistory entity.
type EmoHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmoHistoryMutation
}

// Mutation returns the EmoHistoryMutation object of the builder.
func (_u *EmoHistoryUpdateOne) Mutation() *EmoHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmoHistoryUpdate builder.
func (_u *EmoHistoryUpdateOne) Where(ps ...predicate.EmoHistory) *EmoHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmoHistoryUpdateOne) Select(field string, fields ...string) *EmoHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmoHistory entity.
func (_u *EmoHistoryUpdateOne) Save(ctx context.Context) (*EmoHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmoHistoryUpdateOne) SaveX(ctx context.Context) *EmoHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmoHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmoHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmoHistoryUpdateOne) sqlSave(ctx context.Context) (_node *EmoHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(emohistory.Table, emohistory.Columns, sqlgraph.NewFieldSpec(emohistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmoHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emohistory.FieldID)
		for _, f := range fields {
			if !emohistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emohistory.FieldID {
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
	if _u.mutation.ChangeIDCleared() {
		_spec.ClearField(emohistory.FieldChangeID, field.TypeUUID)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(emohistory.FieldIdempotencyKey, field.TypeString)
	}
	_node = &EmoHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emohistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
