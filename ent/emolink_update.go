// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemonic-nexus/mnx/ent/emolink"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// EmoLinkUpdate is the builder for updating EmoLink entities.
type EmoLinkUpdate struct {
	config
	hooks    []Hook
	mutation *EmoLinkMutation
}

// Where appends a list predicates to the EmoLinkUpdate builder.
func (_u *EmoLinkUpdate) Where(ps ...predicate.EmoLink) *EmoLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EmoLinkMutation object of the builder.
func (_u *EmoLinkUpdate) Mutation() *EmoLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmoLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmoLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmoLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmoLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmoLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(emolink.Table, emolink.Columns, sqlgraph.NewFieldSpec(emolink.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TargetEmoIDCleared() {
		_spec.ClearField(emolink.FieldTargetEmoID, field.TypeUUID)
	}
	if _u.mutation.TargetURICleared() {
		_spec.ClearField(emolink.FieldTargetURI, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emolink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmoLinkUpdateOne is the builder for updating a single EmoLink entity.
type EmoLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmoLinkMutation
}

// Mutation returns the EmoLinkMutation object of the builder.
func (_u *EmoLinkUpdateOne) Mutation() *EmoLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmoLinkUpdate builder.
func (_u *EmoLinkUpdateOne) Where(ps ...predicate.EmoLink) *EmoLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmoLinkUpdateOne) Select(field string, fields ...string) *EmoLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmoLink entity.
func (_u *EmoLinkUpdateOne) Save(ctx context.Context) (*EmoLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmoLinkUpdateOne) SaveX(ctx context.Context) *EmoLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmoLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmoLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EmoLinkUpdateOne) sqlSave(ctx context.Context) (_node *EmoLink, err error) {
	_spec := sqlgraph.NewUpdateSpec(emolink.Table, emolink.Columns, sqlgraph.NewFieldSpec(emolink.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmoLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emolink.FieldID)
		for _, f := range fields {
			if !emolink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emolink.FieldID {
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
	if _u.mutation.TargetEmoIDCleared() {
		_spec.ClearField(emolink.FieldTargetEmoID, field.TypeUUID)
	}
	if _u.mutation.TargetURICleared() {
		_spec.ClearField(emolink.FieldTargetURI, field.TypeString)
	}
	_node = &EmoLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emolink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
