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
	"github.com/mnemonic-nexus/mnx/ent/graphnode"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// GraphNodeUpdate is the builder for updating GraphNode entities.
type GraphNodeUpdate struct {
	config
	hooks    []Hook
	mutation *GraphNodeMutation
}

// Where appends a list predicates to the GraphNodeUpdate builder.
func (_u *GraphNodeUpdate) Where(ps ...predicate.GraphNode) *GraphNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmoType sets the "emo_type" field.
func (_u *GraphNodeUpdate) SetEmoType(v string) *GraphNodeUpdate {
	_u.mutation.SetEmoType(v)
	return _u
}

// SetNillableEmoType sets the "emo_type" field if the given value is not nil.
func (_u *GraphNodeUpdate) SetNillableEmoType(v *string) *GraphNodeUpdate {
	if v != nil {
		_u.SetEmoType(*v)
	}
	return _u
}

// SetEmoVersion sets the "emo_version" field.
func (_u *GraphNodeUpdate) SetEmoVersion(v int) *GraphNodeUpdate {
	_u.mutation.ResetEmoVersion()
	_u.mutation.SetEmoVersion(v)
	return _u
}

// SetNillableEmoVersion sets the "emo_version" field if the given value is not nil.
func (_u *GraphNodeUpdate) SetNillableEmoVersion(v *int) *GraphNodeUpdate {
	if v != nil {
		_u.SetEmoVersion(*v)
	}
	return _u
}

// AddEmoVersion adds value to the "emo_version" field.
func (_u *GraphNodeUpdate) AddEmoVersion(v int) *GraphNodeUpdate {
	_u.mutation.AddEmoVersion(v)
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *GraphNodeUpdate) SetDeleted(v bool) *GraphNodeUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *GraphNodeUpdate) SetNillableDeleted(v *bool) *GraphNodeUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GraphNodeUpdate) SetUpdatedAt(v time.Time) *GraphNodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *GraphNodeUpdate) SetNillableUpdatedAt(v *time.Time) *GraphNodeUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the GraphNodeMutation object of the builder.
func (_u *GraphNodeUpdate) Mutation() *GraphNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GraphNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(graphnode.Table, graphnode.Columns, sqlgraph.NewFieldSpec(graphnode.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmoType(); ok {
		_spec.SetField(graphnode.FieldEmoType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmoVersion(); ok {
		_spec.SetField(graphnode.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmoVersion(); ok {
		_spec.AddField(graphnode.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(graphnode.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(graphnode.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphNodeUpdateOne is the builder for updating a single GraphNode entity.
type GraphNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphNodeMutation
}

// SetEmoType sets the "emo_type" field.
func (_u *GraphNodeUpdateOne) SetEmoType(v string) *GraphNodeUpdateOne {
	_u.mutation.SetEmoType(v)
	return _u
}

// SetNillableEmoType sets the "emo_type" field if the given value is not nil.
func (_u *GraphNodeUpdateOne) SetNillableEmoType(v *string) *GraphNodeUpdateOne {
	if v != nil {
		_u.SetEmoType(*v)
	}
	return _u
}

// SetEmoVersion sets the "emo_version" field.
func (_u *GraphNodeUpdateOne) SetEmoVersion(v int) *GraphNodeUpdateOne {
	_u.mutation.ResetEmoVersion()
	_u.mutation.SetEmoVersion(v)
	return _u
}

// SetNillableEmoVersion sets the "emo_version" field if the given value is not nil.
func (_u *GraphNodeUpdateOne) SetNillableEmoVersion(v *int) *GraphNodeUpdateOne {
	if v != nil {
		_u.SetEmoVersion(*v)
	}
	return _u
}

// AddEmoVersion adds value to the "emo_version" field.
func (_u *GraphNodeUpdateOne) AddEmoVersion(v int) *GraphNodeUpdateOne {
	_u.mutation.AddEmoVersion(v)
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *GraphNodeUpdateOne) SetDeleted(v bool) *GraphNodeUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *GraphNodeUpdateOne) SetNillableDeleted(v *bool) *GraphNodeUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GraphNodeUpdateOne) SetUpdatedAt(v time.Time) *GraphNodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *GraphNodeUpdateOne) SetNillableUpdatedAt(v *time.Time) *GraphNodeUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the GraphNodeMutation object of the builder.
func (_u *GraphNodeUpdateOne) Mutation() *GraphNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphNodeUpdate builder.
func (_u *GraphNodeUpdateOne) Where(ps ...predicate.GraphNode) *GraphNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphNodeUpdateOne) Select(field string, fields ...string) *GraphNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphNode entity.
func (_u *GraphNodeUpdateOne) Save(ctx context.Context) (*GraphNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphNodeUpdateOne) SaveX(ctx context.Context) *GraphNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GraphNodeUpdateOne) sqlSave(ctx context.Context) (_node *GraphNode, err error) {
	_spec := sqlgraph.NewUpdateSpec(graphnode.Table, graphnode.Columns, sqlgraph.NewFieldSpec(graphnode.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphnode.FieldID)
		for _, f := range fields {
			if !graphnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphnode.FieldID {
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
	if value, ok := _u.mutation.EmoType(); ok {
		_spec.SetField(graphnode.FieldEmoType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmoVersion(); ok {
		_spec.SetField(graphnode.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmoVersion(); ok {
		_spec.AddField(graphnode.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(graphnode.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(graphnode.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GraphNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
