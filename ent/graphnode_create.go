// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/graphnode"
)

// GraphNodeCreate is the builder for creating a GraphNode entity.
type GraphNodeCreate struct {
	config
	mutation *GraphNodeMutation
	hooks    []Hook
}

// SetNodeID sets the "node_id" field.
func (_c *GraphNodeCreate) SetNodeID(v uuid.UUID) *GraphNodeCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *GraphNodeCreate) SetWorldID(v uuid.UUID) *GraphNodeCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *GraphNodeCreate) SetBranch(v string) *GraphNodeCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetEmoType sets the "emo_type" field.
func (_c *GraphNodeCreate) SetEmoType(v string) *GraphNodeCreate {
	_c.mutation.SetEmoType(v)
	return _c
}

// SetEmoVersion sets the "emo_version" field.
func (_c *GraphNodeCreate) SetEmoVersion(v int) *GraphNodeCreate {
	_c.mutation.SetEmoVersion(v)
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *GraphNodeCreate) SetDeleted(v bool) *GraphNodeCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *GraphNodeCreate) SetNillableDeleted(v *bool) *GraphNodeCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GraphNodeCreate) SetUpdatedAt(v time.Time) *GraphNodeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the GraphNodeMutation object of the builder.
func (_c *GraphNodeCreate) Mutation() *GraphNodeMutation {
	return _c.mutation
}

// Save creates the GraphNode in the database.
func (_c *GraphNodeCreate) Save(ctx context.Context) (*GraphNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphNodeCreate) SaveX(ctx context.Context) *GraphNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphNodeCreate) defaults() {
	if _, ok := _c.mutation.Deleted(); !ok {
		v := graphnode.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphNodeCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "GraphNode.node_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "GraphNode.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "GraphNode.branch"`)}
	}
	if _, ok := _c.mutation.EmoType(); !ok {
		return &ValidationError{Name: "emo_type", err: errors.New(`ent: missing required field "GraphNode.emo_type"`)}
	}
	if _, ok := _c.mutation.EmoVersion(); !ok {
		return &ValidationError{Name: "emo_version", err: errors.New(`ent: missing required field "GraphNode.emo_version"`)}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "GraphNode.deleted"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GraphNode.updated_at"`)}
	}
	return nil
}

func (_c *GraphNodeCreate) sqlSave(ctx context.Context) (*GraphNode, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraphNodeCreate) createSpec() (*GraphNode, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphnode.Table, sqlgraph.NewFieldSpec(graphnode.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(graphnode.FieldNodeID, field.TypeUUID, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(graphnode.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(graphnode.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.EmoType(); ok {
		_spec.SetField(graphnode.FieldEmoType, field.TypeString, value)
		_node.EmoType = value
	}
	if value, ok := _c.mutation.EmoVersion(); ok {
		_spec.SetField(graphnode.FieldEmoVersion, field.TypeInt, value)
		_node.EmoVersion = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(graphnode.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(graphnode.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// GraphNodeCreateBulk is the builder for creating many GraphNode entities in bulk.
type GraphNodeCreateBulk struct {
	config
	err      error
	builders []*GraphNodeCreate
}

// Save creates the GraphNode entities in the database.
func (_c *GraphNodeCreateBulk) Save(ctx context.Context) ([]*GraphNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphNodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GraphNodeCreateBulk) SaveX(ctx context.Context) []*GraphNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
