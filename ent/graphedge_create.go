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
	"github.com/mnemonic-nexus/mnx/ent/graphedge"
)

// GraphEdgeCreate is the builder for creating a GraphEdge entity.
type GraphEdgeCreate struct {
	config
	mutation *GraphEdgeMutation
	hooks    []Hook
}

// SetSrcID sets the "src_id" field.
func (_c *GraphEdgeCreate) SetSrcID(v uuid.UUID) *GraphEdgeCreate {
	_c.mutation.SetSrcID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *GraphEdgeCreate) SetWorldID(v uuid.UUID) *GraphEdgeCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *GraphEdgeCreate) SetBranch(v string) *GraphEdgeCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetRel sets the "rel" field.
func (_c *GraphEdgeCreate) SetRel(v string) *GraphEdgeCreate {
	_c.mutation.SetRel(v)
	return _c
}

// SetDstID sets the "dst_id" field.
func (_c *GraphEdgeCreate) SetDstID(v uuid.UUID) *GraphEdgeCreate {
	_c.mutation.SetDstID(v)
	return _c
}

// SetNillableDstID sets the "dst_id" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableDstID(v *uuid.UUID) *GraphEdgeCreate {
	if v != nil {
		_c.SetDstID(*v)
	}
	return _c
}

// SetDstURI sets the "dst_uri" field.
func (_c *GraphEdgeCreate) SetDstURI(v string) *GraphEdgeCreate {
	_c.mutation.SetDstURI(v)
	return _c
}

// SetNillableDstURI sets the "dst_uri" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableDstURI(v *string) *GraphEdgeCreate {
	if v != nil {
		_c.SetDstURI(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphEdgeCreate) SetCreatedAt(v time.Time) *GraphEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_c *GraphEdgeCreate) Mutation() *GraphEdgeMutation {
	return _c.mutation
}

// Save creates the GraphEdge in the database.
func (_c *GraphEdgeCreate) Save(ctx context.Context) (*GraphEdge, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphEdgeCreate) SaveX(ctx context.Context) *GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphEdgeCreate) check() error {
	if _, ok := _c.mutation.SrcID(); !ok {
		return &ValidationError{Name: "src_id", err: errors.New(`ent: missing required field "GraphEdge.src_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "GraphEdge.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "GraphEdge.branch"`)}
	}
	if _, ok := _c.mutation.Rel(); !ok {
		return &ValidationError{Name: "rel", err: errors.New(`ent: missing required field "GraphEdge.rel"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphEdge.created_at"`)}
	}
	return nil
}

func (_c *GraphEdgeCreate) sqlSave(ctx context.Context) (*GraphEdge, error) {
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

func (_c *GraphEdgeCreate) createSpec() (*GraphEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphedge.Table, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SrcID(); ok {
		_spec.SetField(graphedge.FieldSrcID, field.TypeUUID, value)
		_node.SrcID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(graphedge.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(graphedge.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Rel(); ok {
		_spec.SetField(graphedge.FieldRel, field.TypeString, value)
		_node.Rel = value
	}
	if value, ok := _c.mutation.DstID(); ok {
		_spec.SetField(graphedge.FieldDstID, field.TypeUUID, value)
		_node.DstID = &value
	}
	if value, ok := _c.mutation.DstURI(); ok {
		_spec.SetField(graphedge.FieldDstURI, field.TypeString, value)
		_node.DstURI = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GraphEdgeCreateBulk is the builder for creating many GraphEdge entities in bulk.
type GraphEdgeCreateBulk struct {
	config
	err      error
	builders []*GraphEdgeCreate
}

// Save creates the GraphEdge entities in the database.
func (_c *GraphEdgeCreateBulk) Save(ctx context.Context) ([]*GraphEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphEdgeMutation)
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
func (_c *GraphEdgeCreateBulk) SaveX(ctx context.Context) []*GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
