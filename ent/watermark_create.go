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
	"github.com/mnemonic-nexus/mnx/ent/watermark"
)

// WatermarkCreate is the builder for creating a Watermark entity.
type WatermarkCreate struct {
	config
	mutation *WatermarkMutation
	hooks    []Hook
}

// SetProjectorName sets the "projector_name" field.
func (_c *WatermarkCreate) SetProjectorName(v string) *WatermarkCreate {
	_c.mutation.SetProjectorName(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *WatermarkCreate) SetWorldID(v uuid.UUID) *WatermarkCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *WatermarkCreate) SetBranch(v string) *WatermarkCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetLastProcessedSeq sets the "last_processed_seq" field.
func (_c *WatermarkCreate) SetLastProcessedSeq(v int64) *WatermarkCreate {
	_c.mutation.SetLastProcessedSeq(v)
	return _c
}

// SetNillableLastProcessedSeq sets the "last_processed_seq" field if the given value is not nil.
func (_c *WatermarkCreate) SetNillableLastProcessedSeq(v *int64) *WatermarkCreate {
	if v != nil {
		_c.SetLastProcessedSeq(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WatermarkCreate) SetUpdatedAt(v time.Time) *WatermarkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WatermarkCreate) SetNillableUpdatedAt(v *time.Time) *WatermarkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the WatermarkMutation object of the builder.
func (_c *WatermarkCreate) Mutation() *WatermarkMutation {
	return _c.mutation
}

// Save creates the Watermark in the database.
func (_c *WatermarkCreate) Save(ctx context.Context) (*Watermark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WatermarkCreate) SaveX(ctx context.Context) *Watermark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatermarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatermarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WatermarkCreate) defaults() {
	if _, ok := _c.mutation.LastProcessedSeq(); !ok {
		v := watermark.DefaultLastProcessedSeq
		_c.mutation.SetLastProcessedSeq(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := watermark.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WatermarkCreate) check() error {
	if _, ok := _c.mutation.ProjectorName(); !ok {
		return &ValidationError{Name: "projector_name", err: errors.New(`ent: missing required field "Watermark.projector_name"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "Watermark.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "Watermark.branch"`)}
	}
	if _, ok := _c.mutation.LastProcessedSeq(); !ok {
		return &ValidationError{Name: "last_processed_seq", err: errors.New(`ent: missing required field "Watermark.last_processed_seq"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Watermark.updated_at"`)}
	}
	return nil
}

func (_c *WatermarkCreate) sqlSave(ctx context.Context) (*Watermark, error) {
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

func (_c *WatermarkCreate) createSpec() (*Watermark, *sqlgraph.CreateSpec) {
	var (
		_node = &Watermark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(watermark.Table, sqlgraph.NewFieldSpec(watermark.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProjectorName(); ok {
		_spec.SetField(watermark.FieldProjectorName, field.TypeString, value)
		_node.ProjectorName = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(watermark.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(watermark.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.LastProcessedSeq(); ok {
		_spec.SetField(watermark.FieldLastProcessedSeq, field.TypeInt64, value)
		_node.LastProcessedSeq = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(watermark.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WatermarkCreateBulk is the builder for creating many Watermark entities in bulk.
type WatermarkCreateBulk struct {
	config
	err      error
	builders []*WatermarkCreate
}

// Save creates the Watermark entities in the database.
func (_c *WatermarkCreateBulk) Save(ctx context.Context) ([]*Watermark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Watermark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WatermarkMutation)
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
func (_c *WatermarkCreateBulk) SaveX(ctx context.Context) []*Watermark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WatermarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WatermarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
