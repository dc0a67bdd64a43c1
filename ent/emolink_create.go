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
	"github.com/mnemonic-nexus/mnx/ent/emolink"
)

// EmoLinkCreate is the builder for creating a EmoLink entity.
type EmoLinkCreate struct {
	config
	mutation *EmoLinkMutation
	hooks    []Hook
}

// SetEmoID sets the "emo_id" field.
func (_c *EmoLinkCreate) SetEmoID(v uuid.UUID) *EmoLinkCreate {
	_c.mutation.SetEmoID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *EmoLinkCreate) SetWorldID(v uuid.UUID) *EmoLinkCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *EmoLinkCreate) SetBranch(v string) *EmoLinkCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetRel sets the "rel" field.
func (_c *EmoLinkCreate) SetRel(v emolink.Rel) *EmoLinkCreate {
	_c.mutation.SetRel(v)
	return _c
}

// SetTargetEmoID sets the "target_emo_id" field.
func (_c *EmoLinkCreate) SetTargetEmoID(v uuid.UUID) *EmoLinkCreate {
	_c.mutation.SetTargetEmoID(v)
	return _c
}

// SetNillableTargetEmoID sets the "target_emo_id" field if the given value is not nil.
func (_c *EmoLinkCreate) SetNillableTargetEmoID(v *uuid.UUID) *EmoLinkCreate {
	if v != nil {
		_c.SetTargetEmoID(*v)
	}
	return _c
}

// SetTargetURI sets the "target_uri" field.
func (_c *EmoLinkCreate) SetTargetURI(v string) *EmoLinkCreate {
	_c.mutation.SetTargetURI(v)
	return _c
}

// SetNillableTargetURI sets the "target_uri" field if the given value is not nil.
func (_c *EmoLinkCreate) SetNillableTargetURI(v *string) *EmoLinkCreate {
	if v != nil {
		_c.SetTargetURI(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmoLinkCreate) SetCreatedAt(v time.Time) *EmoLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the EmoLinkMutation object of the builder.
func (_c *EmoLinkCreate) Mutation() *EmoLinkMutation {
	return _c.mutation
}

// Save creates the EmoLink in the database.
func (_c *EmoLinkCreate) Save(ctx context.Context) (*EmoLink, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmoLinkCreate) SaveX(ctx context.Context) *EmoLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmoLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmoLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmoLinkCreate) check() error {
	if _, ok := _c.mutation.EmoID(); !ok {
		return &ValidationError{Name: "emo_id", err: errors.New(`ent: missing required field "EmoLink.emo_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "EmoLink.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "EmoLink.branch"`)}
	}
	if _, ok := _c.mutation.Rel(); !ok {
		return &ValidationError{Name: "rel", err: errors.New(`ent: missing required field "EmoLink.rel"`)}
	}
	if v, ok := _c.mutation.Rel(); ok {
		if err := emolink.RelValidator(v); err != nil {
			return &ValidationError{Name: "rel", err: fmt.Errorf(`ent: validator failed for field "EmoLink.rel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmoLink.created_at"`)}
	}
	return nil
}

func (_c *EmoLinkCreate) sqlSave(ctx context.Context) (*EmoLink, error) {
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

func (_c *EmoLinkCreate) createSpec() (*EmoLink, *sqlgraph.CreateSpec) {
	var (
		_node = &EmoLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emolink.Table, sqlgraph.NewFieldSpec(emolink.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EmoID(); ok {
		_spec.SetField(emolink.FieldEmoID, field.TypeUUID, value)
		_node.EmoID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(emolink.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(emolink.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Rel(); ok {
		_spec.SetField(emolink.FieldRel, field.TypeEnum, value)
		_node.Rel = value
	}
	if value, ok := _c.mutation.TargetEmoID(); ok {
		_spec.SetField(emolink.FieldTargetEmoID, field.TypeUUID, value)
		_node.TargetEmoID = &value
	}
	if value, ok := _c.mutation.TargetURI(); ok {
		_spec.SetField(emolink.FieldTargetURI, field.TypeString, value)
		_node.TargetURI = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(emolink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EmoLinkCreateBulk is the builder for creating many EmoLink entities in bulk.
type EmoLinkCreateBulk struct {
	config
	err      error
	builders []*EmoLinkCreate
}

// Save creates the EmoLink entities in the database.
func (_c *EmoLinkCreateBulk) Save(ctx context.Context) ([]*EmoLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmoLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmoLinkMutation)
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
func (_c *EmoLinkCreateBulk) SaveX(ctx context.Context) []*EmoLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmoLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmoLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
