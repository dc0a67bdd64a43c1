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
	"github.com/mnemonic-nexus/mnx/ent/notetag"
)

// NoteTagCreate is the builder for creating a NoteTag entity.
type NoteTagCreate struct {
	config
	mutation *NoteTagMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *NoteTagCreate) SetWorldID(v uuid.UUID) *NoteTagCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *NoteTagCreate) SetBranch(v string) *NoteTagCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNoteID sets the "note_id" field.
func (_c *NoteTagCreate) SetNoteID(v string) *NoteTagCreate {
	_c.mutation.SetNoteID(v)
	return _c
}

// SetTag sets the "tag" field.
func (_c *NoteTagCreate) SetTag(v string) *NoteTagCreate {
	_c.mutation.SetTag(v)
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *NoteTagCreate) SetAppliedAt(v time.Time) *NoteTagCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// Mutation returns the NoteTagMutation object of the builder.
func (_c *NoteTagCreate) Mutation() *NoteTagMutation {
	return _c.mutation
}

// Save creates the NoteTag in the database.
func (_c *NoteTagCreate) Save(ctx context.Context) (*NoteTag, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NoteTagCreate) SaveX(ctx context.Context) *NoteTag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoteTagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoteTagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NoteTagCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "NoteTag.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "NoteTag.branch"`)}
	}
	if _, ok := _c.mutation.NoteID(); !ok {
		return &ValidationError{Name: "note_id", err: errors.New(`ent: missing required field "NoteTag.note_id"`)}
	}
	if _, ok := _c.mutation.Tag(); !ok {
		return &ValidationError{Name: "tag", err: errors.New(`ent: missing required field "NoteTag.tag"`)}
	}
	if _, ok := _c.mutation.AppliedAt(); !ok {
		return &ValidationError{Name: "applied_at", err: errors.New(`ent: missing required field "NoteTag.applied_at"`)}
	}
	return nil
}

func (_c *NoteTagCreate) sqlSave(ctx context.Context) (*NoteTag, error) {
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

func (_c *NoteTagCreate) createSpec() (*NoteTag, *sqlgraph.CreateSpec) {
	var (
		_node = &NoteTag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notetag.Table, sqlgraph.NewFieldSpec(notetag.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(notetag.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(notetag.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.NoteID(); ok {
		_spec.SetField(notetag.FieldNoteID, field.TypeString, value)
		_node.NoteID = value
	}
	if value, ok := _c.mutation.Tag(); ok {
		_spec.SetField(notetag.FieldTag, field.TypeString, value)
		_node.Tag = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(notetag.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = value
	}
	return _node, _spec
}

// NoteTagCreateBulk is the builder for creating many NoteTag entities in bulk.
type NoteTagCreateBulk struct {
	config
	err      error
	builders []*NoteTagCreate
}

// Save creates the NoteTag entities in the database.
func (_c *NoteTagCreateBulk) Save(ctx context.Context) ([]*NoteTag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NoteTag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoteTagMutation)
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
func (_c *NoteTagCreateBulk) SaveX(ctx context.Context) []*NoteTag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoteTagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoteTagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
