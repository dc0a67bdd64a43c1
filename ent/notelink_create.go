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
	"github.com/mnemonic-nexus/mnx/ent/notelink"
)

// NoteLinkCreate is the builder for creating a NoteLink entity.
type NoteLinkCreate struct {
	config
	mutation *NoteLinkMutation
	hooks    []Hook
}

// SetWorldID sets the "world_id" field.
func (_c *NoteLinkCreate) SetWorldID(v uuid.UUID) *NoteLinkCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *NoteLinkCreate) SetBranch(v string) *NoteLinkCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetSrcID sets the "src_id" field.
func (_c *NoteLinkCreate) SetSrcID(v string) *NoteLinkCreate {
	_c.mutation.SetSrcID(v)
	return _c
}

// SetDstID sets the "dst_id" field.
func (_c *NoteLinkCreate) SetDstID(v string) *NoteLinkCreate {
	_c.mutation.SetDstID(v)
	return _c
}

// SetLinkType sets the "link_type" field.
func (_c *NoteLinkCreate) SetLinkType(v string) *NoteLinkCreate {
	_c.mutation.SetLinkType(v)
	return _c
}

// SetNillableLinkType sets the "link_type" field if the given value is not nil.
func (_c *NoteLinkCreate) SetNillableLinkType(v *string) *NoteLinkCreate {
	if v != nil {
		_c.SetLinkType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NoteLinkCreate) SetCreatedAt(v time.Time) *NoteLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the NoteLinkMutation object of the builder.
func (_c *NoteLinkCreate) Mutation() *NoteLinkMutation {
	return _c.mutation
}

// Save creates the NoteLink in the database.
func (_c *NoteLinkCreate) Save(ctx context.Context) (*NoteLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NoteLinkCreate) SaveX(ctx context.Context) *NoteLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoteLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoteLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NoteLinkCreate) defaults() {
	if _, ok := _c.mutation.LinkType(); !ok {
		v := notelink.DefaultLinkType
		_c.mutation.SetLinkType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NoteLinkCreate) check() error {
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "NoteLink.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "NoteLink.branch"`)}
	}
	if _, ok := _c.mutation.SrcID(); !ok {
		return &ValidationError{Name: "src_id", err: errors.New(`ent: missing required field "NoteLink.src_id"`)}
	}
	if _, ok := _c.mutation.DstID(); !ok {
		return &ValidationError{Name: "dst_id", err: errors.New(`ent: missing required field "NoteLink.dst_id"`)}
	}
	if _, ok := _c.mutation.LinkType(); !ok {
		return &ValidationError{Name: "link_type", err: errors.New(`ent: missing required field "NoteLink.link_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NoteLink.created_at"`)}
	}
	return nil
}

func (_c *NoteLinkCreate) sqlSave(ctx context.Context) (*NoteLink, error) {
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

func (_c *NoteLinkCreate) createSpec() (*NoteLink, *sqlgraph.CreateSpec) {
	var (
		_node = &NoteLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notelink.Table, sqlgraph.NewFieldSpec(notelink.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(notelink.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(notelink.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.SrcID(); ok {
		_spec.SetField(notelink.FieldSrcID, field.TypeString, value)
		_node.SrcID = value
	}
	if value, ok := _c.mutation.DstID(); ok {
		_spec.SetField(notelink.FieldDstID, field.TypeString, value)
		_node.DstID = value
	}
	if value, ok := _c.mutation.LinkType(); ok {
		_spec.SetField(notelink.FieldLinkType, field.TypeString, value)
		_node.LinkType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notelink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NoteLinkCreateBulk is the builder for creating many NoteLink entities in bulk.
type NoteLinkCreateBulk struct {
	config
	err      error
	builders []*NoteLinkCreate
}

// Save creates the NoteLink entities in the database.
func (_c *NoteLinkCreateBulk) Save(ctx context.Context) ([]*NoteLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NoteLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoteLinkMutation)
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
func (_c *NoteLinkCreateBulk) SaveX(ctx context.Context) []*NoteLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoteLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoteLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
