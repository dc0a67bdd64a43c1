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
	"github.com/mnemonic-nexus/mnx/ent/deadletter"
)

// DeadLetterCreate is the builder for creating a DeadLetter entity.
type DeadLetterCreate struct {
	config
	mutation *DeadLetterMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *DeadLetterCreate) SetEventID(v uuid.UUID) *DeadLetterCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *DeadLetterCreate) SetWorldID(v uuid.UUID) *DeadLetterCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *DeadLetterCreate) SetBranch(v string) *DeadLetterCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *DeadLetterCreate) SetKind(v string) *DeadLetterCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *DeadLetterCreate) SetEnvelope(v map[string]interface{}) *DeadLetterCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetError sets the "error" field.
func (_c *DeadLetterCreate) SetError(v string) *DeadLetterCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetPublisherID sets the "publisher_id" field.
func (_c *DeadLetterCreate) SetPublisherID(v string) *DeadLetterCreate {
	_c.mutation.SetPublisherID(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DeadLetterCreate) SetAttempts(v int) *DeadLetterCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableAttempts(v *int) *DeadLetterCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMovedAt sets the "moved_at" field.
func (_c *DeadLetterCreate) SetMovedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetMovedAt(v)
	return _c
}

// SetNillableMovedAt sets the "moved_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableMovedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetMovedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeadLetterCreate) SetID(v int64) *DeadLetterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_c *DeadLetterCreate) Mutation() *DeadLetterMutation {
	return _c.mutation
}

// Save creates the DeadLetter in the database.
func (_c *DeadLetterCreate) Save(ctx context.Context) (*DeadLetter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterCreate) SaveX(ctx context.Context) *DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := deadletter.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MovedAt(); !ok {
		v := deadletter.DefaultMovedAt()
		_c.mutation.SetMovedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "DeadLetter.event_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "DeadLetter.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "DeadLetter.branch"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "DeadLetter.kind"`)}
	}
	if _, ok := _c.mutation.Envelope(); !ok {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required field "DeadLetter.envelope"`)}
	}
	if _, ok := _c.mutation.Error(); !ok {
		return &ValidationError{Name: "error", err: errors.New(`ent: missing required field "DeadLetter.error"`)}
	}
	if _, ok := _c.mutation.PublisherID(); !ok {
		return &ValidationError{Name: "publisher_id", err: errors.New(`ent: missing required field "DeadLetter.publisher_id"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DeadLetter.attempts"`)}
	}
	if _, ok := _c.mutation.MovedAt(); !ok {
		return &ValidationError{Name: "moved_at", err: errors.New(`ent: missing required field "DeadLetter.moved_at"`)}
	}
	return nil
}

func (_c *DeadLetterCreate) sqlSave(ctx context.Context) (*DeadLetter, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeadLetterCreate) createSpec() (*DeadLetter, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(deadletter.FieldEventID, field.TypeUUID, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(deadletter.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(deadletter.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(deadletter.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(deadletter.FieldEnvelope, field.TypeJSON, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(deadletter.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.PublisherID(); ok {
		_spec.SetField(deadletter.FieldPublisherID, field.TypeString, value)
		_node.PublisherID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MovedAt(); ok {
		_spec.SetField(deadletter.FieldMovedAt, field.TypeTime, value)
		_node.MovedAt = value
	}
	return _node, _spec
}

// DeadLetterCreateBulk is the builder for creating many DeadLetter entities in bulk.
type DeadLetterCreateBulk struct {
	config
	err      error
	builders []*DeadLetterCreate
}

// Save creates the DeadLetter entities in the database.
func (_c *DeadLetterCreateBulk) Save(ctx context.Context) ([]*DeadLetter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *DeadLetterCreateBulk) SaveX(ctx context.Context) []*DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
