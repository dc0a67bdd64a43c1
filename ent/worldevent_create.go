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
	"github.com/mnemonic-nexus/mnx/ent/worldevent"
)

// WorldEventCreate is the builder for creating a WorldEvent entity.
type WorldEventCreate struct {
	config
	mutation *WorldEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *WorldEventCreate) SetEventID(v uuid.UUID) *WorldEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *WorldEventCreate) SetWorldID(v uuid.UUID) *WorldEventCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *WorldEventCreate) SetBranch(v string) *WorldEventCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *WorldEventCreate) SetKind(v string) *WorldEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *WorldEventCreate) SetEnvelope(v map[string]interface{}) *WorldEventCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *WorldEventCreate) SetOccurredAt(v time.Time) *WorldEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *WorldEventCreate) SetNillableOccurredAt(v *time.Time) *WorldEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *WorldEventCreate) SetReceivedAt(v time.Time) *WorldEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *WorldEventCreate) SetNillableReceivedAt(v *time.Time) *WorldEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetPayloadHash sets the "payload_hash" field.
func (_c *WorldEventCreate) SetPayloadHash(v string) *WorldEventCreate {
	_c.mutation.SetPayloadHash(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *WorldEventCreate) SetIdempotencyKey(v string) *WorldEventCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *WorldEventCreate) SetNillableIdempotencyKey(v *string) *WorldEventCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorldEventCreate) SetID(v int64) *WorldEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorldEventMutation object of the builder.
func (_c *WorldEventCreate) Mutation() *WorldEventMutation {
	return _c.mutation
}

// Save creates the WorldEvent in the database.
func (_c *WorldEventCreate) Save(ctx context.Context) (*WorldEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorldEventCreate) SaveX(ctx context.Context) *WorldEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorldEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorldEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorldEventCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := worldevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorldEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "WorldEvent.event_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "WorldEvent.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "WorldEvent.branch"`)}
	}
	if v, ok := _c.mutation.Branch(); ok {
		if err := worldevent.BranchValidator(v); err != nil {
			return &ValidationError{Name: "branch", err: fmt.Errorf(`ent: validator failed for field "WorldEvent.branch": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "WorldEvent.kind"`)}
	}
	if _, ok := _c.mutation.Envelope(); !ok {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required field "WorldEvent.envelope"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "WorldEvent.received_at"`)}
	}
	if _, ok := _c.mutation.PayloadHash(); !ok {
		return &ValidationError{Name: "payload_hash", err: errors.New(`ent: missing required field "WorldEvent.payload_hash"`)}
	}
	return nil
}

func (_c *WorldEventCreate) sqlSave(ctx context.Context) (*WorldEvent, error) {
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

func (_c *WorldEventCreate) createSpec() (*WorldEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WorldEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(worldevent.Table, sqlgraph.NewFieldSpec(worldevent.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(worldevent.FieldEventID, field.TypeUUID, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(worldevent.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(worldevent.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(worldevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(worldevent.FieldEnvelope, field.TypeJSON, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(worldevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = &value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(worldevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.PayloadHash(); ok {
		_spec.SetField(worldevent.FieldPayloadHash, field.TypeString, value)
		_node.PayloadHash = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(worldevent.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	return _node, _spec
}

// WorldEventCreateBulk is the builder for creating many WorldEvent entities in bulk.
type WorldEventCreateBulk struct {
	config
	err      error
	builders []*WorldEventCreate
}

// Save creates the WorldEvent entities in the database.
func (_c *WorldEventCreateBulk) Save(ctx context.Context) ([]*WorldEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorldEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorldEventMutation)
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
func (_c *WorldEventCreateBulk) SaveX(ctx context.Context) []*WorldEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorldEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorldEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
