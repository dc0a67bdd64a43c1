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
	"github.com/mnemonic-nexus/mnx/ent/outboxentry"
)

// OutboxEntryCreate is the builder for creating a OutboxEntry entity.
type OutboxEntryCreate struct {
	config
	mutation *OutboxEntryMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *OutboxEntryCreate) SetEventID(v uuid.UUID) *OutboxEntryCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *OutboxEntryCreate) SetWorldID(v uuid.UUID) *OutboxEntryCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *OutboxEntryCreate) SetBranch(v string) *OutboxEntryCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *OutboxEntryCreate) SetKind(v string) *OutboxEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetEnvelope sets the "envelope" field.
func (_c *OutboxEntryCreate) SetEnvelope(v map[string]interface{}) *OutboxEntryCreate {
	_c.mutation.SetEnvelope(v)
	return _c
}

// SetPayloadHash sets the "payload_hash" field.
func (_c *OutboxEntryCreate) SetPayloadHash(v string) *OutboxEntryCreate {
	_c.mutation.SetPayloadHash(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *OutboxEntryCreate) SetReceivedAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *OutboxEntryCreate) SetPublishedAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillablePublishedAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *OutboxEntryCreate) SetAttempts(v int) *OutboxEntryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableAttempts(v *int) *OutboxEntryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *OutboxEntryCreate) SetLastError(v string) *OutboxEntryCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableLastError(v *string) *OutboxEntryCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *OutboxEntryCreate) SetNextRetryAt(v time.Time) *OutboxEntryCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *OutboxEntryCreate) SetNillableNextRetryAt(v *time.Time) *OutboxEntryCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutboxEntryCreate) SetID(v int64) *OutboxEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OutboxEntryMutation object of the builder.
func (_c *OutboxEntryCreate) Mutation() *OutboxEntryMutation {
	return _c.mutation
}

// Save creates the OutboxEntry in the database.
func (_c *OutboxEntryCreate) Save(ctx context.Context) (*OutboxEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutboxEntryCreate) SaveX(ctx context.Context) *OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutboxEntryCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := outboxentry.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutboxEntryCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "OutboxEntry.event_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "OutboxEntry.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "OutboxEntry.branch"`)}
	}
	if v, ok := _c.mutation.Branch(); ok {
		if err := outboxentry.BranchValidator(v); err != nil {
			return &ValidationError{Name: "branch", err: fmt.Errorf(`ent: validator failed for field "OutboxEntry.branch": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "OutboxEntry.kind"`)}
	}
	if _, ok := _c.mutation.Envelope(); !ok {
		return &ValidationError{Name: "envelope", err: errors.New(`ent: missing required field "OutboxEntry.envelope"`)}
	}
	if _, ok := _c.mutation.PayloadHash(); !ok {
		return &ValidationError{Name: "payload_hash", err: errors.New(`ent: missing required field "OutboxEntry.payload_hash"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "OutboxEntry.received_at"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "OutboxEntry.attempts"`)}
	}
	return nil
}

func (_c *OutboxEntryCreate) sqlSave(ctx context.Context) (*OutboxEntry, error) {
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

func (_c *OutboxEntryCreate) createSpec() (*OutboxEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &OutboxEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outboxentry.Table, sqlgraph.NewFieldSpec(outboxentry.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(outboxentry.FieldEventID, field.TypeUUID, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(outboxentry.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(outboxentry.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(outboxentry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Envelope(); ok {
		_spec.SetField(outboxentry.FieldEnvelope, field.TypeJSON, value)
		_node.Envelope = value
	}
	if value, ok := _c.mutation.PayloadHash(); ok {
		_spec.SetField(outboxentry.FieldPayloadHash, field.TypeString, value)
		_node.PayloadHash = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(outboxentry.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(outboxentry.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(outboxentry.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(outboxentry.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(outboxentry.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	return _node, _spec
}

// OutboxEntryCreateBulk is the builder for creating many OutboxEntry entities in bulk.
type OutboxEntryCreateBulk struct {
	config
	err      error
	builders []*OutboxEntryCreate
}

// Save creates the OutboxEntry entities in the database.
func (_c *OutboxEntryCreateBulk) Save(ctx context.Context) ([]*OutboxEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutboxEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutboxEntryMutation)
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
func (_c *OutboxEntryCreateBulk) SaveX(ctx context.Context) []*OutboxEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutboxEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutboxEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
