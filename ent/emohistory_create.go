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
	"github.com/mnemonic-nexus/mnx/ent/emohistory"
)

// EmoHistoryCreate is the builder for creating a EmoHistory entity.
type EmoHistoryCreate struct {
	config
	mutation *EmoHistoryMutation
	hooks    []Hook
}

// SetChangeID sets the "change_id" field.
func (_c *EmoHistoryCreate) SetChangeID(v uuid.UUID) *EmoHistoryCreate {
	_c.mutation.SetChangeID(v)
	return _c
}

// SetNillableChangeID sets the "change_id" field if the given value is not nil.
func (_c *EmoHistoryCreate) SetNillableChangeID(v *uuid.UUID) *EmoHistoryCreate {
	if v != nil {
		_c.SetChangeID(*v)
	}
	return _c
}

// SetEmoID sets the "emo_id" field.
func (_c *EmoHistoryCreate) SetEmoID(v uuid.UUID) *EmoHistoryCreate {
	_c.mutation.SetEmoID(v)
	return _c
}

// SetEmoVersion sets the "emo_version" field.
func (_c *EmoHistoryCreate) SetEmoVersion(v int) *EmoHistoryCreate {
	_c.mutation.SetEmoVersion(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *EmoHistoryCreate) SetWorldID(v uuid.UUID) *EmoHistoryCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *EmoHistoryCreate) SetBranch(v string) *EmoHistoryCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *EmoHistoryCreate) SetOperation(v emohistory.Operation) *EmoHistoryCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *EmoHistoryCreate) SetContentHash(v string) *EmoHistoryCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *EmoHistoryCreate) SetIdempotencyKey(v string) *EmoHistoryCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *EmoHistoryCreate) SetNillableIdempotencyKey(v *string) *EmoHistoryCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *EmoHistoryCreate) SetRecordedAt(v time.Time) *EmoHistoryCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// Mutation returns the EmoHistoryMutation object of the builder.
func (_c *EmoHistoryCreate) Mutation() *EmoHistoryMutation {
	return _c.mutation
}

// Save creates the EmoHistory in the database.
func (_c *EmoHistoryCreate) Save(ctx context.Context) (*EmoHistory, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmoHistoryCreate) SaveX(ctx context.Context) *EmoHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmoHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmoHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmoHistoryCreate) check() error {
	if _, ok := _c.mutation.EmoID(); !ok {
		return &ValidationError{Name: "emo_id", err: errors.New(`ent: missing required field "EmoHistory.emo_id"`)}
	}
	if _, ok := _c.mutation.EmoVersion(); !ok {
		return &ValidationError{Name: "emo_version", err: errors.New(`ent: missing required field "EmoHistory.emo_version"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "EmoHistory.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "EmoHistory.branch"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "EmoHistory.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := emohistory.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "EmoHistory.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "EmoHistory.content_hash"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "EmoHistory.recorded_at"`)}
	}
	return nil
}

func (_c *EmoHistoryCreate) sqlSave(ctx context.Context) (*EmoHistory, error) {
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

func (_c *EmoHistoryCreate) createSpec() (*EmoHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &EmoHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emohistory.Table, sqlgraph.NewFieldSpec(emohistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChangeID(); ok {
		_spec.SetField(emohistory.FieldChangeID, field.TypeUUID, value)
		_node.ChangeID = &value
	}
	if value, ok := _c.mutation.EmoID(); ok {
		_spec.SetField(emohistory.FieldEmoID, field.TypeUUID, value)
		_node.EmoID = value
	}
	if value, ok := _c.mutation.EmoVersion(); ok {
		_spec.SetField(emohistory.FieldEmoVersion, field.TypeInt, value)
		_node.EmoVersion = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(emohistory.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(emohistory.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(emohistory.FieldOperation, field.TypeEnum, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(emohistory.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(emohistory.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(emohistory.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// EmoHistoryCreateBulk is the builder for creating many EmoHistory entities in bulk.
type EmoHistoryCreateBulk struct {
	config
	err      error
	builders []*EmoHistoryCreate
}

// Save creates the EmoHistory entities in the database.
func (_c *EmoHistoryCreateBulk) Save(ctx context.Context) ([]*EmoHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmoHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmoHistoryMutation)
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
func (_c *EmoHistoryCreateBulk) SaveX(ctx context.Context) []*EmoHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmoHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmoHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
