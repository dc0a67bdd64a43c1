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
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
)

// EmoCurrentCreate is the builder for creating a EmoCurrent entity.
type EmoCurrentCreate struct {
	config
	mutation *EmoCurrentMutation
	hooks    []Hook
}

// SetEmoID sets the "emo_id" field.
func (_c *EmoCurrentCreate) SetEmoID(v uuid.UUID) *EmoCurrentCreate {
	_c.mutation.SetEmoID(v)
	return _c
}

// SetWorldID sets the "world_id" field.
func (_c *EmoCurrentCreate) SetWorldID(v uuid.UUID) *EmoCurrentCreate {
	_c.mutation.SetWorldID(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *EmoCurrentCreate) SetBranch(v string) *EmoCurrentCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetEmoType sets the "emo_type" field.
func (_c *EmoCurrentCreate) SetEmoType(v emocurrent.EmoType) *EmoCurrentCreate {
	_c.mutation.SetEmoType(v)
	return _c
}

// SetEmoVersion sets the "emo_version" field.
func (_c *EmoCurrentCreate) SetEmoVersion(v int) *EmoCurrentCreate {
	_c.mutation.SetEmoVersion(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *EmoCurrentCreate) SetTenantID(v uuid.UUID) *EmoCurrentCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *EmoCurrentCreate) SetContent(v string) *EmoCurrentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableContent(v *string) *EmoCurrentCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *EmoCurrentCreate) SetTags(v []string) *EmoCurrentCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *EmoCurrentCreate) SetMimeType(v string) *EmoCurrentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableMimeType(v *string) *EmoCurrentCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetSourceKind sets the "source_kind" field.
func (_c *EmoCurrentCreate) SetSourceKind(v emocurrent.SourceKind) *EmoCurrentCreate {
	_c.mutation.SetSourceKind(v)
	return _c
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableSourceKind(v *emocurrent.SourceKind) *EmoCurrentCreate {
	if v != nil {
		_c.SetSourceKind(*v)
	}
	return _c
}

// SetSourceURI sets the "source_uri" field.
func (_c *EmoCurrentCreate) SetSourceURI(v string) *EmoCurrentCreate {
	_c.mutation.SetSourceURI(v)
	return _c
}

// SetNillableSourceURI sets the "source_uri" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableSourceURI(v *string) *EmoCurrentCreate {
	if v != nil {
		_c.SetSourceURI(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *EmoCurrentCreate) SetDeleted(v bool) *EmoCurrentCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableDeleted(v *bool) *EmoCurrentCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *EmoCurrentCreate) SetDeletedAt(v time.Time) *EmoCurrentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableDeletedAt(v *time.Time) *EmoCurrentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDeletionReason sets the "deletion_reason" field.
func (_c *EmoCurrentCreate) SetDeletionReason(v string) *EmoCurrentCreate {
	_c.mutation.SetDeletionReason(v)
	return _c
}

// SetNillableDeletionReason sets the "deletion_reason" field if the given value is not nil.
func (_c *EmoCurrentCreate) SetNillableDeletionReason(v *string) *EmoCurrentCreate {
	if v != nil {
		_c.SetDeletionReason(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmoCurrentCreate) SetUpdatedAt(v time.Time) *EmoCurrentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the EmoCurrentMutation object of the builder.
func (_c *EmoCurrentCreate) Mutation() *EmoCurrentMutation {
	return _c.mutation
}

// Save creates the EmoCurrent in the database.
func (_c *EmoCurrentCreate) Save(ctx context.Context) (*EmoCurrent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmoCurrentCreate) SaveX(ctx context.Context) *EmoCurrent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmoCurrentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmoCurrentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmoCurrentCreate) defaults() {
	if _, ok := _c.mutation.MimeType(); !ok {
		v := emocurrent.DefaultMimeType
		_c.mutation.SetMimeType(v)
	}
	if _, ok := _c.mutation.SourceKind(); !ok {
		v := emocurrent.DefaultSourceKind
		_c.mutation.SetSourceKind(v)
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		v := emocurrent.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmoCurrentCreate) check() error {
	if _, ok := _c.mutation.EmoID(); !ok {
		return &ValidationError{Name: "emo_id", err: errors.New(`ent: missing required field "EmoCurrent.emo_id"`)}
	}
	if _, ok := _c.mutation.WorldID(); !ok {
		return &ValidationError{Name: "world_id", err: errors.New(`ent: missing required field "EmoCurrent.world_id"`)}
	}
	if _, ok := _c.mutation.Branch(); !ok {
		return &ValidationError{Name: "branch", err: errors.New(`ent: missing required field "EmoCurrent.branch"`)}
	}
	if _, ok := _c.mutation.EmoType(); !ok {
		return &ValidationError{Name: "emo_type", err: errors.New(`ent: missing required field "EmoCurrent.emo_type"`)}
	}
	if v, ok := _c.mutation.EmoType(); ok {
		if err := emocurrent.EmoTypeValidator(v); err != nil {
			return &ValidationError{Name: "emo_type", err: fmt.Errorf(`ent: validator failed for field "EmoCurrent.emo_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmoVersion(); !ok {
		return &ValidationError{Name: "emo_version", err: errors.New(`ent: missing required field "EmoCurrent.emo_version"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EmoCurrent.tenant_id"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "EmoCurrent.mime_type"`)}
	}
	if _, ok := _c.mutation.SourceKind(); !ok {
		return &ValidationError{Name: "source_kind", err: errors.New(`ent: missing required field "EmoCurrent.source_kind"`)}
	}
	if v, ok := _c.mutation.SourceKind(); ok {
		if err := emocurrent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "EmoCurrent.source_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "EmoCurrent.deleted"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EmoCurrent.updated_at"`)}
	}
	return nil
}

func (_c *EmoCurrentCreate) sqlSave(ctx context.Context) (*EmoCurrent, error) {
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

func (_c *EmoCurrentCreate) createSpec() (*EmoCurrent, *sqlgraph.CreateSpec) {
	var (
		_node = &EmoCurrent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emocurrent.Table, sqlgraph.NewFieldSpec(emocurrent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EmoID(); ok {
		_spec.SetField(emocurrent.FieldEmoID, field.TypeUUID, value)
		_node.EmoID = value
	}
	if value, ok := _c.mutation.WorldID(); ok {
		_spec.SetField(emocurrent.FieldWorldID, field.TypeUUID, value)
		_node.WorldID = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(emocurrent.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.EmoType(); ok {
		_spec.SetField(emocurrent.FieldEmoType, field.TypeEnum, value)
		_node.EmoType = value
	}
	if value, ok := _c.mutation.EmoVersion(); ok {
		_spec.SetField(emocurrent.FieldEmoVersion, field.TypeInt, value)
		_node.EmoVersion = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(emocurrent.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(emocurrent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(emocurrent.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(emocurrent.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.SourceKind(); ok {
		_spec.SetField(emocurrent.FieldSourceKind, field.TypeEnum, value)
		_node.SourceKind = value
	}
	if value, ok := _c.mutation.SourceURI(); ok {
		_spec.SetField(emocurrent.FieldSourceURI, field.TypeString, value)
		_node.SourceURI = &value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(emocurrent.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(emocurrent.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.DeletionReason(); ok {
		_spec.SetField(emocurrent.FieldDeletionReason, field.TypeString, value)
		_node.DeletionReason = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(emocurrent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EmoCurrentCreateBulk is the builder for creating many EmoCurrent entities in bulk.
type EmoCurrentCreateBulk struct {
	config
	err      error
	builders []*EmoCurrentCreate
}

// Save creates the EmoCurrent entities in the database.
func (_c *EmoCurrentCreateBulk) Save(ctx context.Context) ([]*EmoCurrent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmoCurrent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmoCurrentMutation)
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
func (_c *EmoCurrentCreateBulk) SaveX(ctx context.Context) []*EmoCurrent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmoCurrentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmoCurrentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
