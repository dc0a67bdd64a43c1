// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// EmoCurrentUpdate is the builder for updating EmoCurrent entities.
type EmoCurrentUpdate struct {
	config
	hooks    []Hook
	mutation *EmoCurrentMutation
}

// Where appends a list predicates to the EmoCurrentUpdate builder.
func (_u *EmoCurrentUpdate) Where(ps ...predicate.EmoCurrent) *EmoCurrentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmoType sets the "emo_type" field.
func (_u *EmoCurrentUpdate) SetEmoType(v emocurrent.EmoType) *EmoCurrentUpdate {
	_u.mutation.SetEmoType(v)
	return _u
}

// SetNillableEmoType sets the "emo_type" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableEmoType(v *emocurrent.EmoType) *EmoCurrentUpdate {
	if v != nil {
		_u.SetEmoType(*v)
	}
	return _u
}

// SetEmoVersion sets the "emo_version" field.
func (_u *EmoCurrentUpdate) SetEmoVersion(v int) *EmoCurrentUpdate {
	_u.mutation.ResetEmoVersion()
	_u.mutation.SetEmoVersion(v)
	return _u
}

// SetNillableEmoVersion sets the "emo_version" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableEmoVersion(v *int) *EmoCurrentUpdate {
	if v != nil {
		_u.SetEmoVersion(*v)
	}
	return _u
}

// AddEmoVersion adds value to the "emo_version" field.
func (_u *EmoCurrentUpdate) AddEmoVersion(v int) *EmoCurrentUpdate {
	_u.mutation.AddEmoVersion(v)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *EmoCurrentUpdate) SetTenantID(v uuid.UUID) *EmoCurrentUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableTenantID(v *uuid.UUID) *EmoCurrentUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EmoCurrentUpdate) SetContent(v string) *EmoCurrentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableContent(v *string) *EmoCurrentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *EmoCurrentUpdate) ClearContent() *EmoCurrentUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EmoCurrentUpdate) SetTags(v []string) *EmoCurrentUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EmoCurrentUpdate) AppendTags(v []string) *EmoCurrentUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EmoCurrentUpdate) ClearTags() *EmoCurrentUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *EmoCurrentUpdate) SetMimeType(v string) *EmoCurrentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableMimeType(v *string) *EmoCurrentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetSourceKind sets the "source_kind" field.
func (_u *EmoCurrentUpdate) SetSourceKind(v emocurrent.SourceKind) *EmoCurrentUpdate {
	_u.mutation.SetSourceKind(v)
	return _u
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableSourceKind(v *emocurrent.SourceKind) *EmoCurrentUpdate {
	if v != nil {
		_u.SetSourceKind(*v)
	}
	return _u
}

// SetSourceURI sets the "source_uri" field.
func (_u *EmoCurrentUpdate) SetSourceURI(v string) *EmoCurrentUpdate {
	_u.mutation.SetSourceURI(v)
	return _u
}

// SetNillableSourceURI sets the "source_uri" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableSourceURI(v *string) *EmoCurrentUpdate {
	if v != nil {
		_u.SetSourceURI(*v)
	}
	return _u
}

// ClearSourceURI clears the value of the "source_uri" field.
func (_u *EmoCurrentUpdate) ClearSourceURI() *EmoCurrentUpdate {
	_u.mutation.ClearSourceURI()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *EmoCurrentUpdate) SetDeleted(v bool) *EmoCurrentUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableDeleted(v *bool) *EmoCurrentUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EmoCurrentUpdate) SetDeletedAt(v time.Time) *EmoCurrentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableDeletedAt(v *time.Time) *EmoCurrentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EmoCurrentUpdate) ClearDeletedAt() *EmoCurrentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeletionReason sets the "deletion_reason" field.
func (_u *EmoCurrentUpdate) SetDeletionReason(v string) *EmoCurrentUpdate {
	_u.mutation.SetDeletionReason(v)
	return _u
}

// SetNillableDeletionReason sets the "deletion_reason" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableDeletionReason(v *string) *EmoCurrentUpdate {
	if v != nil {
		_u.SetDeletionReason(*v)
	}
	return _u
}

// ClearDeletionReason clears the value of the "deletion_reason" field.
func (_u *EmoCurrentUpdate) ClearDeletionReason() *EmoCurrentUpdate {
	_u.mutation.ClearDeletionReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmoCurrentUpdate) SetUpdatedAt(v time.Time) *EmoCurrentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EmoCurrentUpdate) SetNillableUpdatedAt(v *time.Time) *EmoCurrentUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the EmoCurrentMutation object of the builder.
func (_u *EmoCurrentUpdate) Mutation() *EmoCurrentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmoCurrentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmoCurrentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmoCurrentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmoCurrentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmoCurrentUpdate) check() error {
	if v, ok := _u.mutation.EmoType(); ok {
		if err := emocurrent.EmoTypeValidator(v); err != nil {
			return &ValidationError{Name: "emo_type", err: fmt.Errorf(`ent: validator failed for field "EmoCurrent.emo_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceKind(); ok {
		if err := emocurrent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "EmoCurrent.source_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *EmoCurrentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emocurrent.Table, emocurrent.Columns, sqlgraph.NewFieldSpec(emocurrent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmoType(); ok {
		_spec.SetField(emocurrent.FieldEmoType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EmoVersion(); ok {
		_spec.SetField(emocurrent.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmoVersion(); ok {
		_spec.AddField(emocurrent.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(emocurrent.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(emocurrent.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(emocurrent.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(emocurrent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emocurrent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(emocurrent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(emocurrent.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKind(); ok {
		_spec.SetField(emocurrent.FieldSourceKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURI(); ok {
		_spec.SetField(emocurrent.FieldSourceURI, field.TypeString, value)
	}
	if _u.mutation.SourceURICleared() {
		_spec.ClearField(emocurrent.FieldSourceURI, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(emocurrent.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(emocurrent.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(emocurrent.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletionReason(); ok {
		_spec.SetField(emocurrent.FieldDeletionReason, field.TypeString, value)
	}
	if _u.mutation.DeletionReasonCleared() {
		_spec.ClearField(emocurrent.FieldDeletionReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emocurrent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emocurrent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmoCurrentUpdateOne is the builder for updating a single EmoCurrent entity.
type EmoCurrentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmoCurrentMutation
}

// SetEmoType sets the "emo_type" field.
func (_u *EmoCurrentUpdateOne) SetEmoType(v emocurrent.EmoType) *EmoCurrentUpdateOne {
	_u.mutation.SetEmoType(v)
	return _u
}

// SetNillableEmoType sets the "emo_type" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableEmoType(v *emocurrent.EmoType) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetEmoType(*v)
	}
	return _u
}

// SetEmoVersion sets the "emo_version" field.
func (_u *EmoCurrentUpdateOne) SetEmoVersion(v int) *EmoCurrentUpdateOne {
	_u.mutation.ResetEmoVersion()
	_u.mutation.SetEmoVersion(v)
	return _u
}

// SetNillableEmoVersion sets the "emo_version" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableEmoVersion(v *int) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetEmoVersion(*v)
	}
	return _u
}

// AddEmoVersion adds value to the "emo_version" field.
func (_u *EmoCurrentUpdateOne) AddEmoVersion(v int) *EmoCurrentUpdateOne {
	_u.mutation.AddEmoVersion(v)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *EmoCurrentUpdateOne) SetTenantID(v uuid.UUID) *EmoCurrentUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableTenantID(v *uuid.UUID) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EmoCurrentUpdateOne) SetContent(v string) *EmoCurrentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableContent(v *string) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *EmoCurrentUpdateOne) ClearContent() *EmoCurrentUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EmoCurrentUpdateOne) SetTags(v []string) *EmoCurrentUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EmoCurrentUpdateOne) AppendTags(v []string) *EmoCurrentUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EmoCurrentUpdateOne) ClearTags() *EmoCurrentUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *EmoCurrentUpdateOne) SetMimeType(v string) *EmoCurrentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableMimeType(v *string) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetSourceKind sets the "source_kind" field.
func (_u *EmoCurrentUpdateOne) SetSourceKind(v emocurrent.SourceKind) *EmoCurrentUpdateOne {
	_u.mutation.SetSourceKind(v)
	return _u
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableSourceKind(v *emocurrent.SourceKind) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetSourceKind(*v)
	}
	return _u
}

// SetSourceURI sets the "source_uri" field.
func (_u *EmoCurrentUpdateOne) SetSourceURI(v string) *EmoCurrentUpdateOne {
	_u.mutation.SetSourceURI(v)
	return _u
}

// SetNillableSourceURI sets the "source_uri" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableSourceURI(v *string) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetSourceURI(*v)
	}
	return _u
}

// ClearSourceURI clears the value of the "source_uri" field.
func (_u *EmoCurrentUpdateOne) ClearSourceURI() *EmoCurrentUpdateOne {
	_u.mutation.ClearSourceURI()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *EmoCurrentUpdateOne) SetDeleted(v bool) *EmoCurrentUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableDeleted(v *bool) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EmoCurrentUpdateOne) SetDeletedAt(v time.Time) *EmoCurrentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableDeletedAt(v *time.Time) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EmoCurrentUpdateOne) ClearDeletedAt() *EmoCurrentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDeletionReason sets the "deletion_reason" field.
func (_u *EmoCurrentUpdateOne) SetDeletionReason(v string) *EmoCurrentUpdateOne {
	_u.mutation.SetDeletionReason(v)
	return _u
}

// SetNillableDeletionReason sets the "deletion_reason" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableDeletionReason(v *string) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetDeletionReason(*v)
	}
	return _u
}

// ClearDeletionReason clears the value of the "deletion_reason" field.
func (_u *EmoCurrentUpdateOne) ClearDeletionReason() *EmoCurrentUpdateOne {
	_u.mutation.ClearDeletionReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmoCurrentUpdateOne) SetUpdatedAt(v time.Time) *EmoCurrentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EmoCurrentUpdateOne) SetNillableUpdatedAt(v *time.Time) *EmoCurrentUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the EmoCurrentMutation object of the builder.
func (_u *EmoCurrentUpdateOne) Mutation() *EmoCurrentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmoCurrentUpdate builder.
func (_u *EmoCurrentUpdateOne) Where(ps ...predicate.EmoCurrent) *EmoCurrentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmoCurrentUpdateOne) Select(field string, fields ...string) *EmoCurrentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmoCurrent entity.
func (_u *EmoCurrentUpdateOne) Save(ctx context.Context) (*EmoCurrent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmoCurrentUpdateOne) SaveX(ctx context.Context) *EmoCurrent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmoCurrentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmoCurrentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmoCurrentUpdateOne) check() error {
	if v, ok := _u.mutation.EmoType(); ok {
		if err := emocurrent.EmoTypeValidator(v); err != nil {
			return &ValidationError{Name: "emo_type", err: fmt.Errorf(`ent: validator failed for field "EmoCurrent.emo_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceKind(); ok {
		if err := emocurrent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "EmoCurrent.source_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *EmoCurrentUpdateOne) sqlSave(ctx context.Context) (_node *EmoCurrent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emocurrent.Table, emocurrent.Columns, sqlgraph.NewFieldSpec(emocurrent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmoCurrent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emocurrent.FieldID)
		for _, f := range fields {
			if !emocurrent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emocurrent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmoType(); ok {
		_spec.SetField(emocurrent.FieldEmoType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EmoVersion(); ok {
		_spec.SetField(emocurrent.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmoVersion(); ok {
		_spec.AddField(emocurrent.FieldEmoVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(emocurrent.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(emocurrent.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(emocurrent.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(emocurrent.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, emocurrent.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(emocurrent.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(emocurrent.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKind(); ok {
		_spec.SetField(emocurrent.FieldSourceKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURI(); ok {
		_spec.SetField(emocurrent.FieldSourceURI, field.TypeString, value)
	}
	if _u.mutation.SourceURICleared() {
		_spec.ClearField(emocurrent.FieldSourceURI, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(emocurrent.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(emocurrent.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(emocurrent.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletionReason(); ok {
		_spec.SetField(emocurrent.FieldDeletionReason, field.TypeString, value)
	}
	if _u.mutation.DeletionReasonCleared() {
		_spec.ClearField(emocurrent.FieldDeletionReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(emocurrent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EmoCurrent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emocurrent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
