// Code generated by ent, DO NOT EDIT.

package emocurrent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldID, id))
}

// EmoID applies equality check predicate on the "emo_id" field. It's identical to EmoIDEQ.
func EmoID(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldEmoID, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldBranch, v))
}

// EmoVersion applies equality check predicate on the "emo_version" field. It's identical to EmoVersionEQ.
func EmoVersion(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldEmoVersion, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldTenantID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldContent, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldMimeType, v))
}

// SourceURI applies equality check predicate on the "source_uri" field. It's identical to SourceURIEQ.
func SourceURI(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldSourceURI, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldDeleted, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletionReason applies equality check predicate on the "deletion_reason" field. It's identical to DeletionReasonEQ.
func DeletionReason(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldDeletionReason, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmoIDEQ applies the EQ predicate on the "emo_id" field.
func EmoIDEQ(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldEmoID, v))
}

// EmoIDNEQ applies the NEQ predicate on the "emo_id" field.
func EmoIDNEQ(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldEmoID, v))
}

// EmoIDIn applies the In predicate on the "emo_id" field.
func EmoIDIn(vs ...uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldEmoID, vs...))
}

// EmoIDNotIn applies the NotIn predicate on the "emo_id" field.
func EmoIDNotIn(vs ...uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldEmoID, vs...))
}

// EmoIDGT applies the GT predicate on the "emo_id" field.
func EmoIDGT(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldEmoID, v))
}

// EmoIDGTE applies the GTE predicate on the "emo_id" field.
func EmoIDGTE(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldEmoID, v))
}

// EmoIDLT applies the LT predicate on the "emo_id" field.
func EmoIDLT(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldEmoID, v))
}

// EmoIDLTE applies the LTE predicate on the "emo_id" field.
func EmoIDLTE(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldEmoID, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContainsFold(FieldBranch, v))
}

// EmoTypeEQ applies the EQ predicate on the "emo_type" field.
func EmoTypeEQ(v EmoType) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldEmoType, v))
}

// EmoTypeNEQ applies the NEQ predicate on the "emo_type" field.
func EmoTypeNEQ(v EmoType) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldEmoType, v))
}

// EmoTypeIn applies the In predicate on the "emo_type" field.
func EmoTypeIn(vs ...EmoType) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldEmoType, vs...))
}

// EmoTypeNotIn applies the NotIn predicate on the "emo_type" field.
func EmoTypeNotIn(vs ...EmoType) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldEmoType, vs...))
}

// EmoVersionEQ applies the EQ predicate on the "emo_version" field.
func EmoVersionEQ(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldEmoVersion, v))
}

// EmoVersionNEQ applies the NEQ predicate on the "emo_version" field.
func EmoVersionNEQ(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldEmoVersion, v))
}

// EmoVersionIn applies the In predicate on the "emo_version" field.
func EmoVersionIn(vs ...int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldEmoVersion, vs...))
}

// EmoVersionNotIn applies the NotIn predicate on the "emo_version" field.
func EmoVersionNotIn(vs ...int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldEmoVersion, vs...))
}

// EmoVersionGT applies the GT predicate on the "emo_version" field.
func EmoVersionGT(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldEmoVersion, v))
}

// EmoVersionGTE applies the GTE predicate on the "emo_version" field.
func EmoVersionGTE(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldEmoVersion, v))
}

// EmoVersionLT applies the LT predicate on the "emo_version" field.
func EmoVersionLT(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldEmoVersion, v))
}

// EmoVersionLTE applies the LTE predicate on the "emo_version" field.
func EmoVersionLTE(v int) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldEmoVersion, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldTenantID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContainsFold(FieldContent, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotNull(FieldTags))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContainsFold(FieldMimeType, v))
}

// SourceKindEQ applies the EQ predicate on the "source_kind" field.
func SourceKindEQ(v SourceKind) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldSourceKind, v))
}

// SourceKindNEQ applies the NEQ predicate on the "source_kind" field.
func SourceKindNEQ(v SourceKind) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldSourceKind, v))
}

// SourceKindIn applies the In predicate on the "source_kind" field.
func SourceKindIn(vs ...SourceKind) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldSourceKind, vs...))
}

// SourceKindNotIn applies the NotIn predicate on the "source_kind" field.
func SourceKindNotIn(vs ...SourceKind) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldSourceKind, vs...))
}

// SourceURIEQ applies the EQ predicate on the "source_uri" field.
func SourceURIEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldSourceURI, v))
}

// SourceURINEQ applies the NEQ predicate on the "source_uri" field.
func SourceURINEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldSourceURI, v))
}

// SourceURIIn applies the In predicate on the "source_uri" field.
func SourceURIIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldSourceURI, vs...))
}

// SourceURINotIn applies the NotIn predicate on the "source_uri" field.
func SourceURINotIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldSourceURI, vs...))
}

// SourceURIGT applies the GT predicate on the "source_uri" field.
func SourceURIGT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldSourceURI, v))
}

// SourceURIGTE applies the GTE predicate on the "source_uri" field.
func SourceURIGTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldSourceURI, v))
}

// SourceURILT applies the LT predicate on the "source_uri" field.
func SourceURILT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldSourceURI, v))
}

// SourceURILTE applies the LTE predicate on the "source_uri" field.
func SourceURILTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldSourceURI, v))
}

// SourceURIContains applies the Contains predicate on the "source_uri" field.
func SourceURIContains(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContains(FieldSourceURI, v))
}

// SourceURIHasPrefix applies the HasPrefix predicate on the "source_uri" field.
func SourceURIHasPrefix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasPrefix(FieldSourceURI, v))
}

// SourceURIHasSuffix applies the HasSuffix predicate on the "source_uri" field.
func SourceURIHasSuffix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasSuffix(FieldSourceURI, v))
}

// SourceURIIsNil applies the IsNil predicate on the "source_uri" field.
func SourceURIIsNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIsNull(FieldSourceURI))
}

// SourceURINotNil applies the NotNil predicate on the "source_uri" field.
func SourceURINotNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotNull(FieldSourceURI))
}

// SourceURIEqualFold applies the EqualFold predicate on the "source_uri" field.
func SourceURIEqualFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEqualFold(FieldSourceURI, v))
}

// SourceURIContainsFold applies the ContainsFold predicate on the "source_uri" field.
func SourceURIContainsFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContainsFold(FieldSourceURI, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldDeleted, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotNull(FieldDeletedAt))
}

// DeletionReasonEQ applies the EQ predicate on the "deletion_reason" field.
func DeletionReasonEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldDeletionReason, v))
}

// DeletionReasonNEQ applies the NEQ predicate on the "deletion_reason" field.
func DeletionReasonNEQ(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldDeletionReason, v))
}

// DeletionReasonIn applies the In predicate on the "deletion_reason" field.
func DeletionReasonIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldDeletionReason, vs...))
}

// DeletionReasonNotIn applies the NotIn predicate on the "deletion_reason" field.
func DeletionReasonNotIn(vs ...string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldDeletionReason, vs...))
}

// DeletionReasonGT applies the GT predicate on the "deletion_reason" field.
func DeletionReasonGT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldDeletionReason, v))
}

// DeletionReasonGTE applies the GTE predicate on the "deletion_reason" field.
func DeletionReasonGTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldDeletionReason, v))
}

// DeletionReasonLT applies the LT predicate on the "deletion_reason" field.
func DeletionReasonLT(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldDeletionReason, v))
}

// DeletionReasonLTE applies the LTE predicate on the "deletion_reason" field.
func DeletionReasonLTE(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldDeletionReason, v))
}

// DeletionReasonContains applies the Contains predicate on the "deletion_reason" field.
func DeletionReasonContains(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContains(FieldDeletionReason, v))
}

// DeletionReasonHasPrefix applies the HasPrefix predicate on the "deletion_reason" field.
func DeletionReasonHasPrefix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasPrefix(FieldDeletionReason, v))
}

// DeletionReasonHasSuffix applies the HasSuffix predicate on the "deletion_reason" field.
func DeletionReasonHasSuffix(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldHasSuffix(FieldDeletionReason, v))
}

// DeletionReasonIsNil applies the IsNil predicate on the "deletion_reason" field.
func DeletionReasonIsNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIsNull(FieldDeletionReason))
}

// DeletionReasonNotNil applies the NotNil predicate on the "deletion_reason" field.
func DeletionReasonNotNil() predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotNull(FieldDeletionReason))
}

// DeletionReasonEqualFold applies the EqualFold predicate on the "deletion_reason" field.
func DeletionReasonEqualFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEqualFold(FieldDeletionReason, v))
}

// DeletionReasonContainsFold applies the ContainsFold predicate on the "deletion_reason" field.
func DeletionReasonContainsFold(v string) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldContainsFold(FieldDeletionReason, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmoCurrent) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmoCurrent) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmoCurrent) predicate.EmoCurrent {
	return predicate.EmoCurrent(sql.NotPredicates(p))
}
