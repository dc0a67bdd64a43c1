// Code generated by ent, DO NOT EDIT.

package emohistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldID, id))
}

// ChangeID applies equality check predicate on the "change_id" field. It's identical to ChangeIDEQ.
func ChangeID(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldChangeID, v))
}

// EmoID applies equality check predicate on the "emo_id" field. It's identical to EmoIDEQ.
func EmoID(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldEmoID, v))
}

// EmoVersion applies equality check predicate on the "emo_version" field. It's identical to EmoVersionEQ.
func EmoVersion(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldEmoVersion, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldBranch, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldContentHash, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldIdempotencyKey, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldRecordedAt, v))
}

// ChangeIDEQ applies the EQ predicate on the "change_id" field.
func ChangeIDEQ(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldChangeID, v))
}

// ChangeIDNEQ applies the NEQ predicate on the "change_id" field.
func ChangeIDNEQ(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldChangeID, v))
}

// ChangeIDIn applies the In predicate on the "change_id" field.
func ChangeIDIn(vs ...uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldChangeID, vs...))
}

// ChangeIDNotIn applies the NotIn predicate on the "change_id" field.
func ChangeIDNotIn(vs ...uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldChangeID, vs...))
}

// ChangeIDGT applies the GT predicate on the "change_id" field.
func ChangeIDGT(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldChangeID, v))
}

// ChangeIDGTE applies the GTE predicate on the "change_id" field.
func ChangeIDGTE(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldChangeID, v))
}

// ChangeIDLT applies the LT predicate on the "change_id" field.
func ChangeIDLT(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldChangeID, v))
}

// ChangeIDLTE applies the LTE predicate on the "change_id" field.
func ChangeIDLTE(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldChangeID, v))
}

// ChangeIDIsNil applies the IsNil predicate on the "change_id" field.
func ChangeIDIsNil() predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIsNull(FieldChangeID))
}

// ChangeIDNotNil applies the NotNil predicate on the "change_id" field.
func ChangeIDNotNil() predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotNull(FieldChangeID))
}

// EmoIDEQ applies the EQ predicate on the "emo_id" field.
func EmoIDEQ(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldEmoID, v))
}

// EmoIDNEQ applies the NEQ predicate on the "emo_id" field.
func EmoIDNEQ(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldEmoID, v))
}

// EmoIDIn applies the In predicate on the "emo_id" field.
func EmoIDIn(vs ...uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldEmoID, vs...))
}

// EmoIDNotIn applies the NotIn predicate on the "emo_id" field.
func EmoIDNotIn(vs ...uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldEmoID, vs...))
}

// EmoIDGT applies the GT predicate on the "emo_id" field.
func EmoIDGT(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldEmoID, v))
}

// EmoIDGTE applies the GTE predicate on the "emo_id" field.
func EmoIDGTE(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldEmoID, v))
}

// EmoIDLT applies the LT predicate on the "emo_id" field.
func EmoIDLT(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldEmoID, v))
}

// EmoIDLTE applies the LTE predicate on the "emo_id" field.
func EmoIDLTE(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldEmoID, v))
}

// EmoVersionEQ applies the EQ predicate on the "emo_version" field.
func EmoVersionEQ(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldEmoVersion, v))
}

// EmoVersionNEQ applies the NEQ predicate on the "emo_version" field.
func EmoVersionNEQ(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldEmoVersion, v))
}

// EmoVersionIn applies the In predicate on the "emo_version" field.
func EmoVersionIn(vs ...int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldEmoVersion, vs...))
}

// EmoVersionNotIn applies the NotIn predicate on the "emo_version" field.
func EmoVersionNotIn(vs ...int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldEmoVersion, vs...))
}

// EmoVersionGT applies the GT predicate on the "emo_version" field.
func EmoVersionGT(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldEmoVersion, v))
}

// EmoVersionGTE applies the GTE predicate on the "emo_version" field.
func EmoVersionGTE(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldEmoVersion, v))
}

// EmoVersionLT applies the LT predicate on the "emo_version" field.
func EmoVersionLT(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldEmoVersion, v))
}

// EmoVersionLTE applies the LTE predicate on the "emo_version" field.
func EmoVersionLTE(v int) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldEmoVersion, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldContainsFold(FieldBranch, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v Operation) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v Operation) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...Operation) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...Operation) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldOperation, vs...))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldContainsFold(FieldContentHash, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.EmoHistory {
	return predicate.EmoHistory(sql.FieldLTE(FieldRecordedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmoHistory) predicate.EmoHistory {
	return predicate.EmoHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmoHistory) predicate.EmoHistory {
	return predicate.EmoHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmoHistory) predicate.EmoHistory {
	return predicate.EmoHistory(sql.NotPredicates(p))
}
