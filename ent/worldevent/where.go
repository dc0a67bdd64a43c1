// Code generated by ent, DO NOT EDIT.

package worldevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldEventID, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldBranch, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldKind, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// PayloadHash applies equality check predicate on the "payload_hash" field. It's identical to PayloadHashEQ.
func PayloadHash(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldPayloadHash, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldIdempotencyKey, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldEventID, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContainsFold(FieldBranch, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContainsFold(FieldKind, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// OccurredAtIsNil applies the IsNil predicate on the "occurred_at" field.
func OccurredAtIsNil() predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIsNull(FieldOccurredAt))
}

// OccurredAtNotNil applies the NotNil predicate on the "occurred_at" field.
func OccurredAtNotNil() predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotNull(FieldOccurredAt))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldReceivedAt, v))
}

// PayloadHashEQ applies the EQ predicate on the "payload_hash" field.
func PayloadHashEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldPayloadHash, v))
}

// PayloadHashNEQ applies the NEQ predicate on the "payload_hash" field.
func PayloadHashNEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldPayloadHash, v))
}

// PayloadHashIn applies the In predicate on the "payload_hash" field.
func PayloadHashIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldPayloadHash, vs...))
}

// PayloadHashNotIn applies the NotIn predicate on the "payload_hash" field.
func PayloadHashNotIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldPayloadHash, vs...))
}

// PayloadHashGT applies the GT predicate on the "payload_hash" field.
func PayloadHashGT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldPayloadHash, v))
}

// PayloadHashGTE applies the GTE predicate on the "payload_hash" field.
func PayloadHashGTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldPayloadHash, v))
}

// PayloadHashLT applies the LT predicate on the "payload_hash" field.
func PayloadHashLT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldPayloadHash, v))
}

// PayloadHashLTE applies the LTE predicate on the "payload_hash" field.
func PayloadHashLTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldPayloadHash, v))
}

// PayloadHashContains applies the Contains predicate on the "payload_hash" field.
func PayloadHashContains(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContains(FieldPayloadHash, v))
}

// PayloadHashHasPrefix applies the HasPrefix predicate on the "payload_hash" field.
func PayloadHashHasPrefix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasPrefix(FieldPayloadHash, v))
}

// PayloadHashHasSuffix applies the HasSuffix predicate on the "payload_hash" field.
func PayloadHashHasSuffix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasSuffix(FieldPayloadHash, v))
}

// PayloadHashEqualFold applies the EqualFold predicate on the "payload_hash" field.
func PayloadHashEqualFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEqualFold(FieldPayloadHash, v))
}

// PayloadHashContainsFold applies the ContainsFold predicate on the "payload_hash" field.
func PayloadHashContainsFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContainsFold(FieldPayloadHash, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.WorldEvent {
	return predicate.WorldEvent(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorldEvent) predicate.WorldEvent {
	return predicate.WorldEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorldEvent) predicate.WorldEvent {
	return predicate.WorldEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorldEvent) predicate.WorldEvent {
	return predicate.WorldEvent(sql.NotPredicates(p))
}
