// Code generated by ent, DO NOT EDIT.

package outboxentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldEventID, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldBranch, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldKind, v))
}

// PayloadHash applies equality check predicate on the "payload_hash" field. It's identical to PayloadHashEQ.
func PayloadHash(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldPayloadHash, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldReceivedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldPublishedAt, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttempts, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldLastError, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextRetryAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldEventID, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldBranch, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldKind, v))
}

// PayloadHashEQ applies the EQ predicate on the "payload_hash" field.
func PayloadHashEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldPayloadHash, v))
}

// PayloadHashNEQ applies the NEQ predicate on the "payload_hash" field.
func PayloadHashNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldPayloadHash, v))
}

// PayloadHashIn applies the In predicate on the "payload_hash" field.
func PayloadHashIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldPayloadHash, vs...))
}

// PayloadHashNotIn applies the NotIn predicate on the "payload_hash" field.
func PayloadHashNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldPayloadHash, vs...))
}

// PayloadHashGT applies the GT predicate on the "payload_hash" field.
func PayloadHashGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldPayloadHash, v))
}

// PayloadHashGTE applies the GTE predicate on the "payload_hash" field.
func PayloadHashGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldPayloadHash, v))
}

// PayloadHashLT applies the LT predicate on the "payload_hash" field.
func PayloadHashLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldPayloadHash, v))
}

// PayloadHashLTE applies the LTE predicate on the "payload_hash" field.
func PayloadHashLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldPayloadHash, v))
}

// PayloadHashContains applies the Contains predicate on the "payload_hash" field.
func PayloadHashContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldPayloadHash, v))
}

// PayloadHashHasPrefix applies the HasPrefix predicate on the "payload_hash" field.
func PayloadHashHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldPayloadHash, v))
}

// PayloadHashHasSuffix applies the HasSuffix predicate on the "payload_hash" field.
func PayloadHashHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldPayloadHash, v))
}

// PayloadHashEqualFold applies the EqualFold predicate on the "payload_hash" field.
func PayloadHashEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldPayloadHash, v))
}

// PayloadHashContainsFold applies the ContainsFold predicate on the "payload_hash" field.
func PayloadHashContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldPayloadHash, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldReceivedAt, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldPublishedAt))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldAttempts, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldLastError, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotNull(FieldNextRetryAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.NotPredicates(p))
}
