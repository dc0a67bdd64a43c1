// Code generated by ent, DO NOT EDIT.

package emolink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldID, id))
}

// EmoID applies equality check predicate on the "emo_id" field. It's identical to EmoIDEQ.
func EmoID(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldEmoID, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldBranch, v))
}

// TargetEmoID applies equality check predicate on the "target_emo_id" field. It's identical to TargetEmoIDEQ.
func TargetEmoID(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldTargetEmoID, v))
}

// TargetURI applies equality check predicate on the "target_uri" field. It's identical to TargetURIEQ.
func TargetURI(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldTargetURI, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldCreatedAt, v))
}

// EmoIDEQ applies the EQ predicate on the "emo_id" field.
func EmoIDEQ(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldEmoID, v))
}

// EmoIDNEQ applies the NEQ predicate on the "emo_id" field.
func EmoIDNEQ(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldEmoID, v))
}

// EmoIDIn applies the In predicate on the "emo_id" field.
func EmoIDIn(vs ...uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldEmoID, vs...))
}

// EmoIDNotIn applies the NotIn predicate on the "emo_id" field.
func EmoIDNotIn(vs ...uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldEmoID, vs...))
}

// EmoIDGT applies the GT predicate on the "emo_id" field.
func EmoIDGT(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldEmoID, v))
}

// EmoIDGTE applies the GTE predicate on the "emo_id" field.
func EmoIDGTE(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldEmoID, v))
}

// EmoIDLT applies the LT predicate on the "emo_id" field.
func EmoIDLT(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldEmoID, v))
}

// EmoIDLTE applies the LTE predicate on the "emo_id" field.
func EmoIDLTE(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldEmoID, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldContainsFold(FieldBranch, v))
}

// RelEQ applies the EQ predicate on the "rel" field.
func RelEQ(v Rel) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldRel, v))
}

// RelNEQ applies the NEQ predicate on the "rel" field.
func RelNEQ(v Rel) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldRel, v))
}

// RelIn applies the In predicate on the "rel" field.
func RelIn(vs ...Rel) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldRel, vs...))
}

// RelNotIn applies the NotIn predicate on the "rel" field.
func RelNotIn(vs ...Rel) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldRel, vs...))
}

// TargetEmoIDEQ applies the EQ predicate on the "target_emo_id" field.
func TargetEmoIDEQ(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldTargetEmoID, v))
}

// TargetEmoIDNEQ applies the NEQ predicate on the "target_emo_id" field.
func TargetEmoIDNEQ(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldTargetEmoID, v))
}

// TargetEmoIDIn applies the In predicate on the "target_emo_id" field.
func TargetEmoIDIn(vs ...uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldTargetEmoID, vs...))
}

// TargetEmoIDNotIn applies the NotIn predicate on the "target_emo_id" field.
func TargetEmoIDNotIn(vs ...uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldTargetEmoID, vs...))
}

// TargetEmoIDGT applies the GT predicate on the "target_emo_id" field.
func TargetEmoIDGT(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldTargetEmoID, v))
}

// TargetEmoIDGTE applies the GTE predicate on the "target_emo_id" field.
func TargetEmoIDGTE(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldTargetEmoID, v))
}

// TargetEmoIDLT applies the LT predicate on the "target_emo_id" field.
func TargetEmoIDLT(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldTargetEmoID, v))
}

// TargetEmoIDLTE applies the LTE predicate on the "target_emo_id" field.
func TargetEmoIDLTE(v uuid.UUID) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldTargetEmoID, v))
}

// TargetEmoIDIsNil applies the IsNil predicate on the "target_emo_id" field.
func TargetEmoIDIsNil() predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIsNull(FieldTargetEmoID))
}

// TargetEmoIDNotNil applies the NotNil predicate on the "target_emo_id" field.
func TargetEmoIDNotNil() predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotNull(FieldTargetEmoID))
}

// TargetURIEQ applies the EQ predicate on the "target_uri" field.
func TargetURIEQ(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldTargetURI, v))
}

// TargetURINEQ applies the NEQ predicate on the "target_uri" field.
func TargetURINEQ(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldTargetURI, v))
}

// TargetURIIn applies the In predicate on the "target_uri" field.
func TargetURIIn(vs ...string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldTargetURI, vs...))
}

// TargetURINotIn applies the NotIn predicate on the "target_uri" field.
func TargetURINotIn(vs ...string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldTargetURI, vs...))
}

// TargetURIGT applies the GT predicate on the "target_uri" field.
func TargetURIGT(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldTargetURI, v))
}

// TargetURIGTE applies the GTE predicate on the "target_uri" field.
func TargetURIGTE(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldTargetURI, v))
}

// TargetURILT applies the LT predicate on the "target_uri" field.
func TargetURILT(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldTargetURI, v))
}

// TargetURILTE applies the LTE predicate on the "target_uri" field.
func TargetURILTE(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldTargetURI, v))
}

// TargetURIContains applies the Contains predicate on the "target_uri" field.
func TargetURIContains(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldContains(FieldTargetURI, v))
}

// TargetURIHasPrefix applies the HasPrefix predicate on the "target_uri" field.
func TargetURIHasPrefix(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldHasPrefix(FieldTargetURI, v))
}

// TargetURIHasSuffix applies the HasSuffix predicate on the "target_uri" field.
func TargetURIHasSuffix(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldHasSuffix(FieldTargetURI, v))
}

// TargetURIIsNil applies the IsNil predicate on the "target_uri" field.
func TargetURIIsNil() predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIsNull(FieldTargetURI))
}

// TargetURINotNil applies the NotNil predicate on the "target_uri" field.
func TargetURINotNil() predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotNull(FieldTargetURI))
}

// TargetURIEqualFold applies the EqualFold predicate on the "target_uri" field.
func TargetURIEqualFold(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEqualFold(FieldTargetURI, v))
}

// TargetURIContainsFold applies the ContainsFold predicate on the "target_uri" field.
func TargetURIContainsFold(v string) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldContainsFold(FieldTargetURI, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmoLink {
	return predicate.EmoLink(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmoLink) predicate.EmoLink {
	return predicate.EmoLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmoLink) predicate.EmoLink {
	return predicate.EmoLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmoLink) predicate.EmoLink {
	return predicate.EmoLink(sql.NotPredicates(p))
}
