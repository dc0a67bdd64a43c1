// Code generated by ent, DO NOT EDIT.

package graphnode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldID, id))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldNodeID, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldBranch, v))
}

// EmoType applies equality check predicate on the "emo_type" field. It's identical to EmoTypeEQ.
func EmoType(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldEmoType, v))
}

// EmoVersion applies equality check predicate on the "emo_version" field. It's identical to EmoVersionEQ.
func EmoVersion(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldEmoVersion, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldDeleted, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldUpdatedAt, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldNodeID, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldContainsFold(FieldBranch, v))
}

// EmoTypeEQ applies the EQ predicate on the "emo_type" field.
func EmoTypeEQ(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldEmoType, v))
}

// EmoTypeNEQ applies the NEQ predicate on the "emo_type" field.
func EmoTypeNEQ(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldEmoType, v))
}

// EmoTypeIn applies the In predicate on the "emo_type" field.
func EmoTypeIn(vs ...string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldEmoType, vs...))
}

// EmoTypeNotIn applies the NotIn predicate on the "emo_type" field.
func EmoTypeNotIn(vs ...string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldEmoType, vs...))
}

// EmoTypeGT applies the GT predicate on the "emo_type" field.
func EmoTypeGT(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldEmoType, v))
}

// EmoTypeGTE applies the GTE predicate on the "emo_type" field.
func EmoTypeGTE(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldEmoType, v))
}

// EmoTypeLT applies the LT predicate on the "emo_type" field.
func EmoTypeLT(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldEmoType, v))
}

// EmoTypeLTE applies the LTE predicate on the "emo_type" field.
func EmoTypeLTE(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldEmoType, v))
}

// EmoTypeContains applies the Contains predicate on the "emo_type" field.
func EmoTypeContains(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldContains(FieldEmoType, v))
}

// EmoTypeHasPrefix applies the HasPrefix predicate on the "emo_type" field.
func EmoTypeHasPrefix(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldHasPrefix(FieldEmoType, v))
}

// EmoTypeHasSuffix applies the HasSuffix predicate on the "emo_type" field.
func EmoTypeHasSuffix(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldHasSuffix(FieldEmoType, v))
}

// EmoTypeEqualFold applies the EqualFold predicate on the "emo_type" field.
func EmoTypeEqualFold(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEqualFold(FieldEmoType, v))
}

// EmoTypeContainsFold applies the ContainsFold predicate on the "emo_type" field.
func EmoTypeContainsFold(v string) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldContainsFold(FieldEmoType, v))
}

// EmoVersionEQ applies the EQ predicate on the "emo_version" field.
func EmoVersionEQ(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldEmoVersion, v))
}

// EmoVersionNEQ applies the NEQ predicate on the "emo_version" field.
func EmoVersionNEQ(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldEmoVersion, v))
}

// EmoVersionIn applies the In predicate on the "emo_version" field.
func EmoVersionIn(vs ...int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldEmoVersion, vs...))
}

// EmoVersionNotIn applies the NotIn predicate on the "emo_version" field.
func EmoVersionNotIn(vs ...int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldEmoVersion, vs...))
}

// EmoVersionGT applies the GT predicate on the "emo_version" field.
func EmoVersionGT(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldEmoVersion, v))
}

// EmoVersionGTE applies the GTE predicate on the "emo_version" field.
func EmoVersionGTE(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldEmoVersion, v))
}

// EmoVersionLT applies the LT predicate on the "emo_version" field.
func EmoVersionLT(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldEmoVersion, v))
}

// EmoVersionLTE applies the LTE predicate on the "emo_version" field.
func EmoVersionLTE(v int) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldEmoVersion, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldDeleted, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GraphNode {
	return predicate.GraphNode(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphNode) predicate.GraphNode {
	return predicate.GraphNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphNode) predicate.GraphNode {
	return predicate.GraphNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphNode) predicate.GraphNode {
	return predicate.GraphNode(sql.NotPredicates(p))
}
