// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldID, id))
}

// SrcID applies equality check predicate on the "src_id" field. It's identical to SrcIDEQ.
func SrcID(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSrcID, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldBranch, v))
}

// Rel applies equality check predicate on the "rel" field. It's identical to RelEQ.
func Rel(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRel, v))
}

// DstID applies equality check predicate on the "dst_id" field. It's identical to DstIDEQ.
func DstID(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDstID, v))
}

// DstURI applies equality check predicate on the "dst_uri" field. It's identical to DstURIEQ.
func DstURI(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDstURI, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// SrcIDEQ applies the EQ predicate on the "src_id" field.
func SrcIDEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSrcID, v))
}

// SrcIDNEQ applies the NEQ predicate on the "src_id" field.
func SrcIDNEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldSrcID, v))
}

// SrcIDIn applies the In predicate on the "src_id" field.
func SrcIDIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldSrcID, vs...))
}

// SrcIDNotIn applies the NotIn predicate on the "src_id" field.
func SrcIDNotIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldSrcID, vs...))
}

// SrcIDGT applies the GT predicate on the "src_id" field.
func SrcIDGT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldSrcID, v))
}

// SrcIDGTE applies the GTE predicate on the "src_id" field.
func SrcIDGTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldSrcID, v))
}

// SrcIDLT applies the LT predicate on the "src_id" field.
func SrcIDLT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldSrcID, v))
}

// SrcIDLTE applies the LTE predicate on the "src_id" field.
func SrcIDLTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldSrcID, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldBranch, v))
}

// RelEQ applies the EQ predicate on the "rel" field.
func RelEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRel, v))
}

// RelNEQ applies the NEQ predicate on the "rel" field.
func RelNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldRel, v))
}

// RelIn applies the In predicate on the "rel" field.
func RelIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldRel, vs...))
}

// RelNotIn applies the NotIn predicate on the "rel" field.
func RelNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldRel, vs...))
}

// RelGT applies the GT predicate on the "rel" field.
func RelGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldRel, v))
}

// RelGTE applies the GTE predicate on the "rel" field.
func RelGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldRel, v))
}

// RelLT applies the LT predicate on the "rel" field.
func RelLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldRel, v))
}

// RelLTE applies the LTE predicate on the "rel" field.
func RelLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldRel, v))
}

// RelContains applies the Contains predicate on the "rel" field.
func RelContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldRel, v))
}

// RelHasPrefix applies the HasPrefix predicate on the "rel" field.
func RelHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldRel, v))
}

// RelHasSuffix applies the HasSuffix predicate on the "rel" field.
func RelHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldRel, v))
}

// RelEqualFold applies the EqualFold predicate on the "rel" field.
func RelEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldRel, v))
}

// RelContainsFold applies the ContainsFold predicate on the "rel" field.
func RelContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldRel, v))
}

// DstIDEQ applies the EQ predicate on the "dst_id" field.
func DstIDEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDstID, v))
}

// DstIDNEQ applies the NEQ predicate on the "dst_id" field.
func DstIDNEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldDstID, v))
}

// DstIDIn applies the In predicate on the "dst_id" field.
func DstIDIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldDstID, vs...))
}

// DstIDNotIn applies the NotIn predicate on the "dst_id" field.
func DstIDNotIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldDstID, vs...))
}

// DstIDGT applies the GT predicate on the "dst_id" field.
func DstIDGT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldDstID, v))
}

// DstIDGTE applies the GTE predicate on the "dst_id" field.
func DstIDGTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldDstID, v))
}

// DstIDLT applies the LT predicate on the "dst_id" field.
func DstIDLT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldDstID, v))
}

// DstIDLTE applies the LTE predicate on the "dst_id" field.
func DstIDLTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldDstID, v))
}

// DstIDIsNil applies the IsNil predicate on the "dst_id" field.
func DstIDIsNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIsNull(FieldDstID))
}

// DstIDNotNil applies the NotNil predicate on the "dst_id" field.
func DstIDNotNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotNull(FieldDstID))
}

// DstURIEQ applies the EQ predicate on the "dst_uri" field.
func DstURIEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDstURI, v))
}

// DstURINEQ applies the NEQ predicate on the "dst_uri" field.
func DstURINEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldDstURI, v))
}

// DstURIIn applies the In predicate on the "dst_uri" field.
func DstURIIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldDstURI, vs...))
}

// DstURINotIn applies the NotIn predicate on the "dst_uri" field.
func DstURINotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldDstURI, vs...))
}

// DstURIGT applies the GT predicate on the "dst_uri" field.
func DstURIGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldDstURI, v))
}

// DstURIGTE applies the GTE predicate on the "dst_uri" field.
func DstURIGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldDstURI, v))
}

// DstURILT applies the LT predicate on the "dst_uri" field.
func DstURILT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldDstURI, v))
}

// DstURILTE applies the LTE predicate on the "dst_uri" field.
func DstURILTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldDstURI, v))
}

// DstURIContains applies the Contains predicate on the "dst_uri" field.
func DstURIContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldDstURI, v))
}

// DstURIHasPrefix applies the HasPrefix predicate on the "dst_uri" field.
func DstURIHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldDstURI, v))
}

// DstURIHasSuffix applies the HasSuffix predicate on the "dst_uri" field.
func DstURIHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldDstURI, v))
}

// DstURIIsNil applies the IsNil predicate on the "dst_uri" field.
func DstURIIsNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIsNull(FieldDstURI))
}

// DstURINotNil applies the NotNil predicate on the "dst_uri" field.
func DstURINotNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotNull(FieldDstURI))
}

// DstURIEqualFold applies the EqualFold predicate on the "dst_uri" field.
func DstURIEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldDstURI, v))
}

// DstURIContainsFold applies the ContainsFold predicate on the "dst_uri" field.
func DstURIContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldDstURI, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.NotPredicates(p))
}
