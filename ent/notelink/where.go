// Code generated by ent, DO NOT EDIT.

package notelink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldID, id))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldBranch, v))
}

// SrcID applies equality check predicate on the "src_id" field. It's identical to SrcIDEQ.
func SrcID(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldSrcID, v))
}

// DstID applies equality check predicate on the "dst_id" field. It's identical to DstIDEQ.
func DstID(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldDstID, v))
}

// LinkType applies equality check predicate on the "link_type" field. It's identical to LinkTypeEQ.
func LinkType(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldLinkType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldCreatedAt, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContainsFold(FieldBranch, v))
}

// SrcIDEQ applies the EQ predicate on the "src_id" field.
func SrcIDEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldSrcID, v))
}

// SrcIDNEQ applies the NEQ predicate on the "src_id" field.
func SrcIDNEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldSrcID, v))
}

// SrcIDIn applies the In predicate on the "src_id" field.
func SrcIDIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldSrcID, vs...))
}

// SrcIDNotIn applies the NotIn predicate on the "src_id" field.
func SrcIDNotIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldSrcID, vs...))
}

// SrcIDGT applies the GT predicate on the "src_id" field.
func SrcIDGT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldSrcID, v))
}

// SrcIDGTE applies the GTE predicate on the "src_id" field.
func SrcIDGTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldSrcID, v))
}

// SrcIDLT applies the LT predicate on the "src_id" field.
func SrcIDLT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldSrcID, v))
}

// SrcIDLTE applies the LTE predicate on the "src_id" field.
func SrcIDLTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldSrcID, v))
}

// SrcIDContains applies the Contains predicate on the "src_id" field.
func SrcIDContains(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContains(FieldSrcID, v))
}

// SrcIDHasPrefix applies the HasPrefix predicate on the "src_id" field.
func SrcIDHasPrefix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasPrefix(FieldSrcID, v))
}

// SrcIDHasSuffix applies the HasSuffix predicate on the "src_id" field.
func SrcIDHasSuffix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasSuffix(FieldSrcID, v))
}

// SrcIDEqualFold applies the EqualFold predicate on the "src_id" field.
func SrcIDEqualFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEqualFold(FieldSrcID, v))
}

// SrcIDContainsFold applies the ContainsFold predicate on the "src_id" field.
func SrcIDContainsFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContainsFold(FieldSrcID, v))
}

// DstIDEQ applies the EQ predicate on the "dst_id" field.
func DstIDEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldDstID, v))
}

// DstIDNEQ applies the NEQ predicate on the "dst_id" field.
func DstIDNEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldDstID, v))
}

// DstIDIn applies the In predicate on the "dst_id" field.
func DstIDIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldDstID, vs...))
}

// DstIDNotIn applies the NotIn predicate on the "dst_id" field.
func DstIDNotIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldDstID, vs...))
}

// DstIDGT applies the GT predicate on the "dst_id" field.
func DstIDGT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldDstID, v))
}

// DstIDGTE applies the GTE predicate on the "dst_id" field.
func DstIDGTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldDstID, v))
}

// DstIDLT applies the LT predicate on the "dst_id" field.
func DstIDLT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldDstID, v))
}

// DstIDLTE applies the LTE predicate on the "dst_id" field.
func DstIDLTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldDstID, v))
}

// DstIDContains applies the Contains predicate on the "dst_id" field.
func DstIDContains(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContains(FieldDstID, v))
}

// DstIDHasPrefix applies the HasPrefix predicate on the "dst_id" field.
func DstIDHasPrefix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasPrefix(FieldDstID, v))
}

// DstIDHasSuffix applies the HasSuffix predicate on the "dst_id" field.
func DstIDHasSuffix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasSuffix(FieldDstID, v))
}

// DstIDEqualFold applies the EqualFold predicate on the "dst_id" field.
func DstIDEqualFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEqualFold(FieldDstID, v))
}

// DstIDContainsFold applies the ContainsFold predicate on the "dst_id" field.
func DstIDContainsFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContainsFold(FieldDstID, v))
}

// LinkTypeEQ applies the EQ predicate on the "link_type" field.
func LinkTypeEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldLinkType, v))
}

// LinkTypeNEQ applies the NEQ predicate on the "link_type" field.
func LinkTypeNEQ(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldLinkType, v))
}

// LinkTypeIn applies the In predicate on the "link_type" field.
func LinkTypeIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldLinkType, vs...))
}

// LinkTypeNotIn applies the NotIn predicate on the "link_type" field.
func LinkTypeNotIn(vs ...string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldLinkType, vs...))
}

// LinkTypeGT applies the GT predicate on the "link_type" field.
func LinkTypeGT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldLinkType, v))
}

// LinkTypeGTE applies the GTE predicate on the "link_type" field.
func LinkTypeGTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldLinkType, v))
}

// LinkTypeLT applies the LT predicate on the "link_type" field.
func LinkTypeLT(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldLinkType, v))
}

// LinkTypeLTE applies the LTE predicate on the "link_type" field.
func LinkTypeLTE(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldLinkType, v))
}

// LinkTypeContains applies the Contains predicate on the "link_type" field.
func LinkTypeContains(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContains(FieldLinkType, v))
}

// LinkTypeHasPrefix applies the HasPrefix predicate on the "link_type" field.
func LinkTypeHasPrefix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasPrefix(FieldLinkType, v))
}

// LinkTypeHasSuffix applies the HasSuffix predicate on the "link_type" field.
func LinkTypeHasSuffix(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldHasSuffix(FieldLinkType, v))
}

// LinkTypeEqualFold applies the EqualFold predicate on the "link_type" field.
func LinkTypeEqualFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEqualFold(FieldLinkType, v))
}

// LinkTypeContainsFold applies the ContainsFold predicate on the "link_type" field.
func LinkTypeContainsFold(v string) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldContainsFold(FieldLinkType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NoteLink {
	return predicate.NoteLink(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NoteLink) predicate.NoteLink {
	return predicate.NoteLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NoteLink) predicate.NoteLink {
	return predicate.NoteLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NoteLink) predicate.NoteLink {
	return predicate.NoteLink(sql.NotPredicates(p))
}
