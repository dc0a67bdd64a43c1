// Code generated by ent, DO NOT EDIT.

package notetag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLTE(FieldID, id))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldBranch, v))
}

// NoteID applies equality check predicate on the "note_id" field. It's identical to NoteIDEQ.
func NoteID(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldNoteID, v))
}

// Tag applies equality check predicate on the "tag" field. It's identical to TagEQ.
func Tag(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldTag, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldAppliedAt, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldContainsFold(FieldBranch, v))
}

// NoteIDEQ applies the EQ predicate on the "note_id" field.
func NoteIDEQ(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldNoteID, v))
}

// NoteIDNEQ applies the NEQ predicate on the "note_id" field.
func NoteIDNEQ(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNEQ(FieldNoteID, v))
}

// NoteIDIn applies the In predicate on the "note_id" field.
func NoteIDIn(vs ...string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldIn(FieldNoteID, vs...))
}

// NoteIDNotIn applies the NotIn predicate on the "note_id" field.
func NoteIDNotIn(vs ...string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNotIn(FieldNoteID, vs...))
}

// NoteIDGT applies the GT predicate on the "note_id" field.
func NoteIDGT(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGT(FieldNoteID, v))
}

// NoteIDGTE applies the GTE predicate on the "note_id" field.
func NoteIDGTE(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGTE(FieldNoteID, v))
}

// NoteIDLT applies the LT predicate on the "note_id" field.
func NoteIDLT(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLT(FieldNoteID, v))
}

// NoteIDLTE applies the LTE predicate on the "note_id" field.
func NoteIDLTE(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLTE(FieldNoteID, v))
}

// NoteIDContains applies the Contains predicate on the "note_id" field.
func NoteIDContains(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldContains(FieldNoteID, v))
}

// NoteIDHasPrefix applies the HasPrefix predicate on the "note_id" field.
func NoteIDHasPrefix(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldHasPrefix(FieldNoteID, v))
}

// NoteIDHasSuffix applies the HasSuffix predicate on the "note_id" field.
func NoteIDHasSuffix(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldHasSuffix(FieldNoteID, v))
}

// NoteIDEqualFold applies the EqualFold predicate on the "note_id" field.
func NoteIDEqualFold(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEqualFold(FieldNoteID, v))
}

// NoteIDContainsFold applies the ContainsFold predicate on the "note_id" field.
func NoteIDContainsFold(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldContainsFold(FieldNoteID, v))
}

// TagEQ applies the EQ predicate on the "tag" field.
func TagEQ(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldTag, v))
}

// TagNEQ applies the NEQ predicate on the "tag" field.
func TagNEQ(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNEQ(FieldTag, v))
}

// TagIn applies the In predicate on the "tag" field.
func TagIn(vs ...string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldIn(FieldTag, vs...))
}

// TagNotIn applies the NotIn predicate on the "tag" field.
func TagNotIn(vs ...string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNotIn(FieldTag, vs...))
}

// TagGT applies the GT predicate on the "tag" field.
func TagGT(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGT(FieldTag, v))
}

// TagGTE applies the GTE predicate on the "tag" field.
func TagGTE(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGTE(FieldTag, v))
}

// TagLT applies the LT predicate on the "tag" field.
func TagLT(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLT(FieldTag, v))
}

// TagLTE applies the LTE predicate on the "tag" field.
func TagLTE(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLTE(FieldTag, v))
}

// TagContains applies the Contains predicate on the "tag" field.
func TagContains(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldContains(FieldTag, v))
}

// TagHasPrefix applies the HasPrefix predicate on the "tag" field.
func TagHasPrefix(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldHasPrefix(FieldTag, v))
}

// TagHasSuffix applies the HasSuffix predicate on the "tag" field.
func TagHasSuffix(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldHasSuffix(FieldTag, v))
}

// TagEqualFold applies the EqualFold predicate on the "tag" field.
func TagEqualFold(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEqualFold(FieldTag, v))
}

// TagContainsFold applies the ContainsFold predicate on the "tag" field.
func TagContainsFold(v string) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldContainsFold(FieldTag, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.NoteTag {
	return predicate.NoteTag(sql.FieldLTE(FieldAppliedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NoteTag) predicate.NoteTag {
	return predicate.NoteTag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NoteTag) predicate.NoteTag {
	return predicate.NoteTag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NoteTag) predicate.NoteTag {
	return predicate.NoteTag(sql.NotPredicates(p))
}
