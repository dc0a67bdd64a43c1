// Code generated by ent, DO NOT EDIT.

package watermark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Watermark {
	return predicate.Watermark(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Watermark {
	return predicate.Watermark(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Watermark {
	return predicate.Watermark(sql.FieldLTE(FieldID, id))
}

// ProjectorName applies equality check predicate on the "projector_name" field. It's identical to ProjectorNameEQ.
func ProjectorName(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldProjectorName, v))
}

// WorldID applies equality check predicate on the "world_id" field. It's identical to WorldIDEQ.
func WorldID(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldWorldID, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldBranch, v))
}

// LastProcessedSeq applies equality check predicate on the "last_processed_seq" field. It's identical to LastProcessedSeqEQ.
func LastProcessedSeq(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldLastProcessedSeq, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectorNameEQ applies the EQ predicate on the "projector_name" field.
func ProjectorNameEQ(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldProjectorName, v))
}

// ProjectorNameNEQ applies the NEQ predicate on the "projector_name" field.
func ProjectorNameNEQ(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldNEQ(FieldProjectorName, v))
}

// ProjectorNameIn applies the In predicate on the "projector_name" field.
func ProjectorNameIn(vs ...string) predicate.Watermark {
	return predicate.Watermark(sql.FieldIn(FieldProjectorName, vs...))
}

// ProjectorNameNotIn applies the NotIn predicate on the "projector_name" field.
func ProjectorNameNotIn(vs ...string) predicate.Watermark {
	return predicate.Watermark(sql.FieldNotIn(FieldProjectorName, vs...))
}

// ProjectorNameGT applies the GT predicate on the "projector_name" field.
func ProjectorNameGT(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldGT(FieldProjectorName, v))
}

// ProjectorNameGTE applies the GTE predicate on the "projector_name" field.
func ProjectorNameGTE(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldGTE(FieldProjectorName, v))
}

// ProjectorNameLT applies the LT predicate on the "projector_name" field.
func ProjectorNameLT(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldLT(FieldProjectorName, v))
}

// ProjectorNameLTE applies the LTE predicate on the "projector_name" field.
func ProjectorNameLTE(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldLTE(FieldProjectorName, v))
}

// ProjectorNameContains applies the Contains predicate on the "projector_name" field.
func ProjectorNameContains(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldContains(FieldProjectorName, v))
}

// ProjectorNameHasPrefix applies the HasPrefix predicate on the "projector_name" field.
func ProjectorNameHasPrefix(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldHasPrefix(FieldProjectorName, v))
}

// ProjectorNameHasSuffix applies the HasSuffix predicate on the "projector_name" field.
func ProjectorNameHasSuffix(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldHasSuffix(FieldProjectorName, v))
}

// ProjectorNameEqualFold applies the EqualFold predicate on the "projector_name" field.
func ProjectorNameEqualFold(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldEqualFold(FieldProjectorName, v))
}

// ProjectorNameContainsFold applies the ContainsFold predicate on the "projector_name" field.
func ProjectorNameContainsFold(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldContainsFold(FieldProjectorName, v))
}

// WorldIDEQ applies the EQ predicate on the "world_id" field.
func WorldIDEQ(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldWorldID, v))
}

// WorldIDNEQ applies the NEQ predicate on the "world_id" field.
func WorldIDNEQ(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldNEQ(FieldWorldID, v))
}

// WorldIDIn applies the In predicate on the "world_id" field.
func WorldIDIn(vs ...uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldIn(FieldWorldID, vs...))
}

// WorldIDNotIn applies the NotIn predicate on the "world_id" field.
func WorldIDNotIn(vs ...uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldNotIn(FieldWorldID, vs...))
}

// WorldIDGT applies the GT predicate on the "world_id" field.
func WorldIDGT(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldGT(FieldWorldID, v))
}

// WorldIDGTE applies the GTE predicate on the "world_id" field.
func WorldIDGTE(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldGTE(FieldWorldID, v))
}

// WorldIDLT applies the LT predicate on the "world_id" field.
func WorldIDLT(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldLT(FieldWorldID, v))
}

// WorldIDLTE applies the LTE predicate on the "world_id" field.
func WorldIDLTE(v uuid.UUID) predicate.Watermark {
	return predicate.Watermark(sql.FieldLTE(FieldWorldID, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.Watermark {
	return predicate.Watermark(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.Watermark {
	return predicate.Watermark(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.Watermark {
	return predicate.Watermark(sql.FieldContainsFold(FieldBranch, v))
}

// LastProcessedSeqEQ applies the EQ predicate on the "last_processed_seq" field.
func LastProcessedSeqEQ(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldLastProcessedSeq, v))
}

// LastProcessedSeqNEQ applies the NEQ predicate on the "last_processed_seq" field.
func LastProcessedSeqNEQ(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldNEQ(FieldLastProcessedSeq, v))
}

// LastProcessedSeqIn applies the In predicate on the "last_processed_seq" field.
func LastProcessedSeqIn(vs ...int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldIn(FieldLastProcessedSeq, vs...))
}

// LastProcessedSeqNotIn applies the NotIn predicate on the "last_processed_seq" field.
func LastProcessedSeqNotIn(vs ...int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldNotIn(FieldLastProcessedSeq, vs...))
}

// LastProcessedSeqGT applies the GT predicate on the "last_processed_seq" field.
func LastProcessedSeqGT(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldGT(FieldLastProcessedSeq, v))
}

// LastProcessedSeqGTE applies the GTE predicate on the "last_processed_seq" field.
func LastProcessedSeqGTE(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldGTE(FieldLastProcessedSeq, v))
}

// LastProcessedSeqLT applies the LT predicate on the "last_processed_seq" field.
func LastProcessedSeqLT(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldLT(FieldLastProcessedSeq, v))
}

// LastProcessedSeqLTE applies the LTE predicate on the "last_processed_seq" field.
func LastProcessedSeqLTE(v int64) predicate.Watermark {
	return predicate.Watermark(sql.FieldLTE(FieldLastProcessedSeq, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Watermark {
	return predicate.Watermark(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Watermark) predicate.Watermark {
	return predicate.Watermark(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Watermark) predicate.Watermark {
	return predicate.Watermark(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Watermark) predicate.Watermark {
	return predicate.Watermark(sql.NotPredicates(p))
}
