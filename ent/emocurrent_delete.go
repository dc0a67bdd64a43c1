// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mnemonic-nexus/mnx/ent/emocurrent"
	"github.com/mnemonic-nexus/mnx/ent/predicate"
)

// EmoCurrentDelete is the builder for deleting a EmoCurrent entity.
type EmoCurrentDelete struct {
	config
	hooks    []Hook
	mutation *EmoCurrentMutation
}

// Where appends a list predicates to the EmoCurrentDelete builder.
func (_d *EmoCurrentDelete) Where(ps ...predicate.EmoCurrent) *EmoCurrentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EmoCurrentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmoCurrentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EmoCurrentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(emocurrent.Table, sqlgraph.NewFieldSpec(emocurrent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EmoCurrentDeleteOne is the builder for deleting a single EmoCurrent entity.
type EmoCurrentDeleteOne struct {
	_d *EmoCurrentDelete
}

// Where appends a list predicates to the EmoCurrentDelete builder.
func (_d *EmoCurrentDeleteOne) Where(ps ...predicate.EmoCurrent) *EmoCurrentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EmoCurrentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{emocurrent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmoCurrentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
