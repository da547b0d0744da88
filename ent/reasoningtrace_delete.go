// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/predicate"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
)

// ReasoningTraceDelete is the builder for deleting a ReasoningTrace entity.
type ReasoningTraceDelete struct {
	config
	hooks    []Hook
	mutation *ReasoningTraceMutation
}

// Where appends a list predicates to the ReasoningTraceDelete builder.
func (_d *ReasoningTraceDelete) Where(ps ...predicate.ReasoningTrace) *ReasoningTraceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReasoningTraceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReasoningTraceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReasoningTraceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reasoningtrace.Table, sqlgraph.NewFieldSpec(reasoningtrace.FieldID, field.TypeString))
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

// ReasoningTraceDeleteOne is the builder for deleting a single ReasoningTrace entity.
type ReasoningTraceDeleteOne struct {
	_d *ReasoningTraceDelete
}

// Where appends a list predicates to the ReasoningTraceDelete builder.
func (_d *ReasoningTraceDeleteOne) Where(ps ...predicate.ReasoningTrace) *ReasoningTraceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReasoningTraceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reasoningtrace.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReasoningTraceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
