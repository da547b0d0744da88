// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/learningfeedback"
)

// LearningFeedbackCreate is the builder for creating a LearningFeedback entity.
type LearningFeedbackCreate struct {
	config
	mutation *LearningFeedbackMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *LearningFeedbackCreate) SetAgentID(v string) *LearningFeedbackCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *LearningFeedbackCreate) SetRunID(v string) *LearningFeedbackCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *LearningFeedbackCreate) SetNillableRunID(v *string) *LearningFeedbackCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *LearningFeedbackCreate) SetTraceID(v string) *LearningFeedbackCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *LearningFeedbackCreate) SetNillableTraceID(v *string) *LearningFeedbackCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetFeedbackType sets the "feedback_type" field.
func (_c *LearningFeedbackCreate) SetFeedbackType(v string) *LearningFeedbackCreate {
	_c.mutation.SetFeedbackType(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *LearningFeedbackCreate) SetTaskDescription(v string) *LearningFeedbackCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_c *LearningFeedbackCreate) SetNillableTaskDescription(v *string) *LearningFeedbackCreate {
	if v != nil {
		_c.SetTaskDescription(*v)
	}
	return _c
}

// SetActionTaken sets the "action_taken" field.
func (_c *LearningFeedbackCreate) SetActionTaken(v map[string]interface{}) *LearningFeedbackCreate {
	_c.mutation.SetActionTaken(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *LearningFeedbackCreate) SetOutcome(v string) *LearningFeedbackCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LearningFeedbackCreate) SetSuccess(v bool) *LearningFeedbackCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LearningFeedbackCreate) SetErrorMessage(v string) *LearningFeedbackCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LearningFeedbackCreate) SetNillableErrorMessage(v *string) *LearningFeedbackCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_c *LearningFeedbackCreate) SetImprovementSuggestions(v string) *LearningFeedbackCreate {
	_c.mutation.SetImprovementSuggestions(v)
	return _c
}

// SetNillableImprovementSuggestions sets the "improvement_suggestions" field if the given value is not nil.
func (_c *LearningFeedbackCreate) SetNillableImprovementSuggestions(v *string) *LearningFeedbackCreate {
	if v != nil {
		_c.SetImprovementSuggestions(*v)
	}
	return _c
}

// SetFeedbackMetadata sets the "feedback_metadata" field.
func (_c *LearningFeedbackCreate) SetFeedbackMetadata(v map[string]interface{}) *LearningFeedbackCreate {
	_c.mutation.SetFeedbackMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningFeedbackCreate) SetCreatedAt(v time.Time) *LearningFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningFeedbackCreate) SetNillableCreatedAt(v *time.Time) *LearningFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningFeedbackCreate) SetID(v string) *LearningFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningFeedbackMutation object of the builder.
func (_c *LearningFeedbackCreate) Mutation() *LearningFeedbackMutation {
	return _c.mutation
}

// Save creates the LearningFeedback in the database.
func (_c *LearningFeedbackCreate) Save(ctx context.Context) (*LearningFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningFeedbackCreate) SaveX(ctx context.Context) *LearningFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningfeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningFeedbackCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "LearningFeedback.agent_id"`)}
	}
	if _, ok := _c.mutation.FeedbackType(); !ok {
		return &ValidationError{Name: "feedback_type", err: errors.New(`ent: missing required field "LearningFeedback.feedback_type"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "LearningFeedback.outcome"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LearningFeedback.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningFeedback.created_at"`)}
	}
	return nil
}

func (_c *LearningFeedbackCreate) sqlSave(ctx context.Context) (*LearningFeedback, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearningFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningFeedbackCreate) createSpec() (*LearningFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningfeedback.Table, sqlgraph.NewFieldSpec(learningfeedback.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(learningfeedback.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(learningfeedback.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(learningfeedback.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.FeedbackType(); ok {
		_spec.SetField(learningfeedback.FieldFeedbackType, field.TypeString, value)
		_node.FeedbackType = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(learningfeedback.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.ActionTaken(); ok {
		_spec.SetField(learningfeedback.FieldActionTaken, field.TypeJSON, value)
		_node.ActionTaken = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(learningfeedback.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(learningfeedback.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(learningfeedback.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(learningfeedback.FieldImprovementSuggestions, field.TypeString, value)
		_node.ImprovementSuggestions = value
	}
	if value, ok := _c.mutation.FeedbackMetadata(); ok {
		_spec.SetField(learningfeedback.FieldFeedbackMetadata, field.TypeJSON, value)
		_node.FeedbackMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningfeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearningFeedbackCreateBulk is the builder for creating many LearningFeedback entities in bulk.
type LearningFeedbackCreateBulk struct {
	config
	err      error
	builders []*LearningFeedbackCreate
}

// Save creates the LearningFeedback entities in the database.
func (_c *LearningFeedbackCreateBulk) Save(ctx context.Context) ([]*LearningFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningFeedbackMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningFeedbackCreateBulk) SaveX(ctx context.Context) []*LearningFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
