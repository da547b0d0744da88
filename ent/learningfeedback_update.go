// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/apa-platform/apacore/ent/predicate"
)

// LearningFeedbackUpdate is the builder for updating LearningFeedback entities.
type LearningFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *LearningFeedbackMutation
}

// Where appends a list predicates to the LearningFeedbackUpdate builder.
func (_u *LearningFeedbackUpdate) Where(ps ...predicate.LearningFeedback) *LearningFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LearningFeedbackUpdate) SetAgentID(v string) *LearningFeedbackUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableAgentID(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *LearningFeedbackUpdate) SetRunID(v string) *LearningFeedbackUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableRunID(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *LearningFeedbackUpdate) ClearRunID() *LearningFeedbackUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *LearningFeedbackUpdate) SetTraceID(v string) *LearningFeedbackUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableTraceID(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *LearningFeedbackUpdate) ClearTraceID() *LearningFeedbackUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetFeedbackType sets the "feedback_type" field.
func (_u *LearningFeedbackUpdate) SetFeedbackType(v string) *LearningFeedbackUpdate {
	_u.mutation.SetFeedbackType(v)
	return _u
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableFeedbackType(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetFeedbackType(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *LearningFeedbackUpdate) SetTaskDescription(v string) *LearningFeedbackUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableTaskDescription(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *LearningFeedbackUpdate) ClearTaskDescription() *LearningFeedbackUpdate {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetActionTaken sets the "action_taken" field.
func (_u *LearningFeedbackUpdate) SetActionTaken(v map[string]interface{}) *LearningFeedbackUpdate {
	_u.mutation.SetActionTaken(v)
	return _u
}

// ClearActionTaken clears the value of the "action_taken" field.
func (_u *LearningFeedbackUpdate) ClearActionTaken() *LearningFeedbackUpdate {
	_u.mutation.ClearActionTaken()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *LearningFeedbackUpdate) SetOutcome(v string) *LearningFeedbackUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableOutcome(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LearningFeedbackUpdate) SetSuccess(v bool) *LearningFeedbackUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableSuccess(v *bool) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LearningFeedbackUpdate) SetErrorMessage(v string) *LearningFeedbackUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableErrorMessage(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LearningFeedbackUpdate) ClearErrorMessage() *LearningFeedbackUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_u *LearningFeedbackUpdate) SetImprovementSuggestions(v string) *LearningFeedbackUpdate {
	_u.mutation.SetImprovementSuggestions(v)
	return _u
}

// SetNillableImprovementSuggestions sets the "improvement_suggestions" field if the given value is not nil.
func (_u *LearningFeedbackUpdate) SetNillableImprovementSuggestions(v *string) *LearningFeedbackUpdate {
	if v != nil {
		_u.SetImprovementSuggestions(*v)
	}
	return _u
}

// ClearImprovementSuggestions clears the value of the "improvement_suggestions" field.
func (_u *LearningFeedbackUpdate) ClearImprovementSuggestions() *LearningFeedbackUpdate {
	_u.mutation.ClearImprovementSuggestions()
	return _u
}

// SetFeedbackMetadata sets the "feedback_metadata" field.
func (_u *LearningFeedbackUpdate) SetFeedbackMetadata(v map[string]interface{}) *LearningFeedbackUpdate {
	_u.mutation.SetFeedbackMetadata(v)
	return _u
}

// ClearFeedbackMetadata clears the value of the "feedback_metadata" field.
func (_u *LearningFeedbackUpdate) ClearFeedbackMetadata() *LearningFeedbackUpdate {
	_u.mutation.ClearFeedbackMetadata()
	return _u
}

// Mutation returns the LearningFeedbackMutation object of the builder.
func (_u *LearningFeedbackUpdate) Mutation() *LearningFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearningFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningfeedback.Table, learningfeedback.Columns, sqlgraph.NewFieldSpec(learningfeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(learningfeedback.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(learningfeedback.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(learningfeedback.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(learningfeedback.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(learningfeedback.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.FeedbackType(); ok {
		_spec.SetField(learningfeedback.FieldFeedbackType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(learningfeedback.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(learningfeedback.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ActionTaken(); ok {
		_spec.SetField(learningfeedback.FieldActionTaken, field.TypeJSON, value)
	}
	if _u.mutation.ActionTakenCleared() {
		_spec.ClearField(learningfeedback.FieldActionTaken, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(learningfeedback.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(learningfeedback.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(learningfeedback.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(learningfeedback.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(learningfeedback.FieldImprovementSuggestions, field.TypeString, value)
	}
	if _u.mutation.ImprovementSuggestionsCleared() {
		_spec.ClearField(learningfeedback.FieldImprovementSuggestions, field.TypeString)
	}
	if value, ok := _u.mutation.FeedbackMetadata(); ok {
		_spec.SetField(learningfeedback.FieldFeedbackMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FeedbackMetadataCleared() {
		_spec.ClearField(learningfeedback.FieldFeedbackMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningFeedbackUpdateOne is the builder for updating a single LearningFeedback entity.
type LearningFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningFeedbackMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *LearningFeedbackUpdateOne) SetAgentID(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableAgentID(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *LearningFeedbackUpdateOne) SetRunID(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableRunID(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *LearningFeedbackUpdateOne) ClearRunID() *LearningFeedbackUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *LearningFeedbackUpdateOne) SetTraceID(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableTraceID(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *LearningFeedbackUpdateOne) ClearTraceID() *LearningFeedbackUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetFeedbackType sets the "feedback_type" field.
func (_u *LearningFeedbackUpdateOne) SetFeedbackType(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetFeedbackType(v)
	return _u
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableFeedbackType(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetFeedbackType(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *LearningFeedbackUpdateOne) SetTaskDescription(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableTaskDescription(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *LearningFeedbackUpdateOne) ClearTaskDescription() *LearningFeedbackUpdateOne {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetActionTaken sets the "action_taken" field.
func (_u *LearningFeedbackUpdateOne) SetActionTaken(v map[string]interface{}) *LearningFeedbackUpdateOne {
	_u.mutation.SetActionTaken(v)
	return _u
}

// ClearActionTaken clears the value of the "action_taken" field.
func (_u *LearningFeedbackUpdateOne) ClearActionTaken() *LearningFeedbackUpdateOne {
	_u.mutation.ClearActionTaken()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *LearningFeedbackUpdateOne) SetOutcome(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableOutcome(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LearningFeedbackUpdateOne) SetSuccess(v bool) *LearningFeedbackUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableSuccess(v *bool) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LearningFeedbackUpdateOne) SetErrorMessage(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableErrorMessage(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LearningFeedbackUpdateOne) ClearErrorMessage() *LearningFeedbackUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_u *LearningFeedbackUpdateOne) SetImprovementSuggestions(v string) *LearningFeedbackUpdateOne {
	_u.mutation.SetImprovementSuggestions(v)
	return _u
}

// SetNillableImprovementSuggestions sets the "improvement_suggestions" field if the given value is not nil.
func (_u *LearningFeedbackUpdateOne) SetNillableImprovementSuggestions(v *string) *LearningFeedbackUpdateOne {
	if v != nil {
		_u.SetImprovementSuggestions(*v)
	}
	return _u
}

// ClearImprovementSuggestions clears the value of the "improvement_suggestions" field.
func (_u *LearningFeedbackUpdateOne) ClearImprovementSuggestions() *LearningFeedbackUpdateOne {
	_u.mutation.ClearImprovementSuggestions()
	return _u
}

// SetFeedbackMetadata sets the "feedback_metadata" field.
func (_u *LearningFeedbackUpdateOne) SetFeedbackMetadata(v map[string]interface{}) *LearningFeedbackUpdateOne {
	_u.mutation.SetFeedbackMetadata(v)
	return _u
}

// ClearFeedbackMetadata clears the value of the "feedback_metadata" field.
func (_u *LearningFeedbackUpdateOne) ClearFeedbackMetadata() *LearningFeedbackUpdateOne {
	_u.mutation.ClearFeedbackMetadata()
	return _u
}

// Mutation returns the LearningFeedbackMutation object of the builder.
func (_u *LearningFeedbackUpdateOne) Mutation() *LearningFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningFeedbackUpdate builder.
func (_u *LearningFeedbackUpdateOne) Where(ps ...predicate.LearningFeedback) *LearningFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningFeedbackUpdateOne) Select(field string, fields ...string) *LearningFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningFeedback entity.
func (_u *LearningFeedbackUpdateOne) Save(ctx context.Context) (*LearningFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningFeedbackUpdateOne) SaveX(ctx context.Context) *LearningFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearningFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *LearningFeedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningfeedback.Table, learningfeedback.Columns, sqlgraph.NewFieldSpec(learningfeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningfeedback.FieldID)
		for _, f := range fields {
			if !learningfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningfeedback.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(learningfeedback.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(learningfeedback.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(learningfeedback.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(learningfeedback.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(learningfeedback.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.FeedbackType(); ok {
		_spec.SetField(learningfeedback.FieldFeedbackType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(learningfeedback.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(learningfeedback.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ActionTaken(); ok {
		_spec.SetField(learningfeedback.FieldActionTaken, field.TypeJSON, value)
	}
	if _u.mutation.ActionTakenCleared() {
		_spec.ClearField(learningfeedback.FieldActionTaken, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(learningfeedback.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(learningfeedback.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(learningfeedback.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(learningfeedback.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(learningfeedback.FieldImprovementSuggestions, field.TypeString, value)
	}
	if _u.mutation.ImprovementSuggestionsCleared() {
		_spec.ClearField(learningfeedback.FieldImprovementSuggestions, field.TypeString)
	}
	if value, ok := _u.mutation.FeedbackMetadata(); ok {
		_spec.SetField(learningfeedback.FieldFeedbackMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FeedbackMetadataCleared() {
		_spec.ClearField(learningfeedback.FieldFeedbackMetadata, field.TypeJSON)
	}
	_node = &LearningFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
