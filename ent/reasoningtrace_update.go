// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/predicate"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
)

// ReasoningTraceUpdate is the builder for updating ReasoningTrace entities.
type ReasoningTraceUpdate struct {
	config
	hooks    []Hook
	mutation *ReasoningTraceMutation
}

// Where appends a list predicates to the ReasoningTraceUpdate builder.
func (_u *ReasoningTraceUpdate) Where(ps ...predicate.ReasoningTrace) *ReasoningTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ReasoningTraceUpdate) SetRunID(v string) *ReasoningTraceUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableRunID(v *string) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ReasoningTraceUpdate) SetAgentID(v string) *ReasoningTraceUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableAgentID(v *string) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ReasoningTraceUpdate) SetStepIndex(v int) *ReasoningTraceUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableStepIndex(v *int) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ReasoningTraceUpdate) AddStepIndex(v int) *ReasoningTraceUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetThought sets the "thought" field.
func (_u *ReasoningTraceUpdate) SetThought(v string) *ReasoningTraceUpdate {
	_u.mutation.SetThought(v)
	return _u
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableThought(v *string) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetThought(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReasoningTraceUpdate) SetAction(v map[string]interface{}) *ReasoningTraceUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetObservation sets the "observation" field.
func (_u *ReasoningTraceUpdate) SetObservation(v map[string]interface{}) *ReasoningTraceUpdate {
	_u.mutation.SetObservation(v)
	return _u
}

// ClearObservation clears the value of the "observation" field.
func (_u *ReasoningTraceUpdate) ClearObservation() *ReasoningTraceUpdate {
	_u.mutation.ClearObservation()
	return _u
}

// SetReflection sets the "reflection" field.
func (_u *ReasoningTraceUpdate) SetReflection(v string) *ReasoningTraceUpdate {
	_u.mutation.SetReflection(v)
	return _u
}

// SetNillableReflection sets the "reflection" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableReflection(v *string) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetReflection(*v)
	}
	return _u
}

// ClearReflection clears the value of the "reflection" field.
func (_u *ReasoningTraceUpdate) ClearReflection() *ReasoningTraceUpdate {
	_u.mutation.ClearReflection()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ReasoningTraceUpdate) SetTokensUsed(v int) *ReasoningTraceUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableTokensUsed(v *int) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ReasoningTraceUpdate) AddTokensUsed(v int) *ReasoningTraceUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ReasoningTraceUpdate) SetLatencyMs(v int) *ReasoningTraceUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ReasoningTraceUpdate) SetNillableLatencyMs(v *int) *ReasoningTraceUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ReasoningTraceUpdate) AddLatencyMs(v int) *ReasoningTraceUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ReasoningTraceMutation object of the builder.
func (_u *ReasoningTraceUpdate) Mutation() *ReasoningTraceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReasoningTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReasoningTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReasoningTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReasoningTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReasoningTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reasoningtrace.Table, reasoningtrace.Columns, sqlgraph.NewFieldSpec(reasoningtrace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(reasoningtrace.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(reasoningtrace.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(reasoningtrace.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(reasoningtrace.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thought(); ok {
		_spec.SetField(reasoningtrace.FieldThought, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reasoningtrace.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Observation(); ok {
		_spec.SetField(reasoningtrace.FieldObservation, field.TypeJSON, value)
	}
	if _u.mutation.ObservationCleared() {
		_spec.ClearField(reasoningtrace.FieldObservation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reflection(); ok {
		_spec.SetField(reasoningtrace.FieldReflection, field.TypeString, value)
	}
	if _u.mutation.ReflectionCleared() {
		_spec.ClearField(reasoningtrace.FieldReflection, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(reasoningtrace.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(reasoningtrace.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(reasoningtrace.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(reasoningtrace.FieldLatencyMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reasoningtrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReasoningTraceUpdateOne is the builder for updating a single ReasoningTrace entity.
type ReasoningTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReasoningTraceMutation
}

// SetRunID sets the "run_id" field.
func (_u *ReasoningTraceUpdateOne) SetRunID(v string) *ReasoningTraceUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableRunID(v *string) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ReasoningTraceUpdateOne) SetAgentID(v string) *ReasoningTraceUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableAgentID(v *string) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ReasoningTraceUpdateOne) SetStepIndex(v int) *ReasoningTraceUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableStepIndex(v *int) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ReasoningTraceUpdateOne) AddStepIndex(v int) *ReasoningTraceUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetThought sets the "thought" field.
func (_u *ReasoningTraceUpdateOne) SetThought(v string) *ReasoningTraceUpdateOne {
	_u.mutation.SetThought(v)
	return _u
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableThought(v *string) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetThought(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReasoningTraceUpdateOne) SetAction(v map[string]interface{}) *ReasoningTraceUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetObservation sets the "observation" field.
func (_u *ReasoningTraceUpdateOne) SetObservation(v map[string]interface{}) *ReasoningTraceUpdateOne {
	_u.mutation.SetObservation(v)
	return _u
}

// ClearObservation clears the value of the "observation" field.
func (_u *ReasoningTraceUpdateOne) ClearObservation() *ReasoningTraceUpdateOne {
	_u.mutation.ClearObservation()
	return _u
}

// SetReflection sets the "reflection" field.
func (_u *ReasoningTraceUpdateOne) SetReflection(v string) *ReasoningTraceUpdateOne {
	_u.mutation.SetReflection(v)
	return _u
}

// SetNillableReflection sets the "reflection" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableReflection(v *string) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetReflection(*v)
	}
	return _u
}

// ClearReflection clears the value of the "reflection" field.
func (_u *ReasoningTraceUpdateOne) ClearReflection() *ReasoningTraceUpdateOne {
	_u.mutation.ClearReflection()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ReasoningTraceUpdateOne) SetTokensUsed(v int) *ReasoningTraceUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableTokensUsed(v *int) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ReasoningTraceUpdateOne) AddTokensUsed(v int) *ReasoningTraceUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ReasoningTraceUpdateOne) SetLatencyMs(v int) *ReasoningTraceUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ReasoningTraceUpdateOne) SetNillableLatencyMs(v *int) *ReasoningTraceUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ReasoningTraceUpdateOne) AddLatencyMs(v int) *ReasoningTraceUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ReasoningTraceMutation object of the builder.
func (_u *ReasoningTraceUpdateOne) Mutation() *ReasoningTraceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReasoningTraceUpdate builder.
func (_u *ReasoningTraceUpdateOne) Where(ps ...predicate.ReasoningTrace) *ReasoningTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReasoningTraceUpdateOne) Select(field string, fields ...string) *ReasoningTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReasoningTrace entity.
func (_u *ReasoningTraceUpdateOne) Save(ctx context.Context) (*ReasoningTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReasoningTraceUpdateOne) SaveX(ctx context.Context) *ReasoningTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReasoningTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReasoningTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReasoningTraceUpdateOne) sqlSave(ctx context.Context) (_node *ReasoningTrace, err error) {
	_spec := sqlgraph.NewUpdateSpec(reasoningtrace.Table, reasoningtrace.Columns, sqlgraph.NewFieldSpec(reasoningtrace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReasoningTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reasoningtrace.FieldID)
		for _, f := range fields {
			if !reasoningtrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reasoningtrace.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(reasoningtrace.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(reasoningtrace.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(reasoningtrace.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(reasoningtrace.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thought(); ok {
		_spec.SetField(reasoningtrace.FieldThought, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reasoningtrace.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Observation(); ok {
		_spec.SetField(reasoningtrace.FieldObservation, field.TypeJSON, value)
	}
	if _u.mutation.ObservationCleared() {
		_spec.ClearField(reasoningtrace.FieldObservation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reflection(); ok {
		_spec.SetField(reasoningtrace.FieldReflection, field.TypeString, value)
	}
	if _u.mutation.ReflectionCleared() {
		_spec.ClearField(reasoningtrace.FieldReflection, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(reasoningtrace.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(reasoningtrace.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(reasoningtrace.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(reasoningtrace.FieldLatencyMs, field.TypeInt, value)
	}
	_node = &ReasoningTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reasoningtrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
