// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ExecutionUpdate) SetAgentID(v string) *ExecutionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableAgentID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *ExecutionUpdate) SetInput(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionUpdate) SetOutput(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionUpdate) ClearOutput() *ExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionUpdate) SetErrorMessage(v string) *ExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableErrorMessage(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionUpdate) ClearErrorMessage() *ExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutionMetadata sets the "execution_metadata" field.
func (_u *ExecutionUpdate) SetExecutionMetadata(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetExecutionMetadata(v)
	return _u
}

// ClearExecutionMetadata clears the value of the "execution_metadata" field.
func (_u *ExecutionUpdate) ClearExecutionMetadata() *ExecutionUpdate {
	_u.mutation.ClearExecutionMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ExecutionUpdate) SetPodID(v string) *ExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillablePodID(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ExecutionUpdate) ClearPodID() *ExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdate) SetStartedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStartedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdate) ClearStartedAt() *ExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ExecutionUpdate) SetLastInteractionAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableLastInteractionAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ExecutionUpdate) ClearLastInteractionAt() *ExecutionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(execution.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(execution.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(execution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMetadata(); ok {
		_spec.SetField(execution.FieldExecutionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionMetadataCleared() {
		_spec.ClearField(execution.FieldExecutionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(execution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(execution.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(execution.FieldLastInteractionAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ExecutionUpdateOne) SetAgentID(v string) *ExecutionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableAgentID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *ExecutionUpdateOne) SetInput(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionUpdateOne) SetOutput(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionUpdateOne) ClearOutput() *ExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionUpdateOne) SetErrorMessage(v string) *ExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableErrorMessage(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionUpdateOne) ClearErrorMessage() *ExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutionMetadata sets the "execution_metadata" field.
func (_u *ExecutionUpdateOne) SetExecutionMetadata(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetExecutionMetadata(v)
	return _u
}

// ClearExecutionMetadata clears the value of the "execution_metadata" field.
func (_u *ExecutionUpdateOne) ClearExecutionMetadata() *ExecutionUpdateOne {
	_u.mutation.ClearExecutionMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ExecutionUpdateOne) SetPodID(v string) *ExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillablePodID(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ExecutionUpdateOne) ClearPodID() *ExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdateOne) SetStartedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdateOne) ClearStartedAt() *ExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *ExecutionUpdateOne) SetLastInteractionAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *ExecutionUpdateOne) ClearLastInteractionAt() *ExecutionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
		_spec.SetField(execution.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(execution.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(execution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(execution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionMetadata(); ok {
		_spec.SetField(execution.FieldExecutionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionMetadataCleared() {
		_spec.ClearField(execution.FieldExecutionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(execution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(execution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(execution.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(execution.FieldLastInteractionAt, field.TypeTime)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
