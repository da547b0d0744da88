// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/agent"
	"github.com/apa-platform/apacore/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdate) SetDescription(v string) *AgentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentUpdate) ClearDescription() *AgentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdate) SetModel(v string) *AgentUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentUpdate) SetProvider(v string) *AgentUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableProvider(v *string) *AgentUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentUpdate) SetTemperature(v int) *AgentUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTemperature(v *int) *AgentUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentUpdate) AddTemperature(v int) *AgentUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentUpdate) SetMaxTokens(v int) *AgentUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMaxTokens(v *int) *AgentUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentUpdate) AddMaxTokens(v int) *AgentUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdate) SetSystemPrompt(v string) *AgentUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSystemPrompt(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *AgentUpdate) ClearSystemPrompt() *AgentUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *AgentUpdate) SetInstructions(v string) *AgentUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableInstructions(v *string) *AgentUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *AgentUpdate) ClearInstructions() *AgentUpdate {
	_u.mutation.ClearInstructions()
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentUpdate) SetTools(v []string) *AgentUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentUpdate) AppendTools(v []string) *AgentUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentUpdate) ClearTools() *AgentUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetSafetyGuardrails sets the "safety_guardrails" field.
func (_u *AgentUpdate) SetSafetyGuardrails(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetSafetyGuardrails(v)
	return _u
}

// ClearSafetyGuardrails clears the value of the "safety_guardrails" field.
func (_u *AgentUpdate) ClearSafetyGuardrails() *AgentUpdate {
	_u.mutation.ClearSafetyGuardrails()
	return _u
}

// SetEnableMemory sets the "enable_memory" field.
func (_u *AgentUpdate) SetEnableMemory(v bool) *AgentUpdate {
	_u.mutation.SetEnableMemory(v)
	return _u
}

// SetNillableEnableMemory sets the "enable_memory" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEnableMemory(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetEnableMemory(*v)
	}
	return _u
}

// SetEnableTools sets the "enable_tools" field.
func (_u *AgentUpdate) SetEnableTools(v bool) *AgentUpdate {
	_u.mutation.SetEnableTools(v)
	return _u
}

// SetNillableEnableTools sets the "enable_tools" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEnableTools(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetEnableTools(*v)
	}
	return _u
}

// SetEnableLearning sets the "enable_learning" field.
func (_u *AgentUpdate) SetEnableLearning(v bool) *AgentUpdate {
	_u.mutation.SetEnableLearning(v)
	return _u
}

// SetNillableEnableLearning sets the "enable_learning" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEnableLearning(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetEnableLearning(*v)
	}
	return _u
}

// SetEnableCollaboration sets the "enable_collaboration" field.
func (_u *AgentUpdate) SetEnableCollaboration(v bool) *AgentUpdate {
	_u.mutation.SetEnableCollaboration(v)
	return _u
}

// SetNillableEnableCollaboration sets the "enable_collaboration" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableEnableCollaboration(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetEnableCollaboration(*v)
	}
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *AgentUpdate) SetMaxIterations(v int) *AgentUpdate {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMaxIterations(v *int) *AgentUpdate {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *AgentUpdate) AddMaxIterations(v int) *AgentUpdate {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agent.FieldTemperature, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(agent.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(agent.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(agent.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agent.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agent.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.SafetyGuardrails(); ok {
		_spec.SetField(agent.FieldSafetyGuardrails, field.TypeJSON, value)
	}
	if _u.mutation.SafetyGuardrailsCleared() {
		_spec.ClearField(agent.FieldSafetyGuardrails, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnableMemory(); ok {
		_spec.SetField(agent.FieldEnableMemory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableTools(); ok {
		_spec.SetField(agent.FieldEnableTools, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableLearning(); ok {
		_spec.SetField(agent.FieldEnableLearning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableCollaboration(); ok {
		_spec.SetField(agent.FieldEnableCollaboration, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(agent.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(agent.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdateOne) SetDescription(v string) *AgentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentUpdateOne) ClearDescription() *AgentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdateOne) SetModel(v string) *AgentUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AgentUpdateOne) SetProvider(v string) *AgentUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableProvider(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentUpdateOne) SetTemperature(v int) *AgentUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTemperature(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentUpdateOne) AddTemperature(v int) *AgentUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentUpdateOne) SetMaxTokens(v int) *AgentUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMaxTokens(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentUpdateOne) AddMaxTokens(v int) *AgentUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentUpdateOne) SetSystemPrompt(v string) *AgentUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSystemPrompt(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *AgentUpdateOne) ClearSystemPrompt() *AgentUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *AgentUpdateOne) SetInstructions(v string) *AgentUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableInstructions(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// ClearInstructions clears the value of the "instructions" field.
func (_u *AgentUpdateOne) ClearInstructions() *AgentUpdateOne {
	_u.mutation.ClearInstructions()
	return _u
}

// SetTools sets the "tools" field.
func (_u *AgentUpdateOne) SetTools(v []string) *AgentUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *AgentUpdateOne) AppendTools(v []string) *AgentUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *AgentUpdateOne) ClearTools() *AgentUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetSafetyGuardrails sets the "safety_guardrails" field.
func (_u *AgentUpdateOne) SetSafetyGuardrails(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetSafetyGuardrails(v)
	return _u
}

// ClearSafetyGuardrails clears the value of the "safety_guardrails" field.
func (_u *AgentUpdateOne) ClearSafetyGuardrails() *AgentUpdateOne {
	_u.mutation.ClearSafetyGuardrails()
	return _u
}

// SetEnableMemory sets the "enable_memory" field.
func (_u *AgentUpdateOne) SetEnableMemory(v bool) *AgentUpdateOne {
	_u.mutation.SetEnableMemory(v)
	return _u
}

// SetNillableEnableMemory sets the "enable_memory" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEnableMemory(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetEnableMemory(*v)
	}
	return _u
}

// SetEnableTools sets the "enable_tools" field.
func (_u *AgentUpdateOne) SetEnableTools(v bool) *AgentUpdateOne {
	_u.mutation.SetEnableTools(v)
	return _u
}

// SetNillableEnableTools sets the "enable_tools" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEnableTools(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetEnableTools(*v)
	}
	return _u
}

// SetEnableLearning sets the "enable_learning" field.
func (_u *AgentUpdateOne) SetEnableLearning(v bool) *AgentUpdateOne {
	_u.mutation.SetEnableLearning(v)
	return _u
}

// SetNillableEnableLearning sets the "enable_learning" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEnableLearning(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetEnableLearning(*v)
	}
	return _u
}

// SetEnableCollaboration sets the "enable_collaboration" field.
func (_u *AgentUpdateOne) SetEnableCollaboration(v bool) *AgentUpdateOne {
	_u.mutation.SetEnableCollaboration(v)
	return _u
}

// SetNillableEnableCollaboration sets the "enable_collaboration" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableEnableCollaboration(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetEnableCollaboration(*v)
	}
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *AgentUpdateOne) SetMaxIterations(v int) *AgentUpdateOne {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMaxIterations(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *AgentUpdateOne) AddMaxIterations(v int) *AgentUpdateOne {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(agent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agent.FieldTemperature, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agent.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(agent.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(agent.FieldInstructions, field.TypeString, value)
	}
	if _u.mutation.InstructionsCleared() {
		_spec.ClearField(agent.FieldInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(agent.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(agent.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.SafetyGuardrails(); ok {
		_spec.SetField(agent.FieldSafetyGuardrails, field.TypeJSON, value)
	}
	if _u.mutation.SafetyGuardrailsCleared() {
		_spec.ClearField(agent.FieldSafetyGuardrails, field.TypeJSON)
	}
	if value, ok := _u.mutation.EnableMemory(); ok {
		_spec.SetField(agent.FieldEnableMemory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableTools(); ok {
		_spec.SetField(agent.FieldEnableTools, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableLearning(); ok {
		_spec.SetField(agent.FieldEnableLearning, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnableCollaboration(); ok {
		_spec.SetField(agent.FieldEnableCollaboration, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(agent.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(agent.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
