// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentCreate) SetDescription(v string) *AgentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDescription(v *string) *AgentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentCreate) SetModel(v string) *AgentCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentCreate) SetNillableModel(v *string) *AgentCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AgentCreate) SetProvider(v string) *AgentCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *AgentCreate) SetNillableProvider(v *string) *AgentCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *AgentCreate) SetTemperature(v int) *AgentCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTemperature(v *int) *AgentCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *AgentCreate) SetMaxTokens(v int) *AgentCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaxTokens(v *int) *AgentCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentCreate) SetSystemPrompt(v string) *AgentCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSystemPrompt(v *string) *AgentCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *AgentCreate) SetInstructions(v string) *AgentCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_c *AgentCreate) SetNillableInstructions(v *string) *AgentCreate {
	if v != nil {
		_c.SetInstructions(*v)
	}
	return _c
}

// SetTools sets the "tools" field.
func (_c *AgentCreate) SetTools(v []string) *AgentCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetSafetyGuardrails sets the "safety_guardrails" field.
func (_c *AgentCreate) SetSafetyGuardrails(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetSafetyGuardrails(v)
	return _c
}

// SetEnableMemory sets the "enable_memory" field.
func (_c *AgentCreate) SetEnableMemory(v bool) *AgentCreate {
	_c.mutation.SetEnableMemory(v)
	return _c
}

// SetNillableEnableMemory sets the "enable_memory" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEnableMemory(v *bool) *AgentCreate {
	if v != nil {
		_c.SetEnableMemory(*v)
	}
	return _c
}

// SetEnableTools sets the "enable_tools" field.
func (_c *AgentCreate) SetEnableTools(v bool) *AgentCreate {
	_c.mutation.SetEnableTools(v)
	return _c
}

// SetNillableEnableTools sets the "enable_tools" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEnableTools(v *bool) *AgentCreate {
	if v != nil {
		_c.SetEnableTools(*v)
	}
	return _c
}

// SetEnableLearning sets the "enable_learning" field.
func (_c *AgentCreate) SetEnableLearning(v bool) *AgentCreate {
	_c.mutation.SetEnableLearning(v)
	return _c
}

// SetNillableEnableLearning sets the "enable_learning" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEnableLearning(v *bool) *AgentCreate {
	if v != nil {
		_c.SetEnableLearning(*v)
	}
	return _c
}

// SetEnableCollaboration sets the "enable_collaboration" field.
func (_c *AgentCreate) SetEnableCollaboration(v bool) *AgentCreate {
	_c.mutation.SetEnableCollaboration(v)
	return _c
}

// SetNillableEnableCollaboration sets the "enable_collaboration" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEnableCollaboration(v *bool) *AgentCreate {
	if v != nil {
		_c.SetEnableCollaboration(*v)
	}
	return _c
}

// SetMaxIterations sets the "max_iterations" field.
func (_c *AgentCreate) SetMaxIterations(v int) *AgentCreate {
	_c.mutation.SetMaxIterations(v)
	return _c
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaxIterations(v *int) *AgentCreate {
	if v != nil {
		_c.SetMaxIterations(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Model(); !ok {
		v := agent.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.Provider(); !ok {
		v := agent.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := agent.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := agent.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.EnableMemory(); !ok {
		v := agent.DefaultEnableMemory
		_c.mutation.SetEnableMemory(v)
	}
	if _, ok := _c.mutation.EnableTools(); !ok {
		v := agent.DefaultEnableTools
		_c.mutation.SetEnableTools(v)
	}
	if _, ok := _c.mutation.EnableLearning(); !ok {
		v := agent.DefaultEnableLearning
		_c.mutation.SetEnableLearning(v)
	}
	if _, ok := _c.mutation.EnableCollaboration(); !ok {
		v := agent.DefaultEnableCollaboration
		_c.mutation.SetEnableCollaboration(v)
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		v := agent.DefaultMaxIterations
		_c.mutation.SetMaxIterations(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Agent.model"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Agent.provider"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "Agent.temperature"`)}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "Agent.max_tokens"`)}
	}
	if _, ok := _c.mutation.EnableMemory(); !ok {
		return &ValidationError{Name: "enable_memory", err: errors.New(`ent: missing required field "Agent.enable_memory"`)}
	}
	if _, ok := _c.mutation.EnableTools(); !ok {
		return &ValidationError{Name: "enable_tools", err: errors.New(`ent: missing required field "Agent.enable_tools"`)}
	}
	if _, ok := _c.mutation.EnableLearning(); !ok {
		return &ValidationError{Name: "enable_learning", err: errors.New(`ent: missing required field "Agent.enable_learning"`)}
	}
	if _, ok := _c.mutation.EnableCollaboration(); !ok {
		return &ValidationError{Name: "enable_collaboration", err: errors.New(`ent: missing required field "Agent.enable_collaboration"`)}
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		return &ValidationError{Name: "max_iterations", err: errors.New(`ent: missing required field "Agent.max_iterations"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(agent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(agent.FieldTemperature, field.TypeInt, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(agent.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(agent.FieldInstructions, field.TypeString, value)
		_node.Instructions = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(agent.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.SafetyGuardrails(); ok {
		_spec.SetField(agent.FieldSafetyGuardrails, field.TypeJSON, value)
		_node.SafetyGuardrails = value
	}
	if value, ok := _c.mutation.EnableMemory(); ok {
		_spec.SetField(agent.FieldEnableMemory, field.TypeBool, value)
		_node.EnableMemory = value
	}
	if value, ok := _c.mutation.EnableTools(); ok {
		_spec.SetField(agent.FieldEnableTools, field.TypeBool, value)
		_node.EnableTools = value
	}
	if value, ok := _c.mutation.EnableLearning(); ok {
		_spec.SetField(agent.FieldEnableLearning, field.TypeBool, value)
		_node.EnableLearning = value
	}
	if value, ok := _c.mutation.EnableCollaboration(); ok {
		_spec.SetField(agent.FieldEnableCollaboration, field.TypeBool, value)
		_node.EnableCollaboration = value
	}
	if value, ok := _c.mutation.MaxIterations(); ok {
		_spec.SetField(agent.FieldMaxIterations, field.TypeInt, value)
		_node.MaxIterations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
