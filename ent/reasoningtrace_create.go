// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
)

// ReasoningTraceCreate is the builder for creating a ReasoningTrace entity.
type ReasoningTraceCreate struct {
	config
	mutation *ReasoningTraceMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ReasoningTraceCreate) SetRunID(v string) *ReasoningTraceCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ReasoningTraceCreate) SetAgentID(v string) *ReasoningTraceCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *ReasoningTraceCreate) SetStepIndex(v int) *ReasoningTraceCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetThought sets the "thought" field.
func (_c *ReasoningTraceCreate) SetThought(v string) *ReasoningTraceCreate {
	_c.mutation.SetThought(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ReasoningTraceCreate) SetAction(v map[string]interface{}) *ReasoningTraceCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetObservation sets the "observation" field.
func (_c *ReasoningTraceCreate) SetObservation(v map[string]interface{}) *ReasoningTraceCreate {
	_c.mutation.SetObservation(v)
	return _c
}

// SetReflection sets the "reflection" field.
func (_c *ReasoningTraceCreate) SetReflection(v string) *ReasoningTraceCreate {
	_c.mutation.SetReflection(v)
	return _c
}

// SetNillableReflection sets the "reflection" field if the given value is not nil.
func (_c *ReasoningTraceCreate) SetNillableReflection(v *string) *ReasoningTraceCreate {
	if v != nil {
		_c.SetReflection(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ReasoningTraceCreate) SetTokensUsed(v int) *ReasoningTraceCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ReasoningTraceCreate) SetNillableTokensUsed(v *int) *ReasoningTraceCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ReasoningTraceCreate) SetLatencyMs(v int) *ReasoningTraceCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ReasoningTraceCreate) SetNillableLatencyMs(v *int) *ReasoningTraceCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReasoningTraceCreate) SetCreatedAt(v time.Time) *ReasoningTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReasoningTraceCreate) SetNillableCreatedAt(v *time.Time) *ReasoningTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReasoningTraceCreate) SetID(v string) *ReasoningTraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReasoningTraceMutation object of the builder.
func (_c *ReasoningTraceCreate) Mutation() *ReasoningTraceMutation {
	return _c.mutation
}

// Save creates the ReasoningTrace in the database.
func (_c *ReasoningTraceCreate) Save(ctx context.Context) (*ReasoningTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReasoningTraceCreate) SaveX(ctx context.Context) *ReasoningTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReasoningTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReasoningTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReasoningTraceCreate) defaults() {
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := reasoningtrace.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := reasoningtrace.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reasoningtrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReasoningTraceCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ReasoningTrace.run_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ReasoningTrace.agent_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "ReasoningTrace.step_index"`)}
	}
	if _, ok := _c.mutation.Thought(); !ok {
		return &ValidationError{Name: "thought", err: errors.New(`ent: missing required field "ReasoningTrace.thought"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ReasoningTrace.action"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "ReasoningTrace.tokens_used"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ReasoningTrace.latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReasoningTrace.created_at"`)}
	}
	return nil
}

func (_c *ReasoningTraceCreate) sqlSave(ctx context.Context) (*ReasoningTrace, error) {
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
			return nil, fmt.Errorf("unexpected ReasoningTrace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReasoningTraceCreate) createSpec() (*ReasoningTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &ReasoningTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reasoningtrace.Table, sqlgraph.NewFieldSpec(reasoningtrace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(reasoningtrace.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(reasoningtrace.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(reasoningtrace.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Thought(); ok {
		_spec.SetField(reasoningtrace.FieldThought, field.TypeString, value)
		_node.Thought = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(reasoningtrace.FieldAction, field.TypeJSON, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Observation(); ok {
		_spec.SetField(reasoningtrace.FieldObservation, field.TypeJSON, value)
		_node.Observation = value
	}
	if value, ok := _c.mutation.Reflection(); ok {
		_spec.SetField(reasoningtrace.FieldReflection, field.TypeString, value)
		_node.Reflection = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(reasoningtrace.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(reasoningtrace.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reasoningtrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReasoningTraceCreateBulk is the builder for creating many ReasoningTrace entities in bulk.
type ReasoningTraceCreateBulk struct {
	config
	err      error
	builders []*ReasoningTraceCreate
}

// Save creates the ReasoningTrace entities in the database.
func (_c *ReasoningTraceCreateBulk) Save(ctx context.Context) ([]*ReasoningTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReasoningTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReasoningTraceMutation)
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
func (_c *ReasoningTraceCreateBulk) SaveX(ctx context.Context) []*ReasoningTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReasoningTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReasoningTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
