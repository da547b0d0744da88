// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/hitlrequest"
)

// HITLRequestCreate is the builder for creating a HITLRequest entity.
type HITLRequestCreate struct {
	config
	mutation *HITLRequestMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *HITLRequestCreate) SetRunID(v string) *HITLRequestCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *HITLRequestCreate) SetAgentID(v string) *HITLRequestCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRequestType sets the "request_type" field.
func (_c *HITLRequestCreate) SetRequestType(v string) *HITLRequestCreate {
	_c.mutation.SetRequestType(v)
	return _c
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableRequestType(v *string) *HITLRequestCreate {
	if v != nil {
		_c.SetRequestType(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *HITLRequestCreate) SetReason(v string) *HITLRequestCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetActionDetails sets the "action_details" field.
func (_c *HITLRequestCreate) SetActionDetails(v map[string]interface{}) *HITLRequestCreate {
	_c.mutation.SetActionDetails(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *HITLRequestCreate) SetRiskLevel(v hitlrequest.RiskLevel) *HITLRequestCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *HITLRequestCreate) SetStatus(v hitlrequest.Status) *HITLRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableStatus(v *hitlrequest.Status) *HITLRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *HITLRequestCreate) SetDecision(v string) *HITLRequestCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableDecision(v *string) *HITLRequestCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *HITLRequestCreate) SetFeedback(v string) *HITLRequestCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableFeedback(v *string) *HITLRequestCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *HITLRequestCreate) SetRequestedAt(v time.Time) *HITLRequestCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableRequestedAt(v *time.Time) *HITLRequestCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *HITLRequestCreate) SetRespondedAt(v time.Time) *HITLRequestCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableRespondedAt(v *time.Time) *HITLRequestCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetRespondedBy sets the "responded_by" field.
func (_c *HITLRequestCreate) SetRespondedBy(v string) *HITLRequestCreate {
	_c.mutation.SetRespondedBy(v)
	return _c
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_c *HITLRequestCreate) SetNillableRespondedBy(v *string) *HITLRequestCreate {
	if v != nil {
		_c.SetRespondedBy(*v)
	}
	return _c
}

// SetRequestMetadata sets the "request_metadata" field.
func (_c *HITLRequestCreate) SetRequestMetadata(v map[string]interface{}) *HITLRequestCreate {
	_c.mutation.SetRequestMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *HITLRequestCreate) SetID(v string) *HITLRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HITLRequestMutation object of the builder.
func (_c *HITLRequestCreate) Mutation() *HITLRequestMutation {
	return _c.mutation
}

// Save creates the HITLRequest in the database.
func (_c *HITLRequestCreate) Save(ctx context.Context) (*HITLRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HITLRequestCreate) SaveX(ctx context.Context) *HITLRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HITLRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HITLRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HITLRequestCreate) defaults() {
	if _, ok := _c.mutation.RequestType(); !ok {
		v := hitlrequest.DefaultRequestType
		_c.mutation.SetRequestType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := hitlrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := hitlrequest.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HITLRequestCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "HITLRequest.run_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "HITLRequest.agent_id"`)}
	}
	if _, ok := _c.mutation.RequestType(); !ok {
		return &ValidationError{Name: "request_type", err: errors.New(`ent: missing required field "HITLRequest.request_type"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "HITLRequest.reason"`)}
	}
	if _, ok := _c.mutation.ActionDetails(); !ok {
		return &ValidationError{Name: "action_details", err: errors.New(`ent: missing required field "HITLRequest.action_details"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "HITLRequest.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := hitlrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "HITLRequest.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "HITLRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := hitlrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HITLRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "HITLRequest.requested_at"`)}
	}
	return nil
}

func (_c *HITLRequestCreate) sqlSave(ctx context.Context) (*HITLRequest, error) {
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
			return nil, fmt.Errorf("unexpected HITLRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HITLRequestCreate) createSpec() (*HITLRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &HITLRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hitlrequest.Table, sqlgraph.NewFieldSpec(hitlrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(hitlrequest.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(hitlrequest.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.RequestType(); ok {
		_spec.SetField(hitlrequest.FieldRequestType, field.TypeString, value)
		_node.RequestType = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(hitlrequest.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.ActionDetails(); ok {
		_spec.SetField(hitlrequest.FieldActionDetails, field.TypeJSON, value)
		_node.ActionDetails = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(hitlrequest.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(hitlrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(hitlrequest.FieldDecision, field.TypeString, value)
		_node.Decision = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(hitlrequest.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(hitlrequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(hitlrequest.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if value, ok := _c.mutation.RespondedBy(); ok {
		_spec.SetField(hitlrequest.FieldRespondedBy, field.TypeString, value)
		_node.RespondedBy = &value
	}
	if value, ok := _c.mutation.RequestMetadata(); ok {
		_spec.SetField(hitlrequest.FieldRequestMetadata, field.TypeJSON, value)
		_node.RequestMetadata = value
	}
	return _node, _spec
}

// HITLRequestCreateBulk is the builder for creating many HITLRequest entities in bulk.
type HITLRequestCreateBulk struct {
	config
	err      error
	builders []*HITLRequestCreate
}

// Save creates the HITLRequest entities in the database.
func (_c *HITLRequestCreateBulk) Save(ctx context.Context) ([]*HITLRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HITLRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HITLRequestMutation)
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
func (_c *HITLRequestCreateBulk) SaveX(ctx context.Context) []*HITLRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HITLRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HITLRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
