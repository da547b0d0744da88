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
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/ent/predicate"
)

// HITLRequestUpdate is the builder for updating HITLRequest entities.
type HITLRequestUpdate struct {
	config
	hooks    []Hook
	mutation *HITLRequestMutation
}

// Where appends a list predicates to the HITLRequestUpdate builder.
func (_u *HITLRequestUpdate) Where(ps ...predicate.HITLRequest) *HITLRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *HITLRequestUpdate) SetRunID(v string) *HITLRequestUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableRunID(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *HITLRequestUpdate) SetAgentID(v string) *HITLRequestUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableAgentID(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *HITLRequestUpdate) SetRequestType(v string) *HITLRequestUpdate {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableRequestType(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *HITLRequestUpdate) SetReason(v string) *HITLRequestUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableReason(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetActionDetails sets the "action_details" field.
func (_u *HITLRequestUpdate) SetActionDetails(v map[string]interface{}) *HITLRequestUpdate {
	_u.mutation.SetActionDetails(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *HITLRequestUpdate) SetRiskLevel(v hitlrequest.RiskLevel) *HITLRequestUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableRiskLevel(v *hitlrequest.RiskLevel) *HITLRequestUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HITLRequestUpdate) SetStatus(v hitlrequest.Status) *HITLRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableStatus(v *hitlrequest.Status) *HITLRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *HITLRequestUpdate) SetDecision(v string) *HITLRequestUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableDecision(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *HITLRequestUpdate) ClearDecision() *HITLRequestUpdate {
	_u.mutation.ClearDecision()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *HITLRequestUpdate) SetFeedback(v string) *HITLRequestUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableFeedback(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *HITLRequestUpdate) ClearFeedback() *HITLRequestUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *HITLRequestUpdate) SetRespondedAt(v time.Time) *HITLRequestUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableRespondedAt(v *time.Time) *HITLRequestUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *HITLRequestUpdate) ClearRespondedAt() *HITLRequestUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *HITLRequestUpdate) SetRespondedBy(v string) *HITLRequestUpdate {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *HITLRequestUpdate) SetNillableRespondedBy(v *string) *HITLRequestUpdate {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *HITLRequestUpdate) ClearRespondedBy() *HITLRequestUpdate {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetRequestMetadata sets the "request_metadata" field.
func (_u *HITLRequestUpdate) SetRequestMetadata(v map[string]interface{}) *HITLRequestUpdate {
	_u.mutation.SetRequestMetadata(v)
	return _u
}

// ClearRequestMetadata clears the value of the "request_metadata" field.
func (_u *HITLRequestUpdate) ClearRequestMetadata() *HITLRequestUpdate {
	_u.mutation.ClearRequestMetadata()
	return _u
}

// Mutation returns the HITLRequestMutation object of the builder.
func (_u *HITLRequestUpdate) Mutation() *HITLRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HITLRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HITLRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HITLRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HITLRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HITLRequestUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := hitlrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "HITLRequest.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := hitlrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HITLRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *HITLRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hitlrequest.Table, hitlrequest.Columns, sqlgraph.NewFieldSpec(hitlrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(hitlrequest.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(hitlrequest.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(hitlrequest.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(hitlrequest.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetails(); ok {
		_spec.SetField(hitlrequest.FieldActionDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(hitlrequest.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(hitlrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(hitlrequest.FieldDecision, field.TypeString, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(hitlrequest.FieldDecision, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(hitlrequest.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(hitlrequest.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(hitlrequest.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(hitlrequest.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(hitlrequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(hitlrequest.FieldRespondedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RequestMetadata(); ok {
		_spec.SetField(hitlrequest.FieldRequestMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RequestMetadataCleared() {
		_spec.ClearField(hitlrequest.FieldRequestMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hitlrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HITLRequestUpdateOne is the builder for updating a single HITLRequest entity.
type HITLRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HITLRequestMutation
}

// SetRunID sets the "run_id" field.
func (_u *HITLRequestUpdateOne) SetRunID(v string) *HITLRequestUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableRunID(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *HITLRequestUpdateOne) SetAgentID(v string) *HITLRequestUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableAgentID(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRequestType sets the "request_type" field.
func (_u *HITLRequestUpdateOne) SetRequestType(v string) *HITLRequestUpdateOne {
	_u.mutation.SetRequestType(v)
	return _u
}

// SetNillableRequestType sets the "request_type" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableRequestType(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetRequestType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *HITLRequestUpdateOne) SetReason(v string) *HITLRequestUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableReason(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetActionDetails sets the "action_details" field.
func (_u *HITLRequestUpdateOne) SetActionDetails(v map[string]interface{}) *HITLRequestUpdateOne {
	_u.mutation.SetActionDetails(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *HITLRequestUpdateOne) SetRiskLevel(v hitlrequest.RiskLevel) *HITLRequestUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableRiskLevel(v *hitlrequest.RiskLevel) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HITLRequestUpdateOne) SetStatus(v hitlrequest.Status) *HITLRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableStatus(v *hitlrequest.Status) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *HITLRequestUpdateOne) SetDecision(v string) *HITLRequestUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableDecision(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *HITLRequestUpdateOne) ClearDecision() *HITLRequestUpdateOne {
	_u.mutation.ClearDecision()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *HITLRequestUpdateOne) SetFeedback(v string) *HITLRequestUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableFeedback(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *HITLRequestUpdateOne) ClearFeedback() *HITLRequestUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *HITLRequestUpdateOne) SetRespondedAt(v time.Time) *HITLRequestUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableRespondedAt(v *time.Time) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *HITLRequestUpdateOne) ClearRespondedAt() *HITLRequestUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *HITLRequestUpdateOne) SetRespondedBy(v string) *HITLRequestUpdateOne {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *HITLRequestUpdateOne) SetNillableRespondedBy(v *string) *HITLRequestUpdateOne {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *HITLRequestUpdateOne) ClearRespondedBy() *HITLRequestUpdateOne {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetRequestMetadata sets the "request_metadata" field.
func (_u *HITLRequestUpdateOne) SetRequestMetadata(v map[string]interface{}) *HITLRequestUpdateOne {
	_u.mutation.SetRequestMetadata(v)
	return _u
}

// ClearRequestMetadata clears the value of the "request_metadata" field.
func (_u *HITLRequestUpdateOne) ClearRequestMetadata() *HITLRequestUpdateOne {
	_u.mutation.ClearRequestMetadata()
	return _u
}

// Mutation returns the HITLRequestMutation object of the builder.
func (_u *HITLRequestUpdateOne) Mutation() *HITLRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the HITLRequestUpdate builder.
func (_u *HITLRequestUpdateOne) Where(ps ...predicate.HITLRequest) *HITLRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HITLRequestUpdateOne) Select(field string, fields ...string) *HITLRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HITLRequest entity.
func (_u *HITLRequestUpdateOne) Save(ctx context.Context) (*HITLRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HITLRequestUpdateOne) SaveX(ctx context.Context) *HITLRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HITLRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HITLRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HITLRequestUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := hitlrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "HITLRequest.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := hitlrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HITLRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *HITLRequestUpdateOne) sqlSave(ctx context.Context) (_node *HITLRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hitlrequest.Table, hitlrequest.Columns, sqlgraph.NewFieldSpec(hitlrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HITLRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hitlrequest.FieldID)
		for _, f := range fields {
			if !hitlrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hitlrequest.FieldID {
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
		_spec.SetField(hitlrequest.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(hitlrequest.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestType(); ok {
		_spec.SetField(hitlrequest.FieldRequestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(hitlrequest.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionDetails(); ok {
		_spec.SetField(hitlrequest.FieldActionDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(hitlrequest.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(hitlrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(hitlrequest.FieldDecision, field.TypeString, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(hitlrequest.FieldDecision, field.TypeString)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(hitlrequest.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(hitlrequest.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(hitlrequest.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(hitlrequest.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(hitlrequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(hitlrequest.FieldRespondedBy, field.TypeString)
	}
	if value, ok := _u.mutation.RequestMetadata(); ok {
		_spec.SetField(hitlrequest.FieldRequestMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RequestMetadataCleared() {
		_spec.ClearField(hitlrequest.FieldRequestMetadata, field.TypeJSON)
	}
	_node = &HITLRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hitlrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
