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
	"github.com/apa-platform/apacore/ent/tool"
)

// ToolUpdate is the builder for updating Tool entities.
type ToolUpdate struct {
	config
	hooks    []Hook
	mutation *ToolMutation
}

// Where appends a list predicates to the ToolUpdate builder.
func (_u *ToolUpdate) Where(ps ...predicate.Tool) *ToolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ToolUpdate) SetName(v string) *ToolUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableName(v *string) *ToolUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolUpdate) SetDescription(v string) *ToolUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableDescription(v *string) *ToolUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolUpdate) ClearDescription() *ToolUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFunctionSchema sets the "function_schema" field.
func (_u *ToolUpdate) SetFunctionSchema(v map[string]interface{}) *ToolUpdate {
	_u.mutation.SetFunctionSchema(v)
	return _u
}

// ClearFunctionSchema clears the value of the "function_schema" field.
func (_u *ToolUpdate) ClearFunctionSchema() *ToolUpdate {
	_u.mutation.ClearFunctionSchema()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolUpdate) SetStatus(v tool.Status) *ToolUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableStatus(v *tool.Status) *ToolUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ToolMutation object of the builder.
func (_u *ToolUpdate) Mutation() *ToolMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tool.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tool.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tool.Table, tool.Columns, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tool.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tool.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tool.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FunctionSchema(); ok {
		_spec.SetField(tool.FieldFunctionSchema, field.TypeJSON, value)
	}
	if _u.mutation.FunctionSchemaCleared() {
		_spec.ClearField(tool.FieldFunctionSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tool.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolUpdateOne is the builder for updating a single Tool entity.
type ToolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolMutation
}

// SetName sets the "name" field.
func (_u *ToolUpdateOne) SetName(v string) *ToolUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableName(v *string) *ToolUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolUpdateOne) SetDescription(v string) *ToolUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableDescription(v *string) *ToolUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolUpdateOne) ClearDescription() *ToolUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFunctionSchema sets the "function_schema" field.
func (_u *ToolUpdateOne) SetFunctionSchema(v map[string]interface{}) *ToolUpdateOne {
	_u.mutation.SetFunctionSchema(v)
	return _u
}

// ClearFunctionSchema clears the value of the "function_schema" field.
func (_u *ToolUpdateOne) ClearFunctionSchema() *ToolUpdateOne {
	_u.mutation.ClearFunctionSchema()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolUpdateOne) SetStatus(v tool.Status) *ToolUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableStatus(v *tool.Status) *ToolUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the ToolMutation object of the builder.
func (_u *ToolUpdateOne) Mutation() *ToolMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolUpdate builder.
func (_u *ToolUpdateOne) Where(ps ...predicate.Tool) *ToolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolUpdateOne) Select(field string, fields ...string) *ToolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tool entity.
func (_u *ToolUpdateOne) Save(ctx context.Context) (*Tool, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolUpdateOne) SaveX(ctx context.Context) *Tool {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tool.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tool.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolUpdateOne) sqlSave(ctx context.Context) (_node *Tool, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tool.Table, tool.Columns, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tool.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tool.FieldID)
		for _, f := range fields {
			if !tool.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tool.FieldID {
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
		_spec.SetField(tool.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tool.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tool.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FunctionSchema(); ok {
		_spec.SetField(tool.FieldFunctionSchema, field.TypeJSON, value)
	}
	if _u.mutation.FunctionSchemaCleared() {
		_spec.ClearField(tool.FieldFunctionSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tool.FieldStatus, field.TypeEnum, value)
	}
	_node = &Tool{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
