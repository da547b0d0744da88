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
	"github.com/apa-platform/apacore/ent/memoryitem"
	"github.com/apa-platform/apacore/ent/predicate"
)

// MemoryItemUpdate is the builder for updating MemoryItem entities.
type MemoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryItemMutation
}

// Where appends a list predicates to the MemoryItemUpdate builder.
func (_u *MemoryItemUpdate) Where(ps ...predicate.MemoryItem) *MemoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *MemoryItemUpdate) SetAgentID(v string) *MemoryItemUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MemoryItemUpdate) SetNillableAgentID(v *string) *MemoryItemUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetMemoryType sets the "memory_type" field.
func (_u *MemoryItemUpdate) SetMemoryType(v memoryitem.MemoryType) *MemoryItemUpdate {
	_u.mutation.SetMemoryType(v)
	return _u
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_u *MemoryItemUpdate) SetNillableMemoryType(v *memoryitem.MemoryType) *MemoryItemUpdate {
	if v != nil {
		_u.SetMemoryType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryItemUpdate) SetContent(v string) *MemoryItemUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryItemUpdate) SetNillableContent(v *string) *MemoryItemUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryItemUpdate) SetEmbedding(v []float32) *MemoryItemUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryItemUpdate) AppendEmbedding(v []float32) *MemoryItemUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryItemUpdate) ClearEmbedding() *MemoryItemUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetItemMetadata sets the "item_metadata" field.
func (_u *MemoryItemUpdate) SetItemMetadata(v map[string]interface{}) *MemoryItemUpdate {
	_u.mutation.SetItemMetadata(v)
	return _u
}

// ClearItemMetadata clears the value of the "item_metadata" field.
func (_u *MemoryItemUpdate) ClearItemMetadata() *MemoryItemUpdate {
	_u.mutation.ClearItemMetadata()
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *MemoryItemUpdate) SetImportanceScore(v float64) *MemoryItemUpdate {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *MemoryItemUpdate) SetNillableImportanceScore(v *float64) *MemoryItemUpdate {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *MemoryItemUpdate) AddImportanceScore(v float64) *MemoryItemUpdate {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// ClearImportanceScore clears the value of the "importance_score" field.
func (_u *MemoryItemUpdate) ClearImportanceScore() *MemoryItemUpdate {
	_u.mutation.ClearImportanceScore()
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryItemUpdate) SetAccessCount(v int) *MemoryItemUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryItemUpdate) SetNillableAccessCount(v *int) *MemoryItemUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryItemUpdate) AddAccessCount(v int) *MemoryItemUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryItemUpdate) SetLastAccessedAt(v time.Time) *MemoryItemUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryItemUpdate) SetNillableLastAccessedAt(v *time.Time) *MemoryItemUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *MemoryItemUpdate) ClearLastAccessedAt() *MemoryItemUpdate {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// Mutation returns the MemoryItemMutation object of the builder.
func (_u *MemoryItemUpdate) Mutation() *MemoryItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryItemUpdate) check() error {
	if v, ok := _u.mutation.MemoryType(); ok {
		if err := memoryitem.MemoryTypeValidator(v); err != nil {
			return &ValidationError{Name: "memory_type", err: fmt.Errorf(`ent: validator failed for field "MemoryItem.memory_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryitem.Table, memoryitem.Columns, sqlgraph.NewFieldSpec(memoryitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(memoryitem.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemoryType(); ok {
		_spec.SetField(memoryitem.FieldMemoryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryitem.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryitem.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryitem.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.ItemMetadata(); ok {
		_spec.SetField(memoryitem.FieldItemMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ItemMetadataCleared() {
		_spec.ClearField(memoryitem.FieldItemMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(memoryitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(memoryitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ImportanceScoreCleared() {
		_spec.ClearField(memoryitem.FieldImportanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memoryitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memoryitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memoryitem.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(memoryitem.FieldLastAccessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryItemUpdateOne is the builder for updating a single MemoryItem entity.
type MemoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryItemMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *MemoryItemUpdateOne) SetAgentID(v string) *MemoryItemUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *MemoryItemUpdateOne) SetNillableAgentID(v *string) *MemoryItemUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetMemoryType sets the "memory_type" field.
func (_u *MemoryItemUpdateOne) SetMemoryType(v memoryitem.MemoryType) *MemoryItemUpdateOne {
	_u.mutation.SetMemoryType(v)
	return _u
}

// SetNillableMemoryType sets the "memory_type" field if the given value is not nil.
func (_u *MemoryItemUpdateOne) SetNillableMemoryType(v *memoryitem.MemoryType) *MemoryItemUpdateOne {
	if v != nil {
		_u.SetMemoryType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryItemUpdateOne) SetContent(v string) *MemoryItemUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryItemUpdateOne) SetNillableContent(v *string) *MemoryItemUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryItemUpdateOne) SetEmbedding(v []float32) *MemoryItemUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryItemUpdateOne) AppendEmbedding(v []float32) *MemoryItemUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryItemUpdateOne) ClearEmbedding() *MemoryItemUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetItemMetadata sets the "item_metadata" field.
func (_u *MemoryItemUpdateOne) SetItemMetadata(v map[string]interface{}) *MemoryItemUpdateOne {
	_u.mutation.SetItemMetadata(v)
	return _u
}

// ClearItemMetadata clears the value of the "item_metadata" field.
func (_u *MemoryItemUpdateOne) ClearItemMetadata() *MemoryItemUpdateOne {
	_u.mutation.ClearItemMetadata()
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *MemoryItemUpdateOne) SetImportanceScore(v float64) *MemoryItemUpdateOne {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *MemoryItemUpdateOne) SetNillableImportanceScore(v *float64) *MemoryItemUpdateOne {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *MemoryItemUpdateOne) AddImportanceScore(v float64) *MemoryItemUpdateOne {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// ClearImportanceScore clears the value of the "importance_score" field.
func (_u *MemoryItemUpdateOne) ClearImportanceScore() *MemoryItemUpdateOne {
	_u.mutation.ClearImportanceScore()
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryItemUpdateOne) SetAccessCount(v int) *MemoryItemUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryItemUpdateOne) SetNillableAccessCount(v *int) *MemoryItemUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryItemUpdateOne) AddAccessCount(v int) *MemoryItemUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryItemUpdateOne) SetLastAccessedAt(v time.Time) *MemoryItemUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryItemUpdateOne) SetNillableLastAccessedAt(v *time.Time) *MemoryItemUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *MemoryItemUpdateOne) ClearLastAccessedAt() *MemoryItemUpdateOne {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// Mutation returns the MemoryItemMutation object of the builder.
func (_u *MemoryItemUpdateOne) Mutation() *MemoryItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryItemUpdate builder.
func (_u *MemoryItemUpdateOne) Where(ps ...predicate.MemoryItem) *MemoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryItemUpdateOne) Select(field string, fields ...string) *MemoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryItem entity.
func (_u *MemoryItemUpdateOne) Save(ctx context.Context) (*MemoryItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryItemUpdateOne) SaveX(ctx context.Context) *MemoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.MemoryType(); ok {
		if err := memoryitem.MemoryTypeValidator(v); err != nil {
			return &ValidationError{Name: "memory_type", err: fmt.Errorf(`ent: validator failed for field "MemoryItem.memory_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemoryItemUpdateOne) sqlSave(ctx context.Context) (_node *MemoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memoryitem.Table, memoryitem.Columns, sqlgraph.NewFieldSpec(memoryitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryitem.FieldID)
		for _, f := range fields {
			if !memoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryitem.FieldID {
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
		_spec.SetField(memoryitem.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemoryType(); ok {
		_spec.SetField(memoryitem.FieldMemoryType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memoryitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryitem.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryitem.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryitem.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.ItemMetadata(); ok {
		_spec.SetField(memoryitem.FieldItemMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ItemMetadataCleared() {
		_spec.ClearField(memoryitem.FieldItemMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(memoryitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(memoryitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ImportanceScoreCleared() {
		_spec.ClearField(memoryitem.FieldImportanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memoryitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memoryitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memoryitem.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(memoryitem.FieldLastAccessedAt, field.TypeTime)
	}
	_node = &MemoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
