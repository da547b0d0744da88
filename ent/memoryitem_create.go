// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apa-platform/apacore/ent/memoryitem"
)

// MemoryItemCreate is the builder for creating a MemoryItem entity.
type MemoryItemCreate struct {
	config
	mutation *MemoryItemMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *MemoryItemCreate) SetAgentID(v string) *MemoryItemCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetMemoryType sets the "memory_type" field.
func (_c *MemoryItemCreate) SetMemoryType(v memoryitem.MemoryType) *MemoryItemCreate {
	_c.mutation.SetMemoryType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MemoryItemCreate) SetContent(v string) *MemoryItemCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *MemoryItemCreate) SetEmbedding(v []float32) *MemoryItemCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetItemMetadata sets the "item_metadata" field.
func (_c *MemoryItemCreate) SetItemMetadata(v map[string]interface{}) *MemoryItemCreate {
	_c.mutation.SetItemMetadata(v)
	return _c
}

// SetImportanceScore sets the "importance_score" field.
func (_c *MemoryItemCreate) SetImportanceScore(v float64) *MemoryItemCreate {
	_c.mutation.SetImportanceScore(v)
	return _c
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_c *MemoryItemCreate) SetNillableImportanceScore(v *float64) *MemoryItemCreate {
	if v != nil {
		_c.SetImportanceScore(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *MemoryItemCreate) SetAccessCount(v int) *MemoryItemCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *MemoryItemCreate) SetNillableAccessCount(v *int) *MemoryItemCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *MemoryItemCreate) SetLastAccessedAt(v time.Time) *MemoryItemCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *MemoryItemCreate) SetNillableLastAccessedAt(v *time.Time) *MemoryItemCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemoryItemCreate) SetCreatedAt(v time.Time) *MemoryItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemoryItemCreate) SetNillableCreatedAt(v *time.Time) *MemoryItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemoryItemCreate) SetID(v string) *MemoryItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MemoryItemMutation object of the builder.
func (_c *MemoryItemCreate) Mutation() *MemoryItemMutation {
	return _c.mutation
}

// Save creates the MemoryItem in the database.
func (_c *MemoryItemCreate) Save(ctx context.Context) (*MemoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemoryItemCreate) SaveX(ctx context.Context) *MemoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemoryItemCreate) defaults() {
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := memoryitem.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := memoryitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemoryItemCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "MemoryItem.agent_id"`)}
	}
	if _, ok := _c.mutation.MemoryType(); !ok {
		return &ValidationError{Name: "memory_type", err: errors.New(`ent: missing required field "MemoryItem.memory_type"`)}
	}
	if v, ok := _c.mutation.MemoryType(); ok {
		if err := memoryitem.MemoryTypeValidator(v); err != nil {
			return &ValidationError{Name: "memory_type", err: fmt.Errorf(`ent: validator failed for field "MemoryItem.memory_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MemoryItem.content"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "MemoryItem.access_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MemoryItem.created_at"`)}
	}
	return nil
}

func (_c *MemoryItemCreate) sqlSave(ctx context.Context) (*MemoryItem, error) {
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
			return nil, fmt.Errorf("unexpected MemoryItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemoryItemCreate) createSpec() (*MemoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &MemoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(memoryitem.Table, sqlgraph.NewFieldSpec(memoryitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(memoryitem.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.MemoryType(); ok {
		_spec.SetField(memoryitem.FieldMemoryType, field.TypeEnum, value)
		_node.MemoryType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(memoryitem.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(memoryitem.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.ItemMetadata(); ok {
		_spec.SetField(memoryitem.FieldItemMetadata, field.TypeJSON, value)
		_node.ItemMetadata = value
	}
	if value, ok := _c.mutation.ImportanceScore(); ok {
		_spec.SetField(memoryitem.FieldImportanceScore, field.TypeFloat64, value)
		_node.ImportanceScore = &value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(memoryitem.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(memoryitem.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(memoryitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MemoryItemCreateBulk is the builder for creating many MemoryItem entities in bulk.
type MemoryItemCreateBulk struct {
	config
	err      error
	builders []*MemoryItemCreate
}

// Save creates the MemoryItem entities in the database.
func (_c *MemoryItemCreateBulk) Save(ctx context.Context) ([]*MemoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MemoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemoryItemMutation)
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
func (_c *MemoryItemCreateBulk) SaveX(ctx context.Context) []*MemoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
