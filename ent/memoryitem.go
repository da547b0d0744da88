// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/memoryitem"
)

// MemoryItem is the model entity for the MemoryItem schema.
type MemoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// MemoryType holds the value of the "memory_type" field.
	MemoryType memoryitem.MemoryType `json:"memory_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// ItemMetadata holds the value of the "item_metadata" field.
	ItemMetadata map[string]interface{} `json:"item_metadata,omitempty"`
	// ImportanceScore holds the value of the "importance_score" field.
	ImportanceScore *float64 `json:"importance_score,omitempty"`
	// AccessCount holds the value of the "access_count" field.
	AccessCount int `json:"access_count,omitempty"`
	// LastAccessedAt holds the value of the "last_accessed_at" field.
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryitem.FieldEmbedding, memoryitem.FieldItemMetadata:
			values[i] = new([]byte)
		case memoryitem.FieldImportanceScore:
			values[i] = new(sql.NullFloat64)
		case memoryitem.FieldAccessCount:
			values[i] = new(sql.NullInt64)
		case memoryitem.FieldID, memoryitem.FieldAgentID, memoryitem.FieldMemoryType, memoryitem.FieldContent:
			values[i] = new(sql.NullString)
		case memoryitem.FieldLastAccessedAt, memoryitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryItem fields.
func (_m *MemoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryitem.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case memoryitem.FieldMemoryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_type", values[i])
			} else if value.Valid {
				_m.MemoryType = memoryitem.MemoryType(value.String)
			}
		case memoryitem.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case memoryitem.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case memoryitem.FieldItemMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field item_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ItemMetadata); err != nil {
					return fmt.Errorf("unmarshal field item_metadata: %w", err)
				}
			}
		case memoryitem.FieldImportanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field importance_score", values[i])
			} else if value.Valid {
				_m.ImportanceScore = new(float64)
				*_m.ImportanceScore = value.Float64
			}
		case memoryitem.FieldAccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field access_count", values[i])
			} else if value.Valid {
				_m.AccessCount = int(value.Int64)
			}
		case memoryitem.FieldLastAccessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed_at", values[i])
			} else if value.Valid {
				_m.LastAccessedAt = new(time.Time)
				*_m.LastAccessedAt = value.Time
			}
		case memoryitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MemoryItem.
// Note that you need to call MemoryItem.Unwrap() before calling this method if this MemoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryItem) Update() *MemoryItemUpdateOne {
	return NewMemoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryItem) Unwrap() *MemoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("memory_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("item_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemMetadata))
	builder.WriteString(", ")
	if v := _m.ImportanceScore; v != nil {
		builder.WriteString("importance_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("access_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessCount))
	builder.WriteString(", ")
	if v := _m.LastAccessedAt; v != nil {
		builder.WriteString("last_accessed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryItems is a parsable slice of MemoryItem.
type MemoryItems []*MemoryItem
