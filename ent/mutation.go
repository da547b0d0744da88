// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apa-platform/apacore/ent/agent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/apa-platform/apacore/ent/memoryitem"
	"github.com/apa-platform/apacore/ent/predicate"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
	"github.com/apa-platform/apacore/ent/tool"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent            = "Agent"
	TypeExecution        = "Execution"
	TypeHITLRequest      = "HITLRequest"
	TypeLearningFeedback = "LearningFeedback"
	TypeMemoryItem       = "MemoryItem"
	TypeReasoningTrace   = "ReasoningTrace"
	TypeTool             = "Tool"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	description          *string
	model                *string
	provider             *string
	temperature          *int
	addtemperature       *int
	max_tokens           *int
	addmax_tokens        *int
	system_prompt        *string
	instructions         *string
	tools                *[]string
	appendtools          []string
	safety_guardrails    *map[string]interface{}
	enable_memory        *bool
	enable_tools         *bool
	enable_learning      *bool
	enable_collaboration *bool
	max_iterations       *int
	addmax_iterations    *int
	status               *agent.Status
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Agent, error)
	predicates           []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AgentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AgentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AgentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[agent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AgentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[agent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AgentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, agent.FieldDescription)
}

// SetModel sets the "model" field.
func (m *AgentMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentMutation) ResetModel() {
	m.model = nil
}

// SetProvider sets the "provider" field.
func (m *AgentMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AgentMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AgentMutation) ResetProvider() {
	m.provider = nil
}

// SetTemperature sets the "temperature" field.
func (m *AgentMutation) SetTemperature(i int) {
	m.temperature = &i
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentMutation) Temperature() (r int, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTemperature(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds i to the "temperature" field.
func (m *AgentMutation) AddTemperature(i int) {
	if m.addtemperature != nil {
		*m.addtemperature += i
	} else {
		m.addtemperature = &i
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentMutation) AddedTemperature() (r int, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *AgentMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *AgentMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *AgentMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *AgentMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *AgentMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *AgentMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[agent.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *AgentMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[agent.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, agent.FieldSystemPrompt)
}

// SetInstructions sets the "instructions" field.
func (m *AgentMutation) SetInstructions(s string) {
	m.instructions = &s
}

// Instructions returns the value of the "instructions" field in the mutation.
func (m *AgentMutation) Instructions() (r string, exists bool) {
	v := m.instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructions returns the old "instructions" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructions: %w", err)
	}
	return oldValue.Instructions, nil
}

// ClearInstructions clears the value of the "instructions" field.
func (m *AgentMutation) ClearInstructions() {
	m.instructions = nil
	m.clearedFields[agent.FieldInstructions] = struct{}{}
}

// InstructionsCleared returns if the "instructions" field was cleared in this mutation.
func (m *AgentMutation) InstructionsCleared() bool {
	_, ok := m.clearedFields[agent.FieldInstructions]
	return ok
}

// ResetInstructions resets all changes to the "instructions" field.
func (m *AgentMutation) ResetInstructions() {
	m.instructions = nil
	delete(m.clearedFields, agent.FieldInstructions)
}

// SetTools sets the "tools" field.
func (m *AgentMutation) SetTools(s []string) {
	m.tools = &s
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *AgentMutation) Tools() (r []string, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTools(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds s to the "tools" field.
func (m *AgentMutation) AppendTools(s []string) {
	m.appendtools = append(m.appendtools, s...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *AgentMutation) AppendedTools() ([]string, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *AgentMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[agent.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *AgentMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[agent.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *AgentMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, agent.FieldTools)
}

// SetSafetyGuardrails sets the "safety_guardrails" field.
func (m *AgentMutation) SetSafetyGuardrails(value map[string]interface{}) {
	m.safety_guardrails = &value
}

// SafetyGuardrails returns the value of the "safety_guardrails" field in the mutation.
func (m *AgentMutation) SafetyGuardrails() (r map[string]interface{}, exists bool) {
	v := m.safety_guardrails
	if v == nil {
		return
	}
	return *v, true
}

// OldSafetyGuardrails returns the old "safety_guardrails" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSafetyGuardrails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSafetyGuardrails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSafetyGuardrails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSafetyGuardrails: %w", err)
	}
	return oldValue.SafetyGuardrails, nil
}

// ClearSafetyGuardrails clears the value of the "safety_guardrails" field.
func (m *AgentMutation) ClearSafetyGuardrails() {
	m.safety_guardrails = nil
	m.clearedFields[agent.FieldSafetyGuardrails] = struct{}{}
}

// SafetyGuardrailsCleared returns if the "safety_guardrails" field was cleared in this mutation.
func (m *AgentMutation) SafetyGuardrailsCleared() bool {
	_, ok := m.clearedFields[agent.FieldSafetyGuardrails]
	return ok
}

// ResetSafetyGuardrails resets all changes to the "safety_guardrails" field.
func (m *AgentMutation) ResetSafetyGuardrails() {
	m.safety_guardrails = nil
	delete(m.clearedFields, agent.FieldSafetyGuardrails)
}

// SetEnableMemory sets the "enable_memory" field.
func (m *AgentMutation) SetEnableMemory(b bool) {
	m.enable_memory = &b
}

// EnableMemory returns the value of the "enable_memory" field in the mutation.
func (m *AgentMutation) EnableMemory() (r bool, exists bool) {
	v := m.enable_memory
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableMemory returns the old "enable_memory" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEnableMemory(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableMemory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableMemory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableMemory: %w", err)
	}
	return oldValue.EnableMemory, nil
}

// ResetEnableMemory resets all changes to the "enable_memory" field.
func (m *AgentMutation) ResetEnableMemory() {
	m.enable_memory = nil
}

// SetEnableTools sets the "enable_tools" field.
func (m *AgentMutation) SetEnableTools(b bool) {
	m.enable_tools = &b
}

// EnableTools returns the value of the "enable_tools" field in the mutation.
func (m *AgentMutation) EnableTools() (r bool, exists bool) {
	v := m.enable_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableTools returns the old "enable_tools" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEnableTools(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableTools: %w", err)
	}
	return oldValue.EnableTools, nil
}

// ResetEnableTools resets all changes to the "enable_tools" field.
func (m *AgentMutation) ResetEnableTools() {
	m.enable_tools = nil
}

// SetEnableLearning sets the "enable_learning" field.
func (m *AgentMutation) SetEnableLearning(b bool) {
	m.enable_learning = &b
}

// EnableLearning returns the value of the "enable_learning" field in the mutation.
func (m *AgentMutation) EnableLearning() (r bool, exists bool) {
	v := m.enable_learning
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableLearning returns the old "enable_learning" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEnableLearning(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableLearning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableLearning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableLearning: %w", err)
	}
	return oldValue.EnableLearning, nil
}

// ResetEnableLearning resets all changes to the "enable_learning" field.
func (m *AgentMutation) ResetEnableLearning() {
	m.enable_learning = nil
}

// SetEnableCollaboration sets the "enable_collaboration" field.
func (m *AgentMutation) SetEnableCollaboration(b bool) {
	m.enable_collaboration = &b
}

// EnableCollaboration returns the value of the "enable_collaboration" field in the mutation.
func (m *AgentMutation) EnableCollaboration() (r bool, exists bool) {
	v := m.enable_collaboration
	if v == nil {
		return
	}
	return *v, true
}

// OldEnableCollaboration returns the old "enable_collaboration" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEnableCollaboration(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnableCollaboration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnableCollaboration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnableCollaboration: %w", err)
	}
	return oldValue.EnableCollaboration, nil
}

// ResetEnableCollaboration resets all changes to the "enable_collaboration" field.
func (m *AgentMutation) ResetEnableCollaboration() {
	m.enable_collaboration = nil
}

// SetMaxIterations sets the "max_iterations" field.
func (m *AgentMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *AgentMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaxIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *AgentMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *AgentMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *AgentMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.description != nil {
		fields = append(fields, agent.FieldDescription)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModel)
	}
	if m.provider != nil {
		fields = append(fields, agent.FieldProvider)
	}
	if m.temperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, agent.FieldMaxTokens)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.instructions != nil {
		fields = append(fields, agent.FieldInstructions)
	}
	if m.tools != nil {
		fields = append(fields, agent.FieldTools)
	}
	if m.safety_guardrails != nil {
		fields = append(fields, agent.FieldSafetyGuardrails)
	}
	if m.enable_memory != nil {
		fields = append(fields, agent.FieldEnableMemory)
	}
	if m.enable_tools != nil {
		fields = append(fields, agent.FieldEnableTools)
	}
	if m.enable_learning != nil {
		fields = append(fields, agent.FieldEnableLearning)
	}
	if m.enable_collaboration != nil {
		fields = append(fields, agent.FieldEnableCollaboration)
	}
	if m.max_iterations != nil {
		fields = append(fields, agent.FieldMaxIterations)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldDescription:
		return m.Description()
	case agent.FieldModel:
		return m.Model()
	case agent.FieldProvider:
		return m.Provider()
	case agent.FieldTemperature:
		return m.Temperature()
	case agent.FieldMaxTokens:
		return m.MaxTokens()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldInstructions:
		return m.Instructions()
	case agent.FieldTools:
		return m.Tools()
	case agent.FieldSafetyGuardrails:
		return m.SafetyGuardrails()
	case agent.FieldEnableMemory:
		return m.EnableMemory()
	case agent.FieldEnableTools:
		return m.EnableTools()
	case agent.FieldEnableLearning:
		return m.EnableLearning()
	case agent.FieldEnableCollaboration:
		return m.EnableCollaboration()
	case agent.FieldMaxIterations:
		return m.MaxIterations()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldDescription:
		return m.OldDescription(ctx)
	case agent.FieldModel:
		return m.OldModel(ctx)
	case agent.FieldProvider:
		return m.OldProvider(ctx)
	case agent.FieldTemperature:
		return m.OldTemperature(ctx)
	case agent.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldInstructions:
		return m.OldInstructions(ctx)
	case agent.FieldTools:
		return m.OldTools(ctx)
	case agent.FieldSafetyGuardrails:
		return m.OldSafetyGuardrails(ctx)
	case agent.FieldEnableMemory:
		return m.OldEnableMemory(ctx)
	case agent.FieldEnableTools:
		return m.OldEnableTools(ctx)
	case agent.FieldEnableLearning:
		return m.OldEnableLearning(ctx)
	case agent.FieldEnableCollaboration:
		return m.OldEnableCollaboration(ctx)
	case agent.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case agent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case agent.FieldTemperature:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agent.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructions(v)
		return nil
	case agent.FieldTools:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case agent.FieldSafetyGuardrails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSafetyGuardrails(v)
		return nil
	case agent.FieldEnableMemory:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableMemory(v)
		return nil
	case agent.FieldEnableTools:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableTools(v)
		return nil
	case agent.FieldEnableLearning:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableLearning(v)
		return nil
	case agent.FieldEnableCollaboration:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnableCollaboration(v)
		return nil
	case agent.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, agent.FieldMaxTokens)
	}
	if m.addmax_iterations != nil {
		fields = append(fields, agent.FieldMaxIterations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTemperature:
		return m.AddedTemperature()
	case agent.FieldMaxTokens:
		return m.AddedMaxTokens()
	case agent.FieldMaxIterations:
		return m.AddedMaxIterations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTemperature:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case agent.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case agent.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldDescription) {
		fields = append(fields, agent.FieldDescription)
	}
	if m.FieldCleared(agent.FieldSystemPrompt) {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.FieldCleared(agent.FieldInstructions) {
		fields = append(fields, agent.FieldInstructions)
	}
	if m.FieldCleared(agent.FieldTools) {
		fields = append(fields, agent.FieldTools)
	}
	if m.FieldCleared(agent.FieldSafetyGuardrails) {
		fields = append(fields, agent.FieldSafetyGuardrails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldDescription:
		m.ClearDescription()
		return nil
	case agent.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case agent.FieldInstructions:
		m.ClearInstructions()
		return nil
	case agent.FieldTools:
		m.ClearTools()
		return nil
	case agent.FieldSafetyGuardrails:
		m.ClearSafetyGuardrails()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldDescription:
		m.ResetDescription()
		return nil
	case agent.FieldModel:
		m.ResetModel()
		return nil
	case agent.FieldProvider:
		m.ResetProvider()
		return nil
	case agent.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agent.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldInstructions:
		m.ResetInstructions()
		return nil
	case agent.FieldTools:
		m.ResetTools()
		return nil
	case agent.FieldSafetyGuardrails:
		m.ResetSafetyGuardrails()
		return nil
	case agent.FieldEnableMemory:
		m.ResetEnableMemory()
		return nil
	case agent.FieldEnableTools:
		m.ResetEnableTools()
		return nil
	case agent.FieldEnableLearning:
		m.ResetEnableLearning()
		return nil
	case agent.FieldEnableCollaboration:
		m.ResetEnableCollaboration()
		return nil
	case agent.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent_id            *string
	status              *execution.Status
	input               *map[string]interface{}
	output              *map[string]interface{}
	error_message       *string
	execution_metadata  *map[string]interface{}
	pod_id              *string
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	last_interaction_at *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Execution, error)
	predicates          []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ExecutionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ExecutionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ExecutionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetInput sets the "input" field.
func (m *ExecutionMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *ExecutionMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *ExecutionMutation) ResetInput() {
	m.input = nil
}

// SetOutput sets the "output" field.
func (m *ExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *ExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[execution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[execution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, execution.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[execution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[execution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, execution.FieldErrorMessage)
}

// SetExecutionMetadata sets the "execution_metadata" field.
func (m *ExecutionMutation) SetExecutionMetadata(value map[string]interface{}) {
	m.execution_metadata = &value
}

// ExecutionMetadata returns the value of the "execution_metadata" field in the mutation.
func (m *ExecutionMutation) ExecutionMetadata() (r map[string]interface{}, exists bool) {
	v := m.execution_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMetadata returns the old "execution_metadata" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldExecutionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMetadata: %w", err)
	}
	return oldValue.ExecutionMetadata, nil
}

// ClearExecutionMetadata clears the value of the "execution_metadata" field.
func (m *ExecutionMutation) ClearExecutionMetadata() {
	m.execution_metadata = nil
	m.clearedFields[execution.FieldExecutionMetadata] = struct{}{}
}

// ExecutionMetadataCleared returns if the "execution_metadata" field was cleared in this mutation.
func (m *ExecutionMutation) ExecutionMetadataCleared() bool {
	_, ok := m.clearedFields[execution.FieldExecutionMetadata]
	return ok
}

// ResetExecutionMetadata resets all changes to the "execution_metadata" field.
func (m *ExecutionMutation) ResetExecutionMetadata() {
	m.execution_metadata = nil
	delete(m.clearedFields, execution.FieldExecutionMetadata)
}

// SetPodID sets the "pod_id" field.
func (m *ExecutionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ExecutionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ExecutionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[execution.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ExecutionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[execution.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ExecutionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, execution.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[execution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, execution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ExecutionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ExecutionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ExecutionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[execution.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ExecutionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ExecutionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, execution.FieldLastInteractionAt)
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent_id != nil {
		fields = append(fields, execution.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.input != nil {
		fields = append(fields, execution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, execution.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.execution_metadata != nil {
		fields = append(fields, execution.FieldExecutionMetadata)
	}
	if m.pod_id != nil {
		fields = append(fields, execution.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, execution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, execution.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldAgentID:
		return m.AgentID()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldInput:
		return m.Input()
	case execution.FieldOutput:
		return m.Output()
	case execution.FieldErrorMessage:
		return m.ErrorMessage()
	case execution.FieldExecutionMetadata:
		return m.ExecutionMetadata()
	case execution.FieldPodID:
		return m.PodID()
	case execution.FieldCreatedAt:
		return m.CreatedAt()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	case execution.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldAgentID:
		return m.OldAgentID(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldInput:
		return m.OldInput(ctx)
	case execution.FieldOutput:
		return m.OldOutput(ctx)
	case execution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case execution.FieldExecutionMetadata:
		return m.OldExecutionMetadata(ctx)
	case execution.FieldPodID:
		return m.OldPodID(ctx)
	case execution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case execution.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case execution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case execution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case execution.FieldExecutionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMetadata(v)
		return nil
	case execution.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case execution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case execution.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldOutput) {
		fields = append(fields, execution.FieldOutput)
	}
	if m.FieldCleared(execution.FieldErrorMessage) {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.FieldCleared(execution.FieldExecutionMetadata) {
		fields = append(fields, execution.FieldExecutionMetadata)
	}
	if m.FieldCleared(execution.FieldPodID) {
		fields = append(fields, execution.FieldPodID)
	}
	if m.FieldCleared(execution.FieldStartedAt) {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.FieldCleared(execution.FieldLastInteractionAt) {
		fields = append(fields, execution.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldOutput:
		m.ClearOutput()
		return nil
	case execution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case execution.FieldExecutionMetadata:
		m.ClearExecutionMetadata()
		return nil
	case execution.FieldPodID:
		m.ClearPodID()
		return nil
	case execution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case execution.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldAgentID:
		m.ResetAgentID()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldInput:
		m.ResetInput()
		return nil
	case execution.FieldOutput:
		m.ResetOutput()
		return nil
	case execution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case execution.FieldExecutionMetadata:
		m.ResetExecutionMetadata()
		return nil
	case execution.FieldPodID:
		m.ResetPodID()
		return nil
	case execution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case execution.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Execution edge %s", name)
}

// HITLRequestMutation represents an operation that mutates the HITLRequest nodes in the graph.
type HITLRequestMutation struct {
	config
	op               Op
	typ              string
	id               *string
	run_id           *string
	agent_id         *string
	request_type     *string
	reason           *string
	action_details   *map[string]interface{}
	risk_level       *hitlrequest.RiskLevel
	status           *hitlrequest.Status
	decision         *string
	feedback         *string
	requested_at     *time.Time
	responded_at     *time.Time
	responded_by     *string
	request_metadata *map[string]interface{}
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*HITLRequest, error)
	predicates       []predicate.HITLRequest
}

var _ ent.Mutation = (*HITLRequestMutation)(nil)

// hitlrequestOption allows management of the mutation configuration using functional options.
type hitlrequestOption func(*HITLRequestMutation)

// newHITLRequestMutation creates new mutation for the HITLRequest entity.
func newHITLRequestMutation(c config, op Op, opts ...hitlrequestOption) *HITLRequestMutation {
	m := &HITLRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeHITLRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHITLRequestID sets the ID field of the mutation.
func withHITLRequestID(id string) hitlrequestOption {
	return func(m *HITLRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *HITLRequest
		)
		m.oldValue = func(ctx context.Context) (*HITLRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HITLRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHITLRequest sets the old HITLRequest of the mutation.
func withHITLRequest(node *HITLRequest) hitlrequestOption {
	return func(m *HITLRequestMutation) {
		m.oldValue = func(context.Context) (*HITLRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HITLRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HITLRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HITLRequest entities.
func (m *HITLRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HITLRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HITLRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HITLRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *HITLRequestMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *HITLRequestMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *HITLRequestMutation) ResetRunID() {
	m.run_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *HITLRequestMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *HITLRequestMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *HITLRequestMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetRequestType sets the "request_type" field.
func (m *HITLRequestMutation) SetRequestType(s string) {
	m.request_type = &s
}

// RequestType returns the value of the "request_type" field in the mutation.
func (m *HITLRequestMutation) RequestType() (r string, exists bool) {
	v := m.request_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestType returns the old "request_type" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRequestType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestType: %w", err)
	}
	return oldValue.RequestType, nil
}

// ResetRequestType resets all changes to the "request_type" field.
func (m *HITLRequestMutation) ResetRequestType() {
	m.request_type = nil
}

// SetReason sets the "reason" field.
func (m *HITLRequestMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *HITLRequestMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *HITLRequestMutation) ResetReason() {
	m.reason = nil
}

// SetActionDetails sets the "action_details" field.
func (m *HITLRequestMutation) SetActionDetails(value map[string]interface{}) {
	m.action_details = &value
}

// ActionDetails returns the value of the "action_details" field in the mutation.
func (m *HITLRequestMutation) ActionDetails() (r map[string]interface{}, exists bool) {
	v := m.action_details
	if v == nil {
		return
	}
	return *v, true
}

// OldActionDetails returns the old "action_details" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldActionDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionDetails: %w", err)
	}
	return oldValue.ActionDetails, nil
}

// ResetActionDetails resets all changes to the "action_details" field.
func (m *HITLRequestMutation) ResetActionDetails() {
	m.action_details = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *HITLRequestMutation) SetRiskLevel(hl hitlrequest.RiskLevel) {
	m.risk_level = &hl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *HITLRequestMutation) RiskLevel() (r hitlrequest.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRiskLevel(ctx context.Context) (v hitlrequest.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *HITLRequestMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetStatus sets the "status" field.
func (m *HITLRequestMutation) SetStatus(h hitlrequest.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HITLRequestMutation) Status() (r hitlrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldStatus(ctx context.Context) (v hitlrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HITLRequestMutation) ResetStatus() {
	m.status = nil
}

// SetDecision sets the "decision" field.
func (m *HITLRequestMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *HITLRequestMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldDecision(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ClearDecision clears the value of the "decision" field.
func (m *HITLRequestMutation) ClearDecision() {
	m.decision = nil
	m.clearedFields[hitlrequest.FieldDecision] = struct{}{}
}

// DecisionCleared returns if the "decision" field was cleared in this mutation.
func (m *HITLRequestMutation) DecisionCleared() bool {
	_, ok := m.clearedFields[hitlrequest.FieldDecision]
	return ok
}

// ResetDecision resets all changes to the "decision" field.
func (m *HITLRequestMutation) ResetDecision() {
	m.decision = nil
	delete(m.clearedFields, hitlrequest.FieldDecision)
}

// SetFeedback sets the "feedback" field.
func (m *HITLRequestMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *HITLRequestMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *HITLRequestMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[hitlrequest.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *HITLRequestMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[hitlrequest.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *HITLRequestMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, hitlrequest.FieldFeedback)
}

// SetRequestedAt sets the "requested_at" field.
func (m *HITLRequestMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *HITLRequestMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *HITLRequestMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetRespondedAt sets the "responded_at" field.
func (m *HITLRequestMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *HITLRequestMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *HITLRequestMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[hitlrequest.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *HITLRequestMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[hitlrequest.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *HITLRequestMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, hitlrequest.FieldRespondedAt)
}

// SetRespondedBy sets the "responded_by" field.
func (m *HITLRequestMutation) SetRespondedBy(s string) {
	m.responded_by = &s
}

// RespondedBy returns the value of the "responded_by" field in the mutation.
func (m *HITLRequestMutation) RespondedBy() (r string, exists bool) {
	v := m.responded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedBy returns the old "responded_by" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRespondedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedBy: %w", err)
	}
	return oldValue.RespondedBy, nil
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (m *HITLRequestMutation) ClearRespondedBy() {
	m.responded_by = nil
	m.clearedFields[hitlrequest.FieldRespondedBy] = struct{}{}
}

// RespondedByCleared returns if the "responded_by" field was cleared in this mutation.
func (m *HITLRequestMutation) RespondedByCleared() bool {
	_, ok := m.clearedFields[hitlrequest.FieldRespondedBy]
	return ok
}

// ResetRespondedBy resets all changes to the "responded_by" field.
func (m *HITLRequestMutation) ResetRespondedBy() {
	m.responded_by = nil
	delete(m.clearedFields, hitlrequest.FieldRespondedBy)
}

// SetRequestMetadata sets the "request_metadata" field.
func (m *HITLRequestMutation) SetRequestMetadata(value map[string]interface{}) {
	m.request_metadata = &value
}

// RequestMetadata returns the value of the "request_metadata" field in the mutation.
func (m *HITLRequestMutation) RequestMetadata() (r map[string]interface{}, exists bool) {
	v := m.request_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestMetadata returns the old "request_metadata" field's value of the HITLRequest entity.
// If the HITLRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HITLRequestMutation) OldRequestMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestMetadata: %w", err)
	}
	return oldValue.RequestMetadata, nil
}

// ClearRequestMetadata clears the value of the "request_metadata" field.
func (m *HITLRequestMutation) ClearRequestMetadata() {
	m.request_metadata = nil
	m.clearedFields[hitlrequest.FieldRequestMetadata] = struct{}{}
}

// RequestMetadataCleared returns if the "request_metadata" field was cleared in this mutation.
func (m *HITLRequestMutation) RequestMetadataCleared() bool {
	_, ok := m.clearedFields[hitlrequest.FieldRequestMetadata]
	return ok
}

// ResetRequestMetadata resets all changes to the "request_metadata" field.
func (m *HITLRequestMutation) ResetRequestMetadata() {
	m.request_metadata = nil
	delete(m.clearedFields, hitlrequest.FieldRequestMetadata)
}

// Where appends a list predicates to the HITLRequestMutation builder.
func (m *HITLRequestMutation) Where(ps ...predicate.HITLRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HITLRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HITLRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HITLRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HITLRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HITLRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HITLRequest).
func (m *HITLRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HITLRequestMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.run_id != nil {
		fields = append(fields, hitlrequest.FieldRunID)
	}
	if m.agent_id != nil {
		fields = append(fields, hitlrequest.FieldAgentID)
	}
	if m.request_type != nil {
		fields = append(fields, hitlrequest.FieldRequestType)
	}
	if m.reason != nil {
		fields = append(fields, hitlrequest.FieldReason)
	}
	if m.action_details != nil {
		fields = append(fields, hitlrequest.FieldActionDetails)
	}
	if m.risk_level != nil {
		fields = append(fields, hitlrequest.FieldRiskLevel)
	}
	if m.status != nil {
		fields = append(fields, hitlrequest.FieldStatus)
	}
	if m.decision != nil {
		fields = append(fields, hitlrequest.FieldDecision)
	}
	if m.feedback != nil {
		fields = append(fields, hitlrequest.FieldFeedback)
	}
	if m.requested_at != nil {
		fields = append(fields, hitlrequest.FieldRequestedAt)
	}
	if m.responded_at != nil {
		fields = append(fields, hitlrequest.FieldRespondedAt)
	}
	if m.responded_by != nil {
		fields = append(fields, hitlrequest.FieldRespondedBy)
	}
	if m.request_metadata != nil {
		fields = append(fields, hitlrequest.FieldRequestMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HITLRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hitlrequest.FieldRunID:
		return m.RunID()
	case hitlrequest.FieldAgentID:
		return m.AgentID()
	case hitlrequest.FieldRequestType:
		return m.RequestType()
	case hitlrequest.FieldReason:
		return m.Reason()
	case hitlrequest.FieldActionDetails:
		return m.ActionDetails()
	case hitlrequest.FieldRiskLevel:
		return m.RiskLevel()
	case hitlrequest.FieldStatus:
		return m.Status()
	case hitlrequest.FieldDecision:
		return m.Decision()
	case hitlrequest.FieldFeedback:
		return m.Feedback()
	case hitlrequest.FieldRequestedAt:
		return m.RequestedAt()
	case hitlrequest.FieldRespondedAt:
		return m.RespondedAt()
	case hitlrequest.FieldRespondedBy:
		return m.RespondedBy()
	case hitlrequest.FieldRequestMetadata:
		return m.RequestMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HITLRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hitlrequest.FieldRunID:
		return m.OldRunID(ctx)
	case hitlrequest.FieldAgentID:
		return m.OldAgentID(ctx)
	case hitlrequest.FieldRequestType:
		return m.OldRequestType(ctx)
	case hitlrequest.FieldReason:
		return m.OldReason(ctx)
	case hitlrequest.FieldActionDetails:
		return m.OldActionDetails(ctx)
	case hitlrequest.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case hitlrequest.FieldStatus:
		return m.OldStatus(ctx)
	case hitlrequest.FieldDecision:
		return m.OldDecision(ctx)
	case hitlrequest.FieldFeedback:
		return m.OldFeedback(ctx)
	case hitlrequest.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case hitlrequest.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case hitlrequest.FieldRespondedBy:
		return m.OldRespondedBy(ctx)
	case hitlrequest.FieldRequestMetadata:
		return m.OldRequestMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown HITLRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HITLRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hitlrequest.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case hitlrequest.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case hitlrequest.FieldRequestType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestType(v)
		return nil
	case hitlrequest.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case hitlrequest.FieldActionDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionDetails(v)
		return nil
	case hitlrequest.FieldRiskLevel:
		v, ok := value.(hitlrequest.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case hitlrequest.FieldStatus:
		v, ok := value.(hitlrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case hitlrequest.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case hitlrequest.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case hitlrequest.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case hitlrequest.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case hitlrequest.FieldRespondedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedBy(v)
		return nil
	case hitlrequest.FieldRequestMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown HITLRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HITLRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HITLRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HITLRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HITLRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HITLRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hitlrequest.FieldDecision) {
		fields = append(fields, hitlrequest.FieldDecision)
	}
	if m.FieldCleared(hitlrequest.FieldFeedback) {
		fields = append(fields, hitlrequest.FieldFeedback)
	}
	if m.FieldCleared(hitlrequest.FieldRespondedAt) {
		fields = append(fields, hitlrequest.FieldRespondedAt)
	}
	if m.FieldCleared(hitlrequest.FieldRespondedBy) {
		fields = append(fields, hitlrequest.FieldRespondedBy)
	}
	if m.FieldCleared(hitlrequest.FieldRequestMetadata) {
		fields = append(fields, hitlrequest.FieldRequestMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HITLRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HITLRequestMutation) ClearField(name string) error {
	switch name {
	case hitlrequest.FieldDecision:
		m.ClearDecision()
		return nil
	case hitlrequest.FieldFeedback:
		m.ClearFeedback()
		return nil
	case hitlrequest.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	case hitlrequest.FieldRespondedBy:
		m.ClearRespondedBy()
		return nil
	case hitlrequest.FieldRequestMetadata:
		m.ClearRequestMetadata()
		return nil
	}
	return fmt.Errorf("unknown HITLRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HITLRequestMutation) ResetField(name string) error {
	switch name {
	case hitlrequest.FieldRunID:
		m.ResetRunID()
		return nil
	case hitlrequest.FieldAgentID:
		m.ResetAgentID()
		return nil
	case hitlrequest.FieldRequestType:
		m.ResetRequestType()
		return nil
	case hitlrequest.FieldReason:
		m.ResetReason()
		return nil
	case hitlrequest.FieldActionDetails:
		m.ResetActionDetails()
		return nil
	case hitlrequest.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case hitlrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case hitlrequest.FieldDecision:
		m.ResetDecision()
		return nil
	case hitlrequest.FieldFeedback:
		m.ResetFeedback()
		return nil
	case hitlrequest.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case hitlrequest.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case hitlrequest.FieldRespondedBy:
		m.ResetRespondedBy()
		return nil
	case hitlrequest.FieldRequestMetadata:
		m.ResetRequestMetadata()
		return nil
	}
	return fmt.Errorf("unknown HITLRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HITLRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HITLRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HITLRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HITLRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HITLRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HITLRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HITLRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown HITLRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HITLRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown HITLRequest edge %s", name)
}

// LearningFeedbackMutation represents an operation that mutates the LearningFeedback nodes in the graph.
type LearningFeedbackMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	agent_id                *string
	run_id                  *string
	trace_id                *string
	feedback_type           *string
	task_description        *string
	action_taken            *map[string]interface{}
	outcome                 *string
	success                 *bool
	error_message           *string
	improvement_suggestions *string
	feedback_metadata       *map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*LearningFeedback, error)
	predicates              []predicate.LearningFeedback
}

var _ ent.Mutation = (*LearningFeedbackMutation)(nil)

// learningfeedbackOption allows management of the mutation configuration using functional options.
type learningfeedbackOption func(*LearningFeedbackMutation)

// newLearningFeedbackMutation creates new mutation for the LearningFeedback entity.
func newLearningFeedbackMutation(c config, op Op, opts ...learningfeedbackOption) *LearningFeedbackMutation {
	m := &LearningFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningFeedbackID sets the ID field of the mutation.
func withLearningFeedbackID(id string) learningfeedbackOption {
	return func(m *LearningFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningFeedback
		)
		m.oldValue = func(ctx context.Context) (*LearningFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningFeedback sets the old LearningFeedback of the mutation.
func withLearningFeedback(node *LearningFeedback) learningfeedbackOption {
	return func(m *LearningFeedbackMutation) {
		m.oldValue = func(context.Context) (*LearningFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearningFeedback entities.
func (m *LearningFeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningFeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningFeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *LearningFeedbackMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LearningFeedbackMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LearningFeedbackMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetRunID sets the "run_id" field.
func (m *LearningFeedbackMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *LearningFeedbackMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *LearningFeedbackMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[learningfeedback.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *LearningFeedbackMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *LearningFeedbackMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, learningfeedback.FieldRunID)
}

// SetTraceID sets the "trace_id" field.
func (m *LearningFeedbackMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *LearningFeedbackMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *LearningFeedbackMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[learningfeedback.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *LearningFeedbackMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *LearningFeedbackMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, learningfeedback.FieldTraceID)
}

// SetFeedbackType sets the "feedback_type" field.
func (m *LearningFeedbackMutation) SetFeedbackType(s string) {
	m.feedback_type = &s
}

// FeedbackType returns the value of the "feedback_type" field in the mutation.
func (m *LearningFeedbackMutation) FeedbackType() (r string, exists bool) {
	v := m.feedback_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackType returns the old "feedback_type" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldFeedbackType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackType: %w", err)
	}
	return oldValue.FeedbackType, nil
}

// ResetFeedbackType resets all changes to the "feedback_type" field.
func (m *LearningFeedbackMutation) ResetFeedbackType() {
	m.feedback_type = nil
}

// SetTaskDescription sets the "task_description" field.
func (m *LearningFeedbackMutation) SetTaskDescription(s string) {
	m.task_description = &s
}

// TaskDescription returns the value of the "task_description" field in the mutation.
func (m *LearningFeedbackMutation) TaskDescription() (r string, exists bool) {
	v := m.task_description
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskDescription returns the old "task_description" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldTaskDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskDescription: %w", err)
	}
	return oldValue.TaskDescription, nil
}

// ClearTaskDescription clears the value of the "task_description" field.
func (m *LearningFeedbackMutation) ClearTaskDescription() {
	m.task_description = nil
	m.clearedFields[learningfeedback.FieldTaskDescription] = struct{}{}
}

// TaskDescriptionCleared returns if the "task_description" field was cleared in this mutation.
func (m *LearningFeedbackMutation) TaskDescriptionCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldTaskDescription]
	return ok
}

// ResetTaskDescription resets all changes to the "task_description" field.
func (m *LearningFeedbackMutation) ResetTaskDescription() {
	m.task_description = nil
	delete(m.clearedFields, learningfeedback.FieldTaskDescription)
}

// SetActionTaken sets the "action_taken" field.
func (m *LearningFeedbackMutation) SetActionTaken(value map[string]interface{}) {
	m.action_taken = &value
}

// ActionTaken returns the value of the "action_taken" field in the mutation.
func (m *LearningFeedbackMutation) ActionTaken() (r map[string]interface{}, exists bool) {
	v := m.action_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldActionTaken returns the old "action_taken" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldActionTaken(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionTaken: %w", err)
	}
	return oldValue.ActionTaken, nil
}

// ClearActionTaken clears the value of the "action_taken" field.
func (m *LearningFeedbackMutation) ClearActionTaken() {
	m.action_taken = nil
	m.clearedFields[learningfeedback.FieldActionTaken] = struct{}{}
}

// ActionTakenCleared returns if the "action_taken" field was cleared in this mutation.
func (m *LearningFeedbackMutation) ActionTakenCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldActionTaken]
	return ok
}

// ResetActionTaken resets all changes to the "action_taken" field.
func (m *LearningFeedbackMutation) ResetActionTaken() {
	m.action_taken = nil
	delete(m.clearedFields, learningfeedback.FieldActionTaken)
}

// SetOutcome sets the "outcome" field.
func (m *LearningFeedbackMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *LearningFeedbackMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *LearningFeedbackMutation) ResetOutcome() {
	m.outcome = nil
}

// SetSuccess sets the "success" field.
func (m *LearningFeedbackMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LearningFeedbackMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LearningFeedbackMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LearningFeedbackMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LearningFeedbackMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LearningFeedbackMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[learningfeedback.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LearningFeedbackMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LearningFeedbackMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, learningfeedback.FieldErrorMessage)
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (m *LearningFeedbackMutation) SetImprovementSuggestions(s string) {
	m.improvement_suggestions = &s
}

// ImprovementSuggestions returns the value of the "improvement_suggestions" field in the mutation.
func (m *LearningFeedbackMutation) ImprovementSuggestions() (r string, exists bool) {
	v := m.improvement_suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementSuggestions returns the old "improvement_suggestions" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldImprovementSuggestions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementSuggestions: %w", err)
	}
	return oldValue.ImprovementSuggestions, nil
}

// ClearImprovementSuggestions clears the value of the "improvement_suggestions" field.
func (m *LearningFeedbackMutation) ClearImprovementSuggestions() {
	m.improvement_suggestions = nil
	m.clearedFields[learningfeedback.FieldImprovementSuggestions] = struct{}{}
}

// ImprovementSuggestionsCleared returns if the "improvement_suggestions" field was cleared in this mutation.
func (m *LearningFeedbackMutation) ImprovementSuggestionsCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldImprovementSuggestions]
	return ok
}

// ResetImprovementSuggestions resets all changes to the "improvement_suggestions" field.
func (m *LearningFeedbackMutation) ResetImprovementSuggestions() {
	m.improvement_suggestions = nil
	delete(m.clearedFields, learningfeedback.FieldImprovementSuggestions)
}

// SetFeedbackMetadata sets the "feedback_metadata" field.
func (m *LearningFeedbackMutation) SetFeedbackMetadata(value map[string]interface{}) {
	m.feedback_metadata = &value
}

// FeedbackMetadata returns the value of the "feedback_metadata" field in the mutation.
func (m *LearningFeedbackMutation) FeedbackMetadata() (r map[string]interface{}, exists bool) {
	v := m.feedback_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackMetadata returns the old "feedback_metadata" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldFeedbackMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackMetadata: %w", err)
	}
	return oldValue.FeedbackMetadata, nil
}

// ClearFeedbackMetadata clears the value of the "feedback_metadata" field.
func (m *LearningFeedbackMutation) ClearFeedbackMetadata() {
	m.feedback_metadata = nil
	m.clearedFields[learningfeedback.FieldFeedbackMetadata] = struct{}{}
}

// FeedbackMetadataCleared returns if the "feedback_metadata" field was cleared in this mutation.
func (m *LearningFeedbackMutation) FeedbackMetadataCleared() bool {
	_, ok := m.clearedFields[learningfeedback.FieldFeedbackMetadata]
	return ok
}

// ResetFeedbackMetadata resets all changes to the "feedback_metadata" field.
func (m *LearningFeedbackMutation) ResetFeedbackMetadata() {
	m.feedback_metadata = nil
	delete(m.clearedFields, learningfeedback.FieldFeedbackMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningFeedback entity.
// If the LearningFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearningFeedbackMutation builder.
func (m *LearningFeedbackMutation) Where(ps ...predicate.LearningFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningFeedback).
func (m *LearningFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent_id != nil {
		fields = append(fields, learningfeedback.FieldAgentID)
	}
	if m.run_id != nil {
		fields = append(fields, learningfeedback.FieldRunID)
	}
	if m.trace_id != nil {
		fields = append(fields, learningfeedback.FieldTraceID)
	}
	if m.feedback_type != nil {
		fields = append(fields, learningfeedback.FieldFeedbackType)
	}
	if m.task_description != nil {
		fields = append(fields, learningfeedback.FieldTaskDescription)
	}
	if m.action_taken != nil {
		fields = append(fields, learningfeedback.FieldActionTaken)
	}
	if m.outcome != nil {
		fields = append(fields, learningfeedback.FieldOutcome)
	}
	if m.success != nil {
		fields = append(fields, learningfeedback.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, learningfeedback.FieldErrorMessage)
	}
	if m.improvement_suggestions != nil {
		fields = append(fields, learningfeedback.FieldImprovementSuggestions)
	}
	if m.feedback_metadata != nil {
		fields = append(fields, learningfeedback.FieldFeedbackMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, learningfeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningfeedback.FieldAgentID:
		return m.AgentID()
	case learningfeedback.FieldRunID:
		return m.RunID()
	case learningfeedback.FieldTraceID:
		return m.TraceID()
	case learningfeedback.FieldFeedbackType:
		return m.FeedbackType()
	case learningfeedback.FieldTaskDescription:
		return m.TaskDescription()
	case learningfeedback.FieldActionTaken:
		return m.ActionTaken()
	case learningfeedback.FieldOutcome:
		return m.Outcome()
	case learningfeedback.FieldSuccess:
		return m.Success()
	case learningfeedback.FieldErrorMessage:
		return m.ErrorMessage()
	case learningfeedback.FieldImprovementSuggestions:
		return m.ImprovementSuggestions()
	case learningfeedback.FieldFeedbackMetadata:
		return m.FeedbackMetadata()
	case learningfeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningfeedback.FieldAgentID:
		return m.OldAgentID(ctx)
	case learningfeedback.FieldRunID:
		return m.OldRunID(ctx)
	case learningfeedback.FieldTraceID:
		return m.OldTraceID(ctx)
	case learningfeedback.FieldFeedbackType:
		return m.OldFeedbackType(ctx)
	case learningfeedback.FieldTaskDescription:
		return m.OldTaskDescription(ctx)
	case learningfeedback.FieldActionTaken:
		return m.OldActionTaken(ctx)
	case learningfeedback.FieldOutcome:
		return m.OldOutcome(ctx)
	case learningfeedback.FieldSuccess:
		return m.OldSuccess(ctx)
	case learningfeedback.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case learningfeedback.FieldImprovementSuggestions:
		return m.OldImprovementSuggestions(ctx)
	case learningfeedback.FieldFeedbackMetadata:
		return m.OldFeedbackMetadata(ctx)
	case learningfeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningfeedback.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case learningfeedback.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case learningfeedback.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case learningfeedback.FieldFeedbackType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackType(v)
		return nil
	case learningfeedback.FieldTaskDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskDescription(v)
		return nil
	case learningfeedback.FieldActionTaken:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionTaken(v)
		return nil
	case learningfeedback.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case learningfeedback.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case learningfeedback.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case learningfeedback.FieldImprovementSuggestions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementSuggestions(v)
		return nil
	case learningfeedback.FieldFeedbackMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackMetadata(v)
		return nil
	case learningfeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningFeedbackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LearningFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningfeedback.FieldRunID) {
		fields = append(fields, learningfeedback.FieldRunID)
	}
	if m.FieldCleared(learningfeedback.FieldTraceID) {
		fields = append(fields, learningfeedback.FieldTraceID)
	}
	if m.FieldCleared(learningfeedback.FieldTaskDescription) {
		fields = append(fields, learningfeedback.FieldTaskDescription)
	}
	if m.FieldCleared(learningfeedback.FieldActionTaken) {
		fields = append(fields, learningfeedback.FieldActionTaken)
	}
	if m.FieldCleared(learningfeedback.FieldErrorMessage) {
		fields = append(fields, learningfeedback.FieldErrorMessage)
	}
	if m.FieldCleared(learningfeedback.FieldImprovementSuggestions) {
		fields = append(fields, learningfeedback.FieldImprovementSuggestions)
	}
	if m.FieldCleared(learningfeedback.FieldFeedbackMetadata) {
		fields = append(fields, learningfeedback.FieldFeedbackMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningFeedbackMutation) ClearField(name string) error {
	switch name {
	case learningfeedback.FieldRunID:
		m.ClearRunID()
		return nil
	case learningfeedback.FieldTraceID:
		m.ClearTraceID()
		return nil
	case learningfeedback.FieldTaskDescription:
		m.ClearTaskDescription()
		return nil
	case learningfeedback.FieldActionTaken:
		m.ClearActionTaken()
		return nil
	case learningfeedback.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case learningfeedback.FieldImprovementSuggestions:
		m.ClearImprovementSuggestions()
		return nil
	case learningfeedback.FieldFeedbackMetadata:
		m.ClearFeedbackMetadata()
		return nil
	}
	return fmt.Errorf("unknown LearningFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningFeedbackMutation) ResetField(name string) error {
	switch name {
	case learningfeedback.FieldAgentID:
		m.ResetAgentID()
		return nil
	case learningfeedback.FieldRunID:
		m.ResetRunID()
		return nil
	case learningfeedback.FieldTraceID:
		m.ResetTraceID()
		return nil
	case learningfeedback.FieldFeedbackType:
		m.ResetFeedbackType()
		return nil
	case learningfeedback.FieldTaskDescription:
		m.ResetTaskDescription()
		return nil
	case learningfeedback.FieldActionTaken:
		m.ResetActionTaken()
		return nil
	case learningfeedback.FieldOutcome:
		m.ResetOutcome()
		return nil
	case learningfeedback.FieldSuccess:
		m.ResetSuccess()
		return nil
	case learningfeedback.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case learningfeedback.FieldImprovementSuggestions:
		m.ResetImprovementSuggestions()
		return nil
	case learningfeedback.FieldFeedbackMetadata:
		m.ResetFeedbackMetadata()
		return nil
	case learningfeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningFeedback edge %s", name)
}

// MemoryItemMutation represents an operation that mutates the MemoryItem nodes in the graph.
type MemoryItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	agent_id            *string
	memory_type         *memoryitem.MemoryType
	content             *string
	embedding           *[]float32
	appendembedding     []float32
	item_metadata       *map[string]interface{}
	importance_score    *float64
	addimportance_score *float64
	access_count        *int
	addaccess_count     *int
	last_accessed_at    *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*MemoryItem, error)
	predicates          []predicate.MemoryItem
}

var _ ent.Mutation = (*MemoryItemMutation)(nil)

// memoryitemOption allows management of the mutation configuration using functional options.
type memoryitemOption func(*MemoryItemMutation)

// newMemoryItemMutation creates new mutation for the MemoryItem entity.
func newMemoryItemMutation(c config, op Op, opts ...memoryitemOption) *MemoryItemMutation {
	m := &MemoryItemMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryItemID sets the ID field of the mutation.
func withMemoryItemID(id string) memoryitemOption {
	return func(m *MemoryItemMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryItem
		)
		m.oldValue = func(ctx context.Context) (*MemoryItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryItem sets the old MemoryItem of the mutation.
func withMemoryItem(node *MemoryItem) memoryitemOption {
	return func(m *MemoryItemMutation) {
		m.oldValue = func(context.Context) (*MemoryItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryItem entities.
func (m *MemoryItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *MemoryItemMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *MemoryItemMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *MemoryItemMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetMemoryType sets the "memory_type" field.
func (m *MemoryItemMutation) SetMemoryType(mt memoryitem.MemoryType) {
	m.memory_type = &mt
}

// MemoryType returns the value of the "memory_type" field in the mutation.
func (m *MemoryItemMutation) MemoryType() (r memoryitem.MemoryType, exists bool) {
	v := m.memory_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryType returns the old "memory_type" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldMemoryType(ctx context.Context) (v memoryitem.MemoryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryType: %w", err)
	}
	return oldValue.MemoryType, nil
}

// ResetMemoryType resets all changes to the "memory_type" field.
func (m *MemoryItemMutation) ResetMemoryType() {
	m.memory_type = nil
}

// SetContent sets the "content" field.
func (m *MemoryItemMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryItemMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MemoryItemMutation) ResetContent() {
	m.content = nil
}

// SetEmbedding sets the "embedding" field.
func (m *MemoryItemMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MemoryItemMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *MemoryItemMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *MemoryItemMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MemoryItemMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[memoryitem.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MemoryItemMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[memoryitem.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MemoryItemMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, memoryitem.FieldEmbedding)
}

// SetItemMetadata sets the "item_metadata" field.
func (m *MemoryItemMutation) SetItemMetadata(value map[string]interface{}) {
	m.item_metadata = &value
}

// ItemMetadata returns the value of the "item_metadata" field in the mutation.
func (m *MemoryItemMutation) ItemMetadata() (r map[string]interface{}, exists bool) {
	v := m.item_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldItemMetadata returns the old "item_metadata" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldItemMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemMetadata: %w", err)
	}
	return oldValue.ItemMetadata, nil
}

// ClearItemMetadata clears the value of the "item_metadata" field.
func (m *MemoryItemMutation) ClearItemMetadata() {
	m.item_metadata = nil
	m.clearedFields[memoryitem.FieldItemMetadata] = struct{}{}
}

// ItemMetadataCleared returns if the "item_metadata" field was cleared in this mutation.
func (m *MemoryItemMutation) ItemMetadataCleared() bool {
	_, ok := m.clearedFields[memoryitem.FieldItemMetadata]
	return ok
}

// ResetItemMetadata resets all changes to the "item_metadata" field.
func (m *MemoryItemMutation) ResetItemMetadata() {
	m.item_metadata = nil
	delete(m.clearedFields, memoryitem.FieldItemMetadata)
}

// SetImportanceScore sets the "importance_score" field.
func (m *MemoryItemMutation) SetImportanceScore(f float64) {
	m.importance_score = &f
	m.addimportance_score = nil
}

// ImportanceScore returns the value of the "importance_score" field in the mutation.
func (m *MemoryItemMutation) ImportanceScore() (r float64, exists bool) {
	v := m.importance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImportanceScore returns the old "importance_score" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldImportanceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportanceScore: %w", err)
	}
	return oldValue.ImportanceScore, nil
}

// AddImportanceScore adds f to the "importance_score" field.
func (m *MemoryItemMutation) AddImportanceScore(f float64) {
	if m.addimportance_score != nil {
		*m.addimportance_score += f
	} else {
		m.addimportance_score = &f
	}
}

// AddedImportanceScore returns the value that was added to the "importance_score" field in this mutation.
func (m *MemoryItemMutation) AddedImportanceScore() (r float64, exists bool) {
	v := m.addimportance_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearImportanceScore clears the value of the "importance_score" field.
func (m *MemoryItemMutation) ClearImportanceScore() {
	m.importance_score = nil
	m.addimportance_score = nil
	m.clearedFields[memoryitem.FieldImportanceScore] = struct{}{}
}

// ImportanceScoreCleared returns if the "importance_score" field was cleared in this mutation.
func (m *MemoryItemMutation) ImportanceScoreCleared() bool {
	_, ok := m.clearedFields[memoryitem.FieldImportanceScore]
	return ok
}

// ResetImportanceScore resets all changes to the "importance_score" field.
func (m *MemoryItemMutation) ResetImportanceScore() {
	m.importance_score = nil
	m.addimportance_score = nil
	delete(m.clearedFields, memoryitem.FieldImportanceScore)
}

// SetAccessCount sets the "access_count" field.
func (m *MemoryItemMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *MemoryItemMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *MemoryItemMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *MemoryItemMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *MemoryItemMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *MemoryItemMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *MemoryItemMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldLastAccessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (m *MemoryItemMutation) ClearLastAccessedAt() {
	m.last_accessed_at = nil
	m.clearedFields[memoryitem.FieldLastAccessedAt] = struct{}{}
}

// LastAccessedAtCleared returns if the "last_accessed_at" field was cleared in this mutation.
func (m *MemoryItemMutation) LastAccessedAtCleared() bool {
	_, ok := m.clearedFields[memoryitem.FieldLastAccessedAt]
	return ok
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *MemoryItemMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
	delete(m.clearedFields, memoryitem.FieldLastAccessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryItem entity.
// If the MemoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MemoryItemMutation builder.
func (m *MemoryItemMutation) Where(ps ...predicate.MemoryItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryItem).
func (m *MemoryItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_id != nil {
		fields = append(fields, memoryitem.FieldAgentID)
	}
	if m.memory_type != nil {
		fields = append(fields, memoryitem.FieldMemoryType)
	}
	if m.content != nil {
		fields = append(fields, memoryitem.FieldContent)
	}
	if m.embedding != nil {
		fields = append(fields, memoryitem.FieldEmbedding)
	}
	if m.item_metadata != nil {
		fields = append(fields, memoryitem.FieldItemMetadata)
	}
	if m.importance_score != nil {
		fields = append(fields, memoryitem.FieldImportanceScore)
	}
	if m.access_count != nil {
		fields = append(fields, memoryitem.FieldAccessCount)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, memoryitem.FieldLastAccessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, memoryitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryitem.FieldAgentID:
		return m.AgentID()
	case memoryitem.FieldMemoryType:
		return m.MemoryType()
	case memoryitem.FieldContent:
		return m.Content()
	case memoryitem.FieldEmbedding:
		return m.Embedding()
	case memoryitem.FieldItemMetadata:
		return m.ItemMetadata()
	case memoryitem.FieldImportanceScore:
		return m.ImportanceScore()
	case memoryitem.FieldAccessCount:
		return m.AccessCount()
	case memoryitem.FieldLastAccessedAt:
		return m.LastAccessedAt()
	case memoryitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryitem.FieldAgentID:
		return m.OldAgentID(ctx)
	case memoryitem.FieldMemoryType:
		return m.OldMemoryType(ctx)
	case memoryitem.FieldContent:
		return m.OldContent(ctx)
	case memoryitem.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case memoryitem.FieldItemMetadata:
		return m.OldItemMetadata(ctx)
	case memoryitem.FieldImportanceScore:
		return m.OldImportanceScore(ctx)
	case memoryitem.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case memoryitem.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	case memoryitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryitem.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case memoryitem.FieldMemoryType:
		v, ok := value.(memoryitem.MemoryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryType(v)
		return nil
	case memoryitem.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memoryitem.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case memoryitem.FieldItemMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemMetadata(v)
		return nil
	case memoryitem.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportanceScore(v)
		return nil
	case memoryitem.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case memoryitem.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	case memoryitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryItemMutation) AddedFields() []string {
	var fields []string
	if m.addimportance_score != nil {
		fields = append(fields, memoryitem.FieldImportanceScore)
	}
	if m.addaccess_count != nil {
		fields = append(fields, memoryitem.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryitem.FieldImportanceScore:
		return m.AddedImportanceScore()
	case memoryitem.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryitem.FieldImportanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportanceScore(v)
		return nil
	case memoryitem.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryitem.FieldEmbedding) {
		fields = append(fields, memoryitem.FieldEmbedding)
	}
	if m.FieldCleared(memoryitem.FieldItemMetadata) {
		fields = append(fields, memoryitem.FieldItemMetadata)
	}
	if m.FieldCleared(memoryitem.FieldImportanceScore) {
		fields = append(fields, memoryitem.FieldImportanceScore)
	}
	if m.FieldCleared(memoryitem.FieldLastAccessedAt) {
		fields = append(fields, memoryitem.FieldLastAccessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryItemMutation) ClearField(name string) error {
	switch name {
	case memoryitem.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	case memoryitem.FieldItemMetadata:
		m.ClearItemMetadata()
		return nil
	case memoryitem.FieldImportanceScore:
		m.ClearImportanceScore()
		return nil
	case memoryitem.FieldLastAccessedAt:
		m.ClearLastAccessedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryItemMutation) ResetField(name string) error {
	switch name {
	case memoryitem.FieldAgentID:
		m.ResetAgentID()
		return nil
	case memoryitem.FieldMemoryType:
		m.ResetMemoryType()
		return nil
	case memoryitem.FieldContent:
		m.ResetContent()
		return nil
	case memoryitem.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case memoryitem.FieldItemMetadata:
		m.ResetItemMetadata()
		return nil
	case memoryitem.FieldImportanceScore:
		m.ResetImportanceScore()
		return nil
	case memoryitem.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case memoryitem.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	case memoryitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryItem edge %s", name)
}

// ReasoningTraceMutation represents an operation that mutates the ReasoningTrace nodes in the graph.
type ReasoningTraceMutation struct {
	config
	op             Op
	typ            string
	id             *string
	run_id         *string
	agent_id       *string
	step_index     *int
	addstep_index  *int
	thought        *string
	action         *map[string]interface{}
	observation    *map[string]interface{}
	reflection     *string
	tokens_used    *int
	addtokens_used *int
	latency_ms     *int
	addlatency_ms  *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ReasoningTrace, error)
	predicates     []predicate.ReasoningTrace
}

var _ ent.Mutation = (*ReasoningTraceMutation)(nil)

// reasoningtraceOption allows management of the mutation configuration using functional options.
type reasoningtraceOption func(*ReasoningTraceMutation)

// newReasoningTraceMutation creates new mutation for the ReasoningTrace entity.
func newReasoningTraceMutation(c config, op Op, opts ...reasoningtraceOption) *ReasoningTraceMutation {
	m := &ReasoningTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeReasoningTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReasoningTraceID sets the ID field of the mutation.
func withReasoningTraceID(id string) reasoningtraceOption {
	return func(m *ReasoningTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *ReasoningTrace
		)
		m.oldValue = func(ctx context.Context) (*ReasoningTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReasoningTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReasoningTrace sets the old ReasoningTrace of the mutation.
func withReasoningTrace(node *ReasoningTrace) reasoningtraceOption {
	return func(m *ReasoningTraceMutation) {
		m.oldValue = func(context.Context) (*ReasoningTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReasoningTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReasoningTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReasoningTrace entities.
func (m *ReasoningTraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReasoningTraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReasoningTraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReasoningTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ReasoningTraceMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ReasoningTraceMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ReasoningTraceMutation) ResetRunID() {
	m.run_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ReasoningTraceMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ReasoningTraceMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ReasoningTraceMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetStepIndex sets the "step_index" field.
func (m *ReasoningTraceMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *ReasoningTraceMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *ReasoningTraceMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *ReasoningTraceMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *ReasoningTraceMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetThought sets the "thought" field.
func (m *ReasoningTraceMutation) SetThought(s string) {
	m.thought = &s
}

// Thought returns the value of the "thought" field in the mutation.
func (m *ReasoningTraceMutation) Thought() (r string, exists bool) {
	v := m.thought
	if v == nil {
		return
	}
	return *v, true
}

// OldThought returns the old "thought" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldThought(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThought is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThought requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThought: %w", err)
	}
	return oldValue.Thought, nil
}

// ResetThought resets all changes to the "thought" field.
func (m *ReasoningTraceMutation) ResetThought() {
	m.thought = nil
}

// SetAction sets the "action" field.
func (m *ReasoningTraceMutation) SetAction(value map[string]interface{}) {
	m.action = &value
}

// Action returns the value of the "action" field in the mutation.
func (m *ReasoningTraceMutation) Action() (r map[string]interface{}, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldAction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ReasoningTraceMutation) ResetAction() {
	m.action = nil
}

// SetObservation sets the "observation" field.
func (m *ReasoningTraceMutation) SetObservation(value map[string]interface{}) {
	m.observation = &value
}

// Observation returns the value of the "observation" field in the mutation.
func (m *ReasoningTraceMutation) Observation() (r map[string]interface{}, exists bool) {
	v := m.observation
	if v == nil {
		return
	}
	return *v, true
}

// OldObservation returns the old "observation" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldObservation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservation: %w", err)
	}
	return oldValue.Observation, nil
}

// ClearObservation clears the value of the "observation" field.
func (m *ReasoningTraceMutation) ClearObservation() {
	m.observation = nil
	m.clearedFields[reasoningtrace.FieldObservation] = struct{}{}
}

// ObservationCleared returns if the "observation" field was cleared in this mutation.
func (m *ReasoningTraceMutation) ObservationCleared() bool {
	_, ok := m.clearedFields[reasoningtrace.FieldObservation]
	return ok
}

// ResetObservation resets all changes to the "observation" field.
func (m *ReasoningTraceMutation) ResetObservation() {
	m.observation = nil
	delete(m.clearedFields, reasoningtrace.FieldObservation)
}

// SetReflection sets the "reflection" field.
func (m *ReasoningTraceMutation) SetReflection(s string) {
	m.reflection = &s
}

// Reflection returns the value of the "reflection" field in the mutation.
func (m *ReasoningTraceMutation) Reflection() (r string, exists bool) {
	v := m.reflection
	if v == nil {
		return
	}
	return *v, true
}

// OldReflection returns the old "reflection" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldReflection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReflection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReflection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReflection: %w", err)
	}
	return oldValue.Reflection, nil
}

// ClearReflection clears the value of the "reflection" field.
func (m *ReasoningTraceMutation) ClearReflection() {
	m.reflection = nil
	m.clearedFields[reasoningtrace.FieldReflection] = struct{}{}
}

// ReflectionCleared returns if the "reflection" field was cleared in this mutation.
func (m *ReasoningTraceMutation) ReflectionCleared() bool {
	_, ok := m.clearedFields[reasoningtrace.FieldReflection]
	return ok
}

// ResetReflection resets all changes to the "reflection" field.
func (m *ReasoningTraceMutation) ResetReflection() {
	m.reflection = nil
	delete(m.clearedFields, reasoningtrace.FieldReflection)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ReasoningTraceMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ReasoningTraceMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ReasoningTraceMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ReasoningTraceMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ReasoningTraceMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ReasoningTraceMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ReasoningTraceMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ReasoningTraceMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ReasoningTraceMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ReasoningTraceMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReasoningTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReasoningTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReasoningTrace entity.
// If the ReasoningTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReasoningTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReasoningTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReasoningTraceMutation builder.
func (m *ReasoningTraceMutation) Where(ps ...predicate.ReasoningTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReasoningTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReasoningTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReasoningTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReasoningTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReasoningTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReasoningTrace).
func (m *ReasoningTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReasoningTraceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run_id != nil {
		fields = append(fields, reasoningtrace.FieldRunID)
	}
	if m.agent_id != nil {
		fields = append(fields, reasoningtrace.FieldAgentID)
	}
	if m.step_index != nil {
		fields = append(fields, reasoningtrace.FieldStepIndex)
	}
	if m.thought != nil {
		fields = append(fields, reasoningtrace.FieldThought)
	}
	if m.action != nil {
		fields = append(fields, reasoningtrace.FieldAction)
	}
	if m.observation != nil {
		fields = append(fields, reasoningtrace.FieldObservation)
	}
	if m.reflection != nil {
		fields = append(fields, reasoningtrace.FieldReflection)
	}
	if m.tokens_used != nil {
		fields = append(fields, reasoningtrace.FieldTokensUsed)
	}
	if m.latency_ms != nil {
		fields = append(fields, reasoningtrace.FieldLatencyMs)
	}
	if m.created_at != nil {
		fields = append(fields, reasoningtrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReasoningTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reasoningtrace.FieldRunID:
		return m.RunID()
	case reasoningtrace.FieldAgentID:
		return m.AgentID()
	case reasoningtrace.FieldStepIndex:
		return m.StepIndex()
	case reasoningtrace.FieldThought:
		return m.Thought()
	case reasoningtrace.FieldAction:
		return m.Action()
	case reasoningtrace.FieldObservation:
		return m.Observation()
	case reasoningtrace.FieldReflection:
		return m.Reflection()
	case reasoningtrace.FieldTokensUsed:
		return m.TokensUsed()
	case reasoningtrace.FieldLatencyMs:
		return m.LatencyMs()
	case reasoningtrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReasoningTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reasoningtrace.FieldRunID:
		return m.OldRunID(ctx)
	case reasoningtrace.FieldAgentID:
		return m.OldAgentID(ctx)
	case reasoningtrace.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case reasoningtrace.FieldThought:
		return m.OldThought(ctx)
	case reasoningtrace.FieldAction:
		return m.OldAction(ctx)
	case reasoningtrace.FieldObservation:
		return m.OldObservation(ctx)
	case reasoningtrace.FieldReflection:
		return m.OldReflection(ctx)
	case reasoningtrace.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case reasoningtrace.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case reasoningtrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReasoningTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReasoningTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reasoningtrace.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case reasoningtrace.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case reasoningtrace.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case reasoningtrace.FieldThought:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThought(v)
		return nil
	case reasoningtrace.FieldAction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case reasoningtrace.FieldObservation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservation(v)
		return nil
	case reasoningtrace.FieldReflection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReflection(v)
		return nil
	case reasoningtrace.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case reasoningtrace.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case reasoningtrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReasoningTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReasoningTraceMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, reasoningtrace.FieldStepIndex)
	}
	if m.addtokens_used != nil {
		fields = append(fields, reasoningtrace.FieldTokensUsed)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, reasoningtrace.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReasoningTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reasoningtrace.FieldStepIndex:
		return m.AddedStepIndex()
	case reasoningtrace.FieldTokensUsed:
		return m.AddedTokensUsed()
	case reasoningtrace.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReasoningTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reasoningtrace.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case reasoningtrace.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case reasoningtrace.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ReasoningTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReasoningTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reasoningtrace.FieldObservation) {
		fields = append(fields, reasoningtrace.FieldObservation)
	}
	if m.FieldCleared(reasoningtrace.FieldReflection) {
		fields = append(fields, reasoningtrace.FieldReflection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReasoningTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReasoningTraceMutation) ClearField(name string) error {
	switch name {
	case reasoningtrace.FieldObservation:
		m.ClearObservation()
		return nil
	case reasoningtrace.FieldReflection:
		m.ClearReflection()
		return nil
	}
	return fmt.Errorf("unknown ReasoningTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReasoningTraceMutation) ResetField(name string) error {
	switch name {
	case reasoningtrace.FieldRunID:
		m.ResetRunID()
		return nil
	case reasoningtrace.FieldAgentID:
		m.ResetAgentID()
		return nil
	case reasoningtrace.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case reasoningtrace.FieldThought:
		m.ResetThought()
		return nil
	case reasoningtrace.FieldAction:
		m.ResetAction()
		return nil
	case reasoningtrace.FieldObservation:
		m.ResetObservation()
		return nil
	case reasoningtrace.FieldReflection:
		m.ResetReflection()
		return nil
	case reasoningtrace.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case reasoningtrace.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case reasoningtrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReasoningTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReasoningTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReasoningTraceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReasoningTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReasoningTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReasoningTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReasoningTraceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReasoningTraceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReasoningTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReasoningTraceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReasoningTrace edge %s", name)
}

// ToolMutation represents an operation that mutates the Tool nodes in the graph.
type ToolMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	description     *string
	function_schema *map[string]interface{}
	status          *tool.Status
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Tool, error)
	predicates      []predicate.Tool
}

var _ ent.Mutation = (*ToolMutation)(nil)

// toolOption allows management of the mutation configuration using functional options.
type toolOption func(*ToolMutation)

// newToolMutation creates new mutation for the Tool entity.
func newToolMutation(c config, op Op, opts ...toolOption) *ToolMutation {
	m := &ToolMutation{
		config:        c,
		op:            op,
		typ:           TypeTool,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolID sets the ID field of the mutation.
func withToolID(id string) toolOption {
	return func(m *ToolMutation) {
		var (
			err   error
			once  sync.Once
			value *Tool
		)
		m.oldValue = func(ctx context.Context) (*Tool, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tool.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTool sets the old Tool of the mutation.
func withTool(node *Tool) toolOption {
	return func(m *ToolMutation) {
		m.oldValue = func(context.Context) (*Tool, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tool entities.
func (m *ToolMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tool.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ToolMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ToolMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ToolMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ToolMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tool.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ToolMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tool.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ToolMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tool.FieldDescription)
}

// SetFunctionSchema sets the "function_schema" field.
func (m *ToolMutation) SetFunctionSchema(value map[string]interface{}) {
	m.function_schema = &value
}

// FunctionSchema returns the value of the "function_schema" field in the mutation.
func (m *ToolMutation) FunctionSchema() (r map[string]interface{}, exists bool) {
	v := m.function_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldFunctionSchema returns the old "function_schema" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldFunctionSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFunctionSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFunctionSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFunctionSchema: %w", err)
	}
	return oldValue.FunctionSchema, nil
}

// ClearFunctionSchema clears the value of the "function_schema" field.
func (m *ToolMutation) ClearFunctionSchema() {
	m.function_schema = nil
	m.clearedFields[tool.FieldFunctionSchema] = struct{}{}
}

// FunctionSchemaCleared returns if the "function_schema" field was cleared in this mutation.
func (m *ToolMutation) FunctionSchemaCleared() bool {
	_, ok := m.clearedFields[tool.FieldFunctionSchema]
	return ok
}

// ResetFunctionSchema resets all changes to the "function_schema" field.
func (m *ToolMutation) ResetFunctionSchema() {
	m.function_schema = nil
	delete(m.clearedFields, tool.FieldFunctionSchema)
}

// SetStatus sets the "status" field.
func (m *ToolMutation) SetStatus(t tool.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolMutation) Status() (r tool.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldStatus(ctx context.Context) (v tool.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ToolMutation builder.
func (m *ToolMutation) Where(ps ...predicate.Tool) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tool, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tool).
func (m *ToolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, tool.FieldName)
	}
	if m.description != nil {
		fields = append(fields, tool.FieldDescription)
	}
	if m.function_schema != nil {
		fields = append(fields, tool.FieldFunctionSchema)
	}
	if m.status != nil {
		fields = append(fields, tool.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, tool.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tool.FieldName:
		return m.Name()
	case tool.FieldDescription:
		return m.Description()
	case tool.FieldFunctionSchema:
		return m.FunctionSchema()
	case tool.FieldStatus:
		return m.Status()
	case tool.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tool.FieldName:
		return m.OldName(ctx)
	case tool.FieldDescription:
		return m.OldDescription(ctx)
	case tool.FieldFunctionSchema:
		return m.OldFunctionSchema(ctx)
	case tool.FieldStatus:
		return m.OldStatus(ctx)
	case tool.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tool field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tool.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tool.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tool.FieldFunctionSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFunctionSchema(v)
		return nil
	case tool.FieldStatus:
		v, ok := value.(tool.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tool.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tool field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tool numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tool.FieldDescription) {
		fields = append(fields, tool.FieldDescription)
	}
	if m.FieldCleared(tool.FieldFunctionSchema) {
		fields = append(fields, tool.FieldFunctionSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolMutation) ClearField(name string) error {
	switch name {
	case tool.FieldDescription:
		m.ClearDescription()
		return nil
	case tool.FieldFunctionSchema:
		m.ClearFunctionSchema()
		return nil
	}
	return fmt.Errorf("unknown Tool nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolMutation) ResetField(name string) error {
	switch name {
	case tool.FieldName:
		m.ResetName()
		return nil
	case tool.FieldDescription:
		m.ResetDescription()
		return nil
	case tool.FieldFunctionSchema:
		m.ResetFunctionSchema()
		return nil
	case tool.FieldStatus:
		m.ResetStatus()
		return nil
	case tool.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tool field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tool unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tool edge %s", name)
}
