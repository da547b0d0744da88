// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/apa-platform/apacore/ent/agent"
	"github.com/apa-platform/apacore/ent/execution"
	"github.com/apa-platform/apacore/ent/hitlrequest"
	"github.com/apa-platform/apacore/ent/learningfeedback"
	"github.com/apa-platform/apacore/ent/memoryitem"
	"github.com/apa-platform/apacore/ent/reasoningtrace"
	"github.com/apa-platform/apacore/ent/schema"
	"github.com/apa-platform/apacore/ent/tool"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescModel is the schema descriptor for model field.
	agentDescModel := agentFields[3].Descriptor()
	// agent.DefaultModel holds the default value on creation for the model field.
	agent.DefaultModel = agentDescModel.Default.(string)
	// agentDescProvider is the schema descriptor for provider field.
	agentDescProvider := agentFields[4].Descriptor()
	// agent.DefaultProvider holds the default value on creation for the provider field.
	agent.DefaultProvider = agentDescProvider.Default.(string)
	// agentDescTemperature is the schema descriptor for temperature field.
	agentDescTemperature := agentFields[5].Descriptor()
	// agent.DefaultTemperature holds the default value on creation for the temperature field.
	agent.DefaultTemperature = agentDescTemperature.Default.(int)
	// agentDescMaxTokens is the schema descriptor for max_tokens field.
	agentDescMaxTokens := agentFields[6].Descriptor()
	// agent.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	agent.DefaultMaxTokens = agentDescMaxTokens.Default.(int)
	// agentDescEnableMemory is the schema descriptor for enable_memory field.
	agentDescEnableMemory := agentFields[11].Descriptor()
	// agent.DefaultEnableMemory holds the default value on creation for the enable_memory field.
	agent.DefaultEnableMemory = agentDescEnableMemory.Default.(bool)
	// agentDescEnableTools is the schema descriptor for enable_tools field.
	agentDescEnableTools := agentFields[12].Descriptor()
	// agent.DefaultEnableTools holds the default value on creation for the enable_tools field.
	agent.DefaultEnableTools = agentDescEnableTools.Default.(bool)
	// agentDescEnableLearning is the schema descriptor for enable_learning field.
	agentDescEnableLearning := agentFields[13].Descriptor()
	// agent.DefaultEnableLearning holds the default value on creation for the enable_learning field.
	agent.DefaultEnableLearning = agentDescEnableLearning.Default.(bool)
	// agentDescEnableCollaboration is the schema descriptor for enable_collaboration field.
	agentDescEnableCollaboration := agentFields[14].Descriptor()
	// agent.DefaultEnableCollaboration holds the default value on creation for the enable_collaboration field.
	agent.DefaultEnableCollaboration = agentDescEnableCollaboration.Default.(bool)
	// agentDescMaxIterations is the schema descriptor for max_iterations field.
	agentDescMaxIterations := agentFields[15].Descriptor()
	// agent.DefaultMaxIterations holds the default value on creation for the max_iterations field.
	agent.DefaultMaxIterations = agentDescMaxIterations.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[17].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[18].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[8].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	hitlrequestFields := schema.HITLRequest{}.Fields()
	_ = hitlrequestFields
	// hitlrequestDescRequestType is the schema descriptor for request_type field.
	hitlrequestDescRequestType := hitlrequestFields[3].Descriptor()
	// hitlrequest.DefaultRequestType holds the default value on creation for the request_type field.
	hitlrequest.DefaultRequestType = hitlrequestDescRequestType.Default.(string)
	// hitlrequestDescRequestedAt is the schema descriptor for requested_at field.
	hitlrequestDescRequestedAt := hitlrequestFields[10].Descriptor()
	// hitlrequest.DefaultRequestedAt holds the default value on creation for the requested_at field.
	hitlrequest.DefaultRequestedAt = hitlrequestDescRequestedAt.Default.(func() time.Time)
	learningfeedbackFields := schema.LearningFeedback{}.Fields()
	_ = learningfeedbackFields
	// learningfeedbackDescCreatedAt is the schema descriptor for created_at field.
	learningfeedbackDescCreatedAt := learningfeedbackFields[12].Descriptor()
	// learningfeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningfeedback.DefaultCreatedAt = learningfeedbackDescCreatedAt.Default.(func() time.Time)
	memoryitemFields := schema.MemoryItem{}.Fields()
	_ = memoryitemFields
	// memoryitemDescAccessCount is the schema descriptor for access_count field.
	memoryitemDescAccessCount := memoryitemFields[7].Descriptor()
	// memoryitem.DefaultAccessCount holds the default value on creation for the access_count field.
	memoryitem.DefaultAccessCount = memoryitemDescAccessCount.Default.(int)
	// memoryitemDescCreatedAt is the schema descriptor for created_at field.
	memoryitemDescCreatedAt := memoryitemFields[9].Descriptor()
	// memoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryitem.DefaultCreatedAt = memoryitemDescCreatedAt.Default.(func() time.Time)
	reasoningtraceFields := schema.ReasoningTrace{}.Fields()
	_ = reasoningtraceFields
	// reasoningtraceDescTokensUsed is the schema descriptor for tokens_used field.
	reasoningtraceDescTokensUsed := reasoningtraceFields[8].Descriptor()
	// reasoningtrace.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	reasoningtrace.DefaultTokensUsed = reasoningtraceDescTokensUsed.Default.(int)
	// reasoningtraceDescLatencyMs is the schema descriptor for latency_ms field.
	reasoningtraceDescLatencyMs := reasoningtraceFields[9].Descriptor()
	// reasoningtrace.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	reasoningtrace.DefaultLatencyMs = reasoningtraceDescLatencyMs.Default.(int)
	// reasoningtraceDescCreatedAt is the schema descriptor for created_at field.
	reasoningtraceDescCreatedAt := reasoningtraceFields[10].Descriptor()
	// reasoningtrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	reasoningtrace.DefaultCreatedAt = reasoningtraceDescCreatedAt.Default.(func() time.Time)
	toolFields := schema.Tool{}.Fields()
	_ = toolFields
	// toolDescCreatedAt is the schema descriptor for created_at field.
	toolDescCreatedAt := toolFields[5].Descriptor()
	// tool.DefaultCreatedAt holds the default value on creation for the created_at field.
	tool.DefaultCreatedAt = toolDescCreatedAt.Default.(func() time.Time)
}
