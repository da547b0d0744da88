// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Default: "gpt-4"},
		{Name: "provider", Type: field.TypeString, Default: "openai"},
		{Name: "temperature", Type: field.TypeInt, Default: 7},
		{Name: "max_tokens", Type: field.TypeInt, Default: 2000},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "safety_guardrails", Type: field.TypeJSON, Nullable: true},
		{Name: "enable_memory", Type: field.TypeBool, Default: true},
		{Name: "enable_tools", Type: field.TypeBool, Default: true},
		{Name: "enable_learning", Type: field.TypeBool, Default: true},
		{Name: "enable_collaboration", Type: field.TypeBool, Default: false},
		{Name: "max_iterations", Type: field.TypeInt, Default: 10},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "archived"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[16]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled", "timeout"}, Default: "pending"},
		{Name: "input", Type: field.TypeJSON},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "execution_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2]},
			},
			{
				Name:    "execution_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1]},
			},
			{
				Name:    "execution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2], ExecutionsColumns[8]},
			},
			{
				Name:    "execution_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2], ExecutionsColumns[11]},
			},
		},
	}
	// HitlRequestsColumns holds the columns for the "hitl_requests" table.
	HitlRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "request_type", Type: field.TypeString, Default: "action_approval"},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "action_details", Type: field.TypeJSON},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "timeout"}, Default: "pending"},
		{Name: "decision", Type: field.TypeString, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "responded_by", Type: field.TypeString, Nullable: true},
		{Name: "request_metadata", Type: field.TypeJSON, Nullable: true},
	}
	// HitlRequestsTable holds the schema information for the "hitl_requests" table.
	HitlRequestsTable = &schema.Table{
		Name:       "hitl_requests",
		Columns:    HitlRequestsColumns,
		PrimaryKey: []*schema.Column{HitlRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hitlrequest_status",
				Unique:  false,
				Columns: []*schema.Column{HitlRequestsColumns[7]},
			},
			{
				Name:    "hitlrequest_run_id",
				Unique:  false,
				Columns: []*schema.Column{HitlRequestsColumns[1]},
			},
			{
				Name:    "hitlrequest_status_risk_level",
				Unique:  false,
				Columns: []*schema.Column{HitlRequestsColumns[7], HitlRequestsColumns[6]},
			},
		},
	}
	// LearningFeedbackColumns holds the columns for the "learning_feedback" table.
	LearningFeedbackColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "feedback_type", Type: field.TypeString},
		{Name: "task_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_taken", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "improvement_suggestions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "feedback_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearningFeedbackTable holds the schema information for the "learning_feedback" table.
	LearningFeedbackTable = &schema.Table{
		Name:       "learning_feedback",
		Columns:    LearningFeedbackColumns,
		PrimaryKey: []*schema.Column{LearningFeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningfeedback_agent_id",
				Unique:  false,
				Columns: []*schema.Column{LearningFeedbackColumns[1]},
			},
			{
				Name:    "learningfeedback_run_id",
				Unique:  false,
				Columns: []*schema.Column{LearningFeedbackColumns[2]},
			},
		},
	}
	// MemoryItemsColumns holds the columns for the "memory_items" table.
	MemoryItemsColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "memory_type", Type: field.TypeEnum, Enums: []string{"episodic", "semantic", "procedural"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "item_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "importance_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "last_accessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MemoryItemsTable holds the schema information for the "memory_items" table.
	MemoryItemsTable = &schema.Table{
		Name:       "memory_items",
		Columns:    MemoryItemsColumns,
		PrimaryKey: []*schema.Column{MemoryItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryitem_agent_id_memory_type",
				Unique:  false,
				Columns: []*schema.Column{MemoryItemsColumns[1], MemoryItemsColumns[2]},
			},
			{
				Name:    "memoryitem_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryItemsColumns[1], MemoryItemsColumns[9]},
			},
		},
	}
	// ReasoningTracesColumns holds the columns for the "reasoning_traces" table.
	ReasoningTracesColumns = []*schema.Column{
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "thought", Type: field.TypeString, Size: 2147483647},
		{Name: "action", Type: field.TypeJSON},
		{Name: "observation", Type: field.TypeJSON, Nullable: true},
		{Name: "reflection", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReasoningTracesTable holds the schema information for the "reasoning_traces" table.
	ReasoningTracesTable = &schema.Table{
		Name:       "reasoning_traces",
		Columns:    ReasoningTracesColumns,
		PrimaryKey: []*schema.Column{ReasoningTracesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reasoningtrace_run_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{ReasoningTracesColumns[1], ReasoningTracesColumns[3]},
			},
			{
				Name:    "reasoningtrace_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ReasoningTracesColumns[2]},
			},
		},
	}
	// ToolsColumns holds the columns for the "tools" table.
	ToolsColumns = []*schema.Column{
		{Name: "tool_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "function_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolsTable holds the schema information for the "tools" table.
	ToolsTable = &schema.Table{
		Name:       "tools",
		Columns:    ToolsColumns,
		PrimaryKey: []*schema.Column{ToolsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tool_status",
				Unique:  false,
				Columns: []*schema.Column{ToolsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ExecutionsTable,
		HitlRequestsTable,
		LearningFeedbackTable,
		MemoryItemsTable,
		ReasoningTracesTable,
		ToolsTable,
	}
)

func init() {
	LearningFeedbackTable.Annotation = &entsql.Annotation{
		Table: "learning_feedback",
	}
}
