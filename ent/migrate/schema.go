// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionLogsColumns holds the columns for the "action_logs" table.
	ActionLogsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_params", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ActionLogsTable holds the schema information for the "action_logs" table.
	ActionLogsTable = &schema.Table{
		Name:       "action_logs",
		Columns:    ActionLogsColumns,
		PrimaryKey: []*schema.Column{ActionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionlog_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActionLogsColumns[1], ActionLogsColumns[6]},
			},
			{
				Name:    "actionlog_tool_name_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActionLogsColumns[2], ActionLogsColumns[6]},
			},
		},
	}
	// EpisodesColumns holds the columns for the "episodes" table.
	EpisodesColumns = []*schema.Column{
		{Name: "episode_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "context_type", Type: field.TypeEnum, Enums: []string{"chat", "development", "planning", "general"}, Default: "chat"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "closed"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "timeout_minutes", Type: field.TypeInt},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
	}
	// EpisodesTable holds the schema information for the "episodes" table.
	EpisodesTable = &schema.Table{
		Name:       "episodes",
		Columns:    EpisodesColumns,
		PrimaryKey: []*schema.Column{EpisodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "episode_user_id_context_type_status",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[1], EpisodesColumns[2], EpisodesColumns[3]},
			},
			{
				Name:    "episode_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{EpisodesColumns[3], EpisodesColumns[5]},
			},
			{
				Name:    "episode_user_id_context_type",
				Unique:  true,
				Columns: []*schema.Column{EpisodesColumns[1], EpisodesColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'active'",
				},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"rating", "thumbs", "text", "implicit"}},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_id", Type: field.TypeString},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedbacks_interactions_feedbacks",
				Columns:    []*schema.Column{FeedbacksColumns[6]},
				RefColumns: []*schema.Column{InteractionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_interaction_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[6]},
			},
			{
				Name:    "feedback_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[1], FeedbacksColumns[5]},
			},
		},
	}
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "request_text", Type: field.TypeString, Size: 2147483647},
		{Name: "response_text", Type: field.TypeString, Size: 2147483647},
		{Name: "response_time_ms", Type: field.TypeInt},
		{Name: "task_completed", Type: field.TypeBool, Default: false},
		{Name: "engagement_duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "follow_up_in_60s", Type: field.TypeBool, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[1], InteractionsColumns[9]},
			},
		},
	}
	// MemoryFactsColumns holds the columns for the "memory_facts" table.
	MemoryFactsColumns = []*schema.Column{
		{Name: "fact_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_kind", Type: field.TypeEnum, Enums: []string{"person", "project", "general"}, Default: "general"},
		{Name: "subject_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "importance", Type: field.TypeFloat64, Default: 5},
		{Name: "embedding", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_accessed_at", Type: field.TypeTime},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
	}
	// MemoryFactsTable holds the schema information for the "memory_facts" table.
	MemoryFactsTable = &schema.Table{
		Name:       "memory_facts",
		Columns:    MemoryFactsColumns,
		PrimaryKey: []*schema.Column{MemoryFactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryfact_user_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryFactsColumns[1]},
			},
			{
				Name:    "memoryfact_user_id_subject_kind",
				Unique:  false,
				Columns: []*schema.Column{MemoryFactsColumns[1], MemoryFactsColumns[2]},
			},
		},
	}
	// TurnsColumns holds the columns for the "turns" table.
	TurnsColumns = []*schema.Column{
		{Name: "turn_id", Type: field.TypeString, Unique: true},
		{Name: "user_text", Type: field.TypeString, Size: 2147483647},
		{Name: "assistant_text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "episode_id", Type: field.TypeString},
	}
	// TurnsTable holds the schema information for the "turns" table.
	TurnsTable = &schema.Table{
		Name:       "turns",
		Columns:    TurnsColumns,
		PrimaryKey: []*schema.Column{TurnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "turns_episodes_turns",
				Columns:    []*schema.Column{TurnsColumns[4]},
				RefColumns: []*schema.Column{EpisodesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "turn_episode_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TurnsColumns[4], TurnsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionLogsTable,
		EpisodesTable,
		EventsTable,
		FeedbacksTable,
		InteractionsTable,
		MemoryFactsTable,
		TurnsTable,
	}
)

func init() {
	FeedbacksTable.ForeignKeys[0].RefTable = InteractionsTable
	TurnsTable.ForeignKeys[0].RefTable = EpisodesTable
}
