// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "in_progress"},
		{Name: "current_question", Type: field.TypeInt, Default: 0},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
			{
				Name:    "attempt_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "quiz_scores", Type: field.TypeJSON},
		{Name: "completed_topics", Type: field.TypeJSON},
		{Name: "current_difficulty", Type: field.TypeString, Default: "beginner"},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "badges", Type: field.TypeJSON},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[1]},
			},
		},
	}
	// QuizsColumns holds the columns for the "quizs" table.
	QuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "quiz_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "adaptive_elements", Type: field.TypeJSON, Nullable: true},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "learning_objectives", Type: field.TypeJSON},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuizsTable holds the schema information for the "quizs" table.
	QuizsTable = &schema.Table{
		Name:       "quizs",
		Columns:    QuizsColumns,
		PrimaryKey: []*schema.Column{QuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quiz_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizsColumns[1]},
			},
			{
				Name:    "quiz_expires_at",
				Unique:  false,
				Columns: []*schema.Column{QuizsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "age", Type: field.TypeInt},
		{Name: "interests", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		LlmRequestEventsTable,
		ProgressesTable,
		QuizsTable,
		UsersTable,
	}
)

func init() {
}
