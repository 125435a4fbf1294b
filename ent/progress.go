// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lunara-health/lunara/ent/progress"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user email
	UserID string `json:"user_id,omitempty"`
	// Most recent scores, oldest first, capped at 10
	QuizScores []float64 `json:"quiz_scores,omitempty"`
	// Deduplicated completed topic names, first-seen order
	CompletedTopics []string `json:"completed_topics,omitempty"`
	// beginner, intermediate, or advanced
	CurrentDifficulty string `json:"current_difficulty,omitempty"`
	// StreakDays holds the value of the "streak_days" field.
	StreakDays int `json:"streak_days,omitempty"`
	// TotalPoints holds the value of the "total_points" field.
	TotalPoints int `json:"total_points,omitempty"`
	// Badges holds the value of the "badges" field.
	Badges []string `json:"badges,omitempty"`
	// LastActivity holds the value of the "last_activity" field.
	LastActivity time.Time `json:"last_activity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldQuizScores, progress.FieldCompletedTopics, progress.FieldBadges:
			values[i] = new([]byte)
		case progress.FieldID, progress.FieldStreakDays, progress.FieldTotalPoints:
			values[i] = new(sql.NullInt64)
		case progress.FieldUserID, progress.FieldCurrentDifficulty:
			values[i] = new(sql.NullString)
		case progress.FieldLastActivity:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (_m *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case progress.FieldQuizScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuizScores); err != nil {
					return fmt.Errorf("unmarshal field quiz_scores: %w", err)
				}
			}
		case progress.FieldCompletedTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedTopics); err != nil {
					return fmt.Errorf("unmarshal field completed_topics: %w", err)
				}
			}
		case progress.FieldCurrentDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_difficulty", values[i])
			} else if value.Valid {
				_m.CurrentDifficulty = value.String
			}
		case progress.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case progress.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case progress.FieldBadges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field badges", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Badges); err != nil {
					return fmt.Errorf("unmarshal field badges: %w", err)
				}
			}
		case progress.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (_m *Progress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Progress) Unwrap() *Progress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("quiz_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizScores))
	builder.WriteString(", ")
	builder.WriteString("completed_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedTopics))
	builder.WriteString(", ")
	builder.WriteString("current_difficulty=")
	builder.WriteString(_m.CurrentDifficulty)
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("badges=")
	builder.WriteString(fmt.Sprintf("%v", _m.Badges))
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
