// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuizScores holds the string denoting the quiz_scores field in the database.
	FieldQuizScores = "quiz_scores"
	// FieldCompletedTopics holds the string denoting the completed_topics field in the database.
	FieldCompletedTopics = "completed_topics"
	// FieldCurrentDifficulty holds the string denoting the current_difficulty field in the database.
	FieldCurrentDifficulty = "current_difficulty"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldBadges holds the string denoting the badges field in the database.
	FieldBadges = "badges"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuizScores,
	FieldCompletedTopics,
	FieldCurrentDifficulty,
	FieldStreakDays,
	FieldTotalPoints,
	FieldBadges,
	FieldLastActivity,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultQuizScores holds the default value on creation for the "quiz_scores" field.
	DefaultQuizScores []float64
	// DefaultCompletedTopics holds the default value on creation for the "completed_topics" field.
	DefaultCompletedTopics []string
	// DefaultCurrentDifficulty holds the default value on creation for the "current_difficulty" field.
	DefaultCurrentDifficulty string
	// DefaultStreakDays holds the default value on creation for the "streak_days" field.
	DefaultStreakDays int
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// DefaultBadges holds the default value on creation for the "badges" field.
	DefaultBadges []string
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCurrentDifficulty orders the results by the current_difficulty field.
func ByCurrentDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDifficulty, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}
