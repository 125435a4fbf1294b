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
	"github.com/lunara-health/lunara/ent/predicate"
	"github.com/lunara-health/lunara/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdate) SetUserID(v string) *ProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableUserID(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *ProgressUpdate) SetQuizScores(v []float64) *ProgressUpdate {
	_u.mutation.SetQuizScores(v)
	return _u
}

// AppendQuizScores appends value to the "quiz_scores" field.
func (_u *ProgressUpdate) AppendQuizScores(v []float64) *ProgressUpdate {
	_u.mutation.AppendQuizScores(v)
	return _u
}

// SetCompletedTopics sets the "completed_topics" field.
func (_u *ProgressUpdate) SetCompletedTopics(v []string) *ProgressUpdate {
	_u.mutation.SetCompletedTopics(v)
	return _u
}

// AppendCompletedTopics appends value to the "completed_topics" field.
func (_u *ProgressUpdate) AppendCompletedTopics(v []string) *ProgressUpdate {
	_u.mutation.AppendCompletedTopics(v)
	return _u
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_u *ProgressUpdate) SetCurrentDifficulty(v string) *ProgressUpdate {
	_u.mutation.SetCurrentDifficulty(v)
	return _u
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCurrentDifficulty(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetCurrentDifficulty(*v)
	}
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProgressUpdate) SetStreakDays(v int) *ProgressUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStreakDays(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProgressUpdate) AddStreakDays(v int) *ProgressUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *ProgressUpdate) SetTotalPoints(v int) *ProgressUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableTotalPoints(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *ProgressUpdate) AddTotalPoints(v int) *ProgressUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetBadges sets the "badges" field.
func (_u *ProgressUpdate) SetBadges(v []string) *ProgressUpdate {
	_u.mutation.SetBadges(v)
	return _u
}

// AppendBadges appends value to the "badges" field.
func (_u *ProgressUpdate) AppendBadges(v []string) *ProgressUpdate {
	_u.mutation.AppendBadges(v)
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *ProgressUpdate) SetLastActivity(v time.Time) *ProgressUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastActivity(v *time.Time) *ProgressUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(progress.FieldQuizScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldQuizScores, value)
		})
	}
	if value, ok := _u.mutation.CompletedTopics(); ok {
		_spec.SetField(progress.FieldCompletedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldCompletedTopics, value)
		})
	}
	if value, ok := _u.mutation.CurrentDifficulty(); ok {
		_spec.SetField(progress.FieldCurrentDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(progress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(progress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badges(); ok {
		_spec.SetField(progress.FieldBadges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldBadges, value)
		})
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(progress.FieldLastActivity, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressUpdateOne) SetUserID(v string) *ProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableUserID(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizScores sets the "quiz_scores" field.
func (_u *ProgressUpdateOne) SetQuizScores(v []float64) *ProgressUpdateOne {
	_u.mutation.SetQuizScores(v)
	return _u
}

// AppendQuizScores appends value to the "quiz_scores" field.
func (_u *ProgressUpdateOne) AppendQuizScores(v []float64) *ProgressUpdateOne {
	_u.mutation.AppendQuizScores(v)
	return _u
}

// SetCompletedTopics sets the "completed_topics" field.
func (_u *ProgressUpdateOne) SetCompletedTopics(v []string) *ProgressUpdateOne {
	_u.mutation.SetCompletedTopics(v)
	return _u
}

// AppendCompletedTopics appends value to the "completed_topics" field.
func (_u *ProgressUpdateOne) AppendCompletedTopics(v []string) *ProgressUpdateOne {
	_u.mutation.AppendCompletedTopics(v)
	return _u
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_u *ProgressUpdateOne) SetCurrentDifficulty(v string) *ProgressUpdateOne {
	_u.mutation.SetCurrentDifficulty(v)
	return _u
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCurrentDifficulty(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetCurrentDifficulty(*v)
	}
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProgressUpdateOne) SetStreakDays(v int) *ProgressUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStreakDays(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProgressUpdateOne) AddStreakDays(v int) *ProgressUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *ProgressUpdateOne) SetTotalPoints(v int) *ProgressUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableTotalPoints(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *ProgressUpdateOne) AddTotalPoints(v int) *ProgressUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetBadges sets the "badges" field.
func (_u *ProgressUpdateOne) SetBadges(v []string) *ProgressUpdateOne {
	_u.mutation.SetBadges(v)
	return _u
}

// AppendBadges appends value to the "badges" field.
func (_u *ProgressUpdateOne) AppendBadges(v []string) *ProgressUpdateOne {
	_u.mutation.AppendBadges(v)
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *ProgressUpdateOne) SetLastActivity(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastActivity(v *time.Time) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizScores(); ok {
		_spec.SetField(progress.FieldQuizScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldQuizScores, value)
		})
	}
	if value, ok := _u.mutation.CompletedTopics(); ok {
		_spec.SetField(progress.FieldCompletedTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldCompletedTopics, value)
		})
	}
	if value, ok := _u.mutation.CurrentDifficulty(); ok {
		_spec.SetField(progress.FieldCurrentDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(progress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(progress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(progress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badges(); ok {
		_spec.SetField(progress.FieldBadges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldBadges, value)
		})
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(progress.FieldLastActivity, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
