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
	"github.com/lunara-health/lunara/ent/attempt"
	"github.com/lunara-health/lunara/ent/predicate"
	"github.com/lunara-health/lunara/ent/schema"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptUpdate) SetAttemptID(v string) *AttemptUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableAttemptID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptUpdate) SetUserID(v string) *AttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUserID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AttemptUpdate) SetQuizID(v string) *AttemptUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableQuizID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptUpdate) SetTopic(v string) *AttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTopic(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptUpdate) SetStatus(v string) *AttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableStatus(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentQuestion sets the "current_question" field.
func (_u *AttemptUpdate) SetCurrentQuestion(v int) *AttemptUpdate {
	_u.mutation.ResetCurrentQuestion()
	_u.mutation.SetCurrentQuestion(v)
	return _u
}

// SetNillableCurrentQuestion sets the "current_question" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCurrentQuestion(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetCurrentQuestion(*v)
	}
	return _u
}

// AddCurrentQuestion adds value to the "current_question" field.
func (_u *AttemptUpdate) AddCurrentQuestion(v int) *AttemptUpdate {
	_u.mutation.AddCurrentQuestion(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AttemptUpdate) SetAnswers(v []schema.AnswerRecord) *AttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *AttemptUpdate) AppendAnswers(v []schema.AnswerRecord) *AttemptUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v float64) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v float64) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptUpdate) SetCorrectAnswers(v int) *AttemptUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCorrectAnswers(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptUpdate) AddCorrectAnswers(v int) *AttemptUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AttemptUpdate) SetTotalQuestions(v int) *AttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTotalQuestions(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AttemptUpdate) AddTotalQuestions(v int) *AttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdate) SetCompletedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCompletedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdate) ClearCompletedAt() *AttemptUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := attempt.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := attempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Attempt.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attempt.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(attempt.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentQuestion(); ok {
		_spec.SetField(attempt.FieldCurrentQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentQuestion(); ok {
		_spec.AddField(attempt.FieldCurrentQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(attempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptUpdateOne) SetAttemptID(v string) *AttemptUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableAttemptID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptUpdateOne) SetUserID(v string) *AttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUserID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *AttemptUpdateOne) SetQuizID(v string) *AttemptUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableQuizID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptUpdateOne) SetTopic(v string) *AttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTopic(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptUpdateOne) SetStatus(v string) *AttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableStatus(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentQuestion sets the "current_question" field.
func (_u *AttemptUpdateOne) SetCurrentQuestion(v int) *AttemptUpdateOne {
	_u.mutation.ResetCurrentQuestion()
	_u.mutation.SetCurrentQuestion(v)
	return _u
}

// SetNillableCurrentQuestion sets the "current_question" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCurrentQuestion(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetCurrentQuestion(*v)
	}
	return _u
}

// AddCurrentQuestion adds value to the "current_question" field.
func (_u *AttemptUpdateOne) AddCurrentQuestion(v int) *AttemptUpdateOne {
	_u.mutation.AddCurrentQuestion(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AttemptUpdateOne) SetAnswers(v []schema.AnswerRecord) *AttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *AttemptUpdateOne) AppendAnswers(v []schema.AnswerRecord) *AttemptUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v float64) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v float64) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *AttemptUpdateOne) SetCorrectAnswers(v int) *AttemptUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCorrectAnswers(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *AttemptUpdateOne) AddCorrectAnswers(v int) *AttemptUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AttemptUpdateOne) SetTotalQuestions(v int) *AttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTotalQuestions(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AttemptUpdateOne) AddTotalQuestions(v int) *AttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdateOne) SetCompletedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdateOne) ClearCompletedAt() *AttemptUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizID(); ok {
		if err := attempt.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := attempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Attempt.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attempt.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(attempt.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentQuestion(); ok {
		_spec.SetField(attempt.FieldCurrentQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentQuestion(); ok {
		_spec.AddField(attempt.FieldCurrentQuestion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(attempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(attempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(attempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
