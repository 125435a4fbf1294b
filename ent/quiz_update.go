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
	"github.com/lunara-health/lunara/ent/quiz"
	"github.com/lunara-health/lunara/ent/schema"
)

// QuizUpdate is the builder for updating Quiz entities.
type QuizUpdate struct {
	config
	hooks    []Hook
	mutation *QuizMutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdate) Where(ps ...predicate.Quiz) *QuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizUpdate) SetQuizID(v string) *QuizUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableQuizID(v *string) *QuizUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizUpdate) SetTopic(v string) *QuizUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableTopic(v *string) *QuizUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizUpdate) SetDifficulty(v string) *QuizUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableDifficulty(v *string) *QuizUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizUpdate) SetQuestions(v []schema.QuizDocument) *QuizUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizUpdate) AppendQuestions(v []schema.QuizDocument) *QuizUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAdaptiveElements sets the "adaptive_elements" field.
func (_u *QuizUpdate) SetAdaptiveElements(v schema.AdaptiveElements) *QuizUpdate {
	_u.mutation.SetAdaptiveElements(v)
	return _u
}

// SetNillableAdaptiveElements sets the "adaptive_elements" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableAdaptiveElements(v *schema.AdaptiveElements) *QuizUpdate {
	if v != nil {
		_u.SetAdaptiveElements(*v)
	}
	return _u
}

// ClearAdaptiveElements clears the value of the "adaptive_elements" field.
func (_u *QuizUpdate) ClearAdaptiveElements() *QuizUpdate {
	_u.mutation.ClearAdaptiveElements()
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *QuizUpdate) SetTotalPoints(v int) *QuizUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableTotalPoints(v *int) *QuizUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *QuizUpdate) AddTotalPoints(v int) *QuizUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetLearningObjectives sets the "learning_objectives" field.
func (_u *QuizUpdate) SetLearningObjectives(v []string) *QuizUpdate {
	_u.mutation.SetLearningObjectives(v)
	return _u
}

// AppendLearningObjectives appends value to the "learning_objectives" field.
func (_u *QuizUpdate) AppendLearningObjectives(v []string) *QuizUpdate {
	_u.mutation.AppendLearningObjectives(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuizUpdate) SetExpiresAt(v time.Time) *QuizUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableExpiresAt(v *time.Time) *QuizUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdate) Mutation() *QuizMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdate) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quiz.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "Quiz.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quiz.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Quiz.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quiz.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Quiz.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quiz.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quiz.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quiz.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.AdaptiveElements(); ok {
		_spec.SetField(quiz.FieldAdaptiveElements, field.TypeJSON, value)
	}
	if _u.mutation.AdaptiveElementsCleared() {
		_spec.ClearField(quiz.FieldAdaptiveElements, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(quiz.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(quiz.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningObjectives(); ok {
		_spec.SetField(quiz.FieldLearningObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldLearningObjectives, value)
		})
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(quiz.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizUpdateOne is the builder for updating a single Quiz entity.
type QuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizUpdateOne) SetQuizID(v string) *QuizUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableQuizID(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizUpdateOne) SetTopic(v string) *QuizUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableTopic(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizUpdateOne) SetDifficulty(v string) *QuizUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableDifficulty(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizUpdateOne) SetQuestions(v []schema.QuizDocument) *QuizUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizUpdateOne) AppendQuestions(v []schema.QuizDocument) *QuizUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetAdaptiveElements sets the "adaptive_elements" field.
func (_u *QuizUpdateOne) SetAdaptiveElements(v schema.AdaptiveElements) *QuizUpdateOne {
	_u.mutation.SetAdaptiveElements(v)
	return _u
}

// SetNillableAdaptiveElements sets the "adaptive_elements" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableAdaptiveElements(v *schema.AdaptiveElements) *QuizUpdateOne {
	if v != nil {
		_u.SetAdaptiveElements(*v)
	}
	return _u
}

// ClearAdaptiveElements clears the value of the "adaptive_elements" field.
func (_u *QuizUpdateOne) ClearAdaptiveElements() *QuizUpdateOne {
	_u.mutation.ClearAdaptiveElements()
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *QuizUpdateOne) SetTotalPoints(v int) *QuizUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableTotalPoints(v *int) *QuizUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *QuizUpdateOne) AddTotalPoints(v int) *QuizUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetLearningObjectives sets the "learning_objectives" field.
func (_u *QuizUpdateOne) SetLearningObjectives(v []string) *QuizUpdateOne {
	_u.mutation.SetLearningObjectives(v)
	return _u
}

// AppendLearningObjectives appends value to the "learning_objectives" field.
func (_u *QuizUpdateOne) AppendLearningObjectives(v []string) *QuizUpdateOne {
	_u.mutation.AppendLearningObjectives(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuizUpdateOne) SetExpiresAt(v time.Time) *QuizUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableExpiresAt(v *time.Time) *QuizUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdateOne) Mutation() *QuizMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdateOne) Where(ps ...predicate.Quiz) *QuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizUpdateOne) Select(field string, fields ...string) *QuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quiz entity.
func (_u *QuizUpdateOne) Save(ctx context.Context) (*Quiz, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdateOne) SaveX(ctx context.Context) *Quiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdateOne) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quiz.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "Quiz.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quiz.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Quiz.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quiz.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Quiz.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdateOne) sqlSave(ctx context.Context) (_node *Quiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quiz.FieldID)
		for _, f := range fields {
			if !quiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quiz.FieldID {
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
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quiz.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quiz.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quiz.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.AdaptiveElements(); ok {
		_spec.SetField(quiz.FieldAdaptiveElements, field.TypeJSON, value)
	}
	if _u.mutation.AdaptiveElementsCleared() {
		_spec.ClearField(quiz.FieldAdaptiveElements, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(quiz.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(quiz.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningObjectives(); ok {
		_spec.SetField(quiz.FieldLearningObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearningObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldLearningObjectives, value)
		})
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(quiz.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &Quiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
