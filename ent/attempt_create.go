// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lunara-health/lunara/ent/attempt"
	"github.com/lunara-health/lunara/ent/schema"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptCreate) SetAttemptID(v string) *AttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v string) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *AttemptCreate) SetQuizID(v string) *AttemptCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AttemptCreate) SetTopic(v string) *AttemptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AttemptCreate) SetStatus(v string) *AttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableStatus(v *string) *AttemptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentQuestion sets the "current_question" field.
func (_c *AttemptCreate) SetCurrentQuestion(v int) *AttemptCreate {
	_c.mutation.SetCurrentQuestion(v)
	return _c
}

// SetNillableCurrentQuestion sets the "current_question" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCurrentQuestion(v *int) *AttemptCreate {
	if v != nil {
		_c.SetCurrentQuestion(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AttemptCreate) SetAnswers(v []schema.AnswerRecord) *AttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptCreate) SetScore(v float64) *AttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableScore(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *AttemptCreate) SetCorrectAnswers(v int) *AttemptCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCorrectAnswers(v *int) *AttemptCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *AttemptCreate) SetTotalQuestions(v int) *AttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTotalQuestions(v *int) *AttemptCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AttemptCreate) SetStartedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableStartedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AttemptCreate) SetCompletedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCompletedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := attempt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentQuestion(); !ok {
		v := attempt.DefaultCurrentQuestion
		_c.mutation.SetCurrentQuestion(v)
	}
	if _, ok := _c.mutation.Answers(); !ok {
		v := attempt.DefaultAnswers
		_c.mutation.SetAnswers(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := attempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := attempt.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := attempt.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := attempt.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Attempt.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "Attempt.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := attempt.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Attempt.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := attempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Attempt.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Attempt.status"`)}
	}
	if _, ok := _c.mutation.CurrentQuestion(); !ok {
		return &ValidationError{Name: "current_question", err: errors.New(`ent: missing required field "Attempt.current_question"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "Attempt.answers"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Attempt.score"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "Attempt.correct_answers"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Attempt.total_questions"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Attempt.started_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(attempt.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentQuestion(); ok {
		_spec.SetField(attempt.FieldCurrentQuestion, field.TypeInt, value)
		_node.CurrentQuestion = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(attempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(attempt.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(attempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(attempt.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
