// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lunara-health/lunara/ent/quiz"
	"github.com/lunara-health/lunara/ent/schema"
)

// QuizCreate is the builder for creating a Quiz entity.
type QuizCreate struct {
	config
	mutation *QuizMutation
	hooks    []Hook
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizCreate) SetQuizID(v string) *QuizCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizCreate) SetTopic(v string) *QuizCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizCreate) SetDifficulty(v string) *QuizCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuizCreate) SetQuestions(v []schema.QuizDocument) *QuizCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAdaptiveElements sets the "adaptive_elements" field.
func (_c *QuizCreate) SetAdaptiveElements(v schema.AdaptiveElements) *QuizCreate {
	_c.mutation.SetAdaptiveElements(v)
	return _c
}

// SetNillableAdaptiveElements sets the "adaptive_elements" field if the given value is not nil.
func (_c *QuizCreate) SetNillableAdaptiveElements(v *schema.AdaptiveElements) *QuizCreate {
	if v != nil {
		_c.SetAdaptiveElements(*v)
	}
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *QuizCreate) SetTotalPoints(v int) *QuizCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *QuizCreate) SetNillableTotalPoints(v *int) *QuizCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetLearningObjectives sets the "learning_objectives" field.
func (_c *QuizCreate) SetLearningObjectives(v []string) *QuizCreate {
	_c.mutation.SetLearningObjectives(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *QuizCreate) SetExpiresAt(v time.Time) *QuizCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizCreate) SetCreatedAt(v time.Time) *QuizCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizCreate) SetNillableCreatedAt(v *time.Time) *QuizCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuizMutation object of the builder.
func (_c *QuizCreate) Mutation() *QuizMutation {
	return _c.mutation
}

// Save creates the Quiz in the database.
func (_c *QuizCreate) Save(ctx context.Context) (*Quiz, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizCreate) SaveX(ctx context.Context) *Quiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizCreate) defaults() {
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := quiz.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.LearningObjectives(); !ok {
		v := quiz.DefaultLearningObjectives
		_c.mutation.SetLearningObjectives(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quiz.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizCreate) check() error {
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "Quiz.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := quiz.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "Quiz.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Quiz.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quiz.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Quiz.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Quiz.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := quiz.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Quiz.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "Quiz.questions"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "Quiz.total_points"`)}
	}
	if _, ok := _c.mutation.LearningObjectives(); !ok {
		return &ValidationError{Name: "learning_objectives", err: errors.New(`ent: missing required field "Quiz.learning_objectives"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Quiz.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Quiz.created_at"`)}
	}
	return nil
}

func (_c *QuizCreate) sqlSave(ctx context.Context) (*Quiz, error) {
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

func (_c *QuizCreate) createSpec() (*Quiz, *sqlgraph.CreateSpec) {
	var (
		_node = &Quiz{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quiz.Table, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quiz.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quiz.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quiz.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.AdaptiveElements(); ok {
		_spec.SetField(quiz.FieldAdaptiveElements, field.TypeJSON, value)
		_node.AdaptiveElements = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(quiz.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.LearningObjectives(); ok {
		_spec.SetField(quiz.FieldLearningObjectives, field.TypeJSON, value)
		_node.LearningObjectives = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(quiz.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quiz.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuizCreateBulk is the builder for creating many Quiz entities in bulk.
type QuizCreateBulk struct {
	config
	err      error
	builders []*QuizCreate
}

// Save creates the Quiz entities in the database.
func (_c *QuizCreateBulk) Save(ctx context.Context) ([]*Quiz, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quiz, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizMutation)
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
func (_c *QuizCreateBulk) SaveX(ctx context.Context) []*Quiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
