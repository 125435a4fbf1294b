// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lunara-health/lunara/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProgressCreate) SetUserID(v string) *ProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuizScores sets the "quiz_scores" field.
func (_c *ProgressCreate) SetQuizScores(v []float64) *ProgressCreate {
	_c.mutation.SetQuizScores(v)
	return _c
}

// SetCompletedTopics sets the "completed_topics" field.
func (_c *ProgressCreate) SetCompletedTopics(v []string) *ProgressCreate {
	_c.mutation.SetCompletedTopics(v)
	return _c
}

// SetCurrentDifficulty sets the "current_difficulty" field.
func (_c *ProgressCreate) SetCurrentDifficulty(v string) *ProgressCreate {
	_c.mutation.SetCurrentDifficulty(v)
	return _c
}

// SetNillableCurrentDifficulty sets the "current_difficulty" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCurrentDifficulty(v *string) *ProgressCreate {
	if v != nil {
		_c.SetCurrentDifficulty(*v)
	}
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *ProgressCreate) SetStreakDays(v int) *ProgressCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableStreakDays(v *int) *ProgressCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *ProgressCreate) SetTotalPoints(v int) *ProgressCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableTotalPoints(v *int) *ProgressCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetBadges sets the "badges" field.
func (_c *ProgressCreate) SetBadges(v []string) *ProgressCreate {
	_c.mutation.SetBadges(v)
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *ProgressCreate) SetLastActivity(v time.Time) *ProgressCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableLastActivity(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.QuizScores(); !ok {
		v := progress.DefaultQuizScores
		_c.mutation.SetQuizScores(v)
	}
	if _, ok := _c.mutation.CompletedTopics(); !ok {
		v := progress.DefaultCompletedTopics
		_c.mutation.SetCompletedTopics(v)
	}
	if _, ok := _c.mutation.CurrentDifficulty(); !ok {
		v := progress.DefaultCurrentDifficulty
		_c.mutation.SetCurrentDifficulty(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := progress.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := progress.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.Badges(); !ok {
		v := progress.DefaultBadges
		_c.mutation.SetBadges(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := progress.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Progress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Progress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizScores(); !ok {
		return &ValidationError{Name: "quiz_scores", err: errors.New(`ent: missing required field "Progress.quiz_scores"`)}
	}
	if _, ok := _c.mutation.CompletedTopics(); !ok {
		return &ValidationError{Name: "completed_topics", err: errors.New(`ent: missing required field "Progress.completed_topics"`)}
	}
	if _, ok := _c.mutation.CurrentDifficulty(); !ok {
		return &ValidationError{Name: "current_difficulty", err: errors.New(`ent: missing required field "Progress.current_difficulty"`)}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "Progress.streak_days"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "Progress.total_points"`)}
	}
	if _, ok := _c.mutation.Badges(); !ok {
		return &ValidationError{Name: "badges", err: errors.New(`ent: missing required field "Progress.badges"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "Progress.last_activity"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
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

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuizScores(); ok {
		_spec.SetField(progress.FieldQuizScores, field.TypeJSON, value)
		_node.QuizScores = value
	}
	if value, ok := _c.mutation.CompletedTopics(); ok {
		_spec.SetField(progress.FieldCompletedTopics, field.TypeJSON, value)
		_node.CompletedTopics = value
	}
	if value, ok := _c.mutation.CurrentDifficulty(); ok {
		_spec.SetField(progress.FieldCurrentDifficulty, field.TypeString, value)
		_node.CurrentDifficulty = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(progress.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(progress.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.Badges(); ok {
		_spec.SetField(progress.FieldBadges, field.TypeJSON, value)
		_node.Badges = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(progress.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
