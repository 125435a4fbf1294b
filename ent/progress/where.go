// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lunara-health/lunara/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// CurrentDifficulty applies equality check predicate on the "current_difficulty" field. It's identical to CurrentDifficultyEQ.
func CurrentDifficulty(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCurrentDifficulty, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreakDays, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalPoints, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastActivity, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldUserID, v))
}

// CurrentDifficultyEQ applies the EQ predicate on the "current_difficulty" field.
func CurrentDifficultyEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCurrentDifficulty, v))
}

// CurrentDifficultyNEQ applies the NEQ predicate on the "current_difficulty" field.
func CurrentDifficultyNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCurrentDifficulty, v))
}

// CurrentDifficultyIn applies the In predicate on the "current_difficulty" field.
func CurrentDifficultyIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCurrentDifficulty, vs...))
}

// CurrentDifficultyNotIn applies the NotIn predicate on the "current_difficulty" field.
func CurrentDifficultyNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCurrentDifficulty, vs...))
}

// CurrentDifficultyGT applies the GT predicate on the "current_difficulty" field.
func CurrentDifficultyGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCurrentDifficulty, v))
}

// CurrentDifficultyGTE applies the GTE predicate on the "current_difficulty" field.
func CurrentDifficultyGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCurrentDifficulty, v))
}

// CurrentDifficultyLT applies the LT predicate on the "current_difficulty" field.
func CurrentDifficultyLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCurrentDifficulty, v))
}

// CurrentDifficultyLTE applies the LTE predicate on the "current_difficulty" field.
func CurrentDifficultyLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCurrentDifficulty, v))
}

// CurrentDifficultyContains applies the Contains predicate on the "current_difficulty" field.
func CurrentDifficultyContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldCurrentDifficulty, v))
}

// CurrentDifficultyHasPrefix applies the HasPrefix predicate on the "current_difficulty" field.
func CurrentDifficultyHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldCurrentDifficulty, v))
}

// CurrentDifficultyHasSuffix applies the HasSuffix predicate on the "current_difficulty" field.
func CurrentDifficultyHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldCurrentDifficulty, v))
}

// CurrentDifficultyEqualFold applies the EqualFold predicate on the "current_difficulty" field.
func CurrentDifficultyEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldCurrentDifficulty, v))
}

// CurrentDifficultyContainsFold applies the ContainsFold predicate on the "current_difficulty" field.
func CurrentDifficultyContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldCurrentDifficulty, v))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStreakDays, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalPoints, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastActivity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
