// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lunara-health/lunara/ent/attempt"
	"github.com/lunara-health/lunara/ent/llmrequestevent"
	"github.com/lunara-health/lunara/ent/progress"
	"github.com/lunara-health/lunara/ent/quiz"
	"github.com/lunara-health/lunara/ent/schema"
	"github.com/lunara-health/lunara/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescAttemptID is the schema descriptor for attempt_id field.
	attemptDescAttemptID := attemptFields[0].Descriptor()
	// attempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attempt.AttemptIDValidator = attemptDescAttemptID.Validators[0].(func(string) error)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescQuizID is the schema descriptor for quiz_id field.
	attemptDescQuizID := attemptFields[2].Descriptor()
	// attempt.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	attempt.QuizIDValidator = attemptDescQuizID.Validators[0].(func(string) error)
	// attemptDescTopic is the schema descriptor for topic field.
	attemptDescTopic := attemptFields[3].Descriptor()
	// attempt.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attempt.TopicValidator = attemptDescTopic.Validators[0].(func(string) error)
	// attemptDescStatus is the schema descriptor for status field.
	attemptDescStatus := attemptFields[4].Descriptor()
	// attempt.DefaultStatus holds the default value on creation for the status field.
	attempt.DefaultStatus = attemptDescStatus.Default.(string)
	// attemptDescCurrentQuestion is the schema descriptor for current_question field.
	attemptDescCurrentQuestion := attemptFields[5].Descriptor()
	// attempt.DefaultCurrentQuestion holds the default value on creation for the current_question field.
	attempt.DefaultCurrentQuestion = attemptDescCurrentQuestion.Default.(int)
	// attemptDescAnswers is the schema descriptor for answers field.
	attemptDescAnswers := attemptFields[6].Descriptor()
	// attempt.DefaultAnswers holds the default value on creation for the answers field.
	attempt.DefaultAnswers = attemptDescAnswers.Default.([]schema.AnswerRecord)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[7].Descriptor()
	// attempt.DefaultScore holds the default value on creation for the score field.
	attempt.DefaultScore = attemptDescScore.Default.(float64)
	// attemptDescCorrectAnswers is the schema descriptor for correct_answers field.
	attemptDescCorrectAnswers := attemptFields[8].Descriptor()
	// attempt.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	attempt.DefaultCorrectAnswers = attemptDescCorrectAnswers.Default.(int)
	// attemptDescTotalQuestions is the schema descriptor for total_questions field.
	attemptDescTotalQuestions := attemptFields[9].Descriptor()
	// attempt.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	attempt.DefaultTotalQuestions = attemptDescTotalQuestions.Default.(int)
	// attemptDescStartedAt is the schema descriptor for started_at field.
	attemptDescStartedAt := attemptFields[10].Descriptor()
	// attempt.DefaultStartedAt holds the default value on creation for the started_at field.
	attempt.DefaultStartedAt = attemptDescStartedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescUserID is the schema descriptor for user_id field.
	progressDescUserID := progressFields[0].Descriptor()
	// progress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progress.UserIDValidator = progressDescUserID.Validators[0].(func(string) error)
	// progressDescQuizScores is the schema descriptor for quiz_scores field.
	progressDescQuizScores := progressFields[1].Descriptor()
	// progress.DefaultQuizScores holds the default value on creation for the quiz_scores field.
	progress.DefaultQuizScores = progressDescQuizScores.Default.([]float64)
	// progressDescCompletedTopics is the schema descriptor for completed_topics field.
	progressDescCompletedTopics := progressFields[2].Descriptor()
	// progress.DefaultCompletedTopics holds the default value on creation for the completed_topics field.
	progress.DefaultCompletedTopics = progressDescCompletedTopics.Default.([]string)
	// progressDescCurrentDifficulty is the schema descriptor for current_difficulty field.
	progressDescCurrentDifficulty := progressFields[3].Descriptor()
	// progress.DefaultCurrentDifficulty holds the default value on creation for the current_difficulty field.
	progress.DefaultCurrentDifficulty = progressDescCurrentDifficulty.Default.(string)
	// progressDescStreakDays is the schema descriptor for streak_days field.
	progressDescStreakDays := progressFields[4].Descriptor()
	// progress.DefaultStreakDays holds the default value on creation for the streak_days field.
	progress.DefaultStreakDays = progressDescStreakDays.Default.(int)
	// progressDescTotalPoints is the schema descriptor for total_points field.
	progressDescTotalPoints := progressFields[5].Descriptor()
	// progress.DefaultTotalPoints holds the default value on creation for the total_points field.
	progress.DefaultTotalPoints = progressDescTotalPoints.Default.(int)
	// progressDescBadges is the schema descriptor for badges field.
	progressDescBadges := progressFields[6].Descriptor()
	// progress.DefaultBadges holds the default value on creation for the badges field.
	progress.DefaultBadges = progressDescBadges.Default.([]string)
	// progressDescLastActivity is the schema descriptor for last_activity field.
	progressDescLastActivity := progressFields[7].Descriptor()
	// progress.DefaultLastActivity holds the default value on creation for the last_activity field.
	progress.DefaultLastActivity = progressDescLastActivity.Default.(func() time.Time)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescQuizID is the schema descriptor for quiz_id field.
	quizDescQuizID := quizFields[0].Descriptor()
	// quiz.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quiz.QuizIDValidator = quizDescQuizID.Validators[0].(func(string) error)
	// quizDescTopic is the schema descriptor for topic field.
	quizDescTopic := quizFields[1].Descriptor()
	// quiz.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quiz.TopicValidator = quizDescTopic.Validators[0].(func(string) error)
	// quizDescDifficulty is the schema descriptor for difficulty field.
	quizDescDifficulty := quizFields[2].Descriptor()
	// quiz.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quiz.DifficultyValidator = quizDescDifficulty.Validators[0].(func(string) error)
	// quizDescTotalPoints is the schema descriptor for total_points field.
	quizDescTotalPoints := quizFields[5].Descriptor()
	// quiz.DefaultTotalPoints holds the default value on creation for the total_points field.
	quiz.DefaultTotalPoints = quizDescTotalPoints.Default.(int)
	// quizDescLearningObjectives is the schema descriptor for learning_objectives field.
	quizDescLearningObjectives := quizFields[6].Descriptor()
	// quiz.DefaultLearningObjectives holds the default value on creation for the learning_objectives field.
	quiz.DefaultLearningObjectives = quizDescLearningObjectives.Default.([]string)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[8].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescAge is the schema descriptor for age field.
	userDescAge := userFields[3].Descriptor()
	// user.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	user.AgeValidator = userDescAge.Validators[0].(func(int) error)
	// userDescInterests is the schema descriptor for interests field.
	userDescInterests := userFields[4].Descriptor()
	// user.DefaultInterests holds the default value on creation for the interests field.
	user.DefaultInterests = userDescInterests.Default.([]string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
