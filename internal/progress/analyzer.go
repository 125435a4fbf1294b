// Package progress tracks per-user quiz performance and derives the
// content adjustments that drive quiz personalization.
package progress

import (
	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/store"
)

// DepthLevel classifies how much content elaboration to request from the
// generator.
type DepthLevel string

const (
	DepthFoundational  DepthLevel = "foundational"
	DepthComprehensive DepthLevel = "comprehensive"
	DepthDeepDive      DepthLevel = "deep_dive"
)

// ComplexityAdjustment describes how far the user sits from the threshold
// of their current tier.
type ComplexityAdjustment struct {
	ShouldIncrease   bool
	ShouldDecrease   bool
	AdjustmentFactor float64
}

// ContentAdjustment is the analyzer's output: derived at request time,
// never persisted.
type ContentAdjustment struct {
	DepthLevel DepthLevel
	Complexity ComplexityAdjustment

	// FocusAreas lists recently completed topics worth reinforcing.
	// Populated only when performance has dropped below the tier floor.
	FocusAreas []string

	// RecommendedTopics suggests where to go next; filled in by callers
	// that know the user's interests and age band.
	RecommendedTopics []catalog.Topic
}

// difficultyThresholds is the expected average for each tier.
var difficultyThresholds = map[catalog.Difficulty]float64{
	catalog.DifficultyBeginner:     70,
	catalog.DifficultyIntermediate: 80,
	catalog.DifficultyAdvanced:     90,
}

// recentWindow is how many trailing scores feed the adjustment average.
const recentWindow = 3

// Analyze derives content adjustments from a progress record. A nil record
// (user with no history) yields foundational depth and a decrease signal,
// which is the right posture for a fresh learner.
func Analyze(rec *store.ProgressRecord) ContentAdjustment {
	var scores []float64
	difficulty := catalog.DifficultyBeginner
	var completed []string
	if rec != nil {
		scores = rec.QuizScores
		completed = rec.CompletedTopics
		if d, err := catalog.ParseDifficulty(rec.CurrentDifficulty); err == nil {
			difficulty = d
		}
	}

	avg := recentAverage(scores)

	adj := ContentAdjustment{
		DepthLevel: depthLevel(avg),
		Complexity: complexityFor(avg, difficulty),
	}

	if adj.Complexity.ShouldDecrease {
		adj.FocusAreas = lastN(completed, recentWindow)
	}

	return adj
}

// recentAverage is the mean of the last three scores, 0 if none.
func recentAverage(scores []float64) float64 {
	recent := lastNFloat(scores, recentWindow)
	if len(recent) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range recent {
		sum += s
	}
	return sum / float64(len(recent))
}

func depthLevel(avg float64) DepthLevel {
	switch {
	case avg >= 90:
		return DepthDeepDive
	case avg >= 75:
		return DepthComprehensive
	default:
		return DepthFoundational
	}
}

func complexityFor(avg float64, difficulty catalog.Difficulty) ComplexityAdjustment {
	threshold := difficultyThresholds[difficulty]
	return ComplexityAdjustment{
		ShouldIncrease:   avg > threshold,
		ShouldDecrease:   avg < threshold-15,
		AdjustmentFactor: (avg - threshold) / 100,
	}
}

func lastN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func lastNFloat(items []float64, n int) []float64 {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
