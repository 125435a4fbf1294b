package progress

import (
	"testing"

	"github.com/lunara-health/lunara/internal/store"
)

func TestAnalyzeNoHistory(t *testing.T) {
	adj := Analyze(nil)
	if adj.DepthLevel != DepthFoundational {
		t.Errorf("depth = %s, want foundational", adj.DepthLevel)
	}
	if adj.Complexity.ShouldIncrease {
		t.Error("fresh learner should not get an increase signal")
	}
	if !adj.Complexity.ShouldDecrease {
		t.Error("expected a decrease signal with no scores")
	}
	if adj.Complexity.AdjustmentFactor != -0.70 {
		t.Errorf("adjustment factor = %v, want -0.70", adj.Complexity.AdjustmentFactor)
	}
}

func TestAnalyzeUsesLastThreeScores(t *testing.T) {
	rec := &store.ProgressRecord{
		UserID:            "u1",
		QuizScores:        []float64{10, 10, 90, 90, 90},
		CurrentDifficulty: "beginner",
	}
	adj := Analyze(rec)
	if adj.DepthLevel != DepthDeepDive {
		t.Errorf("depth = %s, want deep_dive (avg of last 3 is 90)", adj.DepthLevel)
	}
	if !adj.Complexity.ShouldIncrease {
		t.Error("avg 90 above beginner threshold 70, want increase")
	}
	if adj.Complexity.AdjustmentFactor != 0.20 {
		t.Errorf("adjustment factor = %v, want 0.20", adj.Complexity.AdjustmentFactor)
	}
}

func TestAnalyzeDepthBands(t *testing.T) {
	cases := []struct {
		scores []float64
		want   DepthLevel
	}{
		{[]float64{90, 90, 90}, DepthDeepDive},
		{[]float64{89, 89, 89}, DepthComprehensive},
		{[]float64{75, 75, 75}, DepthComprehensive},
		{[]float64{74, 74, 74}, DepthFoundational},
		{[]float64{0, 0, 0}, DepthFoundational},
	}
	for _, c := range cases {
		adj := Analyze(&store.ProgressRecord{QuizScores: c.scores, CurrentDifficulty: "beginner"})
		if adj.DepthLevel != c.want {
			t.Errorf("Analyze(%v).DepthLevel = %s, want %s", c.scores, adj.DepthLevel, c.want)
		}
	}
}

func TestAnalyzeDecreaseFillsFocusAreas(t *testing.T) {
	rec := &store.ProgressRecord{
		QuizScores:        []float64{40, 40, 40},
		CompletedTopics:   []string{"Nutrition Basics", "Sleep Health", "Stress Management", "Period Care"},
		CurrentDifficulty: "intermediate",
	}
	adj := Analyze(rec)
	if !adj.Complexity.ShouldDecrease {
		t.Fatal("avg 40 at intermediate (threshold 80), want decrease")
	}
	want := []string{"Sleep Health", "Stress Management", "Period Care"}
	if len(adj.FocusAreas) != len(want) {
		t.Fatalf("focus areas = %v, want %v", adj.FocusAreas, want)
	}
	for i := range want {
		if adj.FocusAreas[i] != want[i] {
			t.Errorf("focus area %d = %q, want %q", i, adj.FocusAreas[i], want[i])
		}
	}
}

func TestAnalyzeBorderlineNoSignal(t *testing.T) {
	// Exactly at threshold: neither raise nor lower.
	adj := Analyze(&store.ProgressRecord{QuizScores: []float64{70, 70, 70}, CurrentDifficulty: "beginner"})
	if adj.Complexity.ShouldIncrease || adj.Complexity.ShouldDecrease {
		t.Errorf("avg equal to threshold should produce no signal, got %+v", adj.Complexity)
	}
	if adj.Complexity.AdjustmentFactor != 0 {
		t.Errorf("adjustment factor = %v, want 0", adj.Complexity.AdjustmentFactor)
	}
}
