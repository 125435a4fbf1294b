package progress

import (
	"testing"

	"github.com/lunara-health/lunara/internal/catalog"
)

func TestRecomputeDifficulty(t *testing.T) {
	cases := []struct {
		name   string
		scores []float64
		want   catalog.Difficulty
	}{
		{"empty", nil, catalog.DifficultyBeginner},
		{"few low", []float64{50, 55}, catalog.DifficultyBeginner},
		{"few good", []float64{90, 95}, catalog.DifficultyIntermediate},
		{"few perfect capped at intermediate", []float64{100, 100, 100, 100}, catalog.DifficultyIntermediate},
		{"five high", []float64{85, 90, 80, 95, 88}, catalog.DifficultyAdvanced},
		{"five middling", []float64{60, 65, 70, 62, 68}, catalog.DifficultyIntermediate},
		{"five low", []float64{40, 50, 55, 45, 50}, catalog.DifficultyBeginner},
		{"boundary 80 at five", []float64{80, 80, 80, 80, 80}, catalog.DifficultyAdvanced},
		{"boundary 60 at five", []float64{60, 60, 60, 60, 60}, catalog.DifficultyIntermediate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RecomputeDifficulty(c.scores); got != c.want {
				t.Errorf("RecomputeDifficulty(%v) = %s, want %s", c.scores, got, c.want)
			}
		})
	}
}

func TestAdvancedUnreachableUnderFiveScores(t *testing.T) {
	for n := 1; n < minQuizzesForAdvanced; n++ {
		scores := make([]float64, n)
		for i := range scores {
			scores[i] = 100
		}
		if got := RecomputeDifficulty(scores); got == catalog.DifficultyAdvanced {
			t.Errorf("advanced reached with only %d scores", n)
		}
	}
}
