package progress

import "github.com/lunara-health/lunara/internal/catalog"

// minQuizzesForAdvanced is how many scores must exist before the advanced
// tier becomes reachable. With fewer samples the signal is too noisy to
// trust, so promotion caps at intermediate.
const minQuizzesForAdvanced = 5

// RecomputeDifficulty derives the difficulty tier from the retained score
// history. The average runs over the whole retained window, not just the
// trailing three that the analyzer looks at.
func RecomputeDifficulty(scores []float64) catalog.Difficulty {
	if len(scores) == 0 {
		return catalog.DifficultyBeginner
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))

	if len(scores) < minQuizzesForAdvanced {
		if avg >= 60 {
			return catalog.DifficultyIntermediate
		}
		return catalog.DifficultyBeginner
	}

	switch {
	case avg >= 80:
		return catalog.DifficultyAdvanced
	case avg >= 60:
		return catalog.DifficultyIntermediate
	default:
		return catalog.DifficultyBeginner
	}
}
