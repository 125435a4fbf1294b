package progress

// Badge identifiers awarded as users accumulate history. Once earned a
// badge is never revoked.
const (
	BadgeQuickLearner      = "QUICK_LEARNER"      // five scores above 80
	BadgeConsistentLearner = "CONSISTENT_LEARNER" // seven day streak
	BadgeKnowledgeSeeker   = "KNOWLEDGE_SEEKER"   // ten distinct topics completed
	BadgeQuizChampion      = "QUIZ_CHAMPION"      // a perfect score
)

// BadgeDescriptions maps badge identifiers to human-readable criteria,
// surfaced by the stats endpoint.
var BadgeDescriptions = map[string]string{
	BadgeQuickLearner:      "Complete 5 quizzes with a score above 80",
	BadgeConsistentLearner: "Keep a 7-day activity streak",
	BadgeKnowledgeSeeker:   "Complete 10 different topics",
	BadgeQuizChampion:      "Score 100 on a quiz",
}

type badgeState struct {
	scores    []float64
	streak    int
	topics    int
	lastScore float64
}

// checkBadges returns badges newly earned given the updated state,
// excluding any the user already holds.
func checkBadges(st badgeState, held []string) []string {
	has := make(map[string]bool, len(held))
	for _, b := range held {
		has[b] = true
	}

	var earned []string
	award := func(badge string, ok bool) {
		if ok && !has[badge] {
			earned = append(earned, badge)
		}
	}

	high := 0
	for _, s := range st.scores {
		if s > 80 {
			high++
		}
	}
	award(BadgeQuickLearner, high >= 5)
	award(BadgeConsistentLearner, st.streak >= 7)
	award(BadgeKnowledgeSeeker, st.topics >= 10)
	award(BadgeQuizChampion, st.lastScore == 100)

	return earned
}
