package catalog

// Topic is a quiz topic name from the curated library.
type Topic string

const (
	TopicFertility        Topic = "Fertility"
	TopicContraception    Topic = "Contraception"
	TopicPeriodCare       Topic = "Period Care"
	TopicPMSRelief        Topic = "PMS Relief"
	TopicMentalHealth     Topic = "Mental Health"
	TopicBalancedDiet     Topic = "Balanced Diet"
	TopicSuperfoods       Topic = "Superfoods"
	TopicWorkouts         Topic = "Workouts"
	TopicHormonalHealth   Topic = "Hormonal Health"
	TopicSleepHygiene     Topic = "Sleep Hygiene"
	TopicStressManagement Topic = "Stress Management"
	TopicMindfulness      Topic = "Mindfulness Practices"
	TopicSelfCare         Topic = "Self-Care"
	TopicSkincare         Topic = "Skincare"
	TopicPreventiveCare   Topic = "Preventive Care"
	TopicPregnancy        Topic = "Pregnancy"
	TopicPuberty          Topic = "Puberty"
	TopicHealthyHabits    Topic = "Healthy Habits"
	TopicSelfEsteem       Topic = "Self-Esteem"
	TopicBodyAcceptance   Topic = "Body Acceptance"
)

// interestTopics maps a user interest label to the topics it unlocks.
var interestTopics = map[string][]Topic{
	"reproductive health": {TopicFertility, TopicContraception, TopicPregnancy},
	"menstrual health":    {TopicPeriodCare, TopicPMSRelief, TopicHormonalHealth},
	"mental health":       {TopicMentalHealth, TopicMindfulness, TopicStressManagement, TopicSleepHygiene},
	"physical health":     {TopicWorkouts, TopicBalancedDiet, TopicSuperfoods, TopicHealthyHabits},
	"general wellness":    {TopicSelfCare, TopicSkincare, TopicPreventiveCare},
	"emotional health":    {TopicSelfEsteem, TopicBodyAcceptance, TopicMindfulness},
}

// ageTopicPolicy restricts which topics an age band may be recommended.
// An empty allowed set means no restriction beyond the blocked set.
type ageTopicPolicy struct {
	allowed []Topic
	blocked []Topic
}

var agePolicies = map[AgeGroup]ageTopicPolicy{
	AgeGroupTeen: {
		allowed: []Topic{
			TopicPuberty, TopicSelfEsteem, TopicBodyAcceptance, TopicPeriodCare,
			TopicMentalHealth, TopicMindfulness, TopicStressManagement,
			TopicSleepHygiene, TopicBalancedDiet, TopicHealthyHabits,
			TopicSelfCare, TopicSkincare,
		},
		blocked: []Topic{TopicFertility, TopicContraception, TopicPregnancy},
	},
	AgeGroupYoungAdult: {},
	AgeGroupAdult:      {blocked: []Topic{TopicPuberty}},
	AgeGroupMature:     {blocked: []Topic{TopicPuberty}},
}

// RecommendedTopics returns the topics unlocked by the user's interests,
// filtered by the age band's policy. Unknown interests are ignored.
// Order follows first appearance across the interest list; duplicates
// unlocked by several interests collapse to the first occurrence.
func RecommendedTopics(interests []string, age AgeGroup) []Topic {
	policy := agePolicies[age]

	allowed := func(t Topic) bool {
		for _, b := range policy.blocked {
			if t == b {
				return false
			}
		}
		if len(policy.allowed) == 0 {
			return true
		}
		for _, a := range policy.allowed {
			if t == a {
				return true
			}
		}
		return false
	}

	var out []Topic
	seen := make(map[Topic]bool)
	for _, interest := range interests {
		for _, t := range interestTopics[interest] {
			if seen[t] || !allowed(t) {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Interests lists the recognized interest labels.
func Interests() []string {
	return []string{
		"reproductive health",
		"menstrual health",
		"mental health",
		"physical health",
		"general wellness",
		"emotional health",
	}
}
