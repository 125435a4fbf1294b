// Package catalog defines the closed vocabularies the rest of the system
// depends on: difficulty tiers, age groups, and content tags. Keeping these
// as typed constants makes the analyzer and prompt-builder lookup tables
// exhaustive instead of stringly-typed.
package catalog

import "fmt"

// Difficulty is a learner's competence tier, recomputed from score history.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists all tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// ParseDifficulty validates a raw difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// AgeGroup is an age band governing vocabulary register and topic access.
// Values are the band labels the original product used.
type AgeGroup string

const (
	AgeGroupTeen       AgeGroup = "13-19"
	AgeGroupYoungAdult AgeGroup = "20-35"
	AgeGroupAdult      AgeGroup = "36-50"
	AgeGroupMature     AgeGroup = "50+"
)

// AgeGroupForAge maps a raw age to its band.
func AgeGroupForAge(age int) AgeGroup {
	switch {
	case age >= 50:
		return AgeGroupMature
	case age >= 36:
		return AgeGroupAdult
	case age >= 20:
		return AgeGroupYoungAdult
	default:
		return AgeGroupTeen
	}
}

// ParseAgeGroup validates a raw age-group label.
func ParseAgeGroup(s string) (AgeGroup, error) {
	switch AgeGroup(s) {
	case AgeGroupTeen, AgeGroupYoungAdult, AgeGroupAdult, AgeGroupMature:
		return AgeGroup(s), nil
	}
	return "", fmt.Errorf("unknown age group %q", s)
}

// ContentTag is a closed-vocabulary topic label used for filtering and
// prompt construction.
type ContentTag string

const (
	TagReproductiveHealth ContentTag = "reproductive_health"
	TagMenstrualHealth    ContentTag = "menstrual_health"
	TagMentalHealth       ContentTag = "mental_health"
	TagNutrition          ContentTag = "nutrition"
	TagFitness            ContentTag = "fitness"
	TagHormonalHealth     ContentTag = "hormonal_health"
	TagSexualHealth       ContentTag = "sexual_health"
	TagPreventiveCare     ContentTag = "preventive_care"
	TagPregnancy          ContentTag = "pregnancy"
	TagTeenHealth         ContentTag = "teen_health"
	TagBodyImage          ContentTag = "body_image"
	TagGeneralWellness    ContentTag = "general_wellness"
)

// ContentTags lists every tag in the vocabulary.
func ContentTags() []ContentTag {
	return []ContentTag{
		TagReproductiveHealth,
		TagMenstrualHealth,
		TagMentalHealth,
		TagNutrition,
		TagFitness,
		TagHormonalHealth,
		TagSexualHealth,
		TagPreventiveCare,
		TagPregnancy,
		TagTeenHealth,
		TagBodyImage,
		TagGeneralWellness,
	}
}

// ParseContentTag validates a raw tag string.
func ParseContentTag(s string) (ContentTag, error) {
	for _, t := range ContentTags() {
		if ContentTag(s) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown content tag %q", s)
}

// ParseContentTags validates a list of raw tags, rejecting the first
// unknown entry.
func ParseContentTags(raw []string) ([]ContentTag, error) {
	tags := make([]ContentTag, 0, len(raw))
	for _, s := range raw {
		t, err := ParseContentTag(s)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
