package quizgen

import (
	"fmt"
	"strings"

	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/progress"
)

const systemPrompt = `You are a health educator creating personalized quiz content for a women's health learning platform.

Rules:
- Generate quiz questions appropriate for the given topic, age group, and difficulty level.
- Every statement must be medically accurate and evidence-based. Never invent statistics.
- Use positive, non-judgmental framing. Health topics carry stigma; the tone must reduce it, not add to it.
- Give actionable advice the learner can apply, not abstract theory.
- Be culturally sensitive; avoid assumptions about the learner's background or circumstances.
- Define medical terms in plain language the first time they appear.
- Where a question touches on symptoms or distress, point to seeking professional support.
- Distractor options should reflect common misconceptions, not absurd alternatives.
- The correct_answer field must be copied verbatim from the options array.`

// ageLanguage selects the vocabulary register for each age band.
var ageLanguage = map[catalog.AgeGroup]string{
	catalog.AgeGroupTeen:       "Use friendly, clear language with relatable examples and social media references.",
	catalog.AgeGroupYoungAdult: "Use straightforward language with practical examples and contemporary references.",
	catalog.AgeGroupAdult:      "Use comprehensive language with detailed examples and professional context.",
	catalog.AgeGroupMature:     "Use respectful, thorough language with age-appropriate health considerations.",
}

// depthInstructions selects the content depth for each analyzer depth level.
var depthInstructions = map[progress.DepthLevel]string{
	progress.DepthDeepDive:      "Include advanced concepts, recent research, and detailed analysis.",
	progress.DepthComprehensive: "Provide thorough explanations with practical applications.",
	progress.DepthFoundational:  "Focus on core concepts with additional support and examples.",
}

// Fallbacks for lookups outside the tables. Prompt building never fails.
const (
	genericLanguage = "Use clear, appropriate language."
	genericDepth    = "Adjust depth appropriately."
)

// formatInstructions is the prose rendering of QuizSchema, kept in the
// prompt so every provider sees the contract even when structured output
// enforces it natively.
const formatInstructions = `Respond with a JSON object of this exact shape:
{
  "questions": [
    {
      "question": "Question text",
      "options": ["A) option1", "B) option2", "C) option3", "D) option4"],
      "correct_answer": "the correct option, verbatim",
      "explanation": "detailed explanation",
      "learning_point": "key takeaway",
      "difficulty_level": "beginner|intermediate|advanced",
      "topic_tag": "relevant content tag"
    }
  ],
  "adaptive_elements": {
    "difficulty_progression": "how difficulty ramps across the quiz",
    "topic_relationships": ["related topics"],
    "reinforcement_points": ["concepts to reinforce"]
  }
}`

// buildUserMessage composes the generation instructions from the request
// context and the analyzer's adjustments.
func buildUserMessage(input GenerateInput) string {
	lang, ok := ageLanguage[input.AgeGroup]
	if !ok {
		lang = genericLanguage
	}
	depth, ok := depthInstructions[input.Adjustment.DepthLevel]
	if !ok {
		depth = genericDepth
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a personalized %s-level quiz about %s with %d questions for the %s age group.\n",
		input.Difficulty, input.Topic, input.NumQuestions, input.AgeGroup)

	b.WriteString("\nContent personalization:\n")
	b.WriteString(lang + "\n")
	b.WriteString(depth + "\n")
	fmt.Fprintf(&b, "Complexity adjustment factor: %.2f (negative means the learner is below their tier's expected average)\n",
		input.Adjustment.Complexity.AdjustmentFactor)

	if len(input.Adjustment.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Reinforce these recently completed topics where relevant: %s\n",
			strings.Join(input.Adjustment.FocusAreas, ", "))
	}

	fmt.Fprintf(&b, "\nTopic tags: %s\n", joinTags(input.Tags))

	b.WriteString(`
Content requirements:
1. Age-appropriateness for the stated age group
2. Evidence basis for every factual claim
3. Positive, stigma-free framing
4. Actionable advice the learner can use
5. Cultural sensitivity
6. Plain-language clarity for medical terms
7. Pointers to support resources where relevant
`)

	b.WriteString("\n" + formatInstructions)

	return b.String()
}

func joinTags(tags []catalog.ContentTag) string {
	if len(tags) == 0 {
		return string(catalog.TagGeneralWellness)
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
