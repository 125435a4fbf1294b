package quizgen

import (
	"strings"
	"testing"

	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/progress"
)

func testInput() GenerateInput {
	return GenerateInput{
		Topic:        "Period Care",
		Tags:         []catalog.ContentTag{catalog.TagMenstrualHealth, catalog.TagGeneralWellness},
		AgeGroup:     catalog.AgeGroupTeen,
		Difficulty:   catalog.DifficultyBeginner,
		NumQuestions: 5,
		Adjustment: progress.ContentAdjustment{
			DepthLevel: progress.DepthFoundational,
			Complexity: progress.ComplexityAdjustment{AdjustmentFactor: -0.2},
		},
	}
}

func TestBuildUserMessageEmbedsContext(t *testing.T) {
	msg := buildUserMessage(testInput())

	for _, want := range []string{
		"beginner-level quiz about Period Care with 5 questions",
		"13-19 age group",
		"menstrual_health, general_wellness",
		"-0.20",
		"friendly, clear language",       // teen register
		"core concepts",                  // foundational depth
		"Age-appropriateness",            // checklist
		"Respond with a JSON object",     // format contract
		"\"correct_answer\"",             // contract fields
		"\"adaptive_elements\"",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserMessageDepthVariants(t *testing.T) {
	input := testInput()

	input.Adjustment.DepthLevel = progress.DepthDeepDive
	if msg := buildUserMessage(input); !strings.Contains(msg, "advanced concepts, recent research") {
		t.Error("deep_dive instruction not selected")
	}

	input.Adjustment.DepthLevel = progress.DepthComprehensive
	if msg := buildUserMessage(input); !strings.Contains(msg, "thorough explanations") {
		t.Error("comprehensive instruction not selected")
	}
}

func TestBuildUserMessageUnknownKeysFallBack(t *testing.T) {
	input := testInput()
	input.AgeGroup = catalog.AgeGroup("0-12")
	input.Adjustment.DepthLevel = progress.DepthLevel("bottomless")

	msg := buildUserMessage(input)
	if !strings.Contains(msg, genericLanguage) {
		t.Error("unknown age group should use generic language fallback")
	}
	if !strings.Contains(msg, genericDepth) {
		t.Error("unknown depth level should use generic depth fallback")
	}
}

func TestBuildUserMessageFocusAreas(t *testing.T) {
	input := testInput()
	input.Adjustment.FocusAreas = []string{"Sleep Health", "Nutrition Basics"}

	msg := buildUserMessage(input)
	if !strings.Contains(msg, "Sleep Health, Nutrition Basics") {
		t.Error("focus areas not embedded")
	}
}

func TestBuildUserMessageNoTags(t *testing.T) {
	input := testInput()
	input.Tags = nil
	if msg := buildUserMessage(input); !strings.Contains(msg, "general_wellness") {
		t.Error("empty tag list should fall back to general wellness")
	}
}
