package service

import (
	"strings"
	"testing"

	"notionary/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sampleNotes() []domain.Note {
	return []domain.Note{
		{Topic: "Cell Biology", Tags: []string{"biology", "cells"}, Content: "Cells contain a membrane, cytoplasm and nucleus."},
		{Topic: "Photosynthesis", Tags: []string{}, Content: "Plants convert sunlight into chemical energy."},
	}
}

func TestBuildQuizPromptIsDeterministic(t *testing.T) {
	first := BuildQuizPrompt(sampleNotes())
	second := BuildQuizPrompt(sampleNotes())

	// Byte-identical output for identical input, across fresh slices.
	assert.Equal(t, first, second)
}

func TestBuildQuizPromptEncodesNotes(t *testing.T) {
	prompt := BuildQuizPrompt(sampleNotes())

	assert.Contains(t, prompt, `"topic": "Cell Biology"`)
	assert.Contains(t, prompt, `"Photosynthesis"`)
	assert.Contains(t, prompt, "Cells contain a membrane, cytoplasm and nucleus.")
}

func TestBuildQuizPromptCarriesInstructions(t *testing.T) {
	prompt := BuildQuizPrompt(sampleNotes())

	assert.Contains(t, prompt, "20-question quiz")
	assert.Contains(t, prompt, `"multiple_choice"`)
	assert.Contains(t, prompt, `"short_answer"`)
	assert.Contains(t, prompt, "exactly 4 answer choices")
	assert.Contains(t, prompt, "Avoid yes/no questions")
	assert.Contains(t, prompt, "single JSON object")
	// The fixed example of the required output shape is embedded verbatim.
	assert.Contains(t, prompt, `"correctAnswer": "To enable computers to learn from data"`)
}

func TestBuildQuizPromptDiffersForDifferentNotes(t *testing.T) {
	a := BuildQuizPrompt(sampleNotes())
	b := BuildQuizPrompt([]domain.Note{{Topic: "Other", Tags: []string{}, Content: "different"}})

	assert.NotEqual(t, a, b)
}

func TestBuildQuizPromptEmptyNotes(t *testing.T) {
	prompt := BuildQuizPrompt([]domain.Note{})
	assert.True(t, strings.Contains(prompt, "[]"))
}
