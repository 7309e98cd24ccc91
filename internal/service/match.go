package service

import (
	"regexp"
	"strconv"
	"strings"

	"notionary/internal/domain"
)

// spokenNumberPattern picks a spoken option reference out of a transcript:
// "option 2", "number 2", or a bare "2".
var spokenNumberPattern = regexp.MustCompile(`option (\d+)|number (\d+)|(\d+)`)

// MatchAnswer maps free-form input onto a canonical answer for scoring.
//
// For short answers the matched value is the trimmed, case-folded text; the
// exact-match decision belongs to the scorer. For multiple choice, a typed
// option index passes through unchanged, while a speech transcript is
// resolved by precedence: an explicit numeric reference is least ambiguous
// and trusted first, then a full-text option match, and if neither applies
// the question stays unanswered (NoSelection) rather than guessing.
func MatchAnswer(q *domain.QuizQuestion, input domain.AnswerInput) domain.AnswerMatch {
	switch q.Type {
	case domain.ShortAnswer:
		text := normalizeAnswer(input.Text)
		if text == "" {
			return domain.NoSelection
		}
		return domain.AnswerMatch{Selected: true, Text: text}

	case domain.MultipleChoice:
		if input.OptionIndex != nil {
			idx := *input.OptionIndex
			if idx < 0 || idx >= len(q.Options) {
				return domain.NoSelection
			}
			return domain.AnswerMatch{Selected: true, OptionIndex: idx}
		}
		if input.FromVoice {
			return matchTranscript(q.Options, input.Text)
		}
		return domain.NoSelection
	}
	return domain.NoSelection
}

// matchTranscript resolves a speech transcript to an option index.
func matchTranscript(options []string, transcript string) domain.AnswerMatch {
	lowered := strings.ToLower(transcript)

	if m := spokenNumberPattern.FindStringSubmatch(lowered); m != nil {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		if digits == "" {
			digits = m[3]
		}
		if n, err := strconv.Atoi(digits); err == nil && n >= 1 && n <= len(options) {
			return domain.AnswerMatch{Selected: true, OptionIndex: n - 1}
		}
	}

	// First option whose full text appears in the transcript wins.
	for i, option := range options {
		if strings.Contains(lowered, strings.ToLower(option)) {
			return domain.AnswerMatch{Selected: true, OptionIndex: i}
		}
	}

	return domain.NoSelection
}

// normalizeAnswer trims and case-folds free text.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
