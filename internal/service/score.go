package service

import "notionary/internal/domain"

// Score compares matched answers against the quiz's canonical answers. It is
// pure and idempotent: the same (quiz, answers) pair always produces the
// same summary.
//
// Multiple choice correctness compares option TEXT, not index, so a matched
// index pointing at text equal to the correct answer scores correct even if
// options were reshuffled between generation and answering. Short answers
// use case-insensitive, whitespace-trimmed equality. A question without a
// resolved answer is counted incorrect, never skipped: TotalQuestions covers
// the whole quiz, not just the attempted part.
func Score(quiz *domain.Quiz, answers map[string]domain.AnswerMatch) domain.ResultSummary {
	summary := domain.ResultSummary{
		TotalQuestions: len(quiz.Questions),
		PerQuestion:    make([]domain.QuestionResult, 0, len(quiz.Questions)),
	}

	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		match, ok := answers[q.ID]

		result := domain.QuestionResult{
			QuestionID:    q.ID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
		}

		if ok && match.Selected {
			result.Answered = true
			switch q.Type {
			case domain.MultipleChoice:
				if match.OptionIndex >= 0 && match.OptionIndex < len(q.Options) {
					result.UserAnswer = q.Options[match.OptionIndex]
					result.IsCorrect = result.UserAnswer == q.CorrectAnswer
				}
			case domain.ShortAnswer:
				result.UserAnswer = match.Text
				result.IsCorrect = match.Text == normalizeAnswer(q.CorrectAnswer)
			}
		}

		if result.IsCorrect {
			summary.CorrectAnswers++
		}
		summary.PerQuestion = append(summary.PerQuestion, result)
	}

	return summary
}
