package dto

import "notionary/internal/domain"

// QuizResponse is the body of GET /api/quiz.
type QuizResponse struct {
	Quiz []QuizQuestion `json:"quiz"`
}

// QuizQuestion mirrors a generated question on the wire.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// NoteResponse is one extracted note as returned by GET /api/notes.
type NoteResponse struct {
	Topic   string   `json:"topic"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// SubmitAnswersRequest is the body of POST /api/quiz/answers.
type SubmitAnswersRequest struct {
	Answers []SubmittedAnswer `json:"answers"`
}

// SubmittedAnswer carries one raw answer. OptionIndex is a typed multiple
// choice selection; Text is a typed short answer, or a speech transcript
// when FromVoice is set.
type SubmittedAnswer struct {
	QuestionID  string `json:"question_id"`
	OptionIndex *int   `json:"option_index,omitempty"`
	Text        string `json:"text,omitempty"`
	FromVoice   bool   `json:"from_voice,omitempty"`
}

// QuizResultResponse is the scored summary returned after submission.
type QuizResultResponse struct {
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	Questions      []QuestionResult `json:"questions"`
}

// QuestionResult is the per-question outcome.
type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Answered      bool   `json:"answered"`
	IsCorrect     bool   `json:"is_correct"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// QuizResponseFromDomain maps a quiz onto its wire shape.
func QuizResponseFromDomain(quiz *domain.Quiz) QuizResponse {
	questions := make([]QuizQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, QuizQuestion{
			ID:            q.ID,
			Type:          string(q.Type),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return QuizResponse{Quiz: questions}
}

// NotesResponseFromDomain maps extracted notes onto their wire shape.
func NotesResponseFromDomain(notes []domain.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteResponse{Topic: n.Topic, Tags: n.Tags, Content: n.Content})
	}
	return out
}

// ToDomain converts a submitted answer into its domain form.
func (a SubmittedAnswer) ToDomain() domain.AnswerInput {
	return domain.AnswerInput{
		QuestionID:  a.QuestionID,
		OptionIndex: a.OptionIndex,
		Text:        a.Text,
		FromVoice:   a.FromVoice,
	}
}

// ResultResponseFromDomain maps a result summary onto its wire shape.
func ResultResponseFromDomain(summary *domain.ResultSummary) QuizResultResponse {
	questions := make([]QuestionResult, 0, len(summary.PerQuestion))
	for _, r := range summary.PerQuestion {
		questions = append(questions, QuestionResult{
			QuestionID:    r.QuestionID,
			Question:      r.Question,
			UserAnswer:    r.UserAnswer,
			CorrectAnswer: r.CorrectAnswer,
			Answered:      r.Answered,
			IsCorrect:     r.IsCorrect,
		})
	}
	return QuizResultResponse{
		TotalQuestions: summary.TotalQuestions,
		CorrectAnswers: summary.CorrectAnswers,
		Questions:      questions,
	}
}
