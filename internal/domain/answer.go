package domain

// AnswerInput is the raw, untrusted submission for a single question.
// Exactly one input channel is expected to be populated: OptionIndex for a
// typed multiple choice selection, Text for a typed short answer or for a
// speech transcript (FromVoice marks the latter).
type AnswerInput struct {
	QuestionID  string
	OptionIndex *int
	Text        string
	FromVoice   bool
}

// AnswerMatch is the resolved value an AnswerInput maps to. For multiple
// choice the match is an option index; for short answers it is the
// normalized text. A match with Selected=false means no selection could be
// resolved, which is a valid terminal state rather than an error: the
// question simply stays unanswered.
type AnswerMatch struct {
	Selected    bool
	OptionIndex int
	Text        string
}

// NoSelection is the terminal "could not resolve" match state.
var NoSelection = AnswerMatch{}

// QuestionResult is the per-question line of a ResultSummary.
type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Answered      bool   `json:"answered"`
	IsCorrect     bool   `json:"is_correct"`
}

// ResultSummary is produced once at quiz completion. TotalQuestions counts
// every question of the quiz, not only the attempted ones; unattempted
// questions count against the score.
type ResultSummary struct {
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	PerQuestion    []QuestionResult `json:"questions"`
}
