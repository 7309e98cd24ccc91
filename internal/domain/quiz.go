package domain

import "fmt"

// QuestionType distinguishes the two question shapes the generator produces.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	ShortAnswer    QuestionType = "short_answer"
)

// OptionCount is the required number of options for a multiple choice question.
const OptionCount = 4

// Note represents one extracted source page reduced to topic/tags/text.
// Notes are transient: they exist only between extraction and prompt building.
type Note struct {
	Topic   string   `json:"topic"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// QuizQuestion is a single generated question. Immutable once cached.
type QuizQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
}

// Validate checks the question against the canonical schema.
func (q *QuizQuestion) Validate() error {
	if q.ID == "" {
		return NewValidationError("question id is required")
	}
	if q.Question == "" {
		return NewValidationError(fmt.Sprintf("question %s: text is required", q.ID))
	}
	if q.CorrectAnswer == "" {
		return NewValidationError(fmt.Sprintf("question %s: correctAnswer is required", q.ID))
	}
	switch q.Type {
	case MultipleChoice:
		if len(q.Options) != OptionCount {
			return NewValidationError(fmt.Sprintf("question %s: expected %d options, got %d", q.ID, OptionCount, len(q.Options)))
		}
		// correctAnswer must be the text of exactly one option, compared by
		// value so that reordered options still score correctly.
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return NewValidationError(fmt.Sprintf("question %s: correctAnswer does not match any option", q.ID))
		}
	case ShortAnswer:
		if len(q.Options) != 0 {
			return NewValidationError(fmt.Sprintf("question %s: short_answer questions must not carry options", q.ID))
		}
	default:
		return NewValidationError(fmt.Sprintf("question %s: unknown type %q", q.ID, q.Type))
	}
	return nil
}

// Quiz is the fixed ordered set of questions served to a quiz-taker.
// A Quiz is never mutated after generation; regeneration replaces it.
type Quiz struct {
	Questions []QuizQuestion `json:"quiz"`
}

// Validate checks every question and the uniqueness of question ids.
func (qz *Quiz) Validate() error {
	if len(qz.Questions) == 0 {
		return NewValidationError("quiz contains no questions")
	}
	seen := make(map[string]struct{}, len(qz.Questions))
	for i := range qz.Questions {
		q := &qz.Questions[i]
		if err := q.Validate(); err != nil {
			return err
		}
		if _, dup := seen[q.ID]; dup {
			return NewValidationError(fmt.Sprintf("duplicate question id %s", q.ID))
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// QuestionByID returns the question with the given id, or nil.
func (qz *Quiz) QuestionByID(id string) *QuizQuestion {
	for i := range qz.Questions {
		if qz.Questions[i].ID == id {
			return &qz.Questions[i]
		}
	}
	return nil
}
