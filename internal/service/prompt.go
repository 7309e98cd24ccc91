package service

import (
	"encoding/json"
	"fmt"

	"notionary/internal/domain"
)

// QuestionCount is the total number of questions requested per quiz.
const QuestionCount = 20

// quizPromptTemplate fixes the instruction set: question count, 50/50 type
// split, option shape, open-ended short answers, JSON-only output.
const quizPromptTemplate = `
You are an AI trained to create engaging quizzes from structured data. You will receive a JSON input that contains all the content of a notes database. Your task is to generate a %d-question quiz based on this content, ensuring a mix of multiple-choice and free-response questions.

### Guidelines:
1. **Question Variety:**
   - 50%% of the questions should be multiple-choice ("multiple_choice").
   - 50%% of the questions should be free-response ("short_answer").
2. **Content Scope:**
   - Analyze key concepts, ideas, and factual information from the content.
   - Ensure questions are relevant and reflective of the provided data.
3. **Multiple-Choice Format:**
   - Include exactly 4 answer choices.
   - Randomize the position of the correct answer among the choices.
   - Indicate the correct answer with a key-value pair whose value is the full text of the correct choice.
4. **Free-Response Format:**
   - Frame open-ended questions that encourage analytical thinking.
   - Avoid yes/no questions.
5. **Output Format:**
   - Return the result as a single JSON object, and return only that and nothing else.
   - Give every question a unique "id".
   - Use the following structure:

### Input JSON:
%s

---

### Expected Output JSON Format:
%s
`

// promptExample is the fixed example of the required output shape.
const promptExample = `{
  "quiz": [
    {
      "id": "1",
      "question": "What is the primary goal of machine learning?",
      "type": "multiple_choice",
      "options": [
        "To explicitly program computers for every task",
        "To enable computers to learn from data",
        "To design complex neural networks",
        "To replace traditional software development"
      ],
      "correctAnswer": "To enable computers to learn from data"
    },
    {
      "id": "2",
      "question": "Explain the process of photosynthesis in one sentence.",
      "type": "short_answer",
      "correctAnswer": "Photosynthesis is the process by which green plants and some other organisms use sunlight to synthesize foods with carbon dioxide and water, generating oxygen as a byproduct."
    }
  ]
}`

// BuildQuizPrompt serializes the notes into the model instruction payload.
// It is a pure function: identical input yields byte-identical output, which
// keeps prompt construction testable and cache reasoning simple.
func BuildQuizPrompt(notes []domain.Note) string {
	// encoding/json serializes slices and struct fields in a fixed order, so
	// the output is deterministic for a given notes sequence.
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		// A []domain.Note cannot fail to marshal; keep the signature pure.
		data = []byte("[]")
	}
	return fmt.Sprintf(quizPromptTemplate, QuestionCount, string(data), promptExample)
}
