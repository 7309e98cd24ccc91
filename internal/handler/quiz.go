package handler

import (
	"notionary/internal/domain"
	"notionary/internal/dto"
	"notionary/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// GetQuiz handles GET /api/quiz. It returns the current quiz, regenerating
// it when the cached one has expired. Any pipeline failure surfaces as a
// single generic error through the error handler; there are no partial
// responses.
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.GetQuiz(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponseFromDomain(quiz))
}

// GetNotes handles GET /api/notes and returns the extracted source notes.
func (h *QuizHandler) GetNotes(c *fiber.Ctx) error {
	notes, err := h.service.GetNotes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NotesResponseFromDomain(notes))
}

// SubmitAnswers handles POST /api/quiz/answers. Raw answers (typed or
// spoken) are matched and scored against the current quiz.
func (h *QuizHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("request body is not valid JSON")
	}
	if req.Answers == nil {
		return domain.NewValidationError("answers field is required")
	}
	for _, answer := range req.Answers {
		if answer.QuestionID == "" {
			return domain.NewValidationError("every answer needs a question_id")
		}
	}

	inputs := make([]domain.AnswerInput, 0, len(req.Answers))
	for _, answer := range req.Answers {
		inputs = append(inputs, answer.ToDomain())
	}

	summary, err := h.service.SubmitAnswers(c.UserContext(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResultResponseFromDomain(summary))
}
