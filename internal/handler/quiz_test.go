package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"notionary/internal/domain"
	"notionary/internal/handler"
	"notionary/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockQuizService struct {
	GetQuizFunc       func(ctx context.Context) (*domain.Quiz, error)
	GetNotesFunc      func(ctx context.Context) ([]domain.Note, error)
	SubmitAnswersFunc func(ctx context.Context, inputs []domain.AnswerInput) (*domain.ResultSummary, error)
}

func (m *MockQuizService) GetQuiz(ctx context.Context) (*domain.Quiz, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx)
	}
	panic("MockQuizService.GetQuizFunc not implemented")
}

func (m *MockQuizService) GetNotes(ctx context.Context) ([]domain.Note, error) {
	if m.GetNotesFunc != nil {
		return m.GetNotesFunc(ctx)
	}
	panic("MockQuizService.GetNotesFunc not implemented")
}

func (m *MockQuizService) SubmitAnswers(ctx context.Context, inputs []domain.AnswerInput) (*domain.ResultSummary, error) {
	if m.SubmitAnswersFunc != nil {
		return m.SubmitAnswersFunc(ctx, inputs)
	}
	panic("MockQuizService.SubmitAnswersFunc not implemented")
}

func setupApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewQuizHandler(svc)
	api := app.Group("/api")
	api.Get("/quiz", h.GetQuiz)
	api.Get("/notes", h.GetNotes)
	api.Post("/quiz/answers", h.SubmitAnswers)
	return app
}

func sampleQuiz() *domain.Quiz {
	return &domain.Quiz{Questions: []domain.QuizQuestion{
		{
			ID:            "1",
			Type:          domain.MultipleChoice,
			Question:      "Pick one",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
		},
	}}
}

func TestGetQuizSuccess(t *testing.T) {
	svc := &MockQuizService{GetQuizFunc: func(ctx context.Context) (*domain.Quiz, error) {
		return sampleQuiz(), nil
	}}
	app := setupApp(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/quiz", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Quiz []struct {
			ID            string   `json:"id"`
			Type          string   `json:"type"`
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correctAnswer"`
		} `json:"quiz"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Quiz, 1)
	assert.Equal(t, "multiple_choice", body.Quiz[0].Type)
	assert.Equal(t, []string{"A", "B", "C", "D"}, body.Quiz[0].Options)
	assert.Equal(t, "B", body.Quiz[0].CorrectAnswer)
}

func TestGetQuizPipelineFailure(t *testing.T) {
	// Every pipeline failure collapses into one generic 500 body.
	failures := []error{
		domain.NewSourceUnavailableError(errors.New("notion down")),
		domain.NewModelUnavailableError(errors.New("groq down")),
		domain.NewModelOutputInvalidError(errors.New("bad json")),
	}
	for _, failure := range failures {
		svc := &MockQuizService{GetQuizFunc: func(ctx context.Context) (*domain.Quiz, error) {
			return nil, failure
		}}
		app := setupApp(svc)

		req, _ := http.NewRequest(http.MethodGet, "/api/quiz", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body middleware.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, string(domain.ErrInternal), body.Code)
		assert.Equal(t, "Failed to generate quiz", body.Message)
	}
}

func TestGetNotes(t *testing.T) {
	svc := &MockQuizService{GetNotesFunc: func(ctx context.Context) ([]domain.Note, error) {
		return []domain.Note{{Topic: "Cells", Tags: []string{"bio"}, Content: "body"}}, nil
	}}
	app := setupApp(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/notes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var notes []struct {
		Topic string   `json:"topic"`
		Tags  []string `json:"tags"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Cells", notes[0].Topic)
}

func TestSubmitAnswers(t *testing.T) {
	var gotInputs []domain.AnswerInput
	svc := &MockQuizService{SubmitAnswersFunc: func(ctx context.Context, inputs []domain.AnswerInput) (*domain.ResultSummary, error) {
		gotInputs = inputs
		return &domain.ResultSummary{
			TotalQuestions: 1,
			CorrectAnswers: 1,
			PerQuestion: []domain.QuestionResult{{
				QuestionID: "1", Question: "Pick one", UserAnswer: "B", CorrectAnswer: "B", Answered: true, IsCorrect: true,
			}},
		}, nil
	}}
	app := setupApp(svc)

	payload := `{"answers": [
		{"question_id": "1", "option_index": 1},
		{"question_id": "2", "text": "option two", "from_voice": true}
	]}`
	req, _ := http.NewRequest(http.MethodPost, "/api/quiz/answers", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, gotInputs, 2)
	require.NotNil(t, gotInputs[0].OptionIndex)
	assert.Equal(t, 1, *gotInputs[0].OptionIndex)
	assert.True(t, gotInputs[1].FromVoice)

	var body struct {
		TotalQuestions int `json:"total_questions"`
		CorrectAnswers int `json:"correct_answers"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 1, body.TotalQuestions)
	assert.Equal(t, 1, body.CorrectAnswers)
}

func TestSubmitAnswersValidation(t *testing.T) {
	svc := &MockQuizService{}
	app := setupApp(svc)

	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `quiz please`},
		{"missing answers", `{}`},
		{"answer without question id", `{"answers": [{"text": "hello"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/api/quiz/answers", bytes.NewBufferString(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
