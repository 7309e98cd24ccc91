package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"notionary/internal/domain"
	"notionary/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Groq exposes an OpenAI-compatible API surface.
const groqBaseURL = "https://api.groq.com/openai/v1"

// Generator implements domain.QuizGenerator against Groq's chat completion
// endpoint. It performs no retries; a later request after the cache TTL is
// the retry mechanism.
type Generator struct {
	llm       llms.Model
	modelName string
}

// NewGenerator creates a quiz generator backed by the named Groq model.
// JSON-only output mode is requested from the provider; the response is
// still parsed and validated strictly.
func NewGenerator(apiKey, modelName string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("groq model name cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
		openai.WithBaseURL(groqBaseURL),
		openai.WithHTTPClient(httpClient),
		openai.WithResponseFormat(openai.ResponseFormatJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq client: %w", err)
	}

	logger.Get().Info("Initialized Groq quiz generator", zap.String("model", modelName))
	return &Generator{llm: llm, modelName: modelName}, nil
}

// NewGeneratorWithModel wires an existing LLM client, used by tests.
func NewGeneratorWithModel(llm llms.Model, modelName string) *Generator {
	return &Generator{llm: llm, modelName: modelName}
}

// Generate submits the prompt and parses the response into a validated quiz.
// Transport or auth failures surface as ModelUnavailable; anything wrong
// with the returned text surfaces as ModelOutputInvalid and rejects the
// whole quiz.
func (g *Generator) Generate(ctx context.Context, prompt string) (*domain.Quiz, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		logger.Get().Error("Model call failed", zap.Error(err), zap.String("model", g.modelName))
		return nil, domain.NewModelUnavailableError(err)
	}

	quiz, err := parseQuiz(response)
	if err != nil {
		logger.Get().Error("Model returned invalid quiz",
			zap.Error(err),
			zap.String("model", g.modelName),
		)
		return nil, err
	}

	logger.Get().Info("Generated quiz", zap.Int("questions", len(quiz.Questions)))
	return quiz, nil
}

// parseQuiz strictly parses model output into a Quiz. Models occasionally
// wrap JSON in markdown fences even in JSON mode, so fences are stripped
// before parsing.
func parseQuiz(raw string) (*domain.Quiz, error) {
	cleaned := stripFences(raw)

	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return nil, domain.NewModelOutputInvalidError(fmt.Errorf("unparseable JSON: %w", err))
	}

	if err := quiz.Validate(); err != nil {
		return nil, domain.NewModelOutputInvalidError(err)
	}
	return &quiz, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var _ domain.QuizGenerator = (*Generator)(nil)
