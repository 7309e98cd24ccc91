package service

import (
	"context"
	"sync"
	"time"

	"notionary/internal/domain"
	"notionary/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// regenerationKey is the single slot all concurrent cache misses share.
const regenerationKey = "quiz"

// QuizService exposes the quiz pipeline to the HTTP layer.
type QuizService interface {
	// GetQuiz returns the current quiz, serving it from cache within the TTL
	// and regenerating it otherwise.
	GetQuiz(ctx context.Context) (*domain.Quiz, error)

	// GetNotes returns the extracted notes without generating a quiz.
	GetNotes(ctx context.Context) ([]domain.Note, error)

	// SubmitAnswers matches and scores the given answers against the current
	// quiz.
	SubmitAnswers(ctx context.Context, inputs []domain.AnswerInput) (*domain.ResultSummary, error)
}

// cacheEntry is the one process-wide cached quiz. It is replaced, never
// mutated.
type cacheEntry struct {
	quiz        *domain.Quiz
	generatedAt time.Time
}

type quizService struct {
	source    domain.NoteSource
	generator domain.QuizGenerator
	ttl       time.Duration

	mu    sync.RWMutex
	entry *cacheEntry

	group singleflight.Group

	// now is swapped out by tests to control TTL expiry.
	now func() time.Time
}

// NewQuizService creates the quiz service. One instance owns the cached quiz
// for the whole process; its state is never touched by other components.
func NewQuizService(source domain.NoteSource, generator domain.QuizGenerator, ttl time.Duration) QuizService {
	return &quizService{
		source:    source,
		generator: generator,
		ttl:       ttl,
		now:       time.Now,
	}
}

// GetQuiz serves the cached quiz while it is fresh. On a miss, exactly one
// regeneration runs regardless of request concurrency: the first caller
// performs it and every concurrent miss caller receives the same quiz or the
// same error. A failed regeneration leaves the previous entry untouched, so
// a transient provider outage never blanks a quiz that other consumers are
// still working through.
func (s *quizService) GetQuiz(ctx context.Context) (*domain.Quiz, error) {
	if quiz := s.cachedQuiz(); quiz != nil {
		return quiz, nil
	}

	result, err, shared := s.group.Do(regenerationKey, func() (interface{}, error) {
		// A regeneration that finished while this caller was queueing counts
		// as a hit; without this re-check, back-to-back misses would each
		// start their own model call.
		if quiz := s.cachedQuiz(); quiz != nil {
			return quiz, nil
		}
		// Detached from the first caller's context: a caller that stops
		// waiting must not abort the regeneration for everyone else, and the
		// finished quiz still populates the cache for subsequent callers.
		return s.regenerate(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Quiz request attached to in-flight regeneration")
	}
	return result.(*domain.Quiz), nil
}

func (s *quizService) cachedQuiz() *domain.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entry != nil && s.now().Sub(s.entry.generatedAt) < s.ttl {
		return s.entry.quiz
	}
	return nil
}

// regenerate runs the full pipeline in order: extraction completes before
// prompt building, which completes before the model call.
func (s *quizService) regenerate(ctx context.Context) (*domain.Quiz, error) {
	start := s.now()
	logger.Get().Info("Regenerating quiz")

	notes, err := s.source.FetchNotes(ctx)
	if err != nil {
		return nil, err
	}

	prompt := BuildQuizPrompt(notes)

	quiz, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entry = &cacheEntry{quiz: quiz, generatedAt: s.now()}
	s.mu.Unlock()

	logger.Get().Info("Quiz regenerated",
		zap.Int("questions", len(quiz.Questions)),
		zap.Duration("took", s.now().Sub(start)),
	)
	return quiz, nil
}

func (s *quizService) GetNotes(ctx context.Context) ([]domain.Note, error) {
	return s.source.FetchNotes(ctx)
}

func (s *quizService) SubmitAnswers(ctx context.Context, inputs []domain.AnswerInput) (*domain.ResultSummary, error) {
	quiz, err := s.GetQuiz(ctx)
	if err != nil {
		return nil, err
	}

	answers := make(map[string]domain.AnswerMatch, len(inputs))
	for _, input := range inputs {
		question := quiz.QuestionByID(input.QuestionID)
		if question == nil {
			// Possibly answered against a quiz replaced by regeneration;
			// such answers cannot be scored.
			logger.Get().Warn("Answer for unknown question ignored", zap.String("question_id", input.QuestionID))
			continue
		}
		answers[input.QuestionID] = MatchAnswer(question, input)
	}

	summary := Score(quiz, answers)
	return &summary, nil
}
