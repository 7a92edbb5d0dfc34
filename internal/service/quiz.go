package service

import (
	"context"
	"io"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the upload-to-quiz operation
type QuizService interface {
	// GenerateQuiz extracts the document's text and builds a quiz from it.
	// Failures are *domain.DomainError values classified as missing input,
	// unreadable document or no questions generated.
	GenerateQuiz(ctx context.Context, filename string, r io.Reader) (domain.Quiz, error)
}

// quizService implements QuizService
type quizService struct {
	extractor domain.TextExtractor
	generator domain.QuizGenerator
}

// NewQuizService creates a new instance of quizService
func NewQuizService(extractor domain.TextExtractor, generator domain.QuizGenerator) QuizService {
	return &quizService{
		extractor: extractor,
		generator: generator,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, filename string, r io.Reader) (domain.Quiz, error) {
	if filename == "" {
		return nil, domain.NewMissingInputError(domain.MsgNoFileSelected)
	}
	if r == nil {
		return nil, domain.NewMissingInputError(domain.MsgNoFileUploaded)
	}

	extraction := s.extractor.Extract(ctx, filename, r)
	log := logger.Get().With(
		zap.String("filename", filename),
		zap.String("format", string(extraction.Format)),
	)
	log.Debug("Document extracted",
		zap.Int("text_length", len(extraction.Text)),
		zap.Int("pages", extraction.Pages),
		zap.Int("pages_with_text", extraction.PagesWithText),
	)
	if extraction.Degraded() {
		log.Warn("Document extraction degraded", zap.String("reason", extraction.Reason))
	}

	if extraction.Empty() {
		log.Warn("Text extraction produced no text")
		return nil, domain.NewUnreadableDocumentError(filename)
	}

	quiz := s.generator.Generate(extraction.Text)
	if quiz.Empty() {
		log.Warn("No questions could be generated", zap.Int("text_length", len(extraction.Text)))
		return nil, domain.NewNoQuestionsGeneratedError(filename)
	}

	log.Info("Quiz generated", zap.Int("questions", len(quiz)))
	return quiz, nil
}
