package handler

import (
	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderQuizID carries a per-response identifier for the generated quiz.
const HeaderQuizID = "X-Quiz-ID"

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// UploadDocument godoc
// @Summary Generate a quiz from a document
// @Description Extracts text from an uploaded .pdf or .txt file and returns up to 10 fill-in-the-blank questions
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document (.pdf or .txt)"
// @Success 200 {array} dto.QuizItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload [post]
func (h *QuizHandler) UploadDocument(c *fiber.Ctx) error {
	file, err := middleware.ValidatedFile(c)
	if err != nil {
		return err
	}

	f, err := file.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer f.Close()

	quiz, err := h.service.GenerateQuiz(c.UserContext(), file.Filename, f)
	if err != nil {
		return err
	}

	c.Set(HeaderQuizID, uuid.NewString())
	return c.JSON(dto.NewQuizResponse(quiz))
}
