package dto

import "doc-quiz/internal/domain"

// QuizItemResponse represents one generated question in the API response
// @Description Fill-in-the-blank question with four options
type QuizItemResponse struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}

// NewQuizResponse converts a quiz into its JSON array form.
func NewQuizResponse(quiz domain.Quiz) []QuizItemResponse {
	resp := make([]QuizItemResponse, 0, len(quiz))
	for _, item := range quiz {
		resp = append(resp, QuizItemResponse{
			Question: item.Question,
			Answer:   item.Answer,
			Options:  item.Options,
		})
	}
	return resp
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Code    string                   `json:"code"`
	Status  int                      `json:"status"`
	Details map[string]interface{}   `json:"details,omitempty"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
