package handlers

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/response"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"github.com/welldanyogia/webrana-trivia-backend/internal/services"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quiz services.QuizService
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quiz services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// QuizResponse is the body of POST /quizzes. Question is absent once every
// eligible question has been asked.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question,omitempty"`
}

// Next handles POST /quizzes
func (h *QuizHandler) Next(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return response.BadRequest(c)
	}

	var req QuizRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return response.BadRequest(c)
		}
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	question, err := h.quiz.NextQuestion(c.Request().Context(), uint(*req.QuizCategory), req.PreviousQuestions)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, QuizResponse{
		Success:  true,
		Question: question,
	})
}
