package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/response"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"github.com/welldanyogia/webrana-trivia-backend/internal/validator"
)

// newTestEcho returns an Echo instance wired with the request validator
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

// createContext builds a JSON request context
func createContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// parseErrorResponse parses the error response from the recorder
func parseErrorResponse(rec *httptest.ResponseRecorder) (*response.ErrorResponse, error) {
	var resp response.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	return &resp, err
}

func testCategories() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
}

func testQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:         uint(i + 1),
			Question:   "Question?",
			Answer:     "Answer",
			CategoryID: 1,
			Difficulty: 1,
		}
	}
	return questions
}
