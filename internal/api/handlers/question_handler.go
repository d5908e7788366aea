package handlers

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/response"
	apperrors "github.com/welldanyogia/webrana-trivia-backend/internal/errors"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"github.com/welldanyogia/webrana-trivia-backend/internal/repository"
	"github.com/welldanyogia/webrana-trivia-backend/internal/validator"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// QuestionsResponse is the body of question listings and searches
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	Categories      map[string]string `json:"categories,omitempty"`
	CurrentCategory *string           `json:"current_category"`
}

// List handles GET /questions?page=N
func (h *QuestionHandler) List(c echo.Context) error {
	page, err := validator.ParsePage(c.QueryParam("page"))
	if err != nil {
		return response.Error(c, err)
	}

	limit, offset := validator.PageBounds(page)
	if limit == 0 {
		return response.NotFound(c)
	}

	ctx := c.Request().Context()
	questions, total, err := h.questionRepo.List(ctx, limit, offset)
	if err != nil {
		return response.Error(c, err)
	}
	if len(questions) == 0 {
		return response.NotFound(c)
	}

	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, QuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: total,
		Categories:     categoryMap(categories),
	})
}

// Delete handles DELETE /questions/:id
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.NotFound(c)
	}

	if err := h.questionRepo.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	h.logger.Info("question deleted", slog.Uint64("question_id", uint64(id)))
	return response.Deleted(c, id)
}

// Post handles POST /questions, which searches when the body carries
// searchTerm and creates a question otherwise
func (h *QuestionHandler) Post(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return response.BadRequest(c)
	}

	req, err := parseQuestionPost(body)
	if err != nil {
		return response.Error(c, err)
	}

	switch req := req.(type) {
	case SearchQuestionsRequest:
		return h.search(c, req)
	case CreateQuestionRequest:
		return h.create(c, req)
	default:
		return response.BadRequest(c)
	}
}

func (h *QuestionHandler) search(c echo.Context, req SearchQuestionsRequest) error {
	questions, err := h.questionRepo.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, QuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: int64(len(questions)),
	})
}

func (h *QuestionHandler) create(c echo.Context, req CreateQuestionRequest) error {
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	if err := validator.ValidateText(*req.Question); err != nil {
		return response.Error(c, err)
	}
	if err := validator.ValidateText(*req.Answer); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	categoryID := uint(*req.Category)
	if _, err := h.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if apperrors.IsNotFound(err) {
			err = fmt.Errorf("category %d: %w", categoryID, apperrors.ErrUnprocessable)
		}
		return response.Error(c, err)
	}

	question := &models.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		CategoryID: categoryID,
		Difficulty: int(*req.Difficulty),
	}
	if err := h.questionRepo.Create(ctx, question); err != nil {
		return response.Error(c, err)
	}

	h.logger.Info("question created",
		slog.Uint64("question_id", uint64(question.ID)),
		slog.Uint64("category_id", uint64(categoryID)))
	return response.Created(c, question.ID)
}
