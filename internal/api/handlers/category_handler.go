package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-trivia-backend/internal/api/response"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"github.com/welldanyogia/webrana-trivia-backend/internal/repository"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      map[string]string `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

// CategoryQuestionsResponse is the body of GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// List handles GET /categories
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, CategoriesResponse{
		Success:         true,
		Categories:      categoryMap(categories),
		TotalCategories: len(categories),
	})
}

// Questions handles GET /categories/:id/questions
func (h *CategoryHandler) Questions(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.NotFound(c)
	}

	category, err := h.categoryRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	questions, err := h.questionRepo.ListByCategory(c.Request().Context(), category.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
