package services

import (
	"context"
	"fmt"
	"math/rand"

	apperrors "github.com/welldanyogia/webrana-trivia-backend/internal/errors"
	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"github.com/welldanyogia/webrana-trivia-backend/internal/repository"
)

// AllCategories is the quiz category id that draws from every category
const AllCategories uint = 0

// QuizServiceConfig holds configuration for the quiz service
type QuizServiceConfig struct {
	// Pick returns an index in [0, n). Defaults to math/rand/v2 IntN.
	Pick func(n int) int
}

// QuizService defines the interface for serving quiz questions
type QuizService interface {
	// NextQuestion returns a random question of the category that is not in
	// previous. It returns nil without error when no such question is left.
	NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error)
}

// quizService implements QuizService
type quizService struct {
	categories repository.CategoryRepository
	questions  repository.QuestionRepository
	pick       func(n int) int
}

// NewQuizService creates a new QuizService instance
func NewQuizService(categories repository.CategoryRepository, questions repository.QuestionRepository, config QuizServiceConfig) QuizService {
	pick := config.Pick
	if pick == nil {
		pick = rand.Intn
	}
	return &quizService{
		categories: categories,
		questions:  questions,
		pick:       pick,
	}
}

// NextQuestion picks one unseen question uniformly at random
func (s *quizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	if categoryID != AllCategories {
		if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, fmt.Errorf("quiz category %d: %w", categoryID, apperrors.ErrCategoryNotFound)
			}
			return nil, fmt.Errorf("failed to get quiz category: %w", err)
		}
	}

	candidates, err := s.questions.ListForQuiz(ctx, categoryID, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[s.pick(len(candidates))]
	return &question, nil
}
