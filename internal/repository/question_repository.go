package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"gorm.io/gorm"
)

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.Question, int64, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Question, error)
	ListForQuiz(ctx context.Context, categoryID uint, excludeIDs []uint) ([]models.Question, error)
}

// questionRepository implements QuestionRepository using GORM
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository instance
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts a new question
func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	result := r.db.WithContext(ctx).Omit("Category").Create(question)
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return fmt.Errorf("category %d does not exist: %w", question.CategoryID, ErrInvalidInput)
		}
		return fmt.Errorf("failed to create question: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a question by its ID
func (r *questionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	result := r.db.WithContext(ctx).First(&question, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question by ID: %w", result.Error)
	}
	return &question, nil
}

// Delete deletes a question by its ID
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves one page of questions ordered by id, along with the total count
func (r *questionRepository) List(ctx context.Context, limit, offset int) ([]models.Question, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	questions := []models.Question{}
	if offset >= int(total) {
		return questions, total, nil
	}

	result := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&questions)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", result.Error)
	}
	return questions, total, nil
}

// searchBatchSize bounds the rows held at once by the in-process search
const searchBatchSize = 200

// Search retrieves questions whose text contains term, ignoring case.
// PostgreSQL folds case with ILIKE. SQLite's LOWER and LIKE fold ASCII only,
// so on SQLite the rows are scanned and folded in Go.
func (r *questionRepository) Search(ctx context.Context, term string) ([]models.Question, error) {
	questions := []models.Question{}

	if r.db.Dialector.Name() == "postgres" {
		pattern := "%" + escapeLike(term) + "%"
		result := r.db.WithContext(ctx).
			Where(`question ILIKE ? ESCAPE '\'`, pattern).
			Order("id ASC").
			Find(&questions)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to search questions: %w", result.Error)
		}
		return questions, nil
	}

	needle := strings.ToLower(term)
	var batch []models.Question
	result := r.db.WithContext(ctx).
		FindInBatches(&batch, searchBatchSize, func(tx *gorm.DB, _ int) error {
			for _, q := range batch {
				if strings.Contains(strings.ToLower(q.Question), needle) {
					questions = append(questions, q)
				}
			}
			return nil
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search questions: %w", result.Error)
	}
	return questions, nil
}

// ListByCategory retrieves all questions of a category ordered by id
func (r *questionRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	questions := []models.Question{}
	result := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&questions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list questions by category: %w", result.Error)
	}
	return questions, nil
}

// ListForQuiz retrieves the questions a quiz may still ask: those in the
// category (any category when categoryID is 0) not listed in excludeIDs
func (r *questionRepository) ListForQuiz(ctx context.Context, categoryID uint, excludeIDs []uint) ([]models.Question, error) {
	query := r.db.WithContext(ctx).Model(&models.Question{})

	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	questions := []models.Question{}
	if err := query.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	return questions, nil
}
