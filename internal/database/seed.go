package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"gorm.io/gorm"
)

// SeedCategories returns the reference categories with their fixed ids
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// SeedQuestions returns the sample questions inserted into a fresh store
func SeedQuestions() []models.Question {
	return []models.Question{
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 4, Difficulty: 2},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: 4, Difficulty: 1},
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", CategoryID: 5, Difficulty: 4},
		{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", CategoryID: 5, Difficulty: 4},
		{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", CategoryID: 5, Difficulty: 3},
		{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", CategoryID: 6, Difficulty: 3},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", CategoryID: 6, Difficulty: 4},
		{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", CategoryID: 4, Difficulty: 2},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 3, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", CategoryID: 3, Difficulty: 3},
		{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", CategoryID: 3, Difficulty: 2},
		{Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", CategoryID: 2, Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", CategoryID: 2, Difficulty: 4},
		{Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", CategoryID: 2, Difficulty: 2},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", CategoryID: 1, Difficulty: 4},
		{Question: "Which U.S. state was the first to ratify the Constitution?", Answer: "Delaware", CategoryID: 4, Difficulty: 3},
	}
}

// Seed inserts the reference categories and sample questions when the store
// has no categories yet. It reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		slog.Debug("Store already seeded", slog.Int64("categories", count))
		return false, nil
	}

	categories := SeedCategories()
	questions := SeedQuestions()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("failed to seed questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	slog.Info("Seeded trivia data",
		slog.Int("categories", len(categories)),
		slog.Int("questions", len(questions)))
	return true, nil
}
