package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAchievementNotFound     = errors.New("achievement not found")
	ErrAchievementInvalidInput = errors.New("invalid achievement input")
)

// AchievementService handles achievement CRUD.
type AchievementService struct {
	store contentStore[db.Achievement]
}

// AchievementInput represents fields accepted when creating an achievement.
type AchievementInput struct {
	Title           string
	Description     string
	AchievementDate string
	ImageURL        string
	OrderIndex      *int
}

// NewAchievementService creates an AchievementService instance.
func NewAchievementService(gdb *gorm.DB) *AchievementService {
	return &AchievementService{
		store: newContentStore[db.Achievement](gdb, "achievement", "order_index asc"),
	}
}

// List returns achievements ordered by order_index. Store failures degrade
// to an empty slice.
func (s *AchievementService) List() []db.Achievement {
	return s.store.list()
}

// Create inserts a new achievement.
func (s *AchievementService) Create(input AchievementInput) (*db.Achievement, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.AchievementDate) == "" {
		return nil, ErrAchievementInvalidInput
	}

	orderIndex, err := resolveOrderIndex(&s.store, input.OrderIndex)
	if err != nil {
		return nil, err
	}

	achievement := db.Achievement{
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		AchievementDate: strings.TrimSpace(input.AchievementDate),
		ImageURL:        strings.TrimSpace(input.ImageURL),
		OrderIndex:      orderIndex,
	}

	if err := s.store.create(&achievement); err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Delete removes an achievement by id.
func (s *AchievementService) Delete(id uint) error {
	return s.store.remove(id, ErrAchievementNotFound)
}
