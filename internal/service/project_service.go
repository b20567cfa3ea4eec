package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectInvalidInput = errors.New("invalid project input")
)

// ProjectService handles portfolio project CRUD.
type ProjectService struct {
	store contentStore[db.Project]
}

// ProjectInput represents fields accepted when creating a project.
type ProjectInput struct {
	Title       string
	Description string
	Details     string
	Tech        []string
	ImageURL    string
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{
		store: newContentStore[db.Project](gdb, "project", "created_at desc"),
	}
}

// List returns all projects, newest first. Store failures degrade to an
// empty slice.
func (s *ProjectService) List() []db.Project {
	return s.store.list()
}

// Create inserts a new project.
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrProjectInvalidInput
	}

	tech := make([]string, 0, len(input.Tech))
	for _, tag := range input.Tech {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tech = append(tech, trimmed)
		}
	}

	project := db.Project{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Details:     strings.TrimSpace(input.Details),
		Tech:        datatypes.NewJSONSlice(tech),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}

	if err := s.store.create(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project by id.
func (s *ProjectService) Delete(id uint) error {
	return s.store.remove(id, ErrProjectNotFound)
}
