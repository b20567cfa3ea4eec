package service

import (
	"errors"
	"testing"

	"github.com/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupProjectServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}); err != nil {
		t.Fatalf("failed to migrate projects: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestProjectServiceCreateTrimsTechTags(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	project, err := svc.Create(ProjectInput{
		Title:       "Portfolio",
		Description: "Personal site",
		Tech:        []string{" Go ", "", "Gin", "  "},
	})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	if len(project.Tech) != 2 || project.Tech[0] != "Go" || project.Tech[1] != "Gin" {
		t.Fatalf("expected trimmed tech tags, got %v", project.Tech)
	}
}

func TestProjectServiceValidation(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	if _, err := svc.Create(ProjectInput{Title: "", Description: "x"}); !errors.Is(err, ErrProjectInvalidInput) {
		t.Fatalf("expected ErrProjectInvalidInput, got %v", err)
	}
}

func TestProjectServiceDelete(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	svc := NewProjectService(db.DB)
	project, err := svc.Create(ProjectInput{Title: "Portfolio", Description: "Personal site"})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}

	if err := svc.Delete(project.ID); err != nil {
		t.Fatalf("delete project failed: %v", err)
	}
	if err := svc.Delete(project.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound on second delete, got %v", err)
	}
}
