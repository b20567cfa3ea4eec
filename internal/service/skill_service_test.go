package service

import (
	"errors"
	"testing"

	"github.com/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSkillServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Skill{}); err != nil {
		t.Fatalf("failed to migrate skills: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSkillServiceOrderIndexDefaultsToCollectionLength(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(db.DB)
	first, err := svc.Create(SkillInput{Name: "Go", Category: "Backend"})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}
	second, err := svc.Create(SkillInput{Name: "Gin", Category: "Backend"})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}

	if first.OrderIndex != 0 || second.OrderIndex != 1 {
		t.Fatalf("expected incremental order indexes, got %d and %d", first.OrderIndex, second.OrderIndex)
	}

	explicit, err := svc.Create(SkillInput{Name: "Docker", Category: "Infra", OrderIndex: intPtr(42)})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}
	if explicit.OrderIndex != 42 {
		t.Fatalf("expected explicit order index 42, got %d", explicit.OrderIndex)
	}
}

func TestSkillServiceProficiencyDefaultsToIntermediate(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(db.DB)
	skill, err := svc.Create(SkillInput{Name: "Go", Category: "Backend"})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}
	if skill.Proficiency != ProficiencyIntermediate {
		t.Fatalf("expected default proficiency %q, got %q", ProficiencyIntermediate, skill.Proficiency)
	}
}

func TestSkillServiceRejectsUnknownProficiency(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(db.DB)
	if _, err := svc.Create(SkillInput{Name: "Go", Category: "Backend", Proficiency: "Guru"}); !errors.Is(err, ErrSkillInvalidProficiency) {
		t.Fatalf("expected ErrSkillInvalidProficiency, got %v", err)
	}
}

func TestSkillServiceValidation(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(db.DB)
	if _, err := svc.Create(SkillInput{Name: "  ", Category: "Backend"}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected ErrSkillInvalidInput, got %v", err)
	}
	if _, err := svc.Create(SkillInput{Name: "Go", Category: ""}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected ErrSkillInvalidInput, got %v", err)
	}
}

func TestSkillServiceDeleteAbsentID(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(db.DB)
	if err := svc.Delete(999); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillServiceListDegradesToEmptyOnStoreFailure(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(db.DB)
	if _, err := svc.Create(SkillInput{Name: "Go", Category: "Backend"}); err != nil {
		t.Fatalf("create skill failed: %v", err)
	}

	// 关闭底层连接模拟存储故障
	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	sqlDB.Close()

	skills := svc.List()
	if len(skills) != 0 {
		t.Fatalf("expected degraded empty list, got %d items", len(skills))
	}
}

func intPtr(v int) *int {
	return &v
}
