package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound           = errors.New("skill not found")
	ErrSkillInvalidInput       = errors.New("invalid skill input")
	ErrSkillInvalidProficiency = errors.New("invalid skill proficiency")
)

// 技能熟练度的合法取值
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyExpert       = "Expert"
)

// SkillService wraps skill related operations.
type SkillService struct {
	store contentStore[db.Skill]
}

// SkillInput 描述创建技能时可设置的字段
// OrderIndex 使用指针判断是否显式传入
type SkillInput struct {
	Name        string
	Category    string
	Proficiency string
	OrderIndex  *int
}

// NewSkillService creates a SkillService instance.
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{
		store: newContentStore[db.Skill](gdb, "skill", "order_index asc"),
	}
}

// List returns skills ordered by order_index. Store failures degrade to an
// empty slice.
func (s *SkillService) List() []db.Skill {
	return s.store.list()
}

// Create inserts a new skill. 未显式指定 order_index 时，
// 赋值为插入时刻的集合长度。
func (s *SkillService) Create(input SkillInput) (*db.Skill, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" {
		return nil, ErrSkillInvalidInput
	}

	proficiency, err := normalizeProficiency(input.Proficiency)
	if err != nil {
		return nil, err
	}

	orderIndex, err := resolveOrderIndex(&s.store, input.OrderIndex)
	if err != nil {
		return nil, err
	}

	skill := db.Skill{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Proficiency: proficiency,
		OrderIndex:  orderIndex,
	}

	if err := s.store.create(&skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// Delete removes a skill by id.
func (s *SkillService) Delete(id uint) error {
	return s.store.remove(id, ErrSkillNotFound)
}

func normalizeProficiency(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProficiencyIntermediate, nil
	}
	switch trimmed {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return trimmed, nil
	}
	return "", ErrSkillInvalidProficiency
}

// resolveOrderIndex 返回显式传入的排序值，否则取当前行数。
// 并发写入下取到的行数可能重复，排序值允许重复，不做唯一性保证。
func resolveOrderIndex[T any](store *contentStore[T], explicit *int) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	total, err := store.count()
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
