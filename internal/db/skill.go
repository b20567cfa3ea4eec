package db

import "gorm.io/gorm"

// Skill 定义技能条目
// Proficiency 取值 Beginner/Intermediate/Advanced/Expert
// OrderIndex 值越小越靠前，允许重复
type Skill struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Category    string `gorm:"size:100;not null"`
	Proficiency string `gorm:"size:20;not null"`
	OrderIndex  int    `gorm:"default:0"`
}
