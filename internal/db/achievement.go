package db

import "gorm.io/gorm"

// Achievement 定义成就条目
type Achievement struct {
	gorm.Model
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	AchievementDate string `gorm:"size:10;not null"`
	ImageURL        string `gorm:"size:500"`
	OrderIndex      int    `gorm:"default:0"`
}
