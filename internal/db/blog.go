package db

import "gorm.io/gorm"

// Blog 定义博客文章模型
// PublishedDate 仅在创建时 Published 为 true 才会写入
type Blog struct {
	gorm.Model
	Title         string `gorm:"size:200;not null"`
	Description   string `gorm:"type:text;not null"`
	Content       string `gorm:"type:text"`
	ImageURL      string `gorm:"size:500"`
	Published     bool   `gorm:"default:false"`
	PublishedDate string `gorm:"size:10"`
	OrderIndex    int    `gorm:"default:0"`
}
