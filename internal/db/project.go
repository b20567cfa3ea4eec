package db

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project 定义作品集中的项目模型
// Tech 以 JSON 数组存储技术标签，顺序即展示顺序
type Project struct {
	gorm.Model
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Details     string `gorm:"type:text"`
	Tech        datatypes.JSONSlice[string]
	ImageURL    string `gorm:"size:500"`
}
