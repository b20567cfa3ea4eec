package db

import (
	"time"

	"gorm.io/gorm"
)

// Resume 定义简历记录
// 约定表内至多存在一行：每次更新先清空再插入，
// 两步之间没有事务保护，失败时可能出现零行
type Resume struct {
	gorm.Model
	FileURL    string    `gorm:"size:500;not null"`
	FileName   string    `gorm:"size:255;not null"`
	UploadedAt time.Time `gorm:"index"`
}
