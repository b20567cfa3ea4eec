package db

import "gorm.io/gorm"

// ContactMessage 保存联系表单提交的留言
// Read 是创建后唯一允许修改的字段
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:255;not null"`
	Message string `gorm:"type:text;not null"`
	Read    bool   `gorm:"default:false"`
}

// TableName 返回自定义表名，避免冲突
func (ContactMessage) TableName() string {
	return "contact_messages"
}
