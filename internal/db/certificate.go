package db

import "gorm.io/gorm"

// Certificate 定义证书模型
// 日期以 YYYY-MM-DD 字符串存储，与表单输入保持一致
type Certificate struct {
	gorm.Model
	Title         string `gorm:"size:200;not null"`
	Issuer        string `gorm:"size:200;not null"`
	IssueDate     string `gorm:"size:10;not null"`
	ExpiryDate    string `gorm:"size:10"`
	CredentialURL string `gorm:"size:500"`
	ImageURL      string `gorm:"size:500"`
	OrderIndex    int    `gorm:"default:0"`
}
