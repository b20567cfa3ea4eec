package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrResumeInvalidInput 在简历输入缺少必填字段时返回
var ErrResumeInvalidInput = errors.New("invalid resume input")

// ResumeService 维护简历记录。
// 表内约定至多一行，由 Replace 的先删后插序列维持；
// 两步之间没有事务，删除成功而插入失败会留下零行。
type ResumeService struct {
	db *gorm.DB
}

// ResumeInput 描述替换简历时可设置的字段
type ResumeInput struct {
	FileURL  string
	FileName string
}

// NewResumeService 构造 ResumeService
func NewResumeService(gdb *gorm.DB) *ResumeService {
	return &ResumeService{db: gdb}
}

// Current 返回最新的简历记录，不存在或读取失败时返回 nil。
func (s *ResumeService) Current() *db.Resume {
	var resume db.Resume
	err := s.db.Order("uploaded_at desc").First(&resume).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("resume read degraded to nil", zap.Error(err))
		}
		return nil
	}
	return &resume
}

// Replace 清空简历表后插入一条新记录。
// 文件名缺省时从 URL 末段推导。
func (s *ResumeService) Replace(input ResumeInput) (*db.Resume, error) {
	fileURL := strings.TrimSpace(input.FileURL)
	if fileURL == "" {
		return nil, ErrResumeInvalidInput
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		fileName = deriveFileName(fileURL)
	}

	if err := s.db.Where("id <> ?", 0).Delete(&db.Resume{}).Error; err != nil {
		return nil, fmt.Errorf("clear resume: %w", err)
	}

	resume := db.Resume{
		FileURL:    fileURL,
		FileName:   fileName,
		UploadedAt: time.Now(),
	}
	if err := s.db.Create(&resume).Error; err != nil {
		return nil, fmt.Errorf("insert resume: %w", err)
	}

	return &resume, nil
}

func deriveFileName(fileURL string) string {
	trimmed := strings.TrimRight(fileURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		if name := trimmed[idx+1:]; name != "" {
			return name
		}
	}
	return "resume.pdf"
}
