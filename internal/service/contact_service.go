package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrContactInvalidInput    = errors.New("invalid contact input")
	// ErrEmailRelayFailed 标记邮件转发阶段的失败，供 handler 映射为 502。
	ErrEmailRelayFailed = errors.New("email relay failed")
)

// ContactService 处理联系表单提交与后台留言管理。
//
// Submit 是一个两步序列：先转发邮件，成功后落库。两步之间没有补偿
// 事务——邮件发出而落库失败时错误仍会上抛，偶发的"已通知未持久化"
// 是被接受的失败模式。
type ContactService struct {
	db    *gorm.DB
	relay EmailRelay
}

// ContactInput 描述联系表单提交的三元组
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactSubmission 汇总整次提交的结果：邮件凭据与落库的留言行。
type ContactSubmission struct {
	Receipt EmailReceipt
	Message *db.ContactMessage
}

// ContactStats 汇总后台面板展示的留言统计。
type ContactStats struct {
	Total          int64
	Unread         int64
	Read           int64
	UniqueContacts int64
}

// NewContactService 构造 ContactService
func NewContactService(gdb *gorm.DB, relay EmailRelay) *ContactService {
	return &ContactService{db: gdb, relay: relay}
}

// Submit 执行完整的联系表单提交流程。
// 邮件转发失败时整体失败，落库一步不会执行。
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*ContactSubmission, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || message == "" {
		return nil, ErrContactInvalidInput
	}

	receipt, err := s.relay.Send(ctx, name, email, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmailRelayFailed, err)
	}

	record := db.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
		Read:    false,
	}
	if err := s.db.Create(&record).Error; err != nil {
		// 邮件已发出，此处不回滚，错误照常上抛
		return nil, fmt.Errorf("persist contact message: %w", err)
	}

	return &ContactSubmission{Receipt: receipt, Message: &record}, nil
}

// List 返回全部留言，最新在前。读取失败降级为空集合。
func (s *ContactService) List() []db.ContactMessage {
	items := []db.ContactMessage{}
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		logger.Warn("list degraded to empty result",
			zap.String("entity", "contact_message"),
			zap.Error(err))
		return []db.ContactMessage{}
	}
	return items
}

// MarkRead 将指定留言标记为已读。Read 是创建后唯一可变的字段。
func (s *ContactService) MarkRead(id uint) (*db.ContactMessage, error) {
	var record db.ContactMessage
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}

	if record.Read {
		return &record, nil
	}

	if err := s.db.Model(&record).Update("read", true).Error; err != nil {
		return nil, fmt.Errorf("mark contact message read: %w", err)
	}
	record.Read = true
	return &record, nil
}

// Delete 删除指定留言。
func (s *ContactService) Delete(id uint) error {
	var record db.ContactMessage
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactMessageNotFound
		}
		return fmt.Errorf("find contact message: %w", err)
	}
	if err := s.db.Delete(&record).Error; err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}

// Stats 汇总留言统计。读取失败时降级为零值并记录日志。
func (s *ContactService) Stats() ContactStats {
	var stats ContactStats
	model := s.db.Model(&db.ContactMessage{})

	if err := model.Count(&stats.Total).Error; err != nil {
		logger.Warn("contact stats degraded to zero", zap.Error(err))
		return ContactStats{}
	}
	if err := s.db.Model(&db.ContactMessage{}).Where("read = ?", false).Count(&stats.Unread).Error; err != nil {
		logger.Warn("contact stats degraded to zero", zap.Error(err))
		return ContactStats{}
	}
	stats.Read = stats.Total - stats.Unread

	if err := s.db.Model(&db.ContactMessage{}).Distinct("email").Count(&stats.UniqueContacts).Error; err != nil {
		logger.Warn("contact stats degraded to zero", zap.Error(err))
		return ContactStats{}
	}

	return stats
}
