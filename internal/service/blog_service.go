package service

import (
	"errors"
	"strings"
	"time"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound     = errors.New("blog not found")
	ErrBlogInvalidInput = errors.New("invalid blog input")
)

// BlogService handles blog post CRUD.
// 后台使用不过滤的 List，前台只读已发布的条目。
type BlogService struct {
	store contentStore[db.Blog]
}

// BlogInput represents fields accepted when creating a blog post.
type BlogInput struct {
	Title       string
	Description string
	Content     string
	ImageURL    string
	Published   bool
	OrderIndex  *int
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{
		store: newContentStore[db.Blog](gdb, "blog", "order_index asc"),
	}
}

// List returns every blog post, published or not. Store failures degrade to
// an empty slice.
func (s *BlogService) List() []db.Blog {
	return s.store.list()
}

// ListPublished returns only published posts, filtered server-side.
func (s *BlogService) ListPublished() []db.Blog {
	return s.store.list(func(query *gorm.DB) *gorm.DB {
		return query.Where("published = ?", true)
	})
}

// GetPublished fetches one published post by id.
func (s *BlogService) GetPublished(id uint) (*db.Blog, error) {
	var blog db.Blog
	if err := s.store.db.Where("published = ?", true).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// Create inserts a new blog post. 发布日期仅在创建时 Published 为 true
// 才写入，后续不再变化。
func (s *BlogService) Create(input BlogInput) (*db.Blog, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrBlogInvalidInput
	}

	orderIndex, err := resolveOrderIndex(&s.store, input.OrderIndex)
	if err != nil {
		return nil, err
	}

	blog := db.Blog{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Content:     input.Content,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Published:   input.Published,
		OrderIndex:  orderIndex,
	}
	if input.Published {
		blog.PublishedDate = time.Now().Format("2006-01-02")
	}

	if err := s.store.create(&blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// Delete removes a blog post by id.
func (s *BlogService) Delete(id uint) error {
	return s.store.remove(id, ErrBlogNotFound)
}
