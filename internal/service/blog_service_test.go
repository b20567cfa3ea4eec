package service

import (
	"errors"
	"testing"

	"github.com/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupBlogServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Blog{}); err != nil {
		t.Fatalf("failed to migrate blogs: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestBlogServicePublishedDateOnlySetWhenPublished(t *testing.T) {
	cleanup := setupBlogServiceTestDB(t)
	defer cleanup()

	svc := NewBlogService(db.DB)
	draft, err := svc.Create(BlogInput{Title: "Draft", Description: "not yet public"})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if draft.PublishedDate != "" {
		t.Fatalf("expected empty published date for draft, got %q", draft.PublishedDate)
	}

	published, err := svc.Create(BlogInput{Title: "Live", Description: "public post", Published: true})
	if err != nil {
		t.Fatalf("create published post failed: %v", err)
	}
	if published.PublishedDate == "" {
		t.Fatal("expected published date to be set for published post")
	}
}

func TestBlogServiceListPublishedFiltersDrafts(t *testing.T) {
	cleanup := setupBlogServiceTestDB(t)
	defer cleanup()

	svc := NewBlogService(db.DB)
	if _, err := svc.Create(BlogInput{Title: "Draft", Description: "hidden"}); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	published, err := svc.Create(BlogInput{Title: "Live", Description: "visible", Published: true})
	if err != nil {
		t.Fatalf("create published post failed: %v", err)
	}

	visible := svc.ListPublished()
	if len(visible) != 1 || visible[0].ID != published.ID {
		t.Fatalf("expected only the published post, got %+v", visible)
	}

	all := svc.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 posts in admin list, got %d", len(all))
	}
}

func TestBlogServiceGetPublished(t *testing.T) {
	cleanup := setupBlogServiceTestDB(t)
	defer cleanup()

	svc := NewBlogService(db.DB)
	draft, err := svc.Create(BlogInput{Title: "Draft", Description: "hidden"})
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	// 未发布的文章对前台不可见
	if _, err := svc.GetPublished(draft.ID); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound for draft, got %v", err)
	}

	published, err := svc.Create(BlogInput{Title: "Live", Description: "visible", Content: "# Hello", Published: true})
	if err != nil {
		t.Fatalf("create published post failed: %v", err)
	}

	got, err := svc.GetPublished(published.ID)
	if err != nil {
		t.Fatalf("get published post failed: %v", err)
	}
	if got.Content != "# Hello" {
		t.Fatalf("unexpected content %q", got.Content)
	}
}
