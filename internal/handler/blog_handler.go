package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type blogRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	Published   bool   `json:"published"`
	OrderIndex  *int   `json:"order_index"`
}

func blogJSON(blog db.Blog) gin.H {
	return gin.H{
		"id":             blog.ID,
		"title":          blog.Title,
		"description":    blog.Description,
		"content":        blog.Content,
		"image_url":      blog.ImageURL,
		"published":      blog.Published,
		"published_date": blog.PublishedDate,
		"order_index":    blog.OrderIndex,
	}
}

func blogListJSON(blogs []db.Blog) []gin.H {
	response := make([]gin.H, 0, len(blogs))
	for _, blog := range blogs {
		response = append(response, blogJSON(blog))
	}
	return response
}

// GetBlogs 获取全部博客文章，含未发布（仅后台使用）
func (a *API) GetBlogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"blogs": blogListJSON(a.blogs.List())})
}

// CreateBlog 创建博客文章
func (a *API) CreateBlog(c *gin.Context) {
	var req blogRequest
	if !bindJSON(c, &req, "Title and description are required") {
		return
	}

	blog, err := a.blogs.Create(service.BlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		if errors.Is(err, service.ErrBlogInvalidInput) {
			respondError(c, http.StatusBadRequest, "Title and description are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Blog post created", "blog": blogJSON(*blog)})
}

// DeleteBlog 删除博客文章
func (a *API) DeleteBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	if err := a.blogs.Delete(id); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
