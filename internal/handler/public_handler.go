package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownEngine 渲染博客正文，启用 GFM 扩展
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
)

var sanitizer = bluemonday.UGCPolicy()

func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

func publishedBlogJSON(blog db.Blog) gin.H {
	return gin.H{
		"id":             blog.ID,
		"title":          blog.Title,
		"description":    blog.Description,
		"image_url":      blog.ImageURL,
		"published_date": blog.PublishedDate,
		"order_index":    blog.OrderIndex,
	}
}

// GetPublicProjects 公开项目列表，走短期缓存
func (a *API) GetPublicProjects(c *gin.Context) {
	data := a.cachedList("public:projects", func() interface{} {
		return projectListJSON(a.projects.List())
	})
	c.JSON(http.StatusOK, gin.H{"projects": data})
}

// GetPublicSkills 公开技能列表
func (a *API) GetPublicSkills(c *gin.Context) {
	data := a.cachedList("public:skills", func() interface{} {
		return skillListJSON(a.skills.List())
	})
	c.JSON(http.StatusOK, gin.H{"skills": data})
}

// GetPublicCertificates 公开证书列表
func (a *API) GetPublicCertificates(c *gin.Context) {
	data := a.cachedList("public:certificates", func() interface{} {
		return certificateListJSON(a.certificates.List())
	})
	c.JSON(http.StatusOK, gin.H{"certificates": data})
}

// GetPublicAchievements 公开成就列表
func (a *API) GetPublicAchievements(c *gin.Context) {
	data := a.cachedList("public:achievements", func() interface{} {
		return achievementListJSON(a.achievements.List())
	})
	c.JSON(http.StatusOK, gin.H{"achievements": data})
}

// GetPublishedBlogs 仅返回已发布的文章，不带正文
func (a *API) GetPublishedBlogs(c *gin.Context) {
	data := a.cachedList("public:blogs", func() interface{} {
		blogs := a.blogs.ListPublished()
		response := make([]gin.H, 0, len(blogs))
		for _, blog := range blogs {
			response = append(response, publishedBlogJSON(blog))
		}
		return response
	})
	c.JSON(http.StatusOK, gin.H{"blogs": data})
}

// GetPublishedBlog 返回单篇已发布文章，正文渲染为安全 HTML
func (a *API) GetPublishedBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}

	blog, err := a.blogs.GetPublished(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load blog post")
		return
	}

	payload := publishedBlogJSON(*blog)
	payload["content"] = blog.Content
	payload["content_html"] = renderMarkdown(blog.Content)
	c.JSON(http.StatusOK, gin.H{"blog": payload})
}

// GetCurrentResume 公开简历信息
func (a *API) GetCurrentResume(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resume": resumeJSON(a.resume.Current())})
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact 处理联系表单：先发邮件，成功后才落库
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "Missing required fields") {
		return
	}

	submission, err := a.contacts.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactInvalidInput):
			respondError(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, service.ErrEmailRelayFailed):
			respondError(c, http.StatusBadGateway, "Failed to send message")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to save message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Message sent successfully",
		"email_id": submission.Receipt.ID,
		"id":       submission.Message.ID,
	})
}
