package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type projectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Details     string   `json:"details"`
	Tech        []string `json:"tech"`
	ImageURL    string   `json:"image_url"`
}

func projectJSON(project db.Project) gin.H {
	return gin.H{
		"id":          project.ID,
		"title":       project.Title,
		"description": project.Description,
		"details":     project.Details,
		"tech":        []string(project.Tech),
		"image_url":   project.ImageURL,
		"created_at":  project.CreatedAt,
	}
}

func projectListJSON(projects []db.Project) []gin.H {
	response := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		response = append(response, projectJSON(project))
	}
	return response
}

// GetProjects 获取项目列表（后台，不走缓存）
func (a *API) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": projectListJSON(a.projects.List())})
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req, "Title and description are required") {
		return
	}

	project, err := a.projects.Create(service.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		Tech:        req.Tech,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrProjectInvalidInput) {
			respondError(c, http.StatusBadRequest, "Title and description are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Project created", "project": projectJSON(*project)})
}

// DeleteProject 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "Project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
