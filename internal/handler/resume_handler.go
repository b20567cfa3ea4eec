package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type resumeRequest struct {
	FileURL  string `json:"file_url" binding:"required"`
	FileName string `json:"file_name"`
}

func resumeJSON(resume *db.Resume) gin.H {
	if resume == nil {
		return nil
	}
	return gin.H{
		"id":          resume.ID,
		"file_url":    resume.FileURL,
		"file_name":   resume.FileName,
		"uploaded_at": resume.UploadedAt,
	}
}

// GetResume 返回当前简历，不存在时 resume 字段为 null
func (a *API) GetResume(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resume": resumeJSON(a.resume.Current())})
}

// ReplaceResume 以先删后插的方式替换简历记录
func (a *API) ReplaceResume(c *gin.Context) {
	var req resumeRequest
	if !bindJSON(c, &req, "File URL is required") {
		return
	}

	resume, err := a.resume.Replace(service.ResumeInput{
		FileURL:  req.FileURL,
		FileName: req.FileName,
	})
	if err != nil {
		if errors.Is(err, service.ErrResumeInvalidInput) {
			respondError(c, http.StatusBadRequest, "File URL is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update resume")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Resume updated", "resume": resumeJSON(resume)})
}
