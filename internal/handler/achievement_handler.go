package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type achievementRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	AchievementDate string `json:"achievement_date" binding:"required"`
	ImageURL        string `json:"image_url"`
	OrderIndex      *int   `json:"order_index"`
}

func achievementJSON(achievement db.Achievement) gin.H {
	return gin.H{
		"id":               achievement.ID,
		"title":            achievement.Title,
		"description":      achievement.Description,
		"achievement_date": achievement.AchievementDate,
		"image_url":        achievement.ImageURL,
		"order_index":      achievement.OrderIndex,
	}
}

func achievementListJSON(achievements []db.Achievement) []gin.H {
	response := make([]gin.H, 0, len(achievements))
	for _, achievement := range achievements {
		response = append(response, achievementJSON(achievement))
	}
	return response
}

// GetAchievements 获取成就列表（后台，不走缓存）
func (a *API) GetAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"achievements": achievementListJSON(a.achievements.List())})
}

// CreateAchievement 创建新成就
func (a *API) CreateAchievement(c *gin.Context) {
	var req achievementRequest
	if !bindJSON(c, &req, "Title, description and date are required") {
		return
	}

	achievement, err := a.achievements.Create(service.AchievementInput{
		Title:           req.Title,
		Description:     req.Description,
		AchievementDate: req.AchievementDate,
		ImageURL:        req.ImageURL,
		OrderIndex:      req.OrderIndex,
	})
	if err != nil {
		if errors.Is(err, service.ErrAchievementInvalidInput) {
			respondError(c, http.StatusBadRequest, "Title, description and date are required")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create achievement")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Achievement created", "achievement": achievementJSON(*achievement)})
}

// DeleteAchievement 删除成就
func (a *API) DeleteAchievement(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid achievement ID")
		return
	}

	if err := a.achievements.Delete(id); err != nil {
		if errors.Is(err, service.ErrAchievementNotFound) {
			respondError(c, http.StatusNotFound, "Achievement not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete achievement")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Achievement deleted"})
}
