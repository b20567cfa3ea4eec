package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type skillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Proficiency string `json:"proficiency"`
	OrderIndex  *int   `json:"order_index"`
}

func skillJSON(skill db.Skill) gin.H {
	return gin.H{
		"id":          skill.ID,
		"name":        skill.Name,
		"category":    skill.Category,
		"proficiency": skill.Proficiency,
		"order_index": skill.OrderIndex,
	}
}

func skillListJSON(skills []db.Skill) []gin.H {
	response := make([]gin.H, 0, len(skills))
	for _, skill := range skills {
		response = append(response, skillJSON(skill))
	}
	return response
}

// GetSkills 获取技能列表（后台，不走缓存）
func (a *API) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": skillListJSON(a.skills.List())})
}

// CreateSkill 创建新技能
func (a *API) CreateSkill(c *gin.Context) {
	var req skillRequest
	if !bindJSON(c, &req, "Name and category are required") {
		return
	}

	skill, err := a.skills.Create(service.SkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSkillInvalidInput):
			respondError(c, http.StatusBadRequest, "Name and category are required")
		case errors.Is(err, service.ErrSkillInvalidProficiency):
			respondError(c, http.StatusBadRequest, "Invalid proficiency level")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create skill")
		}
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Skill created", "skill": skillJSON(*skill)})
}

// DeleteSkill 删除技能
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	if err := a.skills.Delete(id); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondError(c, http.StatusNotFound, "Skill not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete skill")
		return
	}

	a.flushPublicCache()
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}
