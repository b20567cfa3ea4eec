package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

func messageJSON(msg db.ContactMessage) gin.H {
	return gin.H{
		"id":         msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"message":    msg.Message,
		"read":       msg.Read,
		"created_at": msg.CreatedAt,
	}
}

func messageListJSON(msgs []db.ContactMessage) []gin.H {
	response := make([]gin.H, 0, len(msgs))
	for _, msg := range msgs {
		response = append(response, messageJSON(msg))
	}
	return response
}

// GetMessages 获取全部留言，按提交时间倒序
func (a *API) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": messageListJSON(a.contacts.List())})
}

// MarkMessageRead 将留言标记为已读，重复标记不报错
func (a *API) MarkMessageRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	record, err := a.contacts.MarkRead(id)
	if err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			respondError(c, http.StatusNotFound, "Message not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read", "data": messageJSON(*record)})
}

// DeleteMessage 删除留言
func (a *API) DeleteMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			respondError(c, http.StatusNotFound, "Message not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
