package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// 会话中保存的登录标记，与前端旧版 sessionStorage 的哨兵值保持一致
const (
	sessionAuthKey   = "admin_auth"
	sessionAuthValue = "authenticated"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login 校验管理口令并写入会话标记。
// 口令错误时返回 401，前端负责清空输入框。
//
// 注意：这只是单一共享口令的便利性门禁，不构成真正的认证体系。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Password is required") {
		return
	}

	if !a.verifyPassword(req.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAuthKey, sessionAuthValue)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout 清除会话标记。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetStats 返回后台面板的留言统计。
func (a *API) GetStats(c *gin.Context) {
	stats := a.contacts.Stats()
	c.JSON(http.StatusOK, gin.H{
		"total_messages":  stats.Total,
		"unread_messages": stats.Unread,
		"read_messages":   stats.Read,
		"unique_contacts": stats.UniqueContacts,
	})
}

// 优先使用 bcrypt 摘要，未配置时退回明文常量时间比较。
// 两者都未配置时登录永远失败。
func (a *API) verifyPassword(password string) bool {
	if a.adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(password)) == nil
	}
	if a.adminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.adminPassword), []byte(password)) == 1
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		flag, ok := session.Get(sessionAuthKey).(string)
		if !ok || flag != sessionAuthValue {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
