package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	UploadDir         string
	UploadURLPath     string
	AdminPassword     string
	AdminPasswordHash string
	ResendAPIKey      string
	ResendBaseURL     string
	ContactToEmail    string
	ContactFromEmail  string
	AllowedOrigins    []string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 管理口令不提供默认值：ADMIN_PASSWORD 或 ADMIN_PASSWORD_HASH
// 必须显式配置，否则后台登录始终失败。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "portfolio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	resendBaseURL := strings.TrimSpace(os.Getenv("RESEND_BASE_URL"))
	if resendBaseURL == "" {
		resendBaseURL = "https://api.resend.com"
	}

	contactFromEmail := strings.TrimSpace(os.Getenv("CONTACT_FROM_EMAIL"))
	if contactFromEmail == "" {
		contactFromEmail = "Contact Form <onboarding@resend.dev>"
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		UploadDir:         uploadDir,
		UploadURLPath:     uploadURLPath,
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		ResendAPIKey:      strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		ResendBaseURL:     resendBaseURL,
		ContactToEmail:    strings.TrimSpace(os.Getenv("CONTACT_TO_EMAIL")),
		ContactFromEmail:  contactFromEmail,
		AllowedOrigins:    splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		origins = append(origins, trimmed)
	}
	return origins
}
