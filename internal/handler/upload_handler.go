package handler

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const maxUploadSize = 10 << 20 // 10MB

// UploadImage 保存图片并返回可访问的 URL 与尺寸信息
func (a *API) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "File is required")
		return
	}

	if fileHeader.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, "File too large")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer src.Close()

	// 解析图片头以校验内容并拿到尺寸，无法识别的格式直接拒绝
	dimensions, _, err := image.DecodeConfig(src)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Unsupported image format")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	dest := filepath.Join(a.uploadDir, filename)
	if err := c.SaveUploadedFile(fileHeader, dest); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    path.Join(a.uploadURL, filename),
		"width":  dimensions.Width,
		"height": dimensions.Height,
	})
}
