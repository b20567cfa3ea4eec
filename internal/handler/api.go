package handler

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	projects     *service.ProjectService
	skills       *service.SkillService
	certificates *service.CertificateService
	achievements *service.AchievementService
	blogs        *service.BlogService
	resume       *service.ResumeService
	contacts     *service.ContactService

	// 公开接口的读缓存，后台任何写操作都会整体清空
	cache *gocache.Cache

	uploadDir         string
	uploadURL         string
	adminPassword     string
	adminPasswordHash string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, relay service.EmailRelay, cfg config.AppConfig) *API {
	return &API{
		projects:          service.NewProjectService(gdb),
		skills:            service.NewSkillService(gdb),
		certificates:      service.NewCertificateService(gdb),
		achievements:      service.NewAchievementService(gdb),
		blogs:             service.NewBlogService(gdb),
		resume:            service.NewResumeService(gdb),
		contacts:          service.NewContactService(gdb, relay),
		cache:             gocache.New(5*time.Minute, 10*time.Minute),
		uploadDir:         cfg.UploadDir,
		uploadURL:         cfg.UploadURLPath,
		adminPassword:     cfg.AdminPassword,
		adminPasswordHash: cfg.AdminPasswordHash,
	}
}

// cachedList 先查缓存，未命中时执行 fetch 并回填。
func (a *API) cachedList(key string, fetch func() interface{}) interface{} {
	if data, found := a.cache.Get(key); found {
		return data
	}
	data := fetch()
	a.cache.Set(key, data, gocache.DefaultExpiration)
	return data
}

// flushPublicCache 在任何内容变更后清空公开接口缓存。
func (a *API) flushPublicCache() {
	a.cache.Flush()
}
