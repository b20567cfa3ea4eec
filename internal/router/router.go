package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("portfolio_session", store))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(metrics.GinMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 未匹配的路径和方法统一返回 JSON 错误
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// 上传文件静态服务
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 公开接口
	public := r.Group("/api")
	{
		public.GET("/projects", api.GetPublicProjects)
		public.GET("/skills", api.GetPublicSkills)
		public.GET("/certificates", api.GetPublicCertificates)
		public.GET("/achievements", api.GetPublicAchievements)
		public.GET("/blogs", api.GetPublishedBlogs)
		public.GET("/blogs/:id", api.GetPublishedBlog)
		public.GET("/resume", api.GetCurrentResume)
		public.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/projects", api.GetProjects)
			auth.POST("/projects", api.CreateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)

			auth.GET("/skills", api.GetSkills)
			auth.POST("/skills", api.CreateSkill)
			auth.DELETE("/skills/:id", api.DeleteSkill)

			auth.GET("/certificates", api.GetCertificates)
			auth.POST("/certificates", api.CreateCertificate)
			auth.DELETE("/certificates/:id", api.DeleteCertificate)

			auth.GET("/achievements", api.GetAchievements)
			auth.POST("/achievements", api.CreateAchievement)
			auth.DELETE("/achievements/:id", api.DeleteAchievement)

			auth.GET("/blogs", api.GetBlogs)
			auth.POST("/blogs", api.CreateBlog)
			auth.DELETE("/blogs/:id", api.DeleteBlog)

			auth.GET("/resume", api.GetResume)
			auth.PUT("/resume", api.ReplaceResume)

			auth.GET("/messages", api.GetMessages)
			auth.PUT("/messages/:id/read", api.MarkMessageRead)
			auth.DELETE("/messages/:id", api.DeleteMessage)

			auth.POST("/uploads", api.UploadImage)
			auth.GET("/stats", api.GetStats)
		}
	}

	return r
}
