package router

import (
	"fmt"
	"html/template"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/db"
	"github.com/linkdeck/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由。
// templateGlob 为空时跳过模板加载，便于测试只验证路由本身。
func SetupRouter(sessionSecret, uploadDir, uploadURLPath, templateGlob string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("linkdeck_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"relativeTime": func(value time.Time) string {
			return formatRelativeTime(time.Now(), value)
		},
	})
	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}

	// 静态文件服务
	r.Static("/static", "./web/static")
	r.Static("/uploads", uploadDir)

	api := handler.NewAPI(db.DB, uploadDir, uploadURLPath)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/healthz", api.HealthCheck)

	// 公开路由
	r.GET("/", api.ShowHome)
	r.GET("/p/:slug", api.ShowPage)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/pages", api.ShowPageList)
			auth.GET("/pages/new", api.ShowPageEdit)
			auth.GET("/pages/:id/edit", api.ShowPageEdit)
			auth.GET("/settings", api.ShowSystemSettings)

			// API路由
			apiGroup := auth.Group("/api")
			{
				apiGroup.GET("/pages", api.GetPages)
				apiGroup.GET("/pages/:id", api.GetPage)
				apiGroup.POST("/pages", api.CreatePage)
				apiGroup.PUT("/pages/:id", api.UpdatePage)
				apiGroup.DELETE("/pages/:id", api.DeletePage)

				apiGroup.GET("/blocks", api.GetBlocks)
				apiGroup.POST("/blocks", api.CreateBlock)
				apiGroup.PUT("/blocks/:id", api.UpdateBlock)
				apiGroup.DELETE("/blocks/:id", api.DeleteBlock)
				apiGroup.POST("/blocks/reorder", api.ReorderBlocks)
				apiGroup.POST("/blocks/preview/socials", api.PreviewSocialsBlock)

				apiGroup.GET("/settings", api.GetSystemSettings)
				apiGroup.PUT("/settings", api.UpdateSystemSettings)

				apiGroup.POST("/upload", api.UploadImage)
			}
		}
	}

	return r
}

// formatRelativeTime 以中文口吻描述相对时间，列表页展示用。
func formatRelativeTime(now, value time.Time) string {
	if value.IsZero() {
		return ""
	}

	diff := now.Sub(value)
	if diff < time.Minute {
		return "刚刚"
	}
	if diff < time.Hour {
		return fmt.Sprintf("%d分钟前", int(diff.Minutes()))
	}
	if diff < 24*time.Hour {
		return fmt.Sprintf("%d小时前", int(diff.Hours()))
	}
	if diff < 30*24*time.Hour {
		return fmt.Sprintf("%d天前", int(diff.Hours()/24))
	}
	if diff < 365*24*time.Hour {
		return fmt.Sprintf("%d个月前", int(diff.Hours()/(24*30)))
	}
	return fmt.Sprintf("%d年前", int(diff.Hours()/(24*365)))
}
