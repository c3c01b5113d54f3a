package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/linkdeck/internal/config"
	"github.com/linkdeck/internal/db"
	"github.com/linkdeck/internal/router"
)

func main() {
	// 本地开发时读取 .env，生产环境缺失该文件属正常情况
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 按需创建管理员账号
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		created, err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Fatalf("failed to ensure admin user: %v", err)
		}
		if created {
			log.Printf("admin user %q created", cfg.AdminUsername)
		}
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath, "web/template/*.html")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
