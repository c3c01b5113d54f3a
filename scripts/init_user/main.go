package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/linkdeck/internal/config"
	"github.com/linkdeck/internal/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
	}

	created, err := db.EnsureUser(username, password)
	if err != nil {
		log.Fatal("创建用户失败:", err)
	}
	if !created {
		fmt.Println("用户已存在，无需初始化")
		return
	}

	fmt.Println("默认管理员用户创建成功")
	fmt.Println("用户名:", username)
	fmt.Println("密码:", password)
}
