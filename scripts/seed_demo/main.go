package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/linkdeck/internal/config"
	"github.com/linkdeck/internal/db"
)

// 演示数据生成器
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	createDemoUser()
	createDemoPage()

	fmt.Println("演示数据生成完成！")
	fmt.Println("用户: admin (密码: admin123)")
	fmt.Println("页面: /p/demo")
}

// 创建演示用户
func createDemoUser() {
	created, err := db.EnsureUser("admin", "admin123")
	if err != nil {
		log.Printf("创建用户失败: %v", err)
		return
	}
	if !created {
		fmt.Println("用户已存在，跳过创建")
		return
	}
	fmt.Println("✅ 演示用户创建完成")
}

// 创建演示页面及区块
func createDemoPage() {
	var count int64
	db.DB.Model(&db.Page{}).Where("slug = ?", "demo").Count(&count)
	if count > 0 {
		fmt.Println("演示页已存在，跳过创建")
		return
	}

	page := db.Page{
		Slug:        "demo",
		Title:       "LinkDeck 演示页",
		Description: "一页展示文本、社交图标与链接区块的示例。",
		Theme:       "light",
		Published:   true,
	}
	if err := db.DB.Create(&page).Error; err != nil {
		log.Printf("创建演示页失败: %v", err)
		return
	}

	blocks := []db.Block{
		{
			PageID:   page.ID,
			Kind:     db.BlockKindText,
			Config:   `{"markdown":"## 你好，我是 LinkDeck\n\n- 一个页面，连接你的所有内容\n- 支持文本、社交图标与链接按钮\n- 后台拖拽排序，实时预览"}`,
			Position: 0,
			Visible:  true,
		},
		{
			PageID:   page.ID,
			Kind:     db.BlockKindSocials,
			Config:   `{"socials":[{"platform":"instagram","url":"https://instagram.com/linkdeck"},{"platform":"x","url":"https://x.com/linkdeck"},{"platform":"youtube","url":"https://youtube.com/@linkdeck"}],"iconStyle":"origin-colorful","iconSize":32,"containerStyle":{"textAlign":"center"}}`,
			Position: 1,
			Visible:  true,
		},
		{
			PageID:   page.ID,
			Kind:     db.BlockKindLinks,
			Config:   `{"items":[{"label":"官方博客","url":"https://blog.example.com"},{"label":"开源仓库","url":"https://github.com/linkdeck"}]}`,
			Position: 2,
			Visible:  true,
		},
	}

	for _, block := range blocks {
		if err := db.DB.Create(&block).Error; err != nil {
			log.Printf("创建区块失败: %v", err)
		}
	}

	fmt.Println("✅ 演示页面创建完成")
}
