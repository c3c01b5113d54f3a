package main

import (
	"encoding/json"
	"testing"

	"github.com/linkdeck/internal/db"
	"github.com/linkdeck/internal/social"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:seed-demo?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Page{}, &db.Block{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestCreateDemoPageSeedsBlocks(t *testing.T) {
	cleanup := setupSeedTestDB(t)
	defer cleanup()

	createDemoPage()

	var page db.Page
	if err := db.DB.Where("slug = ?", "demo").First(&page).Error; err != nil {
		t.Fatalf("expected demo page to exist: %v", err)
	}
	if !page.Published {
		t.Fatalf("expected demo page to be published")
	}

	var blocks []db.Block
	if err := db.DB.Where("page_id = ?", page.ID).Order("position ASC").Find(&blocks).Error; err != nil {
		t.Fatalf("failed to list blocks: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	wantKinds := []string{db.BlockKindText, db.BlockKindSocials, db.BlockKindLinks}
	for i, block := range blocks {
		if block.Kind != wantKinds[i] {
			t.Fatalf("block %d: expected kind %q, got %q", i, wantKinds[i], block.Kind)
		}
		if block.Position != i {
			t.Fatalf("block %d: expected position %d, got %d", i, i, block.Position)
		}
		if !json.Valid([]byte(block.Config)) {
			t.Fatalf("block %d: config is not valid JSON", i)
		}
	}

	var stored struct {
		Socials []struct {
			Platform string  `json:"platform"`
			URL      *string `json:"url"`
		} `json:"socials"`
		IconSize int `json:"iconSize"`
	}
	if err := json.Unmarshal([]byte(blocks[1].Config), &stored); err != nil {
		t.Fatalf("failed to decode socials config: %v", err)
	}

	cfg := social.Config{IconSize: stored.IconSize}
	for _, item := range stored.Socials {
		cfg.Socials = append(cfg.Socials, social.EntryConfig{
			Platform: social.Platform(item.Platform),
			URL:      item.URL,
		})
	}
	entries := social.Normalize(cfg)
	if len(entries) != 3 {
		t.Fatalf("expected 3 social entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if !social.KnownPlatform(string(entry.Platform)) {
			t.Fatalf("unexpected platform %q", entry.Platform)
		}
	}

	// 重复执行不应产生重复数据
	createDemoPage()
	var pageCount int64
	db.DB.Model(&db.Page{}).Where("slug = ?", "demo").Count(&pageCount)
	if pageCount != 1 {
		t.Fatalf("expected 1 demo page, got %d", pageCount)
	}
}
