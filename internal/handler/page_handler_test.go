package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPageHandlerTest(t *testing.T) (*API, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:page-handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Page{}, &db.Block{}, &db.PageStatistic{}, &db.PageVisit{}, &db.SystemSetting{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	api := NewAPI(gdb, t.TempDir(), "/uploads")

	r := gin.New()
	r.GET("/admin/api/pages", api.GetPages)
	r.GET("/admin/api/pages/:id", api.GetPage)
	r.POST("/admin/api/pages", api.CreatePage)
	r.PUT("/admin/api/pages/:id", api.UpdatePage)
	r.DELETE("/admin/api/pages/:id", api.DeletePage)

	return api, r, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestCreatePageNormalizesSlug(t *testing.T) {
	api, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	w := postJSON(t, r, http.MethodPost, "/admin/api/pages", `{"slug":"  My Links! ","title":"我的链接"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var page db.Page
	if err := api.db.Where("slug = ?", "my-links").First(&page).Error; err != nil {
		t.Fatalf("expected slug to be normalized: %v", err)
	}
}

func TestCreatePageRejectsDuplicateSlug(t *testing.T) {
	api, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	if err := api.db.Create(&db.Page{Slug: "taken", Title: "已有页"}).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}

	w := postJSON(t, r, http.MethodPost, "/admin/api/pages", `{"slug":"Taken","title":"冲突页"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestCreatePageRejectsMissingTitle(t *testing.T) {
	_, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	w := postJSON(t, r, http.MethodPost, "/admin/api/pages", `{"slug":"no-title"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreatePageRejectsUnknownTheme(t *testing.T) {
	_, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	w := postJSON(t, r, http.MethodPost, "/admin/api/pages", `{"slug":"theme-page","title":"主题页","theme":"neon"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUpdatePageReturns404ForMissingID(t *testing.T) {
	_, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	w := postJSON(t, r, http.MethodPut, "/admin/api/pages/9999", `{"slug":"ghost","title":"幽灵页"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetPagesIncludesStats(t *testing.T) {
	api, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	page := db.Page{Slug: "stats-list", Title: "统计页", Published: true}
	if err := api.db.Create(&page).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}
	if err := api.db.Create(&db.PageStatistic{PageID: page.ID, PageViews: 12, UniqueVisitors: 5}).Error; err != nil {
		t.Fatalf("failed to seed stats: %v", err)
	}

	w := postJSON(t, r, http.MethodGet, "/admin/api/pages", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Pages []struct {
			Slug           string `json:"slug"`
			PageViews      uint64 `json:"pageViews"`
			UniqueVisitors uint64 `json:"uniqueVisitors"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(resp.Pages))
	}
	if resp.Pages[0].PageViews != 12 || resp.Pages[0].UniqueVisitors != 5 {
		t.Fatalf("expected stats to be merged, got %+v", resp.Pages[0])
	}
}

func TestDeletePageRemovesBlocks(t *testing.T) {
	api, r, cleanup := setupPageHandlerTest(t)
	defer cleanup()

	page := db.Page{Slug: "doomed", Title: "待删页"}
	if err := api.db.Create(&page).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}
	block := db.Block{PageID: page.ID, Kind: db.BlockKindText, Config: `{"markdown":"bye"}`, Visible: true}
	if err := api.db.Create(&block).Error; err != nil {
		t.Fatalf("failed to seed block: %v", err)
	}

	w := postJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/api/pages/%d", page.ID), "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var blockCount int64
	api.db.Model(&db.Block{}).Where("page_id = ?", page.ID).Count(&blockCount)
	if blockCount != 0 {
		t.Fatalf("expected blocks to be deleted with page, got %d", blockCount)
	}
}
