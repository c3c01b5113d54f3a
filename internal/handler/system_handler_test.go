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

func setupSystemHandlerTest(t *testing.T) (*API, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:system-handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.SystemSetting{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	api := NewAPI(gdb, t.TempDir(), "/uploads")

	r := gin.New()
	r.GET("/healthz", api.HealthCheck)
	r.GET("/admin/api/settings", api.GetSystemSettings)
	r.PUT("/admin/api/settings", api.UpdateSystemSettings)

	return api, r, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSystemSettingsRoundtripOverHTTP(t *testing.T) {
	_, r, cleanup := setupSystemHandlerTest(t)
	defer cleanup()

	w := postJSON(t, r, http.MethodPut, "/admin/api/settings", `{"siteName":"我的主页","siteLogoUrl":"/uploads/logo.png","footerText":"保持联系"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	w = postJSON(t, r, http.MethodGet, "/admin/api/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		SiteName    string `json:"siteName"`
		SiteLogoURL string `json:"siteLogoUrl"`
		FooterText  string `json:"footerText"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SiteName != "我的主页" || resp.SiteLogoURL != "/uploads/logo.png" || resp.FooterText != "保持联系" {
		t.Fatalf("unexpected settings payload: %+v", resp)
	}
}

func TestHealthCheckReportsOK(t *testing.T) {
	_, r, cleanup := setupSystemHandlerTest(t)
	defer cleanup()

	w := postJSON(t, r, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
}
