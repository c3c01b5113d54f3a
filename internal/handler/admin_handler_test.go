package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/linkdeck/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubHTMLRender struct{}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	return &stubHTMLInstance{name: name, data: data}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupAdminHandlerTest(t *testing.T) (*API, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin-handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Page{}, &db.Block{}, &db.PageStatistic{}, &db.SystemSetting{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	api := NewAPI(gdb, t.TempDir(), "/uploads")

	r := gin.New()
	r.HTMLRender = &stubHTMLRender{}
	r.Use(sessions.Sessions("linkdeck_session", cookie.NewStore([]byte("test-secret"))))
	r.GET("/admin/login", api.ShowLoginPage)
	r.POST("/admin/login", api.Login)
	r.GET("/admin/logout", api.Logout)

	auth := r.Group("/admin")
	auth.Use(AuthRequired())
	auth.GET("/dashboard", api.ShowDashboard)

	return api, r, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func seedAdminUser(t *testing.T, api *API, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := api.db.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func loginForm(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRedirectsToDashboard(t *testing.T) {
	api, r, cleanup := setupAdminHandlerTest(t)
	defer cleanup()

	seedAdminUser(t, api, "admin", "secret123")

	w := loginForm(t, r, "admin", "secret123")

	if w.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("expected session cookie to be set")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	api, r, cleanup := setupAdminHandlerTest(t)
	defer cleanup()

	seedAdminUser(t, api, "admin", "secret123")

	w := loginForm(t, r, "admin", "wrong-pass")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	_, r, cleanup := setupAdminHandlerTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestDashboardAccessibleAfterLogin(t *testing.T) {
	api, r, cleanup := setupAdminHandlerTest(t)
	defer cleanup()

	seedAdminUser(t, api, "admin", "secret123")
	login := loginForm(t, r, "admin", "secret123")

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d after login, got %d", http.StatusOK, w.Code)
	}
}
