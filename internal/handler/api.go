package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/service"
	"github.com/linkdeck/internal/social"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	pages     *service.PageService
	blocks    *service.BlockService
	analytics *service.AnalyticsService
	system    *service.SystemSettingService
	assets    social.AssetTable
	uploadDir string
	uploadURL string
}

type siteViewModel struct {
	Name    string
	LogoURL string
	Footer  string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
// 图标素材表在启动时整表注入，运行期只读。
func NewAPI(db *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:        db,
		pages:     service.NewPageService(db),
		blocks:    service.NewBlockService(db),
		analytics: service.NewAnalyticsService(db),
		system:    service.NewSystemSettingService(db),
		assets:    social.DefaultAssetTable(),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

func (a *API) siteSettings(c *gin.Context) siteViewModel {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(siteViewModel); ok {
			return view
		}
	}

	settings, err := a.system.GetSettings()
	if err != nil {
		c.Error(err)
	}

	view := siteViewModel{
		Name:    strings.TrimSpace(settings.SiteName),
		LogoURL: strings.TrimSpace(settings.SiteLogoURL),
		Footer:  strings.TrimSpace(settings.FooterText),
	}
	if view.Name == "" {
		view.Name = "LinkDeck"
	}
	if view.Footer == "" {
		view.Footer = "一页连接所有"
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

// renderHTML 在向模板渲染时自动附加系统设置中的站点名称与 Logo 信息。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":    view.Name,
			"logoUrl": view.LogoURL,
			"footer":  view.Footer,
		}
	}

	c.HTML(status, template, payload)
}
