package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/service"
)

// HealthCheck 提供部署平台与监控系统使用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}

// ShowSystemSettings 渲染系统设置页面。
func (a *API) ShowSystemSettings(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "system_settings.html", gin.H{
		"title": "系统设置",
	})
}

type systemSettingsRequest struct {
	SiteName    string `json:"siteName"`
	SiteLogoURL string `json:"siteLogoUrl"`
	FooterText  string `json:"footerText"`
}

// GetSystemSettings 返回当前站点设置。
func (a *API) GetSystemSettings(c *gin.Context) {
	settings, err := a.system.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取系统设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"siteName":    settings.SiteName,
		"siteLogoUrl": settings.SiteLogoURL,
		"footerText":  settings.FooterText,
	})
}

// UpdateSystemSettings 保存站点设置。
func (a *API) UpdateSystemSettings(c *gin.Context) {
	var payload systemSettingsRequest
	if !bindJSON(c, &payload, "设置数据格式不正确") {
		return
	}

	if err := a.system.UpdateSettings(service.SiteSettingsInput{
		SiteName:    payload.SiteName,
		SiteLogoURL: payload.SiteLogoURL,
		FooterText:  payload.FooterText,
	}); err != nil {
		respondError(c, http.StatusInternalServerError, "保存系统设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "系统设置已更新"})
}
