package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "管理员登录",
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// 查找用户
	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "管理员登录",
			"error": "用户名或密码错误",
		})
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{
			"title": "管理员登录",
			"error": "用户名或密码错误",
		})
		return
	}

	// 设置会话
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "管理员登录",
			"error": "会话保存失败",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var pageCount int64
	a.db.Model(&db.Page{}).Count(&pageCount)

	var blockCount int64
	a.db.Model(&db.Block{}).Count(&blockCount)

	var totals struct {
		PageViews      uint64
		UniqueVisitors uint64
	}
	a.db.Model(&db.PageStatistic{}).
		Select("COALESCE(SUM(page_views),0) AS page_views, COALESCE(SUM(unique_visitors),0) AS unique_visitors").
		Scan(&totals)

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":          "管理面板",
		"username":       username,
		"pageCount":      pageCount,
		"blockCount":     blockCount,
		"pageViews":      totals.PageViews,
		"uniqueVisitors": totals.UniqueVisitors,
	})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
