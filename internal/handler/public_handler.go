package handler

import (
	"bytes"
	"fmt"
	htmlstd "html"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linkdeck/internal/db"
	"github.com/linkdeck/internal/social"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const (
	visitorCookieName   = "ld_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// ShowHome renders the public directory of published pages.
func (a *API) ShowHome(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "home.html", gin.H{
			"title": "首页",
			"error": "获取链接页失败",
			"year":  time.Now().Year(),
		})
		return
	}

	published := make([]db.Page, 0, len(pages))
	for _, page := range pages {
		if page.Published {
			published = append(published, page)
		}
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title": "首页",
		"pages": published,
		"year":  time.Now().Year(),
	})
}

// ShowPage renders a published link page with all of its visible blocks.
func (a *API) ShowPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil || !page.Published {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	visitorID := a.ensureVisitorID(c)

	var (
		pageViews      uint64
		uniqueVisitors uint64
	)
	if a.analytics != nil {
		if stats, recordErr := a.analytics.RecordPageView(page.ID, visitorID, time.Now().UTC()); recordErr == nil {
			pageViews = stats.PageViews
			uniqueVisitors = stats.UniqueVisitors
		} else {
			c.Error(recordErr) // 不中断渲染，但记录错误
		}
	}

	blocks, err := a.blocks.ListByPage(page.ID, false)
	if err != nil {
		blocks = nil
	}

	rendered := make([]template.HTML, 0, len(blocks))
	for _, block := range blocks {
		unit, ok := a.renderBlock(c, block)
		if ok {
			rendered = append(rendered, unit)
		}
	}

	a.renderHTML(c, http.StatusOK, "page.html", gin.H{
		"title":          page.Title,
		"page":           page,
		"blocks":         rendered,
		"pageViews":      pageViews,
		"uniqueVisitors": uniqueVisitors,
		"year":           time.Now().Year(),
	})
}

// renderBlock 按区块类型把存储的配置渲染为 HTML 片段。
// 单个区块解析失败只会被跳过，不影响整页渲染。
func (a *API) renderBlock(c *gin.Context, block db.Block) (template.HTML, bool) {
	switch block.Kind {
	case db.BlockKindText:
		cfg, err := parseTextConfig([]byte(block.Config))
		if err != nil {
			c.Error(err)
			return "", false
		}
		if strings.TrimSpace(cfg.Markdown) == "" {
			return "", false
		}
		content, err := renderMarkdown(cfg.Markdown)
		if err != nil {
			c.Error(err)
			return "", false
		}
		return content, true

	case db.BlockKindSocials:
		cfg, err := parseSocialsConfig([]byte(block.Config))
		if err != nil {
			c.Error(err)
			return "", false
		}
		entries := social.Normalize(cfg)
		return social.Render(entries, cfg.IconStyle, a.assets, cfg.Container), true

	case db.BlockKindLinks:
		cfg, err := parseLinksConfig([]byte(block.Config))
		if err != nil {
			c.Error(err)
			return "", false
		}
		if len(cfg.Items) == 0 {
			return "", false
		}
		return renderLinksHTML(cfg), true

	default:
		return "", false
	}
}

// renderLinksHTML 把链接列表渲染为按钮组。
func renderLinksHTML(cfg linksConfigPayload) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="link-buttons">`)
	for _, item := range cfg.Items {
		b.WriteString(fmt.Sprintf(
			`<a class="link-button" href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			htmlstd.EscapeString(item.URL),
			htmlstd.EscapeString(item.Label),
		))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func (a *API) ensureVisitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(id) != "" {
		return id
	}

	visitorID := uuid.NewString()
	secure := c.Request.TLS != nil

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     visitorCookieName,
		Value:    visitorID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   visitorCookieMaxAge,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})

	return visitorID
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
