package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/service"
	"github.com/linkdeck/internal/view"
)

type pagePayload struct {
	Slug        string `json:"slug" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Theme       string `json:"theme" binding:"omitempty,oneof=light dark"`
	Published   *bool  `json:"published"`
}

// ShowPageList 渲染后台链接页列表
func (a *API) ShowPageList(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "page_list.html", gin.H{
			"title": "链接页",
			"error": "获取链接页失败",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "page_list.html", gin.H{
		"title": "链接页",
		"pages": pages,
	})
}

// ShowPageEdit 渲染链接页编辑器，新建时 id 为空
func (a *API) ShowPageEdit(c *gin.Context) {
	data := gin.H{
		"title":           "编辑链接页",
		"platformOptions": view.PlatformOptions(),
		"styleOptions":    view.StyleOptions(),
	}

	if raw := c.Param("id"); raw != "" {
		id, err := parseUintParam(c, "id")
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/pages")
			return
		}
		page, err := a.pages.Get(id)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/pages")
			return
		}
		blocks, err := a.blocks.ListByPage(page.ID, true)
		if err != nil {
			blocks = nil
		}
		data["page"] = page
		data["blocks"] = blocks
	}

	a.renderHTML(c, http.StatusOK, "page_edit.html", data)
}

// GetPages 返回全部链接页及其统计数据
func (a *API) GetPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取链接页失败")
		return
	}

	ids := make([]uint, 0, len(pages))
	for _, page := range pages {
		ids = append(ids, page.ID)
	}
	stats, err := a.analytics.PageStatsMap(ids)
	if err != nil {
		c.Error(err)
		stats = nil
	}

	items := make([]gin.H, 0, len(pages))
	for _, page := range pages {
		item := gin.H{
			"id":          page.ID,
			"slug":        page.Slug,
			"title":       page.Title,
			"description": page.Description,
			"theme":       page.Theme,
			"published":   page.Published,
		}
		if stat, ok := stats[page.ID]; ok {
			item["pageViews"] = stat.PageViews
			item["uniqueVisitors"] = stat.UniqueVisitors
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"pages": items})
}

// GetPage 返回单张链接页
func (a *API) GetPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的链接页 ID")
		return
	}

	page, err := a.pages.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "链接页不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取链接页失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// CreatePage 新建链接页
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "链接页数据格式不正确") {
		return
	}

	page, err := a.pages.Create(service.PageInput{
		Slug:        payload.Slug,
		Title:       payload.Title,
		Description: payload.Description,
		Theme:       payload.Theme,
		Published:   payload.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageSlugTaken):
			respondError(c, http.StatusConflict, "该 slug 已被占用")
		case errors.Is(err, service.ErrPageInvalidInput):
			respondError(c, http.StatusBadRequest, "请填写完整的链接页信息")
		default:
			respondError(c, http.StatusInternalServerError, "创建链接页失败")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// UpdatePage 更新链接页
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的链接页 ID")
		return
	}

	var payload pagePayload
	if !bindJSON(c, &payload, "链接页数据格式不正确") {
		return
	}

	page, err := a.pages.Update(id, service.PageInput{
		Slug:        payload.Slug,
		Title:       payload.Title,
		Description: payload.Description,
		Theme:       payload.Theme,
		Published:   payload.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			respondError(c, http.StatusNotFound, "链接页不存在")
		case errors.Is(err, service.ErrPageSlugTaken):
			respondError(c, http.StatusConflict, "该 slug 已被占用")
		case errors.Is(err, service.ErrPageInvalidInput):
			respondError(c, http.StatusBadRequest, "请填写完整的链接页信息")
		default:
			respondError(c, http.StatusInternalServerError, "更新链接页失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage 删除链接页及其区块
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的链接页 ID")
		return
	}

	if err := a.pages.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除链接页失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "链接页已删除"})
}
