package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkdeck/internal/service"
	"github.com/linkdeck/internal/social"
)

type blockCreatePayload struct {
	PageID   uint            `json:"pageId" binding:"required"`
	Kind     string          `json:"kind" binding:"required,oneof=text socials links"`
	Config   json.RawMessage `json:"config"`
	Position *int            `json:"position" binding:"omitempty,min=0"`
	Visible  *bool           `json:"visible"`
}

type blockUpdatePayload struct {
	Config   json.RawMessage `json:"config"`
	Position *int            `json:"position" binding:"omitempty,min=0"`
	Visible  *bool           `json:"visible"`
}

type blockReorderPayload struct {
	PageID uint   `json:"pageId" binding:"required"`
	IDs    []uint `json:"ids" binding:"required,min=1"`
}

// GetBlocks 返回某张链接页的全部区块（含隐藏）
func (a *API) GetBlocks(c *gin.Context) {
	pageID := parsePositiveInt(c.Query("pageId"), 0)
	if pageID == 0 {
		respondError(c, http.StatusBadRequest, "缺少 pageId 参数")
		return
	}

	blocks, err := a.blocks.ListByPage(uint(pageID), true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取区块失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// CreateBlock 新建区块，配置按区块类型先行校验
func (a *API) CreateBlock(c *gin.Context) {
	var payload blockCreatePayload
	if !bindJSON(c, &payload, "区块数据格式不正确") {
		return
	}

	if err := validateBlockConfig(payload.Kind, payload.Config); err != nil {
		respondError(c, http.StatusBadRequest, "区块配置不合法")
		return
	}

	if _, err := a.pages.Get(payload.PageID); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "链接页不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建区块失败")
		return
	}

	block, err := a.blocks.Create(service.BlockInput{
		PageID:   payload.PageID,
		Kind:     payload.Kind,
		Config:   string(payload.Config),
		Position: payload.Position,
		Visible:  payload.Visible,
	})
	if err != nil {
		if errors.Is(err, service.ErrBlockInvalidInput) {
			respondError(c, http.StatusBadRequest, "区块数据不完整")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建区块失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// UpdateBlock 更新区块配置，类型不可更换
func (a *API) UpdateBlock(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的区块 ID")
		return
	}

	var payload blockUpdatePayload
	if !bindJSON(c, &payload, "区块数据格式不正确") {
		return
	}

	existing, err := a.blocks.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBlockNotFound) {
			respondError(c, http.StatusNotFound, "区块不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "更新区块失败")
		return
	}

	if err := validateBlockConfig(existing.Kind, payload.Config); err != nil {
		respondError(c, http.StatusBadRequest, "区块配置不合法")
		return
	}

	block, err := a.blocks.Update(id, service.BlockInput{
		Config:   string(payload.Config),
		Position: payload.Position,
		Visible:  payload.Visible,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "更新区块失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"block": block})
}

// DeleteBlock 删除区块
func (a *API) DeleteBlock(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的区块 ID")
		return
	}

	if err := a.blocks.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除区块失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "区块已删除"})
}

// ReorderBlocks 按传入顺序重排区块
func (a *API) ReorderBlocks(c *gin.Context) {
	var payload blockReorderPayload
	if !bindJSON(c, &payload, "排序数据格式不正确") {
		return
	}

	if err := a.blocks.Reorder(payload.PageID, payload.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "保存排序失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "排序已保存"})
}

// PreviewSocialsBlock 即时渲染社交图标区块，供编辑器预览
func (a *API) PreviewSocialsBlock(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "预览数据读取失败")
		return
	}

	cfg, err := parseSocialsConfig(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "区块配置不合法")
		return
	}

	entries := social.Normalize(cfg)
	html := social.Render(entries, cfg.IconStyle, a.assets, cfg.Container)

	c.JSON(http.StatusOK, gin.H{"html": string(html)})
}
