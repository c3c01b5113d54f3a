package handler

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/linkdeck/internal/db"
	"github.com/linkdeck/internal/social"
)

// 区块配置以 JSON 存储，写入前在这里完成结构校验。
// 平台与样式的闭集约束交给 binding 校验器（oneof），核心包默认入参已合法。

type socialsPaddingPayload struct {
	Top    int `json:"top" binding:"min=0"`
	Right  int `json:"right" binding:"min=0"`
	Bottom int `json:"bottom" binding:"min=0"`
	Left   int `json:"left" binding:"min=0"`
}

type socialsEntryPayload struct {
	Platform string  `json:"platform" binding:"required,oneof=facebook instagram x tiktok youtube whatsapp threads linkedin discord snapchat telegram reddit twitch"`
	URL      *string `json:"url"`
	Width    *int    `json:"width" binding:"omitempty,min=1,max=512"`
	Height   *int    `json:"height" binding:"omitempty,min=1,max=512"`
}

type socialsContainerPayload struct {
	BackgroundColor string                 `json:"backgroundColor"`
	TextAlign       string                 `json:"textAlign" binding:"omitempty,oneof=left center right"`
	Padding         *socialsPaddingPayload `json:"padding"`
}

type socialsConfigPayload struct {
	Platforms []string                 `json:"platforms" binding:"omitempty,dive,oneof=facebook instagram x tiktok youtube whatsapp threads linkedin discord snapchat telegram reddit twitch"`
	IconStyle string                   `json:"iconStyle" binding:"omitempty,oneof=glyph-dark glyph-light origin-colorful circle-dark circle-light outline-colorful outline-dark outline-light standard"`
	IconSize  *int                     `json:"iconSize" binding:"omitempty,min=8,max=512"`
	Socials   []socialsEntryPayload    `json:"socials" binding:"omitempty,dive"`
	Container *socialsContainerPayload `json:"containerStyle"`
}

type textConfigPayload struct {
	Markdown string `json:"markdown"`
}

type linkItemPayload struct {
	Label string `json:"label" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

type linksConfigPayload struct {
	Items []linkItemPayload `json:"items" binding:"omitempty,dive"`
}

// parseSocialsConfig 把存储的 JSON 配置解析并校验为核心包的 Config。
// 新旧两种配置形态（无序 platforms / 有序 socials）在这里只做搬运，
// 取舍统一交给 social.Normalize。
func parseSocialsConfig(raw []byte) (social.Config, error) {
	var payload socialsConfigPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return social.Config{}, fmt.Errorf("decode socials config: %w", err)
		}
		if err := binding.Validator.ValidateStruct(&payload); err != nil {
			return social.Config{}, fmt.Errorf("validate socials config: %w", err)
		}
	}

	cfg := social.Config{
		IconStyle: social.DefaultIconStyle,
		// 配置层缺省尺寸，与渲染层的 36 兜底来自不同历史路径。
		IconSize: social.SchemaDefaultIconSize,
	}
	if payload.IconStyle != "" {
		cfg.IconStyle = social.IconStyle(payload.IconStyle)
	}
	if payload.IconSize != nil {
		cfg.IconSize = *payload.IconSize
	}

	for _, name := range payload.Platforms {
		cfg.Platforms = append(cfg.Platforms, social.Platform(name))
	}
	for _, entry := range payload.Socials {
		cfg.Socials = append(cfg.Socials, social.EntryConfig{
			Platform: social.Platform(entry.Platform),
			URL:      entry.URL,
			Width:    entry.Width,
			Height:   entry.Height,
		})
	}

	if container := payload.Container; container != nil {
		cfg.Container = social.ContainerStyle{
			BackgroundColor: container.BackgroundColor,
			TextAlign:       container.TextAlign,
		}
		if p := container.Padding; p != nil {
			cfg.Container.Padding = &social.Padding{
				Top:    p.Top,
				Right:  p.Right,
				Bottom: p.Bottom,
				Left:   p.Left,
			}
		}
	}

	return cfg, nil
}

func parseTextConfig(raw []byte) (textConfigPayload, error) {
	var payload textConfigPayload
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("decode text config: %w", err)
	}
	return payload, nil
}

func parseLinksConfig(raw []byte) (linksConfigPayload, error) {
	var payload linksConfigPayload
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("decode links config: %w", err)
	}
	if err := binding.Validator.ValidateStruct(&payload); err != nil {
		return payload, fmt.Errorf("validate links config: %w", err)
	}
	return payload, nil
}

// validateBlockConfig 按区块类型校验配置，入库前统一走这里。
func validateBlockConfig(kind string, raw []byte) error {
	switch kind {
	case db.BlockKindSocials:
		_, err := parseSocialsConfig(raw)
		return err
	case db.BlockKindText:
		_, err := parseTextConfig(raw)
		return err
	case db.BlockKindLinks:
		_, err := parseLinksConfig(raw)
		return err
	default:
		return fmt.Errorf("unknown block kind %q", kind)
	}
}
