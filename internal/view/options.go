package view

import "github.com/linkdeck/internal/social"

// PlatformOption describes a selectable social platform for the block editor.
type PlatformOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// StyleOption describes a selectable icon style for the block editor.
type StyleOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var platformLabels = map[social.Platform]string{
	social.PlatformFacebook:  "Facebook",
	social.PlatformInstagram: "Instagram",
	social.PlatformX:         "X / Twitter",
	social.PlatformTikTok:    "TikTok",
	social.PlatformYouTube:   "YouTube",
	social.PlatformWhatsApp:  "WhatsApp",
	social.PlatformThreads:   "Threads",
	social.PlatformLinkedIn:  "LinkedIn",
	social.PlatformDiscord:   "Discord",
	social.PlatformSnapchat:  "Snapchat",
	social.PlatformTelegram:  "Telegram",
	social.PlatformReddit:    "Reddit",
	social.PlatformTwitch:    "Twitch",
}

var styleLabels = map[social.IconStyle]string{
	social.StyleGlyphDark:       "字形 · 深色",
	social.StyleGlyphLight:      "字形 · 浅色",
	social.StyleOriginColorful:  "圆形 · 品牌色",
	social.StyleCircleDark:      "圆形 · 深色",
	social.StyleCircleLight:     "圆形 · 浅色",
	social.StyleOutlineColorful: "描边 · 品牌色",
	social.StyleOutlineDark:     "描边 · 深色",
	social.StyleOutlineLight:    "描边 · 浅色",
	social.StyleStandard:        "方形 · 标准",
}

// PlatformOptions exposes the selectable platform metadata for admin UI.
// 顺序与核心包的固定枚举顺序一致。
func PlatformOptions() []PlatformOption {
	options := make([]PlatformOption, 0, len(platformLabels))
	for _, platform := range social.Platforms() {
		options = append(options, PlatformOption{
			Key:   string(platform),
			Label: platformLabels[platform],
		})
	}
	return options
}

// StyleOptions exposes the selectable icon style metadata for admin UI.
func StyleOptions() []StyleOption {
	options := make([]StyleOption, 0, len(styleLabels))
	for _, style := range social.Styles() {
		options = append(options, StyleOption{
			Key:   string(style),
			Label: styleLabels[style],
		})
	}
	return options
}
