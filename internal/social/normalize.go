package social

import "fmt"

// EntryConfig 描述 socials 有序列表中的单个条目。
// 同一平台可以重复出现；指针字段为 nil 表示未显式指定。
type EntryConfig struct {
	Platform Platform
	URL      *string
	Width    *int
	Height   *int
}

// Padding 记录容器四边内边距，单位像素。
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// ContainerStyle 描述图标容器的外观设置。
type ContainerStyle struct {
	BackgroundColor string
	TextAlign       string
	Padding         *Padding
}

// Config 是经过校验的 socials 区块配置。
// Platforms 是旧版的无序平台选择，Socials 是新版的有序覆盖列表，
// 两者可能同时存在，归一化时统一裁决。
type Config struct {
	Platforms []Platform
	IconStyle IconStyle
	IconSize  int
	Socials   []EntryConfig
	Container ContainerStyle
}

// RenderEntry 是归一化之后的渲染单元，生成后不再修改。
// SequenceKey 在同一平台重复出现时仍保证条目身份稳定。
type RenderEntry struct {
	Platform    Platform
	URL         string
	Width       int
	Height      int
	SequenceKey string
}

// Normalize 把松散的区块配置归一化为确定有序的渲染条目。
//
// Socials 列表非空时，输出顺序与长度同列表完全一致，重复平台照单保留，
// 每个条目可覆盖 URL 与尺寸。列表为空或缺失时回退到旧版路径：按固定
// 枚举顺序筛选 Platforms（为空则用默认组合），不应用任何条目级覆盖。
// 空列表与缺失等价是历史兼容约定，不要"修复"。
func Normalize(cfg Config) []RenderEntry {
	size := cfg.IconSize
	if size <= 0 {
		size = FallbackIconSize
	}

	if len(cfg.Socials) > 0 {
		entries := make([]RenderEntry, 0, len(cfg.Socials))
		for i, item := range cfg.Socials {
			entry := RenderEntry{
				Platform:    item.Platform,
				Width:       size,
				Height:      size,
				SequenceKey: fmt.Sprintf("social-%d", i),
			}
			if item.URL != nil {
				entry.URL = *item.URL
			}
			if item.Width != nil {
				entry.Width = *item.Width
			}
			if item.Height != nil {
				entry.Height = *item.Height
			}
			entries = append(entries, entry)
		}
		return entries
	}

	selected := cfg.Platforms
	if len(selected) == 0 {
		selected = DefaultPlatforms()
	}

	chosen := make(map[Platform]bool, len(selected))
	for _, p := range selected {
		chosen[p] = true
	}

	// 旧版路径不会有重复平台，平台名本身即可作为稳定键。
	entries := make([]RenderEntry, 0, len(chosen))
	for _, p := range canonicalOrder {
		if !chosen[p] {
			continue
		}
		entries = append(entries, RenderEntry{
			Platform:    p,
			Width:       size,
			Height:      size,
			SequenceKey: string(p),
		})
	}
	return entries
}
