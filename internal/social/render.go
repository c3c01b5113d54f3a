package social

import (
	"fmt"
	htmlstd "html"
	"html/template"
	"strings"
)

const (
	// iconGapPx 是条目之间的固定间距。
	iconGapPx = 8
	// placeholderSizePx 是占位块的固定边长，与条目尺寸无关。
	placeholderSizePx = 36
	// placeholderBackground 是占位块的中性底色。
	placeholderBackground = "#e2e8f0"
	placeholderTextColor  = "#334155"
)

// AssetTable 按样式与平台索引已编码的图标数据。
// 启动时整表注入，运行期只读。
type AssetTable map[IconStyle]map[Platform]string

// Render 把有序渲染条目组装成一段自包含的 HTML。
//
// 每个条目根据样式查素材表，查不到就退化为文字占位块；整张素材表
// 缺失同样只是全部退化，渲染永不失败。URL 非空的条目外层包新窗口
// 跳转链接。条目键写入 data-social-key，供宿主端做重渲染比对。
func Render(entries []RenderEntry, style IconStyle, table AssetTable, container ContainerStyle) template.HTML {
	assets := table[style]

	var b strings.Builder
	b.WriteString(`<div class="social-icons" style="`)
	b.WriteString(containerStyleValue(container))
	b.WriteString(`">`)

	for _, entry := range entries {
		unit := iconHTML(entry, assets)
		if strings.TrimSpace(entry.URL) != "" {
			unit = fmt.Sprintf(
				`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
				htmlstd.EscapeString(entry.URL),
				unit,
			)
		}
		b.WriteString(fmt.Sprintf(
			`<span class="social-icon-item" data-social-key="%s">%s</span>`,
			htmlstd.EscapeString(entry.SequenceKey),
			unit,
		))
	}

	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func iconHTML(entry RenderEntry, assets map[Platform]string) string {
	if src, ok := assets[entry.Platform]; ok {
		return fmt.Sprintf(
			`<img src="%s" alt="%s" width="%d" height="%d" loading="lazy" />`,
			htmlstd.EscapeString(src),
			htmlstd.EscapeString(string(entry.Platform)),
			entry.Width,
			entry.Height,
		)
	}
	return placeholderHTML(entry.Platform)
}

// placeholderHTML 生成文字占位块：平台名前两个字符的大写形式。
func placeholderHTML(platform Platform) string {
	label := string(platform)
	if len(label) > 2 {
		label = label[:2]
	}
	label = strings.ToUpper(label)

	style := fmt.Sprintf(
		"display:inline-flex;align-items:center;justify-content:center;width:%dpx;height:%dpx;border-radius:50%%;background-color:%s;color:%s;font-size:12px;font-weight:600",
		placeholderSizePx, placeholderSizePx, placeholderBackground, placeholderTextColor,
	)
	return fmt.Sprintf(
		`<span class="social-icon-fallback" style="%s">%s</span>`,
		style,
		htmlstd.EscapeString(label),
	)
}

// containerStyleValue 把容器设置收敛为一条 style 属性值。
// padding 仅在显式给出时输出四边简写，没有就完全省略（而不是 0）。
func containerStyleValue(c ContainerStyle) string {
	rules := []string{
		"display:flex",
		"flex-wrap:wrap",
		fmt.Sprintf("gap:%dpx", iconGapPx),
		"justify-content:" + justifyContent(c.TextAlign),
		"width:100%",
		"box-sizing:border-box",
	}

	if bg := strings.TrimSpace(c.BackgroundColor); bg != "" {
		rules = append(rules, "background-color:"+htmlstd.EscapeString(bg))
	}
	if p := c.Padding; p != nil {
		rules = append(rules, fmt.Sprintf("padding:%dpx %dpx %dpx %dpx", p.Top, p.Right, p.Bottom, p.Left))
	}

	return strings.Join(rules, ";")
}

func justifyContent(textAlign string) string {
	switch strings.TrimSpace(textAlign) {
	case "left":
		return "flex-start"
	case "right":
		return "flex-end"
	default:
		return "center"
	}
}
