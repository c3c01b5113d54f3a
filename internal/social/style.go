package social

// IconStyle 标识图标的视觉风格，决定查哪张素材表。
// 键名会持久化到区块配置里，保持稳定。
type IconStyle string

const (
	StyleGlyphDark       IconStyle = "glyph-dark"
	StyleGlyphLight      IconStyle = "glyph-light"
	StyleCircleDark      IconStyle = "circle-dark"
	StyleCircleLight     IconStyle = "circle-light"
	StyleOutlineColorful IconStyle = "outline-colorful"
	StyleOutlineDark     IconStyle = "outline-dark"
	StyleOutlineLight    IconStyle = "outline-light"
	StyleStandard        IconStyle = "standard"

	// StyleOriginColorful 即「圆形动态彩色」样式。
	// 键名沿用早期版本的 origin-colorful，改名会破坏存量配置。
	StyleOriginColorful IconStyle = "origin-colorful"
)

// DefaultIconStyle 是未指定样式时的默认值。
const DefaultIconStyle = StyleOriginColorful

const (
	// SchemaDefaultIconSize 是配置校验层在字段缺失时填入的默认尺寸。
	SchemaDefaultIconSize = 24
	// FallbackIconSize 是渲染阶段尺寸仍未确定时的兜底值。
	// 与 SchemaDefaultIconSize 来自不同的历史路径，两者都不能改。
	FallbackIconSize = 36
)

// Styles 返回全部已知样式。
func Styles() []IconStyle {
	return []IconStyle{
		StyleGlyphDark,
		StyleGlyphLight,
		StyleOriginColorful,
		StyleCircleDark,
		StyleCircleLight,
		StyleOutlineColorful,
		StyleOutlineDark,
		StyleOutlineLight,
		StyleStandard,
	}
}

// KnownStyle 判断给定值是否属于样式闭集。
func KnownStyle(value string) bool {
	for _, s := range Styles() {
		if string(s) == value {
			return true
		}
	}
	return false
}
