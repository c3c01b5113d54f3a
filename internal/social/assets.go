package social

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// brandColors 是各平台的官方主色，用于彩色系样式。
var brandColors = map[Platform]string{
	PlatformFacebook:  "#1877F2",
	PlatformInstagram: "#E4405F",
	PlatformX:         "#000000",
	PlatformTikTok:    "#010101",
	PlatformYouTube:   "#FF0000",
	PlatformWhatsApp:  "#25D366",
	PlatformThreads:   "#000000",
	PlatformLinkedIn:  "#0A66C2",
	PlatformDiscord:   "#5865F2",
	PlatformSnapchat:  "#FFFC00",
	PlatformTelegram:  "#26A5E4",
	PlatformReddit:    "#FF4500",
	PlatformTwitch:    "#9146FF",
}

const (
	assetDarkTone  = "#0F172A"
	assetLightTone = "#F8FAFC"
)

// DefaultAssetTable 构建内置的九张素材表。
// 每个条目是一段已编码的 SVG data URI，渲染端只把它当不透明字符串。
func DefaultAssetTable() AssetTable {
	table := make(AssetTable, len(Styles()))
	for _, style := range Styles() {
		assets := make(map[Platform]string, len(canonicalOrder))
		for _, platform := range canonicalOrder {
			assets[platform] = assetDataURI(style, platform)
		}
		table[style] = assets
	}
	return table
}

// assetDataURI 按样式族生成单个平台的图标数据。
func assetDataURI(style IconStyle, platform Platform) string {
	monogram := strings.ToUpper(string(platform)[:1])
	brand := brandColors[platform]

	var shape, textColor string
	switch style {
	case StyleGlyphDark:
		shape = ""
		textColor = assetDarkTone
	case StyleGlyphLight:
		shape = ""
		textColor = assetLightTone
	case StyleOriginColorful:
		shape = fmt.Sprintf(`<circle cx="24" cy="24" r="22" fill="%s"/>`, brand)
		textColor = contrastTone(platform)
	case StyleCircleDark:
		shape = fmt.Sprintf(`<circle cx="24" cy="24" r="22" fill="%s"/>`, assetDarkTone)
		textColor = assetLightTone
	case StyleCircleLight:
		shape = fmt.Sprintf(`<circle cx="24" cy="24" r="22" fill="%s"/>`, assetLightTone)
		textColor = assetDarkTone
	case StyleOutlineColorful:
		shape = fmt.Sprintf(`<circle cx="24" cy="24" r="21" fill="none" stroke="%s" stroke-width="2"/>`, brand)
		textColor = brand
	case StyleOutlineDark:
		shape = fmt.Sprintf(`<circle cx="24" cy="24" r="21" fill="none" stroke="%s" stroke-width="2"/>`, assetDarkTone)
		textColor = assetDarkTone
	case StyleOutlineLight:
		shape = fmt.Sprintf(`<circle cx="24" cy="24" r="21" fill="none" stroke="%s" stroke-width="2"/>`, assetLightTone)
		textColor = assetLightTone
	case StyleStandard:
		shape = fmt.Sprintf(`<rect x="2" y="2" width="44" height="44" rx="10" fill="%s"/>`, brand)
		textColor = contrastTone(platform)
	default:
		shape = ""
		textColor = assetDarkTone
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48">%s<text x="24" y="31" font-family="Arial, sans-serif" font-size="20" font-weight="700" text-anchor="middle" fill="%s">%s</text></svg>`,
		shape, textColor, monogram,
	)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// contrastTone 在品牌底色上挑可读的前景色。
// 只有 Snapchat 的亮黄需要深色文字，其余品牌色都够深。
func contrastTone(platform Platform) string {
	if platform == PlatformSnapchat {
		return assetDarkTone
	}
	return assetLightTone
}
