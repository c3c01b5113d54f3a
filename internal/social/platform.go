package social

// Platform 标识一个受支持的社交平台。
// 取值为固定闭集，不允许用户扩展。
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformX         Platform = "x"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformThreads   Platform = "threads"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformDiscord   Platform = "discord"
	PlatformSnapchat  Platform = "snapchat"
	PlatformTelegram  Platform = "telegram"
	PlatformReddit    Platform = "reddit"
	PlatformTwitch    Platform = "twitch"
)

// canonicalOrder 是旧版 platforms 配置下图标的固定展示顺序。
// 旧版入参只做筛选，顺序始终以这里为准。
var canonicalOrder = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformX,
	PlatformTikTok,
	PlatformYouTube,
	PlatformWhatsApp,
	PlatformThreads,
	PlatformLinkedIn,
	PlatformDiscord,
	PlatformSnapchat,
	PlatformTelegram,
	PlatformReddit,
	PlatformTwitch,
}

// Platforms 返回全部已知平台，按固定顺序。
func Platforms() []Platform {
	out := make([]Platform, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// DefaultPlatforms 返回未做任何选择时的默认平台组合。
func DefaultPlatforms() []Platform {
	return []Platform{PlatformFacebook, PlatformInstagram, PlatformX}
}

// KnownPlatform 判断给定值是否属于平台闭集。
// 校验层用它拦截非法值，核心逻辑默认入参已合法。
func KnownPlatform(value string) bool {
	for _, p := range canonicalOrder {
		if string(p) == value {
			return true
		}
	}
	return false
}
