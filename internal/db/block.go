package db

import "gorm.io/gorm"

const (
	// BlockKindText 是 Markdown 文本区块。
	BlockKindText = "text"
	// BlockKindSocials 是社交图标区块。
	BlockKindSocials = "socials"
	// BlockKindLinks 是按钮式链接列表区块。
	BlockKindLinks = "links"
)

// Block 是链接页上的一个内容区块。
// Config 保存区块各自的 JSON 配置，结构由区块类型决定，
// 写入前经过各自的请求校验，这里不做二次解释。
// Position 值越小越靠前。
type Block struct {
	gorm.Model
	PageID   uint   `gorm:"index;not null"`
	Kind     string `gorm:"size:30;not null"`
	Config   string `gorm:"type:text"`
	Position int    `gorm:"default:0"`
	Visible  bool
}

// TableName 返回自定义表名，避免冲突
func (Block) TableName() string {
	return "page_blocks"
}

// KnownBlockKind 判断区块类型是否受支持。
func KnownBlockKind(kind string) bool {
	switch kind {
	case BlockKindText, BlockKindSocials, BlockKindLinks:
		return true
	default:
		return false
	}
}
