package db

import "gorm.io/gorm"

// Page 表示一张对外展示的链接页。
// Slug 是公开访问路径，Theme 决定前台配色。
type Page struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string
	Theme       string `gorm:"size:30;default:light"`
	Published   bool   `gorm:"default:true;index"`

	Blocks []Block `gorm:"foreignKey:PageID"`
}
