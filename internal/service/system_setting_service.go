package service

import (
	"fmt"
	"strings"

	"github.com/linkdeck/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings 描述后台可配置的站点信息。
type SiteSettings struct {
	SiteName    string
	SiteLogoURL string
	FooterText  string
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	SiteName    string
	SiteLogoURL string
	FooterText  string
}

// SystemSettingService 提供站点设置的读取与更新能力。
type SystemSettingService struct {
	db *gorm.DB
}

// NewSystemSettingService 构造 SystemSettingService。
func NewSystemSettingService(gdb *gorm.DB) *SystemSettingService {
	return &SystemSettingService{db: gdb}
}

// GetSettings 读取全部站点设置，缺失的键返回零值。
func (s *SystemSettingService) GetSettings() (SiteSettings, error) {
	var rows []db.SystemSetting
	if err := s.db.Find(&rows).Error; err != nil {
		return SiteSettings{}, fmt.Errorf("load settings: %w", err)
	}

	var settings SiteSettings
	for _, row := range rows {
		value := strings.TrimSpace(row.Value)
		switch row.Key {
		case db.SettingKeySiteName:
			settings.SiteName = value
		case db.SettingKeySiteLogoURL:
			settings.SiteLogoURL = value
		case db.SettingKeyFooterText:
			settings.FooterText = value
		}
	}

	return settings, nil
}

// UpdateSettings 覆盖保存站点设置。
func (s *SystemSettingService) UpdateSettings(input SiteSettingsInput) error {
	values := map[string]string{
		db.SettingKeySiteName:    strings.TrimSpace(input.SiteName),
		db.SettingKeySiteLogoURL: strings.TrimSpace(input.SiteLogoURL),
		db.SettingKeyFooterText:  strings.TrimSpace(input.FooterText),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			setting := db.SystemSetting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error; err != nil {
				return fmt.Errorf("save setting %s: %w", key, err)
			}
		}
		return nil
	})
}
