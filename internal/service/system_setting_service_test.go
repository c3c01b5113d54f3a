package service

import (
	"testing"

	"github.com/linkdeck/internal/db"
)

func TestSiteSettingsRoundTrip(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSystemSettingService(db.DB)

	empty, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if empty.SiteName != "" || empty.FooterText != "" {
		t.Fatalf("expected zero values before save, got %+v", empty)
	}

	input := SiteSettingsInput{
		SiteName:    "LinkDeck",
		SiteLogoURL: "/static/logo.svg",
		FooterText:  "保持连接",
	}
	if err := svc.UpdateSettings(input); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	saved, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if saved.SiteName != "LinkDeck" || saved.SiteLogoURL != "/static/logo.svg" || saved.FooterText != "保持连接" {
		t.Fatalf("unexpected settings after save: %+v", saved)
	}
}

func TestSiteSettingsOverwrite(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewSystemSettingService(db.DB)

	if err := svc.UpdateSettings(SiteSettingsInput{SiteName: "旧名字"}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}
	if err := svc.UpdateSettings(SiteSettingsInput{SiteName: "新名字"}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	saved, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if saved.SiteName != "新名字" {
		t.Fatalf("expected overwritten site name, got %q", saved.SiteName)
	}

	var count int64
	if err := db.DB.Model(&db.SystemSetting{}).Where("key = ?", db.SettingKeySiteName).Count(&count).Error; err != nil {
		t.Fatalf("failed to count settings: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected upsert to keep a single row, got %d", count)
	}
}
