package social

import (
	"strings"
	"testing"
)

func TestDefaultAssetTableCoversAllStylesAndPlatforms(t *testing.T) {
	t.Parallel()

	table := DefaultAssetTable()

	if len(table) != len(Styles()) {
		t.Fatalf("expected %d style tables, got %d", len(Styles()), len(table))
	}

	for _, style := range Styles() {
		assets, ok := table[style]
		if !ok {
			t.Fatalf("missing asset table for style %s", style)
		}
		for _, platform := range Platforms() {
			src, ok := assets[platform]
			if !ok {
				t.Fatalf("missing asset for %s/%s", style, platform)
			}
			if !strings.HasPrefix(src, "data:image/svg+xml;base64,") {
				t.Fatalf("expected encoded data uri for %s/%s, got %q", style, platform, src)
			}
		}
	}
}

func TestDefaultAssetTableIsDeterministic(t *testing.T) {
	t.Parallel()

	first := DefaultAssetTable()
	second := DefaultAssetTable()

	for _, style := range Styles() {
		for _, platform := range Platforms() {
			if first[style][platform] != second[style][platform] {
				t.Fatalf("asset for %s/%s changed between builds", style, platform)
			}
		}
	}
}

func TestKnownPlatformAndStyle(t *testing.T) {
	t.Parallel()

	if !KnownPlatform("facebook") || KnownPlatform("myspace") {
		t.Fatal("platform closed-set check failed")
	}
	if !KnownStyle("origin-colorful") || KnownStyle("neon") {
		t.Fatal("style closed-set check failed")
	}
	if DefaultIconStyle != StyleOriginColorful {
		t.Fatalf("unexpected default style %s", DefaultIconStyle)
	}
}
