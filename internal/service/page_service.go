package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/linkdeck/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrPageNotFound 在指定的链接页不存在时返回
	ErrPageNotFound = errors.New("page not found")
	// ErrPageInvalidInput 在输入数据不完整时返回
	ErrPageInvalidInput = errors.New("invalid page input")
	// ErrPageSlugTaken 在 slug 已被其他页面占用时返回
	ErrPageSlugTaken = errors.New("page slug already taken")
)

var slugCleanPattern = regexp.MustCompile(`[^a-z0-9-]+`)

// PageService 负责链接页的增删改查
type PageService struct {
	db *gorm.DB
}

// NewPageService 构造 PageService
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// PageInput 描述创建或更新链接页时可设置的字段
// Published 使用指针判断是否显式传入
type PageInput struct {
	Slug        string
	Title       string
	Description string
	Theme       string
	Published   *bool
}

// List 返回全部链接页，按创建时间倒序
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("created_at DESC").Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

// Get 根据主键获取链接页
func (s *PageService) Get(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	return &page, nil
}

// GetBySlug 根据 slug 获取链接页
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", NormalizeSlug(slug)).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get page by slug: %w", err)
	}
	return &page, nil
}

// Create 新建链接页，slug 统一归一化后检查唯一性
func (s *PageService) Create(input PageInput) (*db.Page, error) {
	slug, err := s.validateInput(input, 0)
	if err != nil {
		return nil, err
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	theme := strings.TrimSpace(input.Theme)
	if theme == "" {
		theme = "light"
	}

	page := db.Page{
		Slug:        slug,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Theme:       theme,
		Published:   published,
	}

	if err := s.db.Create(&page).Error; err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &page, nil
}

// Update 更新指定链接页
func (s *PageService) Update(id uint, input PageInput) (*db.Page, error) {
	slug, err := s.validateInput(input, id)
	if err != nil {
		return nil, err
	}

	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("find page: %w", err)
	}

	page.Slug = slug
	page.Title = strings.TrimSpace(input.Title)
	page.Description = strings.TrimSpace(input.Description)
	if theme := strings.TrimSpace(input.Theme); theme != "" {
		page.Theme = theme
	}
	if input.Published != nil {
		page.Published = *input.Published
	}

	if err := s.db.Save(&page).Error; err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}

	return &page, nil
}

// Delete 删除链接页及其所有区块
func (s *PageService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", id).Delete(&db.Block{}).Error; err != nil {
			return fmt.Errorf("delete page blocks: %w", err)
		}
		if err := tx.Delete(&db.Page{}, id).Error; err != nil {
			return fmt.Errorf("delete page: %w", err)
		}
		return nil
	})
}

func (s *PageService) validateInput(input PageInput, selfID uint) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrPageInvalidInput)
	}

	slug := NormalizeSlug(input.Slug)
	if slug == "" {
		return "", fmt.Errorf("%w: slug is required", ErrPageInvalidInput)
	}

	var count int64
	query := s.db.Model(&db.Page{}).Where("slug = ?", slug)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if count > 0 {
		return "", ErrPageSlugTaken
	}

	return slug, nil
}

// NormalizeSlug 把任意输入压成小写连字符形式的 slug
func NormalizeSlug(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugCleanPattern.ReplaceAllString(slug, "")
	return strings.Trim(slug, "-")
}
