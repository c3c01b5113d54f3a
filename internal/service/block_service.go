package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linkdeck/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrBlockNotFound 在指定的区块不存在时返回
	ErrBlockNotFound = errors.New("block not found")
	// ErrBlockInvalidInput 在输入数据不完整时返回
	ErrBlockInvalidInput = errors.New("invalid block input")
)

// BlockService 负责维护链接页上的内容区块
// 提供排序、增删改查能力，与 handler 解耦
type BlockService struct {
	db *gorm.DB
}

// NewBlockService 构造 BlockService
func NewBlockService(gdb *gorm.DB) *BlockService {
	return &BlockService{db: gdb}
}

// BlockInput 描述创建或更新区块时可设置的字段
// Position/Visible 使用指针判断是否显式传入
type BlockInput struct {
	PageID   uint
	Kind     string
	Config   string
	Position *int
	Visible  *bool
}

// ListByPage 返回某张链接页的区块集合，默认按排序值升序
// 如果 includeHidden 为 false，则过滤掉 Visible=false 的条目
func (s *BlockService) ListByPage(pageID uint, includeHidden bool) ([]db.Block, error) {
	query := s.db.Model(&db.Block{}).Where("page_id = ?", pageID)
	if !includeHidden {
		query = query.Where("visible = ?", true)
	}

	var items []db.Block
	if err := query.Order("position ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list page blocks: %w", err)
	}

	return items, nil
}

// Get 根据主键获取区块
func (s *BlockService) Get(id uint) (*db.Block, error) {
	var item db.Block
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("get block: %w", err)
	}
	return &item, nil
}

// Create 新建区块，未指定排序时自动追加到末尾
func (s *BlockService) Create(input BlockInput) (*db.Block, error) {
	if err := validateBlockInput(input); err != nil {
		return nil, err
	}

	position, err := s.resolvePosition(input.PageID, input.Position)
	if err != nil {
		return nil, err
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	block := db.Block{
		PageID:   input.PageID,
		Kind:     strings.TrimSpace(input.Kind),
		Config:   input.Config,
		Position: position,
		Visible:  visible,
	}

	if err := s.db.Create(&block).Error; err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}

	return &block, nil
}

// Update 更新指定区块，区块类型创建后不可更换
func (s *BlockService) Update(id uint, input BlockInput) (*db.Block, error) {
	var block db.Block
	if err := s.db.First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("find block: %w", err)
	}

	block.Config = input.Config
	if input.Position != nil {
		block.Position = *input.Position
	}
	if input.Visible != nil {
		block.Visible = *input.Visible
	}

	if err := s.db.Save(&block).Error; err != nil {
		return nil, fmt.Errorf("update block: %w", err)
	}

	return &block, nil
}

// Delete 删除指定区块
func (s *BlockService) Delete(id uint) error {
	if err := s.db.Delete(&db.Block{}, id).Error; err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

// Reorder 按给定顺序重排排序字段
// 传入的 IDs 会被依次赋值 0,1,2...，未包含的条目保持原排序
func (s *BlockService) Reorder(pageID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&db.Block{}).
				Where("id = ? AND page_id = ?", id, pageID).
				Update("position", index).Error; err != nil {
				return fmt.Errorf("reorder blocks: %w", err)
			}
		}
		return nil
	})
}

func (s *BlockService) resolvePosition(pageID uint, positionPtr *int) (int, error) {
	if positionPtr != nil {
		return *positionPtr, nil
	}

	var maxPosition int
	if err := s.db.Model(&db.Block{}).
		Where("page_id = ?", pageID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPosition).Error; err != nil {
		return 0, fmt.Errorf("resolve block position: %w", err)
	}

	return maxPosition + 1, nil
}

func validateBlockInput(input BlockInput) error {
	if input.PageID == 0 {
		return fmt.Errorf("%w: page id is required", ErrBlockInvalidInput)
	}
	if !db.KnownBlockKind(strings.TrimSpace(input.Kind)) {
		return fmt.Errorf("%w: unknown block kind", ErrBlockInvalidInput)
	}
	return nil
}
