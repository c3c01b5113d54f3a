package service

import (
	"errors"
	"time"

	"github.com/linkdeck/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultViewDedupWindow = 30 * time.Minute

// AnalyticsService 负责处理链接页浏览相关的统计逻辑。
type AnalyticsService struct {
	db          *gorm.DB
	dedupWindow time.Duration
}

// NewAnalyticsService 创建 AnalyticsService，默认去重窗口为 30 分钟。
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb, dedupWindow: defaultViewDedupWindow}
}

// WithDedupWindow 允许在测试或特定场景下调整去重窗口。
func (s *AnalyticsService) WithDedupWindow(d time.Duration) *AnalyticsService {
	if d <= 0 {
		return s
	}
	s.dedupWindow = d
	return s
}

// RecordPageView 记录访客对链接页的浏览，并返回最新的统计数据。
// 同一访客在去重窗口内的重复访问不会累计 PV。
func (s *AnalyticsService) RecordPageView(pageID uint, visitorID string, now time.Time) (*db.PageStatistic, error) {
	if visitorID == "" || pageID == 0 {
		return nil, errors.New("invalid visitor or page id")
	}

	var stats db.PageStatistic

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		visit := db.PageVisit{
			PageID:        pageID,
			VisitorID:     visitorID,
			LastViewedAt:  now,
			LastCountedAt: now,
		}
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page_id"}, {Name: "visitor_id"}},
			DoNothing: true,
		}).Create(&visit)
		if insert.Error != nil {
			return insert.Error
		}

		isNewVisitor := insert.RowsAffected == 1
		countView := true

		if !isNewVisitor {
			if err := tx.Where("page_id = ? AND visitor_id = ?", pageID, visitorID).
				First(&visit).Error; err != nil {
				return err
			}
			countView = now.Sub(visit.LastCountedAt) >= s.dedupWindow
			visit.LastViewedAt = now
			if countView {
				visit.LastCountedAt = now
			}
			if err := tx.Save(&visit).Error; err != nil {
				return err
			}
		}

		statsResult := tx.Where("page_id = ?", pageID).First(&stats)
		switch {
		case errors.Is(statsResult.Error, gorm.ErrRecordNotFound):
			stats = db.PageStatistic{PageID: pageID}
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		case statsResult.Error != nil:
			return statsResult.Error
		}

		if countView {
			stats.PageViews++
		}
		if isNewVisitor {
			stats.UniqueVisitors++
		}
		stats.LastViewedAt = now

		if err := tx.Save(&stats).Error; err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return &stats, nil
}

// PageStatsMap 返回指定链接页的统计数据，未找到的页面不会出现在结果中。
func (s *AnalyticsService) PageStatsMap(pageIDs []uint) (map[uint]*db.PageStatistic, error) {
	result := make(map[uint]*db.PageStatistic, len(pageIDs))
	if len(pageIDs) == 0 {
		return result, nil
	}

	var stats []db.PageStatistic
	if err := s.db.Where("page_id IN ?", pageIDs).Find(&stats).Error; err != nil {
		return nil, err
	}

	for i := range stats {
		stat := stats[i]
		copy := stat
		result[stat.PageID] = &copy
	}

	return result, nil
}
