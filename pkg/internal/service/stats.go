package service

import (
	"context"
	"time"

	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/types"
)

// StatsService 提供统计计算（基于 DB 的 images 表与磁盘扫描）.
type StatsService struct{ *ImageService }

func NewStatsService(c context.Context) *StatsService { return &StatsService{NewImageService(c)} }

const (
	hoursPerDay      = 24
	defaultTrendDays = 14
	maxTrendDays     = 60
	oneMB            = 1 << 20
	tenMB            = 10 << 20
	hundredMB        = 100 << 20
)

// ImagesSummary 统计活跃/回收的图片总量与大小.
func (s *StatsService) ImagesSummary(ctx context.Context) (types.StatsImagesSummary, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	// 使用一次聚合查询计算活跃/回收站的数量与大小，避免重复 SQL 与多次往返
	var agg struct {
		ActiveCount  int64 `gorm:"column:active_count"`
		TrashedCount int64 `gorm:"column:trashed_count"`
		ActiveSize   int64 `gorm:"column:active_size"`
		TrashedSize  int64 `gorm:"column:trashed_size"`
	}

	// SQLite/MySQL 兼容处理：使用 COALESCE 避免 NULL
	selectExpr :=
		"COALESCE(SUM(CASE WHEN deleted_at IS NULL THEN 1 ELSE 0 END),0) AS active_count, " +
			"COALESCE(SUM(CASE WHEN deleted_at IS NOT NULL THEN 1 ELSE 0 END),0) AS trashed_count, " +
			"COALESCE(SUM(CASE WHEN deleted_at IS NULL THEN size ELSE 0 END),0) AS active_size, " +
			"COALESCE(SUM(CASE WHEN deleted_at IS NOT NULL THEN size ELSE 0 END),0) AS trashed_size"

	if err := dbx.Model(&model.Image{}).
		Unscoped(). // 包含软删除数据
		Select(selectExpr).
		Scan(&agg).Error; err != nil {
		return types.StatsImagesSummary{}, err
	}

	return types.StatsImagesSummary{
		TotalImages:   int(agg.ActiveCount + agg.TrashedCount),
		ActiveImages:  int(agg.ActiveCount),
		TrashedImages: int(agg.TrashedCount),
		TotalSize:     agg.ActiveSize + agg.TrashedSize,
		ActiveSize:    agg.ActiveSize,
		TrashedSize:   agg.TrashedSize,
	}, nil
}

// ImagesByType 按 content_type 一级类型（如 image、video、application）聚合活跃图片.
func (s *StatsService) ImagesByType(ctx context.Context) ([]types.StatsTypeItem, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	rows := []struct {
		CT  string
		Cnt int64
		Sum int64
	}{}
	// SQLite/MySQL 兼容处理：取 content_type 的前缀（到 '/' 之前），为空归类 unknown
	err := dbx.Model(&model.Image{}).
		Select("CASE WHEN content_type LIKE '%/%' THEN " +
			"SUBSTR(content_type,1,INSTR(content_type,'/')-1) " +
			"ELSE COALESCE(NULLIF(content_type,''),'unknown') END as ct, " +
			"COUNT(*) as cnt, COALESCE(SUM(size),0) as sum").
		Group("ct").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]types.StatsTypeItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.StatsTypeItem{Type: r.CT, Count: int(r.Cnt), Size: r.Sum})
	}

	return out, nil
}

// ImagesBySizeBuckets 按大小分桶统计活跃图片.
func (s *StatsService) ImagesBySizeBuckets(ctx context.Context) ([]types.StatsSizeBucket, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	buckets := []types.StatsSizeBucket{
		{Name: "0-1MB", Min: 0, Max: oneMB},
		{Name: "1-10MB", Min: oneMB, Max: tenMB},
		{Name: "10-100MB", Min: tenMB, Max: hundredMB},
		{Name: ">=100MB", Min: hundredMB, Max: -1},
	}

	for i := range buckets {
		q := dbx.Model(&model.Image{}).Where("size >= ?", buckets[i].Min)
		if buckets[i].Max > 0 {
			q = q.Where("size < ?", buckets[i].Max)
		}

		var (
			cnt int64
			sum struct{ Sum int64 }
		)

		if err := q.Count(&cnt).Error; err != nil {
			return nil, err
		}

		if err := q.Select("COALESCE(SUM(size),0) as sum").Scan(&sum).Error; err != nil {
			return nil, err
		}

		buckets[i].Count = int(cnt)
		buckets[i].Size = sum.Sum
	}

	return buckets, nil
}

// ImagesTrend 按天统计最近 N 天的入库数量与大小趋势.
func (s *StatsService) ImagesTrend(ctx context.Context, days int) ([]types.StatsTrendPoint, error) {
	if days <= 0 || days > maxTrendDays {
		days = defaultTrendDays
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	start := time.Now().UTC().AddDate(0, 0, -days+1).Truncate(hoursPerDay * time.Hour)
	rows := []struct {
		D   string
		Cnt int64
		Sum int64
	}{}
	// 兼容 SQLite/MySQL：按 DATE(stored_at) 分组，DATE() 返回 "YYYY-MM-DD"
	if err := dbx.Model(&model.Image{}).
		Select("DATE(stored_at) as d, COUNT(*) as cnt, COALESCE(SUM(size),0) as sum").
		Where("stored_at >= ?", start).
		Group("DATE(stored_at)").
		Order("d").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// 补齐日期
	data := make(map[string]struct {
		C int64
		S int64
	})
	for _, r := range rows {
		data[r.D] = struct{ C, S int64 }{r.Cnt, r.Sum}
	}

	out := make([]types.StatsTrendPoint, 0, days)
	for i := range days {
		d := start.AddDate(0, 0, i).Format("2006-01-02")
		if v, ok := data[d]; ok {
			out = append(out, types.StatsTrendPoint{Date: d, Count: int(v.C), Size: v.S})
		} else {
			out = append(out, types.StatsTrendPoint{Date: d})
		}
	}

	return out, nil
}

// StorageSummary 扫描磁盘汇总活跃/回收的对象与大小.
// 与 ImagesSummary 的差异反映事件链路或对账的滞后.
func (s *StatsService) StorageSummary(_ context.Context) (types.StorageSummary, error) {
	active, err := s.vault.List()
	if err != nil {
		return types.StorageSummary{}, err
	}

	trashed, err := s.vault.ListTrash()
	if err != nil {
		return types.StorageSummary{}, err
	}

	out := types.StorageSummary{ActiveObjects: len(active), TrashObjects: len(trashed)}

	for _, e := range active {
		out.ActiveSize += e.Size
	}

	for _, e := range trashed {
		out.TrashSize += e.Size
	}

	return out, nil
}

// Dashboard 聚合各维度统计，供仪表盘一次拉取.
func (s *StatsService) Dashboard(ctx context.Context) (*types.StatsDashboardResponse, error) {
	summary, err := s.ImagesSummary(ctx)
	if err != nil {
		return nil, err
	}

	byType, _ := s.ImagesByType(ctx)
	bySize, _ := s.ImagesBySizeBuckets(ctx)
	trend, _ := s.ImagesTrend(ctx, defaultTrendDays)
	storage, _ := s.StorageSummary(ctx)

	return &types.StatsDashboardResponse{
		Summary: summary,
		ByType:  byType,
		BySize:  bySize,
		Trend:   trend,
		Storage: storage,
	}, nil
}
