package types

// StatsImagesSummary 镜像总体统计.
type StatsImagesSummary struct {
	TotalImages   int   `json:"total_images"`
	ActiveImages  int   `json:"active_images"`
	TrashedImages int   `json:"trashed_images"`
	TotalSize     int64 `json:"total_size"`
	ActiveSize    int64 `json:"active_size"`
	TrashedSize   int64 `json:"trashed_size"`
}

// StatsTypeItem 按类型聚合（以 MIME 一级类型为准）.
type StatsTypeItem struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StatsSizeBucket 单个大小分桶.
type StatsSizeBucket struct {
	Name  string `json:"name"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StatsTrendPoint 趋势点（按日）.
type StatsTrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StorageSummary 本地存储总体统计（磁盘扫描，活跃与回收）.
type StorageSummary struct {
	ActiveObjects int   `json:"active_objects"`
	ActiveSize    int64 `json:"active_size"`
	TrashObjects  int   `json:"trash_objects"`
	TrashSize     int64 `json:"trash_size"`
}

// StatsDashboardResponse 仪表盘聚合响应.
type StatsDashboardResponse struct {
	Summary StatsImagesSummary `json:"summary"`
	ByType  []StatsTypeItem    `json:"by_type"`
	BySize  []StatsSizeBucket  `json:"by_size"`
	Trend   []StatsTrendPoint  `json:"trend"`
	Storage StorageSummary     `json:"storage"`
}
