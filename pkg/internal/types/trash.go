package types

import "time"

// TrashListResponse 回收目录列表响应.
type TrashListResponse struct {
	Total  int         `json:"total"`
	Images []ImageInfo `json:"images"`
}

// TrashActionResponse 通用动作响应.
type TrashActionResponse struct {
	Affected int    `json:"affected"`
	Message  string `json:"message,omitempty"`
}

// TrashPurgeRequest 清理请求.
// 可指定 before（RFC3339）或 days（整数，表示清理 N 天前删除的）.
type TrashPurgeRequest struct {
	Before string `json:"before,omitempty"`
	Days   int    `json:"days,omitempty"`
}

// ParseBefore 返回解析后的时间与是否提供.
func (r *TrashPurgeRequest) ParseBefore() (time.Time, bool) {
	if r.Before != "" {
		if t, err := time.Parse(time.RFC3339, r.Before); err == nil {
			return t, true
		}
	}

	if r.Days > 0 {
		return time.Now().UTC().Add(-time.Duration(r.Days) * 24 * time.Hour), true
	}

	return time.Time{}, false
}
