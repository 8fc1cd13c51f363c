package types

// ListImagesQuery 镜像列表查询参数.
type ListImagesQuery struct {
	Page int `form:"page" json:"page"`
	Size int `form:"size" json:"size"`
	// Type 按 MIME 一级类型过滤，如 image、application
	Type string `form:"type" json:"type,omitempty"`
	// Sort 排序字段：stored_at/size/name，默认 stored_at
	Sort string `form:"sort" json:"sort,omitempty"`
	// Order 排序方向：asc/desc，默认 desc
	Order string `form:"order" json:"order,omitempty"`
}

// ListImagesResponse 镜像列表响应.
type ListImagesResponse struct {
	Total  int64       `json:"total"`
	Page   int         `json:"page"`
	Size   int         `json:"size"`
	Images []ImageInfo `json:"images"`
}
