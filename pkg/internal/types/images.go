// Package types 定义各接口的请求与响应结构.
package types

// ImageInfo 镜像信息（用于返回给客户端展示）.
type ImageInfo struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name,omitempty"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type,omitempty"`
	Hash         string `json:"hash,omitempty"`
	URL          string `json:"url,omitempty"`
	StoredAt     string `json:"stored_at,omitempty"` // RFC3339
}

// MessageResponse 统一的提示消息响应体.
type MessageResponse struct {
	Message string `json:"message"`
}
