package types

import "time"

// CreateShareRequest 创建分享所需参数.
type CreateShareRequest struct {
	// ExpireSeconds 有效秒数；>0 则到期自动失效，为 0 使用服务默认值
	ExpireSeconds int `form:"expire_seconds" json:"expire_seconds"`
}

// ShareInfo 分享的公开信息。
type ShareInfo struct {
	// Token 分享唯一标识（URL 公开使用）
	Token string `json:"token"`
	// Name 分享指向的存储名
	Name string `json:"name"`
	// ShareURL 对外访问地址
	ShareURL string `json:"share_url"`
	// CreatedAt 分享创建时间（UTC）
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt 分享过期时间（UTC，可为空表示不过期）
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CreateShareResponse 创建分享的响应体。
type CreateShareResponse struct {
	// Share 创建成功的分享信息
	Share ShareInfo `json:"share"`
}

// ListSharesResponse 分享列表响应体。
type ListSharesResponse struct {
	// Shares 目标镜像的分享列表（已过滤过期与撤销项）
	Shares []ShareInfo `json:"shares"`
}
