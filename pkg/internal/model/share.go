package model

import (
	"time"
)

// Share 分享令牌模型：KV 负责快速解析与过期判定，DB 作为真源与审计来源。
// KV 未命中时（如进程重启后的内存 KV）从 DB 回源并重新写入缓存。
type Share struct {
	// Token ULID，URL 公开使用
	Token string `gorm:"primaryKey;size:26" json:"token"`
	// Name 分享指向的存储名
	Name      string     `gorm:"size:1024;index" json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `gorm:"index"           json:"expires_at,omitempty"`
	RevokedAt *time.Time `gorm:"index"           json:"-"`
}

// ShareRecord 供 service 层与 KV 缓存使用的轻量结构。
type ShareRecord struct {
	Token     string     `json:"token"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Active 报告分享在 now 时刻是否可用。
func (s *Share) Active(now time.Time) bool {
	if s.RevokedAt != nil {
		return false
	}

	if s.ExpiresAt != nil && !now.Before(*s.ExpiresAt) {
		return false
	}

	return true
}

// ToRecord 将 DB 模型转换为 ShareRecord。
func (s *Share) ToRecord() *ShareRecord {
	return &ShareRecord{
		Token:     s.Token,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

// FromRecord 将 ShareRecord 转换为 DB 模型。
func FromRecord(r *ShareRecord) *Share {
	return &Share{
		Token:     r.Token,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}
