// Package model 定义数据库模型.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Image 镜像元数据模型.
// Name 为存储名：上传毫秒时间戳加连字符加百分号编码的原始文件名，在存储内唯一.
// 回收状态由软删除表示：移入回收目录即软删除，恢复即清除删除标记，过期清理做硬删除.
type Image struct {
	ID           uint   `gorm:"primaryKey"            json:"id"`
	Name         string `gorm:"size:1024;uniqueIndex" json:"name"`
	OriginalName string `gorm:"size:512;index"        json:"original_name"`
	Size         int64  `gorm:"index"                 json:"size"`
	ContentType  string `gorm:"size:255;index"        json:"content_type"`
	// Hash 内容 xxhash64（十六进制），用于副本校验与缓存键
	Hash string `gorm:"size:32;index" json:"hash"`
	URL  string `gorm:"size:2048"     json:"url"`
	// Source 入库来源：upload/batch/reconcile
	Source string `gorm:"size:64" json:"source"`
	// StoredAt 上传时刻，由存储名中的毫秒时间戳还原
	StoredAt  time.Time `gorm:"index" json:"stored_at"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
