package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 镜像文件领域 --------------------------

// ImageRef 标识存储中的镜像文件及其基础元数据.
// Name 为存储名：上传毫秒时间戳加连字符加百分号编码的原始文件名.
type ImageRef struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name,omitempty"`
	Size         int64  `json:"size,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	Hash         string `json:"hash,omitempty"` // 内容 xxhash64（十六进制）
}

// ImageStoredPayload 镜像已写入本地存储.
type ImageStoredPayload struct {
	Image ImageRef `json:"image"`
	// URL 对外可访问的镜像地址.
	URL string `json:"url,omitempty"`
	// Source 触发来源，如 upload/batch/reconcile.
	Source string `json:"source,omitempty"`
}

// ImageDeletedPayload 镜像被移入回收目录.
type ImageDeletedPayload struct {
	Name string `json:"name"`
}

// ImageRestoredPayload 镜像从回收目录恢复.
type ImageRestoredPayload struct {
	Name string `json:"name"`
}

// ImagePurgedPayload 镜像被彻底清除.
type ImagePurgedPayload struct {
	Names []string `json:"names,omitempty"`
	Count int      `json:"count"`
	// Reason 清除原因，如 retention/manual.
	Reason string `json:"reason,omitempty"`
}

// ImageAccessedPayload 镜像被访问（下载或分享链接）.
type ImageAccessedPayload struct {
	Name string `json:"name"`
	// Via 访问途径：download/share.
	Via string `json:"via,omitempty"`
}

// -------------------------- 元数据同步领域 --------------------------

// MetaSyncedPayload 元数据成功写入数据库.
type MetaSyncedPayload struct {
	Name string `json:"name"`
}

// MetaSyncFailedPayload 元数据写入数据库失败.
type MetaSyncFailedPayload struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// -------------------------- S3 副本领域 --------------------------

// ReplicaMirroredPayload 镜像已复制到副本存储.
type ReplicaMirroredPayload struct {
	Name   string `json:"name"`
	Bucket string `json:"bucket,omitempty"`
}

// ReplicaMirrorFailedPayload 副本复制失败.
type ReplicaMirrorFailedPayload struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ReplicaDroppedPayload 副本对象已删除.
type ReplicaDroppedPayload struct {
	Name string `json:"name"`
}

// -------------------------- 分享链接领域 --------------------------

// ShareCreatedPayload 分享令牌创建.
type ShareCreatedPayload struct {
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// ShareRevokedPayload 分享令牌撤销.
type ShareRevokedPayload struct {
	Token string `json:"token"`
}
