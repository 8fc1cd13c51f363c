package service

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/yeisme/imagevault/pkg/configs"
	ctxPkg "github.com/yeisme/imagevault/pkg/context"
	"github.com/yeisme/imagevault/pkg/internal/storage/db"
	"github.com/yeisme/imagevault/pkg/internal/storage/kv"
	"github.com/yeisme/imagevault/pkg/internal/storage/mq"
	"github.com/yeisme/imagevault/pkg/internal/storage/replica"
	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
	nlog "github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/queue"
)

// ImageService 负责图片相关业务逻辑（落盘、元数据、事件发布），不处理 HTTP 细节.
type ImageService struct {
	vault    *vault.Store
	dbClient *db.Client
	kvClient *kv.Client
	mqClient *mq.Client
	replica  *replica.Client // 可选，未启用副本时为 nil
}

// NewImageService 从 context 获取依赖实例.
func NewImageService(c context.Context) *ImageService {
	vs := ctxPkg.GetVaultStore(c)
	dbc := ctxPkg.GetDBClient(c)
	kvc := ctxPkg.GetKVClient(c)
	mqc := ctxPkg.GetMQClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if vs == nil || dbc == nil || dbc.DB == nil || kvc == nil || mqc == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &ImageService{
		vault:    vs,
		dbClient: dbc,
		kvClient: kvc,
		mqClient: mqc,
		replica:  ctxPkg.GetReplicaClient(c),
	}
}

// eventOptions 构造事件头部选项：生产者标识，以及当前链路的 TraceID（若存在）.
func eventOptions(ctx context.Context) []func(*queue.EventHeader) {
	opts := []func(*queue.EventHeader){queue.WithProducer(configs.AppName)}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		opts = append(opts, queue.WithTraceID(sc.TraceID().String()))
	}

	return opts
}

// publishImageStored 发布图片落盘事件.事件发布是尽力而为的：失败仅记录日志，不影响主流程.
func (is *ImageService) publishImageStored(ctx context.Context, payload queue.ImageStoredPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Image.Stored {
		return
	}

	if err := queue.PublishImageStored(is.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicImageStored).Msg("publish image stored event failed")
	}
}

// publishImageDeleted 发布图片移入回收站事件.
func (is *ImageService) publishImageDeleted(ctx context.Context, payload queue.ImageDeletedPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Image.Deleted {
		return
	}

	if err := queue.PublishImageDeleted(is.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicImageDeleted).Msg("publish image deleted event failed")
	}
}

// publishImageRestored 发布图片从回收站恢复事件.
func (is *ImageService) publishImageRestored(ctx context.Context, payload queue.ImageRestoredPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Image.Restored {
		return
	}

	if err := queue.PublishImageRestored(is.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicImageRestored).Msg("publish image restored event failed")
	}
}

// publishImagePurged 发布图片永久清除事件.
func (is *ImageService) publishImagePurged(ctx context.Context, payload queue.ImagePurgedPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Image.Purged {
		return
	}

	if err := queue.PublishImagePurged(is.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicImagePurged).Msg("publish image purged event failed")
	}
}

// publishImageAccessed 发布图片访问事件（下载、分享访问）.访问量大时默认关闭.
func (is *ImageService) publishImageAccessed(ctx context.Context, payload queue.ImageAccessedPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Image.Accessed {
		return
	}

	if err := queue.PublishImageAccessed(is.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicImageAccessed).Msg("publish image accessed event failed")
	}
}
