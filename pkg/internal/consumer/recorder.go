package consumer

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"gorm.io/gorm/clause"

	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/storage"
	nlog "github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/queue"
)

// startRecorder 订阅 iv.image.stored，为每张落盘的图片写入一条元数据记录.
// 同名记录（对账与事件赛跑时可能先到）按存储名冲突更新，保证幂等.
func startRecorder(ctx context.Context, mgr *storage.Manager) error {
	msgs, err := mgr.GetMQClient().Subscribe(ctx, queue.TopicImageStored)
	if err != nil {
		return err
	}

	go func() {
		l := nlog.Logger().With().Str("consumer", "recorder").Logger()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				recordStored(ctx, mgr, msg, &l)
			}
		}
	}()

	return nil
}

func recordStored(ctx context.Context, mgr *storage.Manager, msg *message.Message, l *zerolog.Logger) {
	// 无论成败都 Ack：失败通过 iv.meta.sync.failed 事件与对账任务兜底，避免死信循环
	defer msg.Ack()

	env, err := queue.ParseImageStored(msg)
	if err != nil {
		l.Error().Err(err).Str("message_id", msg.UUID).Msg("parse image stored event failed")
		return
	}

	p := env.Payload
	row := model.Image{
		Name:         p.Image.Name,
		OriginalName: p.Image.OriginalName,
		Size:         p.Image.Size,
		ContentType:  p.Image.ContentType,
		Hash:         p.Image.Hash,
		URL:          p.URL,
		Source:       p.Source,
		StoredAt:     storedAtFromName(p.Image.Name, env.Header.OccurredAt),
	}

	err = mgr.GetDBClient().GetDB().WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"original_name", "size", "content_type", "hash", "url", "source", "stored_at",
		}),
	}).Create(&row).Error

	pub := mgr.GetMQClient().Publisher()

	if err != nil {
		l.Error().Err(err).Str("name", p.Image.Name).Msg("record image meta failed")

		if e := queue.PublishMetaSyncFailed(pub, queue.MetaSyncFailedPayload{
			Name:  p.Image.Name,
			Error: err.Error(),
		}); e != nil {
			l.Warn().Err(e).Msg("publish meta sync failed event failed")
		}

		return
	}

	l.Debug().Str("name", p.Image.Name).Msg("image meta recorded")

	if e := queue.PublishMetaSynced(pub, queue.MetaSyncedPayload{Name: p.Image.Name}); e != nil {
		l.Warn().Err(e).Msg("publish meta synced event failed")
	}
}

// storedAtFromName 从存储名的毫秒前缀还原上传时刻，解析失败时退回事件时间.
func storedAtFromName(name string, fallback time.Time) time.Time {
	millis, _, ok := strings.Cut(name, "-")
	if !ok {
		return fallback
	}

	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return fallback
	}

	return time.UnixMilli(ms).UTC()
}
