package consumer

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/yeisme/imagevault/pkg/internal/storage"
	nlog "github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/queue"
)

// startReplicator 订阅镜像事件并维护 S3 副本：落盘即复制，彻底清除即删除副本对象.
// 移入回收目录不动副本，恢复时无需重新复制.
func startReplicator(ctx context.Context, mgr *storage.Manager) error {
	stored, err := mgr.GetMQClient().Subscribe(ctx, queue.TopicImageStored)
	if err != nil {
		return err
	}

	purged, err := mgr.GetMQClient().Subscribe(ctx, queue.TopicImagePurged)
	if err != nil {
		return err
	}

	go func() {
		l := nlog.Logger().With().Str("consumer", "replica").Logger()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-stored:
				if !ok {
					return
				}

				mirrorStored(ctx, mgr, msg, &l)
			case msg, ok := <-purged:
				if !ok {
					return
				}

				dropPurged(ctx, mgr, msg, &l)
			}
		}
	}()

	return nil
}

func mirrorStored(ctx context.Context, mgr *storage.Manager, msg *message.Message, l *zerolog.Logger) {
	defer msg.Ack()

	env, err := queue.ParseImageStored(msg)
	if err != nil {
		l.Error().Err(err).Str("message_id", msg.UUID).Msg("parse image stored event failed")
		return
	}

	p := env.Payload
	rc := mgr.GetReplicaClient()
	pub := mgr.GetMQClient().Publisher()

	path := mgr.GetVaultStore().Path(p.Image.Name)
	if err := rc.Mirror(ctx, p.Image.Name, path, p.Image.ContentType); err != nil {
		l.Error().Err(err).Str("name", p.Image.Name).Msg("mirror image to replica failed")

		if e := queue.PublishReplicaMirrorFailed(pub, queue.ReplicaMirrorFailedPayload{
			Name:  p.Image.Name,
			Error: err.Error(),
		}); e != nil {
			l.Warn().Err(e).Msg("publish replica mirror failed event failed")
		}

		return
	}

	l.Debug().Str("name", p.Image.Name).Msg("image mirrored to replica")

	if e := queue.PublishReplicaMirrored(pub, queue.ReplicaMirroredPayload{
		Name:   p.Image.Name,
		Bucket: rc.GetConfig().Bucket,
	}); e != nil {
		l.Warn().Err(e).Msg("publish replica mirrored event failed")
	}
}

func dropPurged(ctx context.Context, mgr *storage.Manager, msg *message.Message, l *zerolog.Logger) {
	defer msg.Ack()

	env, err := queue.ParseImagePurged(msg)
	if err != nil {
		l.Error().Err(err).Str("message_id", msg.UUID).Msg("parse image purged event failed")
		return
	}

	rc := mgr.GetReplicaClient()
	pub := mgr.GetMQClient().Publisher()

	for _, name := range env.Payload.Names {
		if err := rc.Drop(ctx, name); err != nil {
			l.Error().Err(err).Str("name", name).Msg("drop replica object failed")
			continue
		}

		if e := queue.PublishReplicaDropped(pub, queue.ReplicaDroppedPayload{Name: name}); e != nil {
			l.Warn().Err(e).Msg("publish replica dropped event failed")
		}
	}
}
