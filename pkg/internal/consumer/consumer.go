// Package consumer 实现事件消费者：订阅镜像领域事件并驱动元数据落库与 S3 副本复制.
// 消费循环随传入的 context 结束而退出.
package consumer

import (
	"context"
	"fmt"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/storage"
)

// StartAll 启动全部启用的消费者.
// 元数据记录器总是启动（事件系统开启时），副本复制仅在 replica.enabled 时启动.
func StartAll(ctx context.Context, mgr *storage.Manager) error {
	cfg := configs.GetConfig()
	if !cfg.Events.Enabled {
		return nil
	}

	if mgr == nil || mgr.GetMQClient() == nil {
		return fmt.Errorf("mq client not initialized")
	}

	if err := startRecorder(ctx, mgr); err != nil {
		return fmt.Errorf("start recorder consumer: %w", err)
	}

	if mgr.GetReplicaClient() != nil {
		if err := startReplicator(ctx, mgr); err != nil {
			return fmt.Errorf("start replica consumer: %w", err)
		}
	}

	return nil
}
