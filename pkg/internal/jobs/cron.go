// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yeisme/imagevault/pkg/configs"
	ctxPkg "github.com/yeisme/imagevault/pkg/context"
	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/internal/storage"
	"github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每天 07:00 和 19:00 清理回收站中超过保留期的条目
//   - 每天 02:10 对账磁盘与元数据（补建缺失记录、标记消失文件）
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	// 每天 07:00 清理过期回收条目
	if err := sched.AddCron(JobTrashAutoCleanMorning, CronTrashAutoCleanMorning, func(ctx context.Context) {
		runTrashAutoClean(ctx)
	}, baseCtx); err != nil {
		return fmt.Errorf("register job %s: %w", JobTrashAutoCleanMorning, err)
	}

	// 每天 19:00 清理过期回收条目
	if err := sched.AddCron(JobTrashAutoCleanEvening, CronTrashAutoCleanEvening, func(ctx context.Context) {
		runTrashAutoClean(ctx)
	}, baseCtx); err != nil {
		return fmt.Errorf("register job %s: %w", JobTrashAutoCleanEvening, err)
	}

	// 每天 02:10 对账磁盘与元数据
	if err := sched.AddCron(JobReconcileDaily, CronReconcileDaily, func(ctx context.Context) {
		runReconcile(ctx)
	}, baseCtx); err != nil {
		return fmt.Errorf("register job %s: %w", JobReconcileDaily, err)
	}

	return nil
}

// runTrashAutoClean 清理回收站中早于保留期的条目，保留期取 vault 配置.
func runTrashAutoClean(ctx context.Context) {
	l := log.Logger().With().Str("job", "trash.auto_clean").Logger()

	retention := configs.GetConfig().Vault.TrashRetention
	before := time.Now().AddDate(0, 0, -retention)

	svc := service.NewTrashService(ctx)

	n, err := svc.AutoClean(ctx, before)
	if err != nil {
		l.Error().Err(err).Msg("auto clean failed")
		return
	}

	if n > 0 {
		l.Info().Int("affected", n).Time("before", before).Msg("auto cleaned trash")
	}
}

// runReconcile 执行一轮磁盘与 DB 的对账.
func runReconcile(ctx context.Context) {
	l := log.Logger().With().Str("job", "reconcile.daily").Logger()

	svc := service.NewReconcileService(ctx)

	res, err := svc.Reconcile(ctx)
	if err != nil {
		l.Error().Err(err).Msg("reconcile failed")
		return
	}

	l.Info().
		Int("scanned_disk", res.ScannedDisk).
		Int("scanned_db", res.ScannedDB).
		Int("backfilled", res.Backfilled).
		Int("marked_trashed", res.MarkedTrashed).
		Int("unmarked", res.Unmarked).
		Msg("reconcile done")
}
