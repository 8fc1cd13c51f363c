package service

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
	nlog "github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/queue"
)

// reconcileWorkers 补建元数据时的并发度（读盘计算 hash）.
const reconcileWorkers = 4

// ReconcileService 对账磁盘与元数据：为磁盘上缺失记录的图片补建元数据，
// 将磁盘上已消失的活跃记录标记为回收，并修正恢复未落库的记录.
type ReconcileService struct{ *ImageService }

func NewReconcileService(c context.Context) *ReconcileService {
	return &ReconcileService{NewImageService(c)}
}

// ReconcileResult 对账结果汇总.
type ReconcileResult struct {
	ScannedDisk   int `json:"scanned_disk"`
	ScannedDB     int `json:"scanned_db"`
	Backfilled    int `json:"backfilled"`
	MarkedTrashed int `json:"marked_trashed"`
	Unmarked      int `json:"unmarked"`
}

// Reconcile 执行一轮对账，返回各方向的修正数量.
func (r *ReconcileService) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	var (
		active  []vault.Entry
		trashed []vault.Entry
		rows    []model.Image
	)

	// 并行扫描上传根目录、回收目录与 DB 全量记录
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		active, err = r.vault.List()

		return err
	})

	g.Go(func() error {
		var err error
		trashed, err = r.vault.ListTrash()

		return err
	})

	g.Go(func() error {
		return r.dbClient.GetDB().WithContext(gctx).Unscoped().Find(&rows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reconcile scan: %w", err)
	}

	onDisk := make(map[string]vault.Entry, len(active))
	for _, e := range active {
		onDisk[e.Name] = e
	}

	known := make(map[string]*model.Image, len(rows))
	for i := range rows {
		known[rows[i].Name] = &rows[i]
	}

	res := &ReconcileResult{ScannedDisk: len(active) + len(trashed), ScannedDB: len(rows)}

	res.Backfilled = r.backfill(ctx, onDisk, known)

	dbx := r.dbClient.GetDB().WithContext(ctx)

	for name, m := range known {
		_, inRoot := onDisk[name]

		switch {
		case !m.DeletedAt.Valid && !inRoot:
			// 活跃记录对应的文件已不在根目录（已进回收或消失），标记软删除
			if err := dbx.Where("name = ?", name).Delete(&model.Image{}).Error; err != nil {
				nlog.Logger().Warn().Err(err).Str("name", name).Msg("reconcile: mark trashed failed")
				continue
			}

			res.MarkedTrashed++
		case m.DeletedAt.Valid && inRoot:
			// 回收记录对应的文件回到了根目录（恢复未落库），取消软删除
			if err := dbx.Model(&model.Image{}).Unscoped().
				Where("name = ?", name).Update("deleted_at", nil).Error; err != nil {
				nlog.Logger().Warn().Err(err).Str("name", name).Msg("reconcile: unmark trashed failed")
				continue
			}

			res.Unmarked++
		}
	}

	return res, nil
}

// backfill 为磁盘上存在而 DB 缺失的图片并发补建元数据，单个失败不中断整轮.
func (r *ReconcileService) backfill(ctx context.Context, onDisk map[string]vault.Entry, known map[string]*model.Image) int {
	base := configs.GetConfig().Server.PublicBaseURL

	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileWorkers)

	for name, e := range onDisk {
		if _, ok := known[name]; ok {
			continue
		}

		g.Go(func() error {
			img, err := r.imageFromDisk(name, e, base)
			if err != nil {
				nlog.Logger().Warn().Err(err).Str("name", name).Msg("reconcile: build metadata failed")

				return nil
			}

			if err := r.dbClient.GetDB().WithContext(gctx).Create(img).Error; err != nil {
				nlog.Logger().Warn().Err(err).Str("name", name).Msg("reconcile: insert metadata failed")

				return nil
			}

			done.Add(1)

			// 带 reconcile 来源重新发布，供副本等下游补齐；元数据记录端按 name 幂等
			r.publishImageStored(gctx, queue.ImageStoredPayload{
				Image: queue.ImageRef{
					Name:         img.Name,
					OriginalName: img.OriginalName,
					Size:         img.Size,
					ContentType:  img.ContentType,
					Hash:         img.Hash,
				},
				URL:    img.URL,
				Source: "reconcile",
			})

			return nil
		})
	}

	// 错误已逐条记录，此处仅等待全部完成
	_ = g.Wait()

	return int(done.Load())
}

// imageFromDisk 从磁盘文件构造元数据记录.
func (r *ReconcileService) imageFromDisk(name string, e vault.Entry, base string) (*model.Image, error) {
	hash, err := r.hashImageFile(name)
	if err != nil {
		return nil, err
	}

	contentType := ""
	if mt, detectErr := mimetype.DetectFile(r.vault.Path(name)); detectErr == nil {
		contentType = mt.String()
	}

	storedAt := storedAtFromName(name)
	if storedAt.IsZero() {
		storedAt = e.ModTime.UTC()
	}

	return &model.Image{
		Name:         name,
		OriginalName: originalNameFromStored(name),
		Size:         e.Size,
		ContentType:  contentType,
		Hash:         hash,
		URL:          r.publicURLFromBase(base, name),
		Source:       "reconcile",
		StoredAt:     storedAt,
	}, nil
}

// hashImageFile 计算磁盘图片的内容 hash（xxhash64 十六进制）.
func (r *ReconcileService) hashImageFile(name string) (string, error) {
	f, err := r.vault.Open(name)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("hash image %s: %w", name, err)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
