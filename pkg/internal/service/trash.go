package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/types"
	nlog "github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/queue"
)

// TrashService 提供回收站相关能力：磁盘移动与 DB 软删除标记保持一致.
type TrashService struct{ *ImageService }

func NewTrashService(c context.Context) *TrashService { return &TrashService{NewImageService(c)} }

// Trash 将图片移入回收站：磁盘上移入回收目录，DB 标记软删除.
func (t *TrashService) Trash(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if err := t.vault.MoveToTrash(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrImageNotFound
		}

		return err
	}

	// 元数据缺失（尚未对账）时软删除影响零行，磁盘移动仍然生效
	if err := t.dbClient.GetDB().WithContext(ctx).Where("name = ?", name).Delete(&model.Image{}).Error; err != nil {
		return fmt.Errorf("mark image trashed: %w", err)
	}

	t.publishImageDeleted(ctx, queue.ImageDeletedPayload{Name: name})

	return nil
}

// Restore 将图片从回收站恢复：磁盘移回上传根目录，DB 取消软删除标记.
func (t *TrashService) Restore(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if err := t.vault.Restore(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrImageNotFound
		}

		return err
	}

	// 将 DeletedAt 置空
	if err := t.dbClient.GetDB().WithContext(ctx).Model(&model.Image{}).Unscoped().
		Where("name = ?", name).Update("deleted_at", nil).Error; err != nil {
		return fmt.Errorf("unmark image trashed: %w", err)
	}

	t.publishImageRestored(ctx, queue.ImageRestoredPayload{Name: name})

	return nil
}

// List 列出回收站中的图片（DeletedAt 非空），按删除时间倒序.
func (t *TrashService) List(ctx context.Context, page, size int) (*types.TrashListResponse, error) {
	if page <= 0 {
		page = 1
	}

	if size <= 0 || size > 200 {
		size = 50
	}

	dbx := t.dbClient.GetDB().WithContext(ctx).Model(&model.Image{}).
		Unscoped().Where("deleted_at IS NOT NULL")

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []model.Image
	if err := dbx.Order("deleted_at DESC").Offset((page - 1) * size).Limit(size).Find(&rows).Error; err != nil {
		return nil, err
	}

	images := make([]types.ImageInfo, 0, len(rows))
	for i := range rows {
		images = append(images, imageInfoFromModel(&rows[i]))
	}

	return &types.TrashListResponse{Total: int(total), Images: images}, nil
}

// DeletePermanently 永久删除回收站中的指定图片（磁盘文件与 DB 记录一并清除）.
func (t *TrashService) DeletePermanently(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("names required")
	}

	removed := 0

	for _, name := range names {
		if err := t.vault.RemoveFromTrash(name); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// 磁盘已不存在，继续清理 DB 记录
				continue
			}

			return removed, err
		}

		removed++
	}

	if err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("name IN ? AND deleted_at IS NOT NULL", names).Delete(&model.Image{}).Error; err != nil {
		return removed, fmt.Errorf("purge image records: %w", err)
	}

	t.publishImagePurged(ctx, queue.ImagePurgedPayload{Names: names, Count: removed, Reason: "manual"})

	return removed, nil
}

// Empty 清空回收站：删除回收目录中全部文件与所有软删除记录.
func (t *TrashService) Empty(ctx context.Context) (int, error) {
	entries, err := t.vault.ListTrash()
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if err := t.vault.RemoveFromTrash(e.Name); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return len(names), err
		}

		names = append(names, e.Name)
	}

	if err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").Delete(&model.Image{}).Error; err != nil {
		return len(names), fmt.Errorf("purge image records: %w", err)
	}

	t.publishImagePurged(ctx, queue.ImagePurgedPayload{Names: names, Count: len(names), Reason: "empty"})

	return len(names), nil
}

// AutoClean 清理进入回收站早于 before 的图片，供保留期定时任务与管理接口使用.
// 以 DB 的删除时间为准；无记录的孤儿文件按回收目录中的文件时间兜底清理.
func (t *TrashService) AutoClean(ctx context.Context, before time.Time) (int, error) {
	if before.IsZero() {
		return 0, fmt.Errorf("before required")
	}

	var rows []model.Image
	if err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).Find(&rows).Error; err != nil {
		return 0, err
	}

	names := make([]string, 0, len(rows))

	for _, r := range rows {
		if err := t.vault.RemoveFromTrash(r.Name); err != nil && !errors.Is(err, os.ErrNotExist) {
			nlog.Logger().Warn().Err(err).Str("name", r.Name).Msg("failed to remove trashed file")
			continue
		}

		names = append(names, r.Name)
	}

	if len(names) > 0 {
		if err := t.dbClient.GetDB().WithContext(ctx).Unscoped().
			Where("name IN ?", names).Delete(&model.Image{}).Error; err != nil {
			return len(names), fmt.Errorf("purge image records: %w", err)
		}
	}

	// 磁盘兜底：清理 DB 无记录的孤儿文件
	orphans, err := t.vault.PurgeTrash(before)
	if err != nil {
		nlog.Logger().Warn().Err(err).Msg("failed to purge orphan trash files")
	}

	total := len(names) + orphans
	if total > 0 {
		t.publishImagePurged(ctx, queue.ImagePurgedPayload{Names: names, Count: total, Reason: "retention"})
	}

	return total, nil
}
