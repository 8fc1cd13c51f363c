package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"

	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/types"
)

// ListImages 分页列出活跃图片元数据，支持按一级类型过滤与排序.
func (is *ImageService) ListImages(ctx context.Context, q *types.ListImagesQuery) (*types.ListImagesResponse, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}

	size := q.Size
	if size <= 0 || size > 200 {
		size = 50
	}

	dbx := is.dbClient.GetDB().WithContext(ctx).Model(&model.Image{})

	// 按 content_type 一级类型过滤（如 image、video）
	if q.Type != "" {
		dbx = dbx.Where("content_type LIKE ?", q.Type+"/%")
	}

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count images: %w", err)
	}

	var rows []model.Image
	if err := dbx.Order(buildListOrder(q.Sort, q.Order)).
		Offset((page - 1) * size).Limit(size).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	images := make([]types.ImageInfo, 0, len(rows))
	for i := range rows {
		images = append(images, imageInfoFromModel(&rows[i]))
	}

	return &types.ListImagesResponse{Total: total, Page: page, Size: size, Images: images}, nil
}

// buildListOrder 将排序参数映射为白名单内的 ORDER BY 表达式，避免注入.
func buildListOrder(sortBy, order string) string {
	col := "stored_at"

	switch sortBy {
	case "size":
		col = "size"
	case "name":
		col = "name"
	}

	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}

	return col + " " + dir
}

// ImageMeta 返回单个图片的元数据与磁盘状态.
// 元数据以 DB 为准；DB 无记录但磁盘存在时（事件链路中断、尚未对账），以磁盘信息现场构造.
func (is *ImageService) ImageMeta(ctx context.Context, name, scheme, host string) (*types.ImageMetaResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var m model.Image

	err := is.dbClient.GetDB().WithContext(ctx).Unscoped().Where("name = ?", name).First(&m).Error
	switch {
	case err == nil:
		onDisk, _ := is.vault.Exists(name)

		return &types.ImageMetaResponse{
			Image:   imageInfoFromModel(&m),
			OnDisk:  onDisk,
			Trashed: m.DeletedAt.Valid,
		}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return is.imageMetaFromDisk(name, scheme, host)
	default:
		return nil, fmt.Errorf("query image %s: %w", name, err)
	}
}

// imageMetaFromDisk 在 DB 缺失记录时直接从磁盘构造元数据.
func (is *ImageService) imageMetaFromDisk(name, scheme, host string) (*types.ImageMetaResponse, error) {
	fi, err := is.vault.Stat(name)
	if err != nil {
		return nil, ErrImageNotFound
	}

	contentType := ""
	if mt, detectErr := mimetype.DetectFile(is.vault.Path(name)); detectErr == nil {
		contentType = mt.String()
	}

	storedAt := storedAtFromName(name)
	if storedAt.IsZero() {
		storedAt = fi.ModTime().UTC()
	}

	return &types.ImageMetaResponse{
		Image: types.ImageInfo{
			Name:         name,
			OriginalName: originalNameFromStored(name),
			Size:         fi.Size(),
			ContentType:  contentType,
			URL:          is.publicURL(scheme, host, name),
			StoredAt:     storedAt.Format(time.RFC3339),
		},
		OnDisk: true,
	}, nil
}
