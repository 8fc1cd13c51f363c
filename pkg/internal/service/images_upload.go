package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/yeisme/imagevault/pkg/internal/types"
	"github.com/yeisme/imagevault/pkg/metrics"
	"github.com/yeisme/imagevault/pkg/queue"
)

// StoredName 生成存储名：毫秒时间戳 + "-" + 百分号编码后的原始文件名.
// 编码保证存储名不含路径分隔符；同一毫秒内上传同名文件会得到相同存储名，后写覆盖前写.
func StoredName(original string, now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + url.PathEscape(original)
}

// publicURL 构造图片的公开访问地址：<scheme>://<host><public_path>/<编码后的存储名>.
// 存储名会整体再做一次百分号编码，其中已编码的原始文件名部分被二次编码，
// 客户端对路径段做一次解码即可还原存储名.
func (is *ImageService) publicURL(scheme, host, name string) string {
	return is.publicURLFromBase(scheme+"://"+host, name)
}

// publicURLFromBase 基于服务基础地址构造公开访问地址，无请求上下文的后台任务使用.
func (is *ImageService) publicURLFromBase(base, name string) string {
	b := strings.TrimSuffix(base, "/")
	p := strings.TrimSuffix(is.vault.Config().PublicPath, "/")

	return b + p + "/" + url.PathEscape(name)
}

// SaveImage 接收单个表单文件并落盘，返回图片信息（含公开访问 URL）.
// source 标识来源（upload/batch/reconcile），随事件一并发布.
func (is *ImageService) SaveImage(ctx context.Context, fh *multipart.FileHeader, scheme, host, source string) (*types.ImageInfo, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, NewUploadError("open form image", err)
	}
	defer func() { _ = src.Close() }()

	now := time.Now()
	name := StoredName(fh.Filename, now)

	// TeeReader 在落盘的同时计算内容 hash
	hasher := xxhash.New()

	size, err := is.vault.Save(name, io.TeeReader(src, hasher))
	if err != nil {
		return nil, fmt.Errorf("store image %s: %w", name, err)
	}

	hash := fmt.Sprintf("%016x", hasher.Sum64())
	contentType := fh.Header.Get("Content-Type")
	imageURL := is.publicURL(scheme, host, name)

	metrics.ImagesStored.Inc()
	metrics.ImagesStoredBytes.Add(float64(size))

	is.publishImageStored(ctx, queue.ImageStoredPayload{
		Image: queue.ImageRef{
			Name:         name,
			OriginalName: fh.Filename,
			Size:         size,
			ContentType:  contentType,
			Hash:         hash,
		},
		URL:    imageURL,
		Source: source,
	})

	return &types.ImageInfo{
		Name:         name,
		OriginalName: fh.Filename,
		Size:         size,
		ContentType:  contentType,
		Hash:         hash,
		URL:          imageURL,
		StoredAt:     now.UTC().Format(time.RFC3339),
	}, nil
}

// SaveImageBatch 批量接收表单文件，逐个落盘并汇总结果.
// 单个文件失败不中断整体流程，失败原因记录在对应结果项中.
func (is *ImageService) SaveImageBatch(ctx context.Context, files []*multipart.FileHeader, scheme, host string) (*types.BatchUploadResponse, error) {
	results := make([]types.BatchUploadItem, 0, len(files))
	successful := 0
	failed := 0

	for _, fh := range files {
		info, err := is.SaveImage(ctx, fh, scheme, host, "batch")
		if err != nil {
			results = append(results, types.BatchUploadItem{
				OriginalName: fh.Filename,
				Success:      false,
				Error:        err.Error(),
			})
			failed++

			continue
		}

		results = append(results, types.BatchUploadItem{
			OriginalName: fh.Filename,
			Name:         info.Name,
			ImageURL:     info.URL,
			Success:      true,
		})
		successful++
	}

	return &types.BatchUploadResponse{
		Results:    results,
		Total:      len(files),
		Successful: successful,
		Failed:     failed,
	}, nil
}
