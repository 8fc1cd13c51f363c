package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
	"github.com/yeisme/imagevault/pkg/queue"
)

// OpenImage 打开图片获取可读流与文件信息，调用方负责关闭返回的句柄.
// via 标识访问途径（download/share），随访问事件发布.
func (is *ImageService) OpenImage(ctx context.Context, name, via string) (*os.File, os.FileInfo, error) {
	f, err := is.vault.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, vault.ErrInvalidName) {
			return nil, nil, ErrImageNotFound
		}

		return nil, nil, fmt.Errorf("open image %s: %w", name, err)
	}

	fi, err := f.Stat()
	if err != nil {
		// 关闭 f 以避免泄露
		_ = f.Close()

		return nil, nil, fmt.Errorf("stat image %s: %w", name, err)
	}

	// 发布访问事件（服务端读流）
	is.publishImageAccessed(ctx, queue.ImageAccessedPayload{Name: name, Via: via})

	return f, fi, nil
}
