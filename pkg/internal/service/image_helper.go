package service

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/types"
)

const (
	// DefaultSliceCapacity 默认slice预分配容量.
	DefaultSliceCapacity = 100
)

// imageInfoFromModel 将 DB 模型转换为对外的 ImageInfo.
func imageInfoFromModel(m *model.Image) types.ImageInfo {
	return types.ImageInfo{
		Name:         m.Name,
		OriginalName: m.OriginalName,
		Size:         m.Size,
		ContentType:  m.ContentType,
		Hash:         m.Hash,
		URL:          m.URL,
		StoredAt:     m.StoredAt.UTC().Format(time.RFC3339),
	}
}

// storedAtFromName 从存储名的毫秒时间戳前缀还原存储时间，解析失败返回零值.
func storedAtFromName(name string) time.Time {
	millis, _, ok := strings.Cut(name, "-")
	if !ok {
		return time.Time{}
	}

	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}

// originalNameFromStored 从存储名还原原始文件名：去掉毫秒前缀后做一次百分号解码.
func originalNameFromStored(name string) string {
	_, encoded, ok := strings.Cut(name, "-")
	if !ok {
		return name
	}

	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return encoded
	}

	return decoded
}
