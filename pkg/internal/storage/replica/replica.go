// Package replica 处理镜像副本的 S3 对象存储操作.
package replica

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/imagevault/pkg/configs"
	nlog "github.com/yeisme/imagevault/pkg/log"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client

	cfg configs.ReplicaConfig
}

// New 初始化 MinIO 客户端，若副本 bucket 不存在则尝试创建.
func New(ctx context.Context, cfg *configs.ReplicaConfig) (*Client, error) {
	endpoint := cfg.Endpoint

	useSSL := cfg.UseSSL
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo(configs.AppName, configs.AppVersion)

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}

		nlog.Logger().Info().Str("bucket", cfg.Bucket).Msg("replica bucket created")
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("replica connected")

	return &Client{Client: cli, cfg: *cfg}, nil
}

// objectName 组合对象键，带可选前缀.
func (c *Client) objectName(name string) string {
	prefix := strings.Trim(c.cfg.Prefix, "/")
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}

// Mirror 将本地镜像文件上传为副本对象.
func (c *Client) Mirror(ctx context.Context, name, path, contentType string) error {
	opts := minio.PutObjectOptions{}
	if contentType != "" {
		opts.ContentType = contentType
	}

	if _, err := c.FPutObject(ctx, c.cfg.Bucket, c.objectName(name), path, opts); err != nil {
		return fmt.Errorf("mirror object %s: %w", name, err)
	}

	return nil
}

// Drop 删除副本对象.
func (c *Client) Drop(ctx context.Context, name string) error {
	if err := c.RemoveObject(ctx, c.cfg.Bucket, c.objectName(name), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("drop object %s: %w", name, err)
	}

	return nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// Close 关闭副本客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}

// GetConfig 返回副本配置.
func (c *Client) GetConfig() configs.ReplicaConfig {
	return c.cfg
}
