package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReplicaConfig MinIO S3 异地副本配置.
// 启用后，已落盘的图片会由副本消费者异步镜像到对象存储.
type ReplicaConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"` // 对象键前缀，如 "images/"
}

const (
	DefaultReplicaEndpoint        = "localhost:9000" // 默认S3端点
	DefaultReplicaAccessKeyID     = "minioadmin"     // 默认访问密钥ID
	DefaultReplicaSecretAccessKey = "minioadmin"     // 默认秘密访问密钥
	DefaultReplicaUseSSL          = false            // 默认是否使用SSL
	DefaultReplicaBucket          = "imagevault"     // 默认存储桶名称
	DefaultReplicaRegion          = "us-east-1"      // 默认区域
)

// GetEndpointURL 获取完整的端点URL.
func (c *ReplicaConfig) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// setDefaults 设置副本配置的默认值.
func (c *ReplicaConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("replica.enabled", false)
	v.SetDefault("replica.endpoint", DefaultReplicaEndpoint)
	v.SetDefault("replica.access_key_id", DefaultReplicaAccessKeyID)
	v.SetDefault("replica.secret_access_key", DefaultReplicaSecretAccessKey)
	v.SetDefault("replica.use_ssl", DefaultReplicaUseSSL)
	v.SetDefault("replica.bucket", DefaultReplicaBucket)
	v.SetDefault("replica.region", DefaultReplicaRegion)
	v.SetDefault("replica.prefix", "")
}
