package configs

import (
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	DefaultVaultRoot           = "uploads"  // 默认上传根目录
	DefaultVaultMaxFiles       = 10         // 批量上传单次最大文件数
	DefaultVaultPublicPath     = "/uploads" // 对外静态路径前缀
	DefaultVaultTrashDir       = ".trash"   // 回收目录名（位于上传根目录下）
	DefaultVaultTrashRetention = 30         // 回收保留天数
)

type (
	// VaultConfig 图片存储目录配置.
	// 上传根目录是一个扁平目录，所有接收的文件都直接写入其中.
	VaultConfig struct {
		Root           string `mapstructure:"root"                 rule:"required"`
		MaxFiles       int    `mapstructure:"max_files"            rule:"min=1,max=1000"`
		PublicPath     string `mapstructure:"public_path"          rule:"required,startswith=/"`
		TrashDir       string `mapstructure:"trash_dir"            rule:"required"`
		TrashRetention int    `mapstructure:"trash_retention_days" rule:"min=1"`
	}
)

// TrashRoot 返回回收目录的完整路径.
func (c *VaultConfig) TrashRoot() string {
	return filepath.Join(c.Root, c.TrashDir)
}

// setDefaults 设置存储目录配置的默认值.
func (c *VaultConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("vault.root", DefaultVaultRoot)
	v.SetDefault("vault.max_files", DefaultVaultMaxFiles)
	v.SetDefault("vault.public_path", DefaultVaultPublicPath)
	v.SetDefault("vault.trash_dir", DefaultVaultTrashDir)
	v.SetDefault("vault.trash_retention_days", DefaultVaultTrashRetention)
}
