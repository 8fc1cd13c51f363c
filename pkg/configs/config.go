// Package configs 管理应用程序配置，包括存储、数据库和队列的配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	import "path/to/configs"
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
//
// Example accessing Vault config:
//
//	config := configs.GetConfig()
//	vaultConfig := config.Vault
//	fmt.Println("Upload root:", vaultConfig.Root)
//
// Example accessing DB config:
//
//	config := configs.GetConfig()
//	dbConfig := config.DB
//	dsn := dbConfig.GetDSN()
//	fmt.Println("DSN:", dsn)
//
// Example accessing MQ config:
//
//	config := configs.GetConfig()
//	mqConfig := config.MQ
//	mqType := mqConfig.GetMQType()
//	fmt.Println("MQ Type:", mqType)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		Server         ServerConfig         `mapstructure:"server"`          // ServerConfig 服务器配置，监听地址、调试模式等
		Vault          VaultConfig          `mapstructure:"vault"`           // VaultConfig 图片存储目录配置
		Log            LogConfig            `mapstructure:"log"`             // LogConfig 日志相关配置
		DB             DBConfig             `mapstructure:"db"`              // DBConfig 元数据数据库配置
		KV             KVConfig             `mapstructure:"kv"`              // KVConfig 键值存储配置
		MQ             MQConfig             `mapstructure:"mq"`              // MQConfig 消息队列配置
		Events         EventsConfig         `mapstructure:"events"`          // EventsConfig 事件发布开关
		Replica        ReplicaConfig        `mapstructure:"replica"`         // ReplicaConfig S3 异地副本配置
		Metrics        MetricsConfig        `mapstructure:"metrics"`         // MetricsConfig 监控配置
		Tracing        TracingConfig        `mapstructure:"tracing"`         // TracingConfig 分布式追踪配置
		RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`      // RateLimitConfig 速率限制配置
		CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"` // CircuitBreakerConfig 熔断器配置
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
// path 可以是配置文件本身，也可以是包含 config.* 的目录；目录下找不到配置文件时
// 直接使用默认值运行，便于零配置启动.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	explicitFile := false

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)

		explicitFile = true
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				explicitFile = true

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("IMAGEVAULT")

	// 读取配置；目录模式下缺少配置文件不算错误
	if err := appViper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var serverConfig ServerConfig

	var vaultConfig VaultConfig

	var logConfig LogConfig

	var dbConfig DBConfig

	var kvConfig KVConfig

	var mqConfig MQConfig

	var eventsConfig EventsConfig

	var replicaConfig ReplicaConfig

	var metricsConfig MetricsConfig

	var tracingConfig TracingConfig

	var rateLimitConfig RateLimitConfig

	var circuitBreakerConfig CircuitBreakerConfig

	serverConfig.setDefaults(v)
	vaultConfig.setDefaults(v)
	logConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	kvConfig.setDefaults(v)
	mqConfig.setDefaults(v)
	eventsConfig.setDefaults(v)
	replicaConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	tracingConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
	circuitBreakerConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置实例.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
