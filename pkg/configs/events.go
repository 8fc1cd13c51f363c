package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled bool              `mapstructure:"enabled"` // 总开关
	Image   ImageEventsConfig `mapstructure:"image"`
	Share   ShareEventsConfig `mapstructure:"share"`
}

// ImageEventsConfig 针对图片领域的事件开关。
type ImageEventsConfig struct {
	Stored   bool `mapstructure:"stored"`
	Deleted  bool `mapstructure:"deleted"`
	Restored bool `mapstructure:"restored"`
	Purged   bool `mapstructure:"purged"`
	Accessed bool `mapstructure:"accessed"`
}

// ShareEventsConfig 针对分享领域的事件开关。
type ShareEventsConfig struct {
	Created bool `mapstructure:"created"`
	Revoked bool `mapstructure:"revoked"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统（元数据记录依赖 stored 事件）
	v.SetDefault("events.enabled", true)

	// 图片领域的事件：默认仅开启最小必要集，避免噪声过大
	v.SetDefault("events.image.stored", true)
	v.SetDefault("events.image.deleted", true)

	// 可选事件：默认关闭，按需开启
	v.SetDefault("events.image.restored", false)
	v.SetDefault("events.image.purged", false)
	v.SetDefault("events.image.accessed", false) // 访问事件量可能很大，默认关闭

	v.SetDefault("events.share.created", false)
	v.SetDefault("events.share.revoked", false)
}
