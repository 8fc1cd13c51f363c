package mq

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/yeisme/imagevault/pkg/configs"
)

const (
	// DefaultOutputChannelBuffer GoChannel 输出缓冲大小.
	DefaultOutputChannelBuffer = 256
)

// init 注册 GoChannel 工厂.
func init() {
	RegisterFactory(configs.MQTypeChannel, channelFactory)
}

// channelFactory 创建进程内 GoChannel Publisher & Subscriber.
// 发布与订阅共享同一实例，消息不落盘，进程退出即丢失.
func channelFactory(
	ctx context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: DefaultOutputChannelBuffer,
	}, logger)

	return ch, ch, nil
}
