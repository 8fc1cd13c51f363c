package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishImageStored 发布 iv.image.stored 事件。
// 镜像写入本地存储后调用，通知下游流程（元数据落库、副本复制等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishImageStored(pub message.Publisher, payload ImageStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicImageStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicImageStored, msg)
}

// ParseImageStored 将 Watermill 消息解析为强类型 Envelope（ImageStoredPayload）。
func ParseImageStored(msg *message.Message) (Message[ImageStoredPayload], error) {
	return ParseWatermillMessage[ImageStoredPayload](msg)
}

// PublishImageDeleted 发布 iv.image.deleted 事件。
func PublishImageDeleted(pub message.Publisher, payload ImageDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicImageDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicImageDeleted, msg)
}

// ParseImageDeleted 将 Watermill 消息解析为强类型 Envelope（ImageDeletedPayload）。
func ParseImageDeleted(msg *message.Message) (Message[ImageDeletedPayload], error) {
	return ParseWatermillMessage[ImageDeletedPayload](msg)
}

// PublishImageRestored 发布 iv.image.restored 事件。
func PublishImageRestored(pub message.Publisher, payload ImageRestoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicImageRestored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicImageRestored, msg)
}

// ParseImageRestored 将 Watermill 消息解析为强类型 Envelope（ImageRestoredPayload）。
func ParseImageRestored(msg *message.Message) (Message[ImageRestoredPayload], error) {
	return ParseWatermillMessage[ImageRestoredPayload](msg)
}

// PublishImagePurged 发布 iv.image.purged 事件。
func PublishImagePurged(pub message.Publisher, payload ImagePurgedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicImagePurged, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicImagePurged, msg)
}

// ParseImagePurged 将 Watermill 消息解析为强类型 Envelope（ImagePurgedPayload）。
func ParseImagePurged(msg *message.Message) (Message[ImagePurgedPayload], error) {
	return ParseWatermillMessage[ImagePurgedPayload](msg)
}

// PublishImageAccessed 发布 iv.image.accessed 事件。
func PublishImageAccessed(pub message.Publisher, payload ImageAccessedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicImageAccessed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicImageAccessed, msg)
}

// ParseImageAccessed 将 Watermill 消息解析为强类型 Envelope（ImageAccessedPayload）。
func ParseImageAccessed(msg *message.Message) (Message[ImageAccessedPayload], error) {
	return ParseWatermillMessage[ImageAccessedPayload](msg)
}

// PublishShareCreated 发布 iv.share.created 事件。
func PublishShareCreated(pub message.Publisher, payload ShareCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicShareCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicShareCreated, msg)
}

// PublishShareRevoked 发布 iv.share.revoked 事件。
func PublishShareRevoked(pub message.Publisher, payload ShareRevokedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicShareRevoked, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicShareRevoked, msg)
}

// PublishMetaSynced 发布 iv.meta.synced 事件。
func PublishMetaSynced(pub message.Publisher, payload MetaSyncedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicMetaSynced, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicMetaSynced, msg)
}

// PublishMetaSyncFailed 发布 iv.meta.sync.failed 事件。
func PublishMetaSyncFailed(pub message.Publisher, payload MetaSyncFailedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicMetaSyncFailed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicMetaSyncFailed, msg)
}

// PublishReplicaMirrored 发布 iv.replica.mirrored 事件。
func PublishReplicaMirrored(pub message.Publisher, payload ReplicaMirroredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicReplicaMirrored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicReplicaMirrored, msg)
}

// PublishReplicaMirrorFailed 发布 iv.replica.mirror.failed 事件。
func PublishReplicaMirrorFailed(pub message.Publisher, payload ReplicaMirrorFailedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicReplicaMirrorFailed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicReplicaMirrorFailed, msg)
}

// PublishReplicaDropped 发布 iv.replica.dropped 事件。
func PublishReplicaDropped(pub message.Publisher, payload ReplicaDroppedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicReplicaDropped, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicReplicaDropped, msg)
}
