// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：iv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：image(镜像文件)、meta(数据库元数据)、replica(S3 副本)、share(分享链接)
// 动作：存储相关(stored/deleted/restored/purged)、访问(accessed)、同步(synced/mirrored)
// 状态：失败(failed)等

const (
	// 镜像文件领域.
	TopicImageStored   = "iv.image.stored"   // 镜像已写入本地存储，携带存储名与基础元数据
	TopicImageDeleted  = "iv.image.deleted"  // 镜像被移入回收目录
	TopicImageRestored = "iv.image.restored" // 镜像从回收目录恢复
	TopicImagePurged   = "iv.image.purged"   // 镜像被彻底清除（回收目录过期清理或直接删除）
	TopicImageAccessed = "iv.image.accessed" // 镜像被下载或通过分享链接访问（用于热点统计）

	// 元数据同步领域.
	TopicMetaSynced     = "iv.meta.synced"      // 镜像元数据成功写入数据库
	TopicMetaSyncFailed = "iv.meta.sync.failed" // 镜像元数据写入数据库失败

	// S3 副本领域.
	TopicReplicaMirrored     = "iv.replica.mirrored"      // 镜像已复制到 S3 副本
	TopicReplicaMirrorFailed = "iv.replica.mirror.failed" // 副本复制失败
	TopicReplicaDropped      = "iv.replica.dropped"       // 副本对象已删除

	// 分享链接领域.
	TopicShareCreated = "iv.share.created" // 分享令牌创建
	TopicShareRevoked = "iv.share.revoked" // 分享令牌撤销
)

// 主题分组，用于批量订阅或权限控制.
var (
	// 镜像文件相关主题集合.
	ImageTopics = []string{
		TopicImageStored, TopicImageDeleted, TopicImageRestored,
		TopicImagePurged, TopicImageAccessed,
	}

	// 元数据相关主题集合.
	MetaTopics = []string{
		TopicMetaSynced, TopicMetaSyncFailed,
	}

	// 副本相关主题集合.
	ReplicaTopics = []string{
		TopicReplicaMirrored, TopicReplicaMirrorFailed, TopicReplicaDropped,
	}

	// 分享链接相关主题集合.
	ShareTopics = []string{
		TopicShareCreated, TopicShareRevoked,
	}
)
