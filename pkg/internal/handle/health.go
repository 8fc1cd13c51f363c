// Package handle 健康检查处理器实现.
package handle

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/imagevault/pkg/context"
)

const healthTimeout = 2 * time.Second

// Healthz 存活探针：进程在跑即返回 200，不触碰任何依赖.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz 就绪探针：上传根目录可写、DB 可 ping、KV 与 MQ 已初始化才算就绪.
// 任一组件不可用返回 503，附带各组件状态.
func Readyz(c *gin.Context) {
	checks := gin.H{
		"vault": checkVault(c.Request.Context()),
		"db":    checkDB(c.Request.Context()),
		"kv":    checkKV(c.Request.Context()),
		"mq":    checkMQ(c.Request.Context()),
	}

	for _, v := range checks {
		if v != "ok" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unready", "checks": checks})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}

// HealthVault 本地存储健康检查：上传根目录存在且可写.
func HealthVault(c *gin.Context) {
	componentStatus(c, "vault", checkVault(c.Request.Context()))
}

// HealthDB 数据库健康检查.
func HealthDB(c *gin.Context) {
	componentStatus(c, "db", checkDB(c.Request.Context()))
}

// HealthKV 键值存储健康检查.
func HealthKV(c *gin.Context) {
	componentStatus(c, "kv", checkKV(c.Request.Context()))
}

// HealthMQ 消息队列健康检查.
func HealthMQ(c *gin.Context) {
	componentStatus(c, "mq", checkMQ(c.Request.Context()))
}

// HealthReplica S3 副本健康检查.未启用副本时返回 200 并标记 disabled.
func HealthReplica(c *gin.Context) {
	rc := ctxPkg.GetReplicaClient(c.Request.Context())
	if rc == nil {
		c.JSON(http.StatusOK, gin.H{"component": "replica", "status": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := rc.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "replica", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "replica", "status": "ok"})
}

func componentStatus(c *gin.Context, component, status string) {
	if status != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": component, "status": "unhealthy", "error": status})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": component, "status": "ok"})
}

// checkVault 在上传根目录写入并删除一个探测文件来验证可写性.
func checkVault(ctx context.Context) string {
	vs := ctxPkg.GetVaultStore(ctx)
	if vs == nil {
		return "vault store not initialized"
	}

	probe, err := os.CreateTemp(vs.Root(), ".readyz-*")
	if err != nil {
		return err.Error()
	}

	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return "ok"
}

func checkDB(ctx context.Context) string {
	dbc := ctxPkg.GetDBClient(ctx)
	if dbc == nil || dbc.DB == nil {
		return "db client not initialized"
	}

	tctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	sqlDB, err := dbc.DB.DB()
	if err != nil {
		return err.Error()
	}

	if err := sqlDB.PingContext(tctx); err != nil {
		return err.Error()
	}

	return "ok"
}

func checkKV(ctx context.Context) string {
	kvc := ctxPkg.GetKVClient(ctx)
	if kvc == nil {
		return "kv client not initialized"
	}

	tctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if _, err := kvc.Exists(tctx, "readyz:probe"); err != nil {
		return err.Error()
	}

	return "ok"
}

func checkMQ(ctx context.Context) string {
	// publisher 与 subscriber 初始化在 New 中, 判空即可
	if ctxPkg.GetMQClient(ctx) == nil {
		return "mq client not initialized"
	}

	return "ok"
}
