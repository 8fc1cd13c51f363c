package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/handle"
)

// RegisterHealthCheckRoute 注册分组件健康检查路由.
func RegisterHealthCheckRoute(g *gin.RouterGroup) {
	healthRoutes := g.Group("/health")
	{
		healthRoutes.GET("/vault", handle.HealthVault)
		healthRoutes.GET("/db", handle.HealthDB)
		healthRoutes.GET("/kv", handle.HealthKV)
		healthRoutes.GET("/mq", handle.HealthMQ)
		healthRoutes.GET("/replica", handle.HealthReplica)
	}
}
