// Package api 将各业务路由组装配到 gin 引擎上.
package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	appcache "github.com/yeisme/imagevault/pkg/cache"
	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/router"
	"github.com/yeisme/imagevault/pkg/internal/storage"
	"github.com/yeisme/imagevault/pkg/middleware"
)

// RegisterGroup 注册全部业务路由组到传入的 gin 引擎.
// JSON 接口统一走 gzip；下载接口返回二进制且需要 Range 支持，排除在压缩之外.
func RegisterGroup(e *gin.Engine, mgr *storage.Manager) *gin.Engine {
	cfg := configs.GetConfig()

	v1 := e.Group("/api/v1")
	v1.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPathsRegexs([]string{`.*/download$`})))

	router.RegisterImagesRoutes(v1, cfg.Vault)
	router.RegisterTrashRoutes(v1)
	router.RegisterSharesRoutes(v1)
	router.RegisterHealthCheckRoute(v1)
	router.RegisterSchedulerRoutes(v1)

	// 统计接口读多写少，挂响应缓存（xxhash 键 + ETag/304）
	statsGroup := v1.Group("")
	statsGroup.Use(middleware.CacheMiddleware(
		middleware.DefaultCacheConfig(appcache.NewCache(mgr.GetKVClient()))))
	router.RegisterStatsRoutes(statsGroup)

	router.RegisterRootRoutes(e, cfg)
	router.RegisterSwaggerRoute(e)

	return e
}
