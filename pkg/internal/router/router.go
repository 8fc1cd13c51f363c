// Package router 管理路由配置，只负责将路径和处理器绑定到 gin 引擎，
// 处理器的实现由 pkg/internal/handle 提供.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/handle"
)

// RegisterRootRoutes 注册根路径路由：上传目录公开访问、分享短链与存活/就绪探针.
// /uploads/<存储名> 由 handle.PublicImage 按单段存储名输出，上传响应里的 imageUrl 指向这里；
// 不直接挂 Static：整目录静态服务会把回收目录（位于根目录下）一并暴露出去.
func RegisterRootRoutes(e *gin.Engine, cfg *configs.AppConfig) {
	publicPattern := cfg.Vault.PublicPath + "/:name"
	e.GET(publicPattern, handle.PublicImage)
	e.HEAD(publicPattern, handle.PublicImage)

	e.GET("/s/:token", handle.ResolveShare)

	e.GET("/healthz", handle.Healthz)
	e.GET("/readyz", handle.Readyz)
}
