package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/handle"
)

// RegisterStatsRoutes 注册统计相关路由.
func RegisterStatsRoutes(g *gin.RouterGroup) {
	statsRoutes := g.Group("/stats")
	{
		statsRoutes.GET("/images", handle.GetImagesStats)            // 图片总量汇总
		statsRoutes.GET("/images/type", handle.GetImagesStatsByType) // 按 MIME 类型分布
		statsRoutes.GET("/images/size", handle.GetImagesStatsBySize) // 按大小区间分布
		statsRoutes.GET("/images/trend", handle.GetImagesTrend)      // 按天上传趋势
		statsRoutes.GET("/storage", handle.StorageStats)             // 磁盘占用统计
		statsRoutes.GET("/dashboard", handle.DashboardStats)         // 聚合看板
	}
}
