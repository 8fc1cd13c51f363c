package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/handle"
)

// RegisterTrashRoutes 注册回收站相关路由.
func RegisterTrashRoutes(g *gin.RouterGroup) {
	trashRoutes := g.Group("/trash")
	{
		// 回收站列表
		trashRoutes.GET("", handle.ListTrash)
		// 清空回收站
		trashRoutes.DELETE("", handle.EmptyTrash)
		// 按保留期清理过期条目
		trashRoutes.POST("/auto-clean", handle.AutoCleanTrash)

		// 单个条目操作
		singleGroup := trashRoutes.Group("/:name")
		{
			singleGroup.POST("/restore", handle.RestoreTrash) // 恢复到上传根目录
			singleGroup.DELETE("", handle.DeleteTrash)        // 永久删除
		}
	}
}
