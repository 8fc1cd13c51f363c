package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/handle"
)

// RegisterImagesRoutes 注册图片相关路由.
func RegisterImagesRoutes(g *gin.RouterGroup, cfg configs.VaultConfig) {
	h := handle.NewImagesHandler(cfg)

	// 图片路由
	imagesRoutes := g.Group("/images")
	{
		// 上传单张图片
		imagesRoutes.POST("", h.Upload)
		// 批量上传
		imagesRoutes.POST("/batch", h.UploadBatch)
		// 分页列表
		imagesRoutes.GET("", handle.ListImages)

		// 单张图片操作
		singleGroup := imagesRoutes.Group("/:name")
		{
			// 下载图片内容
			singleGroup.GET("/download", handle.DownloadImage)
			// 查询元数据
			singleGroup.GET("/meta", handle.ImageMeta)
			// 移入回收站
			singleGroup.DELETE("", handle.DeleteImage)

			// 分享链接
			sharesGroup := singleGroup.Group("/shares")
			{
				sharesGroup.POST("", handle.CreateShare) // 创建分享令牌
				sharesGroup.GET("", handle.ListShares)   // 列出有效分享
			}
		}
	}
}
