package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/handle"
)

// RegisterSharesRoutes 注册分享令牌管理路由.
// 创建与查询分享挂在图片路由下（见 images.go），短链解析挂在根路径 /s/:token.
func RegisterSharesRoutes(g *gin.RouterGroup) {
	sharesRoutes := g.Group("/shares")
	{
		sharesRoutes.DELETE("/:token", handle.RevokeShare) // 撤销分享令牌
	}
}
