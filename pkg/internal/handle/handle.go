// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"github.com/gin-gonic/gin"
)

// requestScheme 推断请求协议：优先反向代理传递的 X-Forwarded-Proto，其次看连接是否启用 TLS.
func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}

	if c.Request.TLS != nil {
		return "https"
	}

	return "http"
}

// requestHost 返回对外构造 URL 使用的主机名（含端口）.
func requestHost(c *gin.Context) string {
	return c.Request.Host
}
