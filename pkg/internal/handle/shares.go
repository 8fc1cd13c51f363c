package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/internal/types"
	"github.com/yeisme/imagevault/pkg/log"
)

// CreateShare 为指定图片创建分享令牌.
//
//	@Summary	创建分享
//	@Tags		分享
//	@Accept		json
//	@Produce	json
//	@Param		name	path		string						true	"存储名"
//	@Param		body	body		types.CreateShareRequest	false	"分享参数"
//	@Success	200		{object}	types.CreateShareResponse
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/images/{name}/shares [post]
func CreateShare(c *gin.Context) {
	l := log.Logger()

	name := c.Param("name")

	var req types.CreateShareRequest

	_ = c.ShouldBindJSON(&req)

	svc := service.NewShareService(c.Request.Context())

	resp, err := svc.CreateShare(c.Request.Context(), name, &req, requestScheme(c), requestHost(c))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}

		l.Error().Err(err).Str("name", name).Msg("create share failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListShares 列出指定图片的有效分享.
//
//	@Summary	分享列表
//	@Tags		分享
//	@Produce	json
//	@Param		name	path		string	true	"存储名"
//	@Success	200		{object}	types.ListSharesResponse
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/images/{name}/shares [get]
func ListShares(c *gin.Context) {
	l := log.Logger()

	name := c.Param("name")

	svc := service.NewShareService(c.Request.Context())

	resp, err := svc.ListShares(c.Request.Context(), name, requestScheme(c), requestHost(c))
	if err != nil {
		l.Error().Err(err).Str("name", name).Msg("list shares failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeShare 撤销分享令牌.
//
//	@Summary	撤销分享
//	@Tags		分享
//	@Produce	json
//	@Param		token	path		string	true	"分享令牌"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/shares/{token} [delete]
func RevokeShare(c *gin.Context) {
	l := log.Logger()

	token := c.Param("token")

	svc := service.NewShareService(c.Request.Context())

	if err := svc.RevokeShare(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
			return
		}

		l.Error().Err(err).Str("token", token).Msg("revoke share failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "share revoked"})
}

// ResolveShare 通过分享令牌访问图片内容（公开端点，无需认证）.
//
//	@Summary	访问分享
//	@Tags		分享
//	@Produce	octet-stream
//	@Param		token	path	string	true	"分享令牌"
//	@Success	200
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/s/{token} [get]
func ResolveShare(c *gin.Context) {
	l := log.Logger()

	token := c.Param("token")

	svc := service.NewShareService(c.Request.Context())

	rec, err := svc.ResolveShare(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
			return
		}

		l.Error().Err(err).Str("token", token).Msg("resolve share failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	f, fi, err := service.NewImageService(c.Request.Context()).OpenImage(c.Request.Context(), rec.Name, "share")
	if err != nil {
		// 分享有效但图片已被回收或删除
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}

		l.Error().Err(err).Str("name", rec.Name).Msg("open shared image failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	defer func() { _ = f.Close() }()

	http.ServeContent(c.Writer, c.Request, rec.Name, fi.ModTime(), f)
}
