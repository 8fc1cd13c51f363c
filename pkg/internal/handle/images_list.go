package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/internal/types"
	"github.com/yeisme/imagevault/pkg/log"
)

// ListImages 分页列出图片元数据.
//
//	@Summary	图片列表
//	@Tags		图片
//	@Produce	json
//	@Param		page	query		int		false	"页码(默认1)"
//	@Param		size	query		int		false	"每页条数(默认50, 最大200)"
//	@Param		type	query		string	false	"MIME 一级类型过滤(如 image)"
//	@Param		sort	query		string	false	"排序字段: stored_at/size/name"
//	@Param		order	query		string	false	"排序方向: asc/desc"
//	@Success	200		{object}	types.ListImagesResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/images [get]
func ListImages(c *gin.Context) {
	l := log.Logger()

	var q types.ListImagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewImageService(c.Request.Context())

	resp, err := svc.ListImages(c.Request.Context(), &q)
	if err != nil {
		l.Error().Err(err).Msg("list images failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ImageMeta 查询单张图片的元数据与磁盘状态.
//
//	@Summary	图片元数据
//	@Tags		图片
//	@Produce	json
//	@Param		name	path		string	true	"存储名"
//	@Success	200		{object}	types.ImageMetaResponse
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/images/{name}/meta [get]
func ImageMeta(c *gin.Context) {
	l := log.Logger()

	name := c.Param("name")

	svc := service.NewImageService(c.Request.Context())

	resp, err := svc.ImageMeta(c.Request.Context(), name, requestScheme(c), requestHost(c))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}

		l.Error().Err(err).Str("name", name).Msg("image meta failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}
