package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/imagevault/pkg/context"
	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/log"
)

// DownloadImage 读取图片内容（支持 Range 请求）.
//
//	@Summary	下载图片
//	@Tags		图片
//	@Produce	octet-stream
//	@Param		name	path	string	true	"存储名"
//	@Success	200
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/images/{name}/download [get]
func DownloadImage(c *gin.Context) {
	serveImage(c, "download")
}

// PublicImage 按存储名输出上传根目录中的图片，挂载在公开静态路径 /uploads/:name 下.
// 路由参数只匹配单个路径段，存储名校验又拒绝回收目录名与路径分隔符，
// 因此已移入回收站的图片与任何子路径都不可达.
func PublicImage(c *gin.Context) {
	name := c.Param("name")

	vs := ctxPkg.GetVaultStore(c.Request.Context())
	if vs == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage not initialized"})
		return
	}

	f, err := vs.Open(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	http.ServeContent(c.Writer, c.Request, name, fi.ModTime(), f)
}

// serveImage 打开图片并交给 http.ServeContent 输出，自动处理 Range 与条件请求.
func serveImage(c *gin.Context, via string) {
	l := log.Logger()

	name := c.Param("name")

	svc := service.NewImageService(c.Request.Context())

	f, fi, err := svc.OpenImage(c.Request.Context(), name, via)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}

		l.Error().Err(err).Str("name", name).Msg("open image failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	defer func() { _ = f.Close() }()

	http.ServeContent(c.Writer, c.Request, name, fi.ModTime(), f)
}
