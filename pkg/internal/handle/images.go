package handle

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/internal/types"
	"github.com/yeisme/imagevault/pkg/log"
)

// ImagesHandler 图片上传处理器.存储配置（上传根目录、批量上限）在构造时显式注入，
// 而不是在处理函数内部读取全局状态.
type ImagesHandler struct {
	cfg configs.VaultConfig
}

// NewImagesHandler 创建图片上传处理器.
func NewImagesHandler(cfg configs.VaultConfig) *ImagesHandler {
	return &ImagesHandler{cfg: cfg}
}

// Upload 接收单张图片并写入上传根目录.
//
//	@Summary		上传图片
//	@Description	接收 multipart 表单中的 image 字段，落盘后返回公开访问地址
//	@Tags			图片
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"图片文件"
//	@Success		200		{object}	types.UploadImageResponse
//	@Failure		400		{object}	types.MessageResponse
//	@Failure		500		{object}	types.MessageResponse
//	@Router			/api/v1/images [post]
func (h *ImagesHandler) Upload(c *gin.Context) {
	l := log.Logger()

	fh, err := c.FormFile("image")
	if err != nil {
		uploadErrorResponse(c, l, service.NewUploadError("read form image", err))
		return
	}

	svc := service.NewImageService(c.Request.Context())

	info, err := svc.SaveImage(c.Request.Context(), fh, requestScheme(c), requestHost(c), "upload")
	if err != nil {
		uploadErrorResponse(c, l, err)
		return
	}

	l.Info().Str("imageUrl", info.URL).Msg("image stored")
	c.JSON(http.StatusOK, types.UploadImageResponse{ImageURL: info.URL})
}

// UploadBatch 批量上传图片，单个失败不中断整体.
//
//	@Summary		批量上传图片
//	@Description	接收 multipart 表单中的 images 字段（可多个），数量受配置上限约束
//	@Tags			图片
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			images	formData	file	true	"图片文件（可多个）"
//	@Success		200		{object}	types.BatchUploadResponse
//	@Failure		400		{object}	types.MessageResponse
//	@Failure		500		{object}	types.MessageResponse
//	@Router			/api/v1/images/batch [post]
func (h *ImagesHandler) UploadBatch(c *gin.Context) {
	l := log.Logger()

	form, err := c.MultipartForm()
	if err != nil {
		uploadErrorResponse(c, l, service.NewUploadError("parse multipart form", err))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		uploadErrorResponse(c, l, service.NewUploadError("read form images", errors.New("no images provided")))
		return
	}

	if len(files) > h.cfg.MaxFiles {
		uploadErrorResponse(c, l, service.NewUploadError("count form images",
			fmt.Errorf("%d files exceeds limit %d", len(files), h.cfg.MaxFiles)))

		return
	}

	svc := service.NewImageService(c.Request.Context())

	resp, e := svc.SaveImageBatch(c.Request.Context(), files, requestScheme(c), requestHost(c))
	if e != nil {
		uploadErrorResponse(c, l, e)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// uploadErrorResponse 按错误类别生成上传失败响应：表单解析类错误返回 400，其余返回 500.
// 每个失败分支只产生一条日志，携带底层错误与操作名.
func uploadErrorResponse(c *gin.Context, l *zerolog.Logger, err error) {
	if ue, ok := service.AsUploadError(err); ok {
		l.Error().Err(ue.Err).Str("operation", ue.Op).Msg("image upload error")
		c.JSON(http.StatusBadRequest, types.MessageResponse{Message: "Image upload error"})

		return
	}

	l.Error().Err(err).Str("operation", "store image").Msg("error uploading image")
	c.JSON(http.StatusInternalServerError, types.MessageResponse{Message: "Error uploading image"})
}
