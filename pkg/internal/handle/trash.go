package handle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/internal/types"
	"github.com/yeisme/imagevault/pkg/log"
)

// DeleteImage 将图片移入回收站.
//
//	@Summary	删除图片（移入回收站）
//	@Tags		回收站
//	@Produce	json
//	@Param		name	path		string	true	"存储名"
//	@Success	200		{object}	types.TrashActionResponse
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/images/{name} [delete]
func DeleteImage(c *gin.Context) {
	singleNameAction(c, "image trashed", func(svc *service.TrashService, name string) error {
		return svc.Trash(c.Request.Context(), name)
	})
}

// RestoreTrash 从回收站恢复图片.
//
//	@Summary	恢复回收站图片
//	@Tags		回收站
//	@Produce	json
//	@Param		name	path		string	true	"存储名"
//	@Success	200		{object}	types.TrashActionResponse
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/trash/{name}/restore [post]
func RestoreTrash(c *gin.Context) {
	singleNameAction(c, "image restored", func(svc *service.TrashService, name string) error {
		return svc.Restore(c.Request.Context(), name)
	})
}

// DeleteTrash 永久删除回收站中的图片.
//
//	@Summary	永久删除回收站图片
//	@Tags		回收站
//	@Produce	json
//	@Param		name	path		string	true	"存储名"
//	@Success	200		{object}	types.TrashActionResponse
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/trash/{name} [delete]
func DeleteTrash(c *gin.Context) {
	l := log.Logger()

	name := c.Param("name")

	svc := service.NewTrashService(c.Request.Context())

	n, err := svc.DeletePermanently(c.Request.Context(), []string{name})
	if err != nil {
		l.Error().Err(err).Str("name", name).Msg("trash delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.TrashActionResponse{Affected: n, Message: "image purged"})
}

// ListTrash 获取回收站列表.
//
//	@Summary	回收站列表
//	@Tags		回收站
//	@Produce	json
//	@Param		page	query		int	false	"页码(默认1)"
//	@Param		size	query		int	false	"每页条数(默认50, 最大200)"
//	@Success	200		{object}	types.TrashListResponse
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/trash [get]
func ListTrash(c *gin.Context) {
	l := log.Logger()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))

	svc := service.NewTrashService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), page, size)
	if err != nil {
		l.Error().Err(err).Msg("trash list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, resp)
}

// EmptyTrash 清空回收站.
//
//	@Summary	清空回收站
//	@Tags		回收站
//	@Produce	json
//	@Success	200	{object}	types.TrashActionResponse
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/trash [delete]
func EmptyTrash(c *gin.Context) {
	l := log.Logger()

	svc := service.NewTrashService(c.Request.Context())

	n, err := svc.Empty(c.Request.Context())
	if err != nil {
		l.Error().Err(err).Msg("trash empty failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.TrashActionResponse{Affected: n, Message: "trash emptied"})
}

// AutoCleanTrash 清理超过保留期的回收站图片.
//
//	@Summary	清理过期回收站图片
//	@Tags		回收站
//	@Accept		json
//	@Produce	json
//	@Param		body	body		types.TrashPurgeRequest	false	"清理条件"
//	@Success	200		{object}	types.TrashActionResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/trash/auto-clean [post]
func AutoCleanTrash(c *gin.Context) {
	l := log.Logger()

	var req types.TrashPurgeRequest

	_ = c.ShouldBindJSON(&req)

	before, ok := req.ParseBefore()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "before/days required"})
		return
	}

	svc := service.NewTrashService(c.Request.Context())

	n, err := svc.AutoClean(c.Request.Context(), before)
	if err != nil {
		l.Error().Err(err).Msg("trash auto clean failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.TrashActionResponse{Affected: n, Message: "trash cleaned"})
}

// singleNameAction 抽取公共逻辑：获取 path name、调用具体动作、统一错误映射。
func singleNameAction(c *gin.Context, okMsg string, act func(svc *service.TrashService, name string) error) {
	l := log.Logger()

	name := c.Param("name")

	svc := service.NewTrashService(c.Request.Context())

	if err := act(svc, name); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}

		l.Error().Err(err).Str("name", name).Msg("trash action failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.TrashActionResponse{Affected: 1, Message: okMsg})
}
