package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/log"
)

const defaultTrendDays = 14

// doStats 是一个通用封装：
//  1. 创建 StatsService
//  2. 统一错误处理与 JSON 输出
//
// 回调 fn 中负责具体业务逻辑与返回数据（可返回任意 JSON-able 结构）。
func doStats(c *gin.Context, errLogMsg string, fn func(svc *service.StatsService) (any, error)) {
	l := log.Logger()

	svc := service.NewStatsService(c.Request.Context())

	data, err := fn(svc)
	if err != nil {
		if errLogMsg == "" {
			errLogMsg = "stats handle failed"
		}

		l.Error().Err(err).Msg(errLogMsg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, data)
}

// GetImagesStats 图片统计汇总。
//
//	@Summary	图片统计汇总
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	types.StatsImagesSummary
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/images [get]
func GetImagesStats(c *gin.Context) {
	doStats(c, "images summary failed", func(svc *service.StatsService) (any, error) {
		return svc.ImagesSummary(c.Request.Context())
	})
}

// GetImagesStatsByType 按类型统计。
//
//	@Summary	图片类型统计
//	@Tags		统计
//	@Produce	json
//	@Success	200	{array}		types.StatsTypeItem
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/images/type [get]
func GetImagesStatsByType(c *gin.Context) {
	doStats(c, "images by type failed", func(svc *service.StatsService) (any, error) {
		return svc.ImagesByType(c.Request.Context())
	})
}

// GetImagesStatsBySize 图片大小分布。
//
//	@Summary	图片大小分布
//	@Tags		统计
//	@Produce	json
//	@Success	200	{array}		types.StatsSizeBucket
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/images/size [get]
func GetImagesStatsBySize(c *gin.Context) {
	doStats(c, "images by size failed", func(svc *service.StatsService) (any, error) {
		return svc.ImagesBySizeBuckets(c.Request.Context())
	})
}

// GetImagesTrend 图片入库趋势。
//
//	@Summary	图片入库趋势
//	@Tags		统计
//	@Produce	json
//	@Param		days	query		int	false	"统计天数(默认14, 最大60)"
//	@Success	200		{array}		types.StatsTrendPoint
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/stats/images/trend [get]
func GetImagesTrend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultTrendDays)))

	doStats(c, "images trend failed", func(svc *service.StatsService) (any, error) {
		return svc.ImagesTrend(c.Request.Context(), days)
	})
}

// StorageStats 本地存储统计（磁盘扫描）。
//
//	@Summary	存储统计汇总
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	types.StorageSummary
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/storage [get]
func StorageStats(c *gin.Context) {
	doStats(c, "storage summary failed", func(svc *service.StatsService) (any, error) {
		return svc.StorageSummary(c.Request.Context())
	})
}

// DashboardStats 统计仪表板数据。
//
//	@Summary	统计仪表板
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	types.StatsDashboardResponse
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/dashboard [get]
func DashboardStats(c *gin.Context) {
	doStats(c, "dashboard stats failed", func(svc *service.StatsService) (any, error) {
		return svc.Dashboard(c.Request.Context())
	})
}
