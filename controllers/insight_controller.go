package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prospermen/Belief-life/config"
	"github.com/prospermen/Belief-life/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	insightService *services.InsightService
	cacheTTL       time.Duration
}

func NewInsightController(insightService *services.InsightService, cacheTTL time.Duration) *InsightController {
	return &InsightController{
		insightService: insightService,
		cacheTTL:       cacheTTL,
	}
}

// GetInsights 获取智能洞察报告
func (c *InsightController) GetInsights(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	period := ctx.DefaultQuery("period", "month") // week, month, year

	// 报告计算开销不大但有多次查询，短期缓存避免客户端反复刷新
	cacheKey := fmt.Sprintf("insights:%s:%s", uid, period)
	if c.cacheTTL > 0 && config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	report, err := c.insightService.BuildReport(ctx, uid.(string), period, time.Now().UTC())
	if err != nil {
		config.Logger.Errorw("生成洞察报告失败", "error", err, "uid", uid, "period", period)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成洞察报告失败"})
		return
	}

	body, err := json.Marshal(gin.H{
		"success":  true,
		"insights": report,
	})
	if err != nil {
		config.Logger.Errorw("序列化洞察报告失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成洞察报告失败"})
		return
	}

	if c.cacheTTL > 0 && config.RedisClient != nil {
		if err := config.RedisClient.Set(ctx, cacheKey, body, c.cacheTTL).Err(); err != nil {
			config.Logger.Errorw("缓存洞察报告失败", "error", err, "uid", uid)
		}
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
