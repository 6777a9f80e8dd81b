package controllers

import (
	"net/http"
	"time"

	"github.com/prospermen/Belief-life/config"
	"github.com/prospermen/Belief-life/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	statsService *services.StatsService
}

func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetEmotionStats 获取情绪统计
func (c *StatsController) GetEmotionStats(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	period := ctx.DefaultQuery("period", "week")
	stats, err := c.statsService.EmotionStats(ctx, uid.(string), period, time.Now().UTC())
	if err != nil {
		config.Logger.Errorw("获取情绪统计失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取情绪统计失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetCBTStats 获取CBT统计
func (c *StatsController) GetCBTStats(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	period := ctx.DefaultQuery("period", "month")
	stats, err := c.statsService.CBTStats(ctx, uid.(string), period, time.Now().UTC())
	if err != nil {
		config.Logger.Errorw("获取CBT统计失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取CBT统计失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetACTStats 获取价值观与行动计划统计
func (c *StatsController) GetACTStats(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	stats, err := c.statsService.ACTStats(ctx, uid.(string), time.Now().UTC())
	if err != nil {
		config.Logger.Errorw("获取ACT统计失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取ACT统计失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetExerciseStats 获取练习统计
func (c *StatsController) GetExerciseStats(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	stats, err := c.statsService.ExerciseStats(ctx, uid.(string))
	if err != nil {
		config.Logger.Errorw("获取练习统计失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取练习统计失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetSOSStats 获取SOS使用统计
func (c *StatsController) GetSOSStats(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	period := ctx.DefaultQuery("period", "month")
	stats, err := c.statsService.SOSStats(ctx, uid.(string), period, time.Now().UTC())
	if err != nil {
		config.Logger.Errorw("获取SOS统计失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取SOS统计失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetSOSRecommendations 获取个性化SOS技巧推荐
func (c *StatsController) GetSOSRecommendations(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	recommendations, err := c.statsService.RecommendTechniques(ctx, uid.(string))
	if err != nil {
		config.Logger.Errorw("获取SOS技巧推荐失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取SOS技巧推荐失败"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "recommendations": recommendations})
}

// GetSOSTechniques 获取SOS技巧名称列表
func (c *StatsController) GetSOSTechniques(ctx *gin.Context) {
	sessionType := ctx.Query("type") // 处理感受 或 处理想法
	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"techniques": services.TechniqueNames(sessionType),
	})
}

// GetCognitiveDistortions 获取认知扭曲类型列表
func (c *StatsController) GetCognitiveDistortions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"distortions": services.CognitiveDistortions(),
	})
}

// GetValueCategories 获取价值观分类建议
func (c *StatsController) GetValueCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": services.ValueCategories(),
	})
}
